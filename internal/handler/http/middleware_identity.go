// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/utils"
	"github.com/MKhiriev/ortoo/models"
)

// withIdentity resolves the caller's identity from the "Authorization" header
// and stores it in the request context.
//
// This middleware never rejects a request. A missing header, a malformed
// bearer value, or an expired or invalid token all resolve to the anonymous
// identity; the access gate in the service layer decides what anonymous
// callers may do. Only a token that passes full validation yields an
// authenticated identity.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		identity := models.Anonymous()

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(err).Msg("malformed authorization header, running as anonymous")
			} else if token, err := h.services.AuthService.ParseToken(ctx, tokenString); err != nil {
				log.Debug().Err(err).Msg("request carries an unusable token, running as anonymous")
			} else {
				identity = models.Authenticated(token.UserID)
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
