package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.Feed(ctx)
	if err != nil {
		log.Err(err).Msg("feed listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid post id")
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity := utils.IdentityFromContext(ctx)

	posts, err := h.services.PostService.ListOwn(ctx, identity)
	if err != nil {
		log.Err(err).Msg("own posts listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity := utils.IdentityFromContext(ctx)

	// req.AuthorID is ignored on purpose, authorship follows the token
	post, err := h.services.PostService.CreateDraft(ctx, identity, req.Description)
	if err != nil {
		log.Err(err).Msg("draft creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) publishPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid post id")
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	identity := utils.IdentityFromContext(ctx)

	post, err := h.services.PostService.Publish(ctx, identity, postID)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("publish failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
