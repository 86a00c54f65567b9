package service

import (
	"github.com/MKhiriev/ortoo/internal/config"
	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/store"
)

type Services struct {
	AuthService AuthService
	PostService PostService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	credentials := NewCredentialService(cfg.BcryptCost, logger)
	gate := NewAccessGate(logger)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, credentials, cfg, logger),
		PostService: NewPostService(storages.PostRepository, gate, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
