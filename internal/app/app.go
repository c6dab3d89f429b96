package app

import (
	"fmt"

	"go-item-api/config"
	"go-item-api/internal/services"
	"go-item-api/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Logger      *zap.Logger
	Validator   *validator.Validate
	ItemService *services.ItemService
	AuthService services.AuthService
}

// New wires the services described by cfg.
func New(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	validate := validation.New()

	verifier, err := services.NewGoogleVerifier(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("google verifier: %w", err)
	}
	if len(cfg.Auth.GoogleClientIDs) == 0 && cfg.Server.Variant == config.VariantSecure {
		logger.Warn("auth.google_client_ids is empty; POST /auth/google will answer 503")
	}
	tokens := services.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)

	return &Application{
		Config:      cfg,
		Logger:      logger,
		Validator:   validate,
		ItemService: services.NewItemService(validate),
		AuthService: services.NewAuthService(verifier, tokens, logger.Named("auth")),
	}, nil
}
