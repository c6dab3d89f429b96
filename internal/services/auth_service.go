package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-item-api/internal/metrics"
	"go-item-api/internal/models"
	"go-item-api/internal/transport/dto"

	"go.uber.org/zap"
)

const tokenTypeBearer = "bearer"

// AuthService defines the sign-in flows and bearer-token resolution.
type AuthService interface {
	AuthenticateGoogle(ctx context.Context, req *dto.GoogleAuthRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context, accessToken string) (models.CurrentUser, error)
}

type authService struct {
	verifier GoogleVerifier
	tokens   *TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(verifier GoogleVerifier, tokens *TokenIssuer, logger *zap.Logger) AuthService {
	return &authService{verifier: verifier, tokens: tokens, logger: logger}
}

func (s *authService) AuthenticateGoogle(ctx context.Context, req *dto.GoogleAuthRequest) (*dto.TokenResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, ErrGoogleAuthDisabled) {
			return nil, err
		}
		s.logger.Info("google id token rejected", zap.Error(err))
		metrics.AuthFailures.WithLabelValues("google_token").Inc()
		return nil, authError("Invalid Google token", err)
	}

	email := strings.TrimSpace(identity.Email)
	if email == "" || !identity.EmailVerified {
		s.logger.Info("google id token without usable email", zap.String("sub", identity.Subject))
		metrics.AuthFailures.WithLabelValues("email_not_resolved").Inc()
		return nil, authError("Could not resolve an email from the Google token", ErrEmailNotResolved)
	}

	token, err := s.tokens.CreateAccessToken(email)
	if err != nil {
		s.logger.Error("failed to issue access token", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	metrics.TokensIssued.WithLabelValues("google").Inc()

	return &dto.TokenResponse{AccessToken: token, TokenType: tokenTypeBearer, Email: email}, nil
}

// Login accepts any non-empty username/password pair and echoes the username; there is
// no credential store behind it.
func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, authError("Username and password are required", ErrInvalidCredentials)
	}
	return &dto.LoginResponse{Username: req.Username}, nil
}

func (s *authService) CurrentUser(_ context.Context, accessToken string) (models.CurrentUser, error) {
	email, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		reason := "Invalid token"
		if errors.Is(err, ErrTokenExpired) {
			reason = "Token has expired"
		}
		metrics.AuthFailures.WithLabelValues("access_token").Inc()
		return models.CurrentUser{}, authError(reason, err)
	}
	return models.CurrentUser{Email: email}, nil
}
