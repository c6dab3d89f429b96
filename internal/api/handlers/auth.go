package handlers

import (
	"net/http"

	"go-item-api/internal/services"
	"go-item-api/internal/transport/dto"
	"go-item-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthHandler serves the sign-in endpoints of the secure variant.
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthService, validate *validator.Validate, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, validator: validate, logger: logger}
}

// GoogleAuth godoc
// @Summary      Sign in with Google
// @Description  Verifies a Google ID token and exchanges it for an API access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GoogleAuthRequest  true  "Google ID token"
// @Success      200      {object}  dto.TokenResponse
// @Failure      400      {object}  ErrorResponse  "Invalid token or no email resolved"
// @Failure      422      {object}  ValidationErrorResponse
// @Failure      503      {object}  ErrorResponse  "Google sign-in not configured"
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var errs validation.Errors
		errs.Add(validation.LocationBody, "", validation.ConstraintJSON, "Invalid request body: "+err.Error())
		respondValidation(c, errs)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, validation.FromValidator(err, validation.LocationBody, nil))
		return
	}

	resp, err := h.service.AuthenticateGoogle(c.Request.Context(), &req)
	if err != nil {
		respondAuthError(c, h.logger, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary      Log in with a form
// @Description  Accepts username and password form fields and echoes the username.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  dto.LoginResponse
// @Failure      422       {object}  ValidationErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		var errs validation.Errors
		errs.Add(validation.LocationForm, "", "invalid", "Invalid form body: "+err.Error())
		respondValidation(c, errs)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, validation.FromValidator(err, validation.LocationForm, nil))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondAuthError(c, h.logger, err, http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, resp)
}
