package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/platformkit/auth-service/internal/api/metrics"
	"github.com/platformkit/auth-service/internal/core/domain"
	"github.com/platformkit/auth-service/internal/core/ports"
)

type AuthHandler struct {
	seeder       ports.RoleSeeder
	registration ports.RegistrationService
	auth         ports.AuthService
	issuer       ports.TokenIssuer
}

func NewAuthHandler(
	seeder ports.RoleSeeder,
	registration ports.RegistrationService,
	auth ports.AuthService,
	issuer ports.TokenIssuer,
) *AuthHandler {
	return &AuthHandler{
		seeder:       seeder,
		registration: registration,
		auth:         auth,
		issuer:       issuer,
	}
}

type credentialErrorResponse struct {
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations"`
}

// SeedRoles ensures the fixed role set exists.
//
// @Summary      Seed the role set
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/seedRoles [post]
func (h *AuthHandler) SeedRoles(c echo.Context) error {
	outcome, err := h.seeder.EnsureRoles(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.SeedRunsTotal.WithLabelValues(string(outcome)).Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "role seeding is done"})
}

// Register creates a new account with the default USER role.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.registration.Register(c.Request().Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		var credErr *domain.CredentialError
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user already exists"})
		case errors.As(err, &credErr):
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, credentialErrorResponse{
				Error:      "invalid credential",
				Violations: credErr.Violations,
			})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: "user created"})
}

// Login verifies credentials and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	start := time.Now()
	claims, err := h.auth.Login(c.Request().Context(), req.UserNameOrEmail, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := h.issuer.Issue(claims)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	metrics.TokensIssuedTotal.Inc()
	metrics.LoginDuration.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me echoes the identity claims of the presented token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}
