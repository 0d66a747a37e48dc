package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in, sign-out and the current session.
type AuthHandler struct {
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{logger: params.Logger}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is the public view of a session.
type SessionResponse struct {
	Token           string `json:"token,omitempty"`
	Email           string `json:"email,omitempty"`
	Username        string `json:"username,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsHydrated      bool   `json:"isHydrated"`
}

func toSessionResponse(session entity.Session, hydrated bool) SessionResponse {
	return SessionResponse{
		Token:           session.Token,
		Email:           session.Email,
		Username:        session.Username,
		IsAuthenticated: session.Authenticated,
		IsHydrated:      hydrated,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid registration input", validator.FieldErrors(err))
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	session, err := sf.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSessionResponse(session, true))
}

// Login handles sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid login input", validator.FieldErrors(err))
	}

	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	session, err := sf.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(session, true))
}

// Logout handles sign-out
func (h *AuthHandler) Logout(c echo.Context) error {
	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	if err := sf.SignOut(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(entity.Session{}, true))
}

// Session returns the visitor's current session without its bearer token.
// The token is only handed out by Register and Login.
func (h *AuthHandler) Session(c echo.Context) error {
	sf, err := currentStorefront(c)
	if err != nil {
		return err
	}

	auth := sf.Auth()
	session := auth.Session()
	session.Token = ""

	return response.Success(c, http.StatusOK, toSessionResponse(session, auth.IsHydrated()))
}
