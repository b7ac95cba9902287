// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/response"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload accepted by the registration endpoint.
type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account, "Account registered successfully")
}

// Login authenticates with HTTP Basic credentials and returns a signed token.
func (h *AccountHandler) Login(c echo.Context) error {
	username, password, ok := c.Request().BasicAuth()
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="login required"`)

		return response.Unauthorized(c, domainerrors.ErrInvalidCredentials.ErrorCode(), "Login credentials are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": output.Token}, "Login successful")
}

// List returns all accounts, newest first.
func (h *AccountHandler) List(c echo.Context) error {
	summaries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"users": summaries}, "Accounts retrieved successfully")
}

// Get returns the minimal projection for one account.
func (h *AccountHandler) Get(c echo.Context) error {
	view, err := h.uc.GetByPublicID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Account retrieved successfully")
}

// Promote grants admin status to an account.
func (h *AccountHandler) Promote(c echo.Context) error {
	output, err := h.uc.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account, "Account promoted to admin")
}

// Demote revokes admin status from an account.
func (h *AccountHandler) Demote(c echo.Context) error {
	output, err := h.uc.Demote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account, "Admin status revoked")
}

// Activate reinstates a suspended account.
func (h *AccountHandler) Activate(c echo.Context) error {
	output, err := h.uc.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account, "Account activated")
}

// Deactivate suspends an account.
func (h *AccountHandler) Deactivate(c echo.Context) error {
	output, err := h.uc.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account, "Account deactivated")
}

// Delete permanently removes an account.
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
