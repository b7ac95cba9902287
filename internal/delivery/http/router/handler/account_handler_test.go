package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "roster/internal/domain/errors"
	mockUsecase "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAccountHandler(uc, logger), uc
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123",
	}).Return(&usecase.RegisterOutput{
		Account: &usecase.AccountSummary{
			PublicID: "9f8e7d6c5b4a3928171a",
			Username: "alice",
			Email:    "a@x.com",
			Active:   true,
		},
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/user/new", `{"username":"alice","email":"a@x.com","password":"pw123"}`)
	c.Echo().Validator = noopValidator{}

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "9f8e7d6c5b4a3928171a")
	assert.NotContains(t, rec.Body.String(), "pw123")
}

func TestAccountHandler_Register_UsecaseFailure(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	c, _ := newJSONContext(http.MethodPost, "/user/new", `{"username":"alice","email":"a@x.com","password":"pw123"}`)
	c.Echo().Validator = noopValidator{}

	err := h.Register(c)

	// The error propagates so the central error handler can render 409.
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountHandler_Login_BasicAuth(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("Login", mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw123"}).
		Return(&usecase.LoginOutput{Token: "signed.token.value"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/login", "")
	c.Request().SetBasicAuth("alice", "pw123")

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.token.value")
}

func TestAccountHandler_Login_MissingCredentials(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/login", "")

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderWWWAuthenticate), "Basic")
}

func TestAccountHandler_List(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("List", mock.Anything).Return([]*usecase.AccountSummary{
		{PublicID: "1111111111111111bbbb", Username: "bob"},
		{PublicID: "9f8e7d6c5b4a3928171a", Username: "alice"},
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/users", "")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"users"`)
	// Listing order is the usecase's order.
	assert.Less(t, strings.Index(body, "bob"), strings.Index(body, "alice"))
}

func TestAccountHandler_Get(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("GetByPublicID", mock.Anything, "9f8e7d6c5b4a3928171a").
		Return(&usecase.AccountView{PublicID: "9f8e7d6c5b4a3928171a", Username: "alice"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/user/9f8e7d6c5b4a3928171a", "")
	c.SetParamNames("id")
	c.SetParamValues("9f8e7d6c5b4a3928171a")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestAccountHandler_Delete(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("Delete", mock.Anything, "9f8e7d6c5b4a3928171a").Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/user/delete/9f8e7d6c5b4a3928171a", "")
	c.SetParamNames("id")
	c.SetParamValues("9f8e7d6c5b4a3928171a")

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_Promote_PassesError(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.On("Promote", mock.Anything, "missing").Return(nil, domainerrors.ErrAccountNotFound)

	c, _ := newJSONContext(http.MethodPut, "/user/promote/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Promote(c)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

// noopValidator accepts every payload; validation behavior is covered at the
// router level where the real validator is installed.
type noopValidator struct{}

func (noopValidator) Validate(any) error { return nil }
