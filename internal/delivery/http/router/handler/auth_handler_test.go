package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"credence/config"
	"credence/internal/delivery/http/middleware"
	"credence/internal/delivery/http/validator"
	domainerrors "credence/internal/domain/errors"
	"credence/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase lets each test script the service outcome.
type fakeAuthUsecase struct {
	register func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error)
	login    func(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	return f.register(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
	return f.login(ctx, input)
}

func (f *fakeAuthUsecase) EnsureSeeded(ctx context.Context) error {
	return nil
}

// newTestServer wires the handler, validator and error handler the way the
// real server does, so tests observe the exact wire contract.
func newTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	cfg := &config.Config{}
	cfg.Env.Env = "development"

	authHandler := NewAuthHandler(uc, logger)
	healthHandler := NewHealthHandler(cfg)

	api := e.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))

	return rec, parsed
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			assert.Equal(t, "Alice", input.Name)
			assert.Equal(t, "alice@example.com", input.Email)
			assert.Equal(t, "secret123", input.Password)

			return &usecase.AccountOutput{ID: 1, Email: "alice@example.com", Name: "Alice"}, nil
		},
	}

	rec, body := doJSON(t, newTestServer(uc), http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["ok"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice", user["name"])
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			t.Fatal("usecase must not be called for invalid payloads")

			return nil, nil
		},
	}
	e := newTestServer(uc)

	rec, body := doJSON(t, e, http.MethodPost, "/api/auth/register",
		`{"email":"","password":"x","name":"Name"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Name, email and password required", body["error"])

	// Field-error map names the offending fields by their json names.
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
		},
	}

	rec, body := doJSON(t, newTestServer(uc), http.MethodPost, "/api/auth/register",
		`{"name":"B","email":"dup@x.com","password":"secret2"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Email already registered", body["error"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
			return &usecase.AccountOutput{ID: 7, Email: "user@example.com", Name: "User"}, nil
		},
	}

	rec, body := doJSON(t, newTestServer(uc), http.MethodPost, "/api/auth/login",
		`{"email":"user@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", user["email"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		},
	}
	e := newTestServer(uc)

	// Unknown email and wrong password both script the same service error;
	// the wire bodies must be byte-identical.
	recUnknown, bodyUnknown := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"whatever"}`)
	recWrong, bodyWrong := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"user@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, "Invalid credentials", bodyUnknown["error"])
	assert.Equal(t, bodyUnknown, bodyWrong)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
			t.Fatal("usecase must not be called for invalid payloads")

			return nil, nil
		},
	}

	rec, body := doJSON(t, newTestServer(uc), http.MethodPost, "/api/auth/login",
		`{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Email and password required", body["error"])
}

func TestAuthHandler_UnexpectedErrorIsMasked(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
			return nil, errors.New("sqlite: disk I/O error")
		},
	}

	rec, body := doJSON(t, newTestServer(uc), http.MethodPost, "/api/auth/login",
		`{"email":"user@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["error"], "sqlite")
}

func TestHealthHandler_Check(t *testing.T) {
	rec, body := doJSON(t, newTestServer(&fakeAuthUsecase{}), http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "development", body["env"])
}
