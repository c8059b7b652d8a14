package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mirage/config"
	deliverymw "mirage/internal/delivery/http/middleware"
	"mirage/internal/delivery/http/validator"
	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	mockUsecase "mirage/internal/mocks/usecase"
	"mirage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance wired the way the real server is:
// request validation plus the AppError-aware error handler.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = deliverymw.NewErrorMiddleware(logger, &config.Config{}).HandleHTTPError

	return e
}

func testUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "sam@example.com",
		Name:      "Sam",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "hunter22",
	}).Return(&usecase.AuthOutput{Token: "signed.jwt.token", User: testUser()}, nil)

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.POST("/auth/register", NewAuthHandler(uc, logger).Register)

	body := `{"name":"Sam","email":"sam@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string       `json:"token"`
		User  *entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "sam@example.com", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_NameIsOptional(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Email:    "sam@example.com",
		Password: "hunter22",
	}).Return(&usecase.AuthOutput{Token: "signed.jwt.token", User: testUser()}, nil)

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.POST("/auth/register", NewAuthHandler(uc, logger).Register)

	body := `{"email":"sam@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Register_ValidationMessages(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.POST("/auth/register", NewAuthHandler(uc, logger).Register)

	body := `{"name":"Sam","email":"not-an-email","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "Enter a valid email")
	assert.Contains(t, resp.Errors, "Password must be at least 6 characters long")
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailTaken)

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.POST("/auth/register", NewAuthHandler(uc, logger).Register)

	body := `{"name":"Sam","email":"sam@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists with this email"}`, rec.Body.String())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "sam@example.com",
		Password: "hunter22",
	}).Return(&usecase.AuthOutput{Token: "signed.jwt.token", User: testUser()}, nil)

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.POST("/auth/login", NewAuthHandler(uc, logger).Login)

	body := `{"email":"sam@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.POST("/auth/login", NewAuthHandler(uc, logger).Login)

	body := `{"email":"sam@example.com","password":"wrong-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
