package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asana/config"
	deliverymiddleware "asana/internal/delivery/http/middleware"
	"asana/internal/delivery/http/router"
	"asana/internal/delivery/http/router/handler"
	"asana/internal/delivery/http/validator"
	"asana/internal/domain/entity"
	domainerrors "asana/internal/domain/errors"
	"asana/internal/domain/service"
	mockSvc "asana/internal/mocks/service"
	mockUC "asana/internal/mocks/usecase"
	"asana/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serverFixtures wires the full HTTP stack with mocked business dependencies.
type serverFixtures struct {
	echo     *echo.Echo
	uc       *mockUC.MockAuthUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(logger).HandleHTTPError

	rateLimit := deliverymiddleware.NewRateLimitMiddleware(deliverymiddleware.RateLimitParams{
		Config: &config.Config{},
		Logger: logger,
	})

	r := router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(uc, logger),
		AuthMiddleware:      deliverymiddleware.NewAuthMiddleware(tokenSvc),
		RateLimitMiddleware: rateLimit,
	})
	r.RegisterRoutes(e)

	return serverFixtures{echo: e, uc: uc, tokenSvc: tokenSvc}
}

func (f serverFixtures) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSignup_Success(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{
		ID:        uuid.New(),
		Email:     "yogi@example.com",
		CreatedAt: time.Now().UTC(),
	}
	fx.uc.On("Signup", mock.Anything, &usecase.SignupInput{
		Email:           "yogi@example.com",
		Password:        "warrior-two",
		ConfirmPassword: "warrior-two",
	}).Return(&usecase.AuthOutput{User: user, Token: "signed.jwt.token"}, nil)

	rec := fx.request(http.MethodPost, "/api/signup",
		`{"email":"yogi@example.com","password":"warrior-two","confirmPassword":"warrior-two"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "signed.jwt.token", body["token"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.Email, result["email"])
	assert.Equal(t, user.ID.String(), result["id"])
	// Credentials never appear in the response body.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignup_PasswordMismatch(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Signup", mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrPasswordMismatch)

	rec := fx.request(http.MethodPost, "/api/signup",
		`{"email":"yogi@example.com","password":"warrior-two","confirmPassword":"warrior-three"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Passwords do not match", body["message"])
}

func TestSignup_UserAlreadyExists(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Signup", mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := fx.request(http.MethodPost, "/api/signup",
		`{"email":"yogi@example.com","password":"warrior-two","confirmPassword":"warrior-two"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decodeBody(t, rec)["message"])
}

func TestSignup_InvalidEmail(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.request(http.MethodPost, "/api/signup",
		`{"email":"not-an-email","password":"warrior-two","confirmPassword":"warrior-two"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fx.uc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "yogi@example.com"}
	fx.uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "yogi@example.com",
		Password: "warrior-two",
	}).Return(&usecase.AuthOutput{User: user, Token: "signed.jwt.token"}, nil)

	rec := fx.request(http.MethodPost, "/api/login",
		`{"email":"yogi@example.com","password":"warrior-two"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "signed.jwt.token", body["token"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrUserNotFound)

	rec := fx.request(http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"whatever"}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User does not exist", decodeBody(t, rec)["message"])
}

func TestLogin_WrongPassword(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := fx.request(http.MethodPost, "/api/login",
		`{"email":"yogi@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}

func TestLogin_UnexpectedFailure(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, assert.AnError)

	rec := fx.request(http.MethodPost, "/api/login",
		`{"email":"yogi@example.com","password":"warrior-two"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Something went wrong", decodeBody(t, rec)["message"])
	// Internal error details stay server-side.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestGetProfile_Success(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "yogi@example.com"}
	fx.tokenSvc.On("Validate", "valid.jwt.token").Return(&service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID.String(),
		},
	}, nil)
	fx.uc.On("GetProfile", mock.Anything, user.ID).Return(user, nil)

	rec := fx.request(http.MethodGet, "/api/profile", "", map[string]string{
		"Authorization": "Bearer valid.jwt.token",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.Email, data["email"])
}

func TestGetProfile_MissingToken(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.request(http.MethodGet, "/api/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.uc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestGetProfile_InvalidToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.On("Validate", "garbage").Return(nil, assert.AnError)

	rec := fx.request(http.MethodGet, "/api/profile", "", map[string]string{
		"Authorization": "Bearer garbage",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.uc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestHealthCheck(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.request(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
