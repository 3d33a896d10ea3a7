package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"techmart-backend/common/logger"
	"techmart-backend/models"
	"techmart-backend/services/auth"
	"techmart-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.LoginResult), args.Error(1)
}
func (m *MockAuthService) Register(ctx context.Context, name, email, password, role string) error {
	args := m.Called(ctx, name, email, password, role)
	return args.Error(0)
}
func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

// testRegion is an in-memory state backend for controller tests.
type testRegion struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func newTestRegion() *testRegion {
	return &testRegion{slots: make(map[string][]byte)}
}

func (r *testRegion) Read(_ context.Context, slot string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.slots[slot]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (r *testRegion) Write(_ context.Context, slot string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot] = data
	return nil
}

func (r *testRegion) Delete(_ context.Context, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, slot)
	return nil
}

// --- Tests ---

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")

	loginResult := &auth.LoginResult{
		User:         models.SessionUser{ID: "u1", Email: "test@example.com", Name: "Test", Role: models.RoleCustomer},
		AccessToken:  "fake-access-token",
		RefreshToken: "fake-refresh-token",
	}

	t.Run("Success - 200 OK", func(t *testing.T) {
		mockService := new(MockAuthService)
		sessions := store.NewSessionStore(newTestRegion())
		authController := NewAuthController(mockService, sessions)

		mockService.On("Login", mock.Anything, "test@example.com", "password123").Return(loginResult, nil).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "test@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Logged in successfully")
		assert.Contains(t, recorder.Body.String(), "fake-access-token")

		// A session cookie is minted for the authenticated session.
		cookies := recorder.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "session_id", cookies[0].Name)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Credentials - 401 Unauthorized", func(t *testing.T) {
		mockService := new(MockAuthService)
		region := newTestRegion()
		sessions := store.NewSessionStore(region)
		authController := NewAuthController(mockService, sessions)

		mockService.On("Login", mock.Anything, "test@example.com", "wrongpassword").
			Return(nil, errors.New("invalid email or password")).Once()

		router := gin.New()
		router.POST("/login", authController.Login)

		payload := `{"email": "test@example.com", "password": "wrongpassword"}`
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid email or password")
		// Nothing was written to the session backend.
		assert.Empty(t, region.slots)
	})

	t.Run("Failure - Malformed Body - 400", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, store.NewSessionStore(newTestRegion()))

		router := gin.New()
		router.POST("/login", authController.Login)

		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email": "not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegisterController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")

	t.Run("Success - 201 Created", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, store.NewSessionStore(newTestRegion()))

		mockService.On("Register", mock.Anything, "New User", "new@example.com", "password123", "").Return(nil).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"name": "New User", "email": "new@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate Email - 409 Conflict", func(t *testing.T) {
		mockService := new(MockAuthService)
		authController := NewAuthController(mockService, store.NewSessionStore(newTestRegion()))

		mockService.On("Register", mock.Anything, "X", "taken@example.com", "password123", "").
			Return(errors.New("email already exists")).Once()

		router := gin.New()
		router.POST("/register", authController.Register)

		payload := `{"name": "X", "email": "taken@example.com", "password": "password123"}`
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestGetSessionController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")

	t.Run("Anonymous Session", func(t *testing.T) {
		authController := NewAuthController(new(MockAuthService), store.NewSessionStore(newTestRegion()))

		router := gin.New()
		router.GET("/session", authController.GetSession)

		req, _ := http.NewRequest(http.MethodGet, "/session", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"authenticated":false`)
		assert.Contains(t, recorder.Body.String(), `"admin":false`)
	})

	t.Run("Authenticated Admin Session", func(t *testing.T) {
		sessions := store.NewSessionStore(newTestRegion())
		_, err := sessions.SetAuth(context.Background(), "sid-admin",
			models.SessionUser{ID: "u1", Role: models.RoleAdmin}, "access", "refresh")
		assert.NoError(t, err)

		authController := NewAuthController(new(MockAuthService), sessions)

		router := gin.New()
		router.GET("/session", authController.GetSession)

		req, _ := http.NewRequest(http.MethodGet, "/session", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "sid-admin"})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"authenticated":true`)
		assert.Contains(t, recorder.Body.String(), `"admin":true`)
	})
}

func TestLogoutController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")

	sessions := store.NewSessionStore(newTestRegion())
	_, err := sessions.SetAuth(context.Background(), "sid-1",
		models.SessionUser{ID: "u1", Role: models.RoleCustomer}, "access", "refresh")
	assert.NoError(t, err)

	authController := NewAuthController(new(MockAuthService), sessions)

	router := gin.New()
	router.POST("/logout", authController.Logout)
	router.GET("/session", authController.GetSession)

	req, _ := http.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sid-1"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	// The same session id now resolves to an anonymous session.
	req, _ = http.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sid-1"})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Contains(t, recorder.Body.String(), `"authenticated":false`)
}
