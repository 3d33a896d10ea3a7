package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"techmart-backend/models"
	"techmart-backend/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenService("test-secret")

	router := gin.New()
	router.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		userID, err := GetUserID(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/admin", AuthMiddleware(tokens), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	get := func(path, header string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("Valid Token Passes Identity Through", func(t *testing.T) {
		pair, _, err := tokens.GenerateTokenPair("user-1", "u@example.com", models.RoleCustomer)
		require.NoError(t, err)

		recorder := get("/me", "Bearer "+pair.AccessToken)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "user-1")
	})

	t.Run("Missing Token - 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("/me", "").Code)
	})

	t.Run("Malformed Header - 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("/me", "token-without-scheme").Code)
	})

	t.Run("Refresh Token Cannot Be Used As Access Token", func(t *testing.T) {
		pair, _, err := tokens.GenerateTokenPair("user-1", "u@example.com", models.RoleCustomer)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, get("/me", "Bearer "+pair.RefreshToken).Code)
	})

	t.Run("Customer Cannot Reach Admin Routes", func(t *testing.T) {
		pair, _, err := tokens.GenerateTokenPair("user-1", "u@example.com", models.RoleCustomer)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, get("/admin", "Bearer "+pair.AccessToken).Code)
	})

	t.Run("Admin Passes RequireAdmin", func(t *testing.T) {
		pair, _, err := tokens.GenerateTokenPair("admin-1", "a@example.com", models.RoleAdmin)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, get("/admin", "Bearer "+pair.AccessToken).Code)
	})
}
