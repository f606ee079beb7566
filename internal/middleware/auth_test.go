package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/hackernews-clone/backend/internal/models"
)

func setupAuthTestRouter(t *testing.T, mw gin.HandlerFunc) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw, func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func probe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignAndParseRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: 42, Email: "someone@example.com"}
	token, err := SignToken(user)
	require.NoError(t, err)

	userID, err := ParseUserID(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken(models.User{ID: 7, Email: "x@example.com"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	_, err = ParseUserID(token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	r := setupAuthTestRouter(t, RequireAuth())

	t.Run("missing header rejected", func(t *testing.T) {
		w := probe(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		w := probe(r, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := probe(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token sets user_id", func(t *testing.T) {
		token, err := SignToken(models.User{ID: 9, Email: "ok@example.com"})
		require.NoError(t, err)

		w := probe(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 9}`, w.Body.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	r := setupAuthTestRouter(t, OptionalAuth())

	t.Run("absent header means anonymous", func(t *testing.T) {
		w := probe(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"anonymous": true}`, w.Body.String())
	})

	t.Run("present but unparseable token is a hard failure", func(t *testing.T) {
		w := probe(r, "Bearer broken.token.here")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token sets user_id", func(t *testing.T) {
		token, err := SignToken(models.User{ID: 5, Email: "opt@example.com"})
		require.NoError(t, err)

		w := probe(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 5}`, w.Body.String())
	})
}
