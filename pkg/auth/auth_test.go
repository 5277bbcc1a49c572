package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videoshare/pkg/auth"
)

func TestIssueValidateRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	token, err := m.Issue("alice")
	require.NoError(t, err)

	username, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewManager("secret-one", time.Hour).Issue("alice")
	require.NoError(t, err)

	_, err = auth.NewManager("secret-two", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := auth.NewManager("test-secret", -time.Minute)

	token, err := m.Issue("alice")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestRequireLoginRedirectsWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := auth.NewManager("test-secret", time.Hour)

	r := gin.New()
	r.GET("/protected", m.RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, "in")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLoginPassesValidSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := auth.NewManager("test-secret", time.Hour)

	token, err := m.Issue("alice")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", m.RequireLogin(), func(c *gin.Context) {
		username, ok := m.CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, username)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}
