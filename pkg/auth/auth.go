package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const (
	cookieName = "session"
	ctxUserKey = "auth.username"
)

// Claims is the payload carried by a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// Manager issues and validates the signed session tokens carried in the
// session cookie.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given username.
func (m *Manager) Issue(username string) (string, error) {
	claims := Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses the token and returns the username it was issued for.
func (m *Manager) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Username, nil
}

// SetCookie attaches a session cookie for the token to the response.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetCookie(cookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
}

// ClearCookie removes the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}

// RequireLogin redirects to the login page unless the request carries a
// valid session. On success the username is stored in the gin context.
func (m *Manager) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		username, err := m.Validate(token)
		if err != nil {
			m.ClearCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ctxUserKey, username)
		c.Next()
	}
}

// CurrentUser returns the authenticated username on this request, if any.
// Outside RequireLogin it falls back to checking the cookie directly, so
// unprotected pages can tell whether a session exists.
func (m *Manager) CurrentUser(c *gin.Context) (string, bool) {
	if v, ok := c.Get(ctxUserKey); ok {
		if name, ok := v.(string); ok {
			return name, true
		}
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	username, err := m.Validate(token)
	if err != nil {
		return "", false
	}
	return username, true
}
