package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"videoshare/cmd/config"
	"videoshare/pkg/auth"
	"videoshare/pkg/store"
)

// Storage is the slice of the object-storage gateway the handlers need.
type Storage interface {
	Upload(r io.Reader, desiredName, contentType string) (string, error)
	Presign(key string, ttl time.Duration) (string, error)
}

// App carries every collaborator the route handlers use. One instance is
// built at startup and shared across requests.
type App struct {
	Users    *store.UserStore
	Videos   *store.VideoStore
	Storage  Storage
	Sessions *auth.Manager
	Cfg      config.Config
}

// Router builds the gin engine with all routes attached.
func (a *App) Router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(a.Cfg.TemplateGlob)
	r.Use(limitBody(a.Cfg.MaxUploadLen))

	r.GET("/health", a.Health)
	r.GET("/login", a.LoginForm)
	r.POST("/login", a.Login)
	r.GET("/register", a.RegisterForm)
	r.POST("/register", a.Register)

	authed := r.Group("/", a.Sessions.RequireLogin(), a.requireUser())
	authed.GET("/", a.Index)
	authed.GET("/logout", a.Logout)
	authed.GET("/upload", a.UploadForm)
	authed.POST("/upload", a.Upload)
	authed.POST("/delete/:id", a.Delete)

	return r
}

// requireUser re-checks that the session's subject still has an account
// row. A session issued before the account was removed (resetdb, manual
// cleanup) is logged out instead of keeping access until the token expires.
func (a *App) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := a.Sessions.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, err := a.Users.ByUsername(username); err != nil {
			if !errors.Is(err, store.ErrInvalidCredentials) {
				log.Printf("failed to re-validate session for %q: %v", username, err)
			}
			a.Sessions.ClearCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// limitBody caps the request body so an oversized upload fails instead of
// streaming without bound.
func limitBody(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}

// render draws a template with the flash banner and session state attached.
func (a *App) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	msg, kind := popFlash(c)
	data["Flash"] = msg
	data["FlashKind"] = kind
	username, _ := a.Sessions.CurrentUser(c)
	data["Username"] = username
	c.HTML(status, name, data)
}
