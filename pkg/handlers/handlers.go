package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"videoshare/pkg/store"
)

type videoView struct {
	ID       uint
	Title    string
	S3Key    string
	URL      string
	Uploader string
}

// Index renders the video list. Each row gets a presigned playback URL;
// rows whose presign call fails are logged and left off the page.
func (a *App) Index(c *gin.Context) {
	videos, err := a.Videos.List()
	if err != nil {
		log.Printf("failed to list videos: %v", err)
		setFlash(c, "error", "Could not load videos.")
		a.render(c, http.StatusInternalServerError, "index.html", gin.H{"Videos": []videoView{}})
		return
	}

	display := make([]videoView, 0, len(videos))
	for _, v := range videos {
		url, err := a.Storage.Presign(v.S3Key, a.Cfg.PresignTTL)
		if err != nil {
			log.Printf("failed to presign video %d (%s): %v", v.ID, v.S3Key, err)
			continue
		}
		view := videoView{ID: v.ID, Title: v.Title, S3Key: v.S3Key, URL: url}
		if v.Uploader != nil {
			view.Uploader = *v.Uploader
		}
		display = append(display, view)
	}

	a.render(c, http.StatusOK, "index.html", gin.H{"Videos": display})
}

func (a *App) LoginForm(c *gin.Context) {
	if _, ok := a.Sessions.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	a.render(c, http.StatusOK, "login.html", nil)
}

func (a *App) Login(c *gin.Context) {
	if _, ok := a.Sessions.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		setFlash(c, "error", "Username and password are required.")
		a.render(c, http.StatusBadRequest, "login.html", nil)
		return
	}

	user, err := a.Users.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidCredentials) {
			log.Printf("login failed for %q: %v", username, err)
		}
		setFlash(c, "error", "Invalid username or password.")
		a.render(c, http.StatusUnauthorized, "login.html", nil)
		return
	}

	token, err := a.Sessions.Issue(user.Username)
	if err != nil {
		log.Printf("failed to issue session for %q: %v", username, err)
		setFlash(c, "error", "Login failed, please try again.")
		a.render(c, http.StatusInternalServerError, "login.html", nil)
		return
	}
	a.Sessions.SetCookie(c, token)
	setFlash(c, "flash", "Logged in.")
	c.Redirect(http.StatusFound, "/")
}

func (a *App) RegisterForm(c *gin.Context) {
	if _, ok := a.Sessions.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	a.render(c, http.StatusOK, "register.html", nil)
}

func (a *App) Register(c *gin.Context) {
	if _, ok := a.Sessions.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		setFlash(c, "error", "Username and password are required.")
		a.render(c, http.StatusBadRequest, "register.html", nil)
		return
	}

	if _, err := a.Users.Register(username, password); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			setFlash(c, "error", "That username is already taken.")
			a.render(c, http.StatusConflict, "register.html", nil)
			return
		}
		log.Printf("registration failed for %q: %v", username, err)
		setFlash(c, "error", "Could not create the account, please try again.")
		a.render(c, http.StatusInternalServerError, "register.html", nil)
		return
	}

	setFlash(c, "flash", "Account created! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

func (a *App) Logout(c *gin.Context) {
	a.Sessions.ClearCookie(c)
	setFlash(c, "flash", "Logged out.")
	c.Redirect(http.StatusFound, "/login")
}

func (a *App) UploadForm(c *gin.Context) {
	a.render(c, http.StatusOK, "upload.html", nil)
}

// Upload stores the submitted file and registers its metadata. The uploader
// column records the session's username at upload time.
func (a *App) Upload(c *gin.Context) {
	title := c.PostForm("title")
	fileHeader, err := c.FormFile("file")
	if title == "" || err != nil {
		setFlash(c, "error", "A title and a file are required.")
		a.render(c, http.StatusBadRequest, "upload.html", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("failed to open uploaded file: %v", err)
		setFlash(c, "error", "Could not read the uploaded file.")
		a.render(c, http.StatusInternalServerError, "upload.html", nil)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}

	key, err := a.Storage.Upload(file, fileHeader.Filename, contentType)
	if err != nil {
		log.Printf("upload to storage failed: %v", err)
		setFlash(c, "error", fmt.Sprintf("Upload failed: %v", err))
		a.render(c, http.StatusInternalServerError, "upload.html", nil)
		return
	}

	username, _ := a.Sessions.CurrentUser(c)
	if _, err := a.Videos.Insert(title, key, username); err != nil {
		log.Printf("failed to register video %q: %v", key, err)
		setFlash(c, "error", "Upload failed, please try again.")
		a.render(c, http.StatusInternalServerError, "upload.html", nil)
		return
	}

	setFlash(c, "flash", "Upload successful!")
	c.Redirect(http.StatusFound, "/")
}

// Delete removes the metadata row only; the stored object stays in the
// bucket. Requests that accept JSON get an ack instead of a redirect.
func (a *App) Delete(c *gin.Context) {
	wantsJSON := strings.Contains(c.GetHeader("Accept"), "application/json")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		if wantsJSON {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid video id"})
			return
		}
		setFlash(c, "error", "Invalid video id.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := a.Videos.Delete(uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if wantsJSON {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "video not found"})
				return
			}
			setFlash(c, "error", "Video not found.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		log.Printf("failed to delete video %d: %v", id, err)
		if wantsJSON {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "delete failed"})
			return
		}
		setFlash(c, "error", "Delete failed, please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if wantsJSON {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "video deleted"})
		return
	}
	setFlash(c, "flash", "Video deleted.")
	c.Redirect(http.StatusFound, "/")
}

// Health answers liveness probes. It deliberately touches neither the
// database nor storage so a downstream outage does not fail the probe.
func (a *App) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
