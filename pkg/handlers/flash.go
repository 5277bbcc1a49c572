package handlers

import "github.com/gin-gonic/gin"

const (
	flashCookie     = "flash"
	flashKindCookie = "flash_kind"
	ctxFlashMsg     = "flash.message"
	ctxFlashKind    = "flash.kind"
)

// setFlash stashes a one-shot message for the next rendered page. kind is
// "flash" for neutral notices and "error" for failures, matching the CSS
// classes in the templates. The message rides a short-lived cookie so it
// survives a redirect, and the gin context so a render in the same request
// sees it too.
func setFlash(c *gin.Context, kind, message string) {
	c.Set(ctxFlashMsg, message)
	c.Set(ctxFlashKind, kind)
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
	c.SetCookie(flashKindCookie, kind, 60, "/", "", false, true)
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(c *gin.Context) (message, kind string) {
	if v, ok := c.Get(ctxFlashMsg); ok {
		message, _ = v.(string)
		kind = "flash"
		if k, ok := c.Get(ctxFlashKind); ok {
			if s, ok := k.(string); ok && s != "" {
				kind = s
			}
		}
		clearFlash(c)
		return message, kind
	}

	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return "", ""
	}
	kind, err = c.Cookie(flashKindCookie)
	if err != nil || kind == "" {
		kind = "flash"
	}
	clearFlash(c)
	return message, kind
}

func clearFlash(c *gin.Context) {
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	c.SetCookie(flashKindCookie, "", -1, "/", "", false, true)
}
