package utils

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// SetFlash stores a one-shot notice shown on the next rendered page.
func SetFlash(ctx *gin.Context, message string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(flashCookieName, url.QueryEscape(message), 300, "/", "", false, true)
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(ctx *gin.Context) string {
	raw, err := ctx.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return ""
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
