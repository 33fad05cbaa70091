package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahimx/inkblog/middleware"
	"github.com/mahimx/inkblog/utils"
)

// render writes an HTML page with the data every template expects: the
// current user (or nil), the footer year, and any pending flash notice.
func render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		user, _ := middleware.GetCurrentUser(ctx)
		data["User"] = user
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = utils.TakeFlash(ctx)
	}
	data["Year"] = time.Now().Year()
	ctx.HTML(status, name, data)
}
