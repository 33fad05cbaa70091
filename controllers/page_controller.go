package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahimx/inkblog/config"
	"github.com/mahimx/inkblog/utils"
)

// contactSubject is the fixed subject line of contact notifications.
const contactSubject = "New contact form submission"

// PageController serves the static pages and the contact notifier.
type PageController struct {
	cfg  config.AppConfig
	mail utils.Sender
}

// NewPageController creates a PageController with the given outbound mailer.
func NewPageController(cfg config.AppConfig, mail utils.Sender) *PageController {
	return &PageController{cfg: cfg, mail: mail}
}

// About renders the static informational page.
func (p *PageController) About(ctx *gin.Context) {
	render(ctx, http.StatusOK, "about.html", nil)
}

// ContactForm renders the empty contact form.
func (p *PageController) ContactForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "contact.html", gin.H{"Sent": false})
}

// Contact sends the submission to the configured recipient over SMTP, inline
// with the request, then renders the confirmation state. Delivery failures
// surface as a server error; there is no queue and no retry.
func (p *PageController) Contact(ctx *gin.Context) {
	var req struct {
		Name    string `form:"name" binding:"required"`
		Email   string `form:"email" binding:"required,email"`
		Phone   string `form:"phone" binding:"required"`
		Message string `form:"message" binding:"required"`
	}
	if err := ctx.ShouldBind(&req); err != nil {
		render(ctx, http.StatusBadRequest, "contact.html", gin.H{
			"Sent":  false,
			"Flash": "All four fields are required, and the email must be valid.",
		})
		return
	}

	body := utils.ContactBody(req.Name, req.Email, req.Phone, req.Message)
	if err := p.mail.Send(p.cfg.ContactRecipient, contactSubject, body); err != nil {
		utils.Sugar.Errorf("failed to send contact mail: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	render(ctx, http.StatusOK, "contact.html", gin.H{"Sent": true})
}
