package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/mahimx/inkblog/config"
	"github.com/mahimx/inkblog/models"
	"github.com/mahimx/inkblog/utils"
)

// AuthController handles registration, login, and logout.
type AuthController struct {
	db  *gorm.DB
	cfg config.AppConfig
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB, cfg config.AppConfig) *AuthController {
	return &AuthController{db: db, cfg: cfg}
}

var titleCaser = cases.Title(language.English)

// RegisterForm renders the empty registration form.
func (a *AuthController) RegisterForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "register.html", nil)
}

// Register creates an account with a bcrypt-hashed password and logs it in.
// The first account ever registered receives the author role.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Name     string `form:"name" binding:"required,max=64"`
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
	}
	if err := ctx.ShouldBind(&req); err != nil {
		render(ctx, http.StatusBadRequest, "register.html", gin.H{
			"Flash": "Please fill in a name, a valid email, and a password.",
			"Form":  gin.H{"Name": ctx.PostForm("name"), "Email": ctx.PostForm("email")},
		})
		return
	}

	email := strings.TrimSpace(req.Email)

	var existing models.User
	if err := a.db.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.SetFlash(ctx, "You've already signed up with this email, consider logging in...")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Sugar.Errorf("failed to hash password: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var count int64
	if err := a.db.Model(&models.User{}).Count(&count).Error; err != nil {
		utils.Sugar.Errorf("failed to count users: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	role := models.RoleMember
	if count == 0 {
		role = models.RoleAuthor
	}

	user := models.User{
		Email:        email,
		Name:         titleCaser.String(strings.TrimSpace(req.Name)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Sugar.Errorf("failed to create user: %v", err)
		render(ctx, http.StatusInternalServerError, "register.html", gin.H{
			"Flash": "Something went wrong creating your account, please try again.",
		})
		return
	}

	if err := utils.SetSessionCookie(ctx, a.cfg.SessionSecret, user.ID, user.Name, user.Role); err != nil {
		utils.Sugar.Errorf("failed to issue session: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// LoginForm renders the login form.
func (a *AuthController) LoginForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "login.html", nil)
}

// Login verifies credentials and establishes a session. Both failure paths
// re-render the form with a message rather than redirecting.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `form:"email" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := ctx.ShouldBind(&req); err != nil {
		render(ctx, http.StatusBadRequest, "login.html", gin.H{
			"Flash": "Email and password are both required.",
		})
		return
	}

	email := strings.TrimSpace(req.Email)

	var user models.User
	err := a.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		render(ctx, http.StatusOK, "login.html", gin.H{
			"Flash": fmt.Sprintf("This email (%s) does not exist. Please check and try again!", email),
			"Form":  gin.H{"Email": email},
		})
		return
	}
	if err != nil {
		utils.Sugar.Errorf("failed to look up user: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		render(ctx, http.StatusOK, "login.html", gin.H{
			"Flash": "Oh no, you might have mistaken the password cause it does not match.",
			"Form":  gin.H{"Email": email},
		})
		return
	}

	if err := utils.SetSessionCookie(ctx, a.cfg.SessionSecret, user.ID, user.Name, user.Role); err != nil {
		utils.Sugar.Errorf("failed to issue session: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// Logout clears the session and redirects home. Always succeeds, logged in or not.
func (a *AuthController) Logout(ctx *gin.Context) {
	utils.ClearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
