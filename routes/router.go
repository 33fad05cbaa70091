package routes

import (
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahimx/inkblog/config"
	"github.com/mahimx/inkblog/controllers"
	"github.com/mahimx/inkblog/middleware"
	"github.com/mahimx/inkblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, db *gorm.DB, mail utils.Sender) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestLogger(utils.Logger))
	r.Use(utils.RecoveryWithZap(utils.Logger))
	r.Use(middleware.CurrentUser(cfg.SessionSecret, db))

	r.SetFuncMap(template.FuncMap{
		"gravatar": utils.GravatarURL,
		"raw":      func(s string) template.HTML { return template.HTML(s) },
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)

	r.Static("/static", "./static")

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db, cfg)
	postController := controllers.NewPostController(db)
	pageController := controllers.NewPageController(cfg, mail)

	r.GET("/", postController.Home)

	r.GET("/register", authController.RegisterForm)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.LoginForm)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	r.GET("/post/:id", postController.Show)
	r.POST("/post/:id", postController.AddComment)

	authorOnly := r.Group("", middleware.AuthorOnly())
	authorOnly.GET("/new-post", postController.NewForm)
	authorOnly.POST("/new-post", postController.Create)
	authorOnly.GET("/edit-post/:id", postController.EditForm)
	authorOnly.POST("/edit-post/:id", postController.Update)
	authorOnly.GET("/delete/:id", postController.Delete)

	r.GET("/about", pageController.About)
	r.GET("/contact", pageController.ContactForm)
	r.POST("/contact", pageController.Contact)

	return r
}
