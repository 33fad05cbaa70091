package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mahimx/inkblog/middleware"
	"github.com/mahimx/inkblog/models"
	"github.com/mahimx/inkblog/utils"
)

// postDateFormat renders dates like "August 30, 26".
const postDateFormat = "January 2, 06"

// PostController manages the post listing, detail, comment, and authoring routes.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// Home renders the listing of all posts with their authors.
func (p *PostController) Home(ctx *gin.Context) {
	var posts []models.Post
	if err := p.db.Preload("User").Find(&posts).Error; err != nil {
		utils.Sugar.Errorf("failed to list posts: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(ctx, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

// loadPost resolves the :id route parameter, rendering a 404 page when the
// post does not exist.
func (p *PostController) loadPost(ctx *gin.Context, preloadComments bool) (*models.Post, bool) {
	query := p.db.Preload("User")
	if preloadComments {
		query = query.Preload("Comments.User")
	}
	var post models.Post
	if err := query.First(&post, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render(ctx, http.StatusNotFound, "404.html", nil)
			return nil, false
		}
		utils.Sugar.Errorf("failed to load post: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return &post, true
}

// Show renders a post with its comments and the comment form.
func (p *PostController) Show(ctx *gin.Context) {
	post, ok := p.loadPost(ctx, true)
	if !ok {
		return
	}
	render(ctx, http.StatusOK, "post.html", gin.H{"Post": post})
}

// AddComment persists a comment from a logged-in user and returns to the post.
// Anonymous submissions are bounced to the login form and nothing is stored.
func (p *PostController) AddComment(ctx *gin.Context) {
	post, ok := p.loadPost(ctx, false)
	if !ok {
		return
	}

	user, authed := middleware.GetCurrentUser(ctx)
	if !authed {
		utils.SetFlash(ctx, "You need to login or register in order to comment.")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	text := utils.Sanitize(strings.TrimSpace(ctx.PostForm("text")))
	if text == "" {
		utils.SetFlash(ctx, "Your comment cannot be empty.")
		ctx.Redirect(http.StatusFound, "/post/"+ctx.Param("id"))
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   text,
	}
	if err := p.db.Create(&comment).Error; err != nil {
		utils.Sugar.Errorf("failed to create comment: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Redirect(http.StatusFound, "/post/"+ctx.Param("id"))
}

type postForm struct {
	Title    string `form:"title" binding:"required,max=255"`
	Subtitle string `form:"subtitle" binding:"required,max=255"`
	ImageURL string `form:"image_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

// NewForm renders the empty authoring form.
func (p *PostController) NewForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "make-post.html", gin.H{"IsEdit": false})
}

// Create stores a new post authored by the current user, dated at submission
// time, and returns to the home listing.
func (p *PostController) Create(ctx *gin.Context) {
	var req postForm
	if err := ctx.ShouldBind(&req); err != nil {
		render(ctx, http.StatusBadRequest, "make-post.html", gin.H{
			"IsEdit": false,
			"Flash":  "All fields are required and the image URL must be a valid URL.",
			"Form":   req,
		})
		return
	}

	user, _ := middleware.GetCurrentUser(ctx)

	post := models.Post{
		UserID:   user.ID,
		Title:    strings.TrimSpace(req.Title),
		Subtitle: strings.TrimSpace(req.Subtitle),
		ImageURL: strings.TrimSpace(req.ImageURL),
		Body:     utils.Sanitize(req.Body),
		Date:     time.Now().Format(postDateFormat),
	}
	if err := p.db.Create(&post).Error; err != nil {
		utils.Sugar.Errorf("failed to create post: %v", err)
		render(ctx, http.StatusBadRequest, "make-post.html", gin.H{
			"IsEdit": false,
			"Flash":  "Could not save the post. The title may already be taken.",
			"Form":   req,
		})
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// EditForm renders the authoring form pre-filled with the existing post.
func (p *PostController) EditForm(ctx *gin.Context) {
	post, ok := p.loadPost(ctx, false)
	if !ok {
		return
	}
	render(ctx, http.StatusOK, "make-post.html", gin.H{
		"IsEdit": true,
		"Post":   post,
		"Form": postForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImageURL: post.ImageURL,
			Body:     post.Body,
		},
	})
}

// Update overwrites the editable fields of an existing post in place. The
// author reference and publish date are untouched.
func (p *PostController) Update(ctx *gin.Context) {
	post, ok := p.loadPost(ctx, false)
	if !ok {
		return
	}

	var req postForm
	if err := ctx.ShouldBind(&req); err != nil {
		render(ctx, http.StatusBadRequest, "make-post.html", gin.H{
			"IsEdit": true,
			"Post":   post,
			"Flash":  "All fields are required and the image URL must be a valid URL.",
			"Form":   req,
		})
		return
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Subtitle = strings.TrimSpace(req.Subtitle)
	post.ImageURL = strings.TrimSpace(req.ImageURL)
	post.Body = utils.Sanitize(req.Body)

	// Omit associations so the preloaded author row is not written back.
	if err := p.db.Omit(clause.Associations).Save(post).Error; err != nil {
		utils.Sugar.Errorf("failed to update post: %v", err)
		render(ctx, http.StatusBadRequest, "make-post.html", gin.H{
			"IsEdit": true,
			"Post":   post,
			"Flash":  "Could not save the post. The title may already be taken.",
			"Form":   req,
		})
		return
	}
	ctx.Redirect(http.StatusFound, "/post/"+ctx.Param("id"))
}

// Delete removes a post and its comments in one transaction, then returns home.
// Cascading here keeps comments from being orphaned.
func (p *PostController) Delete(ctx *gin.Context) {
	post, ok := p.loadPost(ctx, false)
	if !ok {
		return
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	if err != nil {
		utils.Sugar.Errorf("failed to delete post: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}
