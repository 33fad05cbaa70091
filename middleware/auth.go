package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahimx/inkblog/models"
	"github.com/mahimx/inkblog/utils"
)

// ContextUserKey is the key under which the resolved current user (*models.User)
// is stored in the Gin context. Absent when the request is unauthenticated.
const ContextUserKey = "current_user"

// CurrentUser resolves the optional logged-in user from the session cookie and
// stores it in the context for every downstream handler and template.
// An invalid, expired, or orphaned session is treated as anonymous.
func CurrentUser(secret string, db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		claims, err := utils.ParseSessionToken(secret, token)
		if err != nil {
			ctx.Next()
			return
		}

		// Load the account so role changes and deletions take effect on the
		// next request rather than at token expiry.
		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			ctx.Next()
			return
		}

		ctx.Set(ContextUserKey, &user)
		ctx.Next()
	}
}

// GetCurrentUser returns the resolved user for this request, if any.
func GetCurrentUser(ctx *gin.Context) (*models.User, bool) {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// AuthzResult is the outcome of an authorization check.
type AuthzResult int

const (
	// AuthzAllowed means the caller holds the required capability.
	AuthzAllowed AuthzResult = iota
	// AuthzAnonymous means no user is logged in.
	AuthzAnonymous
	// AuthzForbidden means a user is logged in but lacks the capability.
	AuthzForbidden
)

// AuthorizeAuthor checks whether the request's user may author posts.
func AuthorizeAuthor(ctx *gin.Context) AuthzResult {
	user, ok := GetCurrentUser(ctx)
	if !ok {
		return AuthzAnonymous
	}
	if !user.CanAuthorPosts() {
		return AuthzForbidden
	}
	return AuthzAllowed
}

// AuthorOnly guards the post authoring routes. Anything but an account with
// the author capability gets a bare 403.
func AuthorOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if AuthorizeAuthor(ctx) != AuthzAllowed {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		ctx.Next()
	}
}
