package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// SessionDuration is how long a login stays valid.
const SessionDuration = 7 * 24 * time.Hour

// SessionClaims are the JWT claims stored in the session cookie.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a session token for the given user identity.
func IssueSessionToken(secret string, userID uint, name, role string) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(secret, tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// SetSessionCookie establishes a logged-in session for the user.
func SetSessionCookie(ctx *gin.Context, secret string, userID uint, name, role string) error {
	token, err := IssueSessionToken(secret, userID, name, role)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, token, int(SessionDuration/time.Second), "/", "", false, true)
	return nil
}

// ClearSessionCookie logs the caller out. Safe to call with no session present.
func ClearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
