package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL returns the avatar URL for an email address. Size 50, "retro"
// fallback, rating g.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=50&d=retro&r=g", sum)
}
