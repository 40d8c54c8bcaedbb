package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/A3K3SH/Catering/entity"
)

const (
	principalKey    = "principal"
	sessionTokenKey = "sessionToken"
)

func SetPrincipal(c *gin.Context, u *entity.User, token string) {
	c.Set(principalKey, u)
	c.Set(sessionTokenKey, token)
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(principalKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

func IsAdmin(c *gin.Context) bool {
	u := CurrentUser(c)
	return u != nil && u.IsAdmin
}

func SessionToken(c *gin.Context) string {
	if v, ok := c.Get(sessionTokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
