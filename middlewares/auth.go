package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/repository"
	"github.com/A3K3SH/Catering/utils"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session
// token.
const SessionCookie = "catering_session"

// Sessions resolves the session cookie to a principal on every request. It
// never aborts; route gates decide what an anonymous request may do.
func Sessions(db *gorm.DB) gin.HandlerFunc {
	sessions := repository.NewSessionRepository(db)
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if sess, err := sessions.FindValid(token); err == nil {
				utils.SetPrincipal(c, &sess.User, sess.Token)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without an authenticated principal.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admin requests with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}
