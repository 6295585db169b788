package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /auth/logout
//
// Revocation is best-effort: an absent token is skipped, and the cookies are
// cleared whenever the handler reaches the end.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(AccessCookieName)
		if token != "" {
			if err := RevokeToken(c.Request.Context(), token, AccessTokenTTL); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		ClearSessionCookies(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
