package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Decanton/Twitter-Clone/internal/server/auth"
)

// contextUserIDKey is the gin context key holding the authenticated user id.
const contextUserIDKey = "auth.userID"

// requireAuth validates the session cookie and stores the authenticated
// user id in the request context. Requests without a valid token never
// reach the wrapped handler.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {

		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No Token Provided"})
			return
		}

		userID, err := s.issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid Token"})
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}
