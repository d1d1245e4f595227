package middleware

import (
	"net/http"
	"strings"

	"worklink/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates a bearer token and stores its subject under
// "subjectID" for handlers that need the caller's identity.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		subjectID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subjectID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("subjectID", subjectID)
		c.Next()
	}
}
