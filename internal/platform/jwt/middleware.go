package jwtmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
)

// ContextUserID is the gin context key under which the authenticated
// user's ID is stored.
const ContextUserID = "userID"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// AuthRequired returns a Gin middleware that validates the session token
// cookie and restricts access to authenticated users only.
func AuthRequired(parser Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the session cookie
		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.Error("Not Authorized. Login Again"))
			return
		}

		// 2. Verify signature, expiry and subject claim
		userID, err := parser.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.Error("Not Authorized. Login Again"))
			return
		}

		// 3. Expose the user ID to downstream handlers
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's ID set by
// AuthRequired. The second return is false when the middleware did not
// run or rejected the request.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
