package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/task-management-api/internal/application"
	"github.com/oksasatya/task-management-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the bearer token and resolves the current user. On success
// it sets the user's id and email in the Gin context.
func Auth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		u, err := svc.ResolveCurrentUser(c.Request.Context(), token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			response.AbortError(c, http.StatusUnauthorized, "invalid authentication credentials", nil)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserEmailKey, u.Email)
		c.Next()
	}
}

// UserID returns the authenticated user's id set by Auth.
func UserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet(CtxUserIDKey).(primitive.ObjectID)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
