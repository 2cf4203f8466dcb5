package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/middleware"
	"hridsync/cmd/api/trace"
	"hridsync/internal/logger"
)

// requesterID reads the authenticated user id placed in the context by
// UserAuthMiddleware. A missing or malformed id means the route was wired
// without the middleware; respond 401 and report false.
func requesterID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString(middleware.CtxUserID)
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_token"})
		return primitive.NilObjectID, false
	}
	return oid, true
}

// requesterRole reads the authenticated role from the context.
func requesterRole(c *gin.Context) string {
	return c.GetString(middleware.CtxRole)
}

// errorFields builds the standard fields for a handler-level error log,
// correlated with the request via its trace id.
func errorFields(c *gin.Context, err error) logger.Fields {
	return logger.Fields{
		"error":      err.Error(),
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
	}
}
