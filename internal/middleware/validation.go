package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
)

// BindJSON binds and validates the body into obj. On failure it writes
// 400 "Missing fields" and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.String(http.StatusBadRequest, apperrors.MsgMissingFields)
		return false
	}
	return true
}
