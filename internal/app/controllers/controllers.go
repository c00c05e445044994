package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/helpers"
)

// idParam reads a positive path id, writing 400 when it is malformed
func idParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := helpers.ParseIDParam(ctx, name)
	if err != nil {
		ctx.String(http.StatusBadRequest, apperrors.MsgMissingFields)
		return 0, false
	}
	return id, true
}

// idQuery reads an optional positive query id, writing 400 when it is malformed
func idQuery(ctx *gin.Context, name string) (int64, bool) {
	id, err := helpers.OptionalIDQuery(ctx, name)
	if err != nil {
		ctx.String(http.StatusBadRequest, apperrors.MsgMissingFields)
		return 0, false
	}
	return id, true
}
