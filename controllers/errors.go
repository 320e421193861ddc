package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"tiechef/pkg/resp"
	"tiechef/services"
)

// respondError translates service errors into the API's error responses.
func respondError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		resp.NotFound(c, notFound.Error())
		return
	}
	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		resp.BadRequest(c, conflict.Error())
		return
	}
	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		resp.ValidationFailed(c, invalid.Fields)
		return
	}
	if errors.Is(err, services.ErrIDMismatch) {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}

func pathID(c *gin.Context, name string) uint {
	id, _ := strconv.Atoi(c.Param(name))
	return uint(id)
}
