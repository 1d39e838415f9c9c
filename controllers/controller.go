package controllers

import (
	"errors"

	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

// DevMode echoes underlying error messages on 500 responses.
var DevMode bool

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	default:
		if DevMode {
			resp.ServerError(c, err)
		} else {
			resp.ServerError(c, errors.New("internal server error"))
		}
	}
}
