package views

import (
	"errors"

	"github.com/ConteoVivo/ActaMap/response"
	"github.com/ConteoVivo/ActaMap/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
}

// renderServiceError 服务层错误到HTTP状态码的映射
func renderServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, ve.Message)
	case errors.As(err, &nf):
		response.NotFound(c, nf.Message)
	default:
		response.InternalError(c, err.Error())
	}
}
