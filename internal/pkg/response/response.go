package response

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/service"
	"errors"
	log "log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const Ok = 200

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(Ok, dto.Response{
		Status:  Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态码与业务码一致
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Response{
		Status:  status,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, service.BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, service.BadRequest, "Json错误")
		return
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		Fail(c, service.BadRequest, "Json错误")
		return
	}

	code, ok := service.StatusOf(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, code, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}
