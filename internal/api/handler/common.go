package handler

import (
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/response"
	"Boomer/internal/pkg/util"
	"Boomer/internal/service"

	"github.com/gin-gonic/gin"
)

// bind 解析请求并校验，失败时直接写入 400
func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		response.Fail(c, service.BadRequest, "参数错误")
		return false
	}
	if err := util.ValidateDTO(obj); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return false
	}
	return true
}

// requiredQuery 读取必填的查询参数
func requiredQuery(c *gin.Context, key string) (string, bool) {
	value := c.Query(key)
	if value == "" {
		response.Fail(c, service.BadRequest, "缺少参数 "+key)
		return "", false
	}
	return value, true
}

func currentUser(c *gin.Context) (userID, userName string) {
	return c.GetString(consts.UserIDKey), c.GetString(consts.UserNameKey)
}
