package middleware

import (
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/response"
	"strings"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware 负责解析网关注入的身份头并写入 Context
// X-User 缺失视为未认证请求
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := strings.TrimSpace(c.GetHeader(consts.HeaderUser))
		if user == "" {
			response.Fail(c, response.Unauthorized, "身份缺失：X-User 头未提供")
			c.Abort()
			return
		}

		var roles []string
		if role := strings.TrimSpace(c.GetHeader(consts.HeaderRole)); role != "" {
			roles = append(roles, role)
		}

		c.Set(consts.CtxUserKey, user)
		c.Set(consts.CtxRolesKey, roles)

		c.Next()
	}
}
