package middleware

import (
	"ai_eng_tam_backend/internal/service"
	"ai_eng_tam_backend/internal/util"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminAuth 管理端鉴权：X-Admin-Password 头为主路径，登录签发的
// Bearer token 为补充。凭证未配置时返回带诊断信息的 503 而非 401。
func AdminAuth(admin *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := admin.Configured(); err != nil {
			var cfgErr *util.ConfigurationError
			if errors.As(err, &cfgErr) {
				util.ErrorWithData(c, http.StatusServiceUnavailable, cfgErr.Message, cfgErr.Diagnostics)
			} else {
				util.Error(c, http.StatusServiceUnavailable, err.Error())
			}
			c.Abort()
			return
		}

		if pw := c.GetHeader(adminPasswordHeader); pw != "" {
			if admin.VerifyPassword(pw) {
				c.Set("admin", &util.AdminClaims{Role: "admin"})
				c.Next()
				return
			}
			util.Unauthorized(c)
			c.Abort()
			return
		}

		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			claims, err := admin.ParseToken(strings.TrimPrefix(auth, "Bearer "))
			if err == nil && claims.Role == "admin" {
				c.Set("admin", claims)
				c.Next()
				return
			}
		}

		util.Unauthorized(c)
		c.Abort()
	}
}
