package middleware

import (
	"net/http"
	"strings"

	"github.com/blues/tfs/internal/auth"
	"github.com/blues/tfs/internal/model"
	"github.com/gin-gonic/gin"
)

// 上下文键
const (
	ContextUserKey = "currentUser"
)

// RequireAuth 强制鉴权中间件，缺失或无效token返回401
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少Authorization头"})
			c.Abort()
			return
		}

		user, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的访问令牌"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuth 可选鉴权中间件，无token时按匿名请求放行
func OptionalAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if ok {
			if user, err := authService.ValidateToken(tokenString); err == nil {
				c.Set(ContextUserKey, user)
			}
		}
		c.Next()
	}
}

// RequireAdmin 管理员鉴权中间件，需在RequireAuth之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != model.UserRoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 从上下文中取出当前用户，匿名请求返回nil
func CurrentUser(c *gin.Context) *model.UserModel {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.UserModel)
	if !ok {
		return nil
	}
	return user
}

// bearerToken 从Authorization头中提取bearer token
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:], true
	}
	return "", false
}
