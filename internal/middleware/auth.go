package middleware

import (
	"net/http"
	"strings"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ContextUserKey = "current_user"

// Auth 鉴权链：解析 JWT → redis 校验单活跃 token → 回源查用户。
// 角色等安全决策只认存储里的最新用户，不信任 token 里缓存的值。
func Auth(users repository.UserRepository, sessions repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format"})
			return
		}
		tokenStr := parts[1]

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		// 单活跃 token：redis 里的才算数，登出或他处登录后旧 token 作废
		originToken, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || originToken != tokenStr {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "session expired or signed in elsewhere"})
			return
		}

		if err := sessions.Extend(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "session extend failed"})
			return
		}

		uid, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}
		user, err := users.FindByID(c.Request.Context(), uid)
		if err != nil {
			// 用户已被移除，凭证随之失效
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user no longer exists"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser 取鉴权中间件注入的用户
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok
}
