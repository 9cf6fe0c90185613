package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes 设置用户认证相关路由
func SetupUserRoutes(r *gin.RouterGroup, db *gorm.DB) {
	userHandler := NewUserHandler(db)

	auth := r.Group("/auth")
	{
		auth.POST("/register", userHandler.Register) // 注册
		auth.POST("/login", userHandler.Login)       // 登录
	}
}
