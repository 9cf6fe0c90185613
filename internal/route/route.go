package route

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/article"
	"shchuropedia/wiki-service/internal/backup"
	"shchuropedia/wiki-service/internal/user"
	"shchuropedia/wiki-service/pkg/database"
)

func initRoute(r *gin.Engine, db *gorm.DB, redis *database.RedisClient, backupNotifier backup.Notifier) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	user.SetupUserRoutes(api, db)
	article.SetupArticleRoutes(api, db, redis, backupNotifier)
}

// SetupRouter 组装全部路由，依赖由调用方注入
func SetupRouter(db *gorm.DB, redis *database.RedisClient, backupNotifier backup.Notifier) *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r, db, redis, backupNotifier)

	return r
}
