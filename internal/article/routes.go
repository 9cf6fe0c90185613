package article

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shchuropedia/wiki-service/config"
	"shchuropedia/wiki-service/internal/backup"
	"shchuropedia/wiki-service/internal/middleware"
	"shchuropedia/wiki-service/pkg/database"
)

// SetupArticleRoutes 设置文章与历史相关路由
func SetupArticleRoutes(r *gin.RouterGroup, db *gorm.DB, redis *database.RedisClient, backupNotifier backup.Notifier) {
	// 初始化handler（内部会自动初始化所有依赖）
	articleHandler := NewArticleHandler(db, redis, backupNotifier)

	// 文章路由 - 需要认证
	articlesAuth := r.Group("/articles")
	articlesAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		articlesAuth.POST("", articleHandler.CreateArticle)           // 创建文章（需要认证）
		articlesAuth.PUT("/:title", articleHandler.UpdateArticle)     // 更新文章（需要认证）
		articlesAuth.DELETE("/:title", articleHandler.DeleteArticle)  // 删除文章（仅管理员）
	}

	// 文章路由 - 可选认证（阅读无需登录）
	articlesOptional := r.Group("/articles")
	articlesOptional.Use(middleware.OptionalJWTAuth()) // 可选认证
	{
		articlesOptional.GET("", articleHandler.ListArticles)          // 文章列表
		articlesOptional.GET("/search", articleHandler.SearchArticles) // 搜索文章
		if config.Conf.Wiki.DailyPick {
			articlesOptional.GET("/daily", articleHandler.DailyArticle) // 今日文章
		}
		articlesOptional.GET("/:title", articleHandler.GetArticle)          // 获取文章详情
		articlesOptional.GET("/:title/html", articleHandler.GetArticleHTML) // 获取渲染后的文章
		articlesOptional.GET("/:title/history", articleHandler.GetHistory)  // 获取文章历史
	}

	// 历史路由
	historyAuth := r.Group("/history")
	historyAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		historyAuth.POST("/:id/restore", articleHandler.RestoreVersion) // 恢复历史版本（需要认证）
	}

	history := r.Group("/history")
	{
		history.GET("/:id/diff", articleHandler.GetHistoryDiff) // 历史快照与当前内容的差异
	}
}
