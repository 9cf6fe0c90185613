package model

import (
	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/model/article"
	"shchuropedia/wiki-service/internal/model/user"
)

// InitTable 自动迁移数据库表结构
// 迁移只做加法（建表、补列、补索引），启动时绝不删表或删列
func InitTable(db *gorm.DB) error {
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 文章与历史快照
		&article.Article{},
		&article.ArticleHistory{},
	)
	if err != nil {
		return err
	}
	return nil
}
