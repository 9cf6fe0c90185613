// Package article 文章相关模型
package article

import (
	"time"
)

// Article 文章表：站内唯一可见的当前内容
// 标题是全局唯一的查找键，创建后不可修改
type Article struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null;uniqueIndex" json:"title"`
	// Markdown原文，渲染只在展示时进行，不落库
	Content string `gorm:"type:text;not null" json:"content"`
	// 作者ID，允许为空（匿名编辑，或作者账号已被删除）
	AuthorID  *uint     `gorm:"index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// 阅读量统计（是否计数由配置 wiki.count_views 决定）
	ViewCount uint `gorm:"default:0" json:"view_count"`
}

// ArticleHistory 文章历史快照表（只追加，全量存储）
// 每次内容变更前，被覆盖的旧内容先写入这里
// 条目只随文章级联删除，永不单独修改或删除
type ArticleHistory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ArticleID uint `gorm:"not null;index" json:"article_id"`
	// 变更前的Markdown快照
	Content string `gorm:"type:text;not null" json:"content"`
	// 产生该快照的作者ID，允许为空
	AuthorID  *uint     `gorm:"index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
