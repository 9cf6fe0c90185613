package dto

import (
	"time"

	"shchuropedia/wiki-service/internal/model/article"
)

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// UpdateArticleRequest 更新文章请求
type UpdateArticleRequest struct {
	Content string `json:"content" binding:"required"`
}

// ArticleResponse 文章详情响应
type ArticleResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  *uint  `json:"author_id"`
	ViewCount uint   `json:"view_count"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ArticleSummaryResponse 文章列表项（不含正文）
type ArticleSummaryResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	AuthorID  *uint  `json:"author_id"`
	ViewCount uint   `json:"view_count"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ArticleHTMLResponse 渲染后的文章
type ArticleHTMLResponse struct {
	Title     string `json:"title"`
	HTML      string `json:"html"`
	UpdatedAt string `json:"updated_at"`
}

// HistoryEntryResponse 历史快照响应
type HistoryEntryResponse struct {
	ID        uint   `json:"id"`
	ArticleID uint   `json:"article_id"`
	Content   string `json:"content"`
	AuthorID  *uint  `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

// HistoryListResponse 某篇文章的历史列表
type HistoryListResponse struct {
	Title   string                 `json:"title"`
	Entries []HistoryEntryResponse `json:"entries"`
}

// NewArticleResponse 模型转响应
func NewArticleResponse(art *article.Article) ArticleResponse {
	return ArticleResponse{
		ID:        art.ID,
		Title:     art.Title,
		Content:   art.Content,
		AuthorID:  art.AuthorID,
		ViewCount: art.ViewCount,
		CreatedAt: art.CreatedAt.Format(time.RFC3339),
		UpdatedAt: art.UpdatedAt.Format(time.RFC3339),
	}
}

// NewArticleSummaryResponse 模型转列表项
func NewArticleSummaryResponse(art *article.Article) ArticleSummaryResponse {
	return ArticleSummaryResponse{
		ID:        art.ID,
		Title:     art.Title,
		AuthorID:  art.AuthorID,
		ViewCount: art.ViewCount,
		CreatedAt: art.CreatedAt.Format(time.RFC3339),
		UpdatedAt: art.UpdatedAt.Format(time.RFC3339),
	}
}

// NewHistoryEntryResponse 模型转历史响应
func NewHistoryEntryResponse(entry *article.ArticleHistory) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:        entry.ID,
		ArticleID: entry.ArticleID,
		Content:   entry.Content,
		AuthorID:  entry.AuthorID,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
