package article

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/model/article"
)

// HistoryRepository 历史快照仓储层（只追加的审计台账）
// 快照只由文章内容变更的副作用产生，创建后永不修改
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record 追加一条快照，内容重复也照常写入
func (r *HistoryRepository) Record(articleID uint, content string, authorID *uint) (*article.ArticleHistory, error) {
	entry := &article.ArticleHistory{
		ArticleID: articleID,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByID 按ID查找快照
func (r *HistoryRepository) GetByID(id uint) (*article.ArticleHistory, error) {
	var entry article.ArticleHistory
	err := r.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFor 某篇文章的全部快照，最新的在前
// created_at 相同（同一秒内的连续编辑）时按 id 倒序保持追加顺序
func (r *HistoryRepository) ListFor(articleID uint) ([]article.ArticleHistory, error) {
	var entries []article.ArticleHistory
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	return entries, err
}

// DeleteFor 删除某篇文章的全部快照（仅用于文章删除时的级联）
func (r *HistoryRepository) DeleteFor(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).
		Delete(&article.ArticleHistory{}).Error
}
