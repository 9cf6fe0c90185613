package article

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/model/article"
)

// ArticleRepository 文章仓储层（标题 -> 当前内容的权威来源）
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// GetByTitle 按标题查找文章
func (r *ArticleRepository) GetByTitle(title string) (*article.Article, error) {
	var art article.Article
	err := r.db.Where("title = ?", title).First(&art).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// GetByID 按ID查找文章
func (r *ArticleRepository) GetByID(id uint) (*article.Article, error) {
	var art article.Article
	err := r.db.First(&art, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// ExistsByTitle 标题是否已被占用
func (r *ArticleRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&article.Article{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// Create 插入新文章
// 并发创建同一标题时，先通过存在性检查的那个也会撞上唯一索引，
// 这里把索引冲突映射回标题冲突，错误类型保持一致
func (r *ArticleRepository) Create(art *article.Article) error {
	err := r.db.Create(art).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrTitleExists
	}
	return err
}

func (r *ArticleRepository) Update(art *article.Article) error {
	return r.db.Save(art).Error
}

func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Delete(&article.Article{}, id).Error
}

// List 全部文章，按最后修改时间倒序（不分页）
func (r *ArticleRepository) List() ([]article.Article, error) {
	var articles []article.Article
	err := r.db.Order("updated_at DESC").Find(&articles).Error
	return articles, err
}

// Search 标题或内容的子串匹配（大小写不敏感），按最后修改时间倒序
// 关键词中的 % 和 _ 是字面字符，不是通配符
func (r *ArticleRepository) Search(keyword string) ([]article.Article, error) {
	var articles []article.Article
	pattern := "%" + escapeLike(keyword) + "%"
	err := r.db.
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
		Order("updated_at DESC").
		Find(&articles).Error
	return articles, err
}

// escapeLike 转义 LIKE 的元字符（%、_ 和转义符本身）
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// IncrementViewCount 增加阅读量
func (r *ArticleRepository) IncrementViewCount(articleID uint) error {
	return r.db.Model(&article.Article{}).
		Where("id = ?", articleID).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// PickRandom 随机取一篇文章（"今日文章"推荐用）
// RANDOM() 在 sqlite 和 postgres 下语义一致
func (r *ArticleRepository) PickRandom() (*article.Article, error) {
	var art article.Article
	err := r.db.Order("RANDOM()").First(&art).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// Count 文章总数
func (r *ArticleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&article.Article{}).Count(&count).Error
	return count, err
}
