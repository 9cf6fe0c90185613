package article

import (
	"log"
	"time"

	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/backup"
	articleModel "shchuropedia/wiki-service/internal/model/article"
)

// ArticleService 文章服务：存储与历史台账的协调者
//
// 不变量：
//  1. 标题全局唯一
//  2. 任何内容变更（编辑、恢复）生效前，被覆盖的旧内容必须先进历史台账，
//     且归档与覆盖在同一事务内，要么都成功要么都失败
//  3. 恢复不是回滚，而是一次普通编辑：完整链条始终可重建
//
// 并发语义：同一标题的并发更新不做序列化，后写者胜（与来源行为一致）
type ArticleService struct {
	db          *gorm.DB
	articleRepo *ArticleRepository
	historyRepo *HistoryRepository
	backup      backup.Notifier
	countViews  bool
}

// ServiceOptions 服务行为开关
type ServiceOptions struct {
	// CountViews 读取文章时是否累计阅读量（默认关闭）
	CountViews bool
}

func NewArticleService(
	db *gorm.DB,
	articleRepo *ArticleRepository,
	historyRepo *HistoryRepository,
	backupNotifier backup.Notifier,
	opts ServiceOptions,
) *ArticleService {
	if backupNotifier == nil {
		backupNotifier = backup.Nop{}
	}
	return &ArticleService{
		db:          db,
		articleRepo: articleRepo,
		historyRepo: historyRepo,
		backup:      backupNotifier,
		countViews:  opts.CountViews,
	}
}

// Create 创建文章
// 标题先清洗再占用；创建成功的同时写入首条历史快照作为基线，
// 保证已存在文章的历史永远非空
func (s *ArticleService) Create(title, content string, authorID *uint) (*articleModel.Article, error) {
	safeTitle := SanitizeTitle(title)
	if safeTitle == "" {
		return nil, ErrInvalidTitle
	}

	art := &articleModel.Article{
		Title:     safeTitle,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := NewArticleRepository(tx)

		exists, err := repo.ExistsByTitle(safeTitle)
		if err != nil {
			return err
		}
		if exists {
			return ErrTitleExists
		}

		if err := repo.Create(art); err != nil {
			return err
		}

		// 基线快照：内容与文章一致
		_, err = NewHistoryRepository(tx).Record(art.ID, content, authorID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 事务提交后才通知备份，失败不影响主流程
	s.backup.Notify(art.Title, art.Content)

	return art, nil
}

// Get 按标题读取文章
// 阅读量累计是尽力而为的副作用，失败只记日志
func (s *ArticleService) Get(title string) (*articleModel.Article, error) {
	art, err := s.articleRepo.GetByTitle(title)
	if err != nil {
		return nil, err
	}

	if s.countViews {
		if err := s.articleRepo.IncrementViewCount(art.ID); err != nil {
			log.Printf("阅读量累计失败 (article=%d): %v", art.ID, err)
		} else {
			art.ViewCount++
		}
	}

	return art, nil
}

// Update 更新文章内容
// 同一事务内：先把当前内容和作者归档进历史，再覆盖正文
func (s *ArticleService) Update(title, content string, authorID *uint) (*articleModel.Article, error) {
	var updated *articleModel.Article

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := NewArticleRepository(tx)

		art, err := repo.GetByTitle(title)
		if err != nil {
			return err
		}

		// 归档被覆盖的状态（变更前的内容和作者）
		if _, err := NewHistoryRepository(tx).Record(art.ID, art.Content, art.AuthorID); err != nil {
			return err
		}

		art.Content = content
		art.AuthorID = authorID
		art.UpdatedAt = time.Now()
		if err := repo.Update(art); err != nil {
			return err
		}

		updated = art
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.backup.Notify(updated.Title, updated.Content)

	return updated, nil
}

// Delete 删除文章，级联删除其全部历史快照，不可逆
func (s *ArticleService) Delete(title string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := NewArticleRepository(tx)

		art, err := repo.GetByTitle(title)
		if err != nil {
			return err
		}

		// 先删快照再删文章，不留孤儿行
		if err := NewHistoryRepository(tx).DeleteFor(art.ID); err != nil {
			return err
		}
		return repo.Delete(art.ID)
	})
}

// List 文章列表，按最后修改时间倒序
func (s *ArticleService) List() ([]articleModel.Article, error) {
	return s.articleRepo.List()
}

// Search 子串搜索（标题或内容，大小写不敏感）
// 空查询返回空集而不是全部文章
func (s *ArticleService) Search(keyword string) ([]articleModel.Article, error) {
	if keyword == "" {
		return []articleModel.Article{}, nil
	}
	return s.articleRepo.Search(keyword)
}

// GetHistory 某篇文章的历史快照，最新的在前
func (s *ArticleService) GetHistory(title string) (*articleModel.Article, []articleModel.ArticleHistory, error) {
	art, err := s.articleRepo.GetByTitle(title)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.historyRepo.ListFor(art.ID)
	if err != nil {
		return nil, nil, err
	}
	return art, entries, nil
}

// Restore 把历史快照恢复为当前内容
// 实现为一次普通更新：当前内容先归档，再被快照内容覆盖，
// 所以被替换掉的状态永远不会丢
// 快照所属文章已不存在时返回 ErrHistoryNotFound（级联删除应当避免这种孤儿，
// 但台账必须自卫）
func (s *ArticleService) Restore(entryID uint, authorID *uint) (*articleModel.Article, error) {
	var restored *articleModel.Article

	err := s.db.Transaction(func(tx *gorm.DB) error {
		historyRepo := NewHistoryRepository(tx)
		repo := NewArticleRepository(tx)

		entry, err := historyRepo.GetByID(entryID)
		if err != nil {
			return err
		}

		art, err := repo.GetByID(entry.ArticleID)
		if err != nil {
			// 孤儿快照：所属文章已消失
			return ErrHistoryNotFound
		}

		// 被覆盖的当前状态先进台账
		if _, err := historyRepo.Record(art.ID, art.Content, art.AuthorID); err != nil {
			return err
		}

		art.Content = entry.Content
		art.AuthorID = authorID
		art.UpdatedAt = time.Now()
		if err := repo.Update(art); err != nil {
			return err
		}

		restored = art
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.backup.Notify(restored.Title, restored.Content)

	return restored, nil
}
