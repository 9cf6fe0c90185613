package article_test

import (
	"sync"
	"testing"

	"gorm.io/gorm"

	articlePkg "shchuropedia/wiki-service/internal/article"
	articleModel "shchuropedia/wiki-service/internal/model/article"
	"shchuropedia/wiki-service/internal/testutils"
)

// setupArticleService 创建 ArticleService 实例用于测试
func setupArticleService(t *testing.T) (*articlePkg.ArticleService, *gorm.DB) {
	db := testutils.SetupTestDB(t)

	articleRepo := articlePkg.NewArticleRepository(db)
	historyRepo := articlePkg.NewHistoryRepository(db)

	service := articlePkg.NewArticleService(db, articleRepo, historyRepo, nil, articlePkg.ServiceOptions{})
	return service, db
}

// recordingNotifier 记录每次备份通知，供断言使用
type recordingNotifier struct {
	mu      sync.Mutex
	entries []backupEntry
}

type backupEntry struct {
	Title   string
	Content string
}

func (n *recordingNotifier) Notify(title, content string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, backupEntry{Title: title, Content: content})
}

func (n *recordingNotifier) Entries() []backupEntry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]backupEntry, len(n.entries))
	copy(out, n.entries)
	return out
}

// historyFor 读取某篇文章的全部历史快照（最新在前）
func historyFor(t *testing.T, db *gorm.DB, articleID uint) []articleModel.ArticleHistory {
	t.Helper()

	var entries []articleModel.ArticleHistory
	if err := db.Where("article_id = ?", articleID).
		Order("created_at DESC").Order("id DESC").
		Find(&entries).Error; err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	return entries
}

// uintPtr 返回uint指针
func uintPtr(v uint) *uint {
	return &v
}
