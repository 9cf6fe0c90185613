package article_test

import (
	"errors"
	"testing"

	articlePkg "shchuropedia/wiki-service/internal/article"
	articleModel "shchuropedia/wiki-service/internal/model/article"
	"shchuropedia/wiki-service/internal/testutils"
)

func TestCreateArticle_Integration(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)

	tests := []struct {
		name        string
		title       string
		content     string
		authorID    *uint
		wantErr     error
		wantTitle   string
	}{
		{
			name:      "plain latin title",
			title:     "golang",
			content:   "# Go\n\nGo is a language.",
			authorID:  uintPtr(author.ID),
			wantTitle: "golang",
		},
		{
			name:      "title is sanitized on create",
			title:     "Дядя Щура",
			content:   "# Дядя Щура",
			authorID:  uintPtr(author.ID),
			wantTitle: "дядя-щура",
		},
		{
			name:      "anonymous author is allowed",
			title:     "anonymous-page",
			content:   "no author",
			authorID:  nil,
			wantTitle: "anonymous-page",
		},
		{
			name:    "title with no usable characters is rejected",
			title:   "???",
			content: "content",
			wantErr: articlePkg.ErrInvalidTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := service.Create(tt.title, tt.content, tt.authorID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if art.Title != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, art.Title)
			}
			if art.Content != tt.content {
				t.Errorf("Expected content %q, got %q", tt.content, art.Content)
			}

			// 创建即有历史基线
			entries := historyFor(t, db, art.ID)
			if len(entries) != 1 {
				t.Fatalf("Expected 1 baseline history entry, got %d", len(entries))
			}
			if entries[0].Content != tt.content {
				t.Errorf("Baseline content mismatch: got %q", entries[0].Content)
			}
		})
	}
}

func TestCreateArticle_DuplicateTitle(t *testing.T) {
	service, _ := setupArticleService(t)

	if _, err := service.Create("повторы", "первая", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 原样重复
	if _, err := service.Create("повторы", "вторая", nil); !errors.Is(err, articlePkg.ErrTitleExists) {
		t.Errorf("Expected ErrTitleExists, got %v", err)
	}

	// 清洗后落到同一个标题也算重复
	if _, err := service.Create("ПОВТОРЫ", "третья", nil); !errors.Is(err, articlePkg.ErrTitleExists) {
		t.Errorf("Expected ErrTitleExists for sanitized collision, got %v", err)
	}

	// 失败的创建不留任何痕迹
	articles, err := service.List()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("Expected 1 article after failed duplicates, got %d", len(articles))
	}
	if articles[0].Content != "первая" {
		t.Errorf("Original content must survive, got %q", articles[0].Content)
	}
}

func TestCreateArticle_UniqueIndexCollisionMapsToConflict(t *testing.T) {
	// 并发创建会绕过存在性检查直接撞唯一索引，
	// 仓储层必须把索引冲突映射回标题冲突
	_, db := setupArticleService(t)
	repo := articlePkg.NewArticleRepository(db)

	first := &articleModel.Article{Title: "гонка", Content: "раз"}
	if err := repo.Create(first); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	second := &articleModel.Article{Title: "гонка", Content: "два"}
	if err := repo.Create(second); !errors.Is(err, articlePkg.ErrTitleExists) {
		t.Errorf("Expected ErrTitleExists from index collision, got %v", err)
	}
}

func TestGetArticle(t *testing.T) {
	service, db := setupArticleService(t)

	created := testutils.CreateTestArticle(db, testutils.WithTitle("страница"), testutils.WithContent("# Страница"))

	art, err := service.Get("страница")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if art.ID != created.ID {
		t.Errorf("Expected article %d, got %d", created.ID, art.ID)
	}
	if art.Content != "# Страница" {
		t.Errorf("Content mismatch: %q", art.Content)
	}

	// 查找用存储的标题原样匹配，不做清洗
	if _, err := service.Get("Страница"); !errors.Is(err, articlePkg.ErrArticleNotFound) {
		t.Errorf("Lookup must not sanitize, got %v", err)
	}

	if _, err := service.Get("missing"); !errors.Is(err, articlePkg.ErrArticleNotFound) {
		t.Errorf("Expected ErrArticleNotFound, got %v", err)
	}
}

func TestUpdateArticle_ArchivesPreviousState(t *testing.T) {
	service, db := setupArticleService(t)

	author := testutils.CreateTestUser(db)
	editor := testutils.CreateTestUser(db)

	art, err := service.Create("правки", "версия 1", uintPtr(author.ID))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	updated, err := service.Update("правки", "версия 2", uintPtr(editor.ID))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if updated.Content != "версия 2" {
		t.Errorf("Expected new content, got %q", updated.Content)
	}
	if updated.AuthorID == nil || *updated.AuthorID != editor.ID {
		t.Errorf("Expected author %d, got %v", editor.ID, updated.AuthorID)
	}

	// 基线 + 归档的旧状态
	entries := historyFor(t, db, art.ID)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(entries))
	}

	var archived *articleModel.ArticleHistory
	for i := range entries {
		if entries[i].Content == "версия 1" && entries[i].AuthorID != nil && *entries[i].AuthorID == author.ID {
			archived = &entries[i]
		}
	}
	if archived == nil {
		t.Fatalf("Archived entry must carry the pre-update content and author")
	}
}

func TestUpdateArticle_NotFound(t *testing.T) {
	service, _ := setupArticleService(t)

	if _, err := service.Update("нет-такой", "content", nil); !errors.Is(err, articlePkg.ErrArticleNotFound) {
		t.Errorf("Expected ErrArticleNotFound, got %v", err)
	}
}

func TestDeleteArticle_CascadesHistory(t *testing.T) {
	service, db := setupArticleService(t)

	art, err := service.Create("обречённая", "раз", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := service.Update("обречённая", "два", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := service.Delete("обречённая"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := service.Get("обречённая"); !errors.Is(err, articlePkg.ErrArticleNotFound) {
		t.Errorf("Expected article to be gone, got %v", err)
	}
	if entries := historyFor(t, db, art.ID); len(entries) != 0 {
		t.Errorf("Expected no orphan history, got %d entries", len(entries))
	}
}

func TestDeleteArticle_NotFound(t *testing.T) {
	service, _ := setupArticleService(t)

	if err := service.Delete("нет-такой"); !errors.Is(err, articlePkg.ErrArticleNotFound) {
		t.Errorf("Expected ErrArticleNotFound, got %v", err)
	}
}

func TestListArticles_OrderedByUpdatedAt(t *testing.T) {
	service, db := setupArticleService(t)

	testutils.CreateTestArticle(db, testutils.WithTitle("первая"))
	testutils.CreateTestArticle(db, testutils.WithTitle("вторая"))
	testutils.CreateTestArticle(db, testutils.WithTitle("третья"))

	// 编辑一篇旧文章把它顶到最前面
	if _, err := service.Update("первая", "обновлено", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	articles, err := service.List()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(articles))
	}
	if articles[0].Title != "первая" {
		t.Errorf("Most recently edited article must come first, got %q", articles[0].Title)
	}
}

func TestGetArticle_ViewCounting(t *testing.T) {
	_, db := setupArticleService(t)

	counting := articlePkg.NewArticleService(
		db,
		articlePkg.NewArticleRepository(db),
		articlePkg.NewHistoryRepository(db),
		nil,
		articlePkg.ServiceOptions{CountViews: true},
	)

	created := testutils.CreateTestArticle(db, testutils.WithTitle("популярная"))
	if created.ViewCount != 0 {
		t.Fatalf("Fresh article must start at 0 views, got %d", created.ViewCount)
	}

	// 开启计数：每次读取加一
	for want := uint(1); want <= 3; want++ {
		art, err := counting.Get("популярная")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if art.ViewCount != want {
			t.Errorf("Expected %d views, got %d", want, art.ViewCount)
		}
	}

	// 关闭计数（默认）：读取不再改动计数器
	silent := articlePkg.NewArticleService(
		db,
		articlePkg.NewArticleRepository(db),
		articlePkg.NewHistoryRepository(db),
		nil,
		articlePkg.ServiceOptions{},
	)
	art, err := silent.Get("популярная")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if art.ViewCount != 3 {
		t.Errorf("Disabled counting must leave the counter untouched, got %d", art.ViewCount)
	}
	if art, err = silent.Get("популярная"); err != nil || art.ViewCount != 3 {
		t.Errorf("Counter moved with counting disabled: %d (err=%v)", art.ViewCount, err)
	}
}

func TestBackupNotification_FiresAfterMutations(t *testing.T) {
	_, db := setupArticleService(t)

	notifier := &recordingNotifier{}
	service := articlePkg.NewArticleService(
		db,
		articlePkg.NewArticleRepository(db),
		articlePkg.NewHistoryRepository(db),
		notifier,
		articlePkg.ServiceOptions{},
	)

	if _, err := service.Create("бэкап", "раз", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := service.Update("бэкап", "два", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries := notifier.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 backup notifications, got %d", len(entries))
	}
	if entries[1].Content != "два" {
		t.Errorf("Backup must carry committed content, got %q", entries[1].Content)
	}

	// 失败的变更不触发备份
	if _, err := service.Update("нет-такой", "contents", nil); err == nil {
		t.Fatal("Expected error")
	}
	if got := len(notifier.Entries()); got != 2 {
		t.Errorf("Failed mutation must not notify backup, got %d", got)
	}
}
