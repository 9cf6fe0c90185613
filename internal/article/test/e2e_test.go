package article_test

import (
	"errors"
	"testing"

	articlePkg "shchuropedia/wiki-service/internal/article"
	"shchuropedia/wiki-service/internal/testutils"
)

// TestWikiLifecycle 完整走一遍文章的生命周期：
// 创建 → 阅读 → 两次编辑 → 搜索 → 查历史 → 恢复基线 → 再恢复 → 删除
func TestWikiLifecycle(t *testing.T) {
	service, db := setupArticleService(t)

	alice := testutils.CreateTestUser(db, testutils.WithUsername("alice"))
	bob := testutils.CreateTestUser(db, testutils.WithUsername("bob"))

	// 创建：标题被清洗，历史立刻有基线
	art, err := service.Create("Теория Щуризма", "# Щуризм\n\nУчение Дяди Щуры.", uintPtr(alice.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if art.Title != "теория-щуризма" {
		t.Fatalf("sanitized title mismatch: %q", art.Title)
	}

	// 阅读
	got, err := service.Get("теория-щуризма")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "# Щуризм\n\nУчение Дяди Щуры." {
		t.Fatalf("content mismatch after create")
	}

	// 两次编辑，作者换人
	if _, err := service.Update("теория-щуризма", "# Щуризм\n\nРасширенное учение.", uintPtr(bob.ID)); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if _, err := service.Update("теория-щуризма", "# Щуризм\n\nВандализм!", uintPtr(bob.ID)); err != nil {
		t.Fatalf("second update: %v", err)
	}

	// 搜索只看当前内容
	if results, err := service.Search("вандализм"); err != nil || len(results) != 1 {
		t.Fatalf("search current: results=%d err=%v", len(results), err)
	}
	if results, err := service.Search("расширенное"); err != nil || len(results) != 0 {
		t.Fatalf("search must not see history: results=%d err=%v", len(results), err)
	}

	// 历史：基线 + 两次被顶掉的状态
	_, entries, err := service.GetHistory("теория-щуризма")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(entries))
	}

	// 恢复基线，消灭破坏
	baseline := entries[len(entries)-1]
	restored, err := service.Restore(baseline.ID, uintPtr(alice.ID))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Content != "# Щуризм\n\nУчение Дяди Щуры." {
		t.Fatalf("restore content mismatch: %q", restored.Content)
	}
	if restored.AuthorID == nil || *restored.AuthorID != alice.ID {
		t.Fatalf("restore author must be alice")
	}

	// 被顶掉的破坏版本也进了台账，链条不断
	_, entries, err = service.GetHistory("теория-щуризма")
	if err != nil {
		t.Fatalf("history after restore: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("restore must append to history, got %d entries", len(entries))
	}
	if entries[0].Content != "# Щуризм\n\nВандализм!" {
		t.Fatalf("displaced vandalism must be archived, got %q", entries[0].Content)
	}

	// 删除：文章和台账一起消失
	if err := service.Delete("теория-щуризма"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := service.Get("теория-щуризма"); !errors.Is(err, articlePkg.ErrArticleNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if remaining := historyFor(t, db, art.ID); len(remaining) != 0 {
		t.Fatalf("expected empty ledger after cascade delete, got %d", len(remaining))
	}

	// 标题随删除释放，可以重新占用
	if _, err := service.Create("Теория Щуризма", "с чистого листа", nil); err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
}
