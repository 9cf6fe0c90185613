package article_test

import (
	"testing"

	"shchuropedia/wiki-service/internal/testutils"
)

func TestSearch(t *testing.T) {
	service, db := setupArticleService(t)

	testutils.CreateTestArticle(db,
		testutils.WithTitle("язык-go"),
		testutils.WithContent("# Go\n\nКомпилируемый язык от Google."))
	testutils.CreateTestArticle(db,
		testutils.WithTitle("язык-python"),
		testutils.WithContent("# Python\n\nИнтерпретируемый язык."))
	testutils.CreateTestArticle(db,
		testutils.WithTitle("кулинария"),
		testutils.WithContent("# Борщ\n\nРецепт борща. Google тут ни при чём."))

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{
			name:       "matches in title",
			query:      "язык",
			wantTitles: []string{"язык-go", "язык-python"},
		},
		{
			name:       "matches in content only",
			query:      "борщ",
			wantTitles: []string{"кулинария"},
		},
		{
			name:       "case insensitive",
			query:      "google",
			wantTitles: []string{"язык-go", "кулинария"},
		},
		{
			name:       "substring match",
			query:      "терпрет",
			wantTitles: []string{"язык-python"},
		},
		{
			name:       "no matches",
			query:      "квантовая-физика",
			wantTitles: []string{},
		},
		{
			name:       "empty query returns empty set",
			query:      "",
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Search(tt.query)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			got := make(map[string]bool, len(results))
			for _, art := range results {
				got[art.Title] = true
			}

			if len(results) != len(tt.wantTitles) {
				t.Fatalf("Expected %d results, got %d (%v)", len(tt.wantTitles), len(results), got)
			}
			for _, title := range tt.wantTitles {
				if !got[title] {
					t.Errorf("Expected %q in results", title)
				}
			}
		})
	}
}

func TestSearch_LikeMetacharactersAreLiteral(t *testing.T) {
	service, db := setupArticleService(t)

	testutils.CreateTestArticle(db,
		testutils.WithTitle("будни"),
		testutils.WithContent("nothing special here"))
	testutils.CreateTestArticle(db,
		testutils.WithTitle("батарея"),
		testutils.WithContent("battery at 50% now"))
	testutils.CreateTestArticle(db,
		testutils.WithTitle("snake-case"),
		testutils.WithContent("identifiers like snake_case"))

	// % 不是通配符：只命中字面上含 % 的文章
	results, err := service.Search("%")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "батарея" {
		t.Fatalf("Expected only the literal-%% article, got %d results", len(results))
	}

	// _ 不是单字符通配符
	results, err = service.Search("snake_case")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "snake-case" {
		t.Fatalf("Expected only the literal snake_case article, got %d results", len(results))
	}

	// "50%" 作为整体子串
	results, err = service.Search("50% now")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result for literal substring, got %d", len(results))
	}

	// 反斜杠本身也是字面字符，不会让转义失效
	if results, err = service.Search(`\`); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	} else if len(results) != 0 {
		t.Errorf("No article contains a backslash, got %d results", len(results))
	}
}

func TestSearch_OrderedByUpdatedAt(t *testing.T) {
	service, db := setupArticleService(t)

	testutils.CreateTestArticle(db,
		testutils.WithTitle("старая-заметка"),
		testutils.WithContent("общая тема"))
	testutils.CreateTestArticle(db,
		testutils.WithTitle("новая-заметка"),
		testutils.WithContent("общая тема"))

	// 编辑旧的那篇，它必须排到最前面
	if _, err := service.Update("старая-заметка", "общая тема, дополнено", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	results, err := service.Search("общая тема")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "старая-заметка" {
		t.Errorf("Most recently edited match must come first, got %q", results[0].Title)
	}
	if results[1].Title != "новая-заметка" {
		t.Errorf("Older match must come second, got %q", results[1].Title)
	}
}

func TestSearch_ReflectsLatestContent(t *testing.T) {
	service, _ := setupArticleService(t)

	if _, err := service.Create("новости", "старый заголовок дня", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := service.Update("новости", "свежий заголовок дня", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 搜索只看当前内容，不翻历史
	if results, err := service.Search("старый"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	} else if len(results) != 0 {
		t.Errorf("Search must not match displaced content, got %d results", len(results))
	}

	if results, err := service.Search("свежий"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	} else if len(results) != 1 {
		t.Errorf("Expected 1 result for current content, got %d", len(results))
	}
}
