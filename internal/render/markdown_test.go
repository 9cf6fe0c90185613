package render

import (
	"strings"
	"testing"
)

func TestGoldmarkRenderer(t *testing.T) {
	r := NewGoldmarkRenderer()

	tests := []struct {
		name     string
		markdown string
		wantSubs []string
	}{
		{
			name:     "heading with auto id",
			markdown: "# Welcome",
			wantSubs: []string{"<h1 id=\"welcome\">Welcome</h1>"},
		},
		{
			name:     "cyrillic body",
			markdown: "Учение **Дяди Щуры**.",
			wantSubs: []string{"<strong>Дяди Щуры</strong>"},
		},
		{
			name:     "link",
			markdown: "[создать](/create)",
			wantSubs: []string{`<a href="/create">создать</a>`},
		},
		{
			name:     "gfm strikethrough",
			markdown: "~~устарело~~",
			wantSubs: []string{"<del>устарело</del>"},
		},
		{
			name:     "list",
			markdown: "- раз\n- два",
			wantSubs: []string{"<ul>", "<li>раз</li>", "<li>два</li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.markdown)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, sub := range tt.wantSubs {
				if !strings.Contains(got, sub) {
					t.Errorf("Output missing %q:\n%s", sub, got)
				}
			}
		})
	}
}

func TestGoldmarkRenderer_RawHTMLNotPassedThrough(t *testing.T) {
	r := NewGoldmarkRenderer()

	got, err := r.Render("<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("Raw HTML must not pass through: %q", got)
	}
}

func TestGoldmarkRenderer_EmptyInput(t *testing.T) {
	r := NewGoldmarkRenderer()

	got, err := r.Render("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("Empty markdown must render to empty HTML, got %q", got)
	}
}
