// Package render Markdown 到 HTML 的渲染协作方
// 渲染只在展示时进行，结果永不落库
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer 纯函数式的 Markdown→HTML 渲染接口
type Renderer interface {
	Render(markdown string) (string, error)
}

// GoldmarkRenderer goldmark 实现，无状态，可跨请求复用
type GoldmarkRenderer struct {
	engine goldmark.Markdown
}

// NewGoldmarkRenderer GFM扩展 + 自动标题ID，不允许内联原生HTML
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		),
	}
}

func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("渲染Markdown失败: %w", err)
	}
	return buf.String(), nil
}
