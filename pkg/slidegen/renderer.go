package slidegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer 负责将单张幻灯片的markdown渲染为HTML片段
type Renderer struct {
	md             goldmark.Markdown
	closingPhrases []string
}

// NewRenderer 创建幻灯片渲染器，closingPhrases为结束页触发短语，
// 为空时使用默认短语集
func NewRenderer(closingPhrases []string) *Renderer {
	if len(closingPhrases) == 0 {
		closingPhrases = defaultClosingPhrases
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // GitHub风格Markdown，支持表格
				extension.Linkify,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithXHTML(),
				html.WithUnsafe(), // 允许原始HTML通过，iframe嵌入依赖此项
			),
		),
		closingPhrases: closingPhrases,
	}
}

// 默认结束页触发短语，可通过配置覆盖
var defaultClosingPhrases = []string{
	"谢谢", "感谢观看", "Thank you", "Q&A", "감사합니다", "질문이 있으신가요",
}

// ConvertMarkdown 将markdown转换为HTML
func (r *Renderer) ConvertMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// IsClosingSlide 判断是否为结束页：必须是最后一张且正文包含触发短语。
// 仅做子串匹配，未按这些说法收尾的结束页按普通幻灯片渲染
func (r *Renderer) IsClosingSlide(body string, index, total int) bool {
	if index != total {
		return false
	}
	for _, phrase := range r.closingPhrases {
		if strings.Contains(body, phrase) {
			return true
		}
	}
	return false
}

// RenderSlide 渲染单张正文幻灯片，带页码指示与结束页标记
func (r *Renderer) RenderSlide(body string, index, total int) (string, error) {
	content, err := r.ConvertMarkdown(body)
	if err != nil {
		return "", err
	}

	class := "slide"
	if r.IsClosingSlide(body, index, total) {
		class = "slide slide-closing"
	}

	return fmt.Sprintf(`<section class="%s" data-slide-number="%d">
  <div class="slide-content">
%s  </div>
  <div class="slide-footer">
    <span class="slide-number">%d / %d</span>
  </div>
</section>`, class, index, content, index, total), nil
}
