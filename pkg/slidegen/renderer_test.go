package slidegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdown(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"标题", "## 标题", "<h2"},
		{"表格", "| A | B |\n|---|---|\n| 1 | 2 |", "<table>"},
		{"代码块", "```go\nfunc main() {}\n```", "<pre>"},
		{"列表", "- 项目一\n- 项目二", "<li>"},
		{"iframe原样通过", `<iframe src="https://www.youtube.com/embed/x"></iframe>`, "<iframe"},
		{"自动链接", "访问 https://example.com 了解详情", `<a href="https://example.com"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.ConvertMarkdown(tt.input)
			require.NoError(t, err)
			assert.Contains(t, html, tt.contains)
		})
	}
}

func TestIsClosingSlide(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name     string
		body     string
		index    int
		total    int
		expected bool
	}{
		{"最后一张含谢谢", "# 谢谢大家", 5, 5, true},
		{"最后一张含英文短语", "Thank you for watching", 3, 3, true},
		{"最后一张含韩文短语", "감사합니다", 2, 2, true},
		{"非最后一张含短语", "# 谢谢", 2, 5, false},
		{"最后一张无短语", "# 总结\n以上是全部内容", 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.IsClosingSlide(tt.body, tt.index, tt.total))
		})
	}
}

func TestIsClosingSlideCustomPhrases(t *testing.T) {
	r := NewRenderer([]string{"完"})
	assert.True(t, r.IsClosingSlide("全剧终，完。", 3, 3))
	// 自定义短语覆盖默认短语集
	assert.False(t, r.IsClosingSlide("谢谢", 3, 3))
}

func TestRenderSlide(t *testing.T) {
	r := NewRenderer(nil)

	section, err := r.RenderSlide("## 正文\n内容", 2, 5)
	require.NoError(t, err)
	assert.Contains(t, section, `data-slide-number="2"`)
	assert.Contains(t, section, "2 / 5")
	assert.Contains(t, section, `class="slide"`)
	assert.NotContains(t, section, "slide-closing")
}

func TestRenderSlideClosing(t *testing.T) {
	r := NewRenderer(nil)

	section, err := r.RenderSlide("# 谢谢观看", 5, 5)
	require.NoError(t, err)
	assert.Contains(t, section, `class="slide slide-closing"`)
	assert.Contains(t, section, "5 / 5")
}
