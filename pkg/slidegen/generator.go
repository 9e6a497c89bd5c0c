package slidegen

import (
	"context"
	"fmt"
	"html"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Metadata 演示文稿元数据
type Metadata struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Author    string `json:"author"`
	PageCount int    `json:"pageCount"` // 目标总页数（含封面），仅作参考
}

// Options 生成器选项
type Options struct {
	ClosingPhrases []string // 结束页触发短语
	EmbedHeight    int      // 视频嵌入高度（px）
}

// Generator 将markdown转换为完整的HTML演示文稿
type Generator struct {
	renderer    *Renderer
	embedHeight int
}

// NewGenerator 创建演示文稿生成器
func NewGenerator(opts Options) *Generator {
	height := opts.EmbedHeight
	if height <= 0 {
		height = DefaultEmbedHeight
	}
	return &Generator{
		renderer:    NewRenderer(opts.ClosingPhrases),
		embedHeight: height,
	}
}

// SplitSlides 执行完整的分割流水线：标题分隔修复 → 媒体改写 → 分割
func (g *Generator) SplitSlides(markdown string, target int) []string {
	processed := EnforceSlideBreaks(markdown)
	processed = RewriteMediaLinks(processed, g.embedHeight)
	return Segment(processed, target)
}

// Generate 生成完整的HTML演示文稿文档。
// 封面由元数据合成，不占正文目标页数；正文各张幻灯片互不依赖，
// 并发渲染后按分割顺序收集
func (g *Generator) Generate(ctx context.Context, markdown string, meta Metadata, theme *Theme) (string, error) {
	target := meta.PageCount - 1
	if target < 1 {
		target = 1
	}

	bodies := g.SplitSlides(markdown, target)
	total := len(bodies)

	rendered := make([]string, total)
	eg, _ := errgroup.WithContext(ctx)
	for i, body := range bodies {
		i, body := i, body
		eg.Go(func() error {
			section, err := g.renderer.RenderSlide(body, i+1, total)
			if err != nil {
				return err
			}
			rendered[i] = section
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	slidesHTML := buildCoverSlide(meta) + "\n" + strings.Join(rendered, "\n")
	return assembleDocument(slidesHTML, meta, theme), nil
}

// buildCoverSlide 合成封面：标题必显，副标题与作者仅在非空时显示
func buildCoverSlide(meta Metadata) string {
	var b strings.Builder
	b.WriteString(`<section class="slide slide-cover">
  <div class="cover-content">
`)
	b.WriteString(fmt.Sprintf("    <h1 class=\"cover-title\">%s</h1>\n", html.EscapeString(meta.Title)))
	if meta.Subtitle != "" {
		b.WriteString(fmt.Sprintf("    <p class=\"cover-subtitle\">%s</p>\n", html.EscapeString(meta.Subtitle)))
	}
	if meta.Author != "" {
		b.WriteString(fmt.Sprintf("    <p class=\"cover-author\">%s</p>\n", html.EscapeString(meta.Author)))
	}
	b.WriteString(`  </div>
</section>`)
	return b.String()
}

// assembleDocument 组装为独立可用的完整HTML文档，
// 除网络字体外不依赖任何外部资源
func assembleDocument(slidesHTML string, meta Metadata, theme *Theme) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="zh">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <style>
%s
%s
  </style>
</head>
<body>
  <div class="presentation">
%s
  </div>

  <div class="controls">
    <button class="control-btn" id="prevBtn">◀ 上一页</button>
    <button class="control-btn" id="nextBtn">下一页 ▶</button>
  </div>

  <script>
%s
  </script>
</body>
</html>`, html.EscapeString(meta.Title), baseStyles, BuildThemeStyles(theme), slidesHTML, navigationScript)
}
