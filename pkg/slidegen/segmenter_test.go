package slidegen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSections(n int) string {
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, fmt.Sprintf("## 第%d节\n内容%d", i, i))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

func TestSegmentExactMatch(t *testing.T) {
	slides := Segment(buildSections(3), 3)
	assert.Len(t, slides, 3)
	assert.Contains(t, slides[0], "第1节")
	assert.Contains(t, slides[2], "第3节")
}

func TestSegmentMerge(t *testing.T) {
	tests := []struct {
		name      string
		fragments int
		target    int
		expected  int
	}{
		{"六合三", 6, 3, 3},
		{"五合二", 5, 2, 2},
		{"七合三", 7, 3, 3},
		{"十合一", 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides := Segment(buildSections(tt.fragments), tt.target)
			assert.Len(t, slides, tt.expected)
			// 合并不丢内容
			joined := strings.Join(slides, "\n")
			for i := 1; i <= tt.fragments; i++ {
				assert.Contains(t, joined, fmt.Sprintf("第%d节", i))
			}
		})
	}
}

func TestSegmentMergeKeepsOrder(t *testing.T) {
	slides := Segment(buildSections(4), 2)
	assert.Len(t, slides, 2)
	assert.Contains(t, slides[0], "第1节")
	assert.Contains(t, slides[0], "第2节")
	assert.Contains(t, slides[1], "第3节")
	assert.Contains(t, slides[1], "第4节")
}

func TestSegmentExpandByParagraph(t *testing.T) {
	long := "## 长节\n" +
		strings.Repeat("第一段内容。", 30) + "\n\n" +
		strings.Repeat("第二段内容。", 30)
	slides := Segment(long, 2)
	assert.Len(t, slides, 2)
	assert.Contains(t, slides[0], "第一段内容")
	assert.Contains(t, slides[1], "第二段内容")
}

func TestSegmentExpandByBullets(t *testing.T) {
	long := "要点列表：\n" +
		"- " + strings.Repeat("要点一。", 15) + "\n" +
		"- " + strings.Repeat("要点二。", 15) + "\n" +
		"- " + strings.Repeat("要点三。", 15) + "\n" +
		"- " + strings.Repeat("要点四。", 15)
	slides := Segment(long, 2)
	assert.Len(t, slides, 2)
	// 列表引导文字补回两半
	assert.Contains(t, slides[0], "要点列表")
	assert.Contains(t, slides[1], "要点列表")
	assert.Contains(t, slides[1], "要点四")
}

func TestSegmentExpandShortFragmentUnchanged(t *testing.T) {
	// 短片段不参与拆分，宁可少于目标页数
	slides := Segment("## 唯一一节\n很短的内容", 5)
	assert.Len(t, slides, 1)
}

func TestSegmentNeverExceedsTarget(t *testing.T) {
	for _, target := range []int{1, 2, 3, 5, 10} {
		slides := Segment(buildSections(8), target)
		assert.LessOrEqual(t, len(slides), target)
		assert.NotEmpty(t, slides)
	}
}

func TestSegmentTargetClamp(t *testing.T) {
	slides := Segment(buildSections(4), 0)
	assert.Len(t, slides, 1)

	slides = Segment(buildSections(4), -3)
	assert.Len(t, slides, 1)
}

func TestSegmentEmptyDocument(t *testing.T) {
	slides := Segment("", 5)
	assert.Len(t, slides, 1)
}

func TestSegmentTitleMergedWithFirstSection(t *testing.T) {
	markdown := "# Title\n\n## A\n- x\n- y\n---\n## B\n- z"
	slides := Segment(markdown, 2)

	require.Len(t, slides, 2)
	assert.Contains(t, slides[0], "# Title")
	assert.Contains(t, slides[0], "## A")
	assert.Contains(t, slides[1], "## B")
	assert.NotContains(t, slides[1], "## A")
}

func TestSegmentLongProseUndershoots(t *testing.T) {
	// 没有空行和列表的纯段落拆不开，宁可少于目标页数
	prose := strings.Repeat("一句接着一句的连续长文。", 100)
	slides := Segment(prose, 3)
	assert.Len(t, slides, 1)
}

func TestSegmentHeadingImplicitSplit(t *testing.T) {
	// 没有显式分隔符时按H1/H2标题分割
	markdown := "# 总览\n介绍\n## 第一节\n内容一\n## 第二节\n内容二"
	slides := Segment(markdown, 3)
	assert.Len(t, slides, 3)
}
