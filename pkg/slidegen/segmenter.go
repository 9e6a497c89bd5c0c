package slidegen

import (
	"regexp"
	"sort"
	"strings"
)

// 短于该长度的片段不参与扩展拆分
const minSplitLength = 200

var (
	paragraphDelimiter = regexp.MustCompile(`\n{2,}`)
	bulletDelimiter    = regexp.MustCompile(`\n[-*•]\s+`)
)

// Segment 将规范化后的markdown分割为正文幻灯片列表。
// target为期望的正文页数，仅作参考：结构完整性优先于精确命中页数，
// 返回结果介于1和target之间，绝不为空。
func Segment(markdown string, target int) []string {
	if target < 1 {
		target = 1
	}

	fragments := splitFragments(markdown)
	if len(fragments) == 0 {
		// 没有任何分割点时整篇作为一张幻灯片兜底
		return []string{strings.TrimSpace(markdown)}
	}

	switch {
	case len(fragments) > target:
		return mergeFragments(fragments, target)
	case len(fragments) < target:
		return expandFragments(fragments, target)
	}
	return fragments
}

// splitFragments 按独立分隔符行分割，H1/H2标题行同时作为隐式分割点，
// 没有显式分隔符的文档也能沿顶层结构分割
func splitFragments(markdown string) []string {
	lines := strings.Split(markdown, "\n")

	var fragments []string
	var current []string
	flush := func() {
		joined := strings.TrimSpace(strings.Join(current, "\n"))
		if joined != "" && joined != "---" {
			fragments = append(fragments, joined)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" {
			flush()
			continue
		}
		if strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "## ") {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return fragments
}

// mergeFragments 将片段按组合并到目标页数，严格从左到右成组，
// 不按内容权重再平衡，超量时截断到目标页数
func mergeFragments(fragments []string, target int) []string {
	groupSize := (len(fragments) + target - 1) / target

	var result []string
	for i := 0; i < len(fragments); i += groupSize {
		end := i + groupSize
		if end > len(fragments) {
			end = len(fragments)
		}
		result = append(result, strings.Join(fragments[i:end], "\n\n"))
	}

	if len(result) > target {
		result = result[:target]
	}
	return result
}

// expandFragments 拆分较长片段补足到目标页数。
// 优先拆最长的片段，长度相同按原始顺序取前者；
// 拆不开的片段原样保留，宁可少于目标页数也不编造内容
func expandFragments(fragments []string, target int) []string {
	needed := target - len(fragments)

	type ranked struct {
		index  int
		length int
	}
	order := make([]ranked, len(fragments))
	for i, f := range fragments {
		order[i] = ranked{index: i, length: len(f)}
	}
	sort.SliceStable(order, func(a, b int) bool {
		if order[a].length != order[b].length {
			return order[a].length > order[b].length
		}
		return order[a].index < order[b].index
	})

	toSplit := make(map[int]bool, needed)
	for i := 0; i < needed && i < len(order); i++ {
		toSplit[order[i].index] = true
	}

	var result []string
	for i, fragment := range fragments {
		if toSplit[i] && len(fragment) > minSplitLength {
			result = append(result, splitFragment(fragment)...)
		} else {
			result = append(result, fragment)
		}
	}

	// 多个片段各拆为两半可能超过目标，截断丢弃尾部
	if len(result) > target {
		result = result[:target]
	}
	return result
}

// splitFragment 将片段一分为二：先按空行分段对半拆，
// 只有一个段落时再尝试按列表项对半拆，列表引导文字补回两半
func splitFragment(fragment string) []string {
	var paragraphs []string
	for _, p := range paragraphDelimiter.Split(fragment, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) >= 2 {
		mid := (len(paragraphs) + 1) / 2
		return []string{
			strings.Join(paragraphs[:mid], "\n\n"),
			strings.Join(paragraphs[mid:], "\n\n"),
		}
	}

	var items []string
	for _, item := range bulletDelimiter.Split(fragment, -1) {
		if strings.TrimSpace(item) != "" {
			items = append(items, item)
		}
	}
	if len(items) >= 2 {
		mid := (len(items) + 1) / 2
		lead := items[0]
		return []string{
			lead + "\n" + joinBullets(items[1:mid]),
			lead + "\n" + joinBullets(items[mid:]),
		}
	}

	return []string{fragment}
}

func joinBullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
