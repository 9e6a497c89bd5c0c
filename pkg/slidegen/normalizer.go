package slidegen

import "strings"

// 行分类，单次前向扫描使用，避免依赖多行正则的分割语义
type lineClass int

const (
	lineContent lineClass = iota
	lineBlank
	lineSeparator
	lineHeading2
	lineHeading3
)

func classifyLine(line string) lineClass {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank
	case trimmed == "---":
		return lineSeparator
	case strings.HasPrefix(trimmed, "### "):
		return lineHeading3
	case strings.HasPrefix(trimmed, "## "):
		return lineHeading2
	}
	return lineContent
}

// EnforceSlideBreaks 在缺少分隔符的H2/H3标题前强制插入"---"，
// 保证下游分割不会把两个独立小节并到同一张幻灯片。
// 上游生成的markdown经常漏掉分隔符，这里做结构修复。
// 文档中第一个H2/H3标题前不插入，已有分隔符原样保留，重复执行结果不变。
func EnforceSlideBreaks(markdown string) string {
	lines := strings.Split(markdown, "\n")
	result := make([]string, 0, len(lines))

	prevBlank := false
	// 记录最近一条非空行是否为分隔符，空行不重置该状态
	prevSeparator := false
	seenHeading := false

	for _, line := range lines {
		switch classifyLine(line) {
		case lineHeading2, lineHeading3:
			if seenHeading && !prevSeparator {
				if !prevBlank && len(result) > 0 {
					result = append(result, "")
				}
				result = append(result, "---", "")
			}
			result = append(result, line)
			seenHeading = true
			prevBlank = false
			prevSeparator = false
		case lineSeparator:
			result = append(result, line)
			prevBlank = false
			prevSeparator = true
		case lineBlank:
			result = append(result, line)
			prevBlank = true
		default:
			result = append(result, line)
			prevBlank = false
			prevSeparator = false
		}
	}

	return strings.Join(result, "\n")
}
