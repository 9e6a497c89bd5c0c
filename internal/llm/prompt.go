package llm

import (
	"fmt"
	"strings"
)

// 文本转幻灯片markdown的基础提示词。
// 要求每个H2/H3小节前有"---"分隔符；即便模型漏掉，
// 下游的结构修复也会补齐，这里的约束只是提高首次命中率
const basePrompt = `你是专业的演示文稿制作专家，请将给定文本转换为标准的幻灯片markdown。

转换规则：
1. 先分析文本结构：识别主要小节（##）与子小节（###）
2. 每个H2和H3小节必须是独立的幻灯片，小节之间用单独一行"---"分隔
3. 第一张幻灯片为封面：一级标题 + 作者/日期
4. 每张幻灯片正文控制在5-7个要点以内，保证单屏可读
5. 最后一张为结束页（如"谢谢"、"Q&A"），可不加结尾分隔符
6. 只返回markdown本身，不要附加任何解释`

const videoPrompt = `文本中包含视频链接：请将视频URL单独成行保留，不要改写为其他格式。`

const codePrompt = `文本中包含代码：请使用带语言标注的代码块呈现，每张幻灯片的代码不超过15行。`

const tablePrompt = `文本中包含表格数据：请使用markdown表格呈现，列数不超过5列。`

// buildConvertPrompt 拼装完整的转换提示词
func buildConvertPrompt(text string, targetPages int, features contentFeatures) string {
	var b strings.Builder

	if features.hasVideo {
		b.WriteString(videoPrompt)
		b.WriteString("\n\n")
	}
	if features.hasCode {
		b.WriteString(codePrompt)
		b.WriteString("\n\n")
	}
	if features.hasTable {
		b.WriteString(tablePrompt)
		b.WriteString("\n\n")
	}

	b.WriteString(basePrompt)
	fmt.Fprintf(&b, "\n\n# 目标页数\n约%d张幻灯片。\n\n# 待转换文本\n%s\n", targetPages, text)
	return b.String()
}

// buildEnhancePrompt 拼装markdown优化提示词
func buildEnhancePrompt(markdown string) string {
	return fmt.Sprintf(`你是幻灯片markdown优化专家，请优化以下markdown使其更适合演示：

优化规则：
1. 每张幻灯片内容精简为5-7个要点
2. 过长的幻灯片拆分为多张
3. 明确标题与内容的层级结构
4. 合理使用列表、表格与代码块
5. 保持幻灯片之间的逻辑连贯

待优化markdown：
%s

只返回优化后的markdown本身，不要附加任何解释。`, markdown)
}
