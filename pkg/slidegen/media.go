package slidegen

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultEmbedHeight 视频嵌入默认高度（px）
const DefaultEmbedHeight = 400

// 支持watch带参形式与短链形式，视频ID固定11位
var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([A-Za-z0-9_-]{11})`),
	}
	standaloneVideoURL = regexp.MustCompile(`^(https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)[A-Za-z0-9_-]{11}(?:\S*))$`)
	linkedVideoURL     = regexp.MustCompile(`\[([^\]]*)\]\((https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)[A-Za-z0-9_-]{11}(?:\S*))\)`)
)

// ExtractVideoID 从视频URL中提取视频ID，提取失败返回空串
func ExtractVideoID(url string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(url); len(match) > 1 {
			return match[1]
		}
	}
	return ""
}

func embedFragment(videoID string, height int) string {
	if height <= 0 {
		height = DefaultEmbedHeight
	}
	return fmt.Sprintf(`<iframe width="100%%" height="%d" src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen></iframe>`, height, videoID)
}

// RewriteMediaLinks 将markdown中的视频URL改写为可嵌入的iframe片段。
// 规则按行依次判断：
// 1. 已含iframe的行不改写，尊重用户手写的嵌入
// 2. 独立成行的裸视频URL替换为iframe，后跟空行
// 3. [标题](视频URL)链接形式替换为加粗标题 + iframe
// 4. 其余行（包括句中URL）原样保留，避免破坏正文
func RewriteMediaLinks(markdown string, embedHeight int) string {
	lines := strings.Split(markdown, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.Contains(trimmed, "<iframe") {
			result = append(result, line)
			continue
		}

		if match := standaloneVideoURL.FindStringSubmatch(trimmed); match != nil {
			if videoID := ExtractVideoID(match[1]); videoID != "" {
				result = append(result, embedFragment(videoID, embedHeight), "")
				continue
			}
		}

		if match := linkedVideoURL.FindStringSubmatch(trimmed); match != nil {
			if videoID := ExtractVideoID(match[2]); videoID != "" {
				if title := strings.TrimSpace(match[1]); title != "" {
					result = append(result, "**"+title+"**", "")
				}
				result = append(result, embedFragment(videoID, embedHeight), "")
				continue
			}
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
