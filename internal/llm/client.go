package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/yockii/markslide/pkg/logger"
)

// Client 文本生成服务客户端，将自由文本转换为结构化markdown。
// 对核心流程而言这是一个只返回markdown的黑盒
type Client struct {
	baseUrl       string
	defaultAPIKey string
	model         string
	httpClient    *http.Client
}

func NewClient(baseUrl, defaultAPIKey, model string) *Client {
	return &Client{
		baseUrl:       strings.TrimRight(baseUrl, "/"),
		defaultAPIKey: defaultAPIKey,
		model:         model,
		httpClient:    &http.Client{},
	}
}

// ErrNoAPIKey 调用方与服务端配置均未提供API密钥
var ErrNoAPIKey = fmt.Errorf("未提供API密钥")

// ConvertMetadata 转换结果的内容特征
type ConvertMetadata struct {
	PageCount int  `json:"pageCount"`
	HasVideo  bool `json:"hasVideo"`
	HasCode   bool `json:"hasCode"`
	HasTable  bool `json:"hasTable"`
}

// ConvertResult 文本转markdown的结果
type ConvertResult struct {
	Markdown string          `json:"markdown"`
	Metadata ConvertMetadata `json:"metadata"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContent 调用生成接口并取回文本
func (c *Client) generateContent(ctx context.Context, prompt, apiKey, model string) (string, error) {
	if apiKey == "" {
		apiKey = c.defaultAPIKey
	}
	if apiKey == "" {
		logger.Error("未提供API密钥")
		return "", ErrNoAPIKey
	}
	if model == "" {
		model = c.model
	}

	reqBody, err := json.Marshal(&generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		logger.Error("序列化请求体失败", logger.F("err", err))
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseUrl, model, apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		logger.Error("创建请求失败", logger.F("err", err))
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("发送请求失败", logger.F("err", err))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("读取响应失败", logger.F("err", err))
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error("API返回错误", logger.F("statusCode", resp.StatusCode), logger.F("response", string(body)))
		return "", fmt.Errorf("API错误: %d, %s", resp.StatusCode, string(body))
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text").String()
	if text == "" {
		logger.Error("响应中没有生成文本", logger.F("response", string(body)))
		return "", fmt.Errorf("响应中没有生成文本")
	}
	return text, nil
}

// ConvertTextToMarkdown 将自由文本转换为幻灯片markdown。
// apiKey为调用方传入的密钥，空则使用服务端配置；targetPages为目标总页数
func (c *Client) ConvertTextToMarkdown(ctx context.Context, text, apiKey string, targetPages int, model string) (*ConvertResult, error) {
	features := detectContentFeatures(text)
	prompt := buildConvertPrompt(text, targetPages, features)

	raw, err := c.generateContent(ctx, prompt, apiKey, model)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		Markdown: stripCodeFence(raw),
		Metadata: ConvertMetadata{
			PageCount: targetPages,
			HasVideo:  features.hasVideo,
			HasCode:   features.hasCode,
			HasTable:  features.hasTable,
		},
	}, nil
}

// EnhanceMarkdown 优化既有markdown的幻灯片结构与信息密度
func (c *Client) EnhanceMarkdown(ctx context.Context, markdown, apiKey string) (string, error) {
	raw, err := c.generateContent(ctx, buildEnhancePrompt(markdown), apiKey, "")
	if err != nil {
		return "", err
	}
	return stripCodeFence(raw), nil
}

var (
	fenceOpenPattern  = regexp.MustCompile(`(?i)^` + "```" + `markdown\n?`)
	fenceClosePattern = regexp.MustCompile(`\n?` + "```" + `$`)
)

// stripCodeFence 去掉模型偶尔包裹的markdown代码块围栏
func stripCodeFence(markdown string) string {
	markdown = strings.TrimSpace(markdown)
	markdown = fenceOpenPattern.ReplaceAllString(markdown, "")
	markdown = fenceClosePattern.ReplaceAllString(markdown, "")
	return strings.TrimSpace(markdown)
}

type contentFeatures struct {
	hasVideo bool
	hasCode  bool
	hasTable bool
}

// detectContentFeatures 探测原文中的特殊内容，用于拼接附加提示词
func detectContentFeatures(text string) contentFeatures {
	return contentFeatures{
		hasVideo: strings.Contains(text, "youtube.com") || strings.Contains(text, "youtu.be"),
		hasCode:  strings.Contains(text, "```") || strings.Contains(text, "func ") || strings.Contains(text, "def ") || strings.Contains(text, "class "),
		hasTable: strings.Contains(text, "|") && strings.Count(text, "|") >= 4,
	}
}
