package service

import (
	"context"
	"net/http"

	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/llm"
	"github.com/yockii/markslide/internal/model"
	"github.com/yockii/markslide/pkg/slidegen"
)

// DeckService 演示文稿生成服务
type DeckService interface {
	// Generate 生成完整的HTML演示文稿
	Generate(ctx context.Context, markdown string, meta slidegen.Metadata, themeID string) ([]byte, error)
	// Themes 获取可用主题目录
	Themes() []*slidegen.Theme
}

// ConvertService 文本转markdown服务
type ConvertService interface {
	// ConvertText 将自由文本转换为幻灯片markdown
	ConvertText(ctx context.Context, text, apiKey string, pageCount int, modelName string) (*llm.ConvertResult, error)
	// Enhance 优化既有markdown的幻灯片结构
	Enhance(ctx context.Context, markdown, apiKey string) (string, error)
}

// PublishResult 发布结果
type PublishResult struct {
	Key     string `json:"key"`
	URL     string `json:"url"`     // 查看页URL
	BlobURL string `json:"blobUrl"` // 存储服务原始URL
}

// PublishService 演示文稿发布服务
type PublishService interface {
	// Publish 将HTML文档上传到对象存储并记录发布历史
	Publish(ctx context.Context, title, themeID string, html []byte) (*PublishResult, error)
	// Resolve 按键取回已发布的HTML内容
	Resolve(ctx context.Context, key string) ([]byte, error)
	// Exists 检查键是否存在，存在返回公开URL
	Exists(ctx context.Context, key string) (string, error)
	// PublicURL 构造键的公开URL
	PublicURL(key string) string
}

// HistoryService 发布历史存取，上限20条，仅作参考
type HistoryService interface {
	// Load 读取最近的发布记录
	Load(ctx context.Context) ([]*model.PublishRecord, error)
	// Save 保存一条发布记录并裁剪超限的旧记录
	Save(ctx context.Context, record *model.PublishRecord) error
}

// /////////////////////////////
// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func OK(data interface{}) *Response {
	return NewResponse(data, nil)
}

func Error(err error) *Response {
	return NewResponse(nil, err)
}

// NewResponse 创建响应
func NewResponse(data interface{}, err error) *Response {
	if err == nil {
		return &Response{
			Code:    http.StatusOK,
			Message: "success",
			Data:    data,
		}
	}

	return &Response{
		Code:    constant.GetErrorCode(err),
		Message: err.Error(),
		Data:    data,
	}
}
