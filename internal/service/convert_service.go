package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/llm"
	"github.com/yockii/markslide/pkg/config"
	"github.com/yockii/markslide/pkg/logger"
)

type convertService struct {
	client *llm.Client
}

func NewConvertService(client *llm.Client) ConvertService {
	return &convertService{client: client}
}

func (s *convertService) ConvertText(ctx context.Context, text, apiKey string, pageCount int, modelName string) (*llm.ConvertResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, constant.ErrTextEmpty
	}

	if pageCount <= 0 {
		pageCount = config.GetInt("slide.default_page_count")
	}
	if min := config.GetInt("slide.min_page_count"); pageCount < min {
		pageCount = min
	}
	if max := config.GetInt("slide.max_page_count"); pageCount > max {
		pageCount = max
	}

	result, err := s.client.ConvertTextToMarkdown(ctx, text, apiKey, pageCount, modelName)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return nil, constant.ErrAPIKeyMissing
		}
		// 原始错误仅记录日志，对外统一为转换失败
		logger.Error("文本转换失败", logger.F("err", err))
		return nil, constant.ErrConvertFailed
	}
	return result, nil
}

func (s *convertService) Enhance(ctx context.Context, markdown, apiKey string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", constant.ErrMarkdownEmpty
	}

	enhanced, err := s.client.EnhanceMarkdown(ctx, markdown, apiKey)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return "", constant.ErrAPIKeyMissing
		}
		logger.Error("markdown优化失败", logger.F("err", err))
		return "", constant.ErrConvertFailed
	}
	return enhanced, nil
}
