package service

import (
	"context"
	"strings"

	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/pkg/config"
	"github.com/yockii/markslide/pkg/logger"
	"github.com/yockii/markslide/pkg/slidegen"
)

type deckService struct {
	generator *slidegen.Generator
}

func NewDeckService() DeckService {
	return &deckService{
		generator: slidegen.NewGenerator(slidegen.Options{
			ClosingPhrases: config.GetStringSlice("slide.closing_phrases"),
			EmbedHeight:    config.GetInt("slide.embed_height"),
		}),
	}
}

func (s *deckService) Generate(ctx context.Context, markdown string, meta slidegen.Metadata, themeID string) ([]byte, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, constant.ErrMarkdownEmpty
	}
	if strings.TrimSpace(meta.Title) == "" {
		return nil, constant.ErrTitleEmpty
	}

	theme := slidegen.GetThemeByID(themeID)
	if theme == nil {
		return nil, constant.ErrThemeNotFound
	}

	if meta.PageCount <= 0 {
		meta.PageCount = config.GetInt("slide.default_page_count")
	}
	if max := config.GetInt("slide.max_page_count"); max > 0 && meta.PageCount > max {
		meta.PageCount = max
	}

	html, err := s.generator.Generate(ctx, markdown, meta, theme)
	if err != nil {
		logger.Error("生成演示文稿失败", logger.F("title", meta.Title), logger.F("err", err))
		return nil, constant.ErrInternalError
	}

	return []byte(html), nil
}

func (s *deckService) Themes() []*slidegen.Theme {
	return slidegen.Themes()
}
