package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/pkg/slidegen"
)

func TestDeckServiceGenerate(t *testing.T) {
	srv := NewDeckService()

	html, err := srv.Generate(context.Background(),
		"## 简介\n内容\n\n---\n\n## 谢谢",
		slidegen.Metadata{Title: "演示", PageCount: 3},
		"apple-keynote",
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(html), "<!DOCTYPE html>"))
	assert.Contains(t, string(html), "演示")
}

func TestDeckServiceGenerateValidation(t *testing.T) {
	srv := NewDeckService()
	meta := slidegen.Metadata{Title: "T", PageCount: 3}

	tests := []struct {
		name     string
		markdown string
		meta     slidegen.Metadata
		themeID  string
		expected error
	}{
		{"空markdown", "  ", meta, "apple-keynote", constant.ErrMarkdownEmpty},
		{"空标题", "## 内容", slidegen.Metadata{PageCount: 3}, "apple-keynote", constant.ErrTitleEmpty},
		{"未知主题", "## 内容", meta, "no-such-theme", constant.ErrThemeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Generate(context.Background(), tt.markdown, tt.meta, tt.themeID)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDeckServiceThemes(t *testing.T) {
	srv := NewDeckService()
	assert.Len(t, srv.Themes(), 8)
}
