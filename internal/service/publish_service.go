package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/model"
	"github.com/yockii/markslide/internal/storage"
	"github.com/yockii/markslide/pkg/config"
	"github.com/yockii/markslide/pkg/logger"
	"github.com/yockii/markslide/pkg/util"
)

const htmlCachePrefix = "slide_html:"

type publishService struct {
	store       storage.Store
	rdb         *redis.Client
	cacheExpire time.Duration
	history     HistoryService
}

// NewPublishService 创建发布服务。rdb与history可为nil，对应能力自动关闭
func NewPublishService(store storage.Store, rdb *redis.Client, history HistoryService) PublishService {
	expire := config.GetInt("redis.cache_expire")
	if expire <= 0 {
		expire = 3600
	}
	return &publishService{
		store:       store,
		rdb:         rdb,
		cacheExpire: time.Duration(expire) * time.Second,
		history:     history,
	}
}

func (s *publishService) Publish(ctx context.Context, title, themeID string, html []byte) (*PublishResult, error) {
	if s.store == nil {
		return nil, constant.ErrStorageNotConfigured
	}
	if len(html) == 0 {
		return nil, constant.ErrInvalidParams
	}

	key := util.NewKey(config.GetString("storage.key_prefix"))
	blobURL, err := s.store.Put(ctx, key+".html", html, "text/html; charset=utf-8")
	if err != nil {
		logger.Error("上传幻灯片失败", logger.F("key", key), logger.F("err", err))
		return nil, constant.ErrStorageError
	}

	result := &PublishResult{
		Key:     key,
		URL:     s.viewerURL(key),
		BlobURL: blobURL,
	}

	// 历史记录失败不影响发布结果
	if s.history != nil {
		record := &model.PublishRecord{
			Title:   title,
			Key:     key,
			URL:     result.URL,
			BlobURL: blobURL,
			ThemeID: themeID,
		}
		if err := s.history.Save(ctx, record); err != nil {
			logger.Warn("保存发布历史失败", logger.F("key", key), logger.F("err", err))
		}
	}

	logger.Info("幻灯片已发布", logger.F("key", key), logger.F("title", title))
	return result, nil
}

func (s *publishService) Resolve(ctx context.Context, key string) ([]byte, error) {
	if s.store == nil {
		return nil, constant.ErrStorageNotConfigured
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, htmlCachePrefix+key).Bytes(); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("读取缓存失败", logger.F("key", key), logger.F("err", err))
		}
	}

	data, err := s.store.Get(ctx, key+".html")
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, constant.ErrSlideNotFound
		}
		logger.Error("读取幻灯片失败", logger.F("key", key), logger.F("err", err))
		return nil, constant.ErrStorageError
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, htmlCachePrefix+key, data, s.cacheExpire).Err(); err != nil {
			logger.Warn("写入缓存失败", logger.F("key", key), logger.F("err", err))
		}
	}
	return data, nil
}

func (s *publishService) Exists(ctx context.Context, key string) (string, error) {
	if s.store == nil {
		return "", constant.ErrStorageNotConfigured
	}

	ok, err := s.store.Head(ctx, key+".html")
	if err != nil {
		logger.Error("检查幻灯片失败", logger.F("key", key), logger.F("err", err))
		return "", constant.ErrStorageError
	}
	if !ok {
		return "", constant.ErrSlideNotFound
	}
	return s.store.PublicURL(key + ".html"), nil
}

func (s *publishService) PublicURL(key string) string {
	if s.store == nil {
		return ""
	}
	return s.store.PublicURL(key + ".html")
}

func (s *publishService) viewerURL(key string) string {
	base := strings.TrimRight(config.GetString("server.base_url"), "/")
	return base + "/view/" + key
}
