package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/yockii/markslide/pkg/util"
)

// LocalStore 本地文件存储，未配置对象存储服务时的开发用兜底。
// 公开URL指向本服务自身的内联查看路由，短链路由重定向到这里，
// 不能再指回短链路由自身
type LocalStore struct {
	dir     string
	baseUrl string
}

func NewLocalStore(dir, baseUrl string) *LocalStore {
	return &LocalStore{
		dir:     dir,
		baseUrl: strings.TrimRight(baseUrl, "/"),
	}
}

func (s *LocalStore) path(key string) string {
	// 只取文件名部分，避免键中的路径穿越
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *LocalStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	if err := util.SaveFile(s.path(key), data); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *LocalStore) Head(_ context.Context, key string) (bool, error) {
	if _, err := os.Stat(s.path(key)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

func (s *LocalStore) PublicURL(key string) string {
	return s.baseUrl + "/view/" + strings.TrimSuffix(key, ".html")
}
