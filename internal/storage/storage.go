package storage

import (
	"context"
	"errors"
)

// ErrNotExist 指定键在存储中不存在
var ErrNotExist = errors.New("对象不存在")

// Store 对象存储抽象：按键存取公开的不透明字节块
type Store interface {
	// Put 上传对象并返回可公开访问的URL
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Head 检查对象是否存在
	Head(ctx context.Context, key string) (bool, error)
	// Get 读取对象内容，不存在时返回ErrNotExist
	Get(ctx context.Context, key string) ([]byte, error)
	// PublicURL 构造对象的公开访问URL
	PublicURL(key string) string
}

var defaultStore Store

// InitDefaultStore 初始化默认存储
func InitDefaultStore(s Store) {
	defaultStore = s
}

// GetDefaultStore 获取默认存储
func GetDefaultStore() Store {
	return defaultStore
}
