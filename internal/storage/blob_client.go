package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/yockii/markslide/pkg/logger"
)

// BlobClient 公开对象存储的HTTP客户端。
// 存储服务按键保存字节块并提供稳定的公开URL
type BlobClient struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

func NewBlobClient(baseUrl, token string, timeout time.Duration) *BlobClient {
	return &BlobClient{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *BlobClient) newRequest(ctx context.Context, method, key string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+"/"+key, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// Put 上传对象。返回响应中的公开URL，响应不含URL时按约定构造
func (c *BlobClient) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	req, err := c.newRequest(ctx, "PUT", key, bytes.NewReader(data))
	if err != nil {
		logger.Error("创建请求失败", logger.F("err", err))
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("上传对象失败", logger.F("key", key), logger.F("err", err))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("读取响应失败", logger.F("err", err))
		return "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Error("存储服务返回错误", logger.F("statusCode", resp.StatusCode), logger.F("response", string(body)))
		return "", fmt.Errorf("存储服务错误: %d, %s", resp.StatusCode, string(body))
	}

	if url := gjson.GetBytes(body, "url").String(); url != "" {
		return url, nil
	}
	return c.PublicURL(key), nil
}

// Head 检查对象是否存在
func (c *BlobClient) Head(ctx context.Context, key string) (bool, error) {
	req, err := c.newRequest(ctx, "HEAD", key, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("检查对象失败", logger.F("key", key), logger.F("err", err))
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("存储服务错误: %d", resp.StatusCode)
	}
	return true, nil
}

// Get 读取对象内容
func (c *BlobClient) Get(ctx context.Context, key string) ([]byte, error) {
	req, err := c.newRequest(ctx, "GET", key, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("读取对象失败", logger.F("key", key), logger.F("err", err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotExist
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("存储服务返回错误", logger.F("statusCode", resp.StatusCode), logger.F("response", string(body)))
		return nil, fmt.Errorf("存储服务错误: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// PublicURL 构造对象的公开访问URL
func (c *BlobClient) PublicURL(key string) string {
	return c.baseUrl + "/" + key
}
