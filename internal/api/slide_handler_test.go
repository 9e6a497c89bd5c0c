package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/service"
	"github.com/yockii/markslide/internal/storage"
	"github.com/yockii/markslide/pkg/slidegen"
)

// fakeDeckService 固定输出的生成服务
type fakeDeckService struct {
	html []byte
	err  error
}

func (f *fakeDeckService) Generate(_ context.Context, markdown string, meta slidegen.Metadata, themeID string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.html, nil
}

func (f *fakeDeckService) Themes() []*slidegen.Theme {
	return slidegen.Themes()
}

// fakePublishService 内存发布服务
type fakePublishService struct {
	published map[string][]byte
}

func newFakePublishService() *fakePublishService {
	return &fakePublishService{published: map[string][]byte{}}
}

func (f *fakePublishService) Publish(_ context.Context, title, themeID string, html []byte) (*service.PublishResult, error) {
	key := "slide-test"
	f.published[key] = html
	return &service.PublishResult{
		Key:     key,
		URL:     "http://localhost:8080/view/" + key,
		BlobURL: "https://blob.example.com/" + key + ".html",
	}, nil
}

func (f *fakePublishService) Resolve(_ context.Context, key string) ([]byte, error) {
	data, ok := f.published[key]
	if !ok {
		return nil, constant.ErrSlideNotFound
	}
	return data, nil
}

func (f *fakePublishService) Exists(_ context.Context, key string) (string, error) {
	if _, ok := f.published[key]; !ok {
		return "", constant.ErrSlideNotFound
	}
	return "https://blob.example.com/" + key + ".html", nil
}

func (f *fakePublishService) PublicURL(key string) string {
	return "https://blob.example.com/" + key + ".html"
}

func newTestApp(deck service.DeckService, publish service.PublishService) *fiber.App {
	app := fiber.New()
	handler := &SlideHandler{deckService: deck, publishService: publish}
	handler.RegisterRoutes(app.Group("/api/v1"))
	handler.RegisterPublicRoutes(app)
	return app
}

func TestGenerateEndpoint(t *testing.T) {
	app := newTestApp(&fakeDeckService{html: []byte("<!DOCTYPE html><html></html>")}, newFakePublishService())

	body, _ := json.Marshal(generateRequest{
		Markdown: "## 内容",
		Metadata: slidegen.Metadata{Title: "我的演示", PageCount: 5},
		ThemeID:  "apple-keynote",
	})
	req := httptest.NewRequest("POST", "/api/v1/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<!DOCTYPE html><html></html>", string(data))
}

func TestGenerateEndpointValidationError(t *testing.T) {
	app := newTestApp(&fakeDeckService{err: constant.ErrThemeNotFound}, newFakePublishService())

	body, _ := json.Marshal(generateRequest{Markdown: "## 内容", Metadata: slidegen.Metadata{Title: "T"}, ThemeID: "bad"})
	req := httptest.NewRequest("POST", "/api/v1/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadEndpointJSON(t *testing.T) {
	publish := newFakePublishService()
	app := newTestApp(&fakeDeckService{}, publish)

	body, _ := json.Marshal(uploadRequest{Title: "演示", ThemeID: "apple-keynote", HTML: "<html></html>"})
	req := httptest.NewRequest("POST", "/api/v1/slides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Code int                   `json:"code"`
		Data service.PublishResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "slide-test", envelope.Data.Key)
	assert.Contains(t, envelope.Data.URL, "/view/slide-test")
}

func TestUploadEndpointEmptyBody(t *testing.T) {
	app := newTestApp(&fakeDeckService{}, newFakePublishService())

	body, _ := json.Marshal(uploadRequest{Title: "演示"})
	req := httptest.NewRequest("POST", "/api/v1/slides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSlideURLEndpoint(t *testing.T) {
	publish := newFakePublishService()
	publish.published["slide-exists"] = []byte("<html></html>")
	app := newTestApp(&fakeDeckService{}, publish)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/slides/url?key=slide-exists", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/slides/url?key=slide-missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/slides/url", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestViewEndpoint(t *testing.T) {
	publish := newFakePublishService()
	publish.published["slide-exists"] = []byte("<html>视图</html>")
	app := newTestApp(&fakeDeckService{}, publish)

	resp, err := app.Test(httptest.NewRequest("GET", "/view/slide-exists", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<html>视图</html>", string(data))

	// 代理路由提供同样的内容
	resp, err = app.Test(httptest.NewRequest("GET", "/proxy/slide-exists", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/view/slide-missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRedirectEndpointWithLocalStore(t *testing.T) {
	// 本地存储的公开URL指向内联查看路由，短链跳转后必须能直接取到内容
	publish := service.NewPublishService(storage.NewLocalStore(t.TempDir(), "http://localhost:8080"), nil, nil)
	app := newTestApp(&fakeDeckService{}, publish)

	result, err := publish.Publish(context.Background(), "本地演示", "", []byte("<html>本地</html>"))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/s/"+result.Key, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)

	location := resp.Header.Get(fiber.HeaderLocation)
	assert.Equal(t, "http://localhost:8080/view/"+result.Key, location)
	assert.NotContains(t, location, "/s/")

	// 跳转目标路由直接返回内容，不再继续跳转
	resp, err = app.Test(httptest.NewRequest("GET", "/view/"+result.Key, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<html>本地</html>", string(data))
}

func TestRedirectEndpoint(t *testing.T) {
	publish := newFakePublishService()
	publish.published["slide-exists"] = []byte("<html></html>")
	app := newTestApp(&fakeDeckService{}, publish)

	resp, err := app.Test(httptest.NewRequest("GET", "/s/slide-exists", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://blob.example.com/slide-exists.html", resp.Header.Get(fiber.HeaderLocation))

	resp, err = app.Test(httptest.NewRequest("GET", "/s/slide-missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
