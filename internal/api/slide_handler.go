package api

import (
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/service"
	"github.com/yockii/markslide/pkg/logger"
	"github.com/yockii/markslide/pkg/slidegen"
)

type SlideHandler struct {
	deckService    service.DeckService
	publishService service.PublishService
}

func RegisterSlideHandler(deckService service.DeckService, publishService service.PublishService) {
	handler := &SlideHandler{
		deckService:    deckService,
		publishService: publishService,
	}
	Handlers = append(Handlers, handler)
}

func (h *SlideHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/generate", h.Generate)
	router.Post("/slides", h.Upload)
	router.Get("/slides/url", h.SlideURL)
}

func (h *SlideHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/view/:key", h.View)
	router.Get("/proxy/:key", h.View)
	router.Get("/s/:key", h.Redirect)
}

type generateRequest struct {
	Markdown string            `json:"markdown"`
	Metadata slidegen.Metadata `json:"metadata"`
	ThemeID  string            `json:"themeId"`
}

// Generate 生成完整HTML演示文稿并以附件形式返回
func (h *SlideHandler) Generate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("解析生成参数失败", logger.F("err", err))
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	html, err := h.deckService.Generate(c.Context(), req.Markdown, req.Metadata, req.ThemeID)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}

	filename := url.PathEscape(req.Metadata.Title) + ".html"
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(html)
}

type uploadRequest struct {
	Title   string `json:"title"`
	ThemeID string `json:"themeId"`
	HTML    string `json:"html"`
}

// Upload 发布演示文稿到对象存储，支持multipart文件或JSON内嵌HTML
func (h *SlideHandler) Upload(c *fiber.Ctx) error {
	title := ""
	themeID := ""
	var html []byte

	if file, err := c.FormFile("file"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			logger.Error("打开上传文件失败", logger.F("err", err))
			return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
		}
		defer f.Close()

		buf, err := io.ReadAll(f)
		if err != nil {
			logger.Error("读取上传文件失败", logger.F("err", err))
			return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
		}
		html = buf
		title = c.FormValue("title", file.Filename)
		themeID = c.FormValue("themeId")
	} else {
		var req uploadRequest
		if err := c.BodyParser(&req); err != nil {
			logger.Error("解析发布参数失败", logger.F("err", err))
			return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
		}
		html = []byte(req.HTML)
		title = req.Title
		themeID = req.ThemeID
	}

	if len(html) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	result, err := h.publishService.Publish(c.Context(), title, themeID, html)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(result))
}

// SlideURL 检查键是否已发布并返回公开URL
func (h *SlideHandler) SlideURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	publicURL, err := h.publishService.Exists(c.Context(), key)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(fiber.Map{"url": publicURL}))
}

// View 取回已发布的HTML并内联展示
func (h *SlideHandler) View(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	html, err := h.publishService.Resolve(c.Context(), key)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}

	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.Send(html)
}

// Redirect 短链307跳转到存储服务的公开URL
func (h *SlideHandler) Redirect(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	publicURL, err := h.publishService.Exists(c.Context(), key)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}
	return c.Redirect(publicURL, fiber.StatusTemporaryRedirect)
}
