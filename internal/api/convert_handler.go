package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/service"
	"github.com/yockii/markslide/pkg/logger"
)

type ConvertHandler struct {
	convertService service.ConvertService
	limiter        []fiber.Handler
}

func RegisterConvertHandler(convertService service.ConvertService, limiter ...fiber.Handler) {
	handler := &ConvertHandler{
		convertService: convertService,
		limiter:        limiter,
	}
	Handlers = append(Handlers, handler)
}

func (h *ConvertHandler) RegisterRoutes(router fiber.Router) {
	// LLM接口单独限流
	router.Post("/convert", h.withLimiter(h.Convert)...)
	router.Post("/enhance", h.withLimiter(h.Enhance)...)
}

func (h *ConvertHandler) withLimiter(handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(h.limiter)+1)
	chain = append(chain, h.limiter...)
	return append(chain, handler)
}

type convertRequest struct {
	Text      string `json:"text"`
	APIKey    string `json:"apiKey"`
	PageCount int    `json:"pageCount"`
	Model     string `json:"model"`
}

func (h *ConvertHandler) Convert(c *fiber.Ctx) error {
	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("解析转换参数失败", logger.F("err", err))
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	result, err := h.convertService.ConvertText(c.Context(), req.Text, req.APIKey, req.PageCount, req.Model)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(result))
}

type enhanceRequest struct {
	Markdown string `json:"markdown"`
	APIKey   string `json:"apiKey"`
}

func (h *ConvertHandler) Enhance(c *fiber.Ctx) error {
	var req enhanceRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("解析优化参数失败", logger.F("err", err))
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}

	markdown, err := h.convertService.Enhance(c.Context(), req.Markdown, req.APIKey)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(fiber.Map{"markdown": markdown}))
}

// httpStatus 将业务错误映射为HTTP状态码
func httpStatus(err error) int {
	return constant.GetErrorCode(err)
}
