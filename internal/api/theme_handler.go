package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yockii/markslide/internal/service"
)

type ThemeHandler struct {
	deckService    service.DeckService
	historyService service.HistoryService
}

func RegisterThemeHandler(deckService service.DeckService, historyService service.HistoryService) {
	handler := &ThemeHandler{
		deckService:    deckService,
		historyService: historyService,
	}
	Handlers = append(Handlers, handler)
}

func (h *ThemeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/themes", h.Themes)
	router.Get("/history", h.History)
}

func (h *ThemeHandler) Themes(c *fiber.Ctx) error {
	return c.JSON(service.OK(h.deckService.Themes()))
}

func (h *ThemeHandler) History(c *fiber.Ctx) error {
	records, err := h.historyService.Load(c.Context())
	if err != nil {
		return c.Status(httpStatus(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(records))
}
