package handler

import (
	"net/http"

	"advse-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// /items の公開API
type ItemHandler struct {
	uc  *usecase.ItemUsecase
	log zerolog.Logger
}

// DI
func NewItemHandler(uc *usecase.ItemUsecase, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/items", h.list)
	g.GET("/items/:itemId", h.detail)
	g.GET("/items/:itemId/variants", h.variants)
	g.GET("/items/:itemId/variants/:size", h.variant)
}

// ?id=1,2,3&sort=price asc
func (h *ItemHandler) list(c echo.Context) error {
	in := usecase.ListItemsInput{
		IDs:  c.QueryParam("id"),
		Sort: c.QueryParam("sort"),
	}

	if h.uc.AllVariants() {
		out, err := h.uc.ListWithVariants(c.Request().Context(), in)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return c.JSON(http.StatusOK, out)
	}

	out, err := h.uc.ListPreview(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}

	out, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) variants(c echo.Context) error {
	id, ok := paramID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}

	out, err := h.uc.ListVariants(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) variant(c echo.Context) error {
	id, ok := paramID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}
	size, ok := paramID(c, "size")
	if !ok {
		return badRequest(c, "invalid size")
	}

	out, err := h.uc.GetVariant(c.Request().Context(), id, size)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
