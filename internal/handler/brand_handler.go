package handler

import (
	"net/http"

	"advse-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type BrandHandler struct {
	uc  *usecase.BrandUsecase
	log zerolog.Logger
}

func NewBrandHandler(uc *usecase.BrandUsecase, log zerolog.Logger) *BrandHandler {
	return &BrandHandler{uc: uc, log: log}
}

type BrandRequest struct {
	BrandName string `json:"brand_name"`
}

// 更新系には guard（管理者JWT）を付ける。guard が空なら認証なし。
func (h *BrandHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.GET("/items/brands", h.list)
	g.GET("/items/brands/:brandId", h.detail)

	g.POST("/items/brands", h.create, guard...)
	g.PUT("/items/brands/:brandId", h.update, guard...)
	g.DELETE("/items/brands/:brandId", h.delete, guard...)
}

func (h *BrandHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BrandHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "brandId")
	if !ok {
		return badRequest(c, "invalid brand id")
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BrandHandler) create(c echo.Context) error {
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	id, err := h.uc.Create(c.Request().Context(), req.BrandName)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"brandId": id})
}

func (h *BrandHandler) update(c echo.Context) error {
	id, ok := paramID(c, "brandId")
	if !ok {
		return badRequest(c, "invalid brand id")
	}

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	n, err := h.uc.Update(c.Request().Context(), id, req.BrandName)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"changedRows": n})
}

func (h *BrandHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "brandId")
	if !ok {
		return badRequest(c, "invalid brand id")
	}

	n, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"affectedRows": n})
}
