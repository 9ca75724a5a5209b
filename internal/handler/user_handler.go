package handler

import (
	"net/http"

	"advse-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// デモ用ユーザーAPI
type UserHandler struct {
	uc  *usecase.UserUsecase
	log zerolog.Logger
}

func NewUserHandler(uc *usecase.UserUsecase, log zerolog.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.list)
	g.POST("/users", h.create)
	g.POST("/users/default", h.reset)
	g.DELETE("/users", h.deleteAll)

	g.GET("/users/:id", h.detail)
	g.PUT("/users/:id", h.update)
	g.DELETE("/users/:id", h.delete)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) create(c echo.Context) error {
	var req usecase.UserInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	var req usecase.UserInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 削除後の一覧を返す
func (h *UserHandler) delete(c echo.Context) error {
	out, err := h.uc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) deleteAll(c echo.Context) error {
	out, err := h.uc.DeleteAll(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) reset(c echo.Context) error {
	out, err := h.uc.Reset(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
