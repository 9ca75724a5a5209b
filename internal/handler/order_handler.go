package handler

import (
	"net/http"

	"advse-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	uc  *usecase.OrderUsecase
	log zerolog.Logger
}

func NewOrderHandler(uc *usecase.OrderUsecase, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/orders", h.list)
	g.POST("/orders", h.create)
	g.GET("/orders/:orderId", h.detail)
	g.GET("/orders/:orderId/items", h.items)
	g.GET("/orders/:orderId/items/:itemId", h.item)
	g.GET("/orders/:orderId/invoice_address", h.invoiceAddress)
	g.GET("/orders/:orderId/shipping_address", h.shippingAddress)
}

// ?email= で絞り込み（なければ全件）
func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	id, err := h.uc.Place(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"order_id": id})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "orderId")
	if !ok {
		return badRequest(c, "invalid order id")
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) items(c echo.Context) error {
	id, ok := paramID(c, "orderId")
	if !ok {
		return badRequest(c, "invalid order id")
	}

	out, err := h.uc.ListItems(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) item(c echo.Context) error {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return badRequest(c, "invalid order id")
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}

	out, err := h.uc.GetItem(c.Request().Context(), orderID, itemID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) invoiceAddress(c echo.Context) error {
	id, ok := paramID(c, "orderId")
	if !ok {
		return badRequest(c, "invalid order id")
	}

	out, err := h.uc.InvoiceAddress(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) shippingAddress(c echo.Context) error {
	id, ok := paramID(c, "orderId")
	if !ok {
		return badRequest(c, "invalid order id")
	}

	out, err := h.uc.ShippingAddress(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
