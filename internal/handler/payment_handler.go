package handler

import (
	"net/http"

	"advse-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	uc  *usecase.PaymentUsecase
	log zerolog.Logger
}

func NewPaymentHandler(uc *usecase.PaymentUsecase, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, log: log}
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/payments/methods", h.methods)
}

func (h *PaymentHandler) methods(c echo.Context) error {
	out, err := h.uc.ListMethods(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
