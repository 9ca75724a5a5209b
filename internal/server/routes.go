package server

import (
	"advse-backend/internal/config"
	"advse-backend/internal/metrics"
	"advse-backend/internal/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Health.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1")
	h.Items.RegisterRoutes(api)
	//ブランドの更新系は ADMIN_JWT_SECRET があるときだけ管理者JWT必須
	h.Brands.RegisterRoutes(api, middleware.AdminOnly(cfg.AdminJWTSecret)...)
	h.Orders.RegisterRoutes(api)
	h.Payments.RegisterRoutes(api)
	h.Users.RegisterRoutes(api)
}
