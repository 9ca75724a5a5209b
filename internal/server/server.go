package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"advse-backend/internal/config"
	"advse-backend/internal/handler"
	"advse-backend/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

type Handlers struct {
	Health   *handler.HealthHandler
	Items    *handler.ItemHandler
	Brands   *handler.BrandHandler
	Orders   *handler.OrderHandler
	Payments *handler.PaymentHandler
	Users    *handler.UserHandler
}

// New は共通ミドルウェアとルートを載せた echo を返す。
// rl が nil ならレート制限なし。
func New(cfg config.Config, log zerolog.Logger, h Handlers, rl *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Metrics())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	if rl != nil {
		e.Use(rl.Middleware())
	}
	if cfg.RequestTimeout > 0 {
		e.Use(echomw.ContextTimeoutWithConfig(echomw.ContextTimeoutConfig{Timeout: cfg.RequestTimeout}))
	}

	RegisterRoutes(e, cfg, h)
	return e
}

// Start は ctx が終わるまで待って graceful shutdown する。
func Start(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
