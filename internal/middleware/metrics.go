package middleware

import (
	"errors"
	"net/http"
	"time"

	"advse-backend/internal/metrics"

	"github.com/labstack/echo/v4"
)

// リクエスト数・処理時間を記録する（path はルートのテンプレート）
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.IncInFlight()
			defer metrics.DecInFlight()

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			metrics.RecordHTTPRequest(c.Request().Method, c.Path(), status, time.Since(start))
			return err
		}
	}
}
