package handler

import (
	"net/http"
	"strconv"

	"advse-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, log zerolog.Logger, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		//原因はログだけ（レスポンスには出さない）
		if he.Status >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("unexpected error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: usecase.MsgInternal})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
}

// パスパラメータを正の整数として読む
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
