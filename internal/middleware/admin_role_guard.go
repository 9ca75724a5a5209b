package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// 管理系API（在庫・注文一覧など）を許可するロール
const RoleAdmin = "ADMIN"

// RoleGuard は AuthJWT が入れた role が allowed のどれかか確認する（大文字小文字は無視）。
// role が無ければ 401、違うロールなら 403。
func RoleGuard(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(string)
			role = strings.TrimSpace(role)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			for _, a := range allowed {
				if strings.EqualFold(role, a) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, errorJSON("admin only"))
		}
	}
}
