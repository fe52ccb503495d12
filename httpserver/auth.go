package httpserver

import (
	"castingagency/auth"
	"castingagency/errs"

	"github.com/labstack/echo/v4"
)

const claimsKey = "auth.claims"

// requirePermission rejects the request unless its bearer token grants
// permission. The verified claims are stored on the context.
func (s *Server) requirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.AuthService == nil {
				return errs.Errorf(errs.ENOTIMPLEMENTED, "auth service not configured")
			}

			claims, err := s.AuthService.Authorize(
				c.Request().Context(),
				c.Request().Header.Get(echo.HeaderAuthorization),
				permission,
			)
			if err != nil {
				return err
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

func subject(c echo.Context) string {
	claims, _ := c.Get(claimsKey).(auth.Claims)
	return claims.Subject
}
