package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func roleMiddleware(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.Role == role {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

// ownUIDMiddleware only lets people act on their own `:uid`.
func ownUIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, err := getContextClaims(ctx)
		if err != nil {
			return errors.Wrap(err, "getting context claims")
		}
		if ctx.Param("uid") != claims.Subject {
			return errHttpForbidden
		}
		return next(ctx)
	}
}
