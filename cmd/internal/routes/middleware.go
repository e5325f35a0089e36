package routes

import (
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerAuth verifies the Authorization header and attaches the decoded
// token data to the request context. Missing token is 401, anything that
// fails signature or shape checks is 403.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
			}

			data, err := utils.ParseToken(token, secret)
			if err != nil {
				return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
			}

			c.Set(utils.TokenDataKey, data)
			return next(c)
		}
	}
}

// RequireAutoridade gates a route on the caller's role level. It runs after
// BearerAuth.
func RequireAutoridade(level int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
			}

			if data.Autoridade < level {
				return c.JSON(apierror.ForbiddenError.Code(), apierror.ForbiddenError)
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
