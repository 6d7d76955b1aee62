package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hankkuu/delivery-demo/internal/pkg/auth"
)

const principalContextKey = "authenticatedMember"

// TokenParser verifies a bearer token and extracts the caller's identity.
type TokenParser interface {
	ParseToken(tokenString string) (auth.MemberPrincipal, error)
}

// BearerAuth extracts and verifies the Authorization bearer token. A missing
// header leaves the request anonymous; an invalid token also leaves it
// anonymous rather than failing here, so that routes decide themselves via
// RequireMember whether identity is mandatory.
func BearerAuth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				principal, err := parser.ParseToken(token)
				if err == nil {
					ctx.Set(principalContextKey, principal)
				}
			}
			return next(ctx)
		}
	}
}

// RequireMember rejects requests that carry no verified member identity.
func RequireMember(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := ctx.Get(principalContextKey).(auth.MemberPrincipal); !ok {
			return respondError(ctx, http.StatusUnauthorized, codeMissingAccessToken,
				"a valid access token is required")
		}
		return next(ctx)
	}
}

// currentPrincipal returns the verified caller identity set by BearerAuth.
// Handlers behind RequireMember can rely on ok being true.
func currentPrincipal(ctx echo.Context) (auth.MemberPrincipal, bool) {
	principal, ok := ctx.Get(principalContextKey).(auth.MemberPrincipal)
	return principal, ok
}
