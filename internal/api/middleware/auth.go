package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenCookie is the cookie carrying the session token.
const TokenCookie = "token"

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth extracts the session token from the cookie, verifies signature and
// expiry, and injects the subject identity into the request context. Every
// protected route passes through here; on any failure the request is
// rejected with 401 and no state is touched.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			// Expired, malformed and forged tokens all land here: a 401,
			// never a 500.
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			userID, _ := claims[CtxUserID].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(CtxUserID, userID)
			c.Set(CtxRole, claims[CtxRole])

			return next(c)
		}
	}
}
