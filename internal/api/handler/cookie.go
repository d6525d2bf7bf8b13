package handler

import (
	"net/http"
	"time"

	"github.com/Virag-Koradiya/ElevateU/internal/api/middleware"
)

const envProduction = "production"

// sessionCookie builds the token cookie set on login. In production the
// API sits behind TLS on another origin than the SPA, so Secure pairs with
// SameSite=None; elsewhere Lax without Secure. The two are never mixed:
// secure:false with SameSite=None would be rejected by browsers.
func sessionCookie(env, token string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl.Seconds()),
	}
	if env == envProduction {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return cookie
}

// clearedSessionCookie builds the cookie sent on logout: empty value,
// immediate expiry, a date in the past.
func clearedSessionCookie(env string) *http.Cookie {
	cookie := sessionCookie(env, "", 0)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	return cookie
}
