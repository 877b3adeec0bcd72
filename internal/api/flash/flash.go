// Package flash implements one-shot notices carried across redirects in
// short-lived cookies, the portal's analog of connect-flash.
package flash

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

const (
	Success = "success"
	Error   = "error"

	prefix = "flash_"
	maxAge = 300
)

// Set stores a notice of the given kind for the next page load.
func Set(c echo.Context, kind, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     prefix + kind,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
}

// Pop returns the pending notice of the given kind, if any, and clears it.
func Pop(c echo.Context, kind string) (string, bool) {
	cookie, err := c.Cookie(prefix + kind)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		msg = cookie.Value
	}

	c.SetCookie(&http.Cookie{
		Name:     prefix + kind,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return msg, true
}

// PopAll drains both notice kinds into a map for rendering payloads.
func PopAll(c echo.Context) map[string]string {
	notices := make(map[string]string)
	for _, kind := range []string{Success, Error} {
		if msg, ok := Pop(c, kind); ok {
			notices[kind] = msg
		}
	}
	return notices
}
