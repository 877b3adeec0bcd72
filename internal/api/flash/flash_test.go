package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSetPopRoundTrip(t *testing.T) {
	e := echo.New()

	// First request sets the notice.
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	Set(c, Success, "You are logged out")

	var flashCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "flash_success" {
			flashCookie = cookie
		}
	}
	if flashCookie == nil {
		t.Fatalf("flash cookie not set")
	}

	// Next request carries the cookie and pops it.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(flashCookie)
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req, rec2)

	msg, ok := Pop(c2, Success)
	if !ok {
		t.Fatalf("expected a pending notice")
	}
	if msg != "You are logged out" {
		t.Fatalf("unexpected message: %q", msg)
	}

	// Pop clears the cookie.
	cleared := false
	for _, cookie := range rec2.Result().Cookies() {
		if cookie.Name == "flash_success" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected the flash cookie to be cleared")
	}
}

func TestPopWithoutNotice(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, ok := Pop(c, Error); ok {
		t.Fatalf("expected no pending notice")
	}
	if notices := PopAll(c); len(notices) != 0 {
		t.Fatalf("expected empty notices, got %v", notices)
	}
}

func TestMessageWithSpecialCharacters(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	const msg = "contact field is required; desc field is required"
	Set(c, Error, msg)

	var flashCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "flash_error" {
			flashCookie = cookie
		}
	}
	if flashCookie == nil {
		t.Fatalf("flash cookie not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(flashCookie)
	c2 := e.NewContext(req, httptest.NewRecorder())

	got, ok := Pop(c2, Error)
	if !ok || got != msg {
		t.Fatalf("round trip mangled the message: %q", got)
	}
}
