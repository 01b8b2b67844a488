package app_test

import (
	"net/http"
	"testing"

	"github.com/gangwayhq/gangway/app"
)

func TestResponse_Chunks(t *testing.T) {
	res := app.NewResponse(http.StatusOK)
	res.WriteString("Hello ")
	res.WriteString("World")

	if got := res.ContentLength(); got != 11 {
		t.Errorf("expected content length 11, got %d", got)
	}
	if got := string(res.BodyBytes()); got != "Hello World" {
		t.Errorf("expected chunk concatenation, got %q", got)
	}
}

func TestResponse_Helpers(t *testing.T) {
	res := app.HTML(http.StatusOK, "<b>hi</b>")
	if ct := res.Header.Get("Content-Type"); ct != "text/html" {
		t.Errorf("expected text/html, got %q", ct)
	}

	res = app.Text(http.StatusNotFound, "nope")
	if ct := res.Header.Get("Content-Type"); ct != "text/plain" {
		t.Errorf("expected text/plain, got %q", ct)
	}
	if res.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", res.Status)
	}
}

func TestResponse_ValidStatus(t *testing.T) {
	for status, valid := range map[int]bool{
		99:  false,
		100: true,
		200: true,
		599: true,
		600: false,
	} {
		res := app.NewResponse(status)
		if res.ValidStatus() != valid {
			t.Errorf("status %d: expected valid=%v", status, valid)
		}
	}
}
