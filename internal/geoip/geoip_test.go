package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.baseURL = srv.URL
	return c, srv.Close
}

func TestCountryCode(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/country/" {
			t.Errorf("path = %q, want /country/", r.URL.Path)
		}
		w.Write([]byte("DE\n"))
	})
	defer done()

	code, err := c.CountryCode(context.Background())
	if err != nil {
		t.Fatalf("CountryCode: %v", err)
	}
	if code != "DE" {
		t.Errorf("code = %q, want DE", code)
	}
}

func TestCountryCodeLowercaseNormalized(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("us"))
	})
	defer done()

	code, err := c.CountryCode(context.Background())
	if err != nil {
		t.Fatalf("CountryCode: %v", err)
	}
	if code != "US" {
		t.Errorf("code = %q, want US", code)
	}
}

func TestCountryCodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"too long", "USA"},
		{"digits", "12"},
		{"html error page", "<html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer done()

			if _, err := c.CountryCode(context.Background()); err == nil {
				t.Errorf("body %q should be rejected", tt.body)
			}
		})
	}
}

func TestCountryCodeServerError(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer done()

	if _, err := c.CountryCode(context.Background()); err == nil {
		t.Error("non-200 status should be an error")
	}
}

func TestCountryCodeHonorsContext(t *testing.T) {
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("US"))
	})
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := c.CountryCode(ctx); err == nil {
		t.Error("expired context should abort the lookup")
	}
}
