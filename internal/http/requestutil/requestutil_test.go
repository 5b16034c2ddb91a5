package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	if got := SanitizeRequestID("abc-123_XYZ"); got != "abc-123_XYZ" {
		t.Fatalf("valid request ID replaced: %q", got)
	}
}

func TestSanitizeRequestIDReplacesInvalid(t *testing.T) {
	cases := []string{"", "has space", "semi;colon", string(make([]byte, 65))}
	for _, in := range cases {
		got := SanitizeRequestID(in)
		if got == in || got == "" {
			t.Fatalf("invalid request ID %q not replaced: %q", in, got)
		}
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded IP, got %q", got)
	}

	r.Header.Del("X-Forwarded-For")
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr fallback, got %q", got)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"BEARER  abc123 ", "abc123"},
		{"Basic abc123", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		if got := BearerToken(r); got != tc.want {
			t.Fatalf("header %q: expected %q, got %q", tc.header, tc.want, got)
		}
	}
}
