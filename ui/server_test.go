package ui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer()
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"digits", "number", "calc"} {
		if !strings.Contains(body, name) {
			t.Errorf("index does not offer grammar %q", name)
		}
	}
}

func TestRunMatched(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"grammar": {"calc"}, "input": {"1+2*3"}}
	req := httptest.NewRequest("POST", "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /run = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Matched") {
		t.Error("expected a matched outcome")
	}
	if !strings.Contains(body, ">7<") {
		t.Errorf("expected value 7 in output, got:\n%s", body)
	}
}

func TestRunFailed(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"grammar": {"digits"}, "input": {"x"}}
	req := httptest.NewRequest("POST", "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /run = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed") {
		t.Error("expected a failed outcome")
	}
}

func TestRunUnknownGrammar(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"grammar": {"nope"}, "input": {"1"}}
	req := httptest.NewRequest("POST", "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST /run with unknown grammar = %d, want 400", rec.Code)
	}
}
