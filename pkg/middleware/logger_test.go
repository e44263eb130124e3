package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/expense-manager/pkg/middleware"
)

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/hello?x=1", nil)
	w := httptest.NewRecorder()

	middleware.Logger(logger)(handler).ServeHTTP(w, req)

	out := buf.String()
	for _, want := range []string{"msg=request", "method=GET", "uri=\"/hello?x=1\"", "status=418", "size=15B", "duration=", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestLogger_GeneratesRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	middleware.Logger(logger)(handler).ServeHTTP(w, req)

	id := w.Header().Get(middleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("%s = %q, want a UUID: %v", middleware.RequestIDHeader, id, err)
	}
}

func TestLogger_PropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()

	middleware.Logger(logger)(handler).ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, want %q", middleware.RequestIDHeader, got, "abc-123")
	}
	if !strings.Contains(buf.String(), "request_id=abc-123") {
		t.Errorf("log output missing request id: %s", buf.String())
	}
}

func TestLogger_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	middleware.Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("log output missing default status: %s", buf.String())
	}
}
