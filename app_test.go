package beerfest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestAppRouteMethods(t *testing.T) {
	app := &App{}
	app.Get("/hello", func(s *Strand) error {
		return s.Render(templ.Raw("hello"))
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello", nil))
	if w.Code != http.StatusOK || w.Body.String() != "hello" {
		t.Errorf("Expected 200 'hello', got %d '%s'", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Type") != "text/html; charset=utf-8" {
		t.Errorf("Expected 'text/html; charset=utf-8', got '%s'", w.Header().Get("Content-Type"))
	}

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hello", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") != "GET, HEAD" {
		t.Errorf("Expected 'GET, HEAD', got '%s'", w.Header().Get("Allow"))
	}
}

func TestAppErrorHandler(t *testing.T) {
	app := &App{}
	app.Get("/missing", func(s *Strand) error {
		return ErrorNotFound{}
	})
	app.Get("/broken", func(s *Strand) error {
		return errors.New("database exploded")
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "exploded") {
		t.Errorf("Expected internal error to be hidden, got '%s'", w.Body.String())
	}

	r := httptest.NewRequest(http.MethodGet, "/missing", nil)
	r.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	app.ServeHTTP(w, r)
	if w.Body.String() != `{"error":"Not found"}` {
		t.Errorf("Expected JSON error, got '%s'", w.Body.String())
	}
}

func TestAppMiddleware(t *testing.T) {
	app := &App{}
	calls := make([]string, 0)
	app.UseMiddleware(func(s *Strand) error {
		calls = append(calls, "first")
		return nil
	}, func(s *Strand) error {
		calls = append(calls, "second")
		if s.Request().URL.Query().Get("deny") != "" {
			return ErrorBadRequest{}
		}
		return nil
	})
	app.Get("/", func(s *Strand) error {
		calls = append(calls, "handler")
		return nil
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?deny=1", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if strings.Join(calls, ",") != "first,second" {
		t.Errorf("Expected 'first,second', got '%s'", strings.Join(calls, ","))
	}
}

func TestAppWithoutRoutes(t *testing.T) {
	app := &App{}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
