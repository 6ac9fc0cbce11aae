package beerfest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

type App struct {
	ErrorHandler func(*Strand)
	Logger       *slog.Logger
	Middleware   []func(*Strand) error

	mux *http.ServeMux
}

func (app *App) defaultErrorHandler(strand *Strand) {
	if strand.Error == nil {
		return
	}
	status := http.StatusInternalServerError
	message := "Internal server error"
	if errWithStatus, ok := strand.Error.(ErrorWithStatus); ok {
		status = errWithStatus.Status()
		message = errWithStatus.Error()
	}
	if status == http.StatusInternalServerError {
		r := strand.Request()
		app.logger().Error("request failed", "error", strand.Error, "method", r.Method, "path", r.URL.Path)
	}

	if strand.Response.Header().Get("Content-Type") == "application/json" || strand.Request().Header.Get("Accept") == "application/json" {
		strand.Response.Header().Set("Content-Type", "application/json")
		strand.Response.WriteHeader(status)
		if jsonError, ok := strand.Error.(json.Marshaler); ok {
			encoded, _ := json.Marshal(jsonError)
			strand.Response.Write(encoded)
		} else {
			encoded, _ := json.Marshal(map[string]string{"error": message})
			strand.Response.Write(encoded)
		}
	} else {
		http.Error(strand.Response, message, status)
	}
}

func (app *App) Get(path string, handler func(*Strand) error) {
	app.RouteMethods(path, []string{http.MethodGet, http.MethodHead}, handler)
}

func (app *App) logger() *slog.Logger {
	if app.Logger == nil {
		return slog.Default()
	}
	return app.Logger
}

func (app *App) Post(path string, handler func(*Strand) error) {
	app.RouteMethods(path, []string{http.MethodPost}, handler)
}

func (app *App) Route(path string, handler func(*Strand) error) {
	if app.ErrorHandler == nil {
		app.ErrorHandler = app.defaultErrorHandler
	}
	if app.mux == nil {
		app.mux = http.NewServeMux()
	}
	app.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		strand := &Strand{
			Context:  context.WithValue(r.Context(), requestKey{}, r),
			Logger:   app.logger(),
			Response: w,
		}
		for _, middleware := range app.Middleware {
			if strand.Error = middleware(strand); strand.Error != nil {
				app.ErrorHandler(strand)
				return
			}
		}
		if strand.Error = handler(strand); strand.Error != nil {
			app.ErrorHandler(strand)
		}
	})
}

// RouteMethods registers handler for path and rejects any other request method.
func (app *App) RouteMethods(path string, methods []string, handler func(*Strand) error) {
	app.Route(path, func(strand *Strand) error {
		if !slices.Contains(methods, strand.Request().Method) {
			strand.Response.Header().Set("Allow", strings.Join(methods, ", "))
			return ErrorMethodNotAllowed{AllowedMethods: methods}
		}
		return handler(strand)
	})
}

func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if app.mux == nil {
		http.NotFound(w, r)
		return
	}
	app.mux.ServeHTTP(w, r)
}

func (app *App) UseMiddleware(middleware ...func(*Strand) error) {
	app.Middleware = append(app.Middleware, middleware...)
}
