package beerfest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type requestKey struct{}

type Strand struct {
	Context  context.Context
	Error    error
	Logger   *slog.Logger
	Response http.ResponseWriter
	Session  *Session
}

func (strand *Strand) Redirect(url string) error {
	return strand.RedirectWithStatus(url, http.StatusSeeOther)
}

func (strand *Strand) RedirectWithStatus(url string, status int) error {
	strand.Response.Header().Set("Location", url)
	strand.Response.WriteHeader(status)
	return nil
}

// Render writes a component as HTML. The component is buffered so a render error can
// still produce an error response.
func (strand *Strand) Render(component templ.Component) error {
	return strand.RenderWithStatus(component, http.StatusOK)
}

func (strand *Strand) RenderWithStatus(component templ.Component, status int) error {
	var buffer bytes.Buffer
	if err := component.Render(strand.Context, &buffer); err != nil {
		return ErrorInternalServer{Message: "beerfest: " + err.Error()}
	}
	strand.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	strand.Response.WriteHeader(status)
	_, err := strand.Response.Write(buffer.Bytes())
	return err
}

func (strand *Strand) Request() *http.Request {
	return strand.Context.Value(requestKey{}).(*http.Request)
}

func (strand *Strand) WriteJson(body any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	strand.Response.Header().Set("Content-Type", "application/json")
	_, err = strand.Response.Write(encoded)
	return err
}
