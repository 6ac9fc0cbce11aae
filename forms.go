package beerfest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/evantbyrne/beerfest/forms"
)

const maxMultipartMemory = 32 << 20

type Form struct {
	Action   string
	Elements []*forms.Element
	Error    error
	Method   string
}

func NewForm(action string, elements ...*forms.Element) *Form {
	return &Form{
		Action:   action,
		Elements: elements,
		Method:   http.MethodPost,
	}
}

func (form *Form) Add(elements ...*forms.Element) *Form {
	form.Elements = append(form.Elements, elements...)
	return form
}

func (form *Form) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, form.HTML())
		return err
	})
}

func (form *Form) Element(name string) *forms.Element {
	for _, element := range form.Elements {
		if element.Name() == name {
			return element
		}
	}
	return nil
}

// HTML renders the form. Elements that skip the field container are written bare; the
// rest are wrapped together with their validation message.
func (form *Form) HTML() string {
	method := form.Method
	if method == "" {
		method = http.MethodPost
	}
	var html strings.Builder
	html.WriteString(`<form method="`)
	html.WriteString(templ.EscapeString(method))
	html.WriteString(`" action="`)
	html.WriteString(templ.EscapeString(form.Action))
	html.WriteString(`"`)
	if form.hasFile() {
		html.WriteString(` enctype="multipart/form-data"`)
	}
	html.WriteString(">")

	if message := form.globalError(); message != "" {
		html.WriteString(`<p class="error">`)
		html.WriteString(templ.EscapeString(message))
		html.WriteString("</p>")
	}

	for _, element := range form.Elements {
		if element.SkipFieldContain() {
			html.WriteString(element.HTML())
			continue
		}
		html.WriteString(`<div class="field">`)
		html.WriteString(element.HTML())
		if message := element.ErrorMessage(); message != "" {
			html.WriteString(`<p class="error">`)
			html.WriteString(templ.EscapeString(message))
			html.WriteString("</p>")
		}
		html.WriteString("</div>")
	}

	html.WriteString("</form>")
	return html.String()
}

// Validate checks every element against the posted request and keeps the submitted
// values for re-rendering. Password and file inputs are never echoed back.
func (form *Form) Validate(r *http.Request) bool {
	form.Error = nil
	if err := parseRequestForm(r); err != nil {
		form.Error = ErrorBadRequest{Message: "Malformed form body."}
		return false
	}

	errorsMap := make(map[string]error)
	for _, element := range form.Elements {
		element.ClearError()
		raw := r.FormValue(element.Name())
		if element.Type() == forms.FieldFile {
			raw = uploadedFilename(r, element.Name())
		}
		if !element.Validate(raw) {
			errorsMap[element.Name()] = errors.New(element.ErrorMessage())
		}
		switch element.Type() {
		case forms.FieldPassword, forms.FieldFile, forms.FieldSubmit, forms.FieldReset, forms.FieldButton:
		default:
			element.SetValue(raw)
		}
	}

	if len(errorsMap) > 0 {
		form.Error = FormErrors{
			Errors:     errorsMap,
			StatusCode: http.StatusBadRequest,
		}
		return false
	}
	return true
}

func (form *Form) globalError() string {
	if form.Error == nil {
		return ""
	}
	var formErrors FormErrors
	if errors.As(form.Error, &formErrors) {
		if err, ok := formErrors.Errors["_global_"]; ok {
			return err.Error()
		}
		return ""
	}
	return form.Error.Error()
}

func (form *Form) hasFile() bool {
	for _, element := range form.Elements {
		if element.Type() == forms.FieldFile {
			return true
		}
	}
	return false
}

func parseRequestForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxMultipartMemory)
	}
	return r.ParseForm()
}

func uploadedFilename(r *http.Request, name string) string {
	if r.MultipartForm == nil {
		return ""
	}
	files := r.MultipartForm.File[name]
	if len(files) == 0 {
		return ""
	}
	return files[0].Filename
}
