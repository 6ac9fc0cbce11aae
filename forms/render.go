package forms

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// LabelHTML renders the label element. The colon is only added to a non-empty label.
func (element *Element) LabelHTML() string {
	var html strings.Builder
	html.WriteString(`<label for="`)
	html.WriteString(templ.EscapeString(element.name))
	html.WriteString(`">`)
	if element.label != "" {
		html.WriteString(templ.EscapeString(element.label))
		html.WriteString(":")
	}
	html.WriteString("</label>")
	return html.String()
}

// ValueHTML renders the value attribute. Submit and reset buttons show their label.
func (element *Element) ValueHTML() string {
	value := element.value
	if element.fieldType.CaptionIsValue() {
		value = element.label
	}
	if value == "" {
		return ""
	}
	var html strings.Builder
	writeAttribute(&html, "value", value)
	return html.String()
}

func (element *Element) PlaceholderHTML() string {
	if element.placeholder == "" {
		return ""
	}
	var html strings.Builder
	writeAttribute(&html, "placeholder", element.placeholder)
	return html.String()
}

func (element *Element) AttributesHTML() string {
	return element.attributes.HTML()
}

// SkipFieldContain reports whether page layout should render the element without the
// field wrapper.
func (element *Element) SkipFieldContain() bool {
	return element.fieldType.SkipsFieldContain()
}

// HTML renders the complete markup for the element from its current state.
func (element *Element) HTML() string {
	var html strings.Builder
	name := templ.EscapeString(element.name)

	switch element.fieldType {
	case FieldHidden:
		html.WriteString(`<input type="hidden" name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.ValueHTML())
		html.WriteString(element.AttributesHTML())
		html.WriteString(" />")

	case FieldText, FieldPassword:
		html.WriteString(element.LabelHTML())
		html.WriteString(`<input type="`)
		html.WriteString(element.fieldType.String())
		html.WriteString(`" name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.ValueHTML())
		html.WriteString(element.PlaceholderHTML())
		html.WriteString(element.AttributesHTML())
		html.WriteString(" />")

	case FieldRange:
		low, high := element.Range()
		html.WriteString(element.LabelHTML())
		html.WriteString(`<input type="range" name="`)
		html.WriteString(name)
		html.WriteString(`" min="`)
		html.WriteString(strconv.Itoa(low))
		html.WriteString(`" max="`)
		html.WriteString(strconv.Itoa(high))
		html.WriteString(`"`)
		html.WriteString(element.ValueHTML())
		html.WriteString(element.AttributesHTML())
		html.WriteString(" />")

	case FieldTextarea:
		html.WriteString(element.LabelHTML())
		html.WriteString(`<textarea name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.PlaceholderHTML())
		html.WriteString(element.AttributesHTML())
		html.WriteString(">")
		html.WriteString(templ.EscapeString(element.value))
		html.WriteString("</textarea>")

	case FieldSelect:
		html.WriteString(element.LabelHTML())
		html.WriteString(`<select name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.AttributesHTML())
		html.WriteString(">")
		for _, option := range element.options {
			html.WriteString("<option")
			writeAttribute(&html, "value", option.Value)
			if option.Value == element.value {
				writeAttribute(&html, "selected", "selected")
			}
			html.WriteString(">")
			html.WriteString(templ.EscapeString(option.Label))
			html.WriteString("</option>")
		}
		html.WriteString("</select>")

	case FieldFile:
		html.WriteString(element.LabelHTML())
		html.WriteString(`<input type="file" name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.AttributesHTML())
		html.WriteString(" />")

	case FieldSubmit, FieldReset:
		html.WriteString(`<input type="`)
		html.WriteString(element.fieldType.String())
		html.WriteString(`" name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.ValueHTML())
		html.WriteString(element.AttributesHTML())
		html.WriteString(" />")

	case FieldButton:
		html.WriteString(`<button type="button" name="`)
		html.WriteString(name)
		html.WriteString(`"`)
		html.WriteString(element.ValueHTML())
		html.WriteString(element.AttributesHTML())
		html.WriteString(">")
		html.WriteString(templ.EscapeString(element.label))
		html.WriteString("</button>")
	}

	return html.String()
}

func (element *Element) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, element.HTML())
		return err
	})
}
