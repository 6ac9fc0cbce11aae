// Package forms models HTML form fields: their type, attributes, validation state and markup.
package forms

import "golang.org/x/exp/slices"

// FieldType is the kind of a form element. The set is closed.
type FieldType string

const (
	FieldHidden   FieldType = "hidden"
	FieldSelect   FieldType = "select"
	FieldText     FieldType = "text"
	FieldPassword FieldType = "password"
	FieldTextarea FieldType = "textarea"
	FieldRange    FieldType = "range"
	FieldFile     FieldType = "file"
	FieldSubmit   FieldType = "submit"
	FieldReset    FieldType = "reset"
	FieldButton   FieldType = "button"
)

var fieldTypes = []FieldType{
	FieldHidden,
	FieldSelect,
	FieldText,
	FieldPassword,
	FieldTextarea,
	FieldRange,
	FieldFile,
	FieldSubmit,
	FieldReset,
	FieldButton,
}

// FieldTypes returns every recognized field type.
func FieldTypes() []FieldType {
	return slices.Clone(fieldTypes)
}

func (t FieldType) IsValid() bool {
	return slices.Contains(fieldTypes, t)
}

// IsAction reports whether the type only triggers an action. Required has no meaning for these.
func (t FieldType) IsAction() bool {
	return t == FieldSubmit || t == FieldReset || t == FieldButton
}

// SkipsFieldContain reports whether the type is laid out without the field wrapper.
func (t FieldType) SkipsFieldContain() bool {
	return t.IsAction() || t == FieldHidden
}

// CaptionIsValue reports whether the label is rendered through the value attribute.
func (t FieldType) CaptionIsValue() bool {
	return t == FieldSubmit || t == FieldReset
}

func (t FieldType) String() string {
	return string(t)
}
