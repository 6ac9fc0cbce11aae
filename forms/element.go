package forms

import (
	"errors"
	"fmt"
)

const (
	RangeMin = 1
	RangeMax = 10
)

var (
	ErrNameRequired     = errors.New("forms: element name is required")
	ErrUnknownFieldType = errors.New("forms: unknown field type")
)

// Option is one choice of a select element.
type Option struct {
	Label string
	Value string
}

// Element holds the state of one form field. It belongs to a single form and is not safe
// for concurrent use.
type Element struct {
	attributes  Attributes
	err         string
	fieldType   FieldType
	label       string
	name        string
	options     []Option
	placeholder string
	required    bool
	value       string
}

// New builds an element of any type. The id attribute is seeded from name.
func New(fieldType FieldType, name string, label string) (*Element, error) {
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	element := &Element{
		fieldType: fieldType,
		label:     label,
		name:      name,
	}
	element.attributes.Set("id", name)
	return element, nil
}

func mustNew(fieldType FieldType, name string, label string) *Element {
	element, err := New(fieldType, name, label)
	if err != nil {
		panic(fmt.Sprintf("forms: %s element: %s", fieldType, err))
	}
	return element
}

func Hidden(name string) *Element {
	return mustNew(FieldHidden, name, "")
}

func Select(name string, label string, options ...Option) *Element {
	return mustNew(FieldSelect, name, label).SetOptions(options...)
}

func Text(name string, label string) *Element {
	return mustNew(FieldText, name, label)
}

func Password(name string, label string) *Element {
	return mustNew(FieldPassword, name, label)
}

func Textarea(name string, label string) *Element {
	return mustNew(FieldTextarea, name, label)
}

// Range builds a vote score field. Its bounds are always RangeMin and RangeMax.
func Range(name string, label string) *Element {
	return mustNew(FieldRange, name, label)
}

func File(name string, label string) *Element {
	return mustNew(FieldFile, name, label)
}

func Submit(name string, label string) *Element {
	return mustNew(FieldSubmit, name, label)
}

func Reset(name string, label string) *Element {
	return mustNew(FieldReset, name, label)
}

func Button(name string, label string) *Element {
	return mustNew(FieldButton, name, label)
}

func (element *Element) Attributes() *Attributes {
	return &element.attributes
}

// ErrorMessage returns the message recorded by the last failed validation.
func (element *Element) ErrorMessage() string {
	return element.err
}

func (element *Element) ClearError() *Element {
	element.err = ""
	return element
}

// ID returns the current id attribute.
func (element *Element) ID() string {
	id, _ := element.attributes.Get("id")
	return id
}

func (element *Element) Label() string {
	return element.label
}

func (element *Element) Name() string {
	return element.name
}

func (element *Element) Options() []Option {
	return append([]Option(nil), element.options...)
}

func (element *Element) Placeholder() string {
	return element.placeholder
}

// Range returns the accepted score bounds. They do not depend on configuration.
func (element *Element) Range() (int, int) {
	return RangeMin, RangeMax
}

func (element *Element) Required() bool {
	return element.required
}

func (element *Element) Type() FieldType {
	return element.fieldType
}

func (element *Element) Value() string {
	return element.value
}

func (element *Element) SetAttribute(key string, value string) *Element {
	element.attributes.Set(key, value)
	return element
}

// SetAttributes merges attributes into the element. A nil map is ignored.
func (element *Element) SetAttributes(attributes map[string]string) *Element {
	element.attributes.SetMany(attributes)
	return element
}

func (element *Element) SetDisabled(disabled bool) *Element {
	return element.toggleAttribute("disabled", disabled)
}

func (element *Element) SetOptions(options ...Option) *Element {
	element.options = append([]Option(nil), options...)
	return element
}

func (element *Element) SetPlaceholder(placeholder string) *Element {
	element.placeholder = placeholder
	return element
}

func (element *Element) SetReadOnly(readOnly bool) *Element {
	return element.toggleAttribute("readonly", readOnly)
}

func (element *Element) SetRequired(required bool) *Element {
	element.required = required
	return element
}

func (element *Element) SetValue(value string) *Element {
	element.value = value
	return element
}

func (element *Element) toggleAttribute(key string, on bool) *Element {
	element.attributes.Remove(key)
	if on {
		element.attributes.Set(key, key)
	}
	return element
}
