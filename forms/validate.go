package forms

import (
	"errors"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MessageInvalidOption = "Select a valid option."
	MessageNotNumber     = "Enter a whole number."
	MessageOutOfRange    = "Enter a value between 1 and 10."
	MessageRequired      = "This field is required."
)

var (
	validateOnce     sync.Once
	validateInstance *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validateInstance = validator.New()
	})
	return validateInstance
}

// Validate checks a submitted value against the element's rules. On failure the message is
// recorded on the element and false is returned. A passing value leaves any earlier message
// in place; call ClearError to reset it.
func (element *Element) Validate(raw string) bool {
	if raw == "" {
		if element.required && !element.fieldType.IsAction() {
			element.err = MessageRequired
			return false
		}
		return true
	}

	switch element.fieldType {
	case FieldRange:
		return element.validateRange(raw)
	case FieldSelect:
		return element.validateOption(raw)
	}
	return true
}

func (element *Element) validateRange(raw string) bool {
	v := getValidator()
	if err := v.Var(raw, "number"); err != nil {
		element.err = MessageNotNumber
		return false
	}
	score, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		element.err = MessageOutOfRange
		return false
	}
	if err != nil {
		element.err = MessageNotNumber
		return false
	}
	low, high := element.Range()
	if err := v.Var(score, "gte="+strconv.Itoa(low)+",lte="+strconv.Itoa(high)); err != nil {
		element.err = MessageOutOfRange
		return false
	}
	return true
}

func (element *Element) validateOption(raw string) bool {
	if len(element.options) == 0 {
		return true
	}
	for _, option := range element.options {
		if option.Value == raw {
			return true
		}
	}
	element.err = MessageInvalidOption
	return false
}
