package beerfest

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

type ErrorBadRequest struct {
	Message string
}

func (err ErrorBadRequest) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return "Bad request"
}

func (err ErrorBadRequest) Status() int {
	return http.StatusBadRequest
}

type ErrorInternalServer struct {
	Message string
}

func (err ErrorInternalServer) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return "Internal server error"
}

func (err ErrorInternalServer) Status() int {
	return http.StatusInternalServerError
}

type ErrorMethodNotAllowed struct {
	AllowedMethods []string
}

func (err ErrorMethodNotAllowed) Error() string {
	if len(err.AllowedMethods) > 0 {
		return "Method not allowed. Must be " + strings.Join(err.AllowedMethods, " or ")
	}
	return "Method not allowed"
}

func (err ErrorMethodNotAllowed) Status() int {
	return http.StatusMethodNotAllowed
}

type ErrorNotFound struct{}

func (err ErrorNotFound) Error() string {
	return "Not found"
}

func (err ErrorNotFound) Status() int {
	return http.StatusNotFound
}

type ErrorUnauthorized struct {
	Message string
}

func (err ErrorUnauthorized) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return "Unauthorized"
}

func (err ErrorUnauthorized) Status() int {
	return http.StatusUnauthorized
}

type ErrorWithStatus interface {
	error
	Status() int
}

// FormErrors maps field names to validation errors. The "_global_" key holds errors that
// belong to the whole form.
type FormErrors struct {
	Errors     map[string]error
	StatusCode int
}

func (form FormErrors) Error() string {
	columns := make([]string, 0, len(form.Errors))
	for column := range form.Errors {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	s := strings.Builder{}
	for i, column := range columns {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(column)
		s.WriteString(": ")
		s.WriteString(form.Errors[column].Error())
	}
	return s.String()
}

func (form FormErrors) MarshalJSON() ([]byte, error) {
	errorsMap := make(map[string]string, len(form.Errors))
	for key, err := range form.Errors {
		errorsMap[key] = err.Error()
	}
	return json.Marshal(map[string]map[string]string{"errors": errorsMap})
}

func (form FormErrors) Status() int {
	if form.StatusCode == 0 {
		return http.StatusBadRequest
	}
	return form.StatusCode
}

type UseDatabaseError struct{}

func (err UseDatabaseError) Error() string {
	return "beerfest: missing database connection"
}
