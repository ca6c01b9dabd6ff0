// Package errs provides types and support related to web error
// functionality.
package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents an error classification that maps to an HTTP status.
type ErrCode int

const (
	OK ErrCode = iota
	InvalidArgument
	NotFound
	Internal
	InternalOnlyLog
	Unavailable
)

var codeNames = map[ErrCode]string{
	OK:              "ok",
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	Internal:        "internal",
	InternalOnlyLog: "internal",
	Unavailable:     "unavailable",
}

var httpStatus = map[ErrCode]int{
	OK:              http.StatusOK,
	InvalidArgument: http.StatusUnprocessableEntity,
	NotFound:        http.StatusNotFound,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
	Unavailable:     http.StatusServiceUnavailable,
}

func (c ErrCode) String() string {
	name, ok := codeNames[c]
	if !ok {
		return "unknown"
	}
	return name
}

// FieldError reports a single validation violation on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error represents an error in the system carrying enough context to log
// the source and respond to the client.
type Error struct {
	Code     ErrCode      `json:"code"`
	Message  string       `json:"message"`
	Fields   []FieldError `json:"fields,omitempty"`
	FuncName string       `json:"-"`
	FileName string       `json:"-"`
}

// New constructs an error based on an app error code.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)
	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on an error format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)
	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// NewFieldsError constructs an InvalidArgument error carrying per-field
// violations.
func NewFieldsError(message string, fields []FieldError) *Error {
	pc, filename, line, _ := runtime.Caller(1)
	return &Error{
		Code:     InvalidArgument,
		Message:  message,
		Fields:   fields,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// wire is the client-facing shape of an error response.
type wire struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// Encode implements the web Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(wire{
		Error:  e.Message,
		Code:   e.Code.String(),
		Fields: e.Fields,
	})
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web httpStatus interface.
func (e *Error) HTTPStatus() int {
	status, ok := httpStatus[e.Code]
	if !ok {
		return http.StatusInternalServerError
	}
	return status
}
