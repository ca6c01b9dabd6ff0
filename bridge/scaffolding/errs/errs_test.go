package errs_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jrazmi/taskdesk/bridge/scaffolding/errs"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code errs.ErrCode
		want int
	}{
		{errs.InvalidArgument, http.StatusUnprocessableEntity},
		{errs.NotFound, http.StatusNotFound},
		{errs.Internal, http.StatusInternalServerError},
		{errs.InternalOnlyLog, http.StatusInternalServerError},
		{errs.Unavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		err := errs.New(tt.code, errors.New("boom"))
		if got := err.HTTPStatus(); got != tt.want {
			t.Errorf("code %v: got status %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestEncodeWireShape(t *testing.T) {
	err := errs.NewFieldsError("validation failed", []errs.FieldError{
		{Field: "title", Rule: "required", Message: "title is required"},
	})

	data, contentType, encErr := err.Encode()
	if encErr != nil {
		t.Fatalf("encode: %v", encErr)
	}
	if contentType != "application/json; charset=utf-8" {
		t.Errorf("content type: %q", contentType)
	}

	var wire struct {
		Error  string `json:"error"`
		Code   string `json:"code"`
		Fields []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if wire.Error != "validation failed" || wire.Code != "invalid_argument" {
		t.Errorf("unexpected wire error: %+v", wire)
	}
	if len(wire.Fields) != 1 || wire.Fields[0].Field != "title" || wire.Fields[0].Rule != "required" {
		t.Errorf("unexpected wire fields: %+v", wire.Fields)
	}
}

func TestInternalOnlyLogHidesNothingAtEncode(t *testing.T) {
	// Message swapping happens in middleware, not at encode time, so the
	// source capture must still be present for logging.
	err := errs.Newf(errs.InternalOnlyLog, "query failed: %s", "timeout")
	if err.FuncName == "" || err.FileName == "" {
		t.Errorf("expected caller capture, got func=%q file=%q", err.FuncName, err.FileName)
	}
	if err.Error() != "query failed: timeout" {
		t.Errorf("message: %q", err.Error())
	}
}
