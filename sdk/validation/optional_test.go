package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/jrazmi/taskdesk/sdk/validation"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		Title       validation.Optional[string] `json:"title"`
		Description validation.Optional[string] `json:"description"`
		Count       validation.Optional[int]    `json:"count"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"title":"hello","description":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Title.Set || !p.Title.Valid || p.Title.Value != "hello" {
		t.Errorf("present value: %+v", p.Title)
	}
	if !p.Description.Set || p.Description.Valid {
		t.Errorf("explicit null should be Set but not Valid: %+v", p.Description)
	}
	if p.Count.Set {
		t.Errorf("absent field should stay unset: %+v", p.Count)
	}
}

func TestOptionalPtr(t *testing.T) {
	if got := validation.Some("x").Ptr(); got == nil || *got != "x" {
		t.Errorf("Some should yield a pointer to the value, got %v", got)
	}
	if got := validation.Null[string]().Ptr(); got != nil {
		t.Errorf("Null should yield nil, got %v", got)
	}
	var absent validation.Optional[string]
	if got := absent.Ptr(); got != nil {
		t.Errorf("unset should yield nil, got %v", got)
	}
}

func TestOptionalMarshal(t *testing.T) {
	out, err := json.Marshal(validation.Some(42))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "42" {
		t.Errorf("expected 42, got %s", out)
	}

	out, err = json.Marshal(validation.Null[int]())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("expected null, got %s", out)
	}
}
