package validator

import (
	stdErrors "errors"
	"testing"
)

type sample struct {
	FileID string `form:"file_id" json:"file_id" validate:"required,max=4"`
	Note   string `json:"note,omitempty" validate:"omitempty,min=2"`
}

func TestMessage_UsesRequestFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Note: "x"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if got, want := Message(err), "file_id: required; note: min=2"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	err = v.Validate(&sample{FileID: "toolong"})
	if got, want := Message(err), "file_id: max=4"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestMessage_PlainError(t *testing.T) {
	if got := Message(stdErrors.New("boom")); got != "boom" {
		t.Fatalf("message = %q", got)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := New().Validate(&sample{FileID: "abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
