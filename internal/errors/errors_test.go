package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := New(CodeConfiguration, "bad knob")
	wrapped := Wrap(base, "loading config")

	var appErr *AppError
	if !stderrors.As(wrapped, &appErr) {
		t.Fatal("wrapped error should be an AppError")
	}
	if appErr.Code != CodeConfiguration {
		t.Errorf("expected code %s, got %s", CodeConfiguration, appErr.Code)
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestWrapfForeignError(t *testing.T) {
	cause := stderrors.New("disk full")
	wrapped := Wrapf(cause, "saving session %s", "abc")

	var appErr *AppError
	if !stderrors.As(wrapped, &appErr) {
		t.Fatal("wrapped error should be an AppError")
	}
	if appErr.Code != CodeInternal {
		t.Errorf("foreign causes default to %s, got %s", CodeInternal, appErr.Code)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("wrapping nil should stay nil")
	}
}
