package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestReferenceError(t *testing.T) {
	err := NewReference("Laodiceans 1:1", "unknown book")
	want := `invalid passage reference "Laodiceans 1:1": unknown book`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ReferenceError should unwrap to ErrInvalidInput")
	}
}

func TestReferenceErrorWithoutReason(t *testing.T) {
	err := &ReferenceError{Input: "???"}
	want := `invalid passage reference "???"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseError(t *testing.T) {
	err := NewParse("corpus row", "data/corpus.tsv", "missing reference column")
	want := "failed to parse corpus row at data/corpus.tsv: missing reference column"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseError should unwrap to ErrInvalidInput")
	}
}

func TestIOError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewIO("fetch", "https://example.test/passage", underlying)
	if !errors.Is(err, underlying) {
		t.Error("IOError should unwrap to the underlying error")
	}
	want := "failed to fetch https://example.test/passage: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupported("archive format", "only zip and xz are handled")
	if !errors.Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should unwrap to ErrUnsupported")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrap(base, "loading lexicon")
	if wrapped.Error() != "loading lexicon: boom" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base")
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrapf(base, "chapter %d", 3)
	if wrapped.Error() != "chapter 3: boom" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}
	if Wrapf(nil, "chapter %d", 3) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewReference("Nowhere 9", "unknown book"))
	var refErr *ReferenceError
	if !As(err, &refErr) {
		t.Fatal("As should find the ReferenceError")
	}
	if refErr.Input != "Nowhere 9" {
		t.Errorf("Input = %q, want %q", refErr.Input, "Nowhere 9")
	}
}
