package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTraversalErrorString(t *testing.T) {
	err := &TraversalError{
		Op:   "widgets.AspectRatioBox.Layout",
		Kind: KindLayout,
		Err:  errors.New("non-positive ratio -2"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "widgets.AspectRatioBox.Layout") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "[layout]") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestTraversalErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &TraversalError{Op: "test.op", Kind: KindEvent, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLayout, "layout"},
		{KindEvent, "event"},
		{KindPaint, "paint"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	var capturedErr *TraversalError
	handler := &testHandler{
		onError: func(err *TraversalError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&TraversalError{
		Op:   "test.op",
		Kind: KindLayout,
		Err:  errors.New("boom"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportKeepsExistingTimestamp(t *testing.T) {
	var capturedErr *TraversalError
	handler := &testHandler{
		onError: func(err *TraversalError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	Report(&TraversalError{Op: "test.op", Timestamp: stamp})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if !capturedErr.Timestamp.Equal(stamp) {
		t.Errorf("Timestamp = %v, want %v", capturedErr.Timestamp, stamp)
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(err *TraversalError) {
			called = true
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)

	if called {
		t.Error("expected nil report to be dropped")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(&testHandler{})
	SetHandler(nil)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

// testHandler captures reported errors for assertions.
type testHandler struct {
	onError func(err *TraversalError)
}

func (h *testHandler) HandleError(err *TraversalError) {
	if h.onError != nil {
		h.onError(err)
	}
}
