package core

import (
	"errors"
	"strings"
	"testing"
)

func TestRecoveredReturnsNilOnSuccess(t *testing.T) {
	if err := Recovered(func() {}); err != nil {
		t.Errorf("Expected nil for non-panicking fn, got %v", err)
	}
}

func TestRecoveredCapturesPanic(t *testing.T) {
	err := Recovered(func() { panic("boom") })
	if err == nil {
		t.Fatal("Expected error from panicking fn")
	}

	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *PanicError, got %T", err)
	}
	if pe.Value != "boom" {
		t.Errorf("Expected panic value 'boom', got %v", pe.Value)
	}
	if len(pe.Stack) == 0 {
		t.Error("Expected captured stack trace")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error message should include the panic value: %s", err.Error())
	}
}

func TestGoInvokesOnPanic(t *testing.T) {
	done := make(chan *PanicError, 1)

	Go(func() { panic("goroutine boom") }, func(pe *PanicError) {
		done <- pe
	})

	pe := <-done
	if pe == nil {
		t.Fatal("Expected panic error delivered to handler")
	}
	if pe.Value != "goroutine boom" {
		t.Errorf("Expected panic value 'goroutine boom', got %v", pe.Value)
	}
}
