package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestPhaseConstructors(t *testing.T) {
	if p := Idle(); p.Kind != PhaseIdle || p.Message != "" {
		t.Fatalf("unexpected idle phase: %+v", p)
	}
	if p := Pending(); p.Kind != PhasePending {
		t.Fatalf("unexpected pending phase: %+v", p)
	}
	p := Errored("boom")
	if p.Kind != PhaseError || p.Message != "boom" {
		t.Fatalf("unexpected error phase: %+v", p)
	}
}

func TestPhaseKind_String(t *testing.T) {
	cases := map[PhaseKind]string{
		PhaseIdle:     "idle",
		PhasePending:  "pending",
		PhaseError:    "error",
		PhaseKind(42): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("PhaseKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestResponseError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("submit: %w", &ResponseError{Err: cause})

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatal("expected errors.As to find ResponseError")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the underlying cause")
	}
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := &InvalidTransitionError{From: Pending(), To: Pending()}
	if err.Error() != "invalid phase transition: pending -> pending" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
