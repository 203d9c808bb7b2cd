package core

// PhaseKind enumerates the session lifecycle states.
type PhaseKind int

const (
	// PhaseIdle means no request is in flight and the last one (if any) succeeded.
	PhaseIdle PhaseKind = iota
	// PhasePending means a request has been dispatched and not yet resolved.
	PhasePending
	// PhaseError means the last request failed; Phase.Message carries the reason.
	PhaseError
)

// String returns the string representation of the phase kind.
func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Phase is the session's current lifecycle state. Exactly one phase is active
// at a time. Message is only populated for PhaseError.
type Phase struct {
	Kind    PhaseKind `json:"kind"`
	Message string    `json:"message,omitempty"`
}

// Idle returns the idle phase.
func Idle() Phase { return Phase{Kind: PhaseIdle} }

// Pending returns the awaiting-response phase. It may only be entered from
// idle or error; the store enforces this.
func Pending() Phase { return Phase{Kind: PhasePending} }

// Errored returns an error phase carrying a short human readable message.
func Errored(message string) Phase { return Phase{Kind: PhaseError, Message: message} }
