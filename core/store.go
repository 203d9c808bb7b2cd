package core

// Snapshot is a read-only view of the session log and phase for rendering.
// The turn slice is a defensive copy; mutating it does not affect the store.
type Snapshot struct {
	Turns []Turn
	Phase Phase
}

// SessionStore is the single source of truth for turns and phase.
//
// Contract:
//   - The turn log is append-only; no turn is mutated or removed after append
//   - AppendUserTurn rejects blank text with a ValidationError
//   - SetPhase rejects pending -> pending with an InvalidTransitionError
//   - Snapshot returns defensive copies, safe for caller mutation.
type SessionStore interface {
	AppendUserTurn(text string) error
	AppendReportTurn(r Report)
	SetPhase(p Phase) error
	Phase() Phase
	Snapshot() Snapshot
}

// Artifact is a downloadable document produced from a Report.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter turns an immutable Report into a downloadable artifact. Export
// must be a pure read: exporting the same report twice yields artifacts with
// identical content, and the report is never mutated.
type Exporter interface {
	Export(r Report) (Artifact, error)
}
