package core

import "time"

// Turn represents one entry in the session log: either a user query or a
// synthesized report. Concrete turn types implement the unexported isTurn
// marker enabling a closed set.
type Turn interface{ isTurn() }

// UserTurn records the exact text a user submitted. Text is never blank; the
// session store rejects whitespace-only appends.
type UserTurn struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// isTurn implements the Turn interface for UserTurn.
func (UserTurn) isTurn() {}

// ReportTurn wraps a synthesized Report as a log entry.
type ReportTurn struct {
	Report Report `json:"report"`
}

// isTurn implements the Turn interface for ReportTurn.
func (ReportTurn) isTurn() {}

// Report is the immutable structured result of one successful query/response
// cycle. It is constructed only by the query engine after the remote response
// has been validated; partially received or malformed responses never produce
// a Report. After it is appended to the session log it must be treated as
// read-only.
type Report struct {
	ID        string    `json:"id"`         // Opaque short identifier, unique within a session
	Query     string    `json:"query"`      // The exact user text that produced the report
	Response  string    `json:"response"`   // Normalized assistant text (trimmed, non-empty)
	CreatedAt time.Time `json:"created_at"` // Captured at response-receipt time, fixed thereafter
}
