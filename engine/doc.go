// Package engine implements the query orchestrator: the end-to-end pipeline
// turning one raw user query into a validated, committed report. It owns the
// exact mutation order of the session store (user turn append, pending phase,
// network dispatch, report append or error phase) and enforces the
// single-flight invariant: at most one request is ever in flight.
package engine
