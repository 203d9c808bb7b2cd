package testutil

import (
	"time"

	"github.com/curewell/carepartner/core"
)

// ReportBuilder provides a fluent helper for constructing reports in tests.
// Example:
//
//	r := NewReportBuilder().Query("headache").Response("Hydrate.").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type ReportBuilder struct {
	id        string
	query     string
	response  string
	createdAt time.Time
}

// NewReportBuilder creates a builder with a deterministic default identity.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		id:        "TEST00001",
		query:     "test query",
		response:  "test response",
		createdAt: time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}
}

// ID overrides the report identifier (chainable).
func (b *ReportBuilder) ID(id string) *ReportBuilder { b.id = id; return b }

// Query sets the user query text (chainable).
func (b *ReportBuilder) Query(q string) *ReportBuilder { b.query = q; return b }

// Response sets the normalized assistant text (chainable).
func (b *ReportBuilder) Response(r string) *ReportBuilder { b.response = r; return b }

// CreatedAt overrides the synthesis timestamp (chainable).
func (b *ReportBuilder) CreatedAt(t time.Time) *ReportBuilder { b.createdAt = t; return b }

// Build constructs the core.Report value.
func (b *ReportBuilder) Build() core.Report {
	return core.Report{
		ID:        b.id,
		Query:     b.query,
		Response:  b.response,
		CreatedAt: b.createdAt,
	}
}
