package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curewell/carepartner/core"
)

func sampleReport() core.Report {
	return core.Report{
		ID:        "A1B2C3D4E",
		Query:     "I have a persistent cough",
		Response:  "**Rest** and hydrate.\nSee a doctor if it lasts >2 weeks.",
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestExport_Artifact(t *testing.T) {
	artifact, err := NewPDFExporter().Export(sampleReport())
	require.NoError(t, err)

	assert.Equal(t, "medical-report-A1B2C3D4E.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	require.Greater(t, len(artifact.Data), 4)
	assert.Equal(t, "%PDF", string(artifact.Data[:4]))
}

func TestExport_PureRead(t *testing.T) {
	exporter := NewPDFExporter()
	report := sampleReport()

	first, err := exporter.Export(report)
	require.NoError(t, err)
	second, err := exporter.Export(report)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data, "exporting the same report twice must yield identical bytes")
	assert.Equal(t, sampleReport(), report, "export must not mutate the report")
}

func TestExport_LongContentWraps(t *testing.T) {
	report := sampleReport()
	for i := 0; i < 6; i++ {
		report.Query += " " + report.Query
	}
	_, err := NewPDFExporter().Export(report)
	require.NoError(t, err, "long queries must word-wrap, not fail")
}
