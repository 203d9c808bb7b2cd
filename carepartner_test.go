package carepartner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curewell/carepartner/artifact"
	"github.com/curewell/carepartner/core"
	"github.com/curewell/carepartner/internal/testutil"
	"github.com/curewell/carepartner/model"
)

func newTestPartner() (*CarePartner, *model.MockModel) {
	mock := model.NewMockModel("test-model")
	cp := New(func(o *Options) { o.Model = mock })
	return cp, mock
}

func TestEndToEnd_SubmitAndExport(t *testing.T) {
	cp, _ := newTestPartner()
	ch := cp.Subscribe()

	report, err := cp.Submit(context.Background(), "I get dizzy when standing up")
	require.NoError(t, err)

	snap := cp.Snapshot()
	require.Len(t, snap.Turns, 2)
	assert.Equal(t, core.PhaseIdle, snap.Phase.Kind)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after submit")
	}

	a, err := cp.ExportReport(*report)
	require.NoError(t, err)
	assert.Equal(t, "medical-report-"+report.ID+".pdf", a.Filename)

	cached, err := cp.Artifact(report.ID)
	require.NoError(t, err)
	assert.Equal(t, a, cached)
}

func TestArtifact_UnknownReport(t *testing.T) {
	cp, _ := newTestPartner()
	_, err := cp.Artifact("NOPE")
	assert.ErrorIs(t, err, artifact.ErrNotFound)
}

func TestExportReport_CustomExporter(t *testing.T) {
	report := testutil.NewReportBuilder().ID("R1").Build()
	cp := New(func(o *Options) {
		o.Model = model.NewMockModel("m")
		o.Exporter = stubExporter{}
	})

	a, err := cp.ExportReport(report)
	require.NoError(t, err)
	assert.Equal(t, "stub-R1", a.Filename)
}

func TestSessionID_Stable(t *testing.T) {
	cp, _ := newTestPartner()
	assert.NotEmpty(t, cp.SessionID())
	assert.Equal(t, cp.SessionID(), cp.SessionID())
	other, _ := newTestPartner()
	assert.NotEqual(t, cp.SessionID(), other.SessionID())
}

type stubExporter struct{}

func (stubExporter) Export(r core.Report) (core.Artifact, error) {
	return core.Artifact{Filename: "stub-" + r.ID, ContentType: "text/plain", Data: []byte(r.Response)}, nil
}
