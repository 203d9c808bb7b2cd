package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curewell/carepartner/core"
	"github.com/curewell/carepartner/internal/testutil"
)

func TestInMemoryStore_SaveGet(t *testing.T) {
	store := NewInMemoryStore()
	report := testutil.NewReportBuilder().ID("R9").Build()
	a := core.Artifact{Filename: "medical-report-R9.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}

	require.NoError(t, store.Save(report.ID, a))

	got, err := store.Get("R9")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	// Mutating the returned copy must not affect the stored artifact.
	got.Data[0] = 'X'
	again, err := store.Get("R9")
	require.NoError(t, err)
	assert.Equal(t, byte('%'), again.Data[0])
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	_, err := NewInMemoryStore().Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_ListDelete(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Save("A", core.Artifact{Data: []byte("a")}))
	require.NoError(t, store.Save("B", core.Artifact{Data: []byte("b")}))

	assert.ElementsMatch(t, []string{"A", "B"}, store.List())

	require.NoError(t, store.Delete("A"))
	assert.ErrorIs(t, store.Delete("A"), ErrNotFound)
	assert.ElementsMatch(t, []string{"B"}, store.List())
}
