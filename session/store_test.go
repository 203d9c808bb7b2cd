package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curewell/carepartner/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*Store)(nil)

func TestStore_AppendUserTurn(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AppendUserTurn("I have a headache"))

	snap := s.Snapshot()
	require.Len(t, snap.Turns, 1)
	ut, ok := snap.Turns[0].(core.UserTurn)
	require.True(t, ok, "expected a UserTurn")
	assert.Equal(t, "I have a headache", ut.Text)
	assert.False(t, ut.Timestamp.IsZero())
}

func TestStore_AppendUserTurn_Blank(t *testing.T) {
	s := NewStore()

	for _, text := range []string{"", "   ", "\n\t "} {
		err := s.AppendUserTurn(text)
		var verr *core.ValidationError
		require.True(t, errors.As(err, &verr), "expected ValidationError for %q", text)
	}
	assert.Empty(t, s.Snapshot().Turns)
}

func TestStore_AppendReportTurn_Order(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AppendUserTurn("what about flu shots"))
	s.AppendReportTurn(core.Report{ID: "R1", Query: "what about flu shots", Response: "Yearly.", CreatedAt: time.Now()})

	snap := s.Snapshot()
	require.Len(t, snap.Turns, 2)
	_, isUser := snap.Turns[0].(core.UserTurn)
	rt, isReport := snap.Turns[1].(core.ReportTurn)
	assert.True(t, isUser)
	require.True(t, isReport)
	assert.Equal(t, "R1", rt.Report.ID)
}

func TestStore_Snapshot_DefensiveCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendUserTurn("hello"))

	snap := s.Snapshot()
	snap.Turns[0] = core.UserTurn{Text: "tampered"}

	fresh := s.Snapshot()
	ut := fresh.Turns[0].(core.UserTurn)
	assert.Equal(t, "hello", ut.Text, "snapshot mutation must not leak into the store")
}

func TestStore_SetPhase_SingleFlight(t *testing.T) {
	s := NewStore()
	assert.Equal(t, core.PhaseIdle, s.Phase().Kind)

	require.NoError(t, s.SetPhase(core.Pending()))

	err := s.SetPhase(core.Pending())
	var terr *core.InvalidTransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, core.PhasePending, s.Phase().Kind, "failed transition must not alter phase")

	require.NoError(t, s.SetPhase(core.Errored("upstream failure")))
	assert.Equal(t, "upstream failure", s.Phase().Message)

	// Error -> pending is a legal retry path.
	require.NoError(t, s.SetPhase(core.Pending()))
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()
	ch := s.Subscribe()

	require.NoError(t, s.AppendUserTurn("ping"))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after append")
	}

	// Coalesced: many mutations without draining never block the store.
	for i := 0; i < 10; i++ {
		require.NoError(t, s.SetPhase(core.Idle()))
	}
	select {
	case <-ch:
	default:
		t.Fatal("expected a pending coalesced signal")
	}
}
