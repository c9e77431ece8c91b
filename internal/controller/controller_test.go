package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/testutil"
	"github.com/preston-bernstein/court-score-service/internal/teststubs"
)

func newController(t *testing.T, opts Options) (*Controller, *teststubs.StubPusher, *clockwork.FakeClock) {
	t.Helper()
	clock := testutil.NewMatchClock()
	opts.Clock = clock
	pusher := &teststubs.StubPusher{}
	return New(match.Defaults(), pusher, opts), pusher, clock
}

func TestPointPushesFullCourtAndRecordsHistory(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()

	changed, err := c.Point(ctx, match.SideLeft, match.Player1)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 1, c.State().Left.P1)
	require.Equal(t, 1, c.HistoryLen())

	last := pusher.Last()
	require.Equal(t, []string{"left"}, last.Fields())
	require.Equal(t, match.FullCourt(c.State().Left), last.Left)
}

func TestPointLockedOutInTextMode(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()
	c.ToggleViewMode(ctx)
	pushes := len(pusher.Deltas())

	changed, err := c.Point(ctx, match.SideRight, match.Player2)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, 0, c.State().Right.P2)
	require.Equal(t, 0, c.HistoryLen())
	require.Len(t, pusher.Deltas(), pushes)
}

func TestUndoRestoresEachHistoriedAction(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()
	start := c.State()

	for i := 0; i < 10; i++ {
		side := match.Sides[i%2]
		_, err := c.Point(ctx, side, match.Player1)
		require.NoError(t, err)
	}
	require.Equal(t, 10, c.HistoryLen())

	for i := 0; i < 10; i++ {
		require.True(t, c.Undo(ctx))
	}
	require.Equal(t, start, c.State())
	require.False(t, c.Undo(ctx))

	last := pusher.Last()
	require.Equal(t, match.FullState(start), last)
}

func TestEleventhActionEvictsOldestSnapshot(t *testing.T) {
	c, _, _ := newController(t, Options{})
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		_, err := c.Point(ctx, match.SideLeft, match.Player2)
		require.NoError(t, err)
	}
	for c.Undo(ctx) {
	}
	// The pre-first-action snapshot was evicted, so undo bottoms out one point in.
	require.Equal(t, 1, c.State().Left.P2)
	before := c.State()
	require.False(t, c.Undo(ctx))
	require.Equal(t, before, c.State())
}

func TestUndoOnEmptyHistoryDoesNotPush(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	require.False(t, c.Undo(context.Background()))
	require.Empty(t, pusher.Deltas())
}

func TestNonHistoriedActionsLeaveHistoryAlone(t *testing.T) {
	c, _, _ := newController(t, Options{})
	ctx := context.Background()

	require.NoError(t, c.ToggleTimer(ctx, match.SideLeft))
	require.NoError(t, c.ResetTimer(ctx, match.SideLeft))
	require.NoError(t, c.SetNames(ctx, match.SideRight, "ANA", "BEA"))
	require.NoError(t, c.SetTemplate(ctx, match.SideRight, match.TemplateTimer))
	c.ToggleViewMode(ctx)
	c.SetRunningText(ctx, "FINALS ")
	c.ToggleAnimating(ctx)
	c.ToggleClock(ctx)
	c.ToggleMotion(ctx)
	c.ToggleMotionBackground(ctx)
	c.PlayMotion(ctx, "/promo.mp4")

	require.Equal(t, 0, c.HistoryLen())
}

func TestResetCourtIsHistoried(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()
	_, _ = c.Point(ctx, match.SideRight, match.Player1)

	require.NoError(t, c.ResetCourt(ctx, match.SideRight))
	require.Equal(t, 2, c.HistoryLen())
	require.Equal(t, 0, c.State().Right.P1)
	require.Equal(t, []string{"right"}, pusher.Last().Fields())

	require.True(t, c.Undo(ctx))
	require.Equal(t, 1, c.State().Right.P1)
}

func TestTimerToggleUsesClock(t *testing.T) {
	c, pusher, clock := newController(t, Options{})
	ctx := context.Background()

	require.NoError(t, c.ToggleTimer(ctx, match.SideLeft))
	require.True(t, c.State().Left.Running())
	require.True(t, pusher.Last().Left.TimerStart.Set)

	clock.Advance(3 * time.Second)
	require.Equal(t, 3, c.LocalTimer(match.SideLeft))

	require.NoError(t, c.ToggleTimer(ctx, match.SideLeft))
	state := c.State()
	require.False(t, state.Left.Running())
	require.Equal(t, 3, state.Left.TimerStored)

	last := pusher.Last()
	require.True(t, last.Left.TimerStart.Set)
	require.Nil(t, last.Left.TimerStart.Value)
}

func TestRemoteSetTemplateDelta(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()
	c.ToggleViewMode(ctx)

	require.NoError(t, c.RemoteSetTemplate(ctx, match.SideLeft, match.TemplateTennis))

	state := c.State()
	require.Equal(t, match.TemplateTennis, state.Left.Template)
	require.Equal(t, match.ViewScore, state.ViewMode)
	require.False(t, state.Motion.Active)

	last := pusher.Last()
	require.Equal(t, []string{"viewMode", "motion", "left"}, last.Fields())
	require.Equal(t, match.MotionDelta{Active: last.Motion.Active}, *last.Motion)
	require.False(t, *last.Motion.Active)
}

func TestToggleViewModeStopsVideo(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	c.ToggleViewMode(context.Background())

	state := c.State()
	require.Equal(t, match.ViewText, state.ViewMode)
	require.False(t, state.Motion.Active)
	require.Equal(t, []string{"viewMode", "motion"}, pusher.Last().Fields())
}

func TestToggleClockFlipsBothClocks(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	c.ToggleClock(context.Background())

	state := c.State()
	require.False(t, state.ShowClock)
	require.False(t, state.Motion.ShowClock)

	last := pusher.Last()
	require.Equal(t, []string{"showClock", "motion"}, last.Fields())
	require.Nil(t, last.Motion.Active)
}

func TestMotionActionsSendFullMotion(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	c.PlayMotion(context.Background(), "/promo.mp4")

	state := c.State()
	require.Equal(t, "/promo.mp4", state.Motion.Src)
	require.True(t, state.Motion.Active)
	require.Equal(t, match.FullMotion(state.Motion), pusher.Last().Motion)
}

func TestSingleFieldGlobals(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()

	c.SetRunningText(ctx, "SEMIS ")
	require.Equal(t, []string{"runningText"}, pusher.Last().Fields())

	c.ToggleAnimating(ctx)
	require.Equal(t, []string{"isAnimating"}, pusher.Last().Fields())
	require.Equal(t, !match.Defaults().IsAnimating, c.State().IsAnimating)
}

func TestCourtFilterRejectsOtherCourt(t *testing.T) {
	c, pusher, _ := newController(t, Options{Court: match.SideLeft})
	ctx := context.Background()

	_, err := c.Point(ctx, match.SideRight, match.Player1)
	require.ErrorIs(t, err, ErrCourtFiltered)
	require.ErrorIs(t, c.ToggleTimer(ctx, match.SideRight), ErrCourtFiltered)
	require.ErrorIs(t, c.RemoteSetTemplate(ctx, match.SideRight, match.TemplateTimer), ErrCourtFiltered)
	require.Empty(t, pusher.Deltas())

	_, err = c.Point(ctx, match.SideLeft, match.Player1)
	require.NoError(t, err)
}

func TestInvalidInputsRejected(t *testing.T) {
	c, pusher, _ := newController(t, Options{})
	ctx := context.Background()

	require.ErrorIs(t, c.SetTemplate(ctx, match.SideLeft, "squash"), ErrUnknownTemplate)
	require.ErrorIs(t, c.ResetCourt(ctx, "center"), ErrUnknownCourt)
	require.Empty(t, pusher.Deltas())
}

func TestPushFailureIsSwallowedAndLogged(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	clock := clockwork.NewFakeClock()
	pusher := &teststubs.StubPusher{Err: errors.New("offline")}
	c := New(match.Defaults(), pusher, Options{Clock: clock, Logger: logger})

	changed, err := c.Point(context.Background(), match.SideLeft, match.Player1)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 1, c.State().Left.P1)
	require.True(t, strings.Contains(buf.String(), "controller push failed"))
}

func TestApplyReplacesLocalViewAndKeepsHistory(t *testing.T) {
	c, _, _ := newController(t, Options{})
	ctx := context.Background()
	_, _ = c.Point(ctx, match.SideLeft, match.Player1)

	remote := match.Defaults()
	remote.Right.P2Name = "REMOTE"
	c.Apply(remote)

	require.Equal(t, remote, c.State())
	require.Equal(t, 1, c.HistoryLen())

	// Undo overwrites the remote edit with the stale local snapshot.
	require.True(t, c.Undo(ctx))
	require.Equal(t, match.Defaults().Right.P2Name, c.State().Right.P2Name)
}

func TestStateReturnsCopy(t *testing.T) {
	c, _, _ := newController(t, Options{})
	require.NoError(t, c.ToggleTimer(context.Background(), match.SideLeft))

	s := c.State()
	*s.Left.TimerStart = 0
	require.NotEqual(t, match.Instant(0), *c.State().Left.TimerStart)
}
