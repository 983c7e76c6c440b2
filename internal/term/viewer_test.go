package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"bedrock/internal/core"
	"bedrock/internal/level"
	"bedrock/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func newViewer(t *testing.T, s tcell.Screen) *Viewer {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Size = core.MustSize(128, 64)
	lvl, ok := level.Builtin("field")
	require.True(t, ok)
	w, err := sand.NewWorld(cfg, lvl)
	require.NoError(t, err)
	return New(s, w)
}

func rowText(s tcell.Screen, row int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := range cols {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawUsesHalfBlocksAndStatusLine(t *testing.T) {
	s := newScreen(t, 40, 12)
	v := newViewer(t, s)
	v.Draw()

	for row := range 11 {
		r, _, _, _ := s.GetContent(0, row)
		assert.Equal(t, halfBlock, r, "row %d", row)
	}
	status := rowText(s, 11)
	assert.Contains(t, status, "Field")
	assert.Contains(t, status, "seed 1337")
	assert.Contains(t, status, "running")
	assert.Contains(t, status, "q quits")
}

func TestStatusLineKeepsNonASCIINames(t *testing.T) {
	s := newScreen(t, 60, 8)
	v := newViewer(t, s)
	lvl := v.world.Level()
	lvl.Name = "Café"
	require.NoError(t, v.world.LoadLevel(lvl))
	v.Draw()
	assert.Contains(t, rowText(s, 7), "Café | seed")
}

func TestStatusLineTruncatesToWidth(t *testing.T) {
	s := newScreen(t, 12, 4)
	v := newViewer(t, s)
	v.Draw()
	assert.Equal(t, " running | q", rowText(s, 3))
}

func TestKeysPanZoomAndStep(t *testing.T) {
	s := newScreen(t, 40, 12)
	v := newViewer(t, s)
	v.view.CenterOn(64, 32)
	start := v.View()

	assert.False(t, v.handleKey(tcell.KeyRight, 0))
	assert.Equal(t, start.PanX+start.Step(), v.View().PanX)
	v.handleKey(tcell.KeyLeft, 0)
	assert.Equal(t, start.PanX, v.View().PanX)

	v.handleKey(tcell.KeyRune, '-')
	assert.Greater(t, v.View().Scale, start.Scale)
	v.handleKey(tcell.KeyRune, '+')
	assert.Equal(t, start.Scale, v.View().Scale)

	v.handleKey(tcell.KeyRune, 'n')
	assert.Equal(t, uint64(1), v.world.Ticks())

	v.handleKey(tcell.KeyRune, ' ')
	assert.True(t, v.Paused())
	v.Draw()
	assert.Contains(t, rowText(s, 11), "paused")

	v.handleKey(tcell.KeyRune, 'r')
	assert.Equal(t, uint64(0), v.world.Ticks())
}

func TestQuitKeys(t *testing.T) {
	v := newViewer(t, newScreen(t, 20, 6))
	assert.True(t, v.handleKey(tcell.KeyRune, 'q'))
	assert.True(t, v.handleKey(tcell.KeyEscape, 0))
	assert.False(t, v.handleKey(tcell.KeyRune, 'x'))
}

func TestPausedTickDoesNotAdvance(t *testing.T) {
	v := newViewer(t, newScreen(t, 20, 6))
	v.paused = true
	v.stepper.Steps()
	time.Sleep(300 * time.Millisecond)
	v.Tick()
	assert.Equal(t, uint64(0), v.world.Ticks())
}

func TestRunStopsOnCancel(t *testing.T) {
	v := newViewer(t, newScreen(t, 20, 6))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, v.Run(ctx), context.DeadlineExceeded)
}
