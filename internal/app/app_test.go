package app

import (
	"context"
	"os"
	"testing"
	"time"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/feed"
	"flight-radar.klederson.com/internal/geometry"
	"flight-radar.klederson.com/internal/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am
}

func report(id string, x, y, speed float64) feed.UpdateMsg {
	return feed.UpdateMsg{
		Airship: airship.Airship{ID: id, Position: geometry.Cartesian{X: x, Y: y}, Heading: 90, Speed: speed, Width: 0.03, Length: 0.2},
		At:      time.Now(),
	}
}

func newModel(t *testing.T) AppModel {
	t.Helper()
	m := New(config.Default(), nil, nil, "test")
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func TestInitialView(t *testing.T) {
	m := New(config.Default(), nil, nil, "test")
	assert.Equal(t, "Initializing Flight Radar...", m.View())
	assert.NotNil(t, m.Init())
}

func TestReportsAppearOnNextFrame(t *testing.T) {
	m := newModel(t)
	m = update(t, m, report("LZ-129", 0, 0, 60))
	m = update(t, m, report("LZ-127", 0.5, 0, 80))
	assert.Equal(t, 0, m.ships.Len(), "frame is not patched between ticks")

	m = update(t, m, TickMsg(time.Now()))
	require.Equal(t, 2, m.ships.Len())
	assert.Equal(t, "LZ-127", m.ships.At(0).ID)
	assert.Len(t, m.scene.Sprites, 2)
	assert.Len(t, m.scene.ClosePairs, 1)
	assert.NotEmpty(t, m.radar)
	assert.NoError(t, m.err)

	v := m.View()
	assert.Contains(t, v, "AIRSHIPS [2]")
	assert.Contains(t, v, "[CLOSE]")
}

func TestInvalidReportIsDropped(t *testing.T) {
	m := newModel(t)
	bad := report("X", 0, 0, -5)
	m = update(t, m, bad)
	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 0, m.ships.Len())
	assert.Empty(t, m.shared.history)
}

func TestKeysChangeTheView(t *testing.T) {
	m := newModel(t)
	cfg := m.cfg
	zoom := m.view.Zoom

	m = update(t, m, key("+"))
	assert.Equal(t, zoom*cfg.Zoom.Step, m.view.Zoom)
	m = update(t, m, key("-"))
	assert.InDelta(t, zoom, m.view.Zoom, 1e-12)

	scale := m.view.SpriteScale
	m = update(t, m, key("]"))
	assert.Equal(t, scale+1, m.view.SpriteScale)
	m = update(t, m, key("["))
	assert.Equal(t, scale, m.view.SpriteScale)

	m = update(t, m, key("v"))
	assert.False(t, m.view.ShowVision)
	m = update(t, m, key("g"))
	assert.False(t, m.view.ShowGuidelines)
	m = update(t, m, TickMsg(time.Now()))
	for _, sp := range m.scene.Sprites {
		assert.Nil(t, sp.LeftCone)
	}
}

func TestCursorAndDetail(t *testing.T) {
	m := newModel(t)
	for _, id := range []string{"A", "B", "C"} {
		m = update(t, m, report(id, 0, 0, 50))
	}
	m = update(t, m, report("C", 0, 0, 70))
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor, "cursor stops at the last airship")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.detail)
	d := m.detailFor(m.ships.At(m.cursor))
	assert.Equal(t, []float64{50, 70}, d.SpeedHistory)
	assert.ElementsMatch(t, []string{"A", "B"}, d.CloseTo)
	assert.Contains(t, m.View(), "AIRSHIP DETAIL")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.detail)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.cursor)
}

func TestEvictDropsStaleAirships(t *testing.T) {
	m := newModel(t)
	old := report("OLD", 0, 0, 10)
	old.At = time.Now().Add(-time.Hour)
	m = update(t, m, old)
	m = update(t, m, report("NEW", 0, 0, 10))

	m = update(t, m, EvictMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))
	require.Equal(t, 1, m.ships.Len())
	assert.Equal(t, "NEW", m.ships.At(0).ID)

	assert.NotContains(t, m.shared.history, "OLD", "speed history dropped with the airship")
	assert.Contains(t, m.shared.history, "NEW")
}

func TestEvictLogsDroppedAirships(t *testing.T) {
	lg, err := log.New("debug", t.TempDir())
	require.NoError(t, err)

	m := New(config.Default(), lg, nil, "test")
	old := report("OLD", 0, 0, 10)
	old.At = time.Now().Add(-time.Hour)
	m = update(t, m, old)
	m = update(t, m, EvictMsg(time.Now()))

	out, err := os.ReadFile(lg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"msg":"evicted [OLD]"`)
	assert.Contains(t, string(out), `"component":"app"`)
	assert.Contains(t, string(out), `"tracked":0`)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

type stubFeed struct {
	started, stopped int
}

func (s *stubFeed) Start(context.Context, feed.Sender) error { s.started++; return nil }
func (s *stubFeed) Stop()                                    { s.stopped++ }

func TestFeedLifecycle(t *testing.T) {
	f := &stubFeed{}
	m := New(config.Default(), nil, f, "stub")
	require.NoError(t, m.StartFeed(nil))
	m.StopFeed()
	assert.Equal(t, 1, f.started)
	assert.Equal(t, 1, f.stopped)

	idle := New(config.Default(), nil, nil, "none")
	assert.NoError(t, idle.StartFeed(nil))
	idle.StopFeed()
}

func TestRing(t *testing.T) {
	r := NewRing[float64](3)
	assert.Nil(t, r.Values())
	assert.Equal(t, 0.0, r.Last())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []float64{1, 2}, r.Values())

	r.Push(3)
	r.Push(4)
	assert.Equal(t, []float64{2, 3, 4}, r.Values())
	assert.Equal(t, 4.0, r.Last())
	assert.Equal(t, 3, r.Len())
}
