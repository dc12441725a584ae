package app

import (
	"context"
	"time"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/feed"
	"flight-radar.klederson.com/internal/log"
	"flight-radar.klederson.com/internal/radar"
	"flight-radar.klederson.com/internal/scene"
	"flight-radar.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// historyLen is how many speed reports are kept per airship.
	historyLen = 120

	spriteCacheSize = 512
	spriteCacheTTL  = 10 * time.Second
)

// Feed is a source of airship reports.
type Feed interface {
	Start(ctx context.Context, s feed.Sender) error
	Stop()
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	store   *feed.Store
	feed    Feed
	history map[string]*Ring[float64]
	sprites *scene.SpriteCache
	lg      *log.Logger
}

// AppModel is the root Bubble Tea model for the flight radar.
type AppModel struct {
	width  int
	height int

	cfg    *config.Config
	source string
	view   scene.View
	cursor int
	detail bool

	shared *shared

	// Last frame
	ships *airship.Airships
	radar string
	scene scene.Scene
	err   error
}

// New creates a new AppModel reading reports from f.
func New(cfg *config.Config, lg *log.Logger, f Feed, source string) AppModel {
	return AppModel{
		cfg:    cfg,
		source: source,
		view:   scene.DefaultView(cfg),
		shared: &shared{
			store:   feed.NewStore(),
			feed:    f,
			history: make(map[string]*Ring[float64]),
			sprites: scene.NewSpriteCache(spriteCacheSize, spriteCacheTTL),
			lg:      lg.With("component", "app"),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		evictCmd(m.cfg.Feed.EvictEvery),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.rebuild(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.rebuild(), tickCmd()

	case EvictMsg:
		if ids := m.shared.store.Evict(m.cfg.Feed.Timeout); len(ids) > 0 {
			for _, id := range ids {
				delete(m.shared.history, id)
			}
			m.shared.lg.Info("evicted stale airships", "count", len(ids), "tracked", m.shared.store.Count())
			m.shared.lg.Debugf("evicted %v", ids)
		}
		return m, evictCmd(m.cfg.Feed.EvictEvery)

	case feed.UpdateMsg:
		if err := m.shared.store.Upsert(msg); err != nil {
			m.shared.lg.Warn("rejected report", "error", err)
			return m, nil
		}
		h, ok := m.shared.history[msg.Airship.ID]
		if !ok {
			h = NewRing[float64](historyLen)
			m.shared.history[msg.Airship.ID] = h
		}
		h.Push(msg.Airship.Speed)
		return m, nil

	case FeedErrorMsg:
		m.err = msg.Err
		m.shared.lg.Error("feed error", "error", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		// The feed is stopped by the caller once Run returns; stopping
		// here would wait on a Send blocked behind this Update.
		return m, tea.Quit

	case "+", "=":
		m.view = m.view.ZoomIn(m.cfg)
	case "-", "_":
		m.view = m.view.ZoomOut(m.cfg)
	case "]":
		m.view = m.view.GrowSprites()
	case "[":
		m.view = m.view.ShrinkSprites()
	case "v", "V":
		m.view = m.view.ToggleVision()
	case "g", "G":
		m.view = m.view.ToggleGuidelines()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.ships.Len()-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = max(m.ships.Len()-1, 0)

	case "enter":
		m.detail = m.ships.Len() > 0
	case "esc":
		m.detail = false
	}

	return m.rebuild(), nil
}

// panels is the screen split shared by rebuild and View.
func (m AppModel) panels() (radarW, listW, bodyH int) {
	bodyH = max(m.height-2, 5) // menu and status bars
	radarW = max(m.width*3/4, 30)
	listW = m.width - radarW
	if listW < 15 {
		listW = 15
		radarW = m.width - listW
	}
	return radarW, listW, bodyH
}

// rebuild takes a fresh snapshot and renders a new frame from it and the
// current view. The previous frame is never patched; only projections of
// unchanged airships come back from the sprite cache.
func (m AppModel) rebuild() AppModel {
	if m.width == 0 || m.height == 0 {
		return m
	}
	ships, err := m.shared.store.Snapshot()
	if err != nil {
		m.err = err
		m.shared.lg.Error("snapshot failed", "error", err)
		return m
	}
	m.ships = ships
	m.cursor = min(m.cursor, max(ships.Len()-1, 0))

	radarW, _, bodyH := m.panels()
	cols, rows := ui.RadarInner(radarW, bodyH)
	m.radar, m.scene, err = radar.Render(context.Background(), m.cfg, cols, rows, ships, m.view, m.shared.sprites)
	if err != nil {
		m.shared.lg.Error("frame failed", "error", err)
	}
	m.err = err
	return m
}

func (m AppModel) closeIDs() map[string]bool {
	ids := make(map[string]bool, 2*len(m.scene.ClosePairs))
	for _, p := range m.scene.ClosePairs {
		ids[p.A.ID] = true
		ids[p.B.ID] = true
	}
	return ids
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing Flight Radar..."
	}

	radarW, listW, bodyH := m.panels()
	menuBar := ui.RenderMenuBar(m.width, m.source, m.view.ShowVision, m.view.ShowGuidelines)

	var main string
	if m.detail && m.ships.Len() > 0 {
		main = ui.RenderDetailPanel(m.detailFor(m.ships.At(m.cursor)), radarW, bodyH)
	} else {
		cols, _ := ui.RadarInner(radarW, bodyH)
		main = ui.RenderRadarPanel(radarW, bodyH, m.radar, radar.RenderLegend(cols))
	}

	list := ui.RenderAirshipList(m.ships.Slice(), m.closeIDs(), listW, bodyH, m.cursor)

	st := ui.Status{
		Airships:   m.ships.Len(),
		ClosePairs: len(m.scene.ClosePairs),
		Zoom:       m.view.Zoom,
		Range:      m.cfg.Display.Range / m.view.Zoom,
		Err:        m.err,
	}
	if len(m.scene.RingRadii) > 0 {
		st.CellPx = m.scene.Rings.Radius.Value() / m.cfg.Display.Range
	}
	statusBar := ui.RenderStatusBar(m.width, st)

	return ui.ComposeLayout(menuBar, main, list, statusBar)
}

func (m AppModel) detailFor(a airship.Airship) ui.Detail {
	d := ui.Detail{Airship: a, Params: scene.Params(m.cfg)}
	if h, ok := m.shared.history[a.ID]; ok {
		d.SpeedHistory = h.Values()
	}
	for _, p := range m.scene.ClosePairs {
		switch a.ID {
		case p.A.ID:
			d.CloseTo = append(d.CloseTo, p.B.ID)
		case p.B.ID:
			d.CloseTo = append(d.CloseTo, p.A.ID)
		}
	}
	return d
}

// StartFeed starts the feed. Must be called before p.Run().
func (m *AppModel) StartFeed(p *tea.Program) error {
	if m.shared.feed == nil {
		return nil
	}
	m.shared.lg.Info("starting feed", "source", m.source)
	return m.shared.feed.Start(context.Background(), p)
}

// StopFeed stops the feed. Call it after p.Run() returns; it is safe to
// call more than once.
func (m AppModel) StopFeed() {
	if m.shared.feed != nil {
		m.shared.feed.Stop()
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func evictCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return EvictMsg(t)
	})
}
