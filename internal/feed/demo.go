package feed

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/geometry"
	tea "github.com/charmbracelet/bubbletea"
)

var demoCallsigns = []string{
	"LZ-127", "LZ-129", "LZ-130", "R-100", "R-101", "N-1", "N-2",
	"ZRS-4", "ZRS-5", "ZR-3", "GZ-20", "ZNPG-3", "SKYSHIP", "ZEPNT",
}

// homeTolerance is how far off the bearing home an airship outside the
// bound may head before it is turned back.
const homeTolerance geometry.Degrees = 45

// Sender delivers messages to the running program. *tea.Program is one.
type Sender interface {
	Send(msg tea.Msg)
}

// DemoFeed reports a set of dead-reckoned airships on a fixed interval.
// Generated traffic takes the occasional random turn; scenario traffic
// flies exactly as loaded.
type DemoFeed struct {
	interval time.Duration
	bound    float64 // km from the center before an airship turns back, 0 for none

	mu     sync.Mutex
	rng    *rand.Rand
	ships  []airship.Airship
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDemoFeed creates count airships scattered within bound kilometers of
// the center. The same seed always gives the same traffic.
func NewDemoFeed(count int, interval time.Duration, bound float64, seed int64) *DemoFeed {
	rng := rand.New(rand.NewSource(seed))
	count = min(max(count, 0), len(demoCallsigns))

	perm := rng.Perm(len(demoCallsigns))
	ships := make([]airship.Airship, count)
	for i := range ships {
		ships[i] = airship.Airship{
			ID: demoCallsigns[perm[i]],
			Position: geometry.Cartesian{
				X: (rng.Float64()*2 - 1) * bound * 0.8,
				Y: (rng.Float64()*2 - 1) * bound * 0.8,
			},
			Heading: geometry.Degrees(rng.Float64() * 360),
			Speed:   40 + rng.Float64()*80, // 40-120 km/h
			Width:   0.03 + rng.Float64()*0.02,
			Length:  0.18 + rng.Float64()*0.07,
		}
	}
	// one airship holds station so the display always shows a stationary case
	if count > 0 {
		ships[count-1].Speed = 0
	}
	return &DemoFeed{interval: interval, bound: bound, rng: rng, ships: ships}
}

// NewScenarioFeed reports ships as given, advancing them along their
// headings each interval.
func NewScenarioFeed(ships []airship.Airship, interval time.Duration) *DemoFeed {
	return &DemoFeed{interval: interval, ships: append([]airship.Airship(nil), ships...)}
}

// Start begins reporting to s until ctx is cancelled or Stop is called.
func (d *DemoFeed) Start(ctx context.Context, s Sender) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return nil
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})
	go d.loop(ctx, s)
	return nil
}

func (d *DemoFeed) loop(ctx context.Context, s Sender) {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for _, m := range d.step(0, time.Now()) {
		s.Send(m)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, m := range d.step(d.interval, now) {
				s.Send(m)
			}
		}
	}
}

// Stop halts the feed and waits for the reporting goroutine to exit.
func (d *DemoFeed) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel = nil
	d.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

// Current reports every airship where it is now, without advancing it.
func (d *DemoFeed) Current(now time.Time) []UpdateMsg {
	return d.step(0, now)
}

// step advances every airship by dt and returns one report per airship.
func (d *DemoFeed) step(dt time.Duration, now time.Time) []UpdateMsg {
	d.mu.Lock()
	defer d.mu.Unlock()

	msgs := make([]UpdateMsg, len(d.ships))
	for i := range d.ships {
		a := &d.ships[i]
		if a.Moving() {
			a.Position = a.Position.Advance(a.Heading, a.Speed*dt.Hours())
			switch {
			case d.bound > 0 && a.Position.Norm() > d.bound:
				if home := a.Position.Bearing(geometry.Origin); geometry.HeadingDifference(a.Heading, home) > homeTolerance {
					a.Heading = home
				}
			case d.rng != nil && d.rng.Float64() < 0.01:
				turn := 10 + d.rng.Float64()*35
				if d.rng.Intn(2) == 0 {
					turn = -turn
				}
				a.Heading = (a.Heading + geometry.Degrees(turn)).Normalize()
			}
		}
		msgs[i] = UpdateMsg{Airship: *a, At: now}
	}
	return msgs
}
