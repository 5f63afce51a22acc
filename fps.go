package showcase

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const statsRefresh = 500 * time.Millisecond

// NewStatsLabel returns a small rect whose label shows FPS, TPS and the
// number of running animations, refreshed twice a second. Add it last under
// the root so it draws on top. Stop the returned handle to freeze it.
func (s *Scene) NewStatsLabel() (*Node, TimerHandle) {
	n := NewRect("stats", 150, 56, Color{A: 0.5})
	refresh := func() {
		n.Label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nanim: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), len(s.animations))
	}
	refresh()
	return n, s.sched.Every(statsRefresh, refresh)
}
