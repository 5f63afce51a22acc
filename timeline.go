package showcase

// Timeline sequences groups of tweens. Each Add places its group relative to
// the end of the timeline so far: offset 0 appends, a negative offset overlaps
// the previous group.
type Timeline struct {
	entries []timelineEntry
	end     float32
	elapsed float32
	running []*TweenGroup
	Done    bool
}

type timelineEntry struct {
	at      float32
	specs   []TweenSpec
	started bool
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add appends specs starting at end+offset (never before zero). All specs in
// one call start together; use Stagger to fan them out.
func (tl *Timeline) Add(offset float32, specs ...TweenSpec) *Timeline {
	at := max(tl.end+offset, 0)
	var span float32
	for _, s := range specs {
		span = max(span, s.span())
	}
	tl.entries = append(tl.entries, timelineEntry{at: at, specs: specs})
	tl.end = max(tl.end, at+span)
	return tl
}

// Duration returns the total length of the timeline in seconds.
func (tl *Timeline) Duration() float32 {
	return tl.end
}

// Update advances the timeline by dt seconds.
func (tl *Timeline) Update(dt float32) {
	if tl.Done {
		return
	}
	for _, g := range tl.running {
		g.Update(dt)
	}
	tl.elapsed += dt

	pending := false
	for i := range tl.entries {
		e := &tl.entries[i]
		if e.started {
			continue
		}
		if e.at > tl.elapsed {
			pending = true
			continue
		}
		e.started = true
		over := tl.elapsed - e.at
		for _, s := range e.specs {
			g := s.Start()
			if over > 0 {
				g.Update(over)
			}
			tl.running = append(tl.running, g)
		}
	}

	if pending {
		return
	}
	for _, g := range tl.running {
		if !g.Done {
			return
		}
	}
	tl.Done = true
}

// IsDone reports whether every entry has started and finished.
func (tl *Timeline) IsDone() bool {
	return tl.Done
}

// Stop halts all running tweens; entries not yet started never start.
func (tl *Timeline) Stop() {
	for _, g := range tl.running {
		g.Stop()
	}
	tl.Done = true
}
