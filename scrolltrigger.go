package showcase

// ScrollTrigger calls OnEnter once, the first time at least Threshold of the
// node's world bounds is inside the viewport. BottomMargin shrinks the
// viewport from the bottom edge so a section must scroll further in.
type ScrollTrigger struct {
	Node         *Node
	Threshold    float64
	BottomMargin float64
	OnEnter      func()

	fired  bool
	killed bool
}

// AddScrollTrigger registers a play-once trigger on node. The trigger is
// evaluated at the end of every Scene.Step.
func (s *Scene) AddScrollTrigger(node *Node, threshold float64, onEnter func()) *ScrollTrigger {
	t := &ScrollTrigger{Node: node, Threshold: threshold, OnEnter: onEnter}
	s.triggers = append(s.triggers, t)
	return t
}

// Fired reports whether OnEnter has run.
func (t *ScrollTrigger) Fired() bool {
	return t.fired
}

// Kill removes the trigger without firing it.
func (t *ScrollTrigger) Kill() {
	t.killed = true
}

// visibleFraction returns the share of the node's bounds inside view.
func visibleFraction(n *Node, view Rect) float64 {
	b := n.WorldBounds()
	if b.Area() == 0 {
		if view.Contains(b.X, b.Y) {
			return 1
		}
		return 0
	}
	return b.Intersection(view).Area() / b.Area()
}

func (s *Scene) evaluateTriggers() {
	if len(s.triggers) == 0 {
		return
	}
	current := s.triggers
	s.triggers = nil
	var live []*ScrollTrigger
	for _, t := range current {
		if t.killed || t.fired || t.Node == nil || t.Node.IsDisposed() {
			continue
		}
		view := Rect{Width: float64(s.viewW), Height: float64(s.viewH) - t.BottomMargin}
		if t.Node.Visible && view.Height > 0 && visibleFraction(t.Node, view) >= t.Threshold {
			t.fired = true
			if t.OnEnter != nil {
				t.OnEnter()
			}
			continue
		}
		live = append(live, t)
	}
	// Triggers added from OnEnter callbacks landed in s.triggers.
	s.triggers = append(live, s.triggers...)
}
