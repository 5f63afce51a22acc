package showcase

import "testing"

func TestVisibleFraction(t *testing.T) {
	view := Rect{Width: 1000, Height: 800}
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"fully inside", 100, 1},
		{"half below", 600, 0.5},
		{"fully below", 900, 0},
		{"half above", -200, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewRect("s", 500, 400, ColorWhite)
			n.Y = tt.y
			updateWorldTransform(n, identityTransform, 1, false)
			if got := visibleFraction(n, view); got != tt.want {
				t.Errorf("visibleFraction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollTriggerFiresOnce(t *testing.T) {
	s := NewScene()
	s.SetViewportSize(1000, 800)
	content := NewContainer("page")
	s.Root().AddChild(content)
	section := NewRect("section", 1000, 400, ColorWhite)
	section.Y = 1000
	content.AddChild(section)

	fired := 0
	trig := s.AddScrollTrigger(section, 0.3, func() { fired++ })

	s.Step(frame)
	if fired != 0 || trig.Fired() {
		t.Fatal("fired while off screen")
	}

	// 100 of 400 visible: below threshold.
	content.SetPosition(0, -300)
	s.Step(frame)
	if fired != 0 {
		t.Fatal("fired below threshold")
	}

	// 140 of 400 visible.
	content.SetPosition(0, -340)
	s.Step(frame)
	if fired != 1 || !trig.Fired() {
		t.Fatalf("fired = %d, want 1", fired)
	}

	content.SetPosition(0, 0)
	s.Step(frame)
	content.SetPosition(0, -600)
	s.Step(frame)
	if fired != 1 {
		t.Errorf("play-once trigger fired %d times", fired)
	}
}

func TestScrollTriggerBottomMargin(t *testing.T) {
	s := NewScene()
	s.SetViewportSize(1000, 800)
	section := NewRect("section", 1000, 400, ColorWhite)
	section.Y = 600 // 200 of 400 inside the full viewport
	s.Root().AddChild(section)

	fired := false
	trig := s.AddScrollTrigger(section, 0.3, func() { fired = true })
	trig.BottomMargin = 100

	// 100 of 400 inside the shortened viewport.
	s.Step(frame)
	if fired {
		t.Fatal("fired below threshold with bottom margin")
	}

	trig.BottomMargin = 0
	s.Step(frame)
	if !fired {
		t.Error("200 of 400 visible should fire")
	}
}

func TestScrollTriggerKill(t *testing.T) {
	s := NewScene()
	s.SetViewportSize(1000, 800)
	section := NewRect("section", 100, 100, ColorWhite)
	s.Root().AddChild(section)

	fired := false
	trig := s.AddScrollTrigger(section, 0.3, func() { fired = true })
	trig.Kill()
	s.Step(frame)
	if fired {
		t.Error("killed trigger fired")
	}
}

func TestScrollTriggerAddedFromCallback(t *testing.T) {
	s := NewScene()
	s.SetViewportSize(1000, 800)
	a := NewRect("a", 100, 100, ColorWhite)
	b := NewRect("b", 100, 100, ColorWhite)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var order []string
	s.AddScrollTrigger(a, 0.5, func() {
		order = append(order, "a")
		s.AddScrollTrigger(b, 0.5, func() { order = append(order, "b") })
	})

	s.Step(frame)
	s.Step(frame)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, want [a b]", order)
	}
}

func TestScrollTriggerHiddenNode(t *testing.T) {
	s := NewScene()
	s.SetViewportSize(1000, 800)
	section := NewRect("section", 100, 100, ColorWhite)
	section.Visible = false
	s.Root().AddChild(section)

	fired := false
	s.AddScrollTrigger(section, 0.3, func() { fired = true })
	s.Step(frame)
	if fired {
		t.Error("trigger on an invisible node fired")
	}
}
