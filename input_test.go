package showcase

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNodeContainsLocal(t *testing.T) {
	rect := NewRect("r", 100, 50, ColorWhite)
	shaped := NewContainer("c")
	shaped.HitShape = HitCircle{Radius: 10}
	empty := NewContainer("e")

	tests := []struct {
		name string
		n    *Node
		x, y float64
		want bool
	}{
		{"rect inside", rect, 50, 25, true},
		{"rect outside", rect, 101, 25, false},
		{"hit shape", shaped, 5, 5, true},
		{"hit shape outside", shaped, 20, 0, false},
		{"container without size", empty, 0, 0, false},
	}
	for _, tt := range tests {
		if got := nodeContainsLocal(tt.n, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: nodeContainsLocal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// --- Hit test traversal tests ---

func newInteractableRect(s *Scene, name string, x, y float64) *Node {
	n := NewRect(name, 100, 100, ColorWhite)
	n.X, n.Y = x, y
	n.Interactable = true
	s.Root().AddChild(n)
	return n
}

func TestHitTest(t *testing.T) {
	s := NewScene()
	a := newInteractableRect(s, "a", 0, 0)
	b := newInteractableRect(s, "b", 0, 0)
	far := newInteractableRect(s, "far", 200, 200)
	hidden := newInteractableRect(s, "hidden", 400, 0)
	hidden.Visible = false
	inert := newInteractableRect(s, "inert", 600, 0)
	inert.Interactable = false
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	tests := []struct {
		name string
		x, y float64
		want *Node
	}{
		{"topmost wins", 50, 50, b},
		{"transformed node", 250, 250, far},
		{"invisible skipped", 450, 50, nil},
		{"non-interactable skipped", 650, 50, nil},
		{"miss", 150, 150, nil},
	}
	for _, tt := range tests {
		if got := s.hitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: hitTest(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	_ = a
}

func TestHitTest_RotatedNode(t *testing.T) {
	s := NewScene()
	a := newInteractableRect(s, "a", 50, 50)
	a.PivotX, a.PivotY = 50, 50
	a.Rotation = math.Pi / 4
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.hitTest(50, 50) != a {
		t.Error("center of rotated node should hit")
	}
}

func TestHitTest_NonInteractableAncestor(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	s.Root().AddChild(group)
	child := NewRect("child", 100, 100, ColorWhite)
	child.Interactable = true
	group.AddChild(child)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.hitTest(50, 50) != nil {
		t.Error("child of a non-interactable container should not be hit")
	}
	group.Interactable = true
	if s.hitTest(50, 50) != child {
		t.Error("child should be hit once its ancestor is interactable")
	}
}

// --- Callback dispatch tests ---

func TestCallbackOrder_SceneThenNode(t *testing.T) {
	s := NewScene()
	n := newInteractableRect(s, "n", 0, 0)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var order []string
	s.OnPointerDown(func(ctx PointerContext) {
		if ctx.Node != n {
			t.Errorf("scene handler got node %v", ctx.Node)
		}
		order = append(order, "scene")
	})
	n.OnPointerDown = func(PointerContext) { order = append(order, "node") }

	s.firePointer(EventPointerDown, n, 0, 50, 50, MouseButtonLeft, 0)
	if len(order) != 2 || order[0] != "scene" || order[1] != "node" {
		t.Errorf("expected [scene node], got %v", order)
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	s := NewScene()
	count := 0
	handle := s.OnPointerDown(func(PointerContext) { count++ })

	s.firePointer(EventPointerDown, nil, 0, 0, 0, MouseButtonLeft, 0)
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}

	handle.Remove()
	handle.Remove()
	s.firePointer(EventPointerDown, nil, 0, 0, 0, MouseButtonLeft, 0)
	if count != 1 {
		t.Fatalf("expected count still 1 after Remove, got %d", count)
	}
	CallbackHandle{}.Remove()
}

func TestMultipleSceneHandlers(t *testing.T) {
	s := NewScene()
	var order []int
	h1 := s.OnClick(func(ClickContext) { order = append(order, 1) })
	s.OnClick(func(ClickContext) { order = append(order, 2) })
	s.OnClick(func(ClickContext) { order = append(order, 3) })

	h1.Remove()
	s.fireClick(nil, 0, 0, 0, MouseButtonLeft, 0)
	if len(order) != 2 || order[0] != 2 || order[1] != 3 {
		t.Errorf("order = %v, want [2 3]", order)
	}
}

// --- Pointer state machine ---

func TestPointerCapture(t *testing.T) {
	s := NewScene()
	a := newInteractableRect(s, "a", 0, 0)
	b := newInteractableRect(s, "b", 200, 0)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	s.CapturePointer(0, b)
	var received *Node
	s.OnPointerDown(func(ctx PointerContext) { received = ctx.Node })
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	if received != b {
		t.Errorf("expected captured node b, got %v", received)
	}

	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	if s.captured[0] != nil {
		t.Error("release should drop the capture")
	}
	_ = a
}

func TestDragDetection(t *testing.T) {
	s := NewScene()
	newInteractableRect(s, "n", 0, 0)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var events []string
	s.OnDragStart(func(DragContext) { events = append(events, "dragstart") })
	s.OnDrag(func(DragContext) { events = append(events, "drag") })
	s.OnDragEnd(func(DragContext) { events = append(events, "dragend") })
	s.OnClick(func(ClickContext) { events = append(events, "click") })

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 52, 52, true, MouseButtonLeft, 0)
	if len(events) != 0 {
		t.Fatalf("expected no events within dead zone, got %v", events)
	}

	s.processPointer(0, 60, 50, true, MouseButtonLeft, 0)
	if len(events) != 2 || events[0] != "dragstart" || events[1] != "drag" {
		t.Fatalf("expected [dragstart drag], got %v", events)
	}

	events = events[:0]
	s.processPointer(0, 70, 50, false, MouseButtonLeft, 0)
	if len(events) != 1 || events[0] != "dragend" {
		t.Fatalf("expected [dragend] without click, got %v", events)
	}
}

func TestClickDetection(t *testing.T) {
	s := NewScene()
	a := newInteractableRect(s, "a", 0, 0)
	b := newInteractableRect(s, "b", 200, 0)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var clicked []*Node
	s.OnClick(func(ctx ClickContext) { clicked = append(clicked, ctx.Node) })

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	if len(clicked) != 1 || clicked[0] != a {
		t.Fatalf("clicked = %v, want [a]", clicked)
	}

	// Press on a, release on b: no click.
	s.SetDragDeadZone(1000)
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 250, 50, false, MouseButtonLeft, 0)
	if len(clicked) != 1 {
		t.Errorf("release over another node clicked %v", clicked[1:])
	}
	_ = b
}

func TestHoverEnterLeave(t *testing.T) {
	s := NewScene()
	a := newInteractableRect(s, "a", 0, 0)
	b := newInteractableRect(s, "b", 200, 0)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var events []string
	s.OnPointerEnter(func(ctx PointerContext) { events = append(events, "enter "+ctx.Node.Name) })
	s.OnPointerLeave(func(ctx PointerContext) { events = append(events, "leave "+ctx.Node.Name) })
	moves := 0
	s.OnPointerMove(func(PointerContext) { moves++ })

	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	s.processPointer(0, 250, 50, false, MouseButtonLeft, 0)
	s.processPointer(0, 500, 50, false, MouseButtonLeft, 0)

	want := []string{"enter a", "leave a", "enter b", "leave b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
	if moves != 3 {
		t.Errorf("moves = %d, want 3", moves)
	}
	_, _ = a, b
}

func TestContextCoordinates(t *testing.T) {
	s := NewScene()
	n := newInteractableRect(s, "n", 100, 200)
	n.UserData = "card"
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var got PointerContext
	s.OnPointerDown(func(ctx PointerContext) { got = ctx })
	s.processPointer(0, 130, 240, true, MouseButtonLeft, ModShift)

	if got.GlobalX != 130 || got.GlobalY != 240 || got.LocalX != 30 || got.LocalY != 40 {
		t.Errorf("coords global=(%v,%v) local=(%v,%v)", got.GlobalX, got.GlobalY, got.LocalX, got.LocalY)
	}
	if got.UserData != "card" || got.Modifiers != ModShift {
		t.Errorf("userData=%v mods=%v", got.UserData, got.Modifiers)
	}
}

// --- Keyboard ---

func TestKeyDownHandlers(t *testing.T) {
	s := NewScene()
	var keys []ebiten.Key
	h := s.OnKeyDown(func(ctx KeyContext) { keys = append(keys, ctx.Key) })

	s.fireKeyDown(ebiten.KeyArrowLeft, 0)
	h.Remove()
	s.fireKeyDown(ebiten.KeyArrowRight, 0)

	if len(keys) != 1 || keys[0] != ebiten.KeyArrowLeft {
		t.Errorf("keys = %v, want [ArrowLeft]", keys)
	}
}

// --- ECS bridge ---

type recordingStore struct {
	events []InteractionEvent
}

func (r *recordingStore) EmitEvent(ev InteractionEvent) {
	r.events = append(r.events, ev)
}

func TestECSBridge(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)

	n := newInteractableRect(s, "n", 0, 0)
	n.EntityID = 42
	plain := newInteractableRect(s, "plain", 200, 0)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	s.fireClick(n, 0, 10, 10, MouseButtonLeft, 0)
	s.fireClick(plain, 0, 210, 10, MouseButtonLeft, 0)
	s.fireDrag(EventDrag, n, 0, 20, 10, 10, 10, 10, 0, MouseButtonLeft, 0)
	s.fireKeyDown(ebiten.KeyArrowRight, 0)

	if len(store.events) != 3 {
		t.Fatalf("got %d events, want 3", len(store.events))
	}
	if ev := store.events[0]; ev.Type != EventClick || ev.EntityID != 42 {
		t.Errorf("click event = %+v", ev)
	}
	if ev := store.events[1]; ev.Type != EventDrag || ev.DeltaX != 10 || ev.StartX != 10 {
		t.Errorf("drag event = %+v", ev)
	}
	if ev := store.events[2]; ev.Type != EventKeyDown || ev.Key != ebiten.KeyArrowRight {
		t.Errorf("key event = %+v", ev)
	}
}

func TestECSBridge_NoStore(t *testing.T) {
	s := NewScene()
	n := newInteractableRect(s, "n", 0, 0)
	n.EntityID = 1
	s.fireClick(n, 0, 0, 0, MouseButtonLeft, 0)
}
