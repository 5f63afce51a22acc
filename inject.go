package showcase

import "github.com/hajimehoshi/ebiten/v2"

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a pointer press (left button). Injected pointer events
// are consumed one per frame.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectPress(x, y)
}

// InjectRelease queues a pointer release.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectSwipe queues a horizontal swipe of dx pixels starting at (x, y):
// press, one move, release. Negative dx swipes left.
func (s *Scene) InjectSwipe(x, y, dx float64) {
	s.InjectDrag(x, y, x+dx, y, 3)
}

// InjectKey queues a key press. All queued keys fire on the next frame.
func (s *Scene) InjectKey(k ebiten.Key) {
	s.keyQueue = append(s.keyQueue, k)
}

// PendingInput returns the number of injected pointer and key events not
// yet consumed.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue) + len(s.keyQueue)
}

// processInjectedInput pops one pointer event and feeds it through
// processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput(mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(0, evt.screenX, evt.screenY, evt.pressed, evt.button, mods)
	return true
}

func (s *Scene) processInjectedKeys(mods KeyModifiers) {
	if len(s.keyQueue) == 0 {
		return
	}
	keys := s.keyQueue
	s.keyQueue = nil
	for _, k := range keys {
		s.fireKeyDown(k, mods)
	}
}
