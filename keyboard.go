package showcase

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyContext carries a key-down event.
type KeyContext struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// OnKeyDown registers a scene-level callback fired once per key press.
// Key handlers are global: they do not depend on pointer focus.
func (s *Scene) OnKeyDown(fn func(KeyContext)) CallbackHandle {
	return register(&s.handlers, &s.handlers.keyDown, fn)
}

// processKeyboard fires OnKeyDown for keys pressed this tick.
func (s *Scene) processKeyboard(mods KeyModifiers) {
	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.fireKeyDown(k, mods)
	}
}

func (s *Scene) fireKeyDown(k ebiten.Key, mods KeyModifiers) {
	ctx := KeyContext{Key: k, Modifiers: mods}
	for _, h := range s.handlers.keyDown {
		h.fn(ctx)
	}
	s.emitInteractionEvent(InteractionEvent{Type: EventKeyDown, Key: k, Modifiers: mods}, nil)
}
