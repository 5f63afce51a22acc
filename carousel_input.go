package showcase

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// gestureState tracks one pointer from press on the track to release.
type gestureState struct {
	active  bool
	pointer int
	startX  float64
	startY  float64
}

// bindInput subscribes the carousel to button clicks, track gestures, arrow
// keys and viewport resizes.
func (c *Carousel) bindInput() {
	s := c.scene
	c.handles = append(c.handles,
		s.OnClick(c.handleClick),
		s.OnPointerDown(c.handlePointerDown),
		s.OnPointerUp(c.handlePointerUp),
		s.OnKeyDown(c.handleKey),
		s.OnResize(func(ResizeContext) { c.resize.Call() }),
	)
}

func (c *Carousel) handleClick(ctx ClickContext) {
	if ctx.Node == nil {
		return
	}
	switch {
	case c.prev != nil && ctx.Node.IsDescendantOf(c.prev):
		c.Previous()
	case c.next != nil && ctx.Node.IsDescendantOf(c.next):
		c.Next()
	}
}

func (c *Carousel) handlePointerDown(ctx PointerContext) {
	if ctx.Node == nil || !ctx.Node.IsDescendantOf(c.track) {
		return
	}
	c.gesture = gestureState{
		active:  true,
		pointer: ctx.PointerID,
		startX:  ctx.GlobalX,
		startY:  ctx.GlobalY,
	}
	// The rest of the gesture stays with the pressed node, so sliding off
	// the track neither drops its hover nor reaches the nodes below.
	c.scene.CapturePointer(ctx.PointerID, ctx.Node)
}

// handlePointerUp ends a gesture wherever the pointer is released.
func (c *Carousel) handlePointerUp(ctx PointerContext) {
	if !c.gesture.active || ctx.PointerID != c.gesture.pointer {
		return
	}
	g := c.gesture
	c.endGesture()
	c.handleSwipe(g.startX-ctx.GlobalX, g.startY-ctx.GlobalY)
}

// endGesture forgets the tracked gesture and releases its pointer capture.
func (c *Carousel) endGesture() {
	if c.gesture.active {
		c.scene.ReleasePointer(c.gesture.pointer)
	}
	c.gesture = gestureState{}
}

// handleSwipe turns a finished gesture into at most one navigation. dx is
// start minus end, so a leftward drag is positive and advances.
func (c *Carousel) handleSwipe(dx, dy float64) {
	if dx == 0 || math.Abs(dx) < c.cfg.SwipeThreshold {
		return
	}
	if c.cfg.SwipeAxisLock && math.Abs(dy) > math.Abs(dx) {
		return
	}
	if dx > 0 {
		c.Next()
	} else {
		c.Previous()
	}
}

func (c *Carousel) handleKey(ctx KeyContext) {
	switch ctx.Key {
	case ebiten.KeyArrowLeft:
		c.Previous()
	case ebiten.KeyArrowRight:
		c.Next()
	}
}
