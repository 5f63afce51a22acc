package showcase

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
	// Key is valid for EventKeyDown.
	Key ebiten.Key
}

// ResizeContext carries a viewport size change.
type ResizeContext struct {
	Width, Height         int
	PrevWidth, PrevHeight int
}

// Scene owns the node tree, viewport metrics, input state, timers and running
// animations. All of it is driven from one goroutine, one frame at a time.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool
	log   logr.Logger

	// ClearColor fills the screen before drawing. Zero leaves it untouched.
	ClearColor Color
	// ScreenshotDir receives captures queued with Screenshot.
	ScreenshotDir string

	viewW, viewH int

	sched      *Scheduler
	animations []Animation
	triggers   []*ScrollTrigger

	// Input state
	handlers     handlerRegistry
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	keyBuf       []ebiten.Key

	injectQueue []syntheticPointerEvent
	keyQueue    []ebiten.Key
	testRunner  *TestRunner

	screenshotQueue []string

	frame uint64

	lastDepthWarn   int
	lastCrowdedWarn int
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		log:           logr.Discard(),
		sched:         NewScheduler(),
		dragDeadZone:  defaultDragDeadZone,
		ScreenshotDir: defaultScreenshotDir,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Scheduler returns the scene's frame-driven timer queue.
func (s *Scene) Scheduler() *Scheduler {
	return s.sched
}

// Frame returns the number of frames stepped so far.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetLogger sets the logger used by the scene and by controllers bound to it
// that were not given their own.
func (s *Scene) SetLogger(l logr.Logger) {
	s.log = l
}

// Logger returns the scene logger.
func (s *Scene) Logger() logr.Logger {
	return s.log
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables per-frame tree checks and draw statistics.
// Warnings are logged at info level, statistics at level 2.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// --- Viewport ---

// ViewportSize returns the current viewport width and height in pixels.
func (s *Scene) ViewportSize() (int, int) {
	return s.viewW, s.viewH
}

// SetViewportSize records a new viewport size and notifies OnResize handlers
// when it differs from the current one.
func (s *Scene) SetViewportSize(w, h int) {
	if w == s.viewW && h == s.viewH {
		return
	}
	ctx := ResizeContext{Width: w, Height: h, PrevWidth: s.viewW, PrevHeight: s.viewH}
	s.viewW, s.viewH = w, h
	s.log.V(2).Info("viewport resized", "width", w, "height", h)
	for _, hd := range s.handlers.resize {
		hd.fn(ctx)
	}
}

// --- Frame loop ---

// Update reads the real mouse, touch and keyboard state and advances the
// scene by one tick. Call it from ebiten.Game.Update.
func (s *Scene) Update() {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	s.step(time.Second/time.Duration(tps), true)
}

// Step advances the scene by dt without reading input devices. Injected input
// is still processed, so tests and scripted runs drive the scene through Step.
func (s *Scene) Step(dt time.Duration) {
	s.step(dt, false)
}

func (s *Scene) step(dt time.Duration, devices bool) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput(devices)

	s.sched.Advance(dt)
	s.updateAnimations(float32(dt.Seconds()))

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.evaluateTriggers()
	if s.debug {
		s.debugCheckTree()
	}
	s.frame++
}

// Animate registers a running animation. It is advanced every frame and
// dropped once done.
func (s *Scene) Animate(a Animation) Animation {
	s.animations = append(s.animations, a)
	return a
}

// Animations returns the number of animations still running.
func (s *Scene) Animations() int {
	return len(s.animations)
}

func (s *Scene) updateAnimations(dt float32) {
	if len(s.animations) == 0 {
		return
	}
	current := s.animations
	s.animations = nil
	var live []Animation
	for _, a := range current {
		if !a.IsDone() {
			a.Update(dt)
		}
		if !a.IsDone() {
			live = append(live, a)
		}
	}
	s.animations = append(live, s.animations...)
}
