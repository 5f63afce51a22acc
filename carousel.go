package showcase

import (
	"math"
	"time"

	"github.com/go-logr/logr"
	"github.com/tanema/gween/ease"
)

// disabledAlpha is the color alpha of a disabled navigation button.
const disabledAlpha = 0.4

// Elements are the nodes a carousel drives. Cards are in display order.
type Elements struct {
	Track *Node
	Cards []*Node
	Prev  *Node
	Next  *Node
}

// Status is a snapshot of the carousel for diagnostics and integration.
type Status struct {
	CurrentIndex int
	MaxIndex     int
	TotalCards   int
	VisibleCount float64
	CardWidth    float64
	Gap          float64
}

// RenderReason says why the carousel re-rendered.
type RenderReason uint8

const (
	RenderInit     RenderReason = iota // first render at bind time
	RenderNavigate                     // next, previous, goto or auto-advance
	RenderResize                       // resize reconciliation
)

func (r RenderReason) String() string {
	switch r {
	case RenderInit:
		return "init"
	case RenderNavigate:
		return "navigate"
	default:
		return "resize"
	}
}

// RenderEvent is delivered to render observers after every render.
type RenderEvent struct {
	Reason RenderReason
	Status Status
}

// Option customizes a Carousel.
type Option func(*carouselOptions)

type carouselOptions struct {
	cfg CarouselConfig
	log *logr.Logger
}

// WithConfig replaces the whole configuration. Zero fields take defaults.
func WithConfig(cfg CarouselConfig) Option {
	return func(o *carouselOptions) {
		o.cfg = cfg
		applyDefaults(&o.cfg)
	}
}

// WithLogger sets the carousel logger. The default is the scene logger.
func WithLogger(l logr.Logger) Option {
	return func(o *carouselOptions) { o.log = &l }
}

// WithBreakpoints replaces the breakpoint table.
func WithBreakpoints(t BreakpointTable) Option {
	return func(o *carouselOptions) { o.cfg.Breakpoints = t }
}

// WithSettleDuration sets how long navigation stays locked after a move.
func WithSettleDuration(d time.Duration) Option {
	return func(o *carouselOptions) { o.cfg.SettleMs = int(d / time.Millisecond) }
}

// WithSwipeThreshold sets the minimum horizontal travel of a swipe in pixels.
func WithSwipeThreshold(px float64) Option {
	return func(o *carouselOptions) { o.cfg.SwipeThreshold = px }
}

// WithSwipeAxisLock ignores gestures that travel further vertically than
// horizontally.
func WithSwipeAxisLock(on bool) Option {
	return func(o *carouselOptions) { o.cfg.SwipeAxisLock = on }
}

// WithResizeDebounce sets the resize quiet period.
func WithResizeDebounce(d time.Duration) Option {
	return func(o *carouselOptions) { o.cfg.ResizeDebounceMs = int(d / time.Millisecond) }
}

// Carousel windows an ordered, fixed set of cards inside a track. It moves
// the track horizontally, keeps the two navigation buttons' enabled state in
// sync and accepts clicks, swipes, arrow keys and resizes from its scene.
//
// A carousel built without a track or without cards is inert: every method is
// a no-op and Status reports zeros.
type Carousel struct {
	scene *Scene
	log   logr.Logger
	cfg   CarouselConfig

	track       *Node
	cards       []*Node
	prev, next  *Node
	trackOrigin float64
	ownsHitArea bool

	layout    Layout
	index     int
	maxIndex  int
	animating bool
	offset    float64

	prevEnabled bool
	nextEnabled bool

	trackTween *TweenGroup
	resize     *Debouncer
	autoplay   TimerHandle
	gesture    gestureState

	handles   []CallbackHandle
	observers []handler[RenderEvent]
	nextObsID uint32

	inert  bool
	closed bool
}

// NewCarousel binds a carousel to els on scene and renders the first window.
func NewCarousel(scene *Scene, els Elements, opts ...Option) *Carousel {
	o := carouselOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	log := scene.Logger().WithName("carousel")
	if o.log != nil {
		log = *o.log
	}

	c := &Carousel{
		scene: scene,
		log:   log,
		cfg:   o.cfg,
		track: els.Track,
		cards: append([]*Node(nil), els.Cards...),
		prev:  els.Prev,
		next:  els.Next,
	}
	if c.track == nil || len(c.cards) == 0 {
		c.inert = true
		c.log.V(1).Info("carousel inert: missing track or cards", "track", c.track != nil, "cards", len(c.cards))
		return c
	}
	if err := c.cfg.Breakpoints.Validate(); err != nil {
		c.log.Error(err, "falling back to default breakpoints")
		c.cfg.Breakpoints = DefaultBreakpoints()
	}

	c.trackOrigin = c.track.X
	c.ownsHitArea = c.track.HitShape == nil
	c.track.Interactable = true
	for _, card := range c.cards {
		card.Interactable = true
	}

	width, _ := scene.ViewportSize()
	c.layout = c.cfg.Breakpoints.Resolve(width)
	c.maxIndex = MaxIndex(len(c.cards), c.layout.VisibleCount)
	c.layoutCards()

	c.resize = Debounce(scene.Scheduler(), c.cfg.ResizeDebounce(), c.reconcile)
	c.bindInput()
	c.render(RenderInit)

	c.log.Info("carousel bound", "cards", len(c.cards), "maxIndex", c.maxIndex, "viewportWidth", width)

	if d := c.cfg.AutoPlay(); d > 0 {
		c.StartAutoPlay(d)
	}
	return c
}

// BindCarousel looks up the carousel elements by name under the scene root
// and binds them. Cards are the nodes named cfg.Card inside the track.
func BindCarousel(scene *Scene, cfg CarouselConfig, opts ...Option) *Carousel {
	applyDefaults(&cfg)
	root := scene.Root()
	track := root.Find(cfg.Track)
	var cards []*Node
	if track != nil {
		cards = track.FindAll(cfg.Card)
	}
	els := Elements{
		Track: track,
		Cards: cards,
		Prev:  root.Find(cfg.Prev),
		Next:  root.Find(cfg.Next),
	}
	return NewCarousel(scene, els, append([]Option{WithConfig(cfg)}, opts...)...)
}

// --- Navigation ---

// Next moves the window one card right. It does nothing while a move is
// settling or when the window is already at the end.
func (c *Carousel) Next() {
	if !c.active() {
		return
	}
	if c.animating {
		c.log.V(2).Info("navigation dropped", "op", "next", "reason", "animating")
		return
	}
	if c.index >= c.maxIndex {
		return
	}
	c.moveTo(c.index + 1)
}

// Previous moves the window one card left. It does nothing while a move is
// settling or when the window is already at the start.
func (c *Carousel) Previous() {
	if !c.active() {
		return
	}
	if c.animating {
		c.log.V(2).Info("navigation dropped", "op", "previous", "reason", "animating")
		return
	}
	if c.index <= 0 {
		return
	}
	c.moveTo(c.index - 1)
}

// GotoSlide moves the window to index, clamped into [0, MaxIndex]. It does
// nothing while a move is settling.
func (c *Carousel) GotoSlide(index int) {
	if !c.active() {
		return
	}
	if c.animating {
		c.log.V(2).Info("navigation dropped", "op", "goto", "reason", "animating")
		return
	}
	c.moveTo(max(0, min(index, c.maxIndex)))
}

func (c *Carousel) moveTo(index int) {
	c.log.V(1).Info("navigate", "from", c.index, "to", index, "maxIndex", c.maxIndex)
	c.index = index
	// Locked before observers run so they cannot start a nested move.
	c.armLock()
	c.render(RenderNavigate)
}

// armLock rejects navigation until the settle delay has passed. The timer is
// never cancelled; it clears the flag even after Close.
func (c *Carousel) armLock() {
	c.animating = true
	c.scene.Scheduler().AfterFunc(c.cfg.Settle(), func() {
		c.animating = false
	})
}

// --- Rendering ---

// render positions the track for the current index and refreshes the
// buttons. Navigation slides the track over the settle delay; every other
// render snaps it.
func (c *Carousel) render(reason RenderReason) {
	c.offset = -(float64(c.index) * c.layout.Stride())
	target := c.trackOrigin + c.offset

	if c.trackTween != nil {
		c.trackTween.Stop()
		c.trackTween = nil
	}
	if settle := c.cfg.Settle(); reason == RenderNavigate && settle > 0 {
		c.trackTween = TweenTo(c.track, float32(settle.Seconds()), ease.OutCubic, To(PropX, target))
		c.scene.Animate(c.trackTween)
	} else {
		c.track.X = target
		c.track.MarkDirty()
	}

	c.prevEnabled = c.index > 0
	c.nextEnabled = c.index < c.maxIndex
	setButtonEnabled(c.prev, c.prevEnabled)
	setButtonEnabled(c.next, c.nextEnabled)

	ev := RenderEvent{Reason: reason, Status: c.Status()}
	for _, o := range c.observers {
		o.fn(ev)
	}
}

func setButtonEnabled(n *Node, enabled bool) {
	if n == nil {
		return
	}
	n.Interactable = enabled
	if enabled {
		n.Color.A = 1
	} else {
		n.Color.A = disabledAlpha
	}
}

// layoutCards places the cards on the track for the current layout.
func (c *Carousel) layoutCards() {
	stride := c.layout.Stride()
	var height float64
	for i, card := range c.cards {
		card.X = float64(i) * stride
		card.Width = c.layout.CardWidth
		card.MarkDirty()
		height = max(height, card.Height)
	}
	if c.ownsHitArea {
		c.track.HitShape = HitRect{Width: float64(len(c.cards))*stride - c.layout.Gap, Height: height}
	}
}

// --- Resize ---

// reconcile re-derives the layout from the viewport width, clamps the index
// and snaps the track. It never arms the navigation lock.
func (c *Carousel) reconcile() {
	if !c.active() {
		return
	}
	width, _ := c.scene.ViewportSize()
	c.layout = c.cfg.Breakpoints.Resolve(width)
	c.maxIndex = MaxIndex(len(c.cards), c.layout.VisibleCount)
	if c.index > c.maxIndex {
		c.index = c.maxIndex
	}
	c.layoutCards()
	c.log.V(1).Info("carousel reconciled", "viewportWidth", width, "maxIndex", c.maxIndex, "index", c.index)
	c.render(RenderResize)
}

// --- Auto-advance ---

// StartAutoPlay advances the carousel every interval, wrapping to the first
// card after the last. A non-positive interval uses 5s. Any running
// auto-advance is replaced.
func (c *Carousel) StartAutoPlay(interval time.Duration) {
	if !c.active() {
		return
	}
	c.StopAutoPlay()
	if interval <= 0 {
		interval = defaultAutoPlay
	}
	c.autoplay = c.scene.Scheduler().Every(interval, c.autoAdvance)
	c.log.V(1).Info("autoplay started", "interval", interval)
}

// StopAutoPlay cancels auto-advance. No tick runs after it returns.
func (c *Carousel) StopAutoPlay() {
	if c.autoplay.Stop() {
		c.log.V(1).Info("autoplay stopped")
	}
	c.autoplay = TimerHandle{}
}

// AutoPlaying reports whether auto-advance is running.
func (c *Carousel) AutoPlaying() bool {
	return c.autoplay.Active()
}

func (c *Carousel) autoAdvance() {
	if c.index >= c.maxIndex {
		c.GotoSlide(0)
		return
	}
	c.Next()
}

// --- Observers & queries ---

// OnRender registers fn to run after every render, in registration order.
func (c *Carousel) OnRender(fn func(RenderEvent)) CallbackHandle {
	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, handler[RenderEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		c.observers = removeHandler(c.observers, id)
	}}
}

// Status returns a snapshot of the navigation state and layout.
func (c *Carousel) Status() Status {
	if c.inert {
		return Status{}
	}
	return Status{
		CurrentIndex: c.index,
		MaxIndex:     c.maxIndex,
		TotalCards:   len(c.cards),
		VisibleCount: c.layout.VisibleCount,
		CardWidth:    c.layout.CardWidth,
		Gap:          c.layout.Gap,
	}
}

// Animating reports whether navigation is currently locked.
func (c *Carousel) Animating() bool {
	return c.animating
}

// PrevEnabled reports whether the previous button is enabled.
func (c *Carousel) PrevEnabled() bool {
	return c.prevEnabled
}

// NextEnabled reports whether the next button is enabled.
func (c *Carousel) NextEnabled() bool {
	return c.nextEnabled
}

// Offset returns the track translation for the current index.
func (c *Carousel) Offset() float64 {
	return c.offset
}

// Inert reports whether the carousel ignores all operations.
func (c *Carousel) Inert() bool {
	return c.inert
}

// Cards returns the bound cards. The returned slice MUST NOT be mutated.
func (c *Carousel) Cards() []*Node {
	return c.cards
}

// VisibleCards returns the cards at least partly inside the window.
func (c *Carousel) VisibleCards() []*Node {
	if c.inert {
		return nil
	}
	end := min(len(c.cards), c.index+int(math.Ceil(c.layout.VisibleCount)))
	return c.cards[c.index:end]
}

// Close detaches the carousel from its scene. Auto-advance and any pending
// resize are cancelled; a settling move still finishes. Afterwards every
// operation is a no-op and Status keeps reporting the last state.
func (c *Carousel) Close() {
	if !c.active() {
		return
	}
	c.StopAutoPlay()
	c.resize.Stop()
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	c.observers = nil
	c.endGesture()
	c.closed = true
	c.log.V(1).Info("carousel closed")
}

func (c *Carousel) active() bool {
	return !c.inert && !c.closed
}
