package showcase

import (
	"math"
	"time"

	"github.com/go-logr/logr"
	"github.com/tanema/gween/ease"
)

const (
	sectionTriggerThreshold = 0.3
	sectionTriggerMargin    = 100
	slideReplayDelay        = 200 * time.Millisecond

	navHoverScale   = 1.15
	navPressScale   = 0.95
	navHoverTilt    = math.Pi / 18 // 10 degrees
	navHoverSeconds = 0.3
	navPressSeconds = 0.1
)

// SectionElements are the nodes of a section with a card carousel. Any of
// them may be nil or empty.
type SectionElements struct {
	Section  *Node
	Badge    *Node
	Title    *Node
	Subtitle *Node
	Nav      []*Node
	Cards    []*Node
}

// restState is where a node sits when no entrance or hover effect applies.
type restState struct {
	y, scaleX, scaleY, rotation float64
}

// SectionAnimator plays a section's entrance once it scrolls into view,
// adds hover lift to its cards, tilts and presses its navigation buttons and
// replays a short settle effect on the visible cards after each carousel
// move.
type SectionAnimator struct {
	scene   *Scene
	log     logr.Logger
	profile DeviceProfile
	els     SectionElements
	rest    map[*Node]restState

	trigger  *ScrollTrigger
	entrance *Timeline
	replay   *Timeline
	effects  map[*Node]*TweenGroup
	played   bool

	hovered        *Node
	hoverTarget    *Node
	resolvePending bool

	resize   *Debouncer
	handles  []CallbackHandle
	carousel CallbackHandle
	closed   bool
}

// NewSectionAnimator prepares the section. With reduced motion everything is
// shown in its final state and no effect ever runs.
func NewSectionAnimator(scene *Scene, els SectionElements, profile DeviceProfile) *SectionAnimator {
	a := &SectionAnimator{
		scene:   scene,
		log:     scene.Logger().WithName("section"),
		profile: profile,
		els:     els,
		rest:    make(map[*Node]restState),
		effects: make(map[*Node]*TweenGroup),
	}
	for _, n := range a.nodes() {
		a.rest[n] = restState{y: n.Y, scaleX: n.ScaleX, scaleY: n.ScaleY, rotation: n.Rotation}
	}
	a.resize = Debounce(scene.Scheduler(), defaultResizeDebounce, a.reconfigure)
	a.handles = append(a.handles, scene.OnResize(func(ResizeContext) { a.resize.Call() }))

	if profile.ReducedMotion {
		a.showAll()
		a.log.V(1).Info("section shown without motion", "tier", profile.Tier.String())
		return a
	}

	for _, card := range els.Cards {
		card.Interactable = true
	}
	a.handles = append(a.handles,
		scene.OnPointerEnter(a.handleEnter),
		scene.OnPointerLeave(a.handleLeave),
		scene.OnPointerDown(a.handlePress),
		scene.OnPointerUp(a.handleRelease),
	)
	a.arm()
	return a
}

// nodes returns every animated node.
func (a *SectionAnimator) nodes() []*Node {
	var out []*Node
	for _, n := range []*Node{a.els.Badge, a.els.Title, a.els.Subtitle} {
		if n != nil {
			out = append(out, n)
		}
	}
	out = append(out, a.els.Nav...)
	return append(out, a.els.Cards...)
}

// arm hides the section contents and waits for the section to scroll in.
func (a *SectionAnimator) arm() {
	a.hideAll()
	if a.els.Section == nil {
		a.play()
		return
	}
	a.trigger = a.scene.AddScrollTrigger(a.els.Section, sectionTriggerThreshold, a.play)
	a.trigger.BottomMargin = sectionTriggerMargin
}

func (a *SectionAnimator) hideAll() {
	a.setOffset(a.els.Badge, 0, 30, 0.8, 0)
	a.setOffset(a.els.Title, 0, 40, 0.95, 0)
	a.setOffset(a.els.Subtitle, 0, 30, 1, 0)
	for _, n := range a.els.Nav {
		a.setOffset(n, 0, 0, 0.7, -math.Pi/2)
	}
	for _, n := range a.els.Cards {
		a.setOffset(n, 0, 50, 0.9, 0)
	}
}

// setOffset places n relative to its rest state.
func (a *SectionAnimator) setOffset(n *Node, alpha, dy, scale, rotation float64) {
	if n == nil {
		return
	}
	r := a.rest[n]
	Set(n,
		To(PropAlpha, alpha),
		To(PropY, r.y+dy),
		To(PropScaleX, r.scaleX*scale),
		To(PropScaleY, r.scaleY*scale),
		To(PropRotation, r.rotation+rotation),
	)
}

func (a *SectionAnimator) showAll() {
	for _, n := range a.nodes() {
		a.setOffset(n, 1, 0, 1, 0)
	}
}

// toRest builds a tween that returns n to its rest state.
func (a *SectionAnimator) toRest(n *Node, d float32, fn ease.TweenFunc) TweenSpec {
	r := a.rest[n]
	return TweenSpec{
		Node:     n,
		Duration: d,
		Ease:     fn,
		To: []Target{
			To(PropAlpha, 1),
			To(PropY, r.y),
			To(PropScaleX, r.scaleX),
			To(PropScaleY, r.scaleY),
			To(PropRotation, r.rotation),
		},
	}
}

// play runs the entrance timeline. It runs at most once per arm.
func (a *SectionAnimator) play() {
	if a.closed || a.played {
		return
	}
	a.played = true

	tl := NewTimeline()
	if n := a.els.Badge; n != nil {
		tl.Add(0, a.toRest(n, 0.8, ease.OutBack))
	}
	if n := a.els.Title; n != nil {
		tl.Add(-0.5, a.toRest(n, 1.0, ease.OutCubic))
	}
	if n := a.els.Subtitle; n != nil {
		tl.Add(-0.6, a.toRest(n, 0.8, ease.OutQuad))
	}
	if len(a.els.Nav) > 0 {
		tl.Add(-0.4, Stagger(a.els.Nav, 0.2, func(n *Node) TweenSpec {
			return a.toRest(n, 0.6, ease.OutBack)
		})...)
	}
	if len(a.els.Cards) > 0 {
		tl.Add(-0.3, Stagger(a.els.Cards, 0.15, func(n *Node) TweenSpec {
			return a.toRest(n, 0.8, ease.OutQuad)
		})...)
	}
	a.entrance = tl
	a.scene.Animate(tl)
	a.log.V(1).Info("section entrance started", "duration", tl.Duration())
}

// Played reports whether the entrance has started.
func (a *SectionAnimator) Played() bool {
	return a.played
}

// --- Carousel integration ---

// Attach replays a settle effect on the visible cards shortly after every
// carousel move. Attaching again replaces the previous carousel.
func (a *SectionAnimator) Attach(c *Carousel) {
	a.carousel.Remove()
	a.carousel = c.OnRender(func(ev RenderEvent) {
		if ev.Reason != RenderNavigate || a.profile.ReducedMotion || a.closed {
			return
		}
		a.scene.Scheduler().AfterFunc(slideReplayDelay, func() {
			a.replaySlide(c.VisibleCards())
		})
	})
}

func (a *SectionAnimator) replaySlide(cards []*Node) {
	if a.closed || len(cards) == 0 {
		return
	}
	if a.replay != nil {
		a.replay.Stop()
	}
	tl := NewTimeline().Add(0, Stagger(cards, 0.1, func(n *Node) TweenSpec {
		r := a.rest[n]
		return TweenSpec{
			Duration: 0.4,
			Ease:     ease.OutQuad,
			From:     []Target{To(PropScaleX, r.scaleX*0.98), To(PropScaleY, r.scaleY*0.98), To(PropAlpha, 0.8)},
			To:       []Target{To(PropScaleX, r.scaleX), To(PropScaleY, r.scaleY), To(PropAlpha, 1)},
		}
	})...)
	a.replay = tl
	a.scene.Animate(tl)
}

// --- Hover ---

func (a *SectionAnimator) cardFor(n *Node) *Node {
	if n == nil {
		return nil
	}
	for _, card := range a.els.Cards {
		if n.IsDescendantOf(card) {
			return card
		}
	}
	return nil
}

func (a *SectionAnimator) handleEnter(ctx PointerContext) {
	if i, btn := a.navFor(ctx.Node); btn != nil && a.effectsLive() {
		a.tweenNav(btn, navHoverSeconds, ease.OutBack, navHoverScale, navTilt(i))
	}
	a.hoverTarget = a.cardFor(ctx.Node)
	a.scheduleHoverResolve()
}

func (a *SectionAnimator) handleLeave(ctx PointerContext) {
	if _, btn := a.navFor(ctx.Node); btn != nil && a.effectsLive() {
		a.tweenNav(btn, navHoverSeconds, ease.OutBack, 1, 0)
	}
	if card := a.cardFor(ctx.Node); card != nil && card == a.hoverTarget {
		a.hoverTarget = nil
	}
	a.scheduleHoverResolve()
}

// scheduleHoverResolve settles the hovered card once per frame, after the
// leave/enter pair of a pointer move has been seen.
func (a *SectionAnimator) scheduleHoverResolve() {
	if a.resolvePending {
		return
	}
	a.resolvePending = true
	a.scene.Scheduler().AfterFunc(0, a.resolveHover)
}

func (a *SectionAnimator) resolveHover() {
	a.resolvePending = false
	if !a.effectsLive() || a.hoverTarget == a.hovered {
		return
	}
	if a.hovered != nil {
		a.tweenHover(a.hovered, 0, 1)
	}
	if a.hoverTarget != nil {
		a.tweenHover(a.hoverTarget, -8, 1.02)
	}
	a.hovered = a.hoverTarget
}

// effectsLive reports whether pointer effects may run: after the entrance
// has started and before Close.
func (a *SectionAnimator) effectsLive() bool {
	return !a.closed && a.played && !a.profile.ReducedMotion
}

func (a *SectionAnimator) tweenHover(card *Node, dy, scale float64) {
	r := a.rest[card]
	a.runEffect(TweenTo(card, 0.3, ease.OutQuad,
		To(PropY, r.y+dy),
		To(PropScaleX, r.scaleX*scale),
		To(PropScaleY, r.scaleY*scale),
	))
}

// runEffect replaces whatever pointer effect is running on g's node.
func (a *SectionAnimator) runEffect(g *TweenGroup) {
	n := g.Target()
	if prev := a.effects[n]; prev != nil {
		prev.Stop()
	}
	a.effects[n] = g
	a.scene.Animate(g)
}

// Hovered returns the card currently lifted by hover, or nil.
func (a *SectionAnimator) Hovered() *Node {
	return a.hovered
}

// --- Navigation buttons ---

// navFor returns the navigation button containing n and its index.
func (a *SectionAnimator) navFor(n *Node) (int, *Node) {
	if n == nil {
		return -1, nil
	}
	for i, btn := range a.els.Nav {
		if n.IsDescendantOf(btn) {
			return i, btn
		}
	}
	return -1, nil
}

// navTilt tips the first button left and every other one right.
func navTilt(index int) float64 {
	if index == 0 {
		return -navHoverTilt
	}
	return navHoverTilt
}

// handlePress squeezes a pressed button. The tilt is kept so a press that
// interrupts the hover tween still lands on the hovered pose.
func (a *SectionAnimator) handlePress(ctx PointerContext) {
	if i, btn := a.navFor(ctx.Node); btn != nil && a.effectsLive() {
		a.tweenNav(btn, navPressSeconds, ease.OutQuad, navPressScale, navTilt(i))
	}
}

// handleRelease pops a released button back to its hovered size.
func (a *SectionAnimator) handleRelease(ctx PointerContext) {
	if i, btn := a.navFor(ctx.Node); btn != nil && a.effectsLive() {
		a.tweenNav(btn, navPressSeconds, ease.OutQuad, navHoverScale, navTilt(i))
	}
}

// tweenNav moves btn to scale and rotation relative to its rest state.
func (a *SectionAnimator) tweenNav(btn *Node, d float32, fn ease.TweenFunc, scale, rotation float64) {
	r := a.rest[btn]
	a.runEffect(TweenTo(btn, d, fn,
		To(PropScaleX, r.scaleX*scale),
		To(PropScaleY, r.scaleY*scale),
		To(PropRotation, r.rotation+rotation),
	))
}

// --- Resize & teardown ---

// reconfigure stops running effects after a resize burst. A section that has
// already played snaps to its final state; one that has not stays armed.
func (a *SectionAnimator) reconfigure() {
	if a.closed {
		return
	}
	a.stopEffects()
	if a.profile.ReducedMotion || a.played {
		a.showAll()
		return
	}
	a.hideAll()
}

func (a *SectionAnimator) stopEffects() {
	if a.entrance != nil {
		a.entrance.Stop()
	}
	if a.replay != nil {
		a.replay.Stop()
	}
	for n, g := range a.effects {
		g.Stop()
		delete(a.effects, n)
	}
	a.hovered = nil
	a.hoverTarget = nil
}

// Close stops all effects and unregisters every handler.
func (a *SectionAnimator) Close() {
	if a.closed {
		return
	}
	a.stopEffects()
	a.resize.Stop()
	if a.trigger != nil {
		a.trigger.Kill()
	}
	for _, h := range a.handles {
		h.Remove()
	}
	a.handles = nil
	a.carousel.Remove()
	a.closed = true
}
