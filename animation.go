package showcase

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is anything the scene advances once per frame.
type Animation interface {
	Update(dt float32)
	IsDone() bool
	Stop()
}

// Prop names an animatable node property.
type Prop uint8

const (
	PropX Prop = iota
	PropY
	PropScaleX
	PropScaleY
	PropAlpha
	PropRotation
)

func (p Prop) field(n *Node) *float64 {
	switch p {
	case PropX:
		return &n.X
	case PropY:
		return &n.Y
	case PropScaleX:
		return &n.ScaleX
	case PropScaleY:
		return &n.ScaleY
	case PropAlpha:
		return &n.Alpha
	case PropRotation:
		return &n.Rotation
	}
	return nil
}

// Target is an animated property and its value.
type Target struct {
	Prop  Prop
	Value float64
}

// To is shorthand for Target{p, v}.
func To(p Prop, v float64) Target {
	return Target{Prop: p, Value: v}
}

// Scale is shorthand for uniform ScaleX/ScaleY targets.
func Scale(v float64) []Target {
	return []Target{To(PropScaleX, v), To(PropScaleY, v)}
}

// Set applies targets to node instantly.
func Set(node *Node, targets ...Target) {
	for _, t := range targets {
		if f := t.Prop.field(node); f != nil {
			*f = t.Value
		}
	}
	node.MarkDirty()
}

// TweenGroup animates a set of float64 fields on a Node simultaneously.
// Call Update(dt) each frame or hand it to Scene.Animate. The group writes
// values and marks the node dirty. If the target node is disposed, the group
// stops immediately.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	target *Node
	delay  float32
	Done   bool
}

func newTweenGroup(node *Node, fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{target: node, fields: fields, tweens: make([]*gween.Tween, len(fields))}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
	}
	return g
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. Delay is consumed first.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	if g.delay > 0 {
		if dt <= g.delay {
			g.delay -= dt
			return
		}
		dt -= g.delay
		g.delay = 0
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// IsDone reports whether the group has finished or was stopped.
func (g *TweenGroup) IsDone() bool {
	return g.Done
}

// Stop freezes the group at its current values.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// Target returns the node this group writes to.
func (g *TweenGroup) Target() *Node {
	return g.target
}

// TweenTo animates the given properties of node from their current values.
func TweenTo(node *Node, duration float32, fn ease.TweenFunc, targets ...Target) *TweenGroup {
	fields := make([]*float64, 0, len(targets))
	to := make([]float64, 0, len(targets))
	for _, t := range targets {
		if f := t.Prop.field(node); f != nil {
			fields = append(fields, f)
			to = append(to, t.Value)
		}
	}
	return newTweenGroup(node, fields, to, duration, fn)
}

// TweenPosition animates node.X and node.Y to the given coordinates.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenTo(node, duration, fn, To(PropX, toX), To(PropY, toY))
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenTo(node, duration, fn, To(PropScaleX, toSX), To(PropScaleY, toSY))
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenTo(node, duration, fn, To(PropAlpha, to))
}

// TweenRotation animates node.Rotation (radians).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenTo(node, duration, fn, To(PropRotation, to))
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node,
		[]*float64{&node.Color.R, &node.Color.G, &node.Color.B, &node.Color.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn)
}

// TweenSpec describes a tween that is built when it starts, so its start
// values are read at that moment rather than when the spec is declared.
type TweenSpec struct {
	Node     *Node
	Duration float32
	Ease     ease.TweenFunc
	Delay    float32
	// From is applied instantly when the tween starts (before Delay).
	From []Target
	To   []Target
}

// Start applies From and returns the running group.
func (s TweenSpec) Start() *TweenGroup {
	if len(s.From) > 0 {
		Set(s.Node, s.From...)
	}
	g := TweenTo(s.Node, s.Duration, s.Ease, s.To...)
	g.delay = s.Delay
	return g
}

// span is the time from start to the end of the tween, including Delay.
func (s TweenSpec) span() float32 {
	return s.Delay + s.Duration
}

// Stagger returns one spec per node built by mk, each delayed by i*each.
func Stagger(nodes []*Node, each float32, mk func(n *Node) TweenSpec) []TweenSpec {
	specs := make([]TweenSpec, 0, len(nodes))
	for i, n := range nodes {
		s := mk(n)
		s.Node = n
		s.Delay += float32(i) * each
		specs = append(specs, s)
	}
	return specs
}
