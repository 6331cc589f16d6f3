package linechart

import (
	"math"
	"time"
)

// AnimationState is the lifecycle of one draw-on animation.
type AnimationState uint8

const (
	AnimationNotStarted AnimationState = iota
	AnimationRunning
	AnimationFinished
)

func (a AnimationState) String() string {
	switch a {
	case AnimationNotStarted:
		return "not started"
	case AnimationRunning:
		return "running"
	case AnimationFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// EasingFunc remaps linear animation progress in [0,1].
type EasingFunc func(float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseIn(t float64) float64 { return t * t * t }

func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// MorphStrategy selects how a series animates when its geometry changes
// while already drawn.
type MorphStrategy uint8

const (
	// MorphNone restarts the draw-on animation from scratch.
	MorphNone MorphStrategy = iota
	// MorphPoints interpolates each point's coordinates from the previous
	// projection to the current one.
	MorphPoints
)

// Animation configures a series' draw-on behavior. The zero value animates
// with defaults; set Disabled to render statically. Environments without a
// frame scheduler (headless rendering, image export) should thread Disabled
// through explicitly rather than toggling any global.
type Animation struct {
	Disabled bool
	// Begin delays the start of interpolation after the animation is
	// triggered.
	Begin    time.Duration
	Duration time.Duration
	Easing   EasingFunc
	Morph    MorphStrategy
	// AnimateNewValues synthesizes an off-screen origin for points with no
	// predecessor during a morph, so new data slides into view instead of
	// popping.
	AnimateNewValues bool
}

// DefaultAnimation is applied wherever an Animation's Duration is zero.
var DefaultAnimation = Animation{
	Duration: 1500 * time.Millisecond,
	Easing:   EaseInOut,
}

// Animator drives a single progress fraction through the not-started →
// running → finished lifecycle. It is advanced by frame timestamps from the
// render loop; it never schedules frames itself.
type Animator struct {
	cfg    Animation
	start  time.Time
	state  AnimationState
	closed bool

	// OnStart fires on the transition into running, OnEnd on the transition
	// into finished. Neither fires after Close.
	OnStart func()
	OnEnd   func()
}

func NewAnimator(cfg Animation) *Animator {
	if cfg.Duration == 0 {
		cfg.Duration = DefaultAnimation.Duration
	}
	if cfg.Easing == nil {
		cfg.Easing = DefaultAnimation.Easing
	}
	return &Animator{cfg: cfg}
}

// Progress advances the state machine to now and returns eased progress in
// [0,1]. Disabled or closed animators report full progress immediately.
func (a *Animator) Progress(now time.Time) float64 {
	if a.closed || a.cfg.Disabled {
		a.state = AnimationFinished
		return 1
	}
	switch a.state {
	case AnimationNotStarted:
		a.start = now
		a.state = AnimationRunning
		if a.OnStart != nil {
			a.OnStart()
		}
		return a.fraction(now)
	case AnimationRunning:
		return a.fraction(now)
	default:
		return 1
	}
}

func (a *Animator) fraction(now time.Time) float64 {
	elapsed := now.Sub(a.start) - a.cfg.Begin
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= a.cfg.Duration {
		a.state = AnimationFinished
		if a.OnEnd != nil {
			a.OnEnd()
		}
		return 1
	}
	t := a.cfg.Easing(float64(elapsed) / float64(a.cfg.Duration))
	return math.Max(0, math.Min(1, t))
}

// State reports the current lifecycle state without advancing it.
func (a *Animator) State() AnimationState {
	return a.state
}

// Settled reports whether decorations gated behind the animation (dots,
// error bars, labels) may render.
func (a *Animator) Settled() bool {
	return a.cfg.Disabled || a.closed || a.state == AnimationFinished
}

// Restart resets to not-started. Callers invoke it when the inputs driving
// path geometry change: axis rescale, dataset change, or layout change.
func (a *Animator) Restart() {
	if a.closed {
		return
	}
	a.state = AnimationNotStarted
	a.start = time.Time{}
}

// Close abandons the animation. No callback fires afterward.
func (a *Animator) Close() {
	a.closed = true
	a.OnStart = nil
	a.OnEnd = nil
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InterpolatePoints morphs a previous projection into the current one at
// progress t. When the two projections disagree on length, previous indices
// are remapped proportionally so the shape deforms smoothly. If origin is
// supplied, indices map directly instead and the tail points with no
// predecessor slide in from origin rather than stretching the old shape.
func InterpolatePoints(prev, cur []Point, t float64, origin *Point) []Point {
	if len(prev) == 0 || t >= 1 {
		return cur
	}
	out := make([]Point, len(cur))
	scale := float64(len(prev)) / float64(len(cur))
	for i, pt := range cur {
		j := i
		if origin == nil && len(prev) != len(cur) {
			j = int(math.Floor(float64(i) * scale))
		}
		var from Point
		switch {
		case j < len(prev):
			from = prev[j]
		case origin != nil:
			from = *origin
		default:
			out[i] = pt
			continue
		}
		out[i] = lerpPoint(from, pt, t)
	}
	return out
}

func lerpPoint(from, to Point, t float64) Point {
	out := to
	if from.X.Valid && to.X.Valid {
		out.X = Coord(Lerp(from.X.V, to.X.V, t))
	}
	if from.Y.Valid && to.Y.Valid {
		out.Y = Coord(Lerp(from.Y.V, to.Y.V, t))
	}
	return out
}
