package field

import (
	"math"
	"math/rand"
)

// FixedStep is the animation cadence. Visual state advances only in
// whole steps of this size, regardless of the render frame rate.
const FixedStep = 1.0 / 30.0

const (
	scrollSpeed = 0.1
	bobAmp      = 0.1
	bobSpeed    = 4.0
)

// PanelState is the animated state of a single panel. The render side
// owns the GPU resources and uploads from this struct; nothing here
// touches the graphics API, so the animation is testable headless.
//
// Panels share no state with each other.
type PanelState struct {
	BaseY float64 // grid Y, fixed at creation
	Phase float64 // per-instance bob phase, fixed at creation

	Y       float64 // current vertical position, bobs around BaseY
	ScrollX float64 // background sample offset, grows without bound
	ScrollY float64

	elapsed float64 // time advanced in applied steps only
	pending float64 // accumulated raw frame time not yet consumed
}

// NewPanelState creates the state for a panel resting at baseY with a
// random bob phase drawn once from r. The phase never changes afterward;
// it only desynchronizes the bobbing across panels.
func NewPanelState(baseY float64, r *rand.Rand) *PanelState {
	return &PanelState{
		BaseY: baseY,
		Phase: r.Float64() * 2 * math.Pi,
		Y:     baseY,
	}
}

// Advance accumulates dt seconds of wall-clock time and applies as many
// fixed animation steps as fit, preserving leftover fractional time.
// It returns the number of steps applied, which is zero when less than
// one full step has accumulated. Arbitrarily large dt values are fine:
// a long stall simply applies several steps at once.
func (p *PanelState) Advance(dt float64) int {
	p.pending += dt
	ticks := 0
	for p.pending >= FixedStep {
		p.elapsed += FixedStep
		p.ScrollX += FixedStep * scrollSpeed
		p.ScrollY -= FixedStep * scrollSpeed
		// Assigned, not accumulated, so the bob never drifts off BaseY.
		p.Y = p.BaseY + math.Sin(p.elapsed*bobSpeed+p.Phase)*bobAmp
		p.pending -= FixedStep
		ticks++
	}
	return ticks
}

// Elapsed reports the animation time advanced so far, counting applied
// steps only.
func (p *PanelState) Elapsed() float64 {
	return p.elapsed
}
