package field_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/field"
)

func newState(baseY float64, seed int64) *field.PanelState {
	return field.NewPanelState(baseY, rand.New(rand.NewSource(seed)))
}

func TestAdvanceFixedStepDeterminism(t *testing.T) {
	// Ten unit-step calls and one big call covering the same total time
	// must land in the same state.
	a := newState(0, 1)
	b := newState(0, 1)
	require.Equal(t, a.Phase, b.Phase)

	ticksA := 0
	for i := 0; i < 10; i++ {
		ticksA += a.Advance(field.FixedStep)
	}
	ticksB := b.Advance(10 * field.FixedStep)

	assert.Equal(t, 10, ticksA)
	assert.Equal(t, 10, ticksB)
	assert.Equal(t, a.Elapsed(), b.Elapsed())
	assert.Equal(t, a.ScrollX, b.ScrollX)
	assert.Equal(t, a.ScrollY, b.ScrollY)
	assert.Equal(t, a.Y, b.Y)
}

func TestAdvanceKeepsLeftoverTime(t *testing.T) {
	// 6 deltas of 50ms carry fractional time across calls:
	// 0.3s total is 9 full steps.
	p := newState(0, 2)
	ticks := 0
	for i := 0; i < 6; i++ {
		ticks += p.Advance(0.05)
	}
	assert.Equal(t, 9, ticks)
	assert.InDelta(t, 9*field.FixedStep, p.Elapsed(), 1e-12)
}

func TestAdvanceSubStepIsNoop(t *testing.T) {
	p := newState(3.5, 3)
	ticks := p.Advance(field.FixedStep * 0.9)
	assert.Equal(t, 0, ticks)
	assert.Equal(t, 0.0, p.Elapsed())
	assert.Equal(t, 0.0, p.ScrollX)
	assert.Equal(t, 0.0, p.ScrollY)
	assert.Equal(t, 3.5, p.Y, "no step applied, position must not move")
}

func TestAdvanceLargeGap(t *testing.T) {
	// A paused-tab style stall applies every missed step at once.
	p := newState(0, 4)
	assert.Equal(t, 30, p.Advance(1.0))
	assert.Equal(t, 74, p.Advance(2.5))
}

func TestBobStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for seed := int64(0); seed < 20; seed++ {
		p := newState(-2, seed)
		for i := 0; i < 500; i++ {
			p.Advance(rng.Float64() * 0.2)
			assert.LessOrEqual(t, p.Y, -2+0.1+1e-12)
			assert.GreaterOrEqual(t, p.Y, -2-0.1-1e-12)
		}
	}
}

func TestScrollIsLinearInTicks(t *testing.T) {
	p := newState(0, 6)
	ticks := 0
	deltas := []float64{0.4, 0.016, 0.016, 0.25, field.FixedStep, 0.1}
	for _, dt := range deltas {
		ticks += p.Advance(dt)
	}
	require.Greater(t, ticks, 0)

	// Reference accumulation, one step at a time.
	var wantX float64
	for i := 0; i < ticks; i++ {
		wantX += field.FixedStep * 0.1
	}
	assert.Equal(t, wantX, p.ScrollX)
	assert.Equal(t, -p.ScrollX, p.ScrollY)
	assert.InDelta(t, 0.1*float64(ticks)*field.FixedStep, p.ScrollX, 1e-9)
}

func TestPhaseDrawnOnceAndInRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		p := newState(0, seed)
		assert.GreaterOrEqual(t, p.Phase, 0.0)
		assert.Less(t, p.Phase, 2*math.Pi)

		phase := p.Phase
		p.Advance(1.0)
		assert.Equal(t, phase, p.Phase, "phase must never be resampled")
	}
}
