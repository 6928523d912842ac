package engine

import "errors"

// ErrInsufficientResource is returned when an attack is attempted without
// enough stamina. Callers drop the attack silently.
var ErrInsufficientResource = errors.New("insufficient stamina")

// Gauge is a bounded meter in [0, max]. Every mutation clamps.
type Gauge struct {
	value float64
	max   float64
}

// NewGauge returns a full gauge.
func NewGauge(max float64) Gauge {
	return Gauge{value: max, max: max}
}

func (g Gauge) Value() float64 { return g.value }
func (g Gauge) Max() float64   { return g.max }

// Set stores v clamped to the gauge bounds.
func (g *Gauge) Set(v float64) {
	switch {
	case v < 0:
		g.value = 0
	case v > g.max:
		g.value = g.max
	default:
		g.value = v
	}
}

// Add shifts the gauge by delta and reports whether the value moved.
func (g *Gauge) Add(delta float64) bool {
	before := g.value
	g.Set(g.value + delta)
	return g.value != before
}

// spendTolerance absorbs float drift from regenerating in nanosecond steps,
// e.g. twenty 1/60 s frames at 30/s summing to 9.9999996.
const spendTolerance = 1e-6

// Spend takes cost from the gauge, or fails without touching it.
func (g *Gauge) Spend(cost float64) error {
	if g.value+spendTolerance < cost {
		return ErrInsufficientResource
	}
	g.Set(g.value - cost)
	return nil
}

// Apply removes amount and reports whether the gauge is now empty.
func (g *Gauge) Apply(amount float64) (depleted bool) {
	if amount > 0 {
		g.Set(g.value - amount)
	}
	return g.value <= 0
}

// Refill restores the gauge to max.
func (g *Gauge) Refill() {
	g.value = g.max
}
