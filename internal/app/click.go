package app

import (
	"math"
	"time"
)

const (
	DefaultDoubleClickWindow = 300 * time.Millisecond
	DefaultDoubleClickSlop   = 4.0
)

// DoubleClick turns a stream of single clicks into double-click events for
// hosts that only report presses.
type DoubleClick struct {
	Window time.Duration
	Slop   float64

	armed  bool
	last   time.Time
	lx, ly float64
}

func NewDoubleClick() *DoubleClick {
	return &DoubleClick{Window: DefaultDoubleClickWindow, Slop: DefaultDoubleClickSlop}
}

// Click records a press and reports whether it completes a double click.
func (d *DoubleClick) Click(at time.Time, x, y float64) bool {
	if d.armed && at.Sub(d.last) <= d.Window && math.Hypot(x-d.lx, y-d.ly) <= d.Slop {
		d.armed = false
		return true
	}
	d.armed = true
	d.last, d.lx, d.ly = at, x, y
	return false
}
