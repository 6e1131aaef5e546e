package orrery

import (
	"math"
	"testing"
)

func TestVec3RotateY(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec3
		angle float64
		want  Vec3
	}{
		{"zero angle", V(1, 2, 3), 0, V(1, 2, 3)},
		{"quarter turn", V(1, 0, 0), math.Pi / 2, V(0, 0, -1)},
		{"half turn", V(1, 5, 0), math.Pi, V(-1, 5, 0)},
		{"z axis quarter", V(0, 0, 1), math.Pi / 2, V(1, 0, 0)},
	}

	for _, tt := range tests {
		got := tt.in.RotateY(tt.angle)
		if got.Sub(tt.want).Length() > 1e-12 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	got := V(1, 0, 0).Cross(V(0, 1, 0))
	if got != V(0, 0, 1) {
		t.Errorf("expected (0,0,1), got %v", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("expected zero vector, got %v", got)
	}
}

func TestColor(t *testing.T) {
	c := Color(0x0077ff)
	r, g, b := c.RGB()
	if r != 0 || g != 0x77 || b != 0xff {
		t.Errorf("expected (0,119,255), got (%d,%d,%d)", r, g, b)
	}
	if c.Hex() != "#0077ff" {
		t.Errorf("expected #0077ff, got %s", c.Hex())
	}
	if got := Color(0xffffff).Scale(0.5); got != RGB(127, 127, 127) {
		t.Errorf("expected half grey, got %s", got.Hex())
	}
	if got := Color(0x404040).Scale(2); got != Color(0x404040) {
		t.Errorf("expected scale clamp at 1, got %s", got.Hex())
	}
}
