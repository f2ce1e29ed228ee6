package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Errorf("Identity().IsIdentity() = false, want true")
	}

	x, y := m.TransformPoint(3, 7)
	if x != 3 || y != 7 {
		t.Errorf("Identity().TransformPoint(3, 7) = (%v, %v), want (3, 7)", x, y)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, -5)
	x, y := m.TransformPoint(1, 2)
	if x != 11 || y != -3 {
		t.Errorf("Translate(10, -5).TransformPoint(1, 2) = (%v, %v), want (11, -3)", x, y)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3)
	x, y := m.TransformPoint(4, 5)
	if x != 8 || y != 15 {
		t.Errorf("Scale(2, 3).TransformPoint(4, 5) = (%v, %v), want (8, 15)", x, y)
	}
}

func TestRotateDegrees(t *testing.T) {
	type tc struct {
		degrees float64
		inX     float64
		inY     float64
		outX    float64
		outY    float64
	}

	tests := map[string]tc{
		"quarter turn": {
			degrees: 90,
			inX:     1, inY: 0,
			outX: 0, outY: 1,
		},
		"half turn": {
			degrees: 180,
			inX:     1, inY: 0,
			outX: -1, outY: 0,
		},
		"full turn": {
			degrees: 360,
			inX:     2, inY: 3,
			outX: 2, outY: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := RotateDegrees(tt.degrees)
			x, y := m.TransformPoint(tt.inX, tt.inY)
			if !approxEqual(x, tt.outX) || !approxEqual(y, tt.outY) {
				t.Errorf("RotateDegrees(%v).TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.degrees, tt.inX, tt.inY, x, y, tt.outX, tt.outY)
			}
		})
	}
}

func TestRotateAround(t *testing.T) {
	// Rotating the pivot itself is a fixed point.
	m := RotateAround(90, 5, 5)
	x, y := m.TransformPoint(5, 5)
	if !approxEqual(x, 5) || !approxEqual(y, 5) {
		t.Errorf("RotateAround(90, 5, 5).TransformPoint(5, 5) = (%v, %v), want (5, 5)", x, y)
	}

	// A point one unit right of the pivot ends up one unit below it
	// (y grows downward in document coordinates).
	x, y = m.TransformPoint(6, 5)
	if !approxEqual(x, 5) || !approxEqual(y, 6) {
		t.Errorf("RotateAround(90, 5, 5).TransformPoint(6, 5) = (%v, %v), want (5, 6)", x, y)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies 'other' first. Translate-then-scale and
	// scale-then-translate must differ.
	translateFirst := Scale(2, 2).Multiply(Translate(10, 0))
	scaleFirst := Translate(10, 0).Multiply(Scale(2, 2))

	x1, _ := translateFirst.TransformPoint(1, 0)
	x2, _ := scaleFirst.TransformPoint(1, 0)

	if x1 != 22 {
		t.Errorf("scale∘translate at x=1: got %v, want 22", x1)
	}
	if x2 != 12 {
		t.Errorf("translate∘scale at x=1: got %v, want 12", x2)
	}
}

func TestInvert(t *testing.T) {
	m := Translate(7, -3).Multiply(Scale(2, 4)).Multiply(RotateDegrees(30))
	inv := m.Invert()

	round := m.Multiply(inv)
	if !round.IsIdentity() {
		t.Errorf("m * m⁻¹ = %v, want identity", round)
	}
}

func TestInvertSingular(t *testing.T) {
	m := Scale(0, 0)
	if !m.Invert().IsIdentity() {
		t.Errorf("Invert() on singular matrix should fall back to identity")
	}
}

func TestTransformRect(t *testing.T) {
	type tc struct {
		m    Matrix2D
		in   Rect
		want Rect
	}

	tests := map[string]tc{
		"translate": {
			m:    Translate(10, 20),
			in:   Rect{X: 0, Y: 0, Width: 5, Height: 5},
			want: Rect{X: 10, Y: 20, Width: 5, Height: 5},
		},
		"scale": {
			m:    Scale(2, 3),
			in:   Rect{X: 1, Y: 1, Width: 2, Height: 2},
			want: Rect{X: 2, Y: 3, Width: 4, Height: 6},
		},
		"rotate 90": {
			m:    RotateDegrees(90),
			in:   Rect{X: 0, Y: 0, Width: 4, Height: 2},
			want: Rect{X: -2, Y: 0, Width: 2, Height: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.m.TransformRect(tt.in)
			if !approxEqual(got.X, tt.want.X) || !approxEqual(got.Y, tt.want.Y) ||
				!approxEqual(got.Width, tt.want.Width) || !approxEqual(got.Height, tt.want.Height) {
				t.Errorf("TransformRect(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
