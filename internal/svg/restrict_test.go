package svg

import (
	"strings"
	"testing"
)

func TestRestrictSize_CircleScalesToFit(t *testing.T) {
	c, err := NewCircle(CircleConfig{CX: 50, CY: 50, R: 50})
	if err != nil {
		t.Fatal(err)
	}

	// Diameter 100 against a 60x60 limit shrinks by 60/100.
	if err := c.RestrictSize(60, 60); err != nil {
		t.Fatalf("RestrictSize: %v", err)
	}

	if got := c.Transform().Serialize(); got != "scale(0.6)" {
		t.Errorf("Transform().Serialize() = %q, want %q", got, "scale(0.6)")
	}

	// Geometry attributes stay untouched.
	if !strings.Contains(c.Element(), `cx="50" cy="50" r="50"`) {
		t.Errorf("Element() = %q, geometry must not change", c.Element())
	}
}

func TestRestrictSize_NoOpWhenFitting(t *testing.T) {
	r, err := NewRectangle(RectangleConfig{Width: 40, Height: 30})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.RestrictSize(100, 100); err != nil {
		t.Fatalf("RestrictSize: %v", err)
	}
	if r.Transform().HasTransform() {
		t.Errorf("RestrictSize on fitting shape must not append a scale")
	}
}

func TestRestrictSize_Idempotent(t *testing.T) {
	type tc struct {
		build func(t *testing.T) Component
	}

	tests := map[string]tc{
		"circle": {
			build: func(t *testing.T) Component {
				c, err := NewCircle(CircleConfig{CX: 50, CY: 50, R: 50})
				if err != nil {
					t.Fatal(err)
				}
				return c
			},
		},
		"rectangle": {
			build: func(t *testing.T) Component {
				r, err := NewRectangle(RectangleConfig{Width: 200, Height: 90})
				if err != nil {
					t.Fatal(err)
				}
				return r
			},
		},
		"polyline": {
			build: func(t *testing.T) Component {
				p, err := NewPolyline(PolylineConfig{Points: points(0, 0, 300, 10, 150, 80)})
				if err != nil {
					t.Fatal(err)
				}
				return p
			},
		},
		"image": {
			build: func(t *testing.T) Component {
				i, err := NewImage(ImageConfig{Width: 640, Height: 480, Href: "a.png"})
				if err != nil {
					t.Fatal(err)
				}
				return i
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := tt.build(t)

			if err := c.RestrictSize(60, 60); err != nil {
				t.Fatalf("first RestrictSize: %v", err)
			}
			after := c.Transform().Serialize()

			if err := c.RestrictSize(60, 60); err != nil {
				t.Fatalf("second RestrictSize: %v", err)
			}
			if got := c.Transform().Serialize(); got != after {
				t.Errorf("second RestrictSize changed transform: %q -> %q", after, got)
			}
		})
	}
}

func TestRestrictSize_NeverIncreasesSize(t *testing.T) {
	r, err := NewRectangle(RectangleConfig{Width: 200, Height: 50})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.RestrictSize(100, 100); err != nil {
		t.Fatalf("RestrictSize: %v", err)
	}

	box, err := r.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	effective := r.Transform().Matrix().TransformRect(box)

	const tol = 1e-9
	if effective.Width > 100+tol || effective.Height > 100+tol {
		t.Errorf("effective size after RestrictSize = %vx%v, want <= 100x100",
			effective.Width, effective.Height)
	}
}

func TestRestrictSize_PreservesAspectRatio(t *testing.T) {
	r, err := NewRectangle(RectangleConfig{Width: 200, Height: 100})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.RestrictSize(50, 80); err != nil {
		t.Fatalf("RestrictSize: %v", err)
	}

	// Width is the tighter constraint: factor 50/200 = 0.25 applies to both axes.
	if got := r.Transform().Serialize(); got != "scale(0.25)" {
		t.Errorf("Transform().Serialize() = %q, want %q", got, "scale(0.25)")
	}
}

func TestRestrictSize_DegenerateGeometryIsNoOp(t *testing.T) {
	// All points identical: zero extent on both axes.
	p, err := NewPolyline(PolylineConfig{Points: points(5, 5, 5, 5, 5, 5)})
	if err != nil {
		t.Fatal(err)
	}

	if err := p.RestrictSize(1, 1); err != nil {
		t.Fatalf("RestrictSize: %v", err)
	}
	if p.Transform().HasTransform() {
		t.Errorf("degenerate geometry must leave the transform stack unchanged")
	}
}
