// Package svg implements a programmatic builder for SVG documents:
// typed shape, text and image components that combine a geometry config,
// an optional appearance config and an ordered transform stack, and a
// Canvas container that serializes a component collection into one
// document.
//
// Geometry queries (BoundingBox, CentralPoint) report local, pre-transform
// coordinates; callers needing post-transform geometry apply
// Transform().Matrix() themselves.
package svg

import (
	"github.com/vectorforge/vectorforge/internal/geom"
)

// Component is the contract every drawable implements.
type Component interface {
	// Element serializes the component to a single markup element.
	// Serialization is repeatable and has no side effects.
	Element() string

	// BoundingBox returns the axis-aligned box enclosing the component's
	// geometry in its own pre-transform coordinate space. Components with
	// no determinable extent return ErrIndeterminateGeometry.
	BoundingBox() (geom.Rect, error)

	// CentralPoint returns the geometric centroid in local space.
	CentralPoint() (geom.Point, error)

	// RestrictSize shrinks the component uniformly so its rendered
	// extent fits within the given limits. A no-op when it already fits
	// or when the geometry is degenerate (zero extent on both axes).
	RestrictSize(maxWidth, maxHeight float64) error

	// Transform exposes the component's transform stack. The stack is
	// owned exclusively by the component; mutate it only through the
	// chainable methods.
	Transform() *TransformConfig
}

// restrictToFit is the shared scale-to-fit algorithm: compute the current
// extent, derive the per-axis shrink factors, and append one uniform scale
// with the smaller factor so the aspect ratio is preserved. The extent is
// measured through the existing transform stack, which makes the operation
// idempotent: once the appended scale brings the shape within the limits,
// a repeat call finds nothing to shrink.
func restrictToFit(c Component, maxWidth, maxHeight float64) error {
	box, err := c.BoundingBox()
	if err != nil {
		return err
	}
	box = c.Transform().Matrix().TransformRect(box)

	// A zero-extent box (e.g. single-point polyline) cannot be shrunk.
	if box.Width == 0 && box.Height == 0 {
		return nil
	}

	widthScale := 1.0
	if box.Width > maxWidth {
		widthScale = maxWidth / box.Width
	}
	heightScale := 1.0
	if box.Height > maxHeight {
		heightScale = maxHeight / box.Height
	}

	// Tolerance absorbs float rounding from a previously appended scale,
	// so a repeat call with the same limits never appends a ~1.0 scale.
	const fitEpsilon = 1e-9

	factor := min(widthScale, heightScale)
	if factor < 1.0-fitEpsilon {
		c.Transform().Scale(factor)
	}
	return nil
}

// appendTransformAttr adds the transform attribute when the stack is
// non-empty. An empty stack contributes nothing, never transform="".
func appendTransformAttr(l *attrList, t *TransformConfig) {
	if t.HasTransform() {
		l.add("transform", t.Serialize())
	}
}
