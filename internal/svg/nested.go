package svg

import (
	"fmt"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// NestedConfig is the geometry configuration for nested SVG documents.
// Content is raw inner markup, emitted verbatim.
type NestedConfig struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Content string  `json:"content"`
}

func (c NestedConfig) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("nested svg: width must be non-negative, got %v", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("nested svg: height must be non-negative, got %v", c.Height)
	}
	return nil
}

// Nested embeds a complete SVG fragment as a positioned sub-document.
type Nested struct {
	config    NestedConfig
	transform TransformConfig
}

// NewNested validates the config and returns a nested document component
// with an empty transform stack.
func NewNested(config NestedConfig) (*Nested, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Nested{config: config}, nil
}

// Config returns a copy of the config.
func (n *Nested) Config() NestedConfig {
	return n.config
}

func (n *Nested) Transform() *TransformConfig {
	return &n.transform
}

func (n *Nested) Translate(dx, dy float64) *Nested {
	n.transform.Translate(dx, dy)
	return n
}

func (n *Nested) Scale(factor float64) *Nested {
	n.transform.Scale(factor)
	return n
}

func (n *Nested) ScaleXY(sx, sy float64) *Nested {
	n.transform.ScaleXY(sx, sy)
	return n
}

func (n *Nested) Rotate(degrees float64) *Nested {
	n.transform.Rotate(degrees)
	return n
}

func (n *Nested) RotateAround(degrees, px, py float64) *Nested {
	n.transform.RotateAround(degrees, px, py)
	return n
}

// CentralPoint returns the sub-document's algebraic center.
func (n *Nested) CentralPoint() (geom.Point, error) {
	return geom.Point{
		X: n.config.X + n.config.Width/2,
		Y: n.config.Y + n.config.Height/2,
	}, nil
}

// BoundingBox returns origin to origin+size.
func (n *Nested) BoundingBox() (geom.Rect, error) {
	return geom.Rect{
		X:      n.config.X,
		Y:      n.config.Y,
		Width:  n.config.Width,
		Height: n.config.Height,
	}, nil
}

func (n *Nested) RestrictSize(maxWidth, maxHeight float64) error {
	return restrictToFit(n, maxWidth, maxHeight)
}

// Element serializes to an <svg> element with a viewBox matching the
// declared size and the raw content as inner markup.
func (n *Nested) Element() string {
	var l attrList
	l.addFloat("x", n.config.X)
	l.addFloat("y", n.config.Y)
	l.addFloat("width", n.config.Width)
	l.addFloat("height", n.config.Height)
	l.add("viewBox", fmt.Sprintf("0 0 %s %s", formatFloat(n.config.Width), formatFloat(n.config.Height)))
	appendTransformAttr(&l, &n.transform)
	return fmt.Sprintf("<svg %s>%s</svg>", l.String(), n.config.Content)
}
