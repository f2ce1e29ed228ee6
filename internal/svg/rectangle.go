package svg

import (
	"fmt"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// RectangleConfig is the geometry configuration for Rectangle components.
// RX and RY, when set, give the corner radii for rounded corners.
type RectangleConfig struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	RX     *float64 `json:"rx,omitempty"`
	RY     *float64 `json:"ry,omitempty"`
}

func (c RectangleConfig) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("rectangle: width must be non-negative, got %v", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("rectangle: height must be non-negative, got %v", c.Height)
	}
	if c.RX != nil && *c.RX < 0 {
		return fmt.Errorf("rectangle: rx must be non-negative, got %v", *c.RX)
	}
	if c.RY != nil && *c.RY < 0 {
		return fmt.Errorf("rectangle: ry must be non-negative, got %v", *c.RY)
	}
	return nil
}

// Rectangle is a drawable rectangle component.
type Rectangle struct {
	config     RectangleConfig
	appearance AppearanceConfig
	transform  TransformConfig
}

// NewRectangle validates the geometry and returns a rectangle with default
// appearance and an empty transform stack.
func NewRectangle(config RectangleConfig) (*Rectangle, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Rectangle{config: config}, nil
}

// WithAppearance replaces the rectangle's appearance config.
func (r *Rectangle) WithAppearance(a AppearanceConfig) *Rectangle {
	r.appearance = a
	return r
}

// Config returns a copy of the geometry config.
func (r *Rectangle) Config() RectangleConfig {
	return r.config
}

func (r *Rectangle) Transform() *TransformConfig {
	return &r.transform
}

func (r *Rectangle) Translate(dx, dy float64) *Rectangle {
	r.transform.Translate(dx, dy)
	return r
}

func (r *Rectangle) Scale(factor float64) *Rectangle {
	r.transform.Scale(factor)
	return r
}

func (r *Rectangle) ScaleXY(sx, sy float64) *Rectangle {
	r.transform.ScaleXY(sx, sy)
	return r
}

func (r *Rectangle) Rotate(degrees float64) *Rectangle {
	r.transform.Rotate(degrees)
	return r
}

func (r *Rectangle) RotateAround(degrees, px, py float64) *Rectangle {
	r.transform.RotateAround(degrees, px, py)
	return r
}

// HasRoundedCorners reports whether either corner radius is set.
func (r *Rectangle) HasRoundedCorners() bool {
	return r.config.RX != nil || r.config.RY != nil
}

// CentralPoint returns the rectangle's algebraic center.
func (r *Rectangle) CentralPoint() (geom.Point, error) {
	return geom.Point{
		X: r.config.X + r.config.Width/2,
		Y: r.config.Y + r.config.Height/2,
	}, nil
}

// BoundingBox returns origin to origin+size.
func (r *Rectangle) BoundingBox() (geom.Rect, error) {
	return geom.Rect{
		X:      r.config.X,
		Y:      r.config.Y,
		Width:  r.config.Width,
		Height: r.config.Height,
	}, nil
}

func (r *Rectangle) RestrictSize(maxWidth, maxHeight float64) error {
	return restrictToFit(r, maxWidth, maxHeight)
}

// Element serializes the rectangle to a <rect> element.
func (r *Rectangle) Element() string {
	var l attrList
	l.addFloat("x", r.config.X)
	l.addFloat("y", r.config.Y)
	l.addFloat("width", r.config.Width)
	l.addFloat("height", r.config.Height)
	if r.config.RX != nil {
		l.addFloat("rx", *r.config.RX)
	}
	if r.config.RY != nil {
		l.addFloat("ry", *r.config.RY)
	}
	r.appearance.appendAttrs(&l)
	appendTransformAttr(&l, &r.transform)
	return fmt.Sprintf("<rect %s />", l.String())
}
