package svg

import (
	"fmt"
	"math"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// CircleConfig is the geometry configuration for Circle components.
type CircleConfig struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

func (c CircleConfig) validate() error {
	if c.R < 0 {
		return fmt.Errorf("circle: radius must be non-negative, got %v", c.R)
	}
	return nil
}

// Circle is a drawable circle component.
type Circle struct {
	config     CircleConfig
	appearance AppearanceConfig
	transform  TransformConfig
}

// NewCircle validates the geometry and returns a circle with default
// appearance and an empty transform stack.
func NewCircle(config CircleConfig) (*Circle, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Circle{config: config}, nil
}

// WithAppearance replaces the circle's appearance config.
func (c *Circle) WithAppearance(a AppearanceConfig) *Circle {
	c.appearance = a
	return c
}

// Config returns a copy of the geometry config.
func (c *Circle) Config() CircleConfig {
	return c.config
}

func (c *Circle) Transform() *TransformConfig {
	return &c.transform
}

func (c *Circle) Translate(dx, dy float64) *Circle {
	c.transform.Translate(dx, dy)
	return c
}

func (c *Circle) Scale(factor float64) *Circle {
	c.transform.Scale(factor)
	return c
}

func (c *Circle) ScaleXY(sx, sy float64) *Circle {
	c.transform.ScaleXY(sx, sy)
	return c
}

func (c *Circle) Rotate(degrees float64) *Circle {
	c.transform.Rotate(degrees)
	return c
}

func (c *Circle) RotateAround(degrees, px, py float64) *Circle {
	c.transform.RotateAround(degrees, px, py)
	return c
}

// CentralPoint returns the circle's center.
func (c *Circle) CentralPoint() (geom.Point, error) {
	return geom.Point{X: c.config.CX, Y: c.config.CY}, nil
}

// BoundingBox returns center ± radius on both axes.
func (c *Circle) BoundingBox() (geom.Rect, error) {
	return geom.FromCorners(
		c.config.CX-c.config.R,
		c.config.CY-c.config.R,
		c.config.CX+c.config.R,
		c.config.CY+c.config.R,
	), nil
}

func (c *Circle) RestrictSize(maxWidth, maxHeight float64) error {
	return restrictToFit(c, maxWidth, maxHeight)
}

// Area returns the circle's area.
func (c *Circle) Area() float64 {
	return math.Pi * c.config.R * c.config.R
}

// Circumference returns the circle's circumference.
func (c *Circle) Circumference() float64 {
	return 2 * math.Pi * c.config.R
}

// Element serializes the circle to a <circle> element.
func (c *Circle) Element() string {
	var l attrList
	l.addFloat("cx", c.config.CX)
	l.addFloat("cy", c.config.CY)
	l.addFloat("r", c.config.R)
	c.appearance.appendAttrs(&l)
	appendTransformAttr(&l, &c.transform)
	return fmt.Sprintf("<circle %s />", l.String())
}
