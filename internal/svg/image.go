package svg

import (
	"fmt"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// ImageConfig is the geometry configuration for Image components.
type ImageConfig struct {
	X                   float64 `json:"x"`
	Y                   float64 `json:"y"`
	Width               float64 `json:"width"`
	Height              float64 `json:"height"`
	Href                string  `json:"href"`
	PreserveAspectRatio string  `json:"preserveAspectRatio"` // default "xMidYMid meet"
}

func (c ImageConfig) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("image: width must be non-negative, got %v", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("image: height must be non-negative, got %v", c.Height)
	}
	if c.Href == "" {
		return fmt.Errorf("image: href is required")
	}
	return nil
}

// Image is an image content component referencing an external resource.
type Image struct {
	config    ImageConfig
	transform TransformConfig
}

// NewImage validates the config and returns an image component with an
// empty transform stack.
func NewImage(config ImageConfig) (*Image, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.PreserveAspectRatio == "" {
		config.PreserveAspectRatio = "xMidYMid meet"
	}
	return &Image{config: config}, nil
}

// Config returns a copy of the config.
func (i *Image) Config() ImageConfig {
	return i.config
}

func (i *Image) Transform() *TransformConfig {
	return &i.transform
}

func (i *Image) Translate(dx, dy float64) *Image {
	i.transform.Translate(dx, dy)
	return i
}

func (i *Image) Scale(factor float64) *Image {
	i.transform.Scale(factor)
	return i
}

func (i *Image) ScaleXY(sx, sy float64) *Image {
	i.transform.ScaleXY(sx, sy)
	return i
}

func (i *Image) Rotate(degrees float64) *Image {
	i.transform.Rotate(degrees)
	return i
}

func (i *Image) RotateAround(degrees, px, py float64) *Image {
	i.transform.RotateAround(degrees, px, py)
	return i
}

// CentralPoint returns the image's algebraic center.
func (i *Image) CentralPoint() (geom.Point, error) {
	return geom.Point{
		X: i.config.X + i.config.Width/2,
		Y: i.config.Y + i.config.Height/2,
	}, nil
}

// BoundingBox returns origin to origin+size.
func (i *Image) BoundingBox() (geom.Rect, error) {
	return geom.Rect{
		X:      i.config.X,
		Y:      i.config.Y,
		Width:  i.config.Width,
		Height: i.config.Height,
	}, nil
}

func (i *Image) RestrictSize(maxWidth, maxHeight float64) error {
	return restrictToFit(i, maxWidth, maxHeight)
}

// Element serializes the image to an <image> element.
func (i *Image) Element() string {
	var l attrList
	l.addFloat("x", i.config.X)
	l.addFloat("y", i.config.Y)
	l.addFloat("width", i.config.Width)
	l.addFloat("height", i.config.Height)
	l.add("href", i.config.Href)
	l.add("preserveAspectRatio", i.config.PreserveAspectRatio)
	appendTransformAttr(&l, &i.transform)
	return fmt.Sprintf("<image %s />", l.String())
}
