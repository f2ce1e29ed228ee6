package svg

import (
	"fmt"
	"strings"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// TextConfig is the geometry configuration for Text components. Style is
// folded into the config: a separate appearance makes no sense for text,
// whose fill is the glyph color. Zero values take the documented defaults.
type TextConfig struct {
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Text             string  `json:"text"`
	FontSize         float64 `json:"fontSize"`         // default 12
	FontFamily       string  `json:"fontFamily"`       // default Arial
	Color            string  `json:"color"`            // default black
	TextAnchor       string  `json:"textAnchor"`       // start|middle|end, default middle
	DominantBaseline string  `json:"dominantBaseline"` // auto|middle|hanging|central, default central
}

func (c TextConfig) validate() error {
	if c.FontSize < 0 {
		return fmt.Errorf("text: font size must be non-negative, got %v", c.FontSize)
	}
	switch c.TextAnchor {
	case "", "start", "middle", "end":
	default:
		return fmt.Errorf("text: invalid text anchor %q", c.TextAnchor)
	}
	switch c.DominantBaseline {
	case "", "auto", "middle", "hanging", "central":
	default:
		return fmt.Errorf("text: invalid dominant baseline %q", c.DominantBaseline)
	}
	return nil
}

func (c TextConfig) withDefaults() TextConfig {
	if c.FontSize == 0 {
		c.FontSize = 12
	}
	if c.FontFamily == "" {
		c.FontFamily = "Arial"
	}
	if c.Color == "" {
		c.Color = "black"
	}
	if c.TextAnchor == "" {
		c.TextAnchor = "middle"
	}
	if c.DominantBaseline == "" {
		c.DominantBaseline = "central"
	}
	return c
}

// Text is a text content component. Its rendered extent depends on font
// metrics unknown at layout time, so its bounding box is indeterminate.
type Text struct {
	config    TextConfig
	transform TransformConfig
}

// NewText validates the config, applies defaults and returns a text
// component with an empty transform stack.
func NewText(config TextConfig) (*Text, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Text{config: config.withDefaults()}, nil
}

// Config returns a copy of the config with defaults applied.
func (t *Text) Config() TextConfig {
	return t.config
}

func (t *Text) Transform() *TransformConfig {
	return &t.transform
}

func (t *Text) Translate(dx, dy float64) *Text {
	t.transform.Translate(dx, dy)
	return t
}

func (t *Text) Scale(factor float64) *Text {
	t.transform.Scale(factor)
	return t
}

func (t *Text) ScaleXY(sx, sy float64) *Text {
	t.transform.ScaleXY(sx, sy)
	return t
}

func (t *Text) Rotate(degrees float64) *Text {
	t.transform.Rotate(degrees)
	return t
}

func (t *Text) RotateAround(degrees, px, py float64) *Text {
	t.transform.RotateAround(degrees, px, py)
	return t
}

// CentralPoint is only defined when both alignment settings resolve to
// centered; any other alignment makes the center depend on the rendered
// text extent.
func (t *Text) CentralPoint() (geom.Point, error) {
	if t.config.TextAnchor == "middle" && t.config.DominantBaseline == "central" {
		return geom.Point{X: t.config.X, Y: t.config.Y}, nil
	}
	return geom.Point{}, fmt.Errorf("text central point with anchor=%q baseline=%q: %w",
		t.config.TextAnchor, t.config.DominantBaseline, ErrIndeterminateGeometry)
}

// BoundingBox always fails: the text extent cannot be known without font
// metrics.
func (t *Text) BoundingBox() (geom.Rect, error) {
	return geom.Rect{}, fmt.Errorf("text bounding box: %w", ErrIndeterminateGeometry)
}

// RestrictSize fails rather than silently skipping: without a bounding box
// there is no extent to fit.
func (t *Text) RestrictSize(maxWidth, maxHeight float64) error {
	return restrictToFit(t, maxWidth, maxHeight)
}

// textEscaper escapes the characters with markup meaning in XML text
// content.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Element serializes the text to a <text> element with the escaped text
// content as inner content.
func (t *Text) Element() string {
	var l attrList
	l.addFloat("x", t.config.X)
	l.addFloat("y", t.config.Y)
	l.addFloat("font-size", t.config.FontSize)
	l.add("font-family", t.config.FontFamily)
	l.add("fill", t.config.Color)
	l.add("text-anchor", t.config.TextAnchor)
	l.add("dominant-baseline", t.config.DominantBaseline)
	appendTransformAttr(&l, &t.transform)
	return fmt.Sprintf("<text %s>%s</text>", l.String(), textEscaper.Replace(t.config.Text))
}
