package document

import (
	"encoding/json"

	"github.com/vectorforge/vectorforge/internal/svg"
)

// NewSampleDocument returns the document seeded into new projects: a
// titled card with a few styled shapes, enough to exercise every part of
// the pipeline.
func NewSampleDocument() *Document {
	return &Document{
		Canvas: Canvas{
			Width:      640,
			Height:     360,
			Background: "#1a1a2e",
		},
		Shapes: []Shape{
			{
				ID:       "backdrop",
				Type:     ShapeRectangle,
				Geometry: json.RawMessage(`{"x":20,"y":20,"width":600,"height":320,"rx":12,"ry":12}`),
				Appearance: &svg.AppearanceConfig{
					Fill:        "#16213e",
					Stroke:      "#0f3460",
					StrokeWidth: svg.Float(2),
				},
			},
			{
				ID:       "sun",
				Type:     ShapeCircle,
				Geometry: json.RawMessage(`{"cx":520,"cy":90,"r":40}`),
				Appearance: &svg.AppearanceConfig{
					Fill: "#e9c46a",
				},
			},
			{
				ID:       "ridge",
				Type:     ShapePolyline,
				Geometry: json.RawMessage(`{"points":[{"x":20,"y":300},{"x":180,"y":180},{"x":320,"y":260},{"x":470,"y":150},{"x":620,"y":300}]}`),
				Appearance: &svg.AppearanceConfig{
					Fill:        "none",
					Stroke:      "#e94560",
					StrokeWidth: svg.Float(3),
				},
			},
			{
				ID:       "title",
				Type:     ShapeText,
				Geometry: json.RawMessage(`{"x":320,"y":60,"text":"vectorforge","fontSize":28,"color":"#eeeeee"}`),
			},
		},
	}
}
