// Package document defines the JSON document format accepted by the
// render pipeline: a canvas declaration plus an ordered shape list.
// Shape order is render order.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/vectorforge/vectorforge/internal/svg"
)

type Document struct {
	Canvas Canvas  `json:"canvas"`
	Shapes []Shape `json:"shapes"`
}

type Canvas struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Background string  `json:"background,omitempty"`
}

type ShapeType string

const (
	ShapeCircle    ShapeType = "circle"
	ShapeRectangle ShapeType = "rectangle"
	ShapePolyline  ShapeType = "polyline"
	ShapeText      ShapeType = "text"
	ShapeImage     ShapeType = "image"
	ShapeNested    ShapeType = "nested"
)

type Shape struct {
	ID         string                `json:"id"`
	Type       ShapeType             `json:"type"`
	Geometry   json.RawMessage       `json:"geometry"`
	Appearance *svg.AppearanceConfig `json:"appearance,omitempty"`
	Transforms []TransformStep       `json:"transforms,omitempty"`
	Fit        *Fit                  `json:"fit,omitempty"`
}

// TransformStep is one serialized transform operation. Steps apply in
// list order, matching the component transform stack's append order.
type TransformStep struct {
	Op   string    `json:"op"` // translate | scale | rotate
	Args []float64 `json:"args"`
}

// Fit shrinks the compiled shape to the given limits, preserving aspect
// ratio. Applied after all transform steps. Limits must be positive: a
// zero limit would scale the shape away entirely.
type Fit struct {
	MaxWidth  float64 `json:"maxWidth"`
	MaxHeight float64 `json:"maxHeight"`
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document structure. Geometry payloads are validated
// later, when the shapes are compiled into components.
func (d *Document) Validate() error {
	if d.Canvas.Width < 0 || d.Canvas.Height < 0 {
		return fmt.Errorf("canvas size must be non-negative, got %vx%v", d.Canvas.Width, d.Canvas.Height)
	}

	seen := make(map[string]bool, len(d.Shapes))
	for i, s := range d.Shapes {
		if s.ID == "" {
			return fmt.Errorf("shape %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("shape %q: duplicate id", s.ID)
		}
		seen[s.ID] = true

		switch s.Type {
		case ShapeCircle, ShapeRectangle, ShapePolyline, ShapeText, ShapeImage, ShapeNested:
		default:
			return fmt.Errorf("shape %q: unknown type %q", s.ID, s.Type)
		}

		if len(s.Geometry) == 0 {
			return fmt.Errorf("shape %q: geometry is required", s.ID)
		}

		for _, step := range s.Transforms {
			if err := step.validate(); err != nil {
				return fmt.Errorf("shape %q: %w", s.ID, err)
			}
		}

		if s.Fit != nil && (s.Fit.MaxWidth <= 0 || s.Fit.MaxHeight <= 0) {
			return fmt.Errorf("shape %q: fit limits must be positive", s.ID)
		}
	}
	return nil
}

func (t TransformStep) validate() error {
	switch t.Op {
	case "translate":
		if len(t.Args) != 2 {
			return fmt.Errorf("translate takes 2 args, got %d", len(t.Args))
		}
	case "scale":
		if len(t.Args) != 1 && len(t.Args) != 2 {
			return fmt.Errorf("scale takes 1 or 2 args, got %d", len(t.Args))
		}
	case "rotate":
		if len(t.Args) != 1 && len(t.Args) != 3 {
			return fmt.Errorf("rotate takes 1 or 3 args, got %d", len(t.Args))
		}
	default:
		return fmt.Errorf("unknown transform op %q", t.Op)
	}
	return nil
}
