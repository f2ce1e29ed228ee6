// Package render compiles a document into svg components and serializes
// the result. It is the only bridge between the JSON document format and
// the typed component model.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/vectorforge/vectorforge/internal/document"
	"github.com/vectorforge/vectorforge/internal/svg"
)

// Document compiles and renders a document to its final SVG markup.
func Document(doc *document.Document) (string, error) {
	canvas, err := Compile(doc)
	if err != nil {
		return "", err
	}
	return canvas.Render(), nil
}

// Compile builds a canvas from the document: a background rect when one is
// declared, then each shape in list order. Compilation errors carry the
// offending shape's id.
func Compile(doc *document.Document) (*svg.Canvas, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	canvas, err := svg.NewCanvas(doc.Canvas.Width, doc.Canvas.Height)
	if err != nil {
		return nil, err
	}

	if doc.Canvas.Background != "" {
		bg, err := svg.NewRectangle(svg.RectangleConfig{
			Width:  doc.Canvas.Width,
			Height: doc.Canvas.Height,
		})
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		canvas.Add(bg.WithAppearance(svg.AppearanceConfig{Fill: doc.Canvas.Background}))
	}

	for _, shape := range doc.Shapes {
		component, err := compileShape(shape)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", shape.ID, err)
		}
		canvas.Add(component)
	}
	return canvas, nil
}

func compileShape(shape document.Shape) (svg.Component, error) {
	component, err := buildComponent(shape)
	if err != nil {
		return nil, err
	}

	for _, step := range shape.Transforms {
		applyStep(component.Transform(), step)
	}

	if shape.Fit != nil {
		if err := component.RestrictSize(shape.Fit.MaxWidth, shape.Fit.MaxHeight); err != nil {
			return nil, fmt.Errorf("fit: %w", err)
		}
	}
	return component, nil
}

func buildComponent(shape document.Shape) (svg.Component, error) {
	switch shape.Type {
	case document.ShapeCircle:
		var cfg svg.CircleConfig
		if err := json.Unmarshal(shape.Geometry, &cfg); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		c, err := svg.NewCircle(cfg)
		if err != nil {
			return nil, err
		}
		if shape.Appearance != nil {
			c.WithAppearance(*shape.Appearance)
		}
		return c, nil

	case document.ShapeRectangle:
		var cfg svg.RectangleConfig
		if err := json.Unmarshal(shape.Geometry, &cfg); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		r, err := svg.NewRectangle(cfg)
		if err != nil {
			return nil, err
		}
		if shape.Appearance != nil {
			r.WithAppearance(*shape.Appearance)
		}
		return r, nil

	case document.ShapePolyline:
		var cfg svg.PolylineConfig
		if err := json.Unmarshal(shape.Geometry, &cfg); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		p, err := svg.NewPolyline(cfg)
		if err != nil {
			return nil, err
		}
		if shape.Appearance != nil {
			p.WithAppearance(*shape.Appearance)
		}
		return p, nil

	case document.ShapeText:
		if shape.Appearance != nil {
			return nil, fmt.Errorf("text shapes fold color into geometry; appearance is not supported")
		}
		var cfg svg.TextConfig
		if err := json.Unmarshal(shape.Geometry, &cfg); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		return svg.NewText(cfg)

	case document.ShapeImage:
		if shape.Appearance != nil {
			return nil, fmt.Errorf("image shapes do not take an appearance")
		}
		var cfg svg.ImageConfig
		if err := json.Unmarshal(shape.Geometry, &cfg); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		return svg.NewImage(cfg)

	case document.ShapeNested:
		if shape.Appearance != nil {
			return nil, fmt.Errorf("nested documents do not take an appearance")
		}
		var cfg svg.NestedConfig
		if err := json.Unmarshal(shape.Geometry, &cfg); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		return svg.NewNested(cfg)

	default:
		return nil, fmt.Errorf("unknown shape type %q", shape.Type)
	}
}

// applyStep appends one validated transform step to the stack.
func applyStep(t *svg.TransformConfig, step document.TransformStep) {
	switch step.Op {
	case "translate":
		t.Translate(step.Args[0], step.Args[1])
	case "scale":
		if len(step.Args) == 1 {
			t.Scale(step.Args[0])
		} else {
			t.ScaleXY(step.Args[0], step.Args[1])
		}
	case "rotate":
		if len(step.Args) == 3 {
			t.RotateAround(step.Args[0], step.Args[1], step.Args[2])
		} else {
			t.Rotate(step.Args[0])
		}
	}
}
