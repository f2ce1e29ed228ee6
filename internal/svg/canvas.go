package svg

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Canvas aggregates components into one SVG document. Insertion order is
// render order: later-added components draw over earlier ones.
type Canvas struct {
	width      float64
	height     float64
	components []Component
}

// NewCanvas returns an empty canvas with the given coordinate-space size.
func NewCanvas(width, height float64) (*Canvas, error) {
	if width < 0 {
		return nil, fmt.Errorf("canvas: width must be non-negative, got %v", width)
	}
	if height < 0 {
		return nil, fmt.Errorf("canvas: height must be non-negative, got %v", height)
	}
	return &Canvas{width: width, height: height}, nil
}

// Width returns the declared coordinate-space width.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the declared coordinate-space height.
func (c *Canvas) Height() float64 {
	return c.height
}

// Add appends a component to the render order. Duplicates are allowed.
func (c *Canvas) Add(component Component) *Canvas {
	c.components = append(c.components, component)
	return c
}

// Len returns the number of added components.
func (c *Canvas) Len() int {
	return len(c.components)
}

// Render wraps the ordered component collection in a document envelope
// with the declared coordinate-space size.
func (c *Canvas) Render() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(c.width), formatFloat(c.height), formatFloat(c.width), formatFloat(c.height)))
	b.WriteString("\n")

	for _, component := range c.components {
		b.WriteString("  ")
		b.WriteString(component.Element())
		b.WriteString("\n")
	}

	b.WriteString("</svg>")
	return b.String()
}

// Save renders the document and writes it to path.
func (c *Canvas) Save(path string) error {
	if err := os.WriteFile(path, []byte(c.Render()), 0644); err != nil {
		return fmt.Errorf("save canvas: %w", err)
	}
	slog.Info("canvas saved", "path", path, "components", len(c.components))
	return nil
}
