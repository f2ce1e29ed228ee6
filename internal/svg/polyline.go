package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// PolylineConfig is the geometry configuration for Polyline components.
// The point sequence must be non-empty.
type PolylineConfig struct {
	Points []geom.Point `json:"points"`
}

func (c PolylineConfig) validate() error {
	if len(c.Points) == 0 {
		return fmt.Errorf("polyline: must have at least one point")
	}
	return nil
}

// Polyline is a drawable polyline component. Unlike the other shapes its
// geometry supports incremental point mutation.
type Polyline struct {
	config     PolylineConfig
	appearance AppearanceConfig
	transform  TransformConfig
}

// NewPolyline validates the geometry and returns a polyline with default
// appearance and an empty transform stack. The point slice is copied, the
// component owns its geometry exclusively.
func NewPolyline(config PolylineConfig) (*Polyline, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	points := make([]geom.Point, len(config.Points))
	copy(points, config.Points)
	return &Polyline{config: PolylineConfig{Points: points}}, nil
}

// WithAppearance replaces the polyline's appearance config.
func (p *Polyline) WithAppearance(a AppearanceConfig) *Polyline {
	p.appearance = a
	return p
}

// Points returns a copy of the point sequence.
func (p *Polyline) Points() []geom.Point {
	points := make([]geom.Point, len(p.config.Points))
	copy(points, p.config.Points)
	return points
}

// PointCount returns the number of points.
func (p *Polyline) PointCount() int {
	return len(p.config.Points)
}

// AddPoint appends one point to the polyline.
func (p *Polyline) AddPoint(x, y float64) *Polyline {
	p.config.Points = append(p.config.Points, geom.Point{X: x, Y: y})
	return p
}

// AddPoints appends multiple points to the polyline.
func (p *Polyline) AddPoints(points []geom.Point) *Polyline {
	p.config.Points = append(p.config.Points, points...)
	return p
}

// ClearPoints removes all points. Geometry queries fail with ErrNoPoints
// until at least one point is re-added.
func (p *Polyline) ClearPoints() *Polyline {
	p.config.Points = p.config.Points[:0]
	return p
}

func (p *Polyline) Transform() *TransformConfig {
	return &p.transform
}

func (p *Polyline) Translate(dx, dy float64) *Polyline {
	p.transform.Translate(dx, dy)
	return p
}

func (p *Polyline) Scale(factor float64) *Polyline {
	p.transform.Scale(factor)
	return p
}

func (p *Polyline) ScaleXY(sx, sy float64) *Polyline {
	p.transform.ScaleXY(sx, sy)
	return p
}

func (p *Polyline) Rotate(degrees float64) *Polyline {
	p.transform.Rotate(degrees)
	return p
}

func (p *Polyline) RotateAround(degrees, px, py float64) *Polyline {
	p.transform.RotateAround(degrees, px, py)
	return p
}

// CentralPoint returns the arithmetic mean of the point sequence. This is
// an approximation: it is not the centroid of the enclosed polygon.
func (p *Polyline) CentralPoint() (geom.Point, error) {
	if len(p.config.Points) == 0 {
		return geom.Point{}, ErrNoPoints
	}

	var sumX, sumY float64
	for _, pt := range p.config.Points {
		sumX += pt.X
		sumY += pt.Y
	}
	n := float64(len(p.config.Points))
	return geom.Point{X: sumX / n, Y: sumY / n}, nil
}

// BoundingBox returns the componentwise min/max over all points.
func (p *Polyline) BoundingBox() (geom.Rect, error) {
	if len(p.config.Points) == 0 {
		return geom.Rect{}, ErrNoPoints
	}

	minX, minY := p.config.Points[0].X, p.config.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.config.Points[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return geom.FromCorners(minX, minY, maxX, maxY), nil
}

func (p *Polyline) RestrictSize(maxWidth, maxHeight float64) error {
	return restrictToFit(p, maxWidth, maxHeight)
}

// TotalLength returns the summed length of all segments.
func (p *Polyline) TotalLength() float64 {
	var total float64
	for _, l := range p.SegmentLengths() {
		total += l
	}
	return total
}

// SegmentLengths returns the length of each consecutive segment.
func (p *Polyline) SegmentLengths() []float64 {
	if len(p.config.Points) < 2 {
		return nil
	}

	lengths := make([]float64, 0, len(p.config.Points)-1)
	for i := 1; i < len(p.config.Points); i++ {
		dx := p.config.Points[i].X - p.config.Points[i-1].X
		dy := p.config.Points[i].Y - p.config.Points[i-1].Y
		lengths = append(lengths, math.Hypot(dx, dy))
	}
	return lengths
}

// Element serializes the polyline to a <polyline> element.
func (p *Polyline) Element() string {
	var l attrList
	if len(p.config.Points) > 0 {
		parts := make([]string, len(p.config.Points))
		for i, pt := range p.config.Points {
			parts[i] = formatFloat(pt.X) + "," + formatFloat(pt.Y)
		}
		l.add("points", strings.Join(parts, " "))
	}
	p.appearance.appendAttrs(&l)
	appendTransformAttr(&l, &p.transform)
	return fmt.Sprintf("<polyline %s />", l.String())
}
