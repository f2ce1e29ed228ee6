package svg

import "strings"

// AppearanceConfig holds presentation attributes. It carries no geometric
// meaning and serializes independently of geometry and transform; its
// attribute names never collide with any geometry config's names.
// Zero-valued fields are omitted from the output.
type AppearanceConfig struct {
	Fill            string    `json:"fill,omitempty"`
	FillOpacity     *float64  `json:"fillOpacity,omitempty"`
	Stroke          string    `json:"stroke,omitempty"`
	StrokeWidth     *float64  `json:"strokeWidth,omitempty"`
	StrokeDasharray []float64 `json:"strokeDasharray,omitempty"`
}

// Float returns a pointer for optional float fields.
func Float(v float64) *float64 {
	return &v
}

func (a *AppearanceConfig) appendAttrs(l *attrList) {
	if a.Fill != "" {
		l.add("fill", a.Fill)
	}
	if a.FillOpacity != nil {
		l.addFloat("fill-opacity", *a.FillOpacity)
	}
	if a.Stroke != "" {
		l.add("stroke", a.Stroke)
	}
	if a.StrokeWidth != nil {
		l.addFloat("stroke-width", *a.StrokeWidth)
	}
	if len(a.StrokeDasharray) > 0 {
		parts := make([]string, len(a.StrokeDasharray))
		for i, v := range a.StrokeDasharray {
			parts[i] = formatFloat(v)
		}
		l.add("stroke-dasharray", strings.Join(parts, " "))
	}
}
