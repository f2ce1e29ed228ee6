package svg

import (
	"errors"
	"strings"
	"testing"
)

func TestNewText_Validation(t *testing.T) {
	type tc struct {
		config  TextConfig
		wantErr bool
	}

	tests := map[string]tc{
		"defaults": {
			config: TextConfig{Text: "hello"},
		},
		"explicit alignment": {
			config: TextConfig{Text: "hi", TextAnchor: "start", DominantBaseline: "hanging"},
		},
		"negative font size": {
			config:  TextConfig{FontSize: -1},
			wantErr: true,
		},
		"bad anchor": {
			config:  TextConfig{TextAnchor: "left"},
			wantErr: true,
		},
		"bad baseline": {
			config:  TextConfig{DominantBaseline: "top"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewText(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewText(%+v) error = %v, wantErr %v", tt.config, err, tt.wantErr)
			}
		})
	}
}

func TestText_Defaults(t *testing.T) {
	txt, err := NewText(TextConfig{Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := txt.Config()
	if cfg.FontSize != 12 || cfg.FontFamily != "Arial" || cfg.Color != "black" {
		t.Errorf("defaults = %+v, want font-size 12, Arial, black", cfg)
	}
	if cfg.TextAnchor != "middle" || cfg.DominantBaseline != "central" {
		t.Errorf("alignment defaults = %q/%q, want middle/central", cfg.TextAnchor, cfg.DominantBaseline)
	}
}

func TestText_CentralPoint(t *testing.T) {
	centered, err := NewText(TextConfig{X: 30, Y: 40, Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	pt, err := centered.CentralPoint()
	if err != nil {
		t.Fatalf("CentralPoint on centered text: %v", err)
	}
	if pt.X != 30 || pt.Y != 40 {
		t.Errorf("CentralPoint() = (%v, %v), want (30, 40)", pt.X, pt.Y)
	}

	anchored, err := NewText(TextConfig{Text: "hi", TextAnchor: "start"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := anchored.CentralPoint(); !errors.Is(err, ErrIndeterminateGeometry) {
		t.Errorf("CentralPoint on start-anchored text error = %v, want ErrIndeterminateGeometry", err)
	}
}

func TestText_BoundingBoxIsIndeterminate(t *testing.T) {
	txt, err := NewText(TextConfig{Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := txt.BoundingBox(); !errors.Is(err, ErrIndeterminateGeometry) {
		t.Errorf("BoundingBox() error = %v, want ErrIndeterminateGeometry", err)
	}
}

func TestText_RestrictSizeFails(t *testing.T) {
	txt, err := NewText(TextConfig{Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	if err := txt.RestrictSize(10, 10); !errors.Is(err, ErrIndeterminateGeometry) {
		t.Errorf("RestrictSize() error = %v, want ErrIndeterminateGeometry", err)
	}
	if txt.Transform().HasTransform() {
		t.Errorf("failed RestrictSize must not touch the transform stack")
	}
}

func TestText_Element(t *testing.T) {
	txt, err := NewText(TextConfig{X: 10, Y: 20, Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	txt.Rotate(15)

	got := txt.Element()
	want := `<text x="10" y="20" font-size="12" font-family="Arial" fill="black" text-anchor="middle" dominant-baseline="central" transform="rotate(15)">hello</text>`
	if got != want {
		t.Errorf("Element() = %q, want %q", got, want)
	}
}

func TestText_ElementEscapesContent(t *testing.T) {
	txt, err := NewText(TextConfig{X: 0, Y: 0, Text: `a < b & b > c`})
	if err != nil {
		t.Fatal(err)
	}

	got := txt.Element()
	if !strings.Contains(got, ">a &lt; b &amp; b &gt; c</text>") {
		t.Errorf("Element() = %q, content must be XML-escaped", got)
	}
}

func TestImage_Element(t *testing.T) {
	img, err := NewImage(ImageConfig{X: 5, Y: 6, Width: 100, Height: 80, Href: "photo.png"})
	if err != nil {
		t.Fatal(err)
	}

	got := img.Element()
	if !strings.Contains(got, `href="photo.png"`) || !strings.Contains(got, `preserveAspectRatio="xMidYMid meet"`) {
		t.Errorf("Element() = %q, missing href or default preserveAspectRatio", got)
	}
}

func TestNewImage_RequiresHref(t *testing.T) {
	if _, err := NewImage(ImageConfig{Width: 10, Height: 10}); err == nil {
		t.Errorf("NewImage without href should fail")
	}
}

func TestImage_CentralPoint(t *testing.T) {
	img, err := NewImage(ImageConfig{X: 10, Y: 20, Width: 100, Height: 80, Href: "a.png"})
	if err != nil {
		t.Fatal(err)
	}

	pt, err := img.CentralPoint()
	if err != nil {
		t.Fatalf("CentralPoint: %v", err)
	}
	if pt.X != 60 || pt.Y != 60 {
		t.Errorf("CentralPoint() = (%v, %v), want (60, 60)", pt.X, pt.Y)
	}
}

func TestNested_Element(t *testing.T) {
	n, err := NewNested(NestedConfig{X: 10, Y: 10, Width: 50, Height: 40, Content: `<circle cx="5" cy="5" r="5" />`})
	if err != nil {
		t.Fatal(err)
	}

	got := n.Element()
	if !strings.Contains(got, `viewBox="0 0 50 40"`) {
		t.Errorf("Element() = %q, missing viewBox", got)
	}
	if !strings.Contains(got, `><circle cx="5" cy="5" r="5" /></svg>`) {
		t.Errorf("Element() = %q, inner content must be emitted verbatim", got)
	}
}

func TestNested_RejectsNegativeSize(t *testing.T) {
	if _, err := NewNested(NestedConfig{Width: -1}); err == nil {
		t.Errorf("NewNested with negative width should fail")
	}
}
