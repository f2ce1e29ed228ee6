package svg

import (
	"strings"

	"github.com/vectorforge/vectorforge/internal/geom"
)

// transformOp is a single affine operation in a component's transform stack.
type transformOp struct {
	fn   string
	args []float64
}

// TransformConfig is an ordered, append-only sequence of affine operations
// owned by exactly one component. Operations serialize in append order and
// the first-appended operation is the first applied to local coordinates;
// Matrix() composes accordingly. No operation is ever removed or reordered.
type TransformConfig struct {
	ops []transformOp
}

// Translate appends a translation by (dx, dy).
func (t *TransformConfig) Translate(dx, dy float64) *TransformConfig {
	t.ops = append(t.ops, transformOp{fn: "translate", args: []float64{dx, dy}})
	return t
}

// Scale appends a uniform scale.
func (t *TransformConfig) Scale(factor float64) *TransformConfig {
	t.ops = append(t.ops, transformOp{fn: "scale", args: []float64{factor}})
	return t
}

// ScaleXY appends a non-uniform scale.
func (t *TransformConfig) ScaleXY(sx, sy float64) *TransformConfig {
	t.ops = append(t.ops, transformOp{fn: "scale", args: []float64{sx, sy}})
	return t
}

// Rotate appends a rotation about the origin (degrees).
func (t *TransformConfig) Rotate(degrees float64) *TransformConfig {
	t.ops = append(t.ops, transformOp{fn: "rotate", args: []float64{degrees}})
	return t
}

// RotateAround appends a rotation about the pivot (px, py) (degrees).
func (t *TransformConfig) RotateAround(degrees, px, py float64) *TransformConfig {
	t.ops = append(t.ops, transformOp{fn: "rotate", args: []float64{degrees, px, py}})
	return t
}

// HasTransform reports whether any operation has been appended.
func (t *TransformConfig) HasTransform() bool {
	return len(t.ops) > 0
}

// Len returns the number of appended operations.
func (t *TransformConfig) Len() int {
	return len(t.ops)
}

// Serialize emits the stack as a transform attribute value: each operation
// as fn(arg,arg,...) in append order, joined by single spaces. An empty
// stack serializes to the empty string and callers must omit the attribute
// entirely rather than emit transform="".
func (t *TransformConfig) Serialize() string {
	if len(t.ops) == 0 {
		return ""
	}

	var b strings.Builder
	for i, op := range t.ops {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.fn)
		b.WriteByte('(')
		for j, arg := range op.args {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatFloat(arg))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Matrix returns the composed affine for the whole stack. The first
// appended operation is innermost: for ops o1..on the result is
// Mn·…·M2·M1, so o1 is applied to local coordinates first. Callers that
// need post-transform geometry apply this to the local bounding box.
func (t *TransformConfig) Matrix() geom.Matrix2D {
	m := geom.Identity()
	for _, op := range t.ops {
		m = op.matrix().Multiply(m)
	}
	return m
}

func (op transformOp) matrix() geom.Matrix2D {
	switch op.fn {
	case "translate":
		return geom.Translate(op.args[0], op.args[1])
	case "scale":
		if len(op.args) == 1 {
			return geom.Scale(op.args[0], op.args[0])
		}
		return geom.Scale(op.args[0], op.args[1])
	case "rotate":
		if len(op.args) == 3 {
			return geom.RotateAround(op.args[0], op.args[1], op.args[2])
		}
		return geom.RotateDegrees(op.args[0])
	default:
		return geom.Identity()
	}
}
