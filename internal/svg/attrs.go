package svg

import (
	"strconv"
	"strings"
)

// attr is one serialized markup attribute.
type attr struct {
	name  string
	value string
}

// attrList accumulates attributes in insertion order. Merge order across
// the three config kinds is geometry first, appearance second, transform
// last; the three sets use disjoint attribute names so order never causes
// an overwrite.
type attrList struct {
	attrs []attr
}

func (l *attrList) add(name, value string) {
	l.attrs = append(l.attrs, attr{name: name, value: value})
}

func (l *attrList) addFloat(name string, v float64) {
	l.add(name, formatFloat(v))
}

// String renders the list as `name="value"` pairs joined by single spaces.
func (l *attrList) String() string {
	var b strings.Builder
	for i, a := range l.attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(a.value)
		b.WriteByte('"')
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
