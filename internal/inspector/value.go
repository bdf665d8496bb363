// Package inspector draws editable property values. Each value carries its
// kind explicitly and a registry maps kinds to draw functions.
package inspector

import (
	"fmt"
	"strconv"
	"strings"

	"enginegui/internal/draw"
)

// Kind is the type of a property value.
type Kind uint8

const (
	KindFloat Kind = iota
	KindInt
	KindBool
	KindString
	KindColor
	KindVec3
)

var kindNames = [...]string{"Float", "Int", "Bool", "String", "Color", "Vec3"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind whose String is name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Value is one property value. Only the field matching Kind is meaningful.
type Value struct {
	Kind   Kind
	Float  float64
	Int    int64
	Bool   bool
	String string
	Color  draw.Color
	Vec3   [3]float32
}

func Float(v float64) Value      { return Value{Kind: KindFloat, Float: v} }
func Int(v int64) Value          { return Value{Kind: KindInt, Int: v} }
func Bool(v bool) Value          { return Value{Kind: KindBool, Bool: v} }
func String(v string) Value      { return Value{Kind: KindString, String: v} }
func Color(c draw.Color) Value   { return Value{Kind: KindColor, Color: c} }
func Vec3(x, y, z float32) Value { return Value{Kind: KindVec3, Vec3: [3]float32{x, y, z}} }

// Format renders v the way its field displays it.
func (v Value) Format() string {
	switch v.Kind {
	case KindFloat:
		return formatFloat(v.Float)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.String
	case KindColor:
		return FormatColor(v.Color)
	case KindVec3:
		return fmt.Sprintf("(%s, %s, %s)",
			formatFloat(float64(v.Vec3[0])), formatFloat(float64(v.Vec3[1])), formatFloat(float64(v.Vec3[2])))
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// FormatColor writes c as #rrggbbaa.
func FormatColor(c draw.Color) string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor reads #rrggbb or #rrggbbaa; the leading # is optional.
func ParseColor(s string) (draw.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		s += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("inspector: color %q must have 6 or 8 hex digits", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("inspector: parse color: %w", err)
	}
	return draw.Color(n), nil
}

// Field is a named value shown as one inspector row.
type Field struct {
	Name     string
	Value    Value
	ReadOnly bool
}
