package inspector

import (
	"strconv"

	"enginegui/internal/geom"
	"enginegui/internal/gui"
)

// DrawFunc draws v inside the current node and reports whether it changed.
type DrawFunc func(c *gui.Context, label string, v *Value, readOnly bool) bool

// Registry maps each value kind to the function that draws it.
type Registry struct {
	draw map[Kind]DrawFunc
}

// NewRegistry returns a registry with the built-in drawers for every kind.
func NewRegistry() *Registry {
	r := &Registry{draw: make(map[Kind]DrawFunc)}
	r.Register(KindFloat, drawFloat)
	r.Register(KindInt, drawInt)
	r.Register(KindBool, drawBool)
	r.Register(KindString, drawString)
	r.Register(KindColor, drawColor)
	r.Register(KindVec3, drawVec3)
	return r
}

// Register replaces the drawer for k.
func (r *Registry) Register(k Kind, fn DrawFunc) {
	r.draw[k] = fn
}

// Lookup returns the drawer for k.
func (r *Registry) Lookup(k Kind) (DrawFunc, bool) {
	fn, ok := r.draw[k]
	return fn, ok
}

// Draw draws v with its kind's drawer. Kinds without one are shown as text.
func (r *Registry) Draw(c *gui.Context, label string, v *Value, readOnly bool) bool {
	fn, ok := r.draw[v.Kind]
	if !ok {
		c.Label(label, v.Kind.String(), gui.Px(0), gui.Px(0), c.Style.TextDisabled)
		return false
	}
	return fn(c, label, v, readOnly)
}

const nameWidth = 110

// DrawFields lays fields out one per row with the name on the left and
// returns the indices of the fields that changed.
func (r *Registry) DrawFields(c *gui.Context, fields []Field) []int {
	var changed []int
	for i := range fields {
		f := &fields[i]
		row := c.Node(f.Name).Width(gui.Pct(1)).Layout(gui.LayoutRow).Spacing(6)
		row.Do(func() {
			nameCell(c, f.Name)
			c.Node("value").Width(gui.PctPlus(1, -(nameWidth + 6))).Do(func() {
				if r.Draw(c, "edit", &f.Value, f.ReadOnly) {
					changed = append(changed, i)
				}
			})
		})
	}
	return changed
}

func nameCell(c *gui.Context, name string) {
	h := c.FontSize + 2.5 + 2*c.Style.FieldPadding
	n := c.Node("name").Size(gui.Px(nameWidth), gui.Px(h)).Enter()
	defer n.Exit()
	if c.Pass() == gui.PassRender && n.HasLayout {
		pos := geom.V(n.Rect.X, float32(int(n.Rect.Y+(n.Rect.Height-c.FontSize)/2)))
		c.PushClip(n.Rect)
		c.DrawText(nil, c.FontSize, name, pos, c.Style.Text)
		c.PopClip()
	}
}

func fieldFlags(readOnly bool) gui.InputFlags {
	flags := gui.InputAutoSelectAll
	if readOnly {
		flags |= gui.InputReadOnly
	}
	return flags
}

func drawString(c *gui.Context, label string, v *Value, readOnly bool) bool {
	return c.InputField(label, &v.String, 0, fieldFlags(readOnly)&^gui.InputAutoSelectAll, gui.Px(0), gui.Px(0), gui.Pct(1))
}

func drawInt(c *gui.Context, label string, v *Value, readOnly bool) bool {
	buf := strconv.FormatInt(v.Int, 10)
	if !c.InputField(label, &buf, 19, fieldFlags(readOnly)|gui.InputNumbersOnly, gui.Px(0), gui.Px(0), gui.Pct(1)) {
		return false
	}
	n, err := strconv.ParseInt(buf, 10, 64)
	if err != nil {
		n = 0
	}
	if n == v.Int {
		return false
	}
	v.Int = n
	return true
}

// drawFloat commits on Enter so partial input such as "-" or "1e" is never
// parsed.
func drawFloat(c *gui.Context, label string, v *Value, readOnly bool) bool {
	return floatField(c, label, &v.Float, readOnly, gui.Pct(1))
}

func floatField(c *gui.Context, label string, f *float64, readOnly bool, width gui.Unit) bool {
	buf := formatFloat(*f)
	flags := fieldFlags(readOnly) | gui.InputEnterReturnsTrue
	if !c.InputField(label, &buf, 32, flags, gui.Px(0), gui.Px(0), width) {
		return false
	}
	parsed, err := strconv.ParseFloat(buf, 64)
	if err != nil || parsed == *f {
		return false
	}
	*f = parsed
	return true
}

func drawBool(c *gui.Context, label string, v *Value, readOnly bool) bool {
	text := "Off"
	if v.Bool {
		text = "On"
	}
	if c.Button(label, text, gui.Px(0), gui.Px(0), gui.Px(60), gui.Auto) && !readOnly {
		v.Bool = !v.Bool
		return true
	}
	return false
}

func drawColor(c *gui.Context, label string, v *Value, readOnly bool) bool {
	changed := false
	row := c.Node(label).Width(gui.Pct(1)).Layout(gui.LayoutRow).Spacing(4)
	row.Do(func() {
		h := c.FontSize + 2.5 + 2*c.Style.FieldPadding
		sw := c.Node("swatch").Size(gui.Px(h), gui.Px(h))
		if c.Pass() == gui.PassRender && sw.HasLayout {
			c.DrawRectFilled(sw.Rect, v.Color)
			c.DrawRect(sw.Rect, c.Style.FieldBorder, 1)
		}
		buf := FormatColor(v.Color)
		flags := fieldFlags(readOnly) | gui.InputEnterReturnsTrue
		if c.InputField("hex", &buf, 9, flags, gui.Px(0), gui.Px(0), gui.PctPlus(1, -(h+4))) {
			if col, err := ParseColor(buf); err == nil && col != v.Color {
				v.Color = col
				changed = true
			}
		}
	})
	return changed
}

var axisNames = [3]string{"x", "y", "z"}

func drawVec3(c *gui.Context, label string, v *Value, readOnly bool) bool {
	changed := false
	row := c.Node(label).Width(gui.Pct(1)).Layout(gui.LayoutRow).Spacing(4)
	row.Do(func() {
		for i := range v.Vec3 {
			f := float64(v.Vec3[i])
			if floatField(c, axisNames[i], &f, readOnly, gui.PctPlus(1.0/3, -8.0/3)) {
				v.Vec3[i] = float32(f)
				changed = true
			}
		}
	})
	return changed
}
