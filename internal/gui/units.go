package gui

type unitKind uint8

const (
	unitPixels unitKind = iota
	unitPercent
	unitAuto
)

// Unit is a length in pixels, a fraction of the parent's inner size plus a
// pixel adjustment, or Auto to fit the content.
type Unit struct {
	kind    unitKind
	percent float32
	pixels  float32
}

// Px is an absolute length.
func Px(v float32) Unit { return Unit{kind: unitPixels, pixels: v} }

// Pct is a fraction of the parent's inner size, 1 being all of it.
func Pct(p float32) Unit { return Unit{kind: unitPercent, percent: p} }

// PctPlus is a fraction of the parent's inner size adjusted by px pixels.
func PctPlus(p, px float32) Unit { return Unit{kind: unitPercent, percent: p, pixels: px} }

// Auto sizes a node to its children. As an offset it means zero.
var Auto = Unit{kind: unitAuto}

func (u Unit) IsAuto() bool { return u.kind == unitAuto }

// resolve converts u to pixels against the parent's inner length.
func (u Unit) resolve(parent float32) float32 {
	switch u.kind {
	case unitPercent:
		return parent*u.percent + u.pixels
	case unitAuto:
		return 0
	}
	return u.pixels
}
