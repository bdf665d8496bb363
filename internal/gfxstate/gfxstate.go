// Package gfxstate keeps a push/pop stack over the few pieces of GPU state
// the GUI touches, so a pass can change them and put them back.
package gfxstate

import "errors"

// ErrUnderflow is returned by Pop without a matching Push.
var ErrUnderflow = errors.New("gfxstate: pop without push")

// Category is one piece of GPU state tracked by the stack.
type Category uint8

const (
	DepthTest Category = iota
	ColorBlend
	CullFace
	categoryCount
)

func (c Category) String() string {
	switch c {
	case DepthTest:
		return "DepthTest"
	case ColorBlend:
		return "ColorBlend"
	case CullFace:
		return "CullFace"
	}
	return "Unknown"
}

// Device switches GPU state on or off.
type Device interface {
	SetDepthTest(enabled bool)
	SetColorBlend(enabled bool)
	SetCullFace(enabled bool)
}

// ResetFunc puts one category back to its default on d.
type ResetFunc func(d Device)

// Defaults holds the reset function of each category. They match the state
// the renderer starts with: no depth test, alpha blending, back faces culled.
var Defaults = [categoryCount]ResetFunc{
	DepthTest:  func(d Device) { d.SetDepthTest(false) },
	ColorBlend: func(d Device) { d.SetColorBlend(true) },
	CullFace:   func(d Device) { d.SetCullFace(true) },
}

// State is a snapshot of every category.
type State [categoryCount]bool

func (s State) Enabled(c Category) bool { return c < categoryCount && s[c] }

// Stack tracks the current state of a device and restores saved snapshots.
// It is itself a Device that forwards changes.
type Stack struct {
	dev   Device
	cur   State
	saved []State
	force bool
}

// NewStack resets every category of d to its default.
func NewStack(d Device) *Stack {
	s := &Stack{dev: d}
	s.ResetAll()
	return s
}

func (s *Stack) SetDepthTest(enabled bool)  { s.Set(DepthTest, enabled) }
func (s *Stack) SetColorBlend(enabled bool) { s.Set(ColorBlend, enabled) }
func (s *Stack) SetCullFace(enabled bool)   { s.Set(CullFace, enabled) }

// Set changes one category, touching the device only when the value differs
// from the tracked one.
func (s *Stack) Set(c Category, enabled bool) {
	if c >= categoryCount {
		return
	}
	if s.cur[c] == enabled && !s.force {
		return
	}
	s.cur[c] = enabled
	s.apply(c)
}

func (s *Stack) apply(c Category) {
	if s.dev == nil {
		return
	}
	switch c {
	case DepthTest:
		s.dev.SetDepthTest(s.cur[c])
	case ColorBlend:
		s.dev.SetColorBlend(s.cur[c])
	case CullFace:
		s.dev.SetCullFace(s.cur[c])
	}
}

// Current is the tracked state.
func (s *Stack) Current() State { return s.cur }

func (s *Stack) Enabled(c Category) bool { return s.cur.Enabled(c) }

// Reset puts c back to its default.
func (s *Stack) Reset(c Category) {
	if c >= categoryCount {
		return
	}
	s.force = true
	Defaults[c](s)
	s.force = false
}

// ResetAll puts every category back to its default, forcing each one to the
// device.
func (s *Stack) ResetAll() {
	for c := Category(0); c < categoryCount; c++ {
		s.Reset(c)
	}
}

// Push saves the current state.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.cur)
}

// Pop restores the state saved by the matching Push.
func (s *Stack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return ErrUnderflow
	}
	prev := s.saved[n-1]
	s.saved = s.saved[:n-1]
	for c := Category(0); c < categoryCount; c++ {
		s.Set(c, prev[c])
	}
	return nil
}

// Depth is the number of saved snapshots.
func (s *Stack) Depth() int { return len(s.saved) }
