package gfxstate

import "testing"

type call struct {
	cat     Category
	enabled bool
}

type fakeDevice struct {
	calls []call
}

func (f *fakeDevice) SetDepthTest(on bool)  { f.calls = append(f.calls, call{DepthTest, on}) }
func (f *fakeDevice) SetColorBlend(on bool) { f.calls = append(f.calls, call{ColorBlend, on}) }
func (f *fakeDevice) SetCullFace(on bool)   { f.calls = append(f.calls, call{CullFace, on}) }

func TestNewStackAppliesDefaults(t *testing.T) {
	dev := &fakeDevice{}
	s := NewStack(dev)

	if len(dev.calls) != 3 {
		t.Fatalf("Expected 3 device calls, got %d", len(dev.calls))
	}
	want := State{DepthTest: false, ColorBlend: true, CullFace: true}
	if s.Current() != want {
		t.Errorf("Expected defaults %v, got %v", want, s.Current())
	}
}

func TestPushPopRestores(t *testing.T) {
	dev := &fakeDevice{}
	s := NewStack(dev)
	dev.calls = nil

	s.Push()
	s.Set(DepthTest, true)
	s.Set(CullFace, false)
	s.Set(CullFace, false)
	if len(dev.calls) != 2 {
		t.Errorf("Expected redundant set to be skipped, got %d calls", len(dev.calls))
	}

	if err := s.Pop(); err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if s.Enabled(DepthTest) || !s.Enabled(CullFace) {
		t.Errorf("Expected state restored, got %v", s.Current())
	}
	if s.Depth() != 0 {
		t.Errorf("Expected empty stack, got depth %d", s.Depth())
	}
}

func TestPopUnderflow(t *testing.T) {
	s := NewStack(&fakeDevice{})
	if err := s.Pop(); err != ErrUnderflow {
		t.Errorf("Expected ErrUnderflow, got %v", err)
	}
}

func TestResetForcesDevice(t *testing.T) {
	dev := &fakeDevice{}
	s := NewStack(dev)
	dev.calls = nil

	s.Reset(ColorBlend)
	if len(dev.calls) != 1 || dev.calls[0] != (call{ColorBlend, true}) {
		t.Errorf("Expected a forced ColorBlend on, got %v", dev.calls)
	}
}

func TestCategoryString(t *testing.T) {
	if DepthTest.String() != "DepthTest" || Category(9).String() != "Unknown" {
		t.Error("Expected category names")
	}
}
