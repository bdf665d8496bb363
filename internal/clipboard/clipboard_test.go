package clipboard

import (
	"testing"

	"enginegui/internal/textedit"
)

var (
	_ textedit.Clipboard = (*Memory)(nil)
	_ textedit.Clipboard = (*System)(nil)
	_ textedit.Clipboard = Func{}
)

func TestMemory(t *testing.T) {
	var m Memory
	m.SetText("hello")
	if m.Text() != "hello" {
		t.Errorf("Expected hello, got %q", m.Text())
	}
}

func TestFunc(t *testing.T) {
	var stored string
	f := Func{Get: func() string { return stored }, Set: func(s string) { stored = s }}
	f.SetText("x")
	if f.Text() != "x" {
		t.Errorf("Expected x, got %q", f.Text())
	}
	if (Func{}).Text() != "" {
		t.Error("Expected empty text from an unset Func")
	}
}

func TestCutThroughMemory(t *testing.T) {
	var m Memory
	st := textedit.New("the quick fox", true)
	st.Select(2, 9)
	if !st.Cut(&m) {
		t.Fatal("Expected cut to succeed")
	}
	if m.Text() != "e quick" || st.String() != "th fox" {
		t.Errorf("Expected clipboard %q and text %q, got %q and %q", "e quick", "th fox", m.Text(), st.String())
	}
}
