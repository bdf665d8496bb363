// Package clipboard provides the clipboards text fields copy to and paste
// from.
package clipboard

import (
	"log"

	"github.com/atotto/clipboard"
)

// Memory is a process-local clipboard.
type Memory struct {
	text string
}

func (m *Memory) Text() string     { return m.text }
func (m *Memory) SetText(s string) { m.text = s }

// System is the operating system clipboard. Backend failures are logged and
// read as an empty clipboard.
type System struct {
	// Fallback keeps copied text usable inside the process when the system
	// clipboard is not available.
	Fallback Memory
}

// Available reports whether a system clipboard backend was found.
func (s *System) Available() bool { return !clipboard.Unsupported }

func (s *System) Text() string {
	if clipboard.Unsupported {
		return s.Fallback.Text()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("Clipboard: read failed: %v", err)
		return s.Fallback.Text()
	}
	return text
}

func (s *System) SetText(text string) {
	s.Fallback.SetText(text)
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("Clipboard: write failed: %v", err)
	}
}

// Func adapts a pair of functions, such as a windowing library's clipboard
// calls.
type Func struct {
	Get func() string
	Set func(string)
}

func (f Func) Text() string {
	if f.Get == nil {
		return ""
	}
	return f.Get()
}

func (f Func) SetText(s string) {
	if f.Set != nil {
		f.Set(s)
	}
}
