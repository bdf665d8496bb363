// Package editor is the editor application built on the immediate-mode GUI:
// a hierarchy of entities, an inspector for the selected one and a notes
// panel.
package editor

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"enginegui/internal/draw"
	"enginegui/internal/inspector"
)

// Entity is one object listed in the hierarchy.
type Entity struct {
	UID    uint64
	Name   string
	Tags   string
	Fields []inspector.Field
}

// Field returns the field called name, or nil.
func (e *Entity) Field(name string) *inspector.Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}

// Scene is the ordered list of entities being edited.
type Scene struct {
	Entities []*Entity
	nextUID  uint64
}

func NewScene() *Scene {
	return &Scene{nextUID: 1}
}

// Add appends a new entity with the default fields. An empty name picks
// "Entity N".
func (s *Scene) Add(name string) *Entity {
	uid := s.nextUID
	s.nextUID++
	if name == "" {
		name = fmt.Sprintf("Entity %d", uid)
	}
	e := &Entity{
		UID:    uid,
		Name:   name,
		Fields: defaultFields(uid),
	}
	s.Entities = append(s.Entities, e)
	return e
}

func defaultFields(uid uint64) []inspector.Field {
	return []inspector.Field{
		{Name: "UID", Value: inspector.Int(int64(uid)), ReadOnly: true},
		{Name: "Position", Value: inspector.Vec3(0, 0, 0)},
		{Name: "Rotation", Value: inspector.Vec3(0, 0, 0)},
		{Name: "Scale", Value: inspector.Vec3(1, 1, 1)},
		{Name: "Color", Value: inspector.Color(draw.RGBA(200, 200, 200, 255))},
		{Name: "Visible", Value: inspector.Bool(true)},
		{Name: "Mass", Value: inspector.Float(1)},
		{Name: "Layer", Value: inspector.Int(0)},
	}
}

// Find returns the entity with uid, or nil.
func (s *Scene) Find(uid uint64) *Entity {
	if i := s.index(uid); i >= 0 {
		return s.Entities[i]
	}
	return nil
}

func (s *Scene) index(uid uint64) int {
	for i, e := range s.Entities {
		if e.UID == uid {
			return i
		}
	}
	return -1
}

// Remove deletes the entity with uid and returns its former position, or -1
// when there is none.
func (s *Scene) Remove(uid uint64) int {
	i := s.index(uid)
	if i < 0 {
		return -1
	}
	s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
	return i
}

// insert puts e back at position i, clamped to the list.
func (s *Scene) insert(i int, e *Entity) {
	i = max(0, min(i, len(s.Entities)))
	s.Entities = append(s.Entities, nil)
	copy(s.Entities[i+1:], s.Entities[i:])
	s.Entities[i] = e
	if e.UID >= s.nextUID {
		s.nextUID = e.UID + 1
	}
}

// Filter returns the entities whose names fuzzy-match pattern, best match
// first. An empty pattern returns every entity in order.
func (s *Scene) Filter(pattern string) []*Entity {
	if pattern == "" {
		return s.Entities
	}
	names := make([]string, len(s.Entities))
	for i, e := range s.Entities {
		names[i] = e.Name
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]*Entity, len(matches))
	for i, m := range matches {
		out[i] = s.Entities[m.Index]
	}
	return out
}
