package editor

import (
	"encoding/json"
	"fmt"
	"os"

	"enginegui/internal/inspector"
)

// --- JSON types ---

type SceneFile struct {
	Entities []EntityDef `json:"entities"`
}

type EntityDef struct {
	UID    uint64     `json:"uid"`
	Name   string     `json:"name"`
	Tags   string     `json:"tags,omitempty"`
	Fields []FieldDef `json:"fields"`
}

// FieldDef stores the value in the JSON form that suits its type.
type FieldDef struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ReadOnly bool            `json:"readOnly,omitempty"`
	Value    json.RawMessage `json:"value"`
}

// LoadScene replaces the scene with the one at path. Fields with an unknown
// type or a malformed value are skipped.
func (s *Scene) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	s.Entities = s.Entities[:0]
	s.nextUID = 1
	for _, def := range sf.Entities {
		ent := &Entity{UID: def.UID, Name: def.Name, Tags: def.Tags}
		if ent.UID == 0 || s.Find(ent.UID) != nil {
			ent.UID = s.nextUID
		}
		for _, fd := range def.Fields {
			v, err := decodeValue(fd)
			if err != nil {
				continue
			}
			ent.Fields = append(ent.Fields, inspector.Field{Name: fd.Name, Value: v, ReadOnly: fd.ReadOnly})
		}
		s.Entities = append(s.Entities, ent)
		s.nextUID = max(s.nextUID, ent.UID+1)
	}
	return nil
}

// SaveScene writes the scene to path.
func (s *Scene) SaveScene(path string) error {
	sf := SceneFile{Entities: make([]EntityDef, 0, len(s.Entities))}
	for _, ent := range s.Entities {
		def := EntityDef{UID: ent.UID, Name: ent.Name, Tags: ent.Tags}
		for _, f := range ent.Fields {
			raw, err := encodeValue(f.Value)
			if err != nil {
				return fmt.Errorf("marshal %s.%s: %w", ent.Name, f.Name, err)
			}
			def.Fields = append(def.Fields, FieldDef{
				Name:     f.Name,
				Type:     f.Value.Kind.String(),
				ReadOnly: f.ReadOnly,
				Value:    raw,
			})
		}
		sf.Entities = append(sf.Entities, def)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func encodeValue(v inspector.Value) (json.RawMessage, error) {
	switch v.Kind {
	case inspector.KindFloat:
		return json.Marshal(v.Float)
	case inspector.KindInt:
		return json.Marshal(v.Int)
	case inspector.KindBool:
		return json.Marshal(v.Bool)
	case inspector.KindString:
		return json.Marshal(v.String)
	case inspector.KindColor:
		return json.Marshal(inspector.FormatColor(v.Color))
	case inspector.KindVec3:
		return json.Marshal(v.Vec3)
	}
	return nil, fmt.Errorf("unknown kind %v", v.Kind)
}

func decodeValue(fd FieldDef) (inspector.Value, error) {
	kind, ok := inspector.ParseKind(fd.Type)
	if !ok {
		return inspector.Value{}, fmt.Errorf("unknown type %q", fd.Type)
	}
	v := inspector.Value{Kind: kind}
	var err error
	switch kind {
	case inspector.KindFloat:
		err = json.Unmarshal(fd.Value, &v.Float)
	case inspector.KindInt:
		err = json.Unmarshal(fd.Value, &v.Int)
	case inspector.KindBool:
		err = json.Unmarshal(fd.Value, &v.Bool)
	case inspector.KindString:
		err = json.Unmarshal(fd.Value, &v.String)
	case inspector.KindColor:
		var hex string
		if err = json.Unmarshal(fd.Value, &hex); err == nil {
			v.Color, err = inspector.ParseColor(hex)
		}
	case inspector.KindVec3:
		err = json.Unmarshal(fd.Value, &v.Vec3)
	}
	return v, err
}
