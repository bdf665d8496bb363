package editor

import "enginegui/internal/inspector"

const maxUndoStack = 50

// UndoActionType is the kind of change an undo state reverts.
type UndoActionType int

const (
	UndoEdit UndoActionType = iota
	UndoDelete
	UndoCreate
)

// UndoState is enough to revert one change.
type UndoState struct {
	Type   UndoActionType
	Entity *Entity

	// Edit snapshot
	Name   string
	Tags   string
	Fields []inspector.Field

	// Position in the scene of a deleted entity
	Index int
}

// pushEdit saves the editable state of ent before it changes.
func (e *Editor) pushEdit(ent *Entity) {
	e.addUndoState(UndoState{
		Type:   UndoEdit,
		Entity: ent,
		Name:   ent.Name,
		Tags:   ent.Tags,
		Fields: append([]inspector.Field(nil), ent.Fields...),
	})
}

func (e *Editor) addUndoState(state UndoState) {
	if len(e.undoStack) >= maxUndoStack {
		e.undoStack = e.undoStack[1:]
	}
	e.undoStack = append(e.undoStack, state)
}

// UndoLen is the number of changes that can be undone.
func (e *Editor) UndoLen() int { return len(e.undoStack) }

// Undo reverts the last change.
func (e *Editor) Undo() {
	if len(e.undoStack) == 0 {
		return
	}
	state := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	switch state.Type {
	case UndoEdit:
		// The entity may have been deleted since; editing it is harmless.
		state.Entity.Name = state.Name
		state.Entity.Tags = state.Tags
		state.Entity.Fields = state.Fields
		e.selectEntity(state.Entity)
		e.setMsg("Undo edit on %s", state.Name)

	case UndoDelete:
		e.Scene.insert(state.Index, state.Entity)
		e.selectEntity(state.Entity)
		e.setMsg("Restored %s", state.Entity.Name)

	case UndoCreate:
		e.Scene.Remove(state.Entity.UID)
		if e.Selected == state.Entity {
			e.selectEntity(nil)
		}
		e.setMsg("Removed %s", state.Entity.Name)
	}
}
