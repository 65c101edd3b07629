package state

import "github.com/google/uuid"

// newID returns the identifier given to every stroke and stamp. IDs survive
// undo and redo, so a redone stroke is the same stroke.
func newID() string {
	return uuid.NewString()
}
