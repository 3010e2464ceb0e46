// Package history keeps the committed and undone mark stacks of a drawing.
package history

import "github.com/example/stickersketch/internal/mark"

// Store holds two LIFO stacks. Marks move between them one at a time through
// Undo and Redo; Commit appends and forecloses redo.
type Store struct {
	committed []mark.Mark
	undone    []mark.Mark
}

// New returns an empty store.
func New() *Store { return &Store{} }

// Commit appends m to the committed marks and discards the undone stack.
func (s *Store) Commit(m mark.Mark) {
	s.committed = append(s.committed, m)
	clear(s.undone)
	s.undone = s.undone[:0]
}

// Undo moves the newest committed mark to the undone stack. It reports
// false, doing nothing, when there is nothing to undo.
func (s *Store) Undo() bool {
	m, ok := pop(&s.committed)
	if !ok {
		return false
	}
	s.undone = append(s.undone, m)
	return true
}

// Redo moves the newest undone mark back to the committed stack.
func (s *Store) Redo() bool {
	m, ok := pop(&s.undone)
	if !ok {
		return false
	}
	s.committed = append(s.committed, m)
	return true
}

// Clear empties both stacks.
func (s *Store) Clear() {
	clear(s.committed)
	clear(s.undone)
	s.committed = s.committed[:0]
	s.undone = s.undone[:0]
}

func (s *Store) CanUndo() bool { return len(s.committed) > 0 }
func (s *Store) CanRedo() bool { return len(s.undone) > 0 }

// Len returns the sizes of the committed and undone stacks.
func (s *Store) Len() (committed, undone int) { return len(s.committed), len(s.undone) }

// Committed returns a copy of the visible marks, oldest first.
func (s *Store) Committed() []mark.Mark { return snapshot(s.committed) }

// Undone returns a copy of the undone stack. The last element is the next
// mark Redo restores.
func (s *Store) Undone() []mark.Mark { return snapshot(s.undone) }

func pop(stack *[]mark.Mark) (mark.Mark, bool) {
	n := len(*stack)
	if n == 0 {
		return nil, false
	}
	m := (*stack)[n-1]
	(*stack)[n-1] = nil
	*stack = (*stack)[:n-1]
	return m, true
}

func snapshot(ms []mark.Mark) []mark.Mark {
	out := make([]mark.Mark, len(ms))
	copy(out, ms)
	return out
}
