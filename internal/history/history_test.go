package history

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/example/stickersketch/internal/mark"
)

func sticker(i int) mark.Mark {
	return mark.NewSticker(mark.Pt(float64(i), 0), "x", 0, 10, color.RGBA{A: 0xff})
}

func ids(ms []mark.Mark) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID()
	}
	return out
}

func TestUndoRedoOnEmptyAreNoOps(t *testing.T) {
	s := New()
	if s.Undo() {
		t.Error("Undo on empty store reported change")
	}
	if s.Redo() {
		t.Error("Redo on empty store reported change")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Errorf("predicates on empty store: undo=%v redo=%v", s.CanUndo(), s.CanRedo())
	}
}

func TestUndoIsLIFO(t *testing.T) {
	for _, tc := range []struct{ n, k int }{
		{1, 1}, {3, 1}, {3, 3}, {5, 2}, {8, 7},
	} {
		s := New()
		var all []mark.Mark
		for i := 0; i < tc.n; i++ {
			m := sticker(i)
			all = append(all, m)
			s.Commit(m)
		}
		for i := 0; i < tc.k; i++ {
			if !s.Undo() {
				t.Fatalf("n=%d k=%d: undo %d reported no change", tc.n, tc.k, i)
			}
		}
		c, u := s.Len()
		if c != tc.n-tc.k || u != tc.k {
			t.Fatalf("n=%d k=%d: len = %d,%d", tc.n, tc.k, c, u)
		}
		if diff := cmp.Diff(ids(all[:tc.n-tc.k]), ids(s.Committed())); diff != "" {
			t.Errorf("n=%d k=%d committed (-want +got):\n%s", tc.n, tc.k, diff)
		}
		// Undone holds the undone marks with the oldest undone at the top.
		var want []string
		for i := tc.n - 1; i >= tc.n-tc.k; i-- {
			want = append(want, all[i].ID())
		}
		if diff := cmp.Diff(want, ids(s.Undone())); diff != "" {
			t.Errorf("n=%d k=%d undone (-want +got):\n%s", tc.n, tc.k, diff)
		}
	}
}

func TestRedoRestoresState(t *testing.T) {
	s := New()
	for i := 0; i < 4; i++ {
		s.Commit(sticker(i))
	}
	before := ids(s.Committed())
	for i := 0; i < 3; i++ {
		s.Undo()
	}
	for i := 0; i < 3; i++ {
		if !s.Redo() {
			t.Fatalf("redo %d reported no change", i)
		}
	}
	if diff := cmp.Diff(before, ids(s.Committed())); diff != "" {
		t.Fatalf("committed after undo/redo (-want +got):\n%s", diff)
	}
	if s.CanRedo() {
		t.Fatal("CanRedo after redoing everything")
	}
}

func TestCommitForeclosesRedo(t *testing.T) {
	s := New()
	s.Commit(sticker(0))
	s.Commit(sticker(1))
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("CanRedo false after undo")
	}
	s.Commit(sticker(2))
	if s.CanRedo() {
		t.Fatal("CanRedo true after commit")
	}
	if s.Redo() {
		t.Fatal("Redo after commit reported change")
	}
	if c, _ := s.Len(); c != 2 {
		t.Fatalf("committed len = %d, want 2", c)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Commit(sticker(0))
	s.Commit(sticker(1))
	s.Undo()
	s.Clear()
	if c, u := s.Len(); c != 0 || u != 0 {
		t.Fatalf("len after clear = %d,%d", c, u)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatal("predicates true after clear")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New()
	s.Commit(sticker(0))
	snap := s.Committed()
	snap[0] = nil
	if s.Committed()[0] == nil {
		t.Fatal("store shares its committed slice")
	}
}

// TestRandomOperations checks the predicates and the total number of marks
// after random sequences of operations.
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := New()
	var committed, undone []mark.Mark
	for step := 0; step < 500; step++ {
		switch op := r.Intn(10); {
		case op < 5:
			m := sticker(step)
			s.Commit(m)
			committed = append(committed, m)
			undone = nil
		case op < 7:
			if len(committed) > 0 {
				undone = append(undone, committed[len(committed)-1])
				committed = committed[:len(committed)-1]
			}
			s.Undo()
		case op < 9:
			if len(undone) > 0 {
				committed = append(committed, undone[len(undone)-1])
				undone = undone[:len(undone)-1]
			}
			s.Redo()
		default:
			if r.Intn(4) == 0 {
				s.Clear()
				committed, undone = nil, nil
			}
		}
		if s.CanUndo() != (len(committed) > 0) || s.CanRedo() != (len(undone) > 0) {
			t.Fatalf("step %d: predicates undo=%v redo=%v, model %d/%d", step, s.CanUndo(), s.CanRedo(), len(committed), len(undone))
		}
		if diff := cmp.Diff(ids(committed), ids(s.Committed()), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: committed (-want +got):\n%s", step, diff)
		}
		if diff := cmp.Diff(ids(undone), ids(s.Undone()), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: undone (-want +got):\n%s", step, diff)
		}
	}
}
