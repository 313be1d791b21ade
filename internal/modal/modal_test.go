package modal

import "testing"

type ent struct{ id int64 }

func TestZeroValueIsClosed(t *testing.T) {
	var s State[ent]
	if s.Mode() != Closed {
		t.Fatalf("mode = %v", s.Mode())
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("closed state should have no selection")
	}
}

func TestOpenTransitions(t *testing.T) {
	var s State[ent]

	s.OpenAdd()
	if s.Mode() != Add {
		t.Fatalf("mode = %v", s.Mode())
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("add should clear the selection")
	}

	s.OpenEdit(ent{id: 3})
	if s.Mode() != Edit {
		t.Fatalf("mode = %v", s.Mode())
	}
	if sel, ok := s.Selected(); !ok || sel.id != 3 {
		t.Fatalf("selected = %v %v", sel, ok)
	}

	// opening another modal replaces the first; only one can be active
	s.OpenDelete(ent{id: 9})
	if s.Mode() != Delete {
		t.Fatalf("mode = %v", s.Mode())
	}
	if sel, _ := s.Selected(); sel.id != 9 {
		t.Fatalf("selected = %v", sel)
	}
}

func TestCloseClearsSelectionAndSubmitting(t *testing.T) {
	var s State[ent]
	s.OpenDelete(ent{id: 4})
	if !s.Begin() {
		t.Fatal("Begin should succeed")
	}
	s.Close()
	if s.Mode() != Closed || s.Submitting() {
		t.Fatalf("mode=%v submitting=%v", s.Mode(), s.Submitting())
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("selection should be cleared")
	}
}

func TestBeginGuardsDuplicates(t *testing.T) {
	var s State[ent]

	if s.Begin() {
		t.Fatal("Begin on a closed modal must be ignored")
	}

	s.OpenAdd()
	if !s.Begin() {
		t.Fatal("first Begin should succeed")
	}
	if s.Begin() {
		t.Fatal("second Begin while submitting must be ignored")
	}
	s.End()
	if !s.Begin() {
		t.Fatal("Begin after End should succeed again")
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{Closed: "closed", Add: "add", Edit: "edit", Delete: "delete"} {
		if m.String() != want {
			t.Errorf("%d.String() = %q", m, m.String())
		}
	}
}
