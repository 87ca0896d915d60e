package mem

import "testing"

func TestArenaAppendReset(t *testing.T) {
	a := NewArena[int](4)
	if idx := a.Append(1, 2); idx != 0 {
		t.Errorf("first Append returned index %d, want 0", idx)
	}
	if idx := a.Append(3); idx != 2 {
		t.Errorf("second Append returned index %d, want 2", idx)
	}
	if got := a.Values(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Values() = %v", got)
	}

	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", a.Len())
	}
	// Reset keeps storage; appending within capacity must not move it.
	a.Append(7)
	if got := a.Values()[0]; got != 7 {
		t.Errorf("Values()[0] = %d after reuse, want 7", got)
	}
}
