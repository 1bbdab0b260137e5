package stats

import "testing"

func TestMultisetCounts(t *testing.T) {
	m := NewMultiset[string]()

	if !m.Add("a") {
		t.Error("first Add should report a new element")
	}
	if m.Add("a") {
		t.Error("second Add should not report a new element")
	}
	m.Add("b")

	if got := m.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := m.Distinct(); got != 2 {
		t.Errorf("Distinct() = %d, want 2", got)
	}
	if got := m.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
}

func TestMultisetRemove(t *testing.T) {
	m := NewMultiset[string]()
	m.Add("a")
	m.Add("a")

	if !m.Remove("a") {
		t.Error("Remove of a present element returned false")
	}
	if !m.Contains("a") {
		t.Error("element vanished while its count was still positive")
	}
	if !m.Remove("a") {
		t.Error("Remove of the last occurrence returned false")
	}
	if m.Contains("a") {
		t.Error("element still present after count reached zero")
	}
	if m.Remove("a") {
		t.Error("Remove of an absent element returned true")
	}
	if got := m.Count("a"); got != 0 {
		t.Errorf("Count(a) = %d after removals, want 0", got)
	}
	if got := m.Size(); got != 0 {
		t.Errorf("Size() = %d after removals, want 0", got)
	}
}

func TestMultisetElementsOrder(t *testing.T) {
	m := NewMultiset[int]()
	for _, v := range []int{3, 1, 2, 1, 3} {
		m.Add(v)
	}
	want := []int{3, 1, 2}
	got := m.Elements()
	if len(got) != len(want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Elements() = %v, want insertion order %v", got, want)
		}
	}
}
