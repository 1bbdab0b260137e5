package stats

import "github.com/elliotchance/orderedmap/v2"

// Multiset counts how many times each element has been added. Distinct
// elements iterate in insertion order, which keeps snapshots and digests
// stable across runs.
type Multiset[T comparable] struct {
	counts *orderedmap.OrderedMap[T, int]
	size   int
}

func NewMultiset[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: orderedmap.NewOrderedMap[T, int]()}
}

// Add increments the count of el and reports whether el was previously
// absent from the set.
func (m *Multiset[T]) Add(el T) bool {
	c, ok := m.counts.Get(el)
	m.counts.Set(el, c+1)
	m.size++
	return !ok
}

// Remove decrements the count of el, dropping the element entirely once its
// count reaches zero. It reports whether a decrement occurred; removing an
// absent element is a no-op and the count never goes negative.
func (m *Multiset[T]) Remove(el T) bool {
	c, ok := m.counts.Get(el)
	if !ok {
		return false
	}
	m.size--
	if c == 1 {
		m.counts.Delete(el)
		return true
	}
	m.counts.Set(el, c-1)
	return true
}

// Contains reports whether el has a count above zero.
func (m *Multiset[T]) Contains(el T) bool {
	_, ok := m.counts.Get(el)
	return ok
}

// Count returns the count of el, zero if absent.
func (m *Multiset[T]) Count(el T) int {
	c, _ := m.counts.Get(el)
	return c
}

// Distinct returns the number of distinct elements.
func (m *Multiset[T]) Distinct() int {
	return m.counts.Len()
}

// Size returns the total count over all elements.
func (m *Multiset[T]) Size() int {
	return m.size
}

// Elements returns the distinct elements in insertion order.
func (m *Multiset[T]) Elements() []T {
	return m.counts.Keys()
}
