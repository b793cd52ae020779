// Package sets provides a generic set type for comparable values. The zero value is ready to use.
package sets

// Set is a generic set type.
type Set[E comparable] struct {
	m map[E]struct{}
}

func (s *Set[E]) init() {
	if s.m == nil {
		s.m = make(map[E]struct{})
	}
}

// Len returns the number of elements in the Set.
func (s *Set[E]) Len() int {
	return len(s.m)
}

// Add adds the given values to the Set.
func (s *Set[E]) Add(vals ...E) {
	s.init()
	for _, v := range vals {
		s.m[v] = struct{}{}
	}
}

// Insert adds v and reports whether it was not already in the Set.
func (s *Set[E]) Insert(v E) bool {
	s.init()
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Remove removes the given value from the Set.
func (s *Set[E]) Remove(v E) {
	delete(s.m, v)
}

// Contains returns true if the Set contains the given value.
func (s *Set[E]) Contains(v E) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m[v]
	return ok
}
