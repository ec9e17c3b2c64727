package aggregate

// Set is a set of comparable values.
type Set[V comparable] map[V]struct{}

func NewSet[V comparable](values ...V) Set[V] {
	s := make(Set[V], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s Set[V]) Add(v V) { s[v] = struct{}{} }

func (s Set[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

func (s Set[V]) Len() int { return len(s) }

// Union returns a new set holding the members of every set.
func Union[V comparable](sets ...Set[V]) Set[V] {
	out := make(Set[V])
	for _, s := range sets {
		for v := range s {
			out.Add(v)
		}
	}
	return out
}
