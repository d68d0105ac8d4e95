package model

// ExclusionSet holds catalog ids a room has already seen. It only ever grows:
// refills add the freshly served ids and pass the union back on the next call.
type ExclusionSet map[int]struct{}

func NewExclusionSet(ids ...int) ExclusionSet {
	s := make(ExclusionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ExclusionSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s ExclusionSet) Add(id int) {
	s[id] = struct{}{}
}

func (s ExclusionSet) Len() int {
	return len(s)
}
