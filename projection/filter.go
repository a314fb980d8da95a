package projection

import "sort"

// FieldIDSet is a set of canonical field ids which must survive projection,
// typically because a row filter references them. A nil FieldIDSet is empty.
type FieldIDSet map[int]struct{}

// NewFieldIDSet is a factory for FieldIDSets
func NewFieldIDSet(ids ...int) FieldIDSet {
	set := make(FieldIDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains returns true iff id is in this set
func (s FieldIDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the ids in this set, sorted ascending
func (s FieldIDSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
