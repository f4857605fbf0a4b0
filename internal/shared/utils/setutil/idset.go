// Package setutil provides small ID set helpers.
package setutil

import "slices"

// IDSet is an insertion-ordered set of non-zero IDs.
type IDSet struct {
	seen  map[uint]struct{}
	order []uint
}

func NewIDSet(ids ...uint) *IDSet {
	s := &IDSet{seen: make(map[uint]struct{}, len(ids))}
	s.Add(ids...)
	return s
}

// Add inserts ids, ignoring zero values and duplicates.
func (s *IDSet) Add(ids ...uint) {
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

// AddPtr inserts *id when id is non-nil.
func (s *IDSet) AddPtr(id *uint) {
	if id != nil {
		s.Add(*id)
	}
}

func (s *IDSet) Has(id uint) bool {
	_, ok := s.seen[id]
	return ok
}

// Slice returns the IDs in insertion order.
func (s *IDSet) Slice() []uint {
	return slices.Clone(s.order)
}

func (s *IDSet) Len() int {
	return len(s.order)
}
