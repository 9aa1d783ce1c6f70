package section

import (
	"slices"

	"github.com/samber/lo"
)

// Store is an immutable, order-sorted set of sections for one view or export.
type Store struct {
	sections []Section
}

// NewStore copies and sorts sections.
func NewStore(sections []Section) *Store {
	return &Store{sections: Sorted(sections)}
}

// All returns the sections in ascending order. The slice is a copy.
func (s *Store) All() []Section {
	return slices.Clone(s.sections)
}

// Len returns the number of sections.
func (s *Store) Len() int { return len(s.sections) }

// ByOrder returns the first section with the given order.
func (s *Store) ByOrder(order int) (Section, bool) {
	return lo.Find(s.sections, func(sec Section) bool { return sec.Order == order })
}
