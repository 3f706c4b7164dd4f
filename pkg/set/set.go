package set

import (
	"sort"
)

// IntSet is a set of years.
type IntSet struct {
	m map[int]bool
}

func New() *IntSet {
	return &IntSet{
		m: map[int]bool{},
	}
}

func NewFromSlice(slice []int) *IntSet {
	object := New()
	for _, item := range slice {
		object.Add(item)
	}

	return object
}

func (s *IntSet) Add(item int) {
	s.m[item] = true
}
func (s *IntSet) Has(item int) bool {
	_, ok := s.m[item]
	return ok
}
func (s *IntSet) Len() int {
	return len(s.m)
}
func (s *IntSet) IsEmpty() bool {
	return s.Len() == 0
}

// List returns the items in ascending order.
func (s *IntSet) List() []int {
	list := make([]int, 0, len(s.m))
	for item := range s.m {
		list = append(list, item)
	}
	sort.Ints(list)
	return list
}

func (s *IntSet) Difference(other *IntSet) *IntSet {
	sNew := New()
	for _, item := range s.List() {
		if !other.Has(item) {
			sNew.Add(item)
		}
	}
	return sNew
}

// Equal reports whether both sets hold exactly the same items.
func (s *IntSet) Equal(other *IntSet) bool {
	return s.Difference(other).IsEmpty() && other.Difference(s).IsEmpty()
}
