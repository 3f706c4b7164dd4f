package convert

import (
	"sort"
)

// Unbounded disables a year bound.
const Unbounded = -99

// GroupColumns holds the column indexes of one demographic group.
// -1 means the group has no such column.
type GroupColumns struct {
	NEmployed int `yaml:"n_employed"`
	AvgSalary int `yaml:"avg_salary"`
}

// ColumnIndexSet is the fixed column layout of the HILD salary sheets.
type ColumnIndexSet struct {
	Men   GroupColumns `yaml:"men"`
	Women GroupColumns `yaml:"women"`
	Total GroupColumns `yaml:"total"`
}

// DefaultColumns is the layout of tjansteman_privatsektor 1929-1946.
func DefaultColumns() ColumnIndexSet {
	return ColumnIndexSet{
		Men:   GroupColumns{NEmployed: 2, AvgSalary: 4},
		Women: GroupColumns{NEmployed: 3, AvgSalary: 5},
		Total: GroupColumns{NEmployed: -1, AvgSalary: 6},
	}
}

// Salaries maps year to salary, remembering insertion order.
type Salaries struct {
	years  []int
	values map[int]int
}

// NewSalaries returns an empty mapping.
func NewSalaries() *Salaries {
	return &Salaries{values: map[int]int{}}
}

// Set records salary for year. A year set twice keeps its first position.
func (s *Salaries) Set(year, salary int) {
	if _, ok := s.values[year]; !ok {
		s.years = append(s.years, year)
	}
	s.values[year] = salary
}

// Get returns the salary recorded for year.
func (s *Salaries) Get(year int) (int, bool) {
	salary, ok := s.values[year]
	return salary, ok
}

// Len is the number of years recorded.
func (s *Salaries) Len() int {
	return len(s.years)
}

// Years returns the years in insertion order.
func (s *Salaries) Years() []int {
	years := make([]int, len(s.years))
	copy(years, s.years)
	return years
}

// Values returns the salaries in insertion order.
func (s *Salaries) Values() []int {
	values := make([]int, 0, len(s.years))
	for _, year := range s.years {
		values = append(values, s.values[year])
	}
	return values
}

// Map returns a plain copy of the mapping.
func (s *Salaries) Map() map[int]int {
	m := make(map[int]int, len(s.values))
	for year, salary := range s.values {
		m[year] = salary
	}
	return m
}

func (s *Salaries) Min() int {
	values := s.Values()
	if len(values) == 0 {
		return 0
	}
	sort.Ints(values)
	return values[0]
}

func (s *Salaries) Max() int {
	values := s.Values()
	if len(values) == 0 {
		return 0
	}
	sort.Ints(values)
	return values[len(values)-1]
}
