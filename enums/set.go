package enums

import "sort"

// Set is an unordered collection of term identifiers and symbolic values.
type Set map[string]struct{}

// NewSet creates a set from the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	s.AddAll(values)
	return s
}

// Add inserts one value.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// AddAll inserts every value in vs.
func (s Set) AddAll(vs []string) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Union inserts every value of other into s.
func (s Set) Union(other Set) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Subtract removes every value of other from s.
func (s Set) Subtract(other Set) {
	for v := range other {
		delete(s, v)
	}
}

// Contains reports membership.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values.
func (s Set) Len() int {
	return len(s)
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
