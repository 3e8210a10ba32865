package ontology

import "sort"

// PrefixTracker accumulates prefixes encountered during a validation run
// that had no usable adapter. It is a passive sink: recording a prefix
// never changes a validation outcome, the set is read at the end of a run
// for reporting. Entries are never evicted.
type PrefixTracker struct {
	prefixes map[string]struct{}
}

// NewPrefixTracker creates an empty tracker.
func NewPrefixTracker() *PrefixTracker {
	return &PrefixTracker{prefixes: make(map[string]struct{})}
}

// Record adds a prefix to the set.
func (t *PrefixTracker) Record(prefix string) {
	t.prefixes[prefix] = struct{}{}
}

// Contains reports whether a prefix has been recorded.
func (t *PrefixTracker) Contains(prefix string) bool {
	_, ok := t.prefixes[prefix]
	return ok
}

// All returns the recorded prefixes in sorted order.
func (t *PrefixTracker) All() []string {
	out := make([]string, 0, len(t.prefixes))
	for p := range t.prefixes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct recorded prefixes.
func (t *PrefixTracker) Len() int {
	return len(t.prefixes)
}
