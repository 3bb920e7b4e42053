package kmer

import "github.com/twotwotwo/sorts/sortutil"

// Table maps each k-mer to its number of observations.
// A Table is not safe for concurrent use; Count gives every worker its own.
type Table struct {
	counts map[string]uint64
}

func NewTable() *Table {
	return &Table{counts: make(map[string]uint64)}
}

// Add records one observation of key.
func (t *Table) Add(key []byte) { t.counts[string(key)]++ }

func (t *Table) AddString(key string) { t.counts[key]++ }

func (t *Table) Get(key string) uint64 { return t.counts[key] }

// Len is the number of distinct k-mers.
func (t *Table) Len() int { return len(t.counts) }

// Total is the sum of all counts.
func (t *Table) Total() uint64 {
	var n uint64
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Merge adds every count in other to t. other is left unchanged.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for k, c := range other.counts {
		t.counts[k] += c
	}
}

// SortedKeys lists the k-mers in lexicographic order.
func (t *Table) SortedKeys() []string {
	keys := make([]string, 0, len(t.counts))
	for k := range t.counts {
		keys = append(keys, k)
	}
	sortutil.Strings(keys)
	return keys
}

// Range calls fn for each entry in unspecified order until fn returns false.
func (t *Table) Range(fn func(kmer string, count uint64) bool) {
	for k, c := range t.counts {
		if !fn(k, c) {
			return
		}
	}
}

// Map returns a copy of the counts.
func (t *Table) Map() map[string]uint64 {
	out := make(map[string]uint64, len(t.counts))
	for k, c := range t.counts {
		out[k] = c
	}
	return out
}
