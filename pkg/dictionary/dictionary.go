// Package dictionary loads the segmentation word lists into tries and serves
// the lookups a segmenter makes while it scans text one character at a time.
//
// A Dictionary is built once, by Load or through a Manager, and is read-only
// afterwards; every lookup is safe for concurrent use without locking.
package dictionary

import (
	"github.com/bastiangx/segdict/pkg/trie"
)

// Dictionary holds one frozen trie per Kind.
type Dictionary struct {
	tries [numKinds]*trie.Trie
	stats [numKinds]KindStats
}

// KindStats describes how one dictionary was loaded.
type KindStats struct {
	Kind        Kind
	Words       int
	Nodes       int
	Duplicates  int
	Files       int
	FailedFiles int
}

// MatchInMainDict probes the main dictionary with buf[begin:begin+length].
func (d *Dictionary) MatchInMainDict(buf []rune, begin, length int) trie.Hit {
	return d.tries[Main].Match(buf, begin, length)
}

// MatchInQuantifierDict probes the quantifier dictionary with buf[begin:begin+length].
func (d *Dictionary) MatchInQuantifierDict(buf []rune, begin, length int) trie.Hit {
	return d.tries[Quantifier].Match(buf, begin, length)
}

// MatchWithHit extends prev by the single character buf[index], continuing
// in whichever dictionary produced prev.
func (d *Dictionary) MatchWithHit(buf []rune, index int, prev trie.Hit) trie.Hit {
	return prev.Continue(buf, index, 1)
}

// IsStopWord reports whether buf[begin:begin+length] is exactly a stop word.
// A prefix of a stop word is not one.
func (d *Dictionary) IsStopWord(buf []rune, begin, length int) bool {
	return d.tries[StopWord].Match(buf, begin, length).IsMatch()
}

// Match probes the dictionary of the given kind. Unknown kinds never match.
func (d *Dictionary) Match(kind Kind, buf []rune, begin, length int) trie.Hit {
	t := d.Trie(kind)
	if t == nil {
		return trie.Hit{}
	}
	return t.Match(buf, begin, length)
}

// Trie returns the frozen trie of the given kind, or nil for an unknown kind.
func (d *Dictionary) Trie(kind Kind) *trie.Trie {
	if !kind.valid() {
		return nil
	}
	return d.tries[kind]
}

// Stats returns load statistics for every kind, in Kinds order.
func (d *Dictionary) Stats() []KindStats {
	stats := make([]KindStats, 0, numKinds)
	for _, k := range Kinds {
		stats = append(stats, d.stats[k])
	}
	return stats
}

func (d *Dictionary) set(kind Kind, t *trie.Trie, st KindStats) {
	st.Kind = kind
	st.Words = t.Words()
	st.Nodes = t.Len()
	d.tries[kind] = t
	d.stats[kind] = st
}
