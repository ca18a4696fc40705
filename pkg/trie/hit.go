package trie

import "fmt"

// Hit is the outcome of one probe into a Trie. It covers the half-open span
// [Begin, End) of the caller's buffer and remembers the node the probe
// stopped at, so the next character can be matched without walking from the
// root again.
//
// A Hit can be a complete word, a prefix of a longer word, both, or neither.
type Hit struct {
	trie   *Trie
	node   int32
	begin  int
	end    int
	match  bool
	prefix bool
}

func unmatched(t *Trie, begin, end int) Hit {
	return Hit{trie: t, node: -1, begin: begin, end: end}
}

// Begin returns the offset of the first character of the span.
func (h Hit) Begin() int { return h.begin }

// End returns the offset just past the last character probed.
func (h Hit) End() int { return h.end }

// Len returns the number of characters in the span.
func (h Hit) Len() int { return h.end - h.begin }

// IsMatch reports whether the span is a complete entry.
func (h Hit) IsMatch() bool { return h.match }

// IsPrefix reports whether the span is a strict prefix of a longer entry.
func (h Hit) IsPrefix() bool { return h.prefix }

// IsUnmatch reports whether the span is neither an entry nor a prefix of one.
func (h Hit) IsUnmatch() bool { return !h.match && !h.prefix }

// Trie returns the trie the hit was produced by, or nil for the zero Hit.
func (h Hit) Trie() *Trie { return h.trie }

// Continue matches length more characters of buf from index, resuming where
// h stopped. Continuing the zero Hit yields an unmatched Hit.
func (h Hit) Continue(buf []rune, index, length int) Hit {
	if h.trie == nil {
		return Hit{node: -1, begin: h.begin, end: index}
	}
	return h.trie.MatchWithHit(buf, index, length, h)
}

func (h Hit) String() string {
	state := "unmatch"
	switch {
	case h.match && h.prefix:
		state = "match|prefix"
	case h.match:
		state = "match"
	case h.prefix:
		state = "prefix"
	}
	return fmt.Sprintf("Hit[%d,%d) %s", h.begin, h.end, state)
}
