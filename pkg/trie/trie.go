// Package trie is the character-keyed prefix tree behind every dictionary.
// A Trie is built once through a Builder and is read-only afterwards, so any
// number of goroutines can match against it without locking.
package trie

import (
	"slices"
)

// root is the handle of the sentinel node in every Trie.
const root int32 = 0

// Trie is a frozen prefix tree stored as a breadth-first arena.
// Node i is reached through the character chars[i]; its children are the
// nodes first[i] through first[i+1]-1, sorted by character.
type Trie struct {
	chars []rune
	ends  []bool
	first []int32
	words int
}

// Len returns the number of nodes, sentinel included.
func (t *Trie) Len() int {
	return len(t.chars)
}

// Words returns the number of complete entries stored in the trie.
func (t *Trie) Words() int {
	return t.words
}

// Match walks length characters of buf starting at begin from the root.
func (t *Trie) Match(buf []rune, begin, length int) Hit {
	return t.walk(root, buf, begin, length, begin)
}

// MatchWithHit walks length characters of buf starting at index, resuming
// from the node prev stopped at instead of the root. The returned Hit keeps
// prev's begin offset.
func (t *Trie) MatchWithHit(buf []rune, index, length int, prev Hit) Hit {
	if prev.trie != t || prev.node < 0 {
		return unmatched(t, prev.begin, index)
	}
	return t.walk(prev.node, buf, index, length, prev.begin)
}

// Lookup matches a whole word from the root.
func (t *Trie) Lookup(word string) Hit {
	buf := []rune(word)
	return t.Match(buf, 0, len(buf))
}

func (t *Trie) walk(node int32, buf []rune, index, length, begin int) Hit {
	if index < 0 || length < 0 || index > len(buf) || length > len(buf)-index {
		return unmatched(t, begin, index)
	}
	for i := index; i < index+length; i++ {
		next := t.child(node, buf[i])
		if next < 0 {
			return unmatched(t, begin, i+1)
		}
		node = next
	}
	return Hit{
		trie:   t,
		node:   node,
		begin:  begin,
		end:    index + length,
		match:  t.ends[node],
		prefix: t.hasChildren(node),
	}
}

func (t *Trie) child(node int32, r rune) int32 {
	lo, hi := t.first[node], t.first[node+1]
	if lo == hi {
		return -1
	}
	if i, ok := slices.BinarySearch(t.chars[lo:hi], r); ok {
		return lo + int32(i)
	}
	return -1
}

func (t *Trie) hasChildren(node int32) bool {
	return t.first[node+1] > t.first[node]
}
