package trie

import (
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Builder collects words and freezes them into a Trie.
// Inserting a word more than once has no effect beyond the first insert.
// A Builder is not safe for concurrent use.
type Builder struct {
	words      *patricia.Trie
	count      int
	duplicates int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		words: patricia.NewTrie(),
	}
}

// Insert adds word verbatim. It returns false if the word is empty or was
// already inserted.
func (b *Builder) Insert(word string) bool {
	if word == "" {
		return false
	}
	if !b.words.Insert(patricia.Prefix(word), struct{}{}) {
		b.duplicates++
		return false
	}
	b.count++
	return true
}

// Len returns the number of distinct words inserted so far.
func (b *Builder) Len() int {
	return b.count
}

// Duplicates returns how many inserts were ignored as repeats.
func (b *Builder) Duplicates() int {
	return b.duplicates
}

// Build freezes the collected words. The builder stays usable and later
// Builds include any words inserted in between.
func (b *Builder) Build() *Trie {
	top := &buildNode{}
	b.words.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		top.insert(string(p))
		return nil
	})
	return freeze(top)
}

type buildNode struct {
	end      bool
	children map[rune]*buildNode
}

func (n *buildNode) insert(word string) {
	for _, r := range word {
		next, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*buildNode)
			}
			next = &buildNode{}
			n.children[r] = next
		}
		n = next
	}
	n.end = true
}

// freeze lays the tree out breadth-first so each node's children are
// contiguous and sorted.
func freeze(top *buildNode) *Trie {
	t := &Trie{
		chars: []rune{0},
		ends:  []bool{false},
	}
	queue := []*buildNode{top}
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		t.first = append(t.first, int32(len(t.chars)))

		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		slices.Sort(keys)

		for _, r := range keys {
			c := n.children[r]
			t.chars = append(t.chars, r)
			t.ends = append(t.ends, c.end)
			if c.end {
				t.words++
			}
			queue = append(queue, c)
		}
	}
	t.first = append(t.first, int32(len(t.chars)))
	return t
}
