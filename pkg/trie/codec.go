package trie

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrCorrupt is returned when an encoded trie is structurally invalid.
var ErrCorrupt = errors.New("trie: corrupt encoding")

type wireTrie struct {
	Chars []rune  `msgpack:"c"`
	Ends  []bool  `msgpack:"e"`
	First []int32 `msgpack:"f"`
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t *Trie) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(&wireTrie{
		Chars: t.chars,
		Ends:  t.ends,
		First: t.first,
	})
}

// DecodeMsgpack implements msgpack.CustomDecoder. The arena is validated
// before it replaces t, so a decoded Trie never walks out of bounds.
func (t *Trie) DecodeMsgpack(dec *msgpack.Decoder) error {
	var w wireTrie
	if err := dec.Decode(&w); err != nil {
		return err
	}
	words, err := validate(&w)
	if err != nil {
		return err
	}
	t.chars, t.ends, t.first, t.words = w.Chars, w.Ends, w.First, words
	return nil
}

func validate(w *wireTrie) (int, error) {
	n := len(w.Chars)
	if n == 0 || len(w.Ends) != n || len(w.First) != n+1 {
		return 0, fmt.Errorf("%w: %d nodes, %d flags, %d offsets", ErrCorrupt, n, len(w.Ends), len(w.First))
	}
	if w.Ends[0] {
		return 0, fmt.Errorf("%w: root marked as word end", ErrCorrupt)
	}
	if w.First[0] != 1 || w.First[n] != int32(n) {
		return 0, fmt.Errorf("%w: offsets do not span the arena", ErrCorrupt)
	}
	words := 0
	for i := 0; i < n; i++ {
		lo, hi := w.First[i], w.First[i+1]
		if lo <= int32(i) || hi < lo || hi > int32(n) {
			return 0, fmt.Errorf("%w: node %d has children [%d,%d)", ErrCorrupt, i, lo, hi)
		}
		for j := lo + 1; j < hi; j++ {
			if w.Chars[j-1] >= w.Chars[j] {
				return 0, fmt.Errorf("%w: children of node %d are not sorted", ErrCorrupt, i)
			}
		}
		if w.Ends[i] {
			words++
		}
	}
	return words, nil
}
