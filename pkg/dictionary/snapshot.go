package dictionary

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bastiangx/segdict/pkg/trie"
	"github.com/vmihailenco/msgpack/v5"
)

type snapshotKind struct {
	Kind       string     `msgpack:"kind"`
	Duplicates int        `msgpack:"dups"`
	Trie       *trie.Trie `msgpack:"trie"`
}

type snapshot struct {
	Kinds []snapshotKind `msgpack:"kinds"`
}

// WriteSnapshot writes d in a form ReadSnapshot restores without reading any
// word list.
func (d *Dictionary) WriteSnapshot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(snapshotMagic); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	snap := snapshot{Kinds: make([]snapshotKind, 0, numKinds)}
	for _, k := range Kinds {
		snap.Kinds = append(snap.Kinds, snapshotKind{
			Kind:       k.String(),
			Duplicates: d.stats[k].Duplicates,
			Trie:       d.tries[k],
		})
	}
	if err := msgpack.NewEncoder(bw).Encode(&snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return bw.Flush()
}

// ReadSnapshot restores a Dictionary written by WriteSnapshot. Every kind
// must be present.
func ReadSnapshot(r io.Reader) (*Dictionary, error) {
	head := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, fmt.Errorf("reading snapshot header: %w", err)
	}
	if DetectFormat(head) != FormatSnapshot {
		return nil, fmt.Errorf("not a snapshot: bad header %q", head)
	}

	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	byName := make(map[string]snapshotKind, len(snap.Kinds))
	for _, sk := range snap.Kinds {
		byName[sk.Kind] = sk
	}

	d := &Dictionary{}
	for _, k := range Kinds {
		sk, ok := byName[k.String()]
		if !ok || sk.Trie == nil {
			return nil, fmt.Errorf("snapshot has no %s dictionary", k)
		}
		d.set(k, sk.Trie, KindStats{Duplicates: sk.Duplicates})
	}
	return d, nil
}
