package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileFormat represents the dictionary file formats a loader can meet.
type FileFormat int

const (
	FormatWordList FileFormat = iota // UTF-8 text, one entry per line
	FormatSnapshot                   // msgpack snapshot written by WriteSnapshot
)

func (f FileFormat) String() string {
	switch f {
	case FormatWordList:
		return "word list"
	case FormatSnapshot:
		return "snapshot"
	}
	return fmt.Sprintf("FileFormat(%d)", int(f))
}

// snapshotMagic starts every snapshot file.
var snapshotMagic = []byte("SEGDICT\x01")

// maxLineSize bounds a single word-list entry.
const maxLineSize = 1 << 20

// DetectFormat sniffs the leading bytes of a dictionary file.
func DetectFormat(head []byte) FileFormat {
	if bytes.HasPrefix(head, snapshotMagic) {
		return FormatSnapshot
	}
	return FormatWordList
}

// ReadWords reads a word list from r and calls fn for every entry.
// A byte order mark at the start of the input is dropped, surrounding
// whitespace is trimmed and blank lines are skipped. Entries are otherwise
// passed through verbatim. It returns the number of entries read.
func ReadWords(r io.Reader, fn func(word string)) (int, error) {
	decoded := transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	count := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		fn(word)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading word list: %w", err)
	}
	return count, nil
}
