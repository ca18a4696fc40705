package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/bastiangx/segdict/internal/logger"
	"github.com/bastiangx/segdict/pkg/trie"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Configuration keys naming extension word lists.
const (
	ExtDictKey      = "ext_dict"
	ExtStopWordsKey = "ext_stop_words"
)

// ErrMissingDictionary is returned when a critical base list cannot be read.
var ErrMissingDictionary = errors.New("dictionary: critical word list missing")

// Source is a property-style configuration lookup.
type Source interface {
	Lookup(key string) (string, bool)
}

// Properties is a Source backed by a plain map.
type Properties map[string]string

// Lookup implements Source.
func (p Properties) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Options controls where a Dictionary is loaded from.
type Options struct {
	// Base holds the base lists (main.dic, surname.dic, ...). Nil selects the
	// lists bundled with the package.
	Base fs.FS
	// Ext is the root extension paths are resolved against. Nil disables
	// extension lists.
	Ext fs.FS
	// Source resolves the extension keys. Nil means no extensions.
	Source Source
	// Snapshot, when set, names a snapshot file to start from instead of the
	// word lists. A missing or invalid snapshot falls back to the word lists.
	Snapshot string
	// Logger receives load-phase messages. Nil selects a default logger.
	Logger *log.Logger
}

// Load builds a Dictionary from opts. The six dictionaries load concurrently;
// the first critical failure is returned and no Dictionary is produced.
func Load(opts Options) (*Dictionary, error) {
	l := newLoader(opts)

	if opts.Snapshot != "" {
		d, err := l.loadSnapshot(opts.Snapshot)
		if err == nil {
			return d, nil
		}
		l.log.Warnf("Snapshot %s unusable, loading word lists: %v", opts.Snapshot, err)
	}

	start := time.Now()
	d := &Dictionary{}
	var g errgroup.Group
	for _, kind := range Kinds {
		g.Go(func() error {
			t, st, err := l.loadKind(kind)
			if err != nil {
				return err
			}
			d.set(kind, t, st)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	l.log.Debugf("Dictionaries loaded in %s", time.Since(start))
	return d, nil
}

type loader struct {
	base   fs.FS
	ext    fs.FS
	source Source
	log    *log.Logger
}

func newLoader(opts Options) *loader {
	l := &loader{
		base:   opts.Base,
		ext:    opts.Ext,
		source: opts.Source,
		log:    opts.Logger,
	}
	if l.base == nil {
		l.base = Bundled()
	}
	if l.log == nil {
		l.log = logger.New("dict")
	}
	return l
}

// loadKind builds the trie for one kind: its base list, then any extensions.
func (l *loader) loadKind(kind Kind) (*trie.Trie, KindStats, error) {
	b := trie.NewBuilder()
	var st KindStats

	if err := l.loadFile(b, l.base, kind.BaseFile(), kind.String()); err != nil {
		if kind.Policy() == Critical {
			return nil, st, fmt.Errorf("%w: %s (%s): %v", ErrMissingDictionary, kind, kind.BaseFile(), err)
		}
		st.FailedFiles++
	} else {
		st.Files++
	}

	for _, name := range l.extFiles(kind.ExtKey()) {
		if err := l.loadFile(b, l.ext, name, "extra "+kind.String()); err != nil {
			st.FailedFiles++
			continue
		}
		st.Files++
	}

	st.Duplicates = b.Duplicates()
	return b.Build(), st, nil
}

// loadFile merges one word list into b. Failures are logged here; the
// caller decides whether they are fatal.
func (l *loader) loadFile(b *trie.Builder, fsys fs.FS, name, label string) error {
	if fsys == nil {
		err := fmt.Errorf("no filesystem for %s", name)
		l.log.Errorf("%s: %s not found: %v", label, name, err)
		return err
	}
	f, err := fsys.Open(name)
	if err != nil {
		l.log.Errorf("%s: %s not found: %v", label, name, err)
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if head, _ := r.Peek(len(snapshotMagic)); DetectFormat(head) != FormatWordList {
		err := fmt.Errorf("%s is a %s, not a word list", name, DetectFormat(head))
		l.log.Warnf("%s: skipping %s: %v", label, name, err)
		return err
	}

	before := b.Duplicates()
	n, err := ReadWords(r, func(word string) {
		b.Insert(word)
	})
	if err != nil {
		l.log.Errorf("%s: %s loading failed: %v", label, name, err)
		return err
	}
	l.log.Infof("Loaded %s: %s (%d words)", label, name, n)
	if dups := b.Duplicates() - before; dups > 0 {
		l.log.Debugf("%s: %s repeated %d known words", label, name, dups)
	}
	return nil
}

func (l *loader) loadSnapshot(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadSnapshot(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	l.log.Infof("Loaded snapshot: %s", path)
	return d, nil
}
