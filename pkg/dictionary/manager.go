package dictionary

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bastiangx/segdict/pkg/trie"
)

// ErrNotInitialized is returned by lookups made before Initial succeeded.
var ErrNotInitialized = errors.New("dictionary: not initialized, call Initial first")

// Manager owns the process's Dictionary and loads it exactly once.
// Create one at startup, call Initial, and share it with every component
// that needs lookups.
type Manager struct {
	opts Options
	mu   sync.Mutex
	dict atomic.Pointer[Dictionary]
}

// NewManager creates a manager that will load with opts.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts}
}

// Initial loads every dictionary. The first caller does the work while
// concurrent callers block until it finishes; once a load has succeeded
// further calls return immediately. A failed load publishes nothing, so no
// caller ever sees a partly built Dictionary, and the next call retries.
func (m *Manager) Initial() error {
	if m.dict.Load() != nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dict.Load() != nil {
		return nil
	}
	d, err := Load(m.opts)
	if err != nil {
		return err
	}
	m.dict.Store(d)
	return nil
}

// Dictionary returns the loaded Dictionary, or ErrNotInitialized.
func (m *Manager) Dictionary() (*Dictionary, error) {
	d := m.dict.Load()
	if d == nil {
		return nil, ErrNotInitialized
	}
	return d, nil
}

// MatchInMainDict probes the main dictionary.
func (m *Manager) MatchInMainDict(buf []rune, begin, length int) (trie.Hit, error) {
	d, err := m.Dictionary()
	if err != nil {
		return trie.Hit{}, err
	}
	return d.MatchInMainDict(buf, begin, length), nil
}

// MatchInQuantifierDict probes the quantifier dictionary.
func (m *Manager) MatchInQuantifierDict(buf []rune, begin, length int) (trie.Hit, error) {
	d, err := m.Dictionary()
	if err != nil {
		return trie.Hit{}, err
	}
	return d.MatchInQuantifierDict(buf, begin, length), nil
}

// MatchWithHit extends prev by one character.
func (m *Manager) MatchWithHit(buf []rune, index int, prev trie.Hit) (trie.Hit, error) {
	d, err := m.Dictionary()
	if err != nil {
		return trie.Hit{}, err
	}
	return d.MatchWithHit(buf, index, prev), nil
}

// IsStopWord reports whether the span is exactly a stop word.
func (m *Manager) IsStopWord(buf []rune, begin, length int) (bool, error) {
	d, err := m.Dictionary()
	if err != nil {
		return false, err
	}
	return d.IsStopWord(buf, begin, length), nil
}
