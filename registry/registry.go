// Package registry keeps named alphabets and encodings.
//
// The process wide tables Alphabets and Encodings are filled with the
// built in multibase style alphabets and encodings at start up.
package registry

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/log"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Errors returned by the tables
var (
	ErrNotFound    = errors.New("not found")
	ErrExists      = errors.New("already registered")
	ErrInvalidName = errors.New("invalid name")
)

// NameRe matches valid names such as "base32" or "base58btc"
var NameRe = regexp.MustCompile(`^base[0-9][a-zA-Z0-9_]*$`)

// Entry is one name and its value
type Entry[T any] struct {
	Name  string
	Value T
}

// Table maps names to values. It is safe for concurrent use.
type Table[T any] struct {
	what  string
	mu    sync.Mutex // held while unregistering several names
	items *cache.Cache
}

// NewTable makes an empty table. what describes the values in errors
// and logs.
func NewTable[T any](what string) *Table[T] {
	return &Table[T]{
		what:  what,
		items: cache.New(cache.NoExpiration, 0),
	}
}

// Register adds value under name. It fails if name is invalid or taken.
func (t *Table[T]) Register(name string, value T) error {
	if !NameRe.MatchString(name) {
		return errors.Wrapf(ErrInvalidName, "%s name %q must match %s", t.what, name, NameRe)
	}
	if err := t.items.Add(name, value, cache.NoExpiration); err != nil {
		return errors.Wrapf(ErrExists, "%s %q", t.what, name)
	}
	log.Debugf(nil, "registered %s %q", t.what, name)
	return nil
}

// Unregister removes names. Nothing is removed if any of them is
// missing.
func (t *Table[T]) Unregister(names ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, name := range names {
		if _, found := t.items.Get(name); !found {
			return errors.Wrapf(ErrNotFound, "%s %q", t.what, name)
		}
	}
	for _, name := range names {
		t.items.Delete(name)
		log.Debugf(nil, "unregistered %s %q", t.what, name)
	}
	return nil
}

// Get returns the value registered under name
func (t *Table[T]) Get(name string) (value T, err error) {
	v, found := t.items.Get(name)
	if !found {
		return value, errors.Wrapf(ErrNotFound, "%s %q", t.what, name)
	}
	return v.(T), nil
}

// Has returns whether name is registered
func (t *Table[T]) Has(name string) bool {
	_, found := t.items.Get(name)
	return found
}

// List returns the entries whose names start with prefix sorted by name
func (t *Table[T]) List(prefix string) []Entry[T] {
	var entries []Entry[T]
	for name, item := range t.items.Items() {
		if strings.HasPrefix(name, prefix) {
			entries = append(entries, Entry[T]{Name: name, Value: item.Object.(T)})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Names returns the names starting with prefix in order
func (t *Table[T]) Names(prefix string) []string {
	entries := t.List(prefix)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Process wide tables
var (
	Alphabets = NewTable[*alphabet.Alphabet]("alphabet")
	Encodings = NewTable[*encoding.Encoding]("encoding")
)

// Alphabet returns the named alphabet from Alphabets
func Alphabet(name string) (*alphabet.Alphabet, error) {
	return Alphabets.Get(name)
}

// Encoding returns the named encoding from Encodings
func Encoding(name string) (*encoding.Encoding, error) {
	return Encodings.Get(name)
}
