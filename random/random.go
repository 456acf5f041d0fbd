// Package random generates random bytes and strings which are valid
// for a given encoding or alphabet.
//
// Sequences are infinite iter.Seq values. Use Take to collect a fixed
// number of samples.
package random

import (
	"iter"
	"math/rand"
	"sync"

	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/config"
	"github.com/basesgo/bases/lib/log"
	"github.com/pkg/errors"
)

// Options bound the lengths of generated values
type Options struct {
	Seed     int64 `config:"seed"`
	MinBytes int   `config:"min_bytes"`
	MaxBytes int   `config:"max_bytes"`
	MinChars int   `config:"min_chars"`
	MaxChars int   `config:"max_chars"`
}

// DefaultOptions are the options a new default generator starts with
var DefaultOptions = Options{
	MaxBytes: 16,
	MaxChars: 16,
}

// Validate checks the bounds are non-negative and ordered
func (o Options) Validate() error {
	for _, item := range []struct {
		name  string
		value int
	}{
		{"min_bytes", o.MinBytes},
		{"max_bytes", o.MaxBytes},
		{"min_chars", o.MinChars},
		{"max_chars", o.MaxChars},
	} {
		if item.value < 0 {
			return errors.Errorf("value for %s is negative: %d", item.name, item.value)
		}
	}
	if o.MinBytes > o.MaxBytes {
		return errors.Errorf("min_bytes %d is larger than max_bytes %d", o.MinBytes, o.MaxBytes)
	}
	if o.MinChars > o.MaxChars {
		return errors.Errorf("min_chars %d is larger than max_chars %d", o.MinChars, o.MaxChars)
	}
	return nil
}

// LoadOptions reads options from g on top of DefaultOptions
func LoadOptions(g config.Getter) (Options, error) {
	opt := DefaultOptions
	if err := config.Set(g, &opt); err != nil {
		return opt, errors.Wrap(err, "random options")
	}
	return opt, opt.Validate()
}

// Option overrides one option
type Option func(*override)

type override struct {
	opt    Options
	reseed bool
}

// Seed replaces the generator's source with one seeded with seed
func Seed(seed int64) Option {
	return func(o *override) {
		o.opt.Seed = seed
		o.reseed = true
	}
}

// MinBytes sets the minimum length of generated byte strings
func MinBytes(n int) Option { return func(o *override) { o.opt.MinBytes = n } }

// MaxBytes sets the maximum length of generated byte strings
func MaxBytes(n int) Option { return func(o *override) { o.opt.MaxBytes = n } }

// MinChars sets the minimum length of generated strings
func MinChars(n int) Option { return func(o *override) { o.opt.MinChars = n } }

// MaxChars sets the maximum length of generated strings
func MaxChars(n int) Option { return func(o *override) { o.opt.MaxChars = n } }

// Generator produces random values. It is safe for concurrent use.
type Generator struct {
	mu        sync.Mutex
	base      state
	overrides []*state // active With calls, innermost last
}

// state is a set of options and the source drawn from with them
type state struct {
	opt  Options
	rand *rand.Rand
}

// New makes a generator seeded with opt.Seed
func New(opt Options) (*Generator, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		base: state{opt: opt, rand: rand.New(rand.NewSource(opt.Seed))},
	}, nil
}

func mustNew(opt Options) *Generator {
	g, err := New(opt)
	if err != nil {
		panic(err)
	}
	return g
}

var defaultGenerator = mustNew(DefaultOptions)

// Default returns the process wide generator
func Default() *Generator {
	return defaultGenerator
}

// must be called with the lock held
func (g *Generator) current() *state {
	if n := len(g.overrides); n > 0 {
		return g.overrides[n-1]
	}
	return &g.base
}

// Options returns the current options
func (g *Generator) Options() Options {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current().opt
}

// Set applies opts to the current options, which are those of the
// innermost active With if there is one. Nothing changes if the result
// is invalid.
func (g *Generator) Set(opts ...Option) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	next, err := g.current().apply(opts)
	if err != nil {
		return err
	}
	*g.current() = next
	return nil
}

// apply returns s with opts applied, reseeding if a seed is given
func (s state) apply(opts []Option) (state, error) {
	o := override{opt: s.opt}
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.opt.Validate(); err != nil {
		return s, err
	}
	s.opt = o.opt
	if o.reseed {
		s.rand = rand.New(rand.NewSource(o.opt.Seed))
	}
	return s, nil
}

// Reset replaces the current options with opt and reseeds from
// opt.Seed
func (g *Generator) Reset(opt Options) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	*g.current() = state{opt: opt, rand: rand.New(rand.NewSource(opt.Seed))}
	return nil
}

// With runs fn with opts applied on top of the current options. When
// fn returns or panics its override is removed, whatever order
// overlapping calls from other goroutines finish in. Calls nest.
//
// The override applies to the whole generator, not just the calling
// goroutine.
func (g *Generator) With(fn func() error, opts ...Option) error {
	g.mu.Lock()
	next, err := g.current().apply(opts)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	s := &next
	g.overrides = append(g.overrides, s)
	g.mu.Unlock()
	defer g.pop(s)
	return fn()
}

// pop removes the override s
func (g *Generator) pop(s *state) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(g.overrides) - 1; i >= 0; i-- {
		if g.overrides[i] == s {
			g.overrides = append(g.overrides[:i], g.overrides[i+1:]...)
			return
		}
	}
}

// draw is a snapshot of the generator taken when a sequence is made
type draw struct {
	g    *Generator
	rand *rand.Rand
	opt  Options
}

func (g *Generator) snapshot() draw {
	g.mu.Lock()
	defer g.mu.Unlock()
	cur := g.current()
	return draw{g: g, rand: cur.rand, opt: cur.opt}
}

// between returns a uniform int in [lo, hi]
func (d draw) between(lo, hi int) int {
	d.g.mu.Lock()
	defer d.g.mu.Unlock()
	return lo + d.rand.Intn(hi-lo+1)
}

func (d draw) choice(xs []int) int {
	return xs[d.between(0, len(xs)-1)]
}

func (d draw) fill(b []byte) {
	d.g.mu.Lock()
	defer d.g.mu.Unlock()
	_, _ = d.rand.Read(b)
}

func (d draw) bytes(n int) []byte {
	b := make([]byte, n)
	d.fill(b)
	return b
}

func validLengths(lo, hi int, valid func(int) bool) []int {
	var out []int
	for n := lo; n <= hi; n++ {
		if valid(n) {
			out = append(out, n)
		}
	}
	return out
}

// RawBytes yields byte strings with lengths between MinBytes and
// MaxBytes.
func (g *Generator) RawBytes() iter.Seq[[]byte] {
	d := g.snapshot()
	return func(yield func([]byte) bool) {
		for {
			if !yield(d.bytes(d.between(d.opt.MinBytes, d.opt.MaxBytes))) {
				return
			}
		}
	}
}

// Bytes yields byte strings which e can encode.
//
// For zeropad encodings a random number of leading zero bytes is
// included. It returns an error if no valid length lies between
// MinBytes and MaxBytes.
func (g *Generator) Bytes(e *encoding.Encoding) (iter.Seq[[]byte], error) {
	d := g.snapshot()
	switch e.Kind() {
	case encoding.KindZeropad:
		return func(yield func([]byte) bool) {
			for {
				n := d.between(d.opt.MinBytes, d.opt.MaxBytes)
				zeros := d.between(0, n)
				b := make([]byte, n)
				if zeros < n {
					d.fill(b[zeros:])
					for b[zeros] == 0 {
						b[zeros] = byte(d.between(1, 255))
					}
				}
				if !yield(b) {
					return
				}
			}
		}, nil
	case encoding.KindBlock:
		lengths := validLengths(d.opt.MinBytes, d.opt.MaxBytes, e.ValidByteLength)
		if len(lengths) == 0 {
			return nil, errors.Errorf("no byte length between %d and %d is valid for %v", d.opt.MinBytes, d.opt.MaxBytes, e)
		}
		log.Debugf(e, "random byte lengths %v", lengths)
		return func(yield func([]byte) bool) {
			for {
				if !yield(d.bytes(d.choice(lengths))) {
					return
				}
			}
		}, nil
	}
	return g.RawBytes(), nil
}

// Strings yields strings which e decodes without error.
//
// Lengths are between MinChars and MaxChars, not counting padding.
// It returns an error if no valid length lies in that range.
func (g *Generator) Strings(e *encoding.Encoding) (iter.Seq[string], error) {
	d := g.snapshot()
	if e.Kind() == encoding.KindZeropad && e.CharBlockSize() == 1 {
		a := e.Alphabet()
		return func(yield func(string) bool) {
			for {
				n := d.between(d.opt.MinChars, d.opt.MaxChars)
				zeros := d.between(0, n)
				digits := make([]int, n)
				for i := zeros; i < n; i++ {
					lo := 0
					if i == zeros {
						lo = 1
					}
					digits[i] = d.between(lo, a.Base()-1)
				}
				if !yield(mustSymbols(a, digits)) {
					return
				}
			}
		}, nil
	}
	// Every other kind is a bijection between valid byte and char
	// lengths, so encoding random bytes gives uniform valid strings.
	lengths := validLengths(d.opt.MinChars, d.opt.MaxChars, e.ValidCharLength)
	if len(lengths) == 0 {
		return nil, errors.Errorf("no string length between %d and %d is valid for %v", d.opt.MinChars, d.opt.MaxChars, e)
	}
	log.Debugf(e, "random string lengths %v", lengths)
	return func(yield func(string) bool) {
		for {
			nbytes, _ := e.DecodedLen(d.choice(lengths))
			s, err := e.Encode(d.bytes(nbytes))
			if err != nil {
				panic(errors.Wrap(err, "encoding random bytes of valid length"))
			}
			if !yield(s) {
				return
			}
		}
	}, nil
}

// AlphabetStrings yields strings of symbols from a
func (g *Generator) AlphabetStrings(a *alphabet.Alphabet) iter.Seq[string] {
	d := g.snapshot()
	return func(yield func(string) bool) {
		for {
			digits := make([]int, d.between(d.opt.MinChars, d.opt.MaxChars))
			for i := range digits {
				digits[i] = d.between(0, a.Base()-1)
			}
			if !yield(mustSymbols(a, digits)) {
				return
			}
		}
	}
}

func mustSymbols(a *alphabet.Alphabet, digits []int) string {
	s, err := a.Symbols(digits)
	if err != nil {
		panic(err)
	}
	return s
}

// Take collects the first n values of seq
func Take[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, n)
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
