// Package alphabet implements the symbol to digit bijection which all
// encodings are built on.
package alphabet

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/basesgo/bases/baseerrors"
	"github.com/pkg/errors"
)

// Kind is the representation of an Alphabet
type Kind int

// Alphabet kinds
const (
	// KindExplicit stores every symbol in order
	KindExplicit Kind = iota
	// KindRange is a contiguous run of codepoints
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindExplicit:
		return "explicit"
	case KindRange:
		return "range"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MinBase is the smallest base an alphabet can have
const MinBase = 2

// Alphabet maps digits 0..Base()-1 to symbols and back.
//
// Alphabets are immutable and safe for concurrent use.
type Alphabet struct {
	kind          Kind
	base          int
	caseSensitive bool
	symbols       []rune       // KindExplicit only
	start         rune         // KindRange only
	lookup        map[rune]int // symbols for KindExplicit, plus case aliases
}

// New makes an explicit alphabet from the symbols in chars.
//
// The symbols must be distinct. If caseSensitive is false then the
// upper and lower case forms of each symbol decode to the same digit and
// no two symbols may share a case form.
func New(chars string, caseSensitive bool) (*Alphabet, error) {
	if !utf8.ValidString(chars) {
		return nil, errors.New("alphabet is not valid UTF-8")
	}
	symbols := []rune(chars)
	if len(symbols) < MinBase {
		return nil, errors.Errorf("alphabet must have at least %d symbols, got %d", MinBase, len(symbols))
	}
	a := &Alphabet{
		kind:          KindExplicit,
		base:          len(symbols),
		caseSensitive: caseSensitive,
		symbols:       symbols,
		lookup:        make(map[rune]int, len(symbols)),
	}
	for i, r := range symbols {
		if j, found := a.lookup[r]; found {
			return nil, errors.Errorf("alphabet has duplicate symbol %q at positions %d and %d", r, j, i)
		}
		a.lookup[r] = i
	}
	if !caseSensitive {
		if err := a.addCaseAliases(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// NewRange makes an alphabet of size codepoints starting at start.
func NewRange(start rune, size int, caseSensitive bool) (*Alphabet, error) {
	if size < MinBase {
		return nil, errors.Errorf("alphabet must have at least %d symbols, got %d", MinBase, size)
	}
	if start < 0 || int64(start)+int64(size)-1 > utf8.MaxRune {
		return nil, errors.Errorf("codepoint range %U+%d is outside Unicode", start, size)
	}
	for r := start; r < start+rune(size); r++ {
		if !utf8.ValidRune(r) {
			return nil, errors.Errorf("codepoint range %U+%d contains invalid codepoint %U", start, size, r)
		}
	}
	a := &Alphabet{
		kind:          KindRange,
		base:          size,
		caseSensitive: caseSensitive,
		start:         start,
		lookup:        map[rune]int{},
	}
	if !caseSensitive {
		if err := a.addCaseAliases(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// MustNew is like New but panics on error. It is intended for
// initialising package level alphabets.
func MustNew(chars string, caseSensitive bool) *Alphabet {
	a, err := New(chars, caseSensitive)
	if err != nil {
		panic(err)
	}
	return a
}

// Kind returns the representation of the alphabet
func (a *Alphabet) Kind() Kind { return a.kind }

// Base returns the number of symbols
func (a *Alphabet) Base() int { return a.base }

// CaseSensitive returns whether decoding distinguishes case
func (a *Alphabet) CaseSensitive() bool { return a.caseSensitive }

// Start returns the first codepoint of a range alphabet, or the first
// symbol of an explicit one.
func (a *Alphabet) Start() rune {
	if a.kind == KindRange {
		return a.start
	}
	return a.symbols[0]
}

// Symbol returns the symbol for digit
func (a *Alphabet) Symbol(digit int) (rune, error) {
	if digit < 0 || digit >= a.base {
		return 0, &baseerrors.InvalidDigitError{Digit: digit, Base: a.base}
	}
	return a.symbol(digit), nil
}

// symbol returns the symbol for a digit known to be in range
func (a *Alphabet) symbol(digit int) rune {
	if a.kind == KindRange {
		return a.start + rune(digit)
	}
	return a.symbols[digit]
}

// Digit returns the digit for symbol r.
//
// The returned *baseerrors.NonAlphabeticCharError has Position -1;
// use Digits to get positions filled in.
func (a *Alphabet) Digit(r rune) (int, error) {
	d, ok := a.digit(r)
	if !ok {
		return 0, &baseerrors.NonAlphabeticCharError{Char: r, Position: -1, Alphabet: a.String()}
	}
	return d, nil
}

func (a *Alphabet) digit(r rune) (int, bool) {
	if a.kind == KindRange && r >= a.start && r < a.start+rune(a.base) {
		return int(r - a.start), true
	}
	d, ok := a.lookup[r]
	return d, ok
}

// Contains returns whether r decodes to a digit
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.digit(r)
	return ok
}

// Digits converts symbols to digits, reporting the position of the
// first symbol not in the alphabet.
func (a *Alphabet) Digits(symbols []rune) ([]int, error) {
	digits := make([]int, len(symbols))
	for i, r := range symbols {
		d, ok := a.digit(r)
		if !ok {
			return nil, &baseerrors.NonAlphabeticCharError{Char: r, Position: i, Alphabet: a.String()}
		}
		digits[i] = d
	}
	return digits, nil
}

// Symbols converts digits to a string
func (a *Alphabet) Symbols(digits []int) (string, error) {
	var b strings.Builder
	b.Grow(len(digits))
	for _, d := range digits {
		r, err := a.Symbol(d)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Runes returns a copy of all the symbols in digit order
func (a *Alphabet) Runes() []rune {
	out := make([]rune, a.base)
	for i := range out {
		out[i] = a.symbol(i)
	}
	return out
}

// String returns all the symbols in digit order
func (a *Alphabet) String() string {
	return string(a.Runes())
}

// GoString returns a description of the alphabet for %#v
func (a *Alphabet) GoString() string {
	if a.kind == KindRange {
		return fmt.Sprintf("alphabet.NewRange(%U, %d, %v)", a.start, a.base, a.caseSensitive)
	}
	return fmt.Sprintf("alphabet.New(%q, %v)", a.String(), a.caseSensitive)
}

// Equal returns whether a and b have the same symbols, in the same
// order, with the same case sensitivity.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.base != b.base || a.caseSensitive != b.caseSensitive {
		return false
	}
	for i := 0; i < a.base; i++ {
		if a.symbol(i) != b.symbol(i) {
			return false
		}
	}
	return true
}

// WithCaseSensitivity returns the alphabet with case sensitivity set to
// caseSensitive. It fails if making the alphabet case insensitive would
// make two symbols decode to the same digit.
func (a *Alphabet) WithCaseSensitivity(caseSensitive bool) (*Alphabet, error) {
	if caseSensitive == a.caseSensitive {
		return a, nil
	}
	if a.kind == KindRange {
		return NewRange(a.start, a.base, caseSensitive)
	}
	return New(string(a.symbols), caseSensitive)
}

// Upper returns the alphabet with every symbol upper cased
func (a *Alphabet) Upper() (*Alphabet, error) {
	return a.convertCase(upperCaser(), "upper")
}

// Lower returns the alphabet with every symbol lower cased
func (a *Alphabet) Lower() (*Alphabet, error) {
	return a.convertCase(lowerCaser(), "lower")
}
