// Package encoding converts bytes to and from strings over an alphabet.
//
// There are three kinds of encoding.
//
// Zeropad encodings treat the whole input as one big number. With a
// block size of 1 leading zero bytes are kept as leading zero digits,
// which is how base58 and base36 work. With a larger block size every
// byte becomes exactly that many characters, as in base16.
//
// Fixchar encodings pack bits into characters of a power of two base,
// with optional padding, as in RFC 4648 base32 and base64.
//
// Block encodings convert fixed size blocks of bytes to fixed size
// blocks of characters, with a table of sizes allowed for the final
// block, as in base45.
//
// An Encoding is immutable and safe for concurrent use.
package encoding

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/basesgo/bases/alphabet"
	"github.com/pkg/errors"
)

// Kind is the conversion strategy of an Encoding
type Kind int

// Encoding kinds
const (
	KindZeropad Kind = iota
	KindFixchar
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindZeropad:
		return "zeropad"
	case KindFixchar:
		return "fixchar"
	case KindBlock:
		return "block"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Options configures an Encoding. It is implemented by ZeropadOptions,
// FixcharOptions and BlockOptions only.
type Options interface {
	kind() Kind
}

// Encoding converts between bytes and strings of symbols from its
// alphabet.
type Encoding struct {
	alphabet *alphabet.Alphabet
	kind     Kind
	zeropad  zeropadParams
	fixchar  fixcharParams
	block    blockParams
}

// New makes an Encoding over a using the strategy selected by the
// type of opt.
func New(a *alphabet.Alphabet, opt Options) (*Encoding, error) {
	if a == nil {
		return nil, errors.New("encoding needs an alphabet")
	}
	if opt == nil {
		return nil, errors.New("encoding needs options")
	}
	e := &Encoding{
		alphabet: a,
		kind:     opt.kind(),
	}
	var err error
	switch o := opt.(type) {
	case ZeropadOptions:
		err = e.zeropad.init(a, o)
	case FixcharOptions:
		err = e.fixchar.init(a, o)
	case BlockOptions:
		err = e.block.init(a, o)
	default:
		err = errors.Errorf("unknown encoding options %T", opt)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %v encoding", e.kind)
	}
	return e, nil
}

// Must panics if err is not nil. It is intended for initialising
// package level encodings.
func Must(e *Encoding, err error) *Encoding {
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the alphabet of the encoding
func (e *Encoding) Alphabet() *alphabet.Alphabet { return e.alphabet }

// Kind returns the conversion strategy
func (e *Encoding) Kind() Kind { return e.kind }

// Base returns the size of the alphabet
func (e *Encoding) Base() int { return e.alphabet.Base() }

// CaseSensitive returns whether decoding distinguishes case
func (e *Encoding) CaseSensitive() bool { return e.alphabet.CaseSensitive() }

// ZeroChar returns the symbol for digit 0
func (e *Encoding) ZeroChar() rune { return e.alphabet.Start() }

// Options returns a copy of the options the encoding was made with
func (e *Encoding) Options() Options {
	switch e.kind {
	case KindFixchar:
		return e.fixchar.options()
	case KindBlock:
		return e.block.options()
	}
	return e.zeropad.options()
}

// ByteBlockSize returns the number of bytes in a full block. It is 1
// for zeropad encodings.
func (e *Encoding) ByteBlockSize() int {
	switch e.kind {
	case KindFixchar:
		return e.fixchar.byteBlockSize
	case KindBlock:
		return e.block.byteBlockSize
	}
	return 1
}

// CharBlockSize returns the number of characters in a full block
func (e *Encoding) CharBlockSize() int {
	switch e.kind {
	case KindFixchar:
		return e.fixchar.charBlockSize
	case KindBlock:
		return e.block.charBlockSize
	}
	return e.zeropad.blockNChars
}

// Padding returns the padding mode. It is PaddingExclude for encodings
// other than fixchar.
func (e *Encoding) Padding() Padding {
	if e.kind == KindFixchar {
		return e.fixchar.padding
	}
	return PaddingExclude
}

// PadChar returns the padding character, or 0 if there isn't one
func (e *Encoding) PadChar() rune {
	if e.kind == KindFixchar {
		return e.fixchar.padChar
	}
	return 0
}

// Encode converts b to a string.
//
// It only fails if the encoding can't represent a partial final block
// of the size of b, which returns an *EncodingError.
func (e *Encoding) Encode(b []byte) (string, error) {
	switch e.kind {
	case KindFixchar:
		return e.fixchar.encode(e.alphabet, b)
	case KindBlock:
		return e.block.encode(e.alphabet, b)
	}
	return e.zeropad.encode(e.alphabet, b)
}

// Decode converts s back to bytes.
//
// Errors match ErrDecoding and are one of *NonAlphabeticCharError,
// *InvalidCharBlockError, *PaddingError or, if the engine is faulty,
// *InvalidDigitError or *InvalidByteBlockError.
func (e *Encoding) Decode(s string) ([]byte, error) {
	if err := checkUTF8(e.alphabet, s); err != nil {
		return nil, err
	}
	switch e.kind {
	case KindFixchar:
		return e.fixchar.decode(e.alphabet, s)
	case KindBlock:
		return e.block.decode(e.alphabet, s)
	}
	return e.zeropad.decode(e.alphabet, s)
}

// checkUTF8 rejects invalid UTF-8 before it can be read as U+FFFD,
// which may be a member of a range alphabet.
func checkUTF8(a *alphabet.Alphabet, s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	pos := 0
	for i := 0; i < len(s); pos++ {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return &NonAlphabeticCharError{Char: utf8.RuneError, Position: pos, Alphabet: a.String()}
}

// Canonical decodes s and encodes it again, which normalises case and
// optional padding.
func (e *Encoding) Canonical(s string) (string, error) {
	b, err := e.Decode(s)
	if err != nil {
		return "", err
	}
	return e.Encode(b)
}

// CanonicalBytes encodes b and decodes it again
func (e *Encoding) CanonicalBytes(b []byte) ([]byte, error) {
	s, err := e.Encode(b)
	if err != nil {
		return nil, err
	}
	return e.Decode(s)
}

// ValidByteLength returns whether n bytes can be encoded
func (e *Encoding) ValidByteLength(n int) bool {
	if n < 0 {
		return false
	}
	if e.kind == KindBlock {
		return e.block.validByteLength(n)
	}
	return true
}

// ValidCharLength returns whether n characters, excluding padding, can
// be the length of an encoded string. Block separators are counted.
func (e *Encoding) ValidCharLength(n int) bool {
	if n < 0 {
		return false
	}
	switch e.kind {
	case KindFixchar:
		return e.fixchar.validCharLength(n)
	case KindBlock:
		return e.block.validCharLength(n)
	}
	return n%e.zeropad.blockNChars == 0
}

// DecodedLen returns the number of bytes a string of n characters,
// excluding padding, decodes to. It returns false if n isn't a valid
// length or, for zeropad encodings with a block size of 1, if the
// length depends on the content.
func (e *Encoding) DecodedLen(n int) (int, bool) {
	if !e.ValidCharLength(n) {
		return 0, false
	}
	switch e.kind {
	case KindFixchar:
		p := &e.fixchar
		return n/p.charBlockSize*p.byteBlockSize + n%p.charBlockSize*p.charBits/8, true
	case KindBlock:
		return e.block.decodedLen(n), true
	}
	if e.zeropad.blockNChars == 1 {
		return 0, false
	}
	return n / e.zeropad.blockNChars, true
}

// WithAlphabet returns the encoding using a instead. The alphabet must
// have the same base.
func (e *Encoding) WithAlphabet(a *alphabet.Alphabet) (*Encoding, error) {
	if a == nil || a.Base() != e.Base() {
		return nil, errors.Errorf("replacement alphabet must have base %d", e.Base())
	}
	return New(a, e.Options())
}

// WithCaseSensitivity returns the encoding with the case sensitivity of
// its alphabet changed
func (e *Encoding) WithCaseSensitivity(caseSensitive bool) (*Encoding, error) {
	a, err := e.alphabet.WithCaseSensitivity(caseSensitive)
	if err != nil {
		return nil, err
	}
	return e.WithAlphabet(a)
}

// Upper returns the encoding with an upper case alphabet
func (e *Encoding) Upper() (*Encoding, error) {
	a, err := e.alphabet.Upper()
	if err != nil {
		return nil, err
	}
	return e.WithAlphabet(a)
}

// Lower returns the encoding with a lower case alphabet
func (e *Encoding) Lower() (*Encoding, error) {
	a, err := e.alphabet.Lower()
	if err != nil {
		return nil, err
	}
	return e.WithAlphabet(a)
}

// Pad returns the fixchar encoding with padding included
func (e *Encoding) Pad() (*Encoding, error) {
	return e.withPadding(func(o *FixcharOptions) { o.Padding = PaddingInclude })
}

// NoPad returns the fixchar encoding without padding. If allowOptional
// is set then decoding still accepts correct padding.
func (e *Encoding) NoPad(allowOptional bool) (*Encoding, error) {
	return e.withPadding(func(o *FixcharOptions) {
		if allowOptional {
			o.Padding = PaddingOptional
		} else {
			o.Padding = PaddingExclude
		}
	})
}

// WithPadChar returns the fixchar encoding padding with r
func (e *Encoding) WithPadChar(r rune) (*Encoding, error) {
	return e.withPadding(func(o *FixcharOptions) { o.PadChar = r })
}

func (e *Encoding) withPadding(change func(*FixcharOptions)) (*Encoding, error) {
	if e.kind != KindFixchar {
		return nil, errors.Errorf("padding can't be changed on %v encodings", e.kind)
	}
	o := e.fixchar.options()
	change(&o)
	return New(e.alphabet, o)
}

// String describes the encoding
func (e *Encoding) String() string {
	switch e.kind {
	case KindFixchar:
		return fmt.Sprintf("fixchar(base=%d, block=%d:%d, pad_char=%q, padding=%v)",
			e.Base(), e.fixchar.byteBlockSize, e.fixchar.charBlockSize, e.fixchar.padChar, e.fixchar.padding)
	case KindBlock:
		sep := ""
		if e.block.sepChar != 0 {
			sep = fmt.Sprintf(", sep_char=%q", e.block.sepChar)
		}
		return fmt.Sprintf("block(base=%d, block=%d:%d, partial=%v, reverse=%v%s)",
			e.Base(), e.block.byteBlockSize, e.block.charBlockSize, e.block.partial, e.block.reverse, sep)
	}
	return fmt.Sprintf("zeropad(base=%d, block_nchars=%d)", e.Base(), e.zeropad.blockNChars)
}
