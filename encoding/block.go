package encoding

import (
	"fmt"
	"sort"
	"strings"

	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/lib/bignum"
	"github.com/pkg/errors"
)

// BlockOptions configures a block encoding.
//
// Each block of ByteBlockSize bytes becomes CharBlockSize chars. The
// final block may be shorter only if its size is a key of Partial.
type BlockOptions struct {
	ByteBlockSize int
	CharBlockSize int
	// Partial maps the byte count of a short final block to its char count
	Partial map[int]int
	// ReverseBlocks writes the digits of each block least significant
	// first, as base45 does.
	ReverseBlocks bool
	// SepChar, if not 0, separates char blocks. Every block but the
	// last is followed by it. It must not be in the alphabet.
	SepChar rune
}

func (BlockOptions) kind() Kind { return KindBlock }

type blockParams struct {
	byteBlockSize int
	charBlockSize int
	partial       map[int]int
	partialBytes  map[int]int
	validPartial  []int
	reverse       bool
	sepChar       rune
}

// checkBlockSize checks that nbytes bytes fit in nchars digits of base
// with no spare digit.
func checkBlockSize(base, nbytes, nchars int) error {
	if nbytes <= 0 || nchars <= 0 {
		return errors.Errorf("block size %d:%d must be positive", nbytes, nchars)
	}
	need := bignum.Pow(256, nbytes)
	if bignum.Pow(base, nchars).Cmp(need) < 0 {
		return errors.Errorf("%d chars of base %d can't hold %d bytes", nchars, base, nbytes)
	}
	if bignum.Pow(base, nchars-1).Cmp(need) >= 0 {
		return errors.Errorf("%d bytes need fewer than %d chars of base %d", nbytes, nchars, base)
	}
	return nil
}

func (p *blockParams) init(a *alphabet.Alphabet, o BlockOptions) error {
	if err := checkBlockSize(a.Base(), o.ByteBlockSize, o.CharBlockSize); err != nil {
		return err
	}
	p.byteBlockSize = o.ByteBlockSize
	p.charBlockSize = o.CharBlockSize
	p.reverse = o.ReverseBlocks
	p.sepChar = o.SepChar
	if p.sepChar != 0 && a.Contains(p.sepChar) {
		return errors.Errorf("separator %q is in the alphabet", p.sepChar)
	}
	p.partial = make(map[int]int, len(o.Partial))
	p.partialBytes = make(map[int]int, len(o.Partial))
	p.validPartial = nil

	sizes := make([]int, 0, len(o.Partial))
	for nbytes := range o.Partial {
		sizes = append(sizes, nbytes)
	}
	sort.Ints(sizes)
	prevChars := 0
	for _, nbytes := range sizes {
		nchars := o.Partial[nbytes]
		if nbytes >= p.byteBlockSize || nchars >= p.charBlockSize {
			return errors.Errorf("partial block %d:%d must be smaller than the full block %d:%d", nbytes, nchars, p.byteBlockSize, p.charBlockSize)
		}
		if err := checkBlockSize(a.Base(), nbytes, nchars); err != nil {
			return errors.Wrap(err, "partial block")
		}
		if nchars <= prevChars {
			return errors.Errorf("partial block %d:%d must have more chars than smaller partial blocks", nbytes, nchars)
		}
		prevChars = nchars
		p.partial[nbytes] = nchars
		p.partialBytes[nchars] = nbytes
		p.validPartial = append(p.validPartial, nchars)
	}
	return nil
}

func (p *blockParams) options() BlockOptions {
	partial := make(map[int]int, len(p.partial))
	for k, v := range p.partial {
		partial[k] = v
	}
	return BlockOptions{
		ByteBlockSize: p.byteBlockSize,
		CharBlockSize: p.charBlockSize,
		Partial:       partial,
		ReverseBlocks: p.reverse,
		SepChar:       p.sepChar,
	}
}

func (p *blockParams) validByteLength(n int) bool {
	rem := n % p.byteBlockSize
	if rem == 0 {
		return true
	}
	_, ok := p.partial[rem]
	return ok
}

// unseparatedLen returns the number of chars left when the separators
// are removed from a string of n chars.
func (p *blockParams) unseparatedLen(n int) (int, bool) {
	if p.sepChar == 0 || n == 0 {
		return n, true
	}
	unit := p.charBlockSize + 1
	blocks, rem := n/unit, n%unit
	switch rem {
	case 0:
		// ends with a separator
		return 0, false
	case p.charBlockSize:
		return (blocks + 1) * p.charBlockSize, true
	}
	return blocks*p.charBlockSize + rem, true
}

func (p *blockParams) validCharLength(n int) bool {
	n, ok := p.unseparatedLen(n)
	if !ok {
		return false
	}
	rem := n % p.charBlockSize
	if rem == 0 {
		return true
	}
	_, ok = p.partialBytes[rem]
	return ok
}

func (p *blockParams) decodedLen(n int) int {
	n, _ = p.unseparatedLen(n)
	return n/p.charBlockSize*p.byteBlockSize + p.partialBytes[n%p.charBlockSize]
}

func (p *blockParams) encode(a *alphabet.Alphabet, b []byte) (string, error) {
	var out strings.Builder
	out.Grow((len(b)/p.byteBlockSize + 1) * (p.charBlockSize + 1))
	for i := 0; i < len(b); i += p.byteBlockSize {
		if i > 0 && p.sepChar != 0 {
			out.WriteRune(p.sepChar)
		}
		block := b[i:min(i+p.byteBlockSize, len(b))]
		nchars := p.charBlockSize
		if len(block) < p.byteBlockSize {
			var ok bool
			nchars, ok = p.partial[len(block)]
			if !ok {
				return "", &EncodingError{Reason: fmt.Sprintf("no partial block for %d bytes", len(block))}
			}
		}
		digits, ok := bignum.FromBytes(block).FillDigits(a.Base(), nchars)
		if !ok {
			return "", &EncodingError{Reason: fmt.Sprintf("%d bytes don't fit in %d chars", len(block), nchars)}
		}
		if p.reverse {
			reverseDigits(digits)
		}
		s, err := a.Symbols(digits)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

// stripSeparators removes the separator after each full block but the
// last.
func (p *blockParams) stripSeparators(rs []rune) ([]rune, error) {
	out := make([]rune, 0, len(rs))
	unit := p.charBlockSize + 1
	for i := 0; i < len(rs); i += unit {
		block := rs[i:min(i+unit, len(rs))]
		if len(block) < unit {
			out = append(out, block...)
			break
		}
		switch {
		case block[p.charBlockSize] != p.sepChar:
			return nil, &InvalidCharBlockError{
				Reason:   fmt.Sprintf("missing separator %q at position %d", p.sepChar, i+p.charBlockSize),
				Position: i,
				Size:     p.charBlockSize,
			}
		case i+unit == len(rs):
			return nil, &InvalidCharBlockError{
				Reason:   fmt.Sprintf("separator %q at end of input", p.sepChar),
				Position: i,
				Size:     p.charBlockSize,
			}
		}
		out = append(out, block[:p.charBlockSize]...)
	}
	return out, nil
}

// position maps an offset in the unseparated chars to the input
func (p *blockParams) position(i int) int {
	if p.sepChar == 0 {
		return i
	}
	return i + i/p.charBlockSize
}

func (p *blockParams) decode(a *alphabet.Alphabet, s string) ([]byte, error) {
	rs := []rune(s)
	if p.sepChar != 0 {
		var err error
		rs, err = p.stripSeparators(rs)
		if err != nil {
			return nil, err
		}
	}
	digits, err := a.Digits(rs)
	if err != nil {
		var nerr *NonAlphabeticCharError
		if errors.As(err, &nerr) {
			nerr.Position = p.position(nerr.Position)
		}
		return nil, err
	}
	if rem := len(digits) % p.charBlockSize; rem != 0 {
		if _, ok := p.partialBytes[rem]; !ok {
			return nil, &InvalidCharBlockError{
				Reason:   "invalid final block size",
				Position: p.position(len(digits) - rem),
				Size:     rem,
				Valid:    p.validPartial,
			}
		}
	}
	out := make([]byte, 0, (len(digits)/p.charBlockSize+1)*p.byteBlockSize)
	for i := 0; i < len(digits); i += p.charBlockSize {
		block := digits[i:min(i+p.charBlockSize, len(digits))]
		nbytes := p.byteBlockSize
		if len(block) < p.charBlockSize {
			nbytes = p.partialBytes[len(block)]
		}
		if p.reverse {
			block = append([]int(nil), block...)
			reverseDigits(block)
		}
		decoded, ok := bignum.FromDigits(block, a.Base()).FillBytes(nbytes)
		if !ok {
			return nil, &InvalidCharBlockError{
				Reason:   fmt.Sprintf("value too large for %d bytes", nbytes),
				Position: p.position(i),
				Size:     len(block),
			}
		}
		out = append(out, decoded...)
	}
	return out, nil
}

func reverseDigits(d []int) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}
