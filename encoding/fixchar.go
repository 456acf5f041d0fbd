package encoding

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/lib/bignum"
	"github.com/pkg/errors"
)

// FixcharOptions configures a fixchar encoding.
//
// The alphabet must have a power of two base no larger than 256. The
// block sizes follow from the base: base32 converts 5 bytes to 8 chars
// and base64 converts 3 bytes to 4 chars.
type FixcharOptions struct {
	// PadChar is the padding character, 0 for none. It must not be in
	// the alphabet.
	PadChar rune
	// Padding needs PadChar to be set unless it is PaddingExclude.
	Padding Padding
}

func (FixcharOptions) kind() Kind { return KindFixchar }

type fixcharParams struct {
	padChar       rune
	padding       Padding
	charBits      int
	byteBlockSize int
	charBlockSize int
	partialChars  []int       // partialChars[r] is the number of chars r bytes encode to
	partialBytes  map[int]int // inverse of partialChars for partial blocks
	validPartial  []int       // sorted keys of partialBytes, for errors
}

func (p *fixcharParams) init(a *alphabet.Alphabet, o FixcharOptions) error {
	base := a.Base()
	if base&(base-1) != 0 || base > 256 {
		return errors.Errorf("base %d must be a power of 2 no larger than 256", base)
	}
	p.padChar = o.PadChar
	p.padding = o.Padding
	if p.padding != PaddingExclude && p.padChar == 0 {
		return errors.Errorf("padding %v needs a pad character", p.padding)
	}
	if p.padChar != 0 && a.Contains(p.padChar) {
		return errors.Errorf("pad character %q is in the alphabet", p.padChar)
	}
	p.charBits = bits.TrailingZeros(uint(base))
	l := lcm(p.charBits, 8)
	p.byteBlockSize = l / 8
	p.charBlockSize = l / p.charBits

	p.partialChars = make([]int, p.byteBlockSize+1)
	p.partialBytes = make(map[int]int, p.byteBlockSize)
	p.validPartial = nil
	for r := 1; r <= p.byteBlockSize; r++ {
		k := (8*r + p.charBits - 1) / p.charBits
		p.partialChars[r] = k
		if r < p.byteBlockSize {
			p.partialBytes[k] = r
			p.validPartial = append(p.validPartial, k)
		}
	}
	return nil
}

func (p *fixcharParams) options() FixcharOptions {
	return FixcharOptions{PadChar: p.padChar, Padding: p.padding}
}

func (p *fixcharParams) validCharLength(n int) bool {
	rem := n % p.charBlockSize
	if rem == 0 {
		return true
	}
	_, ok := p.partialBytes[rem]
	return ok
}

// encode packs the bits of each block of bytes into chars. A partial
// block is shifted left so its bits start at the top of the first char.
func (p *fixcharParams) encode(a *alphabet.Alphabet, b []byte) (string, error) {
	var out strings.Builder
	out.Grow((len(b)/p.byteBlockSize + 1) * p.charBlockSize)
	for i := 0; i < len(b); i += p.byteBlockSize {
		block := b[i:min(i+p.byteBlockSize, len(b))]
		r := len(block)
		k := p.partialChars[r]
		shift := k*p.charBits - 8*r
		digits, ok := bignum.FromBytes(block).MulAddSmall(1<<uint(shift), 0).FillDigits(a.Base(), k)
		if !ok {
			return "", &EncodingError{Reason: fmt.Sprintf("%d bytes don't fit in %d chars", r, k)}
		}
		s, err := a.Symbols(digits)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
		if r < p.byteBlockSize && p.padding == PaddingInclude {
			out.WriteString(strings.Repeat(string(p.padChar), p.charBlockSize-k))
		}
	}
	return out.String(), nil
}

func (p *fixcharParams) decode(a *alphabet.Alphabet, s string) ([]byte, error) {
	rs := []rune(s)

	// Split off trailing padding and check there is none elsewhere
	pads := 0
	if p.padChar != 0 {
		for pads < len(rs) && rs[len(rs)-1-pads] == p.padChar {
			pads++
		}
	}
	body := rs[:len(rs)-pads]
	if p.padChar != 0 {
		for i, r := range body {
			if r == p.padChar {
				return nil, &PaddingError{Reason: "pad character before end of data", Position: i, Want: -1}
			}
		}
	}

	digits, err := a.Digits(body)
	if err != nil {
		return nil, err
	}

	rem := len(body) % p.charBlockSize
	if rem != 0 {
		if _, ok := p.partialBytes[rem]; !ok {
			return nil, &InvalidCharBlockError{
				Reason:   "invalid final block size",
				Position: len(body) - rem,
				Size:     rem,
				Valid:    p.validPartial,
			}
		}
	}
	wantPads := 0
	if rem != 0 {
		wantPads = p.charBlockSize - rem
	}
	switch p.padding {
	case PaddingInclude:
		if pads != wantPads {
			return nil, &PaddingError{Reason: "wrong amount of padding", Position: len(body), Got: pads, Want: wantPads}
		}
	case PaddingOptional:
		if pads != 0 && pads != wantPads {
			return nil, &PaddingError{Reason: "wrong amount of padding", Position: len(body), Got: pads, Want: wantPads}
		}
	default:
		if pads != 0 {
			return nil, &PaddingError{Reason: "padding not allowed", Position: len(body), Got: pads, Want: 0}
		}
	}

	out := make([]byte, 0, (len(digits)/p.charBlockSize+1)*p.byteBlockSize)
	for i := 0; i < len(digits); i += p.charBlockSize {
		block := digits[i:min(i+p.charBlockSize, len(digits))]
		k := len(block)
		r := p.byteBlockSize
		if k < p.charBlockSize {
			r = p.partialBytes[k]
		}
		n := bignum.FromDigits(block, a.Base())
		if shift := k*p.charBits - 8*r; shift > 0 {
			var low uint32
			n, low = n.DivModSmall(1 << uint(shift))
			if low != 0 {
				return nil, &InvalidCharBlockError{
					Reason:   "non-zero trailing bits",
					Position: i,
					Size:     k,
				}
			}
		}
		decoded, ok := n.FillBytes(r)
		if !ok {
			return nil, &InvalidByteBlockError{Got: len(n.Bytes()), Want: r}
		}
		out = append(out, decoded...)
	}
	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
