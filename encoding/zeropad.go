package encoding

import (
	"fmt"
	"strings"

	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/lib/bignum"
	"github.com/pkg/errors"
)

// ZeropadOptions configures a zeropad encoding
type ZeropadOptions struct {
	// BlockNChars is the number of characters each byte becomes. The
	// default of 1 keeps leading zero bytes as leading zero digits and
	// converts the rest minimally. Larger values need base^BlockNChars
	// to be at least 256.
	BlockNChars int
}

func (ZeropadOptions) kind() Kind { return KindZeropad }

type zeropadParams struct {
	blockNChars int
}

func (p *zeropadParams) init(a *alphabet.Alphabet, o ZeropadOptions) error {
	p.blockNChars = o.BlockNChars
	if p.blockNChars == 0 {
		p.blockNChars = 1
	}
	if p.blockNChars < 0 {
		return errors.Errorf("block size %d must be positive", o.BlockNChars)
	}
	if p.blockNChars > 1 && bignum.Pow(a.Base(), p.blockNChars).Cmp(bignum.Pow(256, 1)) < 0 {
		return errors.Errorf("%d chars of base %d can't hold a byte", p.blockNChars, a.Base())
	}
	return nil
}

func (p *zeropadParams) options() ZeropadOptions {
	return ZeropadOptions{BlockNChars: p.blockNChars}
}

func (p *zeropadParams) encode(a *alphabet.Alphabet, b []byte) (string, error) {
	if p.blockNChars > 1 {
		digits, ok := bignum.FromBytes(b).FillDigits(a.Base(), len(b)*p.blockNChars)
		if !ok {
			return "", &EncodingError{Reason: fmt.Sprintf("%d bytes don't fit in %d chars", len(b), len(b)*p.blockNChars)}
		}
		return a.Symbols(digits)
	}
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}
	s, err := a.Symbols(bignum.FromBytes(b[zeros:]).Digits(a.Base()))
	if err != nil {
		return "", err
	}
	return strings.Repeat(string(a.Start()), zeros) + s, nil
}

func (p *zeropadParams) decode(a *alphabet.Alphabet, s string) ([]byte, error) {
	rs := []rune(s)
	if p.blockNChars > 1 {
		if extra := len(rs) % p.blockNChars; extra != 0 {
			return nil, &InvalidCharBlockError{
				Reason:   fmt.Sprintf("length %d is not a multiple of %d", len(rs), p.blockNChars),
				Position: len(rs) - extra,
				Size:     extra,
				Valid:    []int{p.blockNChars},
			}
		}
		digits, err := a.Digits(rs)
		if err != nil {
			return nil, err
		}
		n := len(rs) / p.blockNChars
		out, ok := bignum.FromDigits(digits, a.Base()).FillBytes(n)
		if !ok {
			return nil, &InvalidCharBlockError{
				Reason:   fmt.Sprintf("value too large for %d bytes", n),
				Position: 0,
				Size:     len(rs),
			}
		}
		return out, nil
	}
	digits, err := a.Digits(rs)
	if err != nil {
		return nil, err
	}
	zeros := 0
	for zeros < len(digits) && digits[zeros] == 0 {
		zeros++
	}
	rest := bignum.FromDigits(digits[zeros:], a.Base()).Bytes()
	out := make([]byte, zeros, zeros+len(rest))
	return append(out, rest...), nil
}
