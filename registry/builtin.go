package registry

import (
	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/encoding"
)

type builtinAlphabet struct {
	name          string
	chars         string
	caseSensitive bool
}

var builtinAlphabets = []builtinAlphabet{
	{"base2", "01", true},
	{"base8", "01234567", true},
	{"base10", "0123456789", true},
	{"base16", "0123456789ABCDEF", false},
	{"base32", "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", false},
	{"base32hex", "0123456789ABCDEFGHIJKLMNOPQRSTUV", false},
	{"base32z", "ybndrfg8ejkmcpqxot1uwisza345h769", false},
	{"base36", "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", false},
	{"base45", "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:", false},
	{"base58btc", "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", true},
	{"base58flickr", "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ", true},
	{"base58ripple", "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz", true},
	{"base64", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", true},
	{"base64url", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", true},
}

var rfc4648 = encoding.FixcharOptions{PadChar: '=', Padding: encoding.PaddingInclude}

// builtinEncodings maps each built in encoding to its options. The
// alphabet has the same name.
var builtinEncodings = []struct {
	name string
	opt  encoding.Options
}{
	{"base2", encoding.ZeropadOptions{BlockNChars: 8}},
	{"base8", rfc4648},
	{"base10", encoding.ZeropadOptions{}},
	{"base16", encoding.ZeropadOptions{BlockNChars: 2}},
	{"base32", rfc4648},
	{"base32hex", rfc4648},
	{"base32z", encoding.FixcharOptions{}},
	{"base36", encoding.ZeropadOptions{}},
	{"base45", encoding.BlockOptions{
		ByteBlockSize: 2,
		CharBlockSize: 3,
		Partial:       map[int]int{1: 2},
		ReverseBlocks: true,
	}},
	{"base58btc", encoding.ZeropadOptions{}},
	{"base58flickr", encoding.ZeropadOptions{}},
	{"base58ripple", encoding.ZeropadOptions{}},
	{"base64", rfc4648},
	{"base64url", rfc4648},
}

// RegisterBuiltins adds the built in alphabets and encodings to the
// tables passed in.
func RegisterBuiltins(alphabets *Table[*alphabet.Alphabet], encodings *Table[*encoding.Encoding]) error {
	for _, b := range builtinAlphabets {
		a, err := alphabet.New(b.chars, b.caseSensitive)
		if err != nil {
			return err
		}
		if err := alphabets.Register(b.name, a); err != nil {
			return err
		}
	}
	for _, b := range builtinEncodings {
		a, err := alphabets.Get(b.name)
		if err != nil {
			return err
		}
		e, err := encoding.New(a, b.opt)
		if err != nil {
			return err
		}
		if err := encodings.Register(b.name, e); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := RegisterBuiltins(Alphabets, Encodings); err != nil {
		panic(err)
	}
}
