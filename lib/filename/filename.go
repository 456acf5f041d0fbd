// Package filename turns arbitrary names into short tokens which are
// safe to use as file names.
//
// A token is one method symbol followed by the payload in unpadded
// base64url. The method says how the payload was compressed.
package filename

import (
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/registry"
	"github.com/klauspost/compress/huff0"
	"github.com/pkg/errors"
)

// Compression methods, stored as the base64url digit of the first
// symbol
const (
	methodRaw = iota
	methodSCSU
	methodHuff
	methodSCSUHuff
	methodCount
)

// ErrCorrupt is returned for tokens which can't be decoded
var ErrCorrupt = errors.New("corrupt encoded filename")

var body = mustBody()

func mustBody() *encoding.Encoding {
	base64url, err := registry.Encoding("base64url")
	if err != nil {
		panic(err)
	}
	enc, err := base64url.NoPad(false)
	if err != nil {
		panic(err)
	}
	return enc
}

// Encode returns the shortest token for name
func Encode(name string) string {
	method, payload := methodRaw, []byte(name)
	try := func(m int, b []byte) {
		if len(b) < len(payload) {
			method, payload = m, b
		}
	}
	raw := []byte(name)
	if b, ok := huffCompress(raw); ok {
		try(methodHuff, b)
	}
	if s, ok := scsuEncode(name); ok {
		try(methodSCSU, s)
		if b, ok := huffCompress(s); ok {
			try(methodSCSUHuff, b)
		}
	}
	return encodeMethod(method, payload)
}

func encodeMethod(method int, payload []byte) string {
	sym, err := body.Alphabet().Symbol(method)
	if err != nil {
		panic(err)
	}
	s, err := body.Encode(payload)
	if err != nil {
		panic(err)
	}
	return string(sym) + s
}

// Decode reverses Encode
func Decode(token string) (string, error) {
	if token == "" {
		return "", errors.Wrap(ErrCorrupt, "empty")
	}
	first := []rune(token)[0]
	method, err := body.Alphabet().Digit(first)
	if err != nil || method >= methodCount {
		return "", errors.Wrapf(ErrCorrupt, "unknown method %q", first)
	}
	payload, err := body.Decode(token[len(string(first)):])
	if err != nil {
		return "", errors.Wrap(err, "decoding filename payload")
	}
	switch method {
	case methodHuff, methodSCSUHuff:
		payload, err = huffDecompress(payload)
		if err != nil {
			return "", err
		}
	}
	switch method {
	case methodSCSU, methodSCSUHuff:
		name, err := scsuDecode(payload)
		if err != nil {
			return "", errors.Wrapf(ErrCorrupt, "scsu: %v", err)
		}
		return name, nil
	}
	return string(payload), nil
}

// huffCompress returns the Huffman table and data for in. It returns
// false for input huff0 won't compress, such as a single repeated
// byte.
func huffCompress(in []byte) ([]byte, bool) {
	if len(in) == 0 || len(in) > huff0.BlockSizeMax {
		return nil, false
	}
	var s huff0.Scratch
	s.Reuse = huff0.ReusePolicyNone
	out, _, err := huff0.Compress1X(in, &s)
	if err != nil {
		return nil, false
	}
	return append([]byte(nil), out...), true
}

func huffDecompress(in []byte) ([]byte, error) {
	s, remain, err := huff0.ReadTable(in, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "huffman table: %v", err)
	}
	out, err := s.Decompress1X(remain)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "huffman data: %v", err)
	}
	return append([]byte(nil), out...), nil
}
