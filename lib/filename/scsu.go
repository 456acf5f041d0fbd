package filename

import (
	"unicode/utf8"

	"github.com/dop251/scsu"
)

// scsuEncode compresses name with SCSU. It returns false if name isn't
// valid UTF-8 or can't be encoded.
func scsuEncode(name string) ([]byte, bool) {
	if !utf8.ValidString(name) {
		return nil, false
	}
	b, err := scsu.EncodeStrict(name, nil)
	if err != nil {
		return nil, false
	}
	return b, true
}

func scsuDecode(b []byte) (string, error) {
	return scsu.Decode(b)
}
