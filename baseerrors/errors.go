// Package baseerrors defines the failures reported by alphabets and
// encodings.
//
// Every error returned matches ErrBases with errors.Is, and either
// ErrEncoding or ErrDecoding depending on which direction failed, so
// callers can classify failures without looking at the message. The
// concrete types carry the details and can be retrieved with errors.As.
package baseerrors

import (
	"fmt"
	"strings"
)

// sentinel is an error class which is a member of its parent class
type sentinel struct {
	msg    string
	parent *sentinel
}

func (s *sentinel) Error() string { return s.msg }

// Is reports whether target is one of the enclosing classes
func (s *sentinel) Is(target error) bool {
	for p := s.parent; p != nil; p = p.parent {
		if target == error(p) {
			return true
		}
	}
	return false
}

// Error classes
var (
	ErrBases    error = errBases
	ErrEncoding error = &sentinel{msg: "encoding error", parent: errBases}
	ErrDecoding error = &sentinel{msg: "decoding error", parent: errBases}

	errBases = &sentinel{msg: "bases error"}
)

func isEncoding(target error) bool {
	return target == ErrEncoding || target == ErrBases
}

func isDecoding(target error) bool {
	return target == ErrDecoding || target == ErrBases
}

// EncodingError is returned when an encoding can't encode its input
// because it is misconfigured.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return "encoding error: " + e.Reason
}

// Is matches ErrEncoding and ErrBases
func (e *EncodingError) Is(target error) bool { return isEncoding(target) }

// NonAlphabeticCharError is returned when decoding meets a character
// which isn't in the alphabet.
type NonAlphabeticCharError struct {
	Char     rune
	Position int // offset in runes, -1 if unknown
	Alphabet string
}

func (e *NonAlphabeticCharError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "non-alphabetic character %q", e.Char)
	if e.Position >= 0 {
		fmt.Fprintf(&b, " at position %d", e.Position)
	}
	if e.Alphabet != "" {
		fmt.Fprintf(&b, " for alphabet %q", abbreviate(e.Alphabet))
	}
	return b.String()
}

// Is matches ErrDecoding and ErrBases
func (e *NonAlphabeticCharError) Is(target error) bool { return isDecoding(target) }

// InvalidDigitError is returned when a digit outside the range of the
// alphabet is converted to a symbol. Seeing one means an engine bug.
type InvalidDigitError struct {
	Digit int
	Base  int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %d for base %d", e.Digit, e.Base)
}

// Is matches ErrDecoding and ErrBases
func (e *InvalidDigitError) Is(target error) bool { return isDecoding(target) }

// InvalidByteBlockError is returned when a decoded byte block has an
// unexpected size.
type InvalidByteBlockError struct {
	Got  int
	Want int
}

func (e *InvalidByteBlockError) Error() string {
	return fmt.Sprintf("invalid byte block: got %d bytes, want %d", e.Got, e.Want)
}

// Is matches ErrDecoding and ErrBases
func (e *InvalidByteBlockError) Is(target error) bool { return isDecoding(target) }

// InvalidCharBlockError is returned when the characters being decoded
// don't fit the block structure of the encoding.
type InvalidCharBlockError struct {
	Reason   string
	Position int   // rune offset of the block
	Size     int   // size of the offending block in chars
	Valid    []int // sizes which would have been accepted, if known
}

func (e *InvalidCharBlockError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid char block of %d chars at position %d", e.Size, e.Position)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Valid) > 0 {
		fmt.Fprintf(&b, " (valid sizes %v)", e.Valid)
	}
	return b.String()
}

// Is matches ErrDecoding and ErrBases
func (e *InvalidCharBlockError) Is(target error) bool { return isDecoding(target) }

// PaddingError is returned when padding is absent, unexpected, of the
// wrong length or in the wrong place.
type PaddingError struct {
	Reason   string
	Position int
	Got      int // pad characters found
	Want     int // pad characters expected, -1 if any count is wrong
}

func (e *PaddingError) Error() string {
	msg := fmt.Sprintf("padding error at position %d: %s", e.Position, e.Reason)
	if e.Want >= 0 {
		msg += fmt.Sprintf(" (got %d pad chars, want %d)", e.Got, e.Want)
	}
	return msg
}

// Is matches ErrDecoding and ErrBases
func (e *PaddingError) Is(target error) bool { return isDecoding(target) }

// abbreviate shortens very long alphabets in messages
func abbreviate(s string) string {
	const max = 64
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
