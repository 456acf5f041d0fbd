package encoding

import "github.com/basesgo/bases/baseerrors"

// Error classes, see package baseerrors
var (
	ErrBases    = baseerrors.ErrBases
	ErrEncoding = baseerrors.ErrEncoding
	ErrDecoding = baseerrors.ErrDecoding
)

// Concrete errors, see package baseerrors
type (
	EncodingError          = baseerrors.EncodingError
	NonAlphabeticCharError = baseerrors.NonAlphabeticCharError
	InvalidDigitError      = baseerrors.InvalidDigitError
	InvalidByteBlockError  = baseerrors.InvalidByteBlockError
	InvalidCharBlockError  = baseerrors.InvalidCharBlockError
	PaddingError           = baseerrors.PaddingError
)
