package encoding

import "github.com/basesgo/bases/lib/enum"

// Padding controls whether fixchar encodings emit and accept padding
// characters after a partial final block.
type Padding = enum.Enum[paddingChoices]

// Padding modes
const (
	// PaddingExclude never pads and rejects padding when decoding
	PaddingExclude Padding = iota
	// PaddingInclude always pads and requires padding when decoding
	PaddingInclude
	// PaddingOptional never pads but accepts correct padding when decoding
	PaddingOptional
)

type paddingChoices struct{}

func (paddingChoices) Choices() []string {
	return []string{
		PaddingExclude:  "exclude",
		PaddingInclude:  "include",
		PaddingOptional: "optional",
	}
}

func (paddingChoices) Type() string {
	return "Padding"
}
