// Package enum provides a small option type which can only take one of
// a fixed set of named values.
package enum

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Enum is an option which can only be one of the Choices.
//
// Suggested implementation is something like this:
//
//	type Choice = enum.Enum[choices]
//
//	const (
//		ChoiceA Choice = iota
//		ChoiceB
//	)
//
//	type choices struct{}
//
//	func (choices) Choices() []string {
//		return []string{
//			ChoiceA: "a",
//			ChoiceB: "b",
//		}
//	}
//
// An Enum satisfies pflag.Value so it can be used directly as a flag.
type Enum[C Choices] byte

// Choices returns the valid choices for this type.
//
// It must work on the zero value.
type Choices interface {
	// Choices returns the valid choices for this type
	Choices() []string
}

type typer interface {
	Type() string
}

// String renders the Enum as a string
func (e Enum[C]) String() string {
	choices := e.Choices()
	if int(e) >= len(choices) {
		return fmt.Sprintf("Unknown(%d)", e)
	}
	return choices[e]
}

// Choices returns the possible values of the Enum.
func (e Enum[C]) Choices() []string {
	var c C
	return c.Choices()
}

// Help returns a comma separated list of all possible states.
func (e Enum[C]) Help() string {
	return strings.Join(e.Choices(), ", ")
}

// Set the Enum entries
func (e *Enum[C]) Set(s string) error {
	for i, choice := range e.Choices() {
		if strings.EqualFold(s, choice) {
			*e = Enum[C](i)
			return nil
		}
	}
	return errors.Errorf("invalid choice %q from: %s", s, e.Help())
}

// Type of the value.
//
// If C has a Type() string method then it will be used instead.
func (e Enum[C]) Type() string {
	var c C
	if do, ok := any(c).(typer); ok {
		return do.Type()
	}
	return strings.Join(e.Choices(), "|")
}

// Scan implements the fmt.Scanner interface
func (e *Enum[C]) Scan(s fmt.ScanState, ch rune) error {
	token, err := s.Token(true, nil)
	if err != nil {
		return err
	}
	return e.Set(string(token))
}

// UnmarshalJSON parses it as a string or an integer
func (e *Enum[C]) UnmarshalJSON(in []byte) error {
	var s string
	if err := json.Unmarshal(in, &s); err == nil {
		return e.Set(s)
	}
	var i int64
	if err := json.Unmarshal(in, &i); err != nil {
		return errors.Wrap(err, "enum must be a string or an integer")
	}
	if choices := e.Choices(); i < 0 || i >= int64(len(choices)) {
		return errors.Errorf("%d is out of range: must be 0..%d", i, len(choices)-1)
	}
	*e = Enum[C](i)
	return nil
}

// MarshalJSON encodes it as string
func (e Enum[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// MarshalYAML encodes it as string
func (e Enum[C]) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}
