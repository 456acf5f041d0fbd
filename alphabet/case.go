package alphabet

import (
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Caser is stateful so these make a fresh one for each use.
func upperCaser() cases.Caser { return cases.Upper(language.Und) }
func lowerCaser() cases.Caser { return cases.Lower(language.Und) }

// mapRune returns the case form of r, and false if that isn't a single
// rune.
func mapRune(c cases.Caser, r rune) (rune, bool) {
	out := []rune(c.String(string(r)))
	if len(out) != 1 {
		return r, false
	}
	return out[0], true
}

// addCaseAliases makes the upper and lower forms of every symbol decode
// to the digit of that symbol.
func (a *Alphabet) addCaseAliases() error {
	casers := []cases.Caser{upperCaser(), lowerCaser()}
	for i := 0; i < a.base; i++ {
		r := a.symbol(i)
		for _, c := range casers {
			v, ok := mapRune(c, r)
			if !ok || v == r {
				continue
			}
			if d, found := a.digit(v); found && d != i {
				return errors.Errorf("symbols %q and %q are the same when case is ignored", a.symbol(d), r)
			}
			a.lookup[v] = i
		}
	}
	return nil
}

// convertCase makes a new explicit alphabet with every symbol mapped
// through c.
func (a *Alphabet) convertCase(c cases.Caser, name string) (*Alphabet, error) {
	out := make([]rune, a.base)
	for i := range out {
		r := a.symbol(i)
		v, ok := mapRune(c, r)
		if !ok {
			return nil, errors.Errorf("symbol %q has no single %s case form", r, name)
		}
		out[i] = v
	}
	b, err := New(string(out), a.caseSensitive)
	if err != nil {
		return nil, errors.Wrapf(err, "can't make %s case alphabet", name)
	}
	return b, nil
}
