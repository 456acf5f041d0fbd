package cmd

import (
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/flags"
	"github.com/basesgo/bases/lib/log"
	"github.com/basesgo/bases/registry"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// EncodingFlags adjust a registered encoding from the command line
type EncodingFlags struct {
	Pad   bool
	NoPad bool
	Lower bool
	Upper bool
}

// AddEncodingFlags adds the flags for o to flagSet
func AddEncodingFlags(flagSet *pflag.FlagSet, o *EncodingFlags) {
	flags.BoolVarP(flagSet, &o.Pad, "pad", "", false, "Include padding (fixchar encodings only)")
	flags.BoolVarP(flagSet, &o.NoPad, "nopad", "", false, "Exclude padding (fixchar encodings only)")
	flags.BoolVarP(flagSet, &o.Lower, "lower", "", false, "Use the lower case alphabet")
	flags.BoolVarP(flagSet, &o.Upper, "upper", "", false, "Use the upper case alphabet")
}

// Resolve looks up the encoding called name and applies the flags.
//
// Problems with the name or the flags are usage errors.
func (o *EncodingFlags) Resolve(name string) (*encoding.Encoding, error) {
	if o.Pad && o.NoPad {
		return nil, UsageError(errors.New("can't use --pad and --nopad together"))
	}
	if o.Lower && o.Upper {
		return nil, UsageError(errors.New("can't use --lower and --upper together"))
	}
	enc, err := registry.Encoding(name)
	if err != nil {
		return nil, UsageError(err)
	}
	for _, step := range []struct {
		set    bool
		what   string
		change func() (*encoding.Encoding, error)
	}{
		{o.Pad, "pad", func() (*encoding.Encoding, error) { return enc.Pad() }},
		{o.NoPad, "nopad", func() (*encoding.Encoding, error) { return enc.NoPad(false) }},
		{o.Lower, "lower", func() (*encoding.Encoding, error) { return enc.Lower() }},
		{o.Upper, "upper", func() (*encoding.Encoding, error) { return enc.Upper() }},
	} {
		if !step.set {
			continue
		}
		enc, err = step.change()
		if err != nil {
			return nil, UsageError(errors.Wrapf(err, "--%s on %s", step.what, name))
		}
	}
	log.Debugf(name, "using %v", enc)
	return enc, nil
}
