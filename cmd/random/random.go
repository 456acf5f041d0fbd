// Package random provides the random command.
package random

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/basesgo/bases/cmd"
	"github.com/basesgo/bases/lib/config"
	"github.com/basesgo/bases/lib/flags"
	"github.com/basesgo/bases/random"
	"github.com/basesgo/bases/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Globals
var (
	count      = 10
	printBytes = false
	isAlphabet = false
)

// Options which are read from the command line then the environment
var optionFlags = []struct {
	name  string
	usage string
}{
	{"seed", "Seed for the random generator"},
	{"min-bytes", "Minimum length of random bytes"},
	{"max-bytes", "Maximum length of random bytes"},
	{"min-chars", "Minimum length of random strings, excluding padding"},
	{"max-chars", "Maximum length of random strings, excluding padding"},
}

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.IntVarP(cmdFlags, &count, "count", "n", count, "Number of values to print")
	flags.BoolVarP(cmdFlags, &printBytes, "bytes", "", printBytes, "Print random bytes valid for the encoding, as hex")
	flags.BoolVarP(cmdFlags, &isAlphabet, "alphabet", "", isAlphabet, "NAME is an alphabet rather than an encoding")
	for _, f := range optionFlags {
		cmdFlags.String(f.name, "", flags.Usage(optionKey(f.name), f.usage))
	}
}

func optionKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

// flagGetter reads options from the flags set on the command line
type flagGetter struct {
	flags *pflag.FlagSet
}

func (g flagGetter) Get(key string) (string, bool) {
	f := g.flags.Lookup(strings.ReplaceAll(key, "_", "-"))
	if f == nil || !f.Changed {
		return "", false
	}
	return f.Value.String(), true
}

var commandDefinition = &cobra.Command{
	Use:   "random NAME",
	Short: `Print random strings valid for the named encoding.`,
	Long: `Print random strings which the encoding called NAME can decode, or
with --bytes random byte strings it can encode, printed as hex.

With --alphabet NAME is an alphabet and the strings use its symbols.

The lengths and the seed come from the flags, then from the
environment variables BASES_SEED, BASES_MIN_BYTES, BASES_MAX_BYTES,
BASES_MIN_CHARS and BASES_MAX_CHARS, then from the defaults. The same
seed always gives the same output.

    $ bases random --count 3 --max-chars 8 base32
`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(1, 1, command, args); err != nil {
			return err
		}
		getter := config.New().
			AddGetter(flagGetter{command.Flags()}).
			AddGetter(config.Env{Prefix: config.EnvPrefix})
		opt, err := random.LoadOptions(getter)
		if err != nil {
			return cmd.UsageError(err)
		}
		return Run(command.OutOrStdout(), args[0], opt, count, printBytes, isAlphabet)
	},
}

// Run prints n random values for the encoding or alphabet called name
func Run(w io.Writer, name string, opt random.Options, n int, asBytes, isAlphabet bool) error {
	g, err := random.New(opt)
	if err != nil {
		return cmd.UsageError(err)
	}
	var values []string
	switch {
	case isAlphabet:
		a, err := registry.Alphabet(name)
		if err != nil {
			return cmd.UsageError(err)
		}
		values = random.Take(g.AlphabetStrings(a), n)
	default:
		enc, err := registry.Encoding(name)
		if err != nil {
			return cmd.UsageError(err)
		}
		if asBytes {
			seq, err := g.Bytes(enc)
			if err != nil {
				return cmd.UsageError(err)
			}
			for _, b := range random.Take(seq, n) {
				values = append(values, hex.EncodeToString(b))
			}
		} else {
			seq, err := g.Strings(enc)
			if err != nil {
				return cmd.UsageError(err)
			}
			values = random.Take(seq, n)
		}
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
