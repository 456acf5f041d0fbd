// Package decode provides the decode command.
package decode

import (
	"context"
	"encoding/hex"

	"github.com/basesgo/bases/cmd"
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/flags"
	"github.com/basesgo/bases/lib/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Globals
var (
	encFlags  cmd.EncodingFlags
	hexOutput = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	cmd.AddEncodingFlags(cmdFlags, &encFlags)
	flags.BoolVarP(cmdFlags, &hexOutput, "hex", "", hexOutput, "Print the decoded bytes as hex")
}

var commandDefinition = &cobra.Command{
	Use:   "decode NAME [STRING...]",
	Short: `Decode strings with the named encoding.`,
	Long: `Decode each STRING with the encoding called NAME and print the
bytes, each followed by a newline, in the order given.

If no STRING is given then each line of the standard input is decoded.

Case insensitive encodings accept either case. Use --nopad to reject
padded input and --pad to require it.

    $ bases decode base32 NBSWY3DP
    hello
    $ bases decode --hex base58btc 115Q
    0000ff

Invalid input exits with status 2 and describes the problem.
`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(1, -1, command, args); err != nil {
			return err
		}
		enc, err := encFlags.Resolve(args[0])
		if err != nil {
			return err
		}
		inputs, err := cmd.Inputs(command.InOrStdin(), args[1:])
		if err != nil {
			return err
		}
		results, err := Decode(command.Context(), enc, inputs)
		if err != nil {
			return err
		}
		out := command.OutOrStdout()
		for _, b := range results {
			if hexOutput {
				b = []byte(hex.EncodeToString(b))
			}
			if _, err := out.Write(append(b, '\n')); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}
		return nil
	},
}

// Decode decodes every input concurrently. The first error returned
// names the input that caused it.
func Decode(ctx context.Context, enc *encoding.Encoding, inputs []string) ([][]byte, error) {
	log.Debugf(enc, "decoding %d inputs", len(inputs))
	return cmd.Map(ctx, inputs, func(_ context.Context, in string) ([]byte, error) {
		b, err := enc.Decode(in)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %q", in)
		}
		return b, nil
	})
}
