// Package encode provides the encode command.
package encode

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/basesgo/bases/cmd"
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/flags"
	"github.com/basesgo/bases/lib/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Globals
var (
	encFlags cmd.EncodingFlags
	hexInput = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	cmd.AddEncodingFlags(cmdFlags, &encFlags)
	flags.BoolVarP(cmdFlags, &hexInput, "hex", "", hexInput, "Read the input as hex instead of text")
}

var commandDefinition = &cobra.Command{
	Use:   "encode NAME [STRING...]",
	Short: `Encode strings with the named encoding.`,
	Long: `Encode each STRING with the encoding called NAME and print the
results one per line, in the order given.

If no STRING is given then each line of the standard input is encoded.

    $ bases encode base32 hello
    NBSWY3DP
    $ bases encode --nopad --lower base32 hello
    nbswy3dp
    $ bases encode --hex base58btc 0000ff
    115Q
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
		results, err := Encode(command.Context(), enc, inputs, hexInput)
		if err != nil {
			return err
		}
		for _, s := range results {
			_, _ = fmt.Fprintln(command.OutOrStdout(), s)
		}
		return nil
	},
}

// Encode encodes every input concurrently. With isHex the inputs are
// hex strings.
func Encode(ctx context.Context, enc *encoding.Encoding, inputs []string, isHex bool) ([]string, error) {
	log.Debugf(enc, "encoding %d inputs", len(inputs))
	return cmd.Map(ctx, inputs, func(_ context.Context, in string) (string, error) {
		b := []byte(in)
		if isHex {
			var err error
			b, err = hex.DecodeString(in)
			if err != nil {
				return "", cmd.UsageError(errors.Wrapf(err, "bad hex %q", in))
			}
		}
		return enc.Encode(b)
	})
}
