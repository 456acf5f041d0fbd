// Package filename provides the filename command.
package filename

import (
	"context"
	"fmt"

	"github.com/basesgo/bases/cmd"
	"github.com/basesgo/bases/lib/filename"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	commandDefinition.AddCommand(encodeCommand, decodeCommand)
}

var commandDefinition = &cobra.Command{
	Use:   "filename",
	Short: `Convert names to and from compact file name safe tokens.`,
	Long: `Encode arbitrary names as short tokens using only the base64url
alphabet, choosing whichever of raw, SCSU or Huffman compression is
shortest, and decode them again.

    $ bases filename encode "長い長いＵＮＩＣＯＤＥファイル名"
    $ bases filename decode AYWJj
    abc
`,
}

var encodeCommand = &cobra.Command{
	Use:   "encode NAME...",
	Short: `Encode file names.`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(1, -1, command, args); err != nil {
			return err
		}
		out, err := cmd.Map(command.Context(), args, func(_ context.Context, name string) (string, error) {
			return filename.Encode(name), nil
		})
		if err != nil {
			return err
		}
		for _, s := range out {
			_, _ = fmt.Fprintln(command.OutOrStdout(), s)
		}
		return nil
	},
}

var decodeCommand = &cobra.Command{
	Use:   "decode TOKEN...",
	Short: `Decode file names.`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(1, -1, command, args); err != nil {
			return err
		}
		out, err := cmd.Map(command.Context(), args, func(_ context.Context, token string) (string, error) {
			return filename.Decode(token)
		})
		if err != nil {
			return err
		}
		for _, s := range out {
			_, _ = fmt.Fprintln(command.OutOrStdout(), s)
		}
		return nil
	},
}
