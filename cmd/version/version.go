// Package version provides the version command.
package version

import (
	"github.com/basesgo/bases/cmd"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "version",
	Short: `Show the version number.`,
	Long: `Show the bases version number, the go version, the build target
OS and architecture, build tags and the type of executable (static or
dynamic).

For example:

    $ bases version
    bases v0.1.0
    - os/type: linux
    - os/arch: amd64
    - go/version: go1.23.0
    - go/linking: static
    - go/tags: none
`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(0, 0, command, args); err != nil {
			return err
		}
		cmd.ShowVersion(command.OutOrStdout())
		return nil
	},
}
