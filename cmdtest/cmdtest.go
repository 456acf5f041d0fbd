// Package cmdtest provides end-to-end tests of the bases command.
//
// The tests run the command in a fresh process by executing the test
// binary itself, see TestMain.
package cmdtest

import (
	"github.com/basesgo/bases/cmd"
	_ "github.com/basesgo/bases/cmd/all" // import all commands
)

// main runs the bases command the same way bases.go does
func main() {
	cmd.Main()
}
