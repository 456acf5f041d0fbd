// Encode and decode data in arbitrary bases
package main

import (
	"github.com/basesgo/bases/cmd"
	_ "github.com/basesgo/bases/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
