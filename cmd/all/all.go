// Package all imports all the commands
package all

import (
	// Active commands
	_ "github.com/basesgo/bases/cmd"
	_ "github.com/basesgo/bases/cmd/decode"
	_ "github.com/basesgo/bases/cmd/encode"
	_ "github.com/basesgo/bases/cmd/filename"
	_ "github.com/basesgo/bases/cmd/list"
	_ "github.com/basesgo/bases/cmd/random"
	_ "github.com/basesgo/bases/cmd/version"
)
