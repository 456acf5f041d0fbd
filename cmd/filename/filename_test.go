package filename

import (
	"bytes"
	"testing"

	"github.com/basesgo/bases/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.Root.SetArgs(args)
	cmd.Root.SetOut(&out)
	t.Cleanup(func() {
		cmd.Root.SetArgs(nil)
		cmd.Root.SetOut(nil)
	})
	err := cmd.Root.Execute()
	return out.String(), err
}

func TestFilename(t *testing.T) {
	out, err := execute(t, "filename", "encode", "abc", "")
	require.NoError(t, err)
	assert.Equal(t, "AYWJj\nA\n", out)

	out, err = execute(t, "filename", "decode", "AYWJj", "A")
	require.NoError(t, err)
	assert.Equal(t, "abc\n\n", out)

	_, err = execute(t, "filename", "decode", "Zabc")
	assert.Error(t, err)
}
