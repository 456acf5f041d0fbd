package decode

import (
	"context"
	"testing"

	"github.com/basesgo/bases/cmd"
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/exitcode"
	"github.com/basesgo/bases/registry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	ctx := context.Background()
	base58, err := registry.Encoding("base58btc")
	require.NoError(t, err)

	got, err := Decode(ctx, base58, []string{"1", "115Q", "Z"})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0}, {0, 0, 0xff}, {32}}, got)
}

func TestDecodeError(t *testing.T) {
	base58, err := registry.Encoding("base58btc")
	require.NoError(t, err)

	_, err = Decode(context.Background(), base58, []string{"115Q", "10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `decoding "10"`)
	assert.Equal(t, exitcode.CodecError, cmd.ExitCode(err))

	var charErr *encoding.NonAlphabeticCharError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, '0', charErr.Char)
	assert.Equal(t, 1, charErr.Position)
}
