package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/exitcode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	enc, err := (&EncodingFlags{}).Resolve("base45")
	require.NoError(t, err)
	_, decodeErr := enc.Decode("GGW")
	require.Error(t, decodeErr)

	for _, test := range []struct {
		err  error
		want int
	}{
		{nil, exitcode.Success},
		{UsageError(errors.New("bad flag")), exitcode.UsageError},
		{errors.Wrap(UsageError(errors.New("bad flag")), "context"), exitcode.UsageError},
		{errors.New(`unknown command "frob" for "bases"`), exitcode.UsageError},
		{decodeErr, exitcode.CodecError},
		{errors.Wrap(decodeErr, "decoding \"GGW\""), exitcode.CodecError},
		{&encoding.EncodingError{Reason: "no partial block for 3 bytes"}, exitcode.CodecError},
		{errors.New("disk full"), exitcode.UncategorizedError},
	} {
		assert.Equal(t, test.want, ExitCode(test.err), "%v", test.err)
	}
}

func TestCheckArgs(t *testing.T) {
	c := &cobra.Command{Use: "frob"}
	c.SetOut(&bytes.Buffer{})
	assert.NoError(t, CheckArgs(1, 2, c, []string{"a"}))
	assert.NoError(t, CheckArgs(1, -1, c, []string{"a", "b", "c"}))

	err := CheckArgs(1, 2, c, nil)
	assert.ErrorContains(t, err, "command frob needs 1 arguments minimum")
	assert.Equal(t, exitcode.UsageError, ExitCode(err))

	err = CheckArgs(0, 1, c, []string{"a", "b"})
	assert.ErrorContains(t, err, "command frob needs 1 arguments maximum")
	assert.Equal(t, exitcode.UsageError, ExitCode(err))
}

func TestInputs(t *testing.T) {
	got, err := Inputs(strings.NewReader("ignored"), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = Inputs(strings.NewReader("one\ntwo\r\nthree"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, got)

	got, err = Inputs(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMap(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	out, err := Map(context.Background(), in, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}

	_, err = Map(context.Background(), in, func(_ context.Context, i int) (int, error) {
		if i == 42 {
			return 0, errors.New("42 is bad")
		}
		return i, nil
	})
	assert.EqualError(t, err, "42 is bad")

	out, err = Map(nil, []int{}, func(_ context.Context, i int) (int, error) { return i, nil })
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResolve(t *testing.T) {
	for _, test := range []struct {
		name   string
		flags  EncodingFlags
		in     []byte
		want   string
		errStr string
	}{
		{"base32", EncodingFlags{}, []byte("a"), "ME======", ""},
		{"base32", EncodingFlags{NoPad: true}, []byte("a"), "ME", ""},
		{"base32", EncodingFlags{NoPad: true, Lower: true}, []byte("a"), "me", ""},
		{"base32z", EncodingFlags{Pad: true}, []byte("a"), "", "padding"},
		{"base16", EncodingFlags{Lower: true}, []byte{0xab}, "ab", ""},
		{"base16", EncodingFlags{Pad: true}, nil, "", "--pad on base16"},
		{"base32", EncodingFlags{Pad: true, NoPad: true}, nil, "", "can't use --pad and --nopad together"},
		{"base32", EncodingFlags{Lower: true, Upper: true}, nil, "", "can't use --lower and --upper together"},
		{"base99", EncodingFlags{}, nil, "", "base99"},
	} {
		enc, err := test.flags.Resolve(test.name)
		if test.errStr != "" {
			require.Error(t, err, test.name)
			assert.Contains(t, err.Error(), test.errStr)
			assert.Equal(t, exitcode.UsageError, ExitCode(err))
			continue
		}
		require.NoError(t, err, test.name)
		got, err := enc.Encode(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%s %+v", test.name, test.flags)
	}
}

func TestShowVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "bases v"))
	assert.Contains(t, buf.String(), "- go/version: go")
}

func TestVerboseAndQuiet(t *testing.T) {
	defer func() { verbose, quiet = 0, false }()
	verbose, quiet = 1, true
	err := initConfig(Root, nil)
	assert.Equal(t, exitcode.UsageError, ExitCode(err))

	verbose, quiet = 2, false
	require.NoError(t, initConfig(Root, nil))
	quiet, verbose = false, 0
	require.NoError(t, initConfig(Root, nil))
}
