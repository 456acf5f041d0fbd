package random

import (
	"strings"
	"testing"

	"github.com/basesgo/bases/alphabet"
	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/config"
	"github.com/basesgo/bases/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 200

func newGenerator(t *testing.T, opts ...Option) *Generator {
	g, err := New(DefaultOptions)
	require.NoError(t, err)
	require.NoError(t, g.Set(opts...))
	return g
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		opt  Options
		want string
	}{
		{DefaultOptions, ""},
		{Options{MinBytes: -1, MaxBytes: 2}, "value for min_bytes is negative: -1"},
		{Options{MaxChars: -3}, "value for max_chars is negative: -3"},
		{Options{MinBytes: 3, MaxBytes: 2}, "min_bytes 3 is larger than max_bytes 2"},
		{Options{MinChars: 5, MaxChars: 4, MaxBytes: 1}, "min_chars 5 is larger than max_chars 4"},
	} {
		err := test.opt.Validate()
		if test.want == "" {
			assert.NoError(t, err)
		} else {
			assert.EqualError(t, err, test.want)
		}
	}
}

func TestLoadOptions(t *testing.T) {
	opt, err := LoadOptions(config.Simple{
		"seed":      "7",
		"min_bytes": "2",
		"max_bytes": "4",
	})
	require.NoError(t, err)
	assert.Equal(t, Options{Seed: 7, MinBytes: 2, MaxBytes: 4, MaxChars: 16}, opt)

	_, err = LoadOptions(config.Simple{"min_chars": "20"})
	assert.EqualError(t, err, "min_chars 20 is larger than max_chars 16")

	_, err = LoadOptions(config.Simple{"max_chars": "many"})
	assert.Error(t, err)
}

func TestSetInvalidKeepsOptions(t *testing.T) {
	g := newGenerator(t, MinBytes(2))
	assert.Error(t, g.Set(MinBytes(20)))
	assert.Equal(t, 2, g.Options().MinBytes)
}

func TestRawBytes(t *testing.T) {
	g := newGenerator(t, MinBytes(3), MaxBytes(5))
	for _, b := range Take(g.RawBytes(), samples) {
		assert.GreaterOrEqual(t, len(b), 3)
		assert.LessOrEqual(t, len(b), 5)
	}
}

func TestSeedRepeatable(t *testing.T) {
	g := newGenerator(t)
	var first, second [][]byte
	require.NoError(t, g.With(func() error {
		first = Take(g.RawBytes(), 10)
		return nil
	}, Seed(42)))
	require.NoError(t, g.With(func() error {
		second = Take(g.RawBytes(), 10)
		return nil
	}, Seed(42)))
	assert.Equal(t, first, second)
}

func TestWithRestores(t *testing.T) {
	g := newGenerator(t)
	before := g.Options()

	err := g.With(func() error {
		assert.Equal(t, 4, g.Options().MaxChars)
		return g.With(func() error {
			assert.Equal(t, 4, g.Options().MaxChars)
			assert.Equal(t, 1, g.Options().MinChars)
			return assert.AnError
		}, MinChars(1))
	}, MaxChars(4))
	assert.Equal(t, assert.AnError, err)
	assert.Equal(t, before, g.Options())

	assert.Panics(t, func() {
		_ = g.With(func() error { panic("boom") }, MaxBytes(1), Seed(3))
	})
	assert.Equal(t, before, g.Options())

	// invalid overrides never run fn
	ran := false
	err = g.With(func() error { ran = true; return nil }, MinBytes(100))
	assert.Error(t, err)
	assert.False(t, ran)
}

func TestWithOverlapping(t *testing.T) {
	g := newGenerator(t)
	before := g.Options()

	// a starts first but finishes before b
	run := func(started, release, done chan struct{}, opts ...Option) {
		go func() {
			defer close(done)
			_ = g.With(func() error {
				close(started)
				<-release
				return nil
			}, opts...)
		}()
	}
	aStarted, aRelease, aDone := make(chan struct{}), make(chan struct{}), make(chan struct{})
	bStarted, bRelease, bDone := make(chan struct{}), make(chan struct{}), make(chan struct{})
	run(aStarted, aRelease, aDone, MaxChars(4))
	<-aStarted
	run(bStarted, bRelease, bDone, MinChars(2))
	<-bStarted
	assert.Equal(t, 4, g.Options().MaxChars)
	assert.Equal(t, 2, g.Options().MinChars)

	close(aRelease)
	<-aDone
	assert.Equal(t, 2, g.Options().MinChars)

	close(bRelease)
	<-bDone
	assert.Equal(t, before, g.Options())
}

func TestSetInsideWith(t *testing.T) {
	g := newGenerator(t)
	before := g.Options()
	require.NoError(t, g.With(func() error {
		require.NoError(t, g.Set(MaxBytes(3)))
		assert.Equal(t, 3, g.Options().MaxBytes)
		return nil
	}, MaxChars(4)))
	assert.Equal(t, before, g.Options())
}

func TestWithRestoresSource(t *testing.T) {
	a := newGenerator(t, Seed(9))
	b := newGenerator(t, Seed(9))
	require.NoError(t, a.With(func() error {
		_ = Take(a.RawBytes(), 5)
		return nil
	}, Seed(1)))
	assert.Equal(t, Take(b.RawBytes(), 5), Take(a.RawBytes(), 5))
}

func TestBytesValid(t *testing.T) {
	g := newGenerator(t, Seed(1))
	for _, entry := range registry.Encodings.List("") {
		t.Run(entry.Name, func(t *testing.T) {
			enc := entry.Value
			seq, err := g.Bytes(enc)
			require.NoError(t, err)
			for _, b := range Take(seq, samples) {
				assert.LessOrEqual(t, len(b), DefaultOptions.MaxBytes)
				assert.True(t, enc.ValidByteLength(len(b)))
				s, err := enc.Encode(b)
				require.NoError(t, err)
				got, err := enc.Decode(s)
				require.NoError(t, err)
				assert.Equal(t, b, got)
			}
		})
	}
}

func TestBytesLeadingZeros(t *testing.T) {
	g := newGenerator(t, Seed(2), MinBytes(1), MaxBytes(4))
	enc, err := registry.Encoding("base58btc")
	require.NoError(t, err)
	seq, err := g.Bytes(enc)
	require.NoError(t, err)
	zeros, nonzero := 0, 0
	for _, b := range Take(seq, samples) {
		if b[0] == 0 {
			zeros++
		} else {
			nonzero++
		}
	}
	assert.NotZero(t, zeros)
	assert.NotZero(t, nonzero)
}

func TestStringsValid(t *testing.T) {
	g := newGenerator(t, Seed(3))
	for _, entry := range registry.Encodings.List("") {
		t.Run(entry.Name, func(t *testing.T) {
			enc := entry.Value
			seq, err := g.Strings(enc)
			require.NoError(t, err)
			for _, s := range Take(seq, samples) {
				data := s
				if pad := enc.PadChar(); pad != 0 {
					data = strings.TrimRight(s, string(pad))
				}
				n := len([]rune(data))
				assert.LessOrEqual(t, n, DefaultOptions.MaxChars)
				assert.True(t, enc.ValidCharLength(n), "%q", s)
				_, err := enc.Decode(s)
				require.NoError(t, err, "%q", s)
				if enc.Kind() != encoding.KindZeropad {
					canon, err := enc.Canonical(s)
					require.NoError(t, err)
					assert.Equal(t, s, canon)
				}
			}
		})
	}
}

func TestStringsSeparated(t *testing.T) {
	a, err := registry.Alphabet("base16")
	require.NoError(t, err)
	enc, err := encoding.New(a, encoding.BlockOptions{ByteBlockSize: 2, CharBlockSize: 4, Partial: map[int]int{1: 2}, SepChar: ' '})
	require.NoError(t, err)
	g := newGenerator(t, Seed(5), MinChars(0), MaxChars(20))
	seq, err := g.Strings(enc)
	require.NoError(t, err)
	for _, s := range Take(seq, samples) {
		assert.LessOrEqual(t, len(s), 20)
		assert.True(t, enc.ValidCharLength(len(s)), "%q", s)
		b, err := enc.Decode(s)
		require.NoError(t, err, "%q", s)
		n, ok := enc.DecodedLen(len(s))
		require.True(t, ok)
		assert.Equal(t, n, len(b), "%q", s)
	}
}

func TestStringsLeadingZeros(t *testing.T) {
	g := newGenerator(t, Seed(4), MinChars(2), MaxChars(6))
	enc, err := registry.Encoding("base58btc")
	require.NoError(t, err)
	seq, err := g.Strings(enc)
	require.NoError(t, err)
	zeros := 0
	for _, s := range Take(seq, samples) {
		if strings.HasPrefix(s, "1") {
			zeros++
		}
		b, err := enc.Decode(s)
		require.NoError(t, err)
		again, err := enc.Encode(b)
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}
	assert.NotZero(t, zeros)
}

func TestNoValidLength(t *testing.T) {
	g := newGenerator(t, MinChars(1), MaxChars(1))
	base45, err := registry.Encoding("base45")
	require.NoError(t, err)
	_, err = g.Strings(base45)
	assert.ErrorContains(t, err, "no string length between 1 and 1 is valid")

	a, err := alphabet.NewRange('!', 85, true)
	require.NoError(t, err)
	base85, err := encoding.New(a, encoding.BlockOptions{ByteBlockSize: 4, CharBlockSize: 5})
	require.NoError(t, err)
	require.NoError(t, g.Set(MinBytes(1), MaxBytes(3)))
	_, err = g.Bytes(base85)
	assert.ErrorContains(t, err, "no byte length between 1 and 3 is valid")

	require.NoError(t, g.Set(MaxBytes(8)))
	seq, err := g.Bytes(base85)
	require.NoError(t, err)
	for _, b := range Take(seq, 20) {
		assert.Contains(t, []int{4, 8}, len(b))
	}
}

func TestAlphabetStrings(t *testing.T) {
	g := newGenerator(t, Seed(5), MinChars(1), MaxChars(8))
	a, err := alphabet.NewRange('ぁ', 86, true)
	require.NoError(t, err)
	for _, s := range Take(g.AlphabetStrings(a), samples) {
		runes := []rune(s)
		assert.GreaterOrEqual(t, len(runes), 1)
		assert.LessOrEqual(t, len(runes), 8)
		for _, r := range runes {
			assert.True(t, a.Contains(r))
		}
	}
}

func TestTake(t *testing.T) {
	g := newGenerator(t)
	assert.Len(t, Take(g.RawBytes(), 0), 0)
	assert.Len(t, Take(g.RawBytes(), -1), 0)
	assert.Len(t, Take(g.RawBytes(), 7), 7)

	// a sequence can be ranged over more than once
	seq := g.AlphabetStrings(alphabet.MustNew("ab", true))
	assert.Len(t, Take(seq, 3), 3)
	assert.Len(t, Take(seq, 3), 3)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, DefaultOptions, Default().Options())
	assert.NotPanics(t, func() { mustNew(DefaultOptions) })
	assert.Panics(t, func() { mustNew(Options{MinChars: 5, MaxChars: 1}) })
}
