package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}

func TestFromBytesRoundTrip(t *testing.T) {
	for _, test := range []struct {
		in   []byte
		want []byte
	}{
		{nil, []byte{}},
		{[]byte{0}, []byte{}},
		{[]byte{0, 0, 1}, []byte{1}},
		{[]byte{1, 2, 3, 4, 5}, []byte{1, 2, 3, 4, 5}},
		{[]byte{0xff, 0xff, 0xff, 0xff}, []byte{0xff, 0xff, 0xff, 0xff}},
	} {
		got := FromBytes(test.in).Bytes()
		assert.Equal(t, test.want, got, "%x", test.in)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, Nat(nil).IsZero())
	assert.True(t, Nat{0, 0}.IsZero())
	assert.False(t, Nat{0, 1}.IsZero())
}

func TestDigitsAgainstBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, base := range []int{2, 3, 10, 16, 36, 45, 58, 85, 256, 1 << 16, 0x10ffff} {
		for n := 0; n < 40; n++ {
			in := randomBytes(r, n)
			want := new(big.Int).SetBytes(in)
			digits := FromBytes(in).Digits(base)

			got := new(big.Int)
			b := big.NewInt(int64(base))
			for _, d := range digits {
				require.True(t, d >= 0 && d < base)
				got.Mul(got, b)
				got.Add(got, big.NewInt(int64(d)))
			}
			assert.Equal(t, 0, want.Cmp(got), "base %d bytes %x", base, in)
			if len(digits) > 0 {
				assert.NotEqual(t, 0, digits[0], "leading zero digit")
			}
			assert.Equal(t, 0, FromBytes(in).Cmp(FromDigits(digits, base)))
		}
	}
}

func TestDivModSmall(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		in := randomBytes(r, r.Intn(30))
		d := uint32(r.Int31n(1<<30)) + 1
		q, rem := FromBytes(in).DivModSmall(d)

		bq, brem := new(big.Int).QuoRem(new(big.Int).SetBytes(in), big.NewInt(int64(d)), new(big.Int))
		assert.Equal(t, bq.Bytes(), append([]byte{}, q.Bytes()...))
		assert.Equal(t, brem.Uint64(), uint64(rem))
	}
	assert.Panics(t, func() { Nat{1}.DivModSmall(0) })
}

func TestFillBytes(t *testing.T) {
	b, ok := FromBytes([]byte{1, 2}).FillBytes(4)
	require.True(t, ok)
	assert.Equal(t, []byte{0, 0, 1, 2}, b)

	_, ok = FromBytes([]byte{1, 2}).FillBytes(1)
	assert.False(t, ok)

	b, ok = Nat(nil).FillBytes(0)
	require.True(t, ok)
	assert.Equal(t, []byte{}, b)
}

func TestFillDigits(t *testing.T) {
	d, ok := FromBytes([]byte{255}).FillDigits(16, 4)
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 15, 15}, d)

	_, ok = FromBytes([]byte{255}).FillDigits(16, 1)
	assert.False(t, ok)
}

func TestPowCmp(t *testing.T) {
	assert.Equal(t, 0, Pow(256, 2).Cmp(FromBytes([]byte{1, 0, 0})))
	assert.Equal(t, -1, Pow(45, 2).Cmp(Pow(256, 2)))
	assert.Equal(t, 1, Pow(45, 3).Cmp(Pow(256, 2)))
	assert.Equal(t, 0, Pow(7, 0).Cmp(Nat{1}))
}
