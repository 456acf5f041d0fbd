// Package bignum implements the small amount of natural number
// arithmetic needed for radix conversion.
//
// Only multiplication and division by a single word are provided, which
// is all that conversion between base 256 and an arbitrary base needs.
package bignum

// Nat is a natural number stored as little endian 32 bit limbs.
//
// A normalised Nat has no most significant zero limbs, so zero is the
// empty slice.
type Nat []uint32

const limbBits = 32

// norm strips the most significant zero limbs
func (z Nat) norm() Nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// IsZero returns true if z is 0
func (z Nat) IsZero() bool {
	return len(z.norm()) == 0
}

// FromBytes interprets b as a big endian unsigned number
func FromBytes(b []byte) Nat {
	z := make(Nat, (len(b)+3)/4)
	for i := range b {
		shift := uint(8 * (i % 4))
		z[i/4] |= uint32(b[len(b)-1-i]) << shift
	}
	return z.norm()
}

// MulAddSmall returns z*m + a
func (z Nat) MulAddSmall(m, a uint32) Nat {
	out := make(Nat, len(z), len(z)+1)
	carry := uint64(a)
	for i, limb := range z {
		t := uint64(limb)*uint64(m) + carry
		out[i] = uint32(t)
		carry = t >> limbBits
	}
	if carry != 0 {
		out = append(out, uint32(carry))
	}
	return out.norm()
}

// DivModSmall returns the quotient and remainder of z / d.
//
// It panics if d is 0.
func (z Nat) DivModSmall(d uint32) (q Nat, r uint32) {
	if d == 0 {
		panic("bignum: division by zero")
	}
	q = make(Nat, len(z))
	var rem uint64
	for i := len(z) - 1; i >= 0; i-- {
		t := rem<<limbBits | uint64(z[i])
		q[i] = uint32(t / uint64(d))
		rem = t % uint64(d)
	}
	return q.norm(), uint32(rem)
}

// FromDigits builds a number from digits in the given base, most
// significant digit first.
func FromDigits(digits []int, base int) Nat {
	var z Nat
	for _, d := range digits {
		z = z.MulAddSmall(uint32(base), uint32(d))
	}
	return z
}

// Digits returns the minimal big endian representation of z in base.
//
// Zero has no digits.
func (z Nat) Digits(base int) []int {
	var out []int
	var r uint32
	for n := z.norm(); len(n) > 0; {
		n, r = n.DivModSmall(uint32(base))
		out = append(out, int(r))
	}
	reverse(out)
	return out
}

// FillDigits returns exactly n digits of z in base, left padded with
// zeros. ok is false if z needs more than n digits.
func (z Nat) FillDigits(base, n int) (digits []int, ok bool) {
	d := z.Digits(base)
	if len(d) > n {
		return nil, false
	}
	out := make([]int, n-len(d), n)
	return append(out, d...), true
}

// Bytes returns the minimal big endian byte representation of z.
//
// Zero is the empty slice.
func (z Nat) Bytes() []byte {
	z = z.norm()
	out := make([]byte, 0, 4*len(z))
	for i := len(z) - 1; i >= 0; i-- {
		limb := z[i]
		for shift := limbBits - 8; shift >= 0; shift -= 8 {
			out = append(out, byte(limb>>uint(shift)))
		}
	}
	i := 0
	for i < len(out) && out[i] == 0 {
		i++
	}
	return out[i:]
}

// FillBytes returns exactly n big endian bytes of z, left padded with
// zeros. ok is false if z doesn't fit in n bytes.
func (z Nat) FillBytes(n int) (b []byte, ok bool) {
	raw := z.Bytes()
	if len(raw) > n {
		return nil, false
	}
	out := make([]byte, n-len(raw), n)
	return append(out, raw...), true
}

// Pow returns base**exp
func Pow(base, exp int) Nat {
	z := Nat{1}
	for i := 0; i < exp; i++ {
		z = z.MulAddSmall(uint32(base), 0)
	}
	return z
}

// Cmp compares x and y returning -1, 0 or +1
func (z Nat) Cmp(y Nat) int {
	a, b := z.norm(), y.norm()
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
