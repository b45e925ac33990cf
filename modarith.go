// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// This file implements the low-level numeric kernel shared by the two prime
// fields used throughout the package: the base field Fp (FieldVal) and the
// scalar field Fr (ModNScalar).  Every operation here assumes its inputs are
// already reduced into [0, m) for the modulus m in play; callers are
// responsible for reducing raw byte-decoded integers before use.
//
// This package intentionally favors math/big over a fixed-width limb
// representation.  The curve is used here in affine coordinates with ordinary
// (non-constant-time) arithmetic, so there is no performance reason to hand
// roll 256-bit limb arithmetic, and math/big keeps the numeric contracts in
// this file easy to audit against the field/group laws they must satisfy.

// decodeBigEndian interprets b as a big-endian unsigned integer.  An empty
// slice decodes to zero.  It never fails.
func decodeBigEndian(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// encodeBigEndian returns the minimal-length big-endian encoding of v.  The
// zero value encodes to a single 0x00 byte.  v must be non-negative.
func encodeBigEndian(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	return v.Bytes()
}

// encodeBigEndianPadded returns the big-endian encoding of v as exactly size
// bytes, zero-extended on the left.  If v does not fit in size bytes, the
// returned value is v mod 256^size (i.e. the low-order size bytes), matching
// the behavior of big.Int.FillBytes for values that fit and truncating
// silently for values that don't, since callers here only ever pass values
// already reduced modulo a field of the matching byte size.
func encodeBigEndianPadded(size int, v *big.Int) []byte {
	buf := make([]byte, size)
	b := v.Bytes()
	if len(b) > size {
		b = b[len(b)-size:]
	}
	copy(buf[size-len(b):], b)
	return buf
}

// bitsLSBFirst returns the bits of v, least-significant first, in the
// shortest representation that round-trips v.  Zero returns an empty slice.
func bitsLSBFirst(v *big.Int) []bool {
	n := v.BitLen()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v.Bit(i) == 1
	}
	return bits
}

// modAdd returns (x + y) mod m.
func modAdd(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	if z.Cmp(m) >= 0 {
		z.Sub(z, m)
	}
	return z
}

// modSub returns (x - y) mod m.
func modSub(x, y, m *big.Int) *big.Int {
	if x.Cmp(y) >= 0 {
		return new(big.Int).Sub(x, y)
	}
	z := new(big.Int).Add(x, m)
	z.Sub(z, y)
	return z
}

// modNeg returns -x mod m.
func modNeg(x, m *big.Int) *big.Int {
	if x.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(m, x)
}

// modMul returns (x * y) mod m.
func modMul(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, m)
}

// modSqr returns (x * x) mod m.
func modSqr(x, m *big.Int) *big.Int {
	return modMul(x, x, m)
}

// modPow returns x^e mod m using left-to-right square-and-multiply over the
// bit decomposition of e.  e must be non-negative.
func modPow(x, e, m *big.Int) *big.Int {
	result := big.NewInt(1)
	if m.Cmp(big.NewInt(1)) == 0 {
		return result.Mod(result, m)
	}
	bits := e.BitLen()
	for i := bits - 1; i >= 0; i-- {
		result = modSqr(result, m)
		if e.Bit(i) == 1 {
			result = modMul(result, x, m)
		}
	}
	return result
}

// extGCD returns (g, u, v) such that g = gcd(a, b) and u*a + v*b = g.  It
// accepts any integers, including negative ones, via the standard iterative
// extended Euclidean algorithm.
func extGCD(a, b *big.Int) (g, u, v *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		newR := new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldR, r = r, newR

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS

		newT := new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
		oldT, t = t, newT
	}
	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// modInverse returns u mod m such that x*u == 1 (mod m), derived from
// extGCD(x, m).  It returns an error satisfying errors.Is(err,
// ErrNotInvertible) when gcd(x, m) != 1 (in particular when x is zero).
func modInverse(x, m *big.Int) (*big.Int, error) {
	g, u, _ := extGCD(x, m)
	if g.CmpAbs(big.NewInt(1)) != 0 {
		return nil, makeError(ErrNotInvertible, "value has no inverse modulo the given modulus")
	}
	u.Mod(u, m)
	if u.Sign() < 0 {
		u.Add(u, m)
	}
	return u, nil
}

// modDiv returns (x * inv(y, m)) mod m.  It panics if y is not invertible
// modulo m, which is a precondition violation for the prime moduli used
// throughout this package (it can only happen when y is zero).
func modDiv(x, y, m *big.Int) *big.Int {
	inv, err := modInverse(y, m)
	if err != nil {
		panic(err)
	}
	return modMul(x, inv, m)
}
