// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// fieldPrime is the secp256k1 base field prime p = 2^256 - 2^32 - 977.
var fieldPrime = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

// FieldVal implements arithmetic over the secp256k1 base field Fp, backed by
// an arbitrary-precision math/big integer.  All values are held reduced to [0, p) and the zero value is
// the additive identity.  FieldVal is nominally distinct from ModNScalar —
// the two wrap the same kernel but fix different moduli, and the package
// never implicitly converts one into the other.
type FieldVal struct {
	n *big.Int
}

// SetInt sets the field value to the passed integer reduced modulo the field
// prime and returns the field value to allow chaining.
func (f *FieldVal) SetInt(i uint64) *FieldVal {
	f.n = new(big.Int).SetUint64(i)
	f.n.Mod(f.n, fieldPrime)
	return f
}

// SetBig sets the field value to v reduced modulo the field prime and
// returns the field value to allow chaining.
func (f *FieldVal) SetBig(v *big.Int) *FieldVal {
	f.n = new(big.Int).Mod(v, fieldPrime)
	return f
}

// SetByteSlice sets the field value to the passed big-endian byte slice,
// interpreted as an unsigned integer reduced modulo the field prime, and
// returns the field value to allow chaining.
func (f *FieldVal) SetByteSlice(b []byte) *FieldVal {
	return f.SetBig(decodeBigEndian(b))
}

// SetHex sets the field value to the passed big-endian hex string reduced
// modulo the field prime and returns the field value to allow chaining.  It
// panics if the string is not valid hex, since it exists only to make
// hard-coded constants convenient to write.
func (f *FieldVal) SetHex(hexString string) *FieldVal {
	return f.SetBig(fromHex(hexString))
}

// Set sets the field value equal to the passed one and returns the field
// value to allow chaining.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	f.n = new(big.Int).Set(val.intOrZero())
	return f
}

// intOrZero returns the underlying big.Int, initializing it to zero first if
// the FieldVal was declared via its zero value and never otherwise set.
func (f *FieldVal) intOrZero() *big.Int {
	if f.n == nil {
		f.n = new(big.Int)
	}
	return f.n
}

// Int returns the underlying representative of the field value as a big
// integer in [0, p).  The returned value must not be mutated by the caller.
func (f *FieldVal) Int() *big.Int {
	return f.intOrZero()
}

// IsZero returns whether the field value is equal to zero.
func (f *FieldVal) IsZero() bool {
	return f.intOrZero().Sign() == 0
}

// IsOdd returns whether the field value is an odd number.
func (f *FieldVal) IsOdd() bool {
	return f.intOrZero().Bit(0) == 1
}

// Equals returns whether the two field values are the same.
func (f *FieldVal) Equals(val *FieldVal) bool {
	return f.intOrZero().Cmp(val.intOrZero()) == 0
}

// Bytes returns the field value as a 32-byte big-endian array.
func (f *FieldVal) Bytes() [32]byte {
	var b [32]byte
	copy(b[:], encodeBigEndianPadded(32, f.intOrZero()))
	return b
}

// PutBytes stores the field value in the passed 32-byte big-endian array.
func (f *FieldVal) PutBytes(b *[32]byte) {
	copy(b[:], encodeBigEndianPadded(32, f.intOrZero()))
}

// Add returns f + val (mod p), storing and returning the result in f.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	f.n = modAdd(f.intOrZero(), val.intOrZero(), fieldPrime)
	return f
}

// Add2 sets f = val1 + val2 (mod p) and returns f to allow chaining.
func (f *FieldVal) Add2(val1, val2 *FieldVal) *FieldVal {
	f.n = modAdd(val1.intOrZero(), val2.intOrZero(), fieldPrime)
	return f
}

// Sub returns f - val (mod p), storing and returning the result in f.
func (f *FieldVal) Sub(val *FieldVal) *FieldVal {
	f.n = modSub(f.intOrZero(), val.intOrZero(), fieldPrime)
	return f
}

// Sub2 sets f = val1 - val2 (mod p) and returns f to allow chaining.
func (f *FieldVal) Sub2(val1, val2 *FieldVal) *FieldVal {
	f.n = modSub(val1.intOrZero(), val2.intOrZero(), fieldPrime)
	return f
}

// Negate returns -f (mod p), storing and returning the result in f.
func (f *FieldVal) Negate() *FieldVal {
	f.n = modNeg(f.intOrZero(), fieldPrime)
	return f
}

// Mul returns f * val (mod p), storing and returning the result in f.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	f.n = modMul(f.intOrZero(), val.intOrZero(), fieldPrime)
	return f
}

// Mul2 sets f = val1 * val2 (mod p) and returns f to allow chaining.
func (f *FieldVal) Mul2(val1, val2 *FieldVal) *FieldVal {
	f.n = modMul(val1.intOrZero(), val2.intOrZero(), fieldPrime)
	return f
}

// Square returns f * f (mod p), storing and returning the result in f.
func (f *FieldVal) Square() *FieldVal {
	f.n = modSqr(f.intOrZero(), fieldPrime)
	return f
}

// SquareVal sets f = val * val (mod p) and returns f to allow chaining.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	f.n = modSqr(val.intOrZero(), fieldPrime)
	return f
}

// Pow sets f = f^exp (mod p) and returns f to allow chaining.  exp is treated
// as a non-negative integer.
func (f *FieldVal) Pow(exp *big.Int) *FieldVal {
	f.n = modPow(f.intOrZero(), exp, fieldPrime)
	return f
}

// Inverse sets f = f^-1 (mod p) and returns f to allow chaining.  It panics
// if f is zero, which has no multiplicative inverse — callers must not
// invoke this on a value that might be zero without checking first.
func (f *FieldVal) Inverse() *FieldVal {
	inv, err := modInverse(f.intOrZero(), fieldPrime)
	if err != nil {
		panic(err)
	}
	f.n = inv
	return f
}

// Div returns f / val (mod p) (i.e. f * val^-1), storing and returning the
// result in f.  It panics if val is zero.
func (f *FieldVal) Div(val *FieldVal) *FieldVal {
	f.n = modDiv(f.intOrZero(), val.intOrZero(), fieldPrime)
	return f
}
