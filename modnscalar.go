// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// groupOrder is the order n of the secp256k1 curve's base point subgroup,
// i.e. the modulus of the scalar field Fr.
var groupOrder = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

// groupOrderHalf is (n + 1) / 2, the canonicalization threshold used for
// low-S signature normalization: a scalar s is "low-S" when s < groupOrderHalf.
var groupOrderHalf = new(big.Int).Div(new(big.Int).Add(groupOrder, big.NewInt(1)), big.NewInt(2))

// ModNScalar implements 256-bit scalar arithmetic over the secp256k1 group
// order n, i.e. the scalar field Fr.  All values are held reduced to [0, n)
// and the zero value is the additive identity.  ModNScalar is nominally
// distinct from FieldVal even though both wrap the same numeric kernel; the
// only legitimate crossover between the two fields is reducing a curve point
// x-coordinate from Fp into Fr during signing and verification.
type ModNScalar struct {
	n *big.Int
}

// SetInt sets the scalar to the passed integer reduced modulo the group
// order and returns the scalar to allow chaining.
func (s *ModNScalar) SetInt(i uint64) *ModNScalar {
	s.n = new(big.Int).SetUint64(i)
	s.n.Mod(s.n, groupOrder)
	return s
}

// SetBig sets the scalar to v reduced modulo the group order and returns the
// scalar to allow chaining.
func (s *ModNScalar) SetBig(v *big.Int) *ModNScalar {
	s.n = new(big.Int).Mod(v, groupOrder)
	return s
}

// SetByteSlice sets the scalar to the passed big-endian byte slice,
// interpreted as an unsigned integer reduced modulo the group order, and
// returns whether or not the value overflowed (was >= the group order) prior
// to the reduction.
func (s *ModNScalar) SetByteSlice(b []byte) (overflow bool) {
	v := decodeBigEndian(b)
	overflow = v.Cmp(groupOrder) >= 0
	s.SetBig(v)
	return overflow
}

// SetHex sets the scalar to the passed big-endian hex string reduced modulo
// the group order and returns the scalar to allow chaining.  It panics if
// the string is not valid hex, since it exists only to make hard-coded
// constants convenient to write.
func (s *ModNScalar) SetHex(hexString string) *ModNScalar {
	return s.SetBig(fromHex(hexString))
}

// Set sets the scalar equal to the passed one and returns the scalar to
// allow chaining.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	s.n = new(big.Int).Set(val.intOrZero())
	return s
}

func (s *ModNScalar) intOrZero() *big.Int {
	if s.n == nil {
		s.n = new(big.Int)
	}
	return s.n
}

// Int returns the underlying representative of the scalar as a big integer
// in [0, n).  The returned value must not be mutated by the caller.
func (s *ModNScalar) Int() *big.Int {
	return s.intOrZero()
}

// IsZero returns whether the scalar is equal to zero.
func (s *ModNScalar) IsZero() bool {
	return s.intOrZero().Sign() == 0
}

// Equals returns whether the two scalars are the same.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	return s.intOrZero().Cmp(val.intOrZero()) == 0
}

// IsOverHalfOrder returns whether the scalar exceeds the group order's half
// order, i.e. whether s >= (n+1)/2.  This is the test used to decide whether
// a signature's S value needs negating to reach canonical low-S form.
func (s *ModNScalar) IsOverHalfOrder() bool {
	return s.intOrZero().Cmp(groupOrderHalf) >= 0
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var b [32]byte
	copy(b[:], encodeBigEndianPadded(32, s.intOrZero()))
	return b
}

// PutBytes stores the scalar in the passed 32-byte big-endian array.
func (s *ModNScalar) PutBytes(b *[32]byte) {
	copy(b[:], encodeBigEndianPadded(32, s.intOrZero()))
}

// Add returns s + val (mod n), storing and returning the result in s.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	s.n = modAdd(s.intOrZero(), val.intOrZero(), groupOrder)
	return s
}

// Sub returns s - val (mod n), storing and returning the result in s.
func (s *ModNScalar) Sub(val *ModNScalar) *ModNScalar {
	s.n = modSub(s.intOrZero(), val.intOrZero(), groupOrder)
	return s
}

// Negate returns -s (mod n), storing and returning the result in s.
func (s *ModNScalar) Negate() *ModNScalar {
	s.n = modNeg(s.intOrZero(), groupOrder)
	return s
}

// Mul returns s * val (mod n), storing and returning the result in s.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	s.n = modMul(s.intOrZero(), val.intOrZero(), groupOrder)
	return s
}

// Mul2 sets s = val1 * val2 (mod n) and returns s to allow chaining.
func (s *ModNScalar) Mul2(val1, val2 *ModNScalar) *ModNScalar {
	s.n = modMul(val1.intOrZero(), val2.intOrZero(), groupOrder)
	return s
}

// Square returns s * s (mod n), storing and returning the result in s.
func (s *ModNScalar) Square() *ModNScalar {
	s.n = modSqr(s.intOrZero(), groupOrder)
	return s
}

// Pow sets s = s^exp (mod n) and returns s to allow chaining.
func (s *ModNScalar) Pow(exp *big.Int) *ModNScalar {
	s.n = modPow(s.intOrZero(), exp, groupOrder)
	return s
}

// Inverse sets s = s^-1 (mod n) and returns s to allow chaining.  It panics
// if s is zero.
func (s *ModNScalar) Inverse() *ModNScalar {
	inv, err := modInverse(s.intOrZero(), groupOrder)
	if err != nil {
		panic(err)
	}
	s.n = inv
	return s
}

// Div returns s / val (mod n), storing and returning the result in s.  It
// panics if val is zero.
func (s *ModNScalar) Div(val *ModNScalar) *ModNScalar {
	s.n = modDiv(s.intOrZero(), val.intOrZero(), groupOrder)
	return s
}
