// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// curveB is the secp256k1 curve equation constant b in y^2 = x^3 + a*x + b,
// where a = 0 and b = 7.
var curveB = new(FieldVal).SetInt(7)

// Point is an affine point on the secp256k1 curve, or the distinguished
// point at infinity (the group identity).  The zero value of Point is the
// affine point (0, 0), not the point at infinity; use InfinityPoint for the
// identity.  Unlike the Jacobian projective coordinates used by
// some secp256k1 implementations for speed, every Point here is held in
// affine form and every group-law function below operates directly on x, y
// coordinates; this package never represents a point any other way.
type Point struct {
	infinity bool
	x, y     FieldVal
}

// NewAffinePoint returns a Point for the given affine coordinates.  It does
// not check that the coordinates describe a point on the curve — use
// IsOnCurve first when the coordinates come from outside the package.
func NewAffinePoint(x, y *FieldVal) Point {
	return Point{x: *x, y: *y}
}

// InfinityPoint is the point at infinity, the identity element of the
// secp256k1 group under point addition.
var InfinityPoint = Point{infinity: true}

// IsOnCurve returns whether the affine coordinates (x, y) satisfy the
// secp256k1 curve equation y^2 = x^3 + 7 (mod p).
func IsOnCurve(x, y *FieldVal) bool {
	var y2 FieldVal
	y2.SquareVal(y)
	rhs := curveRHS(x)
	return y2.Equals(&rhs)
}

// IsInfinity returns whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// X returns the affine X coordinate of p.  It is meaningless when p is the
// point at infinity.
func (p Point) X() FieldVal {
	return p.x
}

// Y returns the affine Y coordinate of p.  It is meaningless when p is the
// point at infinity.
func (p Point) Y() FieldVal {
	return p.y
}

// Equals returns whether p and q are the same point.
func (p Point) Equals(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equals(&q.x) && p.y.Equals(&q.y)
}

// Negate returns -p.  The point at infinity negates to itself.
func (p Point) Negate() Point {
	if p.infinity {
		return InfinityPoint
	}
	var negY FieldVal
	negY.Set(&p.y).Negate()
	return NewAffinePoint(&p.x, &negY)
}

// Double returns p + p.
//
// λ = (3x² + a) / (2y), with a = 0 for secp256k1
// x₃ = λ² - 2x
// y₃ = λ(x - x₃) - y
func (p Point) Double() Point {
	if p.infinity || p.y.IsZero() {
		return InfinityPoint
	}

	var lambda, x3, y3, tmp FieldVal
	lambda.SquareVal(&p.x).Mul2(&lambda, new(FieldVal).SetInt(3))
	tmp.Set(&p.y).Mul(new(FieldVal).SetInt(2))
	lambda.Div(&tmp)

	x3.SquareVal(&lambda)
	tmp.Set(&p.x).Mul(new(FieldVal).SetInt(2))
	x3.Sub(&tmp)

	y3.Set(&p.x).Sub(&x3).Mul(&lambda)
	y3.Sub(&p.y)

	return NewAffinePoint(&x3, &y3)
}

// Add returns p + q according to the standard short Weierstrass group law:
//
//   - either operand is the identity  => return the other operand
//   - equal x, opposite y             => return the identity
//   - equal x, equal y                => return p.Double()
//   - otherwise: λ = (y1-y2)/(x1-x2), x3 = λ²-x1-x2, y3 = λ(x1-x3)-y1
func (p Point) Add(q Point) Point {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Equals(&q.x) {
		if !p.y.Equals(&q.y) {
			// x1 == x2 and y1 == -y2 (mod p): the sum is the point at
			// infinity per the group law.
			return InfinityPoint
		}
		return p.Double()
	}

	var lambda, x3, y3, tmp FieldVal
	lambda.Set(&p.y).Sub(&q.y)
	tmp.Set(&p.x).Sub(&q.x)
	lambda.Div(&tmp)

	x3.SquareVal(&lambda).Sub(&p.x).Sub(&q.x)

	y3.Set(&p.x).Sub(&x3).Mul(&lambda)
	y3.Sub(&p.y)

	return NewAffinePoint(&x3, &y3)
}

// ScalarMult returns k*p using left-to-right double-and-add over the bit
// decomposition of k, most-significant bit first.  It returns the point at
// infinity when k is zero.
func (p Point) ScalarMult(k *ModNScalar) Point {
	bits := bitsLSBFirst(k.Int())
	result := InfinityPoint
	for i := len(bits) - 1; i >= 0; i-- {
		result = result.Double()
		if bits[i] {
			result = result.Add(p)
		}
	}
	return result
}

// fromHex converts the passed hex string into a big integer pointer and
// panics if there is an error.  This is only used for the hard-coded domain
// constants so that errors in the source are caught immediately, and it must
// only be called for package-level initialization.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// generator is the base point G of the secp256k1 curve group, from [SECG]
// section 2.4.1.
var generator = func() Point {
	x := new(FieldVal).SetHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	y := new(FieldVal).SetHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	return NewAffinePoint(x, y)
}()

// Generator returns the secp256k1 base point G.
func Generator() Point {
	return generator
}

// zeroArray32 zeroes the contents of the passed 32-byte array.  It is used
// to scrub sensitive data such as private keys and nonces from memory as
// soon as they are no longer needed.
func zeroArray32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}
