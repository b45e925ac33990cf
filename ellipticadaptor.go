// Copyright (c) 2010 The Go Authors. All rights reserved.
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/elliptic"
	"math/big"
	"sync"
)

// KoblitzCurve wraps the standard library's elliptic.CurveParams so that
// this package's curve can be plugged into generic code written against
// crypto/elliptic (crypto/tls, crypto/x509, and similar) that expects an
// elliptic.Curve.  Its methods translate to and from the affine Point type
// that the rest of this package uses internally; it does not add an
// independent implementation of the group law.
type KoblitzCurve struct {
	*elliptic.CurveParams
}

var (
	initOnce    sync.Once
	theCurve    *KoblitzCurve
)

// S256 returns a KoblitzCurve for the secp256k1 curve, suitable for use
// with the standard library's crypto/elliptic-based APIs.
func S256() *KoblitzCurve {
	initOnce.Do(func() {
		theCurve = &KoblitzCurve{
			CurveParams: &elliptic.CurveParams{
				Name:    "secp256k1",
				P:       new(big.Int).Set(fieldPrime),
				N:       new(big.Int).Set(groupOrder),
				B:       big.NewInt(7),
				Gx:      new(big.Int).Set(generator.x.Int()),
				Gy:      new(big.Int).Set(generator.y.Int()),
				BitSize: 256,
			},
		}
	})
	return theCurve
}

func pointFromCoords(x, y *big.Int) Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return InfinityPoint
	}
	fx := new(FieldVal).SetBig(x)
	fy := new(FieldVal).SetBig(y)
	return NewAffinePoint(fx, fy)
}

func coordsFromPoint(p Point) (x, y *big.Int) {
	if p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	px, py := p.X(), p.Y()
	return px.Int(), py.Int()
}

// IsOnCurve returns whether the given affine coordinates satisfy the
// secp256k1 curve equation.  The point at infinity, represented by (0, 0)
// per the conventions of crypto/elliptic, is reported as not on the curve,
// matching the standard library's own curve implementations.
func (curve *KoblitzCurve) IsOnCurve(x, y *big.Int) bool {
	fx := new(FieldVal).SetBig(x)
	fy := new(FieldVal).SetBig(y)
	return IsOnCurve(fx, fy)
}

// Add returns the sum of (x1,y1) and (x2,y2).
func (curve *KoblitzCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p := pointFromCoords(x1, y1)
	q := pointFromCoords(x2, y2)
	x, y := coordsFromPoint(p.Add(q))
	return x, y
}

// Double returns 2*(x1,y1).
func (curve *KoblitzCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p := pointFromCoords(x1, y1)
	x, y := coordsFromPoint(p.Double())
	return x, y
}

// ScalarMult returns k*(x1,y1), where k is a big-endian integer.
func (curve *KoblitzCurve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	p := pointFromCoords(x1, y1)
	var scalar ModNScalar
	scalar.SetByteSlice(k)
	x, y := coordsFromPoint(p.ScalarMult(&scalar))
	return x, y
}

// ScalarBaseMult returns k*G, where k is a big-endian integer.
func (curve *KoblitzCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	var scalar ModNScalar
	scalar.SetByteSlice(k)
	x, y := coordsFromPoint(generator.ScalarMult(&scalar))
	return x, y
}
