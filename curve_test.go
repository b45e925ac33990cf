// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func pointFromHex(xHex, yHex string) Point {
	x := new(FieldVal).SetHex(xHex)
	y := new(FieldVal).SetHex(yHex)
	return NewAffinePoint(x, y)
}

func TestGeneratorCommitments(t *testing.T) {
	g := Generator()
	wantG := pointFromHex(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	)
	if !g.Equals(wantG) {
		t.Fatalf("generator mismatch:\n%s", spew.Sdump(g))
	}

	want2G := pointFromHex(
		"c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a",
	)
	got2G := g.Double()
	if !got2G.Equals(want2G) {
		t.Fatalf("2G mismatch:\ngot  %s\nwant %s", spew.Sdump(got2G), spew.Sdump(want2G))
	}

	got2GviaAdd := g.Add(g)
	if !got2GviaAdd.Equals(want2G) {
		t.Fatalf("add(G,G) != dbl(G):\n%s\n%s", spew.Sdump(got2GviaAdd), spew.Sdump(want2G))
	}

	want3G := pointFromHex(
		"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
		"388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672",
	)
	got3G := got2G.Add(g)
	if !got3G.Equals(want3G) {
		t.Fatalf("3G mismatch:\ngot  %s\nwant %s", spew.Sdump(got3G), spew.Sdump(want3G))
	}
}

func TestScalarMultByOrder(t *testing.T) {
	g := Generator()
	var n ModNScalar
	n.SetBig(groupOrder)
	// Reduced representative of the group order itself is zero, so mul(G,n)
	// as expressed via a ModNScalar is mul(G,0) = Zero by construction.
	got := g.ScalarMult(&n)
	if !got.IsInfinity() {
		t.Fatalf("mul(G, n) != Zero, got %s", spew.Sdump(got))
	}
}

func TestScalarMultByOrderMinusOne(t *testing.T) {
	g := Generator()
	var nMinus1 ModNScalar
	nMinus1.SetBig(new(big.Int).Sub(groupOrder, big.NewInt(1)))

	got := g.ScalarMult(&nMinus1)
	want := g.Negate()
	if !got.Equals(want) {
		t.Fatalf("mul(G, n-1) != neg(G):\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestPointAddIdentity(t *testing.T) {
	g := Generator()
	if !g.Add(InfinityPoint).Equals(g) {
		t.Fatalf("add(P, Zero) != P")
	}
	if !InfinityPoint.Add(g).Equals(g) {
		t.Fatalf("add(Zero, P) != P")
	}
}

func TestPointAddNegation(t *testing.T) {
	g := Generator()
	sum := g.Add(g.Negate())
	if !sum.IsInfinity() {
		t.Fatalf("add(P, neg(P)) != Zero, got %s", spew.Sdump(sum))
	}
}

func TestPointAddCommutative(t *testing.T) {
	g := Generator()
	twoG := g.Double()
	threeG1 := g.Add(twoG)
	threeG2 := twoG.Add(g)
	if !threeG1.Equals(threeG2) {
		t.Fatalf("add(P,Q) != add(Q,P)")
	}
}

func TestScalarMultIncremental(t *testing.T) {
	g := Generator()
	var acc Point = InfinityPoint
	var k ModNScalar
	for i := int64(1); i <= 5; i++ {
		k.SetInt(uint64(i))
		got := g.ScalarMult(&k)
		acc = acc.Add(g)
		if !got.Equals(acc) {
			t.Fatalf("mul(G,%d) != mul(G,%d)+G, got %s want %s", i, i-1, spew.Sdump(got), spew.Sdump(acc))
		}
	}
}

func TestIsOnCurve(t *testing.T) {
	g := Generator()
	x, y := g.X(), g.Y()
	if !IsOnCurve(&x, &y) {
		t.Fatalf("generator reported not on curve")
	}

	var badY FieldVal
	badY.Set(&y).Add(new(FieldVal).SetInt(1))
	if IsOnCurve(&x, &badY) {
		t.Fatalf("tampered Y reported on curve")
	}
}
