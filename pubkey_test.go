// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestPubKeySerializeRoundTrip(t *testing.T) {
	g := Generator()
	x, y := g.X(), g.Y()
	pub := NewPublicKey(&x, &y)

	uncompressed := pub.SerializeUncompressed()
	got, err := ParsePubKey(uncompressed)
	if err != nil {
		t.Fatalf("unexpected error parsing uncompressed pubkey: %v", err)
	}
	if !got.IsEqual(pub) {
		t.Fatalf("uncompressed round trip mismatch:\n%s\n%s", spew.Sdump(got), spew.Sdump(pub))
	}

	compressed := pub.SerializeCompressed()
	got2, err := ParsePubKey(compressed)
	if err != nil {
		t.Fatalf("unexpected error parsing compressed pubkey: %v", err)
	}
	if !got2.IsEqual(pub) {
		t.Fatalf("compressed round trip mismatch:\n%s\n%s", spew.Sdump(got2), spew.Sdump(pub))
	}
}

func TestPubKeyParseInvalidLength(t *testing.T) {
	_, err := ParsePubKey(make([]byte, 10))
	if !errors.Is(err, ErrPubKeyInvalidLen) {
		t.Fatalf("expected ErrPubKeyInvalidLen, got %v", err)
	}
}

func TestPubKeyParseInvalidFormat(t *testing.T) {
	buf := make([]byte, PubKeyBytesLenUncompressed)
	buf[0] = 0x05
	_, err := ParsePubKey(buf)
	if !errors.Is(err, ErrPubKeyInvalidFormat) {
		t.Fatalf("expected ErrPubKeyInvalidFormat, got %v", err)
	}
}

func TestPubKeyParseCompressedXTooBig(t *testing.T) {
	buf := make([]byte, PubKeyBytesLenCompressed)
	buf[0] = pubkeyCompressedEven
	xBytes := encodeBigEndianPadded(32, fieldPrime)
	copy(buf[1:], xBytes)
	_, err := ParsePubKey(buf)
	if !errors.Is(err, ErrPubKeyXTooBig) {
		t.Fatalf("expected ErrPubKeyXTooBig, got %v", err)
	}
}

func TestPubKeyParseCompressedNotOnCurve(t *testing.T) {
	buf := make([]byte, PubKeyBytesLenCompressed)
	buf[0] = pubkeyCompressedEven
	// x = 0 gives x^3+7 = 7, which is a quadratic non-residue modulo the
	// field prime, so no curve point has this X coordinate.
	got, err := ParsePubKey(buf)
	if err == nil {
		t.Fatalf("ParsePubKey accepted x = 0, which is not on the curve: %v", got)
	}
	if !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Fatalf("unexpected error kind: %v", err)
	}
}
