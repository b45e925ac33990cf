// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"testing"

	sha256 "github.com/minio/sha256-simd"
)

// secRandHex and signRandHex are the literal 32-byte private-key and
// signing-nonce inputs used throughout this file.
const (
	secRandHex  = "83ecb3984a4f9ff03e84d5f9c0d7f888a81833643047acc58eb6431e01d9bac8"
	signRandHex = "8afa4a162b7bad6c92ff14f3a8bf4db0f3c39e90c06f937861f823d2995c74f0"
)

func TestSignVerifyEndToEnd(t *testing.T) {
	secBytes := hexToBytes(secRandHex)
	nonceBytes := hexToBytes(signRandHex)

	priv, err := PrivKeyFromBytes(secBytes)
	if err != nil {
		t.Fatalf("PrivKeyFromBytes failed: %v", err)
	}
	pub := priv.PubKey()

	sig, ok := priv.SignMessage([]byte("hello"), nonceBytes)
	if !ok {
		t.Fatalf("signing unexpectedly failed")
	}

	if !pub.Verify([]byte("hello"), &sig) {
		t.Fatalf("signature failed to verify")
	}

	if sig.s.IsOverHalfOrder() {
		t.Fatalf("signature is not low-S")
	}
}

func TestSignVerifyRejectsTamperedMessage(t *testing.T) {
	secBytes := hexToBytes(secRandHex)
	nonceBytes := hexToBytes(signRandHex)

	priv, err := PrivKeyFromBytes(secBytes)
	if err != nil {
		t.Fatalf("PrivKeyFromBytes failed: %v", err)
	}
	pub := priv.PubKey()

	sig, ok := priv.SignMessage([]byte("hello"), nonceBytes)
	if !ok {
		t.Fatalf("signing unexpectedly failed")
	}

	if pub.Verify([]byte("goodbye"), &sig) {
		t.Fatalf("signature verified against a tampered message")
	}
}

func TestSignVerifyRejectsTamperedPubKey(t *testing.T) {
	secBytes := hexToBytes(secRandHex)
	nonceBytes := hexToBytes(signRandHex)

	priv, err := PrivKeyFromBytes(secBytes)
	if err != nil {
		t.Fatalf("PrivKeyFromBytes failed: %v", err)
	}
	pub := priv.PubKey()

	sig, ok := priv.SignMessage([]byte("hello"), nonceBytes)
	if !ok {
		t.Fatalf("signing unexpectedly failed")
	}

	x := pub.X()
	y := pub.Y()
	y.Add(new(FieldVal).SetInt(1))
	tampered := NewPublicKey(&x, &y)
	if tampered.Verify([]byte("hello"), &sig) {
		t.Fatalf("signature verified against a tampered public key")
	}
}

func TestVerifyRejectsHighS(t *testing.T) {
	secBytes := hexToBytes(secRandHex)
	nonceBytes := hexToBytes(signRandHex)

	priv, err := PrivKeyFromBytes(secBytes)
	if err != nil {
		t.Fatalf("PrivKeyFromBytes failed: %v", err)
	}
	pub := priv.PubKey()

	sig, ok := priv.SignMessage([]byte("hello"), nonceBytes)
	if !ok {
		t.Fatalf("signing unexpectedly failed")
	}

	// The conjugate signature (r, n-s) verifies the same curve equation
	// but must be rejected since it is not in canonical low-S form.
	var negS ModNScalar
	negS.Set(&sig.s).Negate()
	highSig := NewSignature(&sig.r, &negS)

	if pub.Verify([]byte("hello"), highSig) {
		t.Fatalf("verify accepted a high-S signature")
	}
}

func TestSignZeroSecretKeyFails(t *testing.T) {
	var zero ModNScalar
	_, ok := signHashed(&zero, make([]byte, 32), hexToBytes(signRandHex))
	if ok {
		t.Fatalf("signing with a zero secret key unexpectedly succeeded")
	}
}

func TestSignZeroNonceFails(t *testing.T) {
	secBytes := hexToBytes(secRandHex)
	priv, err := PrivKeyFromBytes(secBytes)
	if err != nil {
		t.Fatalf("PrivKeyFromBytes failed: %v", err)
	}
	_, ok := priv.SignHashed(make([]byte, 32), make([]byte, 32))
	if ok {
		t.Fatalf("signing with a zero nonce unexpectedly succeeded")
	}
}

func TestSHA256Anchor(t *testing.T) {
	got := sha256.Sum256([]byte("hello"))
	want := hexToBytes("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824")
	// The literal digest is 32 bytes (64 hex chars); the concrete scenario
	// in the specification elides none of it.
	if len(want) != 32 {
		t.Fatalf("test vector malformed: got %d bytes", len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sha256(\"hello\") mismatch at byte %d: got %x want %x", i, got[i], want[i])
		}
	}
}

func TestPrivateKeyAsCryptoSigner(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("GeneratePrivateKey failed: %v", err)
	}

	digest := sha256.Sum256([]byte("hello"))
	der, err := priv.Sign(rand.Reader, digest[:], nil)
	if err != nil {
		t.Fatalf("crypto.Signer Sign failed: %v", err)
	}

	sig, err := ParseDERSignature(der)
	if err != nil {
		t.Fatalf("ParseDERSignature failed: %v", err)
	}
	if !priv.PubKey().VerifyHashed(digest[:], sig) {
		t.Fatalf("signature produced via crypto.Signer failed to verify")
	}
}
