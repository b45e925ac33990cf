// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import sha256 "github.com/minio/sha256-simd"

// signHashed implements sign_hashed: it signs a 32-byte digest using the
// private scalar sec and the caller-supplied nonce bytes, returning ok =
// false for any of the documented "absent result" cases (zero secret key,
// zero nonce, zero r) rather than an error, matching the option-returning
// contract of the underlying engine.
//
// The nonce is assumed to be drawn fresh, uniformly at random, and kept
// secret by the caller for every call; this package performs no RFC 6979
// derivation and does not detect or defend against nonce reuse.
func signHashed(sec *ModNScalar, hashed []byte, nonce []byte) (sig Signature, ok bool) {
	if sec.IsZero() {
		return Signature{}, false
	}

	var k ModNScalar
	k.SetByteSlice(nonce)
	if k.IsZero() {
		return Signature{}, false
	}

	q := generator.ScalarMult(&k)
	if q.IsInfinity() {
		return Signature{}, false
	}

	qx := q.X()
	var r ModNScalar
	r.SetBig(qx.Int())
	if r.IsZero() {
		return Signature{}, false
	}

	var z ModNScalar
	z.SetByteSlice(hashed)

	// s = (r*sec + z) / k
	var s ModNScalar
	s.Mul2(&r, sec).Add(&z)
	s.Div(&k)

	return normalizeSignature(r, s), true
}

// normalizeSignature implements normalize_signature: it guarantees the
// returned signature's S value is below nHalf by negating (r, s) to
// (r, -s) when it is not, which is an equally valid signature since
// negating s negates both u1 and u2, which negates the recovered point R and
// leaves its x-coordinate unchanged.
func normalizeSignature(r, s ModNScalar) Signature {
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	return Signature{r: r, s: s}
}

// verifyHashed implements verify_hashed: it checks sig against the given
// 32-byte digest and public key, rejecting any signature that is not in
// canonical low-S form.
func verifyHashed(pub *PublicKey, hashed []byte, sig *Signature) bool {
	if sig.r.IsZero() || sig.s.IsZero() {
		return false
	}
	if sig.s.IsOverHalfOrder() {
		return false
	}
	if !pub.IsOnCurve() {
		return false
	}

	var z ModNScalar
	z.SetByteSlice(hashed)

	var w ModNScalar
	w.Set(&sig.s).Inverse()

	var u1, u2 ModNScalar
	u1.Mul2(&z, &w)
	u2.Mul2(&sig.r, &w)

	r1 := generator.ScalarMult(&u1)
	r2 := pub.AsPoint().ScalarMult(&u2)
	capR := r1.Add(r2)
	if capR.IsInfinity() {
		return false
	}

	rx := capR.X()
	var gotR ModNScalar
	gotR.SetBig(rx.Int())
	return gotR.Equals(&sig.r)
}

// Sign computes sha256(msg) and signs it with sec using the given nonce,
// returning ok = false in the same "absent result" cases as signHashed.
func Sign(sec *ModNScalar, msg []byte, nonce []byte) (sig Signature, ok bool) {
	digest := sha256.Sum256(msg)
	return signHashed(sec, digest[:], nonce)
}

// Verify computes sha256(msg) and checks sig against pub.
func Verify(pub *PublicKey, msg []byte, sig *Signature) bool {
	digest := sha256.Sum256(msg)
	return verifyHashed(pub, digest[:], sig)
}

// SignHash signs a pre-hashed, already-32-byte digest directly, bypassing
// the SHA-256 step.  Callers that hash their own message before signing
// (e.g. when they want to sign a digest produced by a different hash
// function, contrary to the default SHA-256 pairing) should use this
// instead of Sign.
func SignHash(sec *ModNScalar, hashed []byte, nonce []byte) (sig Signature, ok bool) {
	return signHashed(sec, hashed, nonce)
}

// VerifyHash checks sig against a pre-hashed, already-32-byte digest,
// bypassing the SHA-256 step.
func VerifyHash(pub *PublicKey, hashed []byte, sig *Signature) bool {
	return verifyHashed(pub, hashed, sig)
}
