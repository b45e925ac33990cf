// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// PubKeyBytesLenUncompressed is the length in bytes of an uncompressed
// public key: 1 prefix byte plus a 32-byte X and a 32-byte Y.
const PubKeyBytesLenUncompressed = 65

// PubKeyBytesLenCompressed is the length in bytes of a compressed public
// key: 1 prefix byte plus a 32-byte X.
const PubKeyBytesLenCompressed = 33

const (
	pubkeyUncompressed byte = 0x04
	pubkeyCompressedEven byte = 0x02
	pubkeyCompressedOdd  byte = 0x03
)

// PublicKey is a secp256k1 public key, an affine point on the curve that is
// the result of multiplying a private scalar by the base point G.  A
// PublicKey built by NewPublicKey is not validated against the curve
// equation; use IsOnCurve (or ParsePubKey, which validates on the compressed
// path and leaves the uncompressed path to the caller per the serialization
// contract) when the coordinates originate outside the package.
type PublicKey struct {
	x, y FieldVal
}

// NewPublicKey returns a new public key using the provided x and y field
// values.  It is the caller's responsibility to ensure the coordinates
// describe a valid curve point when that matters.
func NewPublicKey(x, y *FieldVal) *PublicKey {
	return &PublicKey{x: *x, y: *y}
}

// X returns the x coordinate of the public key.
func (p *PublicKey) X() FieldVal {
	return p.x
}

// Y returns the y coordinate of the public key.
func (p *PublicKey) Y() FieldVal {
	return p.y
}

// AsPoint returns the public key as a curve Point.
func (p *PublicKey) AsPoint() Point {
	return NewAffinePoint(&p.x, &p.y)
}

// IsOnCurve returns whether the public key's coordinates satisfy the curve
// equation.
func (p *PublicKey) IsOnCurve() bool {
	return IsOnCurve(&p.x, &p.y)
}

// IsEqual returns whether the two public keys are the same.
func (p *PublicKey) IsEqual(o *PublicKey) bool {
	return p.x.Equals(&o.x) && p.y.Equals(&o.y)
}

// VerifyHashed checks sig against the given 32-byte digest.
func (p *PublicKey) VerifyHashed(hashed []byte, sig *Signature) bool {
	return verifyHashed(p, hashed, sig)
}

// Verify hashes msg with SHA-256 and checks sig against the resulting
// digest.
func (p *PublicKey) Verify(msg []byte, sig *Signature) bool {
	return Verify(p, msg, sig)
}

// SerializeUncompressed serializes the public key in the 65-byte
// uncompressed format: 0x04 ‖ X ‖ Y.
func (p *PublicKey) SerializeUncompressed() []byte {
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, pubkeyUncompressed)
	xBytes := p.x.Bytes()
	yBytes := p.y.Bytes()
	b = append(b, xBytes[:]...)
	b = append(b, yBytes[:]...)
	return b
}

// SerializeCompressed serializes the public key in the 33-byte compressed
// format: (0x02 if Y even, else 0x03) ‖ X.
func (p *PublicKey) SerializeCompressed() []byte {
	b := make([]byte, 0, PubKeyBytesLenCompressed)
	format := pubkeyCompressedEven
	if p.y.IsOdd() {
		format = pubkeyCompressedOdd
	}
	b = append(b, format)
	xBytes := p.x.Bytes()
	b = append(b, xBytes[:]...)
	return b
}

// ParsePubKey parses a public key from its uncompressed or compressed
// serialized form, selecting the format by the input's length and prefix
// byte.
//
// The uncompressed path only checks length and prefix; per the
// serialization contract it does not itself reject an X or Y that is ≥ the
// field prime (such a value is reduced modulo the prime) or that fails to
// satisfy the curve equation — callers that need the curve check should call
// IsOnCurve on the result.  The compressed path
// always validates: it rejects X ≥ p and recovers Y via the curve equation,
// so a compressed key that parses successfully is guaranteed to be on the
// curve.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		if serialized[0] != pubkeyUncompressed {
			return nil, makeError(ErrPubKeyInvalidFormat, fmt.Sprintf(
				"invalid magic in uncompressed pubkey string: %d",
				serialized[0]))
		}

		var x, y FieldVal
		x.SetByteSlice(serialized[1:33])
		y.SetByteSlice(serialized[33:65])
		return &PublicKey{x: x, y: y}, nil

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		var wantEven bool
		switch format {
		case pubkeyCompressedEven:
			wantEven = true
		case pubkeyCompressedOdd:
			wantEven = false
		default:
			return nil, makeError(ErrPubKeyInvalidFormat,
				"invalid magic in compressed pubkey string")
		}

		xInt := decodeBigEndian(serialized[1:33])
		if xInt.Cmp(fieldPrime) >= 0 {
			return nil, makeError(ErrPubKeyXTooBig,
				"pubkey X parameter is >= to the field prime")
		}
		var x FieldVal
		x.SetBig(xInt)

		y, ok := getYFromX(&x, wantEven)
		if !ok {
			return nil, makeError(ErrPubKeyNotOnCurve,
				"pubkey X parameter is not on the secp256k1 curve")
		}
		return &PublicKey{x: x, y: y}, nil

	default:
		return nil, makeError(ErrPubKeyInvalidLen,
			"malformed public key: invalid length")
	}
}
