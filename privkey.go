// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"io"
)

// PrivKeyBytesLen is the number of bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 private key, a scalar in [1, n-1].
type PrivateKey struct {
	key ModNScalar
}

// secretKeyFromBytes implements get_secret_key: it reduces the passed bytes
// modulo the group order and reports whether the result is zero, which is
// the only value a private key may not take.
func secretKeyFromBytes(b []byte) (ModNScalar, bool) {
	var s ModNScalar
	s.SetByteSlice(b)
	if s.IsZero() {
		return ModNScalar{}, false
	}
	return s, true
}

// NewPrivateKey returns a PrivateKey wrapping the passed scalar without
// checking whether it is zero.  Prefer PrivKeyFromBytes when the scalar
// originates from raw bytes that might be zero.
func NewPrivateKey(key *ModNScalar) *PrivateKey {
	return &PrivateKey{key: *key}
}

// PrivKeyFromBytes returns the private key corresponding to the given
// big-endian bytes, reduced modulo the group order.  It returns
// ErrNotInvertible — reused here as the zero-key sentinel since a zero
// scalar is the only input this constructor rejects — when the reduced
// scalar is zero.
func PrivKeyFromBytes(privKeyBytes []byte) (*PrivateKey, error) {
	key, ok := secretKeyFromBytes(privKeyBytes)
	if !ok {
		return nil, makeError(ErrNotInvertible, "private key is zero")
	}
	return &PrivateKey{key: key}, nil
}

// GeneratePrivateKey generates and returns a new cryptographically secure
// private key, drawing fresh randomness from crypto/rand until a non-zero
// scalar is produced (the chance of a single draw landing on zero is
// astronomically small, but the retry keeps the contract exact).
func GeneratePrivateKey() (*PrivateKey, error) {
	var b [PrivKeyBytesLen]byte
	for {
		if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
			return nil, err
		}
		key, ok := secretKeyFromBytes(b[:])
		if ok {
			zeroArray32(&b)
			return &PrivateKey{key: key}, nil
		}
	}
}

// Scalar returns the underlying scalar value of the private key.
func (p *PrivateKey) Scalar() ModNScalar {
	return p.key
}

// PubKey returns the public key corresponding to the private key.
func (p *PrivateKey) PubKey() *PublicKey {
	pt := generator.ScalarMult(&p.key)
	x := pt.X()
	y := pt.Y()
	return NewPublicKey(&x, &y)
}

// Serialize returns the private key as a 32-byte big-endian array.  The
// caller is responsible for zeroing the returned bytes when they are no
// longer needed.
func (p *PrivateKey) Serialize() []byte {
	b := p.key.Bytes()
	out := make([]byte, PrivKeyBytesLen)
	copy(out, b[:])
	return out
}

// Zero sets the private key's scalar to zero so the key can no longer be
// used.  The memory that held the previous value is not overwritten.
func (p *PrivateKey) Zero() {
	p.key.SetInt(0)
}

// SignHashed signs the given 32-byte digest using the passed nonce and
// returns ok = false if either the private key or the nonce reduces to
// zero, per the signHashed contract.
func (p *PrivateKey) SignHashed(hashed, nonce []byte) (sig Signature, ok bool) {
	return signHashed(&p.key, hashed, nonce)
}

// SignMessage hashes msg with SHA-256 and signs the digest using the passed
// nonce.
func (p *PrivateKey) SignMessage(msg, nonce []byte) (sig Signature, ok bool) {
	return Sign(&p.key, msg, nonce)
}
