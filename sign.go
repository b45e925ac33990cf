// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	"io"
)

// Ensure PrivateKey implements crypto.Signer.
var _ crypto.Signer = (*PrivateKey)(nil)

// Public returns the public key corresponding to the private key, as
// required by crypto.Signer.
func (p *PrivateKey) Public() crypto.PublicKey {
	return p.PubKey()
}

// Sign signs digest (an already-hashed 32-byte message) as required by
// crypto.Signer, reading the signing nonce from rand.  opts is accepted for
// interface compatibility but otherwise ignored: digest is signed exactly as
// given, regardless of what opts.HashFunc reports.
//
// It reads 32 bytes from rand at a time and retries with fresh bytes whenever
// an attempt yields no signature (a nonce that reduces to zero, or r = 0),
// returning the DER encoding of the resulting signature.
func (p *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	var nonce [32]byte
	for {
		if _, err := io.ReadFull(rand, nonce[:]); err != nil {
			return nil, err
		}
		sig, ok := signHashed(&p.key, digest, nonce[:])
		if ok {
			zeroArray32(&nonce)
			return sig.Serialize(), nil
		}
	}
}
