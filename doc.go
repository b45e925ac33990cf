// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements secp256k1 elliptic curve operations and ECDSA
signing and verification in pure Go.

This package provides a self-contained implementation of elliptic curve
cryptography over the secp256k1 curve together with the data structures and
functions needed to produce, verify, parse, and serialize ECDSA signatures and
secp256k1 keys.  See https://www.secg.org/sec2-v2.pdf for details on the
standard.

An overview of the features provided by this package:

  - Private key generation, serialization, and parsing
  - Public key generation, serialization, and parsing per ANSI X9.62-1998
  - Parses uncompressed and compressed public keys
  - Serializes uncompressed and compressed public keys
  - FieldVal type for working modulo the secp256k1 field prime
  - ModNScalar type for working modulo the secp256k1 group order
  - Elliptic curve group law in affine coordinates
  - Point addition, doubling, and negation
  - Scalar multiplication with an arbitrary point
  - Scalar multiplication with the base point (group generator)
  - Point decompression from a given x coordinate via modular square root
  - ECDSA signing and verification with low-S (BIP0062) normalization
  - DER (ISO/IEC 8825-1) signature parsing and serialization

It also provides an implementation of the Go standard library's crypto/elliptic
Curve interface via the S256 function so it may be used with other packages in
the standard library such as crypto/tls and crypto/x509, and the PrivateKey
type implements crypto.Signer so it can be used anywhere that interface is
expected.

Unlike some other implementations of this curve, all arithmetic here is
performed in affine coordinates with ordinary (non-constant-time) modular
arithmetic; there is no claim of resistance to timing side channels.  Nonces
are never generated or derived internally — every signing operation takes an
explicit caller-supplied nonce, and it is the caller's responsibility to supply
cryptographically secure randomness.

A comprehensive suite of tests is provided to ensure proper functionality.
*/
package secp256k1
