// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

const (
	// asn1SequenceID is the ASN.1 identifier for a SEQUENCE.
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an INTEGER.
	asn1IntegerID = 0x02

	// minSigLen is the length of the shortest possible DER-encoded
	// signature: 0x30 <L> 0x02 0x01 <r> 0x02 0x01 <s>.
	minSigLen = 8

	// maxSigLen is the length of the longest possible DER-encoded
	// signature with both r and s occupying 32 bytes plus an optional
	// leading padding byte each.
	maxSigLen = 72
)

// Signature is an ECDSA signature, a pair (r, s) of scalars in Fr.  A
// Signature produced by the signing engine (Sign, SignHash and the
// PrivateKey signing methods) is always in canonical low-S form
// (s < nHalf).  NewSignature wraps the given r and s as they are, and one
// parsed from DER via ParseDERSignature is not checked for low-S; either must
// be normalized by the caller before being handed to Verify if it originated
// outside this package.
type Signature struct {
	r, s ModNScalar
}

// NewSignature returns a new signature with the given r and s values.
func NewSignature(r, s *ModNScalar) *Signature {
	return &Signature{r: *r, s: *s}
}

// R returns the r value of the signature.
func (sig *Signature) R() ModNScalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() ModNScalar {
	return sig.s
}

// IsEqual returns whether sig and other are the same signature.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.Equals(&other.r) && sig.s.Equals(&other.s)
}

// canonicalPadding returns the minimal big-endian encoding of the given
// scalar, with a single leading 0x00 byte prepended when the high bit of the
// first byte would otherwise be set, which is how DER keeps an INTEGER
// unsigned.
func canonicalPadding(v *ModNScalar) []byte {
	enc := encodeBigEndian(v.Int())
	if len(enc) > 0 && enc[0]&0x80 != 0 {
		padded := make([]byte, len(enc)+1)
		copy(padded[1:], enc)
		return padded
	}
	return enc
}

// Serialize returns the ECDSA signature in the DER format:
//
//	0x30 <L> 0x02 <len_r> [0x00] <r> 0x02 <len_s> [0x00] <s>
func (sig *Signature) Serialize() []byte {
	rb := canonicalPadding(&sig.r)
	sb := canonicalPadding(&sig.s)

	length := 2 + len(rb) + 2 + len(sb)
	out := make([]byte, 0, 2+length)
	out = append(out, asn1SequenceID, byte(length))
	out = append(out, asn1IntegerID, byte(len(rb)))
	out = append(out, rb...)
	out = append(out, asn1IntegerID, byte(len(sb)))
	out = append(out, sb...)
	return out
}

// ParseDERSignature parses a DER-encoded ECDSA signature, enforcing strict
// adherence to the format: exactly two ASN.1 INTEGERs inside a SEQUENCE,
// minimal encoding, no negative values, no extra trailing bytes, and both r
// and s reduced below the group order (without being zero).
func ParseDERSignature(sig []byte) (*Signature, error) {
	// 0x30 <length> 0x02 <length r> r 0x02 <length s> s
	if len(sig) < minSigLen {
		return nil, makeError(ErrSigTooShort, "malformed signature: too short")
	}
	if len(sig) > maxSigLen {
		return nil, makeError(ErrSigTooLong, "malformed signature: too long")
	}
	if sig[0] != asn1SequenceID {
		return nil, makeError(ErrSigInvalidSeqID,
			"malformed signature: format has wrong type")
	}
	if int(sig[1]) != len(sig)-2 {
		return nil, makeError(ErrSigInvalidDataLen,
			"malformed signature: bad length")
	}

	sigRoffset := 2
	rLen, offset, err := parseDERInt(sig, sigRoffset, asn1IntegerID,
		ErrSigInvalidRIntID, ErrSigZeroRLen, ErrSigNegativeR,
		ErrSigTooMuchRPadding)
	if err != nil {
		return nil, err
	}
	rBytes := sig[offset : offset+rLen]
	offset += rLen

	if offset+2 > len(sig) {
		return nil, makeError(ErrSigMissingSTypeID,
			"malformed signature: S type indicator missing")
	}
	if sig[offset] != asn1IntegerID {
		return nil, makeError(ErrSigInvalidSIntID,
			"malformed signature: S ASN.1 identifier is not an integer")
	}
	offset++
	if offset+1 > len(sig) {
		return nil, makeError(ErrSigMissingSLen,
			"malformed signature: missing S length")
	}

	sLen, offset2, err := parseDERInt(sig, offset, -1, ErrSigInvalidSIntID,
		ErrSigZeroSLen, ErrSigNegativeS, ErrSigTooMuchSPadding)
	if err != nil {
		return nil, err
	}
	sBytes := sig[offset2 : offset2+sLen]
	offset = offset2 + sLen

	if offset != len(sig) {
		return nil, makeError(ErrSigInvalidDataLen,
			"malformed signature: extra data")
	}

	rInt := decodeBigEndian(rBytes)
	if rInt.Cmp(groupOrder) >= 0 {
		return nil, makeError(ErrSigRTooBig,
			"invalid signature: R >= group order")
	}
	if rInt.Sign() == 0 {
		return nil, makeError(ErrSigRIsZero, "invalid signature: R is zero")
	}

	sInt := decodeBigEndian(sBytes)
	if sInt.Cmp(groupOrder) >= 0 {
		return nil, makeError(ErrSigSTooBig,
			"invalid signature: S >= group order")
	}
	if sInt.Sign() == 0 {
		return nil, makeError(ErrSigSIsZero, "invalid signature: S is zero")
	}

	var r, s ModNScalar
	r.SetBig(rInt)
	s.SetBig(sInt)
	return &Signature{r: r, s: s}, nil
}

// parseDERInt parses a single ASN.1 INTEGER tag-length-value triple
// starting at sig[offset], skipping the tag byte check when wantTag < 0
// (used for the S integer, whose tag was already consumed by the caller so
// it can produce the right error kind on mismatch).  It returns the integer
// length and the offset of its first content byte.
func parseDERInt(sig []byte, offset, wantTag int, badTag, zeroLen, negative, badPadding ErrorKind) (length, dataOffset int, err error) {
	if wantTag >= 0 {
		if offset >= len(sig) || int(sig[offset]) != wantTag {
			return 0, 0, makeError(badTag,
				"malformed signature: format has wrong type")
		}
		offset++
	}
	if offset >= len(sig) {
		return 0, 0, makeError(zeroLen, "malformed signature: truncated")
	}

	length = int(sig[offset])
	offset++
	if length == 0 {
		return 0, 0, makeError(zeroLen, "malformed signature: value has zero length")
	}
	if offset+length > len(sig) {
		return 0, 0, makeError(zeroLen, "malformed signature: truncated value")
	}
	if sig[offset]&0x80 != 0 {
		return 0, 0, makeError(negative, "malformed signature: value is negative")
	}
	if length > 1 && sig[offset] == 0x00 && sig[offset+1]&0x80 == 0 {
		return 0, 0, makeError(badPadding,
			"malformed signature: value has too much padding")
	}
	return length, offset, nil
}
