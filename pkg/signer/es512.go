package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"math/big"
)

// ErrCurveMismatch is returned when a signing key is not on curve P-521.
// ES512 is defined over P-521 only; no other curve is valid.
var ErrCurveMismatch = errors.New("the underlying elliptic curve must be P-521 to sign using ES512")

// ES512Signer implements MessageSigner with ECDSA over curve P-521 and
// SHA-512, producing fixed-width 132-byte raw signatures as required
// for the JWS ES512 algorithm.
type ES512Signer struct {
	key *ecdsa.PrivateKey
}

// NewES512Signer creates an ES512Signer for the given private key.
// The key must be on curve P-521; any other curve fails with
// ErrCurveMismatch.
func NewES512Signer(key *ecdsa.PrivateKey) (*ES512Signer, error) {
	if key == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	if err := checkCurve(key); err != nil {
		return nil, err
	}

	return &ES512Signer{key: key}, nil
}

// Sign signs message and returns the raw signature: r then s, each
// big-endian and independently zero-padded to 66 bytes.
//
// ECDSA draws a random nonce per signature, so two calls over the same
// message produce different, equally valid signatures. Callers must
// not expect byte-exact reproducibility.
func (s *ES512Signer) Sign(message []byte) ([]byte, error) {
	// The curve gate runs before any hashing or signing attempt.
	if err := checkCurve(s.key); err != nil {
		return nil, err
	}

	digest := sha512.Sum512(message)

	r, sv, err := ecdsa.Sign(rand.Reader, s.key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}

	return encodeSignature(r, sv), nil
}

// Algorithm returns the JWS algorithm identifier, always "ES512"
func (s *ES512Signer) Algorithm() string {
	return AlgorithmES512
}

// checkCurve rejects keys that are not on P-521
func checkCurve(key *ecdsa.PrivateKey) error {
	if key.Curve != elliptic.P521() {
		return fmt.Errorf("%w (key curve: %s)", ErrCurveMismatch, curveName(key.Curve))
	}
	return nil
}

// curveName names a curve for error messages without assuming its
// params are populated
func curveName(c elliptic.Curve) string {
	if c == nil {
		return "unknown"
	}
	if params := c.Params(); params != nil && params.Name != "" {
		return params.Name
	}
	return "unknown"
}

// encodeSignature packs r and s into the raw JWS signature layout:
// both big-endian, each independently zero-padded on the left to
// CoordinateSize bytes. FillBytes panics if a value does not fit;
// P-521 guarantees the bound, so overflow is a programming error, not
// an input error.
func encodeSignature(r, s *big.Int) []byte {
	sig := make([]byte, SignatureSize)
	r.FillBytes(sig[:CoordinateSize])
	s.FillBytes(sig[CoordinateSize:])
	return sig
}
