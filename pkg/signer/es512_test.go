// Copyright (C) 2025 TrueLayer
//
// This file is part of payouts-api-signing-examples.
//
// payouts-api-signing-examples is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// payouts-api-signing-examples is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with payouts-api-signing-examples.  If not, see <https://www.gnu.org/licenses/>.

package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return key
}

func TestNewES512Signer_P521(t *testing.T) {
	// Test Case 1: a P-521 key is accepted

	key := generateKey(t, elliptic.P521())

	es512, err := NewES512Signer(key)

	require.NoError(t, err)
	require.NotNil(t, es512)
	assert.Equal(t, AlgorithmES512, es512.Algorithm())
}

func TestNewES512Signer_RejectsOtherCurves(t *testing.T) {
	// Test Case 2: construction fails fast for any curve but P-521

	curves := []elliptic.Curve{elliptic.P256(), elliptic.P384()}

	for _, curve := range curves {
		key := generateKey(t, curve)

		es512, err := NewES512Signer(key)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCurveMismatch)
		assert.Contains(t, err.Error(), curve.Params().Name)
		assert.Nil(t, es512)
	}
}

func TestNewES512Signer_NilKey(t *testing.T) {
	es512, err := NewES512Signer(nil)

	require.Error(t, err)
	assert.Nil(t, es512)
}

func TestSign_RawSignatureLength(t *testing.T) {
	// Test Case 3: every signature is exactly 132 bytes, r then s

	// Setup
	key := generateKey(t, elliptic.P521())
	es512, err := NewES512Signer(key)
	require.NoError(t, err)

	// Execute
	sig, err := es512.Sign([]byte("message"))

	// Assert
	require.NoError(t, err)
	assert.Len(t, sig, SignatureSize)
}

func TestSign_VerifiesAgainstPublicKey(t *testing.T) {
	// Test Case 4: the raw signature verifies with plain ECDSA over
	// the SHA-512 digest

	// Setup
	key := generateKey(t, elliptic.P521())
	es512, err := NewES512Signer(key)
	require.NoError(t, err)
	message := []byte("the signed message")

	// Execute
	sig, err := es512.Sign(message)
	require.NoError(t, err)

	// Assert
	r := new(big.Int).SetBytes(sig[:CoordinateSize])
	s := new(big.Int).SetBytes(sig[CoordinateSize:])
	digest := sha512.Sum512(message)

	assert.True(t, ecdsa.Verify(&key.PublicKey, digest[:], r, s))
}

func TestSign_NotByteReproducible(t *testing.T) {
	// Test Case 5: two signatures over the same input differ (random
	// nonce) yet both verify

	key := generateKey(t, elliptic.P521())
	es512, err := NewES512Signer(key)
	require.NoError(t, err)
	message := []byte("same input twice")

	sig1, err := es512.Sign(message)
	require.NoError(t, err)
	sig2, err := es512.Sign(message)
	require.NoError(t, err)

	assert.NotEqual(t, sig1, sig2)

	digest := sha512.Sum512(message)
	for _, sig := range [][]byte{sig1, sig2} {
		r := new(big.Int).SetBytes(sig[:CoordinateSize])
		s := new(big.Int).SetBytes(sig[CoordinateSize:])
		assert.True(t, ecdsa.Verify(&key.PublicKey, digest[:], r, s))
	}
}

func TestSign_CurveCheckedBeforeSigning(t *testing.T) {
	// Test Case 6: Sign re-checks the curve even if the struct was
	// built around the constructor

	key := generateKey(t, elliptic.P256())
	es512 := &ES512Signer{key: key}

	sig, err := es512.Sign([]byte("message"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCurveMismatch)
	assert.Nil(t, sig)
}

func TestEncodeSignature_PadsShortIntegers(t *testing.T) {
	// Test Case 7: r and s shorter than 66 bytes are zero-padded to
	// the full width with their values preserved

	cases := []struct {
		name string
		r    *big.Int
		s    *big.Int
	}{
		{name: "single byte each", r: big.NewInt(1), s: big.NewInt(2)},
		{name: "zero r", r: big.NewInt(0), s: big.NewInt(0xffff)},
		{name: "uneven widths", r: new(big.Int).Lsh(big.NewInt(1), 256), s: big.NewInt(7)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig := encodeSignature(tc.r, tc.s)

			require.Len(t, sig, SignatureSize)
			assert.Equal(t, 0, tc.r.Cmp(new(big.Int).SetBytes(sig[:CoordinateSize])))
			assert.Equal(t, 0, tc.s.Cmp(new(big.Int).SetBytes(sig[CoordinateSize:])))
		})
	}
}

func TestEncodeSignature_FullWidthIntegers(t *testing.T) {
	// Test Case 8: 66-byte integers occupy their slots with no padding

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*CoordinateSize), big.NewInt(1))

	sig := encodeSignature(max, max)

	require.Len(t, sig, SignatureSize)
	assert.Equal(t, byte(0xff), sig[0])
	assert.Equal(t, byte(0xff), sig[CoordinateSize])
	assert.Equal(t, 0, max.Cmp(new(big.Int).SetBytes(sig[:CoordinateSize])))
}

func TestSign_ConcurrentUse(t *testing.T) {
	// Test Case 9: one signer, many goroutines

	key := generateKey(t, elliptic.P521())
	es512, err := NewES512Signer(key)
	require.NoError(t, err)

	const goroutines = 8
	message := []byte("concurrent message")
	digest := sha512.Sum512(message)

	var wg sync.WaitGroup
	sigs := make([][]byte, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sigs[n], errs[n] = es512.Sign(message)
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		require.Len(t, sigs[i], SignatureSize)

		r := new(big.Int).SetBytes(sigs[i][:CoordinateSize])
		s := new(big.Int).SetBytes(sigs[i][CoordinateSize:])
		assert.True(t, ecdsa.Verify(&key.PublicKey, digest[:], r, s))
	}
}
