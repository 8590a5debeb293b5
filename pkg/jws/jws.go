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

package jws

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AlgorithmES512 is the JWS "alg" identifier for ECDSA over P-521 with
// SHA-512 (RFC 7518 §3.4)
const AlgorithmES512 = "ES512"

// Header is the JWS protected header. The serialized field order is
// part of the signed bytes, so the fields are pinned to exactly
// {alg, kid} in that order via struct declaration order; do not
// replace this with a map.
type Header struct {
	Algorithm string `json:"alg"`
	KeyID     string `json:"kid"`
}

// NewES512Header creates an ES512 header with the given key id.
// For Payouts API requests the kid is the certificate id from the
// TrueLayer Console.
func NewES512Header(kid string) Header {
	return Header{
		Algorithm: AlgorithmES512,
		KeyID:     kid,
	}
}

// Signer produces raw JWS signatures over a signing input.
type Signer interface {
	// Sign returns the raw signature over message
	Sign(message []byte) ([]byte, error)

	// Algorithm returns the JWS "alg" identifier of the signatures
	// this signer produces
	Algorithm() string
}

// SignCompact builds the compact serialization of a JWS over payload.
//
// The payload must already be serialized; SignCompact uses its bytes
// verbatim, so the signed bytes are exactly what the caller will
// transmit. The header is marshaled once, header and payload are
// base64url-encoded independently, and the signing input is
// encodedHeader + "." + encodedPayload as ASCII bytes (RFC 7515 §5.1).
// Signer errors propagate unchanged.
func SignCompact(h Header, payload []byte, s Signer) (string, error) {
	// Validate inputs
	if s == nil {
		return "", fmt.Errorf("signer cannot be nil")
	}

	// The header names the algorithm the verifier will apply; a signer
	// producing anything else must never serialize.
	if h.Algorithm != s.Algorithm() {
		return "", fmt.Errorf("header algorithm %q does not match signer algorithm %q", h.Algorithm, s.Algorithm())
	}

	headerJSON, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JWS header: %w", err)
	}

	signingInput := Encode(headerJSON) + "." + Encode(payload)

	signature, err := s.Sign([]byte(signingInput))
	if err != nil {
		return "", err
	}

	return signingInput + "." + Encode(signature), nil
}

// Detach derives the detached-content form of a compact JWS: the
// payload segment is dropped, leaving header..signature (RFC 7515
// Appendix F). A verifier that received the payload as the raw request
// body reconstructs the middle segment itself.
//
// The input must be a three-segment compact JWS as produced by
// SignCompact. Anything else is a broken invariant in the calling
// code, not a recoverable condition, and Detach panics.
func Detach(compact string) string {
	parts := strings.Split(compact, ".")
	if len(parts) != 3 {
		panic(fmt.Sprintf("jws: Detach on malformed compact JWS: expected 3 segments, got %d", len(parts)))
	}

	return parts[0] + ".." + parts[2]
}
