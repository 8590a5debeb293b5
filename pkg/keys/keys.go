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

package keys

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// ErrKeyParse is the kind for all private key loading failures. Match
// it with errors.Is; the wrapped chain carries the specific cause.
var ErrKeyParse = errors.New("failed to parse the private key")

const (
	pemTypeSEC1  = "EC PRIVATE KEY"
	pemTypePKCS8 = "PRIVATE KEY"
)

// ParseECPrivateKey parses a PEM-encoded elliptic-curve private key.
// Both SEC1 ("EC PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") blocks are
// accepted; a PKCS#8 block holding a non-EC key is rejected.
//
// The curve is not restricted here. The ES512 signer owns the P-521
// check, so a key on the wrong curve parses fine and fails at the
// signing step with the curve named in the error.
func ParseECPrivateKey(pemBytes []byte) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyParse)
	}

	switch block.Type {
	case pemTypeSEC1:
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyParse, err)
		}
		return key, nil

	case pemTypePKCS8:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyParse, err)
		}

		key, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: the private key must be an elliptic curve key, got %T", ErrKeyParse, parsed)
		}
		return key, nil

	default:
		return nil, fmt.Errorf("%w: unsupported PEM block type %q", ErrKeyParse, block.Type)
	}
}
