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

package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPayloadParse is the kind for all payload validation failures.
// Match it with errors.Is; the wrapped chain carries the specific
// cause.
var ErrPayloadParse = errors.New("failed to parse the request payload as JSON")

// Normalize validates that raw is a single JSON value and returns it
// with insignificant whitespace removed.
//
// The compaction is byte-level: object keys keep their original order
// because the value never passes through a Go map. The returned bytes
// are the canonical form of the payload for this request; use them
// both as the JWS payload and as the HTTP body, verbatim, so the
// verifier hashes exactly what it receives.
func Normalize(raw []byte) ([]byte, error) {
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: input is not valid JSON", ErrPayloadParse)
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadParse, err)
	}

	return compacted.Bytes(), nil
}
