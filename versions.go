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

// Package payoutssigning provides version information for
// payouts-api-signing-examples and the signing scheme it implements.
package payoutssigning

const (
	// Version is the current version of payouts-api-signing-examples
	Version = "1.0.0"

	// JWSAlgorithm is the JWS algorithm produced by this library.
	// Payouts API request signatures are always ES512 (ECDSA over
	// P-521 with SHA-512), per RFC 7518 §3.4.
	JWSAlgorithm = "ES512"

	// PayoutsAPIVersion is the Payouts API version the signed requests
	// target
	PayoutsAPIVersion = "v1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SigningVersion    string
	JWSAlgorithm      string
	PayoutsAPIVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SigningVersion:    Version,
		JWSAlgorithm:      JWSAlgorithm,
		PayoutsAPIVersion: PayoutsAPIVersion,
	}
}
