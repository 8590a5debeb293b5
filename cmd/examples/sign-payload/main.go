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

package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/TrueLayer/payouts-api-signing-examples/pkg/jws"
	"github.com/TrueLayer/payouts-api-signing-examples/pkg/payload"
	"github.com/TrueLayer/payouts-api-signing-examples/pkg/signer"
)

func main() {
	fmt.Println("Payouts API Signing - Library Example")
	fmt.Println("=====================================")

	// Generate an ephemeral P-521 key for demonstration. A real
	// integration loads the key you registered in TrueLayer's Console
	// via the keys package.
	fmt.Println("\n1. Generating an ephemeral P-521 key...")
	key, err := ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	fmt.Printf("   Curve: %s\n", key.Curve.Params().Name)

	fmt.Println("\n2. Normalizing the request payload...")
	body, err := payload.Normalize([]byte(`{
		"beneficiary_name": "A. Person",
		"amount_in_minor": 1000,
		"currency": "GBP"
	}`))
	if err != nil {
		log.Fatalf("Failed to normalize payload: %v", err)
	}
	fmt.Printf("   Canonical body: %s\n", body)

	fmt.Println("\n3. Building the ES512 signer...")
	es512, err := signer.NewES512Signer(key)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}

	fmt.Println("\n4. Signing the payload...")
	certificateID := uuid.New().String()
	compact, err := jws.SignCompact(jws.NewES512Header(certificateID), body, es512)
	if err != nil {
		log.Fatalf("Failed to sign: %v", err)
	}
	fmt.Printf("   kid: %s\n", certificateID)
	fmt.Printf("   JWS: %s\n", compact)

	fmt.Println("\n5. Deriving the detached-content form...")
	detached := jws.Detach(compact)
	fmt.Printf("   Detached JWS: %s\n", detached)

	// The detached form is the compact form minus the payload segment
	parts := strings.Split(compact, ".")
	if detached != parts[0]+".."+parts[2] {
		log.Fatalf("Detached JWS does not match the compact segments")
	}
	fmt.Println("\n6. Detached form matches header and signature segments of the compact JWS.")
	fmt.Println("\nSend the canonical body as the request body and the detached JWS")
	fmt.Println("in the X-TL-Signature header (see the client package).")
}
