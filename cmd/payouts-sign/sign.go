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
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrueLayer/payouts-api-signing-examples/pkg/jws"
	"github.com/TrueLayer/payouts-api-signing-examples/pkg/keys"
	"github.com/TrueLayer/payouts-api-signing-examples/pkg/payload"
	"github.com/TrueLayer/payouts-api-signing-examples/pkg/signer"
)

const (
	payloadFileFlagName  = "payload-file"
	payloadFileEnvKey    = "PAYOUTS_PAYLOAD_FILE"
	payloadFileFlagUsage = "The filename of the payload you want to sign, in JSON format." +
		commonEnvVarUsageText + payloadFileEnvKey

	privateKeyFileFlagName  = "private-key-file"
	privateKeyFileEnvKey    = "PAYOUTS_PRIVATE_KEY_FILE"
	privateKeyFileFlagUsage = "The filename of the Elliptic Curve private key used to sign, in PEM format." +
		commonEnvVarUsageText + privateKeyFileEnvKey

	certificateIDFlagName  = "certificate-id"
	certificateIDEnvKey    = "PAYOUTS_CERTIFICATE_ID"
	certificateIDFlagUsage = "The certificate id (a UUID) associated to the public certificate you uploaded" +
		" in TrueLayer's Console. It is used as the kid header of the JWS." +
		commonEnvVarUsageText + certificateIDEnvKey
)

// signedRequest is the output of the signing pipeline shared by the
// sign and send commands
type signedRequest struct {
	body        []byte
	compactJWS  string
	detachedJWS string
}

func newSignCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a JSON payload and print the compact and detached JWS",
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := buildSignedRequest(cmd, logger)
			if err != nil {
				return err
			}

			fmt.Printf("JWS:\n%s\n\n", signed.compactJWS)
			fmt.Printf("JWS with detached content:\n%s\n", signed.detachedJWS)

			return nil
		},
	}

	addSignFlags(cmd)

	return cmd
}

func addSignFlags(cmd *cobra.Command) {
	cmd.Flags().String(payloadFileFlagName, "", payloadFileFlagUsage)
	cmd.Flags().String(privateKeyFileFlagName, "", privateKeyFileFlagUsage)
	cmd.Flags().String(certificateIDFlagName, "", certificateIDFlagUsage)
}

// buildSignedRequest runs the full signing pipeline: load and
// normalize the payload, load the key, build the compact JWS, derive
// the detached form
func buildSignedRequest(cmd *cobra.Command, logger *zap.Logger) (*signedRequest, error) {
	payloadFile := getUserSetVar(cmd, payloadFileFlagName, payloadFileEnvKey)
	if payloadFile == "" {
		return nil, fmt.Errorf("%s is required", payloadFileFlagName)
	}

	privateKeyFile := getUserSetVar(cmd, privateKeyFileFlagName, privateKeyFileEnvKey)
	if privateKeyFile == "" {
		return nil, fmt.Errorf("%s is required", privateKeyFileFlagName)
	}

	certificateID := getUserSetVar(cmd, certificateIDFlagName, certificateIDEnvKey)
	kid, err := uuid.Parse(certificateID)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID: %w", certificateIDFlagName, err)
	}

	rawPayload, err := os.ReadFile(payloadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read the request payload file: %w", err)
	}

	body, err := payload.Normalize(rawPayload)
	if err != nil {
		return nil, err
	}

	pemBytes, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read the private key file: %w", err)
	}

	key, err := keys.ParseECPrivateKey(pemBytes)
	if err != nil {
		return nil, err
	}

	es512, err := signer.NewES512Signer(key)
	if err != nil {
		return nil, err
	}

	logger.Debug("signing payload",
		zap.String("payloadFile", payloadFile),
		zap.String("kid", kid.String()),
		zap.Int("payloadBytes", len(body)))

	compact, err := jws.SignCompact(jws.NewES512Header(kid.String()), body, es512)
	if err != nil {
		return nil, err
	}

	return &signedRequest{
		body:        body,
		compactJWS:  compact,
		detachedJWS: jws.Detach(compact),
	}, nil
}
