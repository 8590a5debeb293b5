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
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrueLayer/payouts-api-signing-examples/pkg/client"
)

const (
	endpointFlagName  = "endpoint"
	endpointEnvKey    = "PAYOUTS_ENDPOINT"
	endpointDefault   = "https://payouts.t7r.co/v1/test"
	endpointFlagUsage = "The Payouts API endpoint to POST the signed request to." +
		commonEnvVarUsageText + endpointEnvKey

	accessTokenFlagName  = "access-token"
	accessTokenEnvKey    = "PAYOUTS_ACCESS_TOKEN"
	accessTokenFlagUsage = "The bearer access token for the Payouts API." +
		commonEnvVarUsageText + accessTokenEnvKey

	signatureHeaderFlagName  = "signature-header"
	signatureHeaderEnvKey    = "PAYOUTS_SIGNATURE_HEADER"
	signatureHeaderFlagUsage = "The HTTP header carrying the detached JWS." +
		commonEnvVarUsageText + signatureHeaderEnvKey

	timeoutFlagName  = "timeout"
	timeoutEnvKey    = "PAYOUTS_TIMEOUT"
	timeoutDefault   = "30s"
	timeoutFlagUsage = "Timeout for the HTTP request, as a Go duration." +
		commonEnvVarUsageText + timeoutEnvKey

	retriesFlagName  = "retries"
	retriesEnvKey    = "PAYOUTS_RETRIES"
	retriesFlagUsage = "Number of retries for transport errors and 5xx responses." +
		commonEnvVarUsageText + retriesEnvKey
)

func newSendCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sign a JSON payload and submit it to the Payouts API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, logger)
		},
	}

	addSignFlags(cmd)
	cmd.Flags().String(endpointFlagName, endpointDefault, endpointFlagUsage)
	cmd.Flags().String(accessTokenFlagName, "", accessTokenFlagUsage)
	cmd.Flags().String(signatureHeaderFlagName, client.DefaultSignatureHeader, signatureHeaderFlagUsage)
	cmd.Flags().String(timeoutFlagName, timeoutDefault, timeoutFlagUsage)
	cmd.Flags().String(retriesFlagName, "0", retriesFlagUsage)

	return cmd
}

func runSend(cmd *cobra.Command, logger *zap.Logger) error {
	signed, err := buildSignedRequest(cmd, logger)
	if err != nil {
		return err
	}

	fmt.Printf("JWS:\n%s\n\n", signed.compactJWS)
	fmt.Printf("JWS with detached content:\n%s\n\n", signed.detachedJWS)

	endpoint := getUserSetVar(cmd, endpointFlagName, endpointEnvKey)

	accessToken := getUserSetVar(cmd, accessTokenFlagName, accessTokenEnvKey)
	if accessToken == "" {
		return fmt.Errorf("%s is required", accessTokenFlagName)
	}

	timeout, err := time.ParseDuration(getUserSetVar(cmd, timeoutFlagName, timeoutEnvKey))
	if err != nil {
		return fmt.Errorf("%s must be a valid duration: %w", timeoutFlagName, err)
	}

	retries, err := strconv.ParseUint(getUserSetVar(cmd, retriesFlagName, retriesEnvKey), 10, 32)
	if err != nil {
		return fmt.Errorf("%s must be a non-negative integer: %w", retriesFlagName, err)
	}

	c := client.NewClient(endpoint, accessToken,
		client.WithSignatureHeader(getUserSetVar(cmd, signatureHeaderFlagName, signatureHeaderEnvKey)),
		client.WithHTTPClient(&http.Client{Timeout: timeout}),
		client.WithRetries(retries))

	logger.Debug("submitting signed request",
		zap.String("endpoint", endpoint),
		zap.Uint64("retries", retries),
		zap.Duration("timeout", timeout))

	result, err := c.Submit(cmd.Context(), signed.body, signed.detachedJWS)
	if err != nil {
		return fmt.Errorf("failed to submit the signed request: %w", err)
	}

	if result.Success() {
		fmt.Println("The request to the Payouts API succeeded!")
		return nil
	}

	fmt.Printf("The request to the Payouts API failed with status code %s and body: %s\n",
		result.Status, result.Body)

	return fmt.Errorf("the Payouts API rejected the request: %s", result.Status)
}
