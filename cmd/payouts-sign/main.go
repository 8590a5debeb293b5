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

// payouts-sign is a command line interface to sign POST requests for
// the Payouts API with an ES512 detached JWS.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	payoutssigning "github.com/TrueLayer/payouts-api-signing-examples"
)

const commonEnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "payouts-sign",
		Short:         "Sign Payouts API requests with an ES512 detached JWS",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	logger := newLogger()

	rootCmd.AddCommand(newSignCmd(logger))
	rootCmd.AddCommand(newSendCmd(logger))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := payoutssigning.GetVersionInfo()
			fmt.Printf("payouts-sign %s (JWS algorithm %s, Payouts API %s)\n",
				info.SigningVersion, info.JWSAlgorithm, info.PayoutsAPIVersion)
		},
	}
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr;
// results (the JWS strings, response status) go to stdout via fmt so
// they stay pipeable.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return zap.Must(cfg.Build())
}

// getUserSetVar reads a flag value, falling back to the environment
// variable when the flag was not set on the command line
func getUserSetVar(cmd *cobra.Command, flagName, envKey string) string {
	if cmd.Flags().Changed(flagName) {
		value, _ := cmd.Flags().GetString(flagName)
		return value
	}

	if value := os.Getenv(envKey); value != "" {
		return value
	}

	value, _ := cmd.Flags().GetString(flagName)
	return value
}
