// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint     string
	sessionToken string
	accessToken  string
	userID       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fluzz",
	Short: "Fluzz tenancy service",
	Long:  `Fluzz tenancy service CLI for running the API and managing its backing stores.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "API server endpoint")
	rootCmd.PersistentFlags().StringVar(&sessionToken, "session-token", "", "Session token sent as X-Session-Token")
	rootCmd.PersistentFlags().StringVar(&accessToken, "access-token", "", "Bearer token, see the token command")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Identity id passed in the gateway header, only honoured when the server trusts it")
}
