// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/appfluzzio-bit/fluzz2/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get the application's version",
	Long:  `Get the application's version and the Go toolchain it was built with`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
				"version": version.Version,
				"go":      runtime.Version(),
			})
		}

		cmd.Printf("App Version: %s (%s)\n", version.Version, runtime.Version())

		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(versionCmd)
}
