// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"

	"github.com/appfluzzio-bit/fluzz2/internal/authorization"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/openfga"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

const StoreName = "fluzz"

// createFgaModelCmd writes the tenancy relationship model to an openfga store
var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates an openfga model",
	Long:  `Creates the tenancy openfga model, creating the store first when no store id is given`,
	Run: func(cmd *cobra.Command, args []string) {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")

		modelID, finalStoreID, err := createModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		if format == "json" {
			output := struct {
				StoreID string `json:"store_id"`
				ModelID string `json:"model_id"`
			}{
				StoreID: finalStoreID,
				ModelID: modelID,
			}

			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(output); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to encode output: %v", err))
				os.Exit(1)
			}

			return
		}

		cmd.Printf("Created model: %s\n", modelID)
		if storeID == "" {
			cmd.Printf("Created store: %s\n", finalStoreID)
		}
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
}

func createModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()

	fgaClient, err := openfga.NewClient(
		openfga.NewConfig(apiURL, storeID, apiToken, "", verbose, tracer, monitor, logger),
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to create openfga client: %w", err)
	}

	if storeID == "" {
		storeID, err = fgaClient.CreateStore(ctx, StoreName)
		if err != nil {
			return "", "", fmt.Errorf("failed to create store: %w", err)
		}

		if err := fgaClient.SetStoreID(ctx, storeID); err != nil {
			return "", "", fmt.Errorf("failed to select store: %w", err)
		}
	}

	model := authorization.NewAuthorizationModelProvider("v0").GetModel()

	modelID, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to write model: %w", err)
	}

	return modelID, storeID, nil
}
