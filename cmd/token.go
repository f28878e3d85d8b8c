// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
	audience     string
	showExpiry   bool
)

// tokenCmd fetches a client credentials token, the output can be passed to
// --access-token of the API client commands
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using Client Credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		endpoint, err := resolveTokenURL(ctx)
		if err != nil {
			return err
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     endpoint,
			Scopes:       scopes,
		}

		if audience != "" {
			config.EndpointParams = map[string][]string{"audience": {audience}}
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		if showExpiry {
			fmt.Fprintf(cmd.ErrOrStderr(), "token type %s, expires %s\n", token.TokenType, token.Expiry.Format(time.RFC3339))
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)

		return nil
	},
}

// resolveTokenURL prefers the explicit endpoint and falls back to OIDC discovery
func resolveTokenURL(ctx context.Context) (string, error) {
	if tokenURL != "" {
		return tokenURL, nil
	}

	issuer := issuerURL
	if issuer == "" {
		issuer = os.Getenv("OAUTH2_ISSUER")
	}

	if issuer == "" {
		return "", errors.New("either --token-url or --issuer-url must be provided")
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return "", fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
	}

	return provider.Endpoint().TokenURL, nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL for OIDC discovery, defaults to OAUTH2_ISSUER")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
	tokenCmd.Flags().StringVar(&audience, "audience", "", "Audience requested for the token, see OAUTH2_AUDIENCE")
	tokenCmd.Flags().BoolVar(&showExpiry, "show-expiry", false, "Print token type and expiry to stderr")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
