// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/pkg/organizations"
)

var organizationsCmd = &cobra.Command{
	Use:     "organizations",
	Aliases: []string{"orgs"},
	Short:   "Manage organizations through the API",
}

var createOrganizationCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an organization owned by the caller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timezone, _ := cmd.Flags().GetString("timezone")
		currency, _ := cmd.Flags().GetString("currency")

		out := new(organizations.Onboarding)
		err := newAPIClient().do(
			cmd.Context(),
			http.MethodPost,
			"/organizations",
			&organizations.CreateRequest{Name: args[0], Timezone: timezone, Currency: currency},
			out,
		)
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		cmd.Printf("Organization created: %s (ID: %s)\n", out.Organization.Name, out.Organization.ID)
		if out.Workspace != nil {
			cmd.Printf("Default workspace: %s (ID: %s)\n", out.Workspace.Name, out.Workspace.ID)
		}

		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [organization-id]",
	Short: "List the members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		members := make([]*types.OrganizationMember, 0)

		err := newAPIClient().do(cmd.Context(), http.MethodGet, "/organizations/"+url.PathEscape(args[0])+"/members", nil, &members)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "MEMBER_ID\tUSER_ID\tROLE\tSINCE")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.UserID, m.Role, m.CreatedAt.Format("2006-01-02"))
		}

		return w.Flush()
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove-member [organization-id] [member-id]",
	Short: "Remove a member from an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/organizations/" + url.PathEscape(args[0]) + "/members/" + url.PathEscape(args[1])

		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		cmd.Printf("Member removed: %s\n", args[1])

		return nil
	},
}

func init() {
	createOrganizationCmd.Flags().String("timezone", "", "IANA timezone, defaults to "+organizations.DefaultTimezone)
	createOrganizationCmd.Flags().String("currency", "", "ISO 4217 currency code, defaults to "+organizations.DefaultCurrency)

	organizationsCmd.AddCommand(createOrganizationCmd)
	organizationsCmd.AddCommand(listMembersCmd)
	organizationsCmd.AddCommand(removeMemberCmd)

	rootCmd.AddCommand(organizationsCmd)
}
