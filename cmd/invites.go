// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/pkg/invites"
)

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Manage organization invites through the API",
}

var createInviteCmd = &cobra.Command{
	Use:   "create [organization-id] [email] [role]",
	Short: "Invite someone to an organization or one of its workspaces",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, _ := cmd.Flags().GetString("workspace")
		name, _ := cmd.Flags().GetString("name")
		orgUser, _ := cmd.Flags().GetBool("organization-user")

		req := &invites.CreateRequest{Email: args[1], Role: args[2]}
		if workspaceID != "" {
			req.WorkspaceID = &workspaceID
		}

		if name != "" || orgUser {
			req.Metadata = &types.InviteMetadata{Name: name, IsOrganizationUser: orgUser}
		}

		out := new(types.Invite)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/organizations/"+url.PathEscape(args[0])+"/invites", req, out); err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		cmd.Printf("User invited: %s\n", out.Email)
		cmd.Printf("Invite: %s, expires %s\n", out.ID, out.ExpiresAt.Format(time.RFC3339))

		return nil
	},
}

var listInvitesCmd = &cobra.Command{
	Use:   "list [organization-id]",
	Short: "List the pending invites of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pending := make([]*types.Invite, 0)

		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/organizations/"+url.PathEscape(args[0])+"/invites", nil, &pending); err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "INVITE_ID\tEMAIL\tROLE\tWORKSPACE\tEXPIRES")
		for _, i := range pending {
			workspace := "-"
			if i.WorkspaceID != nil {
				workspace = *i.WorkspaceID
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.ID, i.Email, i.Role, workspace, i.ExpiresAt.Format(time.RFC3339))
		}

		return w.Flush()
	},
}

func inviteActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " [organization-id] [invite-id]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/organizations/" + url.PathEscape(args[0]) + "/invites/" + url.PathEscape(args[1]) + "/" + action

			out := new(types.Invite)
			if err := newAPIClient().do(cmd.Context(), http.MethodPost, path, nil, out); err != nil {
				return fmt.Errorf("failed to %s invite: %w", action, err)
			}

			if out.ID != "" {
				cmd.Printf("Invite %s: %s\n", out.ID, out.Status)
			} else {
				cmd.Printf("Invite %s done: %s\n", action, args[1])
			}

			return nil
		},
	}
}

func init() {
	createInviteCmd.Flags().String("workspace", "", "Workspace to grant, omit for organization standing")
	createInviteCmd.Flags().String("name", "", "Display name for the invitee's profile")
	createInviteCmd.Flags().Bool("organization-user", false, "Grant organization standing even with a workspace")

	invitesCmd.AddCommand(createInviteCmd)
	invitesCmd.AddCommand(listInvitesCmd)
	invitesCmd.AddCommand(inviteActionCmd("resend", "Resend a pending invite with a fresh expiry"))
	invitesCmd.AddCommand(inviteActionCmd("cancel", "Cancel a pending invite"))

	rootCmd.AddCommand(invitesCmd)
}
