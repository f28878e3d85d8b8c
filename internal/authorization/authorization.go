// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/openfga"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

// Authorizer mirrors memberships as relationship tuples, access decisions are
// taken on the relational store and never read back from here
type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model := *NewAuthorizationModelProvider("v0").GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}

	if !eq {
		return ErrInvalidAuthModel
	}

	return nil
}

// CanManageWorkspace asks the mirror, used to audit drift against the store
func (a *Authorizer) CanManageWorkspace(ctx context.Context, workspaceID, userID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageWorkspace")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userID), CAN_MANAGE_PERMISSION, WorkspaceTuple(workspaceID))
}

func (a *Authorizer) AssignOrganizationMember(ctx context.Context, orgID, userID string, role types.OrganizationRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrganizationMember")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(UserTuple(userID), string(role), OrganizationTuple(orgID)))
}

func (a *Authorizer) RemoveOrganizationMember(ctx context.Context, orgID, userID string, role types.OrganizationRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrganizationMember")
	defer span.End()

	return a.client.DeleteTuples(ctx, *openfga.NewTuple(UserTuple(userID), string(role), OrganizationTuple(orgID)))
}

// LinkWorkspace binds a workspace to its organization so organization admins inherit access
func (a *Authorizer) LinkWorkspace(ctx context.Context, workspaceID, orgID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkWorkspace")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(OrganizationTuple(orgID), ORGANIZATION_RELATION, WorkspaceTuple(workspaceID)))
}

func (a *Authorizer) AssignWorkspaceMembers(ctx context.Context, userID string, role types.WorkspaceRole, workspaceIDs ...string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignWorkspaceMembers")
	defer span.End()

	tuples := make([]openfga.Tuple, 0, len(workspaceIDs))
	for _, id := range workspaceIDs {
		tuples = append(tuples, *openfga.NewTuple(UserTuple(userID), string(role), WorkspaceTuple(id)))
	}

	return a.client.WriteTuples(ctx, tuples...)
}

func (a *Authorizer) RemoveWorkspaceMember(ctx context.Context, workspaceID, userID string, role types.WorkspaceRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveWorkspaceMember")
	defer span.End()

	return a.client.DeleteTuples(ctx, *openfga.NewTuple(UserTuple(userID), string(role), WorkspaceTuple(workspaceID)))
}

// DeleteWorkspace drops every tuple whose object is the workspace
func (a *Authorizer) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteWorkspace")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", WorkspaceTuple(workspaceID), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}

		if len(r.Tuples) == 0 {
			break
		}

		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}

		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}

		if r.ContinuationToken == "" {
			break
		}

		cToken = r.ContinuationToken
	}

	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
