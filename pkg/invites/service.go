// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/kratos"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/internal/validation"
)

var _ ServiceInterface = (*Service)(nil)

var (
	errCannotInviteToOrganization = apperror.PermissionDenied("you don't have permission to invite members to this organization")
	errCannotInviteToWorkspace    = apperror.PermissionDenied("you don't have permission to invite members to this workspace")
	errCannotManageInvites        = apperror.PermissionDenied("you don't have permission to manage invites of this organization")
	errInvalidOrganizationRole    = apperror.Validation("role: must be one of owner admin")
	errInvalidWorkspaceRole       = apperror.Validation("role: must be one of admin manager agent viewer")
	errWorkspaceNotFound          = apperror.NotFound("workspace not found")
	errInviteNotFound             = apperror.NotFound("invite not found or already used")
	errInviteExpired              = apperror.Expired("this invite has expired")
	errInviteNotPending           = apperror.Conflict("invite is no longer pending")
	errInvitePending              = apperror.Conflict("invite pending")
	errAlreadyMember              = apperror.Conflict("already a member")
	errAccountExists              = apperror.Conflict("an account with this email already exists, sign in to accept the invite")
	errEmailMismatch              = apperror.Forbidden("this invite was issued to a different email address")
)

type Service struct {
	storage     StorageInterface
	tx          TxManagerInterface
	permissions PermissionsInterface
	provider    ProviderInterface
	dispatcher  DispatcherInterface
	authz       AuthorizerInterface
	cache       CacheInterface
	validate    *validator.Validate
	now         func() time.Time

	baseURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// membership is what accepting an invite granted, used to mirror the grant
type membership struct {
	orgRole      *types.OrganizationRole
	workspaceIDs []string
	wsRole       types.WorkspaceRole
}

func (s *Service) storeError(op string, err error) error {
	s.logger.Errorf("failed to %s: %v", op, err)
	return apperror.Store(err)
}

// txError passes service errors raised inside a transaction through untouched
func (s *Service) txError(op string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return s.storeError(op, err)
}

func (s *Service) link(inviteID string) string {
	return fmt.Sprintf("%s/invite/%s", strings.TrimRight(s.baseURL, "/"), inviteID)
}

func (s *Service) count(invite *types.Invite, status types.InviteStatus) {
	scope := "workspace"
	if invite.TargetsOrganization() {
		scope = "organization"
	}

	if err := s.monitor.IncInviteTransition(map[string]string{"scope": scope, "status": string(status)}); err != nil {
		s.logger.Debugf("failed to count invite transition: %v", err)
	}
}

// notify never fails the caller, the invite stays valid and can be resent
func (s *Service) notify(ctx context.Context, invite *types.Invite) {
	if err := s.dispatcher.SendInviteEmail(ctx, invite.Email, s.link(invite.ID)); err != nil {
		s.logger.Warnf("failed to dispatch invite email for %s: %v", invite.ID, err)
	}
}

func (s *Service) authorizeCreate(ctx context.Context, actorID string, req *CreateRequest) error {
	if req.targetsOrganization() {
		ok, err := s.permissions.IsOrgAdmin(ctx, actorID, req.OrganizationID)
		if err != nil {
			return s.storeError("evaluate organization permissions", err)
		}

		if !ok {
			s.logger.Security().AuthzFailure(actorID, "organization:"+req.OrganizationID+":invites")
			return errCannotInviteToOrganization
		}

		return nil
	}

	ok, err := s.permissions.CanManageWorkspaceMembers(ctx, actorID, *req.WorkspaceID)
	if err != nil {
		return s.storeError("evaluate workspace permissions", err)
	}

	if !ok {
		s.logger.Security().AuthzFailure(actorID, "workspace:"+*req.WorkspaceID+":invites")
		return errCannotInviteToWorkspace
	}

	return nil
}

func (s *Service) authorizeAdmin(ctx context.Context, actorID, orgID string) error {
	ok, err := s.permissions.IsOrgAdmin(ctx, actorID, orgID)
	if err != nil {
		return s.storeError("evaluate organization permissions", err)
	}

	if !ok {
		s.logger.Security().AuthzFailure(actorID, "organization:"+orgID+":invites")
		return errCannotManageInvites
	}

	return nil
}

// alreadyMember reports whether a live user with the email holds a membership
// in the scope the invite targets
func (s *Service) alreadyMember(ctx context.Context, req *CreateRequest) (bool, error) {
	user, err := s.storage.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if req.targetsOrganization() {
		_, err = s.storage.GetOrganizationMember(ctx, req.OrganizationID, user.ID)
	} else {
		_, err = s.storage.GetWorkspaceMember(ctx, *req.WorkspaceID, user.ID)
	}

	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}

	return err == nil, err
}

func (s *Service) Create(ctx context.Context, actorID string, req *CreateRequest) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Create")
	defer span.End()

	if req.WorkspaceID != nil && *req.WorkspaceID == "" {
		req.WorkspaceID = nil
	}

	if err := s.authorizeCreate(ctx, actorID, req); err != nil {
		return nil, err
	}

	req.Email = types.NormalizeEmail(req.Email)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	if req.targetsOrganization() {
		if !types.OrganizationRole(req.Role).Valid() {
			return nil, errInvalidOrganizationRole
		}
	} else if !types.WorkspaceRole(req.Role).Valid() {
		return nil, errInvalidWorkspaceRole
	}

	if req.WorkspaceID != nil {
		ws, err := s.storage.GetWorkspaceByID(ctx, *req.WorkspaceID)
		if errors.Is(err, storage.ErrNotFound) || (err == nil && ws.OrganizationID != req.OrganizationID) {
			return nil, errWorkspaceNotFound
		}

		if err != nil {
			return nil, s.storeError("read workspace", err)
		}
	}

	member, err := s.alreadyMember(ctx, req)
	if err != nil {
		return nil, s.storeError("check existing membership", err)
	}

	if member {
		return nil, errAlreadyMember
	}

	now := s.now().UTC()

	_, err = s.storage.FindPendingInvite(ctx, req.OrganizationID, req.Email, now)
	if err == nil {
		return nil, errInvitePending
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, s.storeError("look up pending invite", err)
	}

	var invite *types.Invite

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.ExpireStaleInvites(ctx, req.OrganizationID, req.Email, now); err != nil {
			return err
		}

		var err error

		invite, err = s.storage.CreateInvite(ctx, &types.Invite{
			OrganizationID: req.OrganizationID,
			WorkspaceID:    req.WorkspaceID,
			Email:          req.Email,
			Role:           req.Role,
			Status:         types.InviteStatusPending,
			ExpiresAt:      now.Add(Lifetime),
			InvitedBy:      actorID,
			Metadata:       req.Metadata,
			CreatedAt:      now,
		})

		return err
	})

	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, errInvitePending
	}

	if err != nil {
		return nil, s.storeError("create invite", err)
	}

	s.count(invite, types.InviteStatusPending)
	s.notify(ctx, invite)
	s.logger.Security().AdminAction(actorID, "create_invite", "organization:"+req.OrganizationID+":invite:"+invite.ID)

	return invite, nil
}

// pendingInvite loads an invite that can still be accepted at now
func (s *Service) pendingInvite(ctx context.Context, inviteID string, now time.Time) (*types.Invite, error) {
	invite, err := s.storage.GetInviteByID(ctx, inviteID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errInviteNotFound
	}

	if err != nil {
		return nil, s.storeError("read invite", err)
	}

	if invite.Status != types.InviteStatusPending {
		return nil, errInviteNotFound
	}

	if invite.IsExpired(now) {
		return nil, errInviteExpired
	}

	return invite, nil
}

// materialize writes the memberships the invite grants, it must run inside
// the acceptance transaction. Existing organization standing is kept as is.
func (s *Service) materialize(ctx context.Context, invite *types.Invite, userID string, ensureOrgStanding bool) (*membership, error) {
	grant := new(membership)

	if invite.TargetsOrganization() {
		role := types.OrganizationRole(invite.Role)

		_, err := s.storage.AddOrganizationMember(ctx, invite.OrganizationID, userID, role)
		switch {
		case err == nil:
			grant.orgRole = &role
		case !errors.Is(err, storage.ErrDuplicateKey):
			return nil, err
		}

		workspaces, err := s.storage.ListWorkspacesByOrganization(ctx, invite.OrganizationID)
		if err != nil {
			return nil, err
		}

		for _, ws := range workspaces {
			grant.workspaceIDs = append(grant.workspaceIDs, ws.ID)
		}

		grant.wsRole = types.WorkspaceRoleAdmin

		if _, err := s.storage.AddWorkspaceMembers(ctx, userID, grant.wsRole, grant.workspaceIDs); err != nil {
			return nil, err
		}

		return grant, nil
	}

	ws, err := s.storage.GetWorkspaceByID(ctx, *invite.WorkspaceID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errWorkspaceNotFound
	}

	if err != nil {
		return nil, err
	}

	grant.wsRole = types.WorkspaceRole(invite.Role)
	grant.workspaceIDs = []string{ws.ID}

	if _, err := s.storage.AddWorkspaceMember(ctx, ws.ID, userID, grant.wsRole); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, errAlreadyMember
		}

		return nil, err
	}

	if !ensureOrgStanding {
		return grant, nil
	}

	_, err = s.storage.GetOrganizationMember(ctx, invite.OrganizationID, userID)
	if err == nil {
		return grant, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	role := types.OrganizationRoleAdmin
	if _, err := s.storage.AddOrganizationMember(ctx, invite.OrganizationID, userID, role); err != nil {
		return nil, err
	}

	grant.orgRole = &role

	return grant, nil
}

// accept runs the acceptance transaction, losing the race for the pending
// row to a concurrent acceptance is reported as not found
func (s *Service) accept(ctx context.Context, invite *types.Invite, user *types.User, upsert, ensureOrgStanding bool) (*types.User, *membership, error) {
	var grant *membership

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if upsert {
			u, err := s.storage.UpsertUser(ctx, user)
			if err != nil {
				return err
			}

			user = u
		}

		var err error

		if grant, err = s.materialize(ctx, invite, user.ID, ensureOrgStanding); err != nil {
			return err
		}

		err = s.storage.TransitionInvite(ctx, invite.ID, types.InviteStatusPending, types.InviteStatusAccepted)
		if errors.Is(err, storage.ErrNotFound) {
			return errInviteNotFound
		}

		return err
	})

	if err != nil {
		return nil, nil, s.txError("accept invite", err)
	}

	invite.Status = types.InviteStatusAccepted

	return user, grant, nil
}

// mirror copies the accepted grant to the relationship store, best effort
func (s *Service) mirror(ctx context.Context, invite *types.Invite, userID string, grant *membership) {
	s.count(invite, types.InviteStatusAccepted)
	s.cache.InvalidateOrganization(invite.OrganizationID)

	if grant.orgRole != nil {
		if err := s.authz.AssignOrganizationMember(ctx, invite.OrganizationID, userID, *grant.orgRole); err != nil {
			s.logger.Warnf("failed to mirror organization member %s: %v", userID, err)
		}
	}

	if err := s.authz.AssignWorkspaceMembers(ctx, userID, grant.wsRole, grant.workspaceIDs...); err != nil {
		s.logger.Warnf("failed to mirror workspace members %s: %v", userID, err)
	}
}

// AcceptNew onboards an invitee without an account: the identity is created
// first, then the profile, the memberships and the invite transition are
// committed together. A failed commit removes the identity again.
func (s *Service) AcceptNew(ctx context.Context, inviteID string, req *AcceptRequest) (*Acceptance, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.AcceptNew")
	defer span.End()

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	invite, err := s.pendingInvite(ctx, inviteID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	_, err = s.storage.GetUserByEmail(ctx, invite.Email)
	if err == nil {
		return nil, errAccountExists
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, s.storeError("look up user by email", err)
	}

	exists, err := s.provider.IdentityExists(ctx, invite.Email)
	if err != nil {
		return nil, s.storeError("look up identity", err)
	}

	if exists {
		return nil, errAccountExists
	}

	user := &types.User{Email: invite.Email, Name: types.EmailLocalPart(invite.Email)}
	traits := map[string]interface{}{}

	if m := invite.Metadata; m != nil {
		if m.Name != "" {
			user.Name = m.Name
		}

		if m.Phone != "" {
			phone := m.Phone
			user.Phone = &phone
			traits["phone"] = phone
		}
	}

	traits["name"] = user.Name

	user.ID, err = s.provider.CreateAccount(ctx, invite.Email, req.Password, traits)
	if errors.Is(err, kratos.ErrIdentityExists) {
		return nil, errAccountExists
	}

	if err != nil {
		return nil, s.storeError("create identity", err)
	}

	identityID := user.ID

	user, grant, err := s.accept(ctx, invite, user, true, false)
	if err != nil {
		if derr := s.provider.DeleteIdentity(ctx, identityID); derr != nil {
			s.logger.Errorf("failed to roll back identity of invite %s: %v", invite.ID, derr)
		}

		return nil, err
	}

	s.mirror(ctx, invite, user.ID, grant)

	out := &Acceptance{User: user, Invite: invite}

	token, _, err := s.provider.SignIn(ctx, invite.Email, req.Password)
	if err != nil {
		s.logger.Warnf("invite %s accepted but automatic sign in failed: %v", invite.ID, err)
		return out, nil
	}

	out.Token = token

	return out, nil
}

// AcceptAuthenticated lets a signed in user join with the invite issued to
// their email. On the workspace path the user also gains organization
// standing when they have none.
func (s *Service) AcceptAuthenticated(ctx context.Context, user *types.User, inviteID string) (*Acceptance, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.AcceptAuthenticated")
	defer span.End()

	if user == nil {
		return nil, apperror.AuthenticationRequired()
	}

	invite, err := s.pendingInvite(ctx, inviteID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if types.NormalizeEmail(user.Email) != invite.Email {
		s.logger.Security().AuthzFailure(user.ID, "invite:"+invite.ID)
		return nil, errEmailMismatch
	}

	// a profile synthesized from the identity has never been written
	upsert := user.CreatedAt.IsZero()

	accepted, grant, err := s.accept(ctx, invite, user, upsert, true)
	if err != nil {
		return nil, err
	}

	s.mirror(ctx, invite, accepted.ID, grant)

	return &Acceptance{User: accepted, Invite: invite}, nil
}

// invite loads an invite of the organization for an administrative action
func (s *Service) invite(ctx context.Context, orgID, inviteID string) (*types.Invite, error) {
	invite, err := s.storage.GetInviteByID(ctx, inviteID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && invite.OrganizationID != orgID) {
		return nil, errInviteNotFound
	}

	if err != nil {
		return nil, s.storeError("read invite", err)
	}

	if invite.Status != types.InviteStatusPending {
		return nil, errInviteNotPending
	}

	return invite, nil
}

// Resend retires the pending invite and issues a copy with a fresh window,
// the actor becomes the inviter of the copy
func (s *Service) Resend(ctx context.Context, actorID, orgID, inviteID string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Resend")
	defer span.End()

	if err := s.authorizeAdmin(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	old, err := s.invite(ctx, orgID, inviteID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()

	var invite *types.Invite

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		err := s.storage.TransitionInvite(ctx, old.ID, types.InviteStatusPending, types.InviteStatusExpired)
		if errors.Is(err, storage.ErrNotFound) {
			return errInviteNotPending
		}

		if err != nil {
			return err
		}

		invite, err = s.storage.CreateInvite(ctx, &types.Invite{
			OrganizationID: old.OrganizationID,
			WorkspaceID:    old.WorkspaceID,
			Email:          old.Email,
			Role:           old.Role,
			Status:         types.InviteStatusPending,
			ExpiresAt:      now.Add(Lifetime),
			InvitedBy:      actorID,
			Metadata:       old.Metadata,
			CreatedAt:      now,
		})

		if errors.Is(err, storage.ErrDuplicateKey) {
			return errInvitePending
		}

		return err
	})

	if err != nil {
		return nil, s.txError("resend invite", err)
	}

	s.count(old, types.InviteStatusExpired)
	s.count(invite, types.InviteStatusPending)
	s.notify(ctx, invite)
	s.logger.Security().AdminAction(actorID, "resend_invite", "organization:"+orgID+":invite:"+old.ID)

	return invite, nil
}

func (s *Service) Cancel(ctx context.Context, actorID, orgID, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Cancel")
	defer span.End()

	if err := s.authorizeAdmin(ctx, actorID, orgID); err != nil {
		return err
	}

	invite, err := s.invite(ctx, orgID, inviteID)
	if err != nil {
		return err
	}

	err = s.storage.TransitionInvite(ctx, inviteID, types.InviteStatusPending, types.InviteStatusCancelled)
	if errors.Is(err, storage.ErrNotFound) {
		return errInviteNotPending
	}

	if err != nil {
		return s.storeError("cancel invite", err)
	}

	s.count(invite, types.InviteStatusCancelled)
	s.logger.Security().AdminAction(actorID, "cancel_invite", "organization:"+orgID+":invite:"+inviteID)

	return nil
}

// Details is the unauthenticated preview shown on the invite landing page
func (s *Service) Details(ctx context.Context, inviteID string) (*Details, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Details")
	defer span.End()

	invite, err := s.storage.GetInviteByID(ctx, inviteID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errInviteNotFound
	}

	if err != nil {
		return nil, s.storeError("read invite", err)
	}

	if invite.Status != types.InviteStatusPending {
		return nil, errInviteNotPending
	}

	if invite.IsExpired(s.now().UTC()) {
		return nil, errInviteExpired
	}

	org, err := s.storage.GetOrganizationByID(ctx, invite.OrganizationID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errInviteNotFound
	}

	if err != nil {
		return nil, s.storeError("read organization", err)
	}

	details := &Details{Invite: invite, OrganizationName: org.Name}

	if invite.WorkspaceID != nil {
		ws, err := s.storage.GetWorkspaceByID(ctx, *invite.WorkspaceID)
		switch {
		case err == nil:
			details.WorkspaceName = &ws.Name
		case !errors.Is(err, storage.ErrNotFound):
			return nil, s.storeError("read workspace", err)
		}
	}

	return details, nil
}

func (s *Service) List(ctx context.Context, actorID, orgID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.List")
	defer span.End()

	if err := s.authorizeAdmin(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	invites, err := s.storage.ListPendingInvites(ctx, orgID)
	if err != nil {
		return nil, s.storeError("list invites", err)
	}

	if invites == nil {
		invites = []*types.Invite{}
	}

	return invites, nil
}

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	permissions PermissionsInterface,
	provider ProviderInterface,
	dispatcher DispatcherInterface,
	authz AuthorizerInterface,
	cache CacheInterface,
	baseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.permissions = permissions
	s.provider = provider
	s.dispatcher = dispatcher
	s.authz = authz
	s.cache = cache
	s.validate = validation.New()
	s.now = time.Now

	s.baseURL = baseURL

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
