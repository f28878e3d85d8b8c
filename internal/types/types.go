// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

type OrganizationRole string

const (
	OrganizationRoleOwner OrganizationRole = "owner"
	OrganizationRoleAdmin OrganizationRole = "admin"
)

func (r OrganizationRole) Valid() bool {
	return r == OrganizationRoleOwner || r == OrganizationRoleAdmin
}

type WorkspaceRole string

const (
	WorkspaceRoleAdmin   WorkspaceRole = "admin"
	WorkspaceRoleManager WorkspaceRole = "manager"
	WorkspaceRoleAgent   WorkspaceRole = "agent"
	WorkspaceRoleViewer  WorkspaceRole = "viewer"
)

func (r WorkspaceRole) Valid() bool {
	switch r {
	case WorkspaceRoleAdmin, WorkspaceRoleManager, WorkspaceRoleAgent, WorkspaceRoleViewer:
		return true
	}

	return false
}

// CanManage reports whether the role grants management rights inside the workspace
func (r WorkspaceRole) CanManage() bool {
	return r == WorkspaceRoleAdmin || r == WorkspaceRoleManager
}

type DepartmentRole string

const (
	DepartmentRoleManager DepartmentRole = "manager"
	DepartmentRoleAgent   DepartmentRole = "agent"
)

func (r DepartmentRole) Valid() bool {
	return r == DepartmentRoleManager || r == DepartmentRoleAgent
}

type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusCancelled InviteStatus = "cancelled"
	InviteStatusExpired   InviteStatus = "expired"
)

type User struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

type Organization struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Timezone  string     `db:"timezone" json:"timezone"`
	Currency  string     `db:"currency" json:"currency"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// UserOrganization is an organization seen from one of its members
type UserOrganization struct {
	Organization
	Role OrganizationRole `json:"role"`
}

type OrganizationMember struct {
	ID             string           `db:"id" json:"id"`
	OrganizationID string           `db:"organization_id" json:"organization_id"`
	UserID         string           `db:"user_id" json:"user_id"`
	Role           OrganizationRole `db:"role" json:"role"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
}

type Workspace struct {
	ID             string     `db:"id" json:"id"`
	OrganizationID string     `db:"organization_id" json:"organization_id"`
	Name           string     `db:"name" json:"name"`
	Slug           *string    `db:"slug" json:"slug,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	DeletedAt      *time.Time `db:"deleted_at" json:"-"`
}

type WorkspaceMember struct {
	ID          string        `db:"id" json:"id"`
	WorkspaceID string        `db:"workspace_id" json:"workspace_id"`
	UserID      string        `db:"user_id" json:"user_id"`
	Role        WorkspaceRole `db:"role" json:"role"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

type Department struct {
	ID          string     `db:"id" json:"id"`
	WorkspaceID string     `db:"workspace_id" json:"workspace_id"`
	Name        string     `db:"name" json:"name"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at" json:"-"`
}

type DepartmentMember struct {
	ID           string         `db:"id" json:"id"`
	DepartmentID string         `db:"department_id" json:"department_id"`
	UserID       string         `db:"user_id" json:"user_id"`
	Role         DepartmentRole `db:"role" json:"role"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// InviteMetadata holds the profile fields collected by the inviting admin,
// the invitee has no account to store them on yet
type InviteMetadata struct {
	Name               string `json:"name,omitempty"`
	Phone              string `json:"phone,omitempty"`
	IsOrganizationUser bool   `json:"is_organization_user"`
}

type Invite struct {
	ID             string          `db:"id" json:"id"`
	OrganizationID string          `db:"organization_id" json:"organization_id"`
	WorkspaceID    *string         `db:"workspace_id" json:"workspace_id,omitempty"`
	Email          string          `db:"email" json:"email"`
	Role           string          `db:"role" json:"role"`
	Status         InviteStatus    `db:"status" json:"status"`
	ExpiresAt      time.Time       `db:"expires_at" json:"expires_at"`
	InvitedBy      string          `db:"invited_by" json:"invited_by"`
	Metadata       *InviteMetadata `db:"metadata" json:"metadata,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// IsExpired is the derived expiry condition, it holds from expires_at onwards
func (i *Invite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// TargetsOrganization reports whether accepting the invite grants organization
// standing rather than a single workspace membership
func (i *Invite) TargetsOrganization() bool {
	return i.WorkspaceID == nil || (i.Metadata != nil && i.Metadata.IsOrganizationUser)
}

// Principal is the identity provider's view of the authenticated caller
type Principal struct {
	SubjectID string
	Email     string
	Claims    map[string]interface{}
}

// Claim returns a string claim, empty when missing or not a string
func (p *Principal) Claim(name string) string {
	if p == nil || p.Claims == nil {
		return ""
	}

	v, _ := p.Claims[name].(string)

	return v
}

// NormalizeEmail is the canonical form used for lookups and uniqueness
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailLocalPart is the part before the @, used as display name fallback
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}
