// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

var (
	ErrIdentityExists   = errors.New("identity already exists")
	ErrInvalidLogin     = errors.New("invalid credentials")
	ErrIdentityNotFound = errors.New("identity not found")
)

// Client talks to the admin API for identity management and to the public
// API for the native login flows
type Client struct {
	admin    *ory.APIClient
	public   *ory.APIClient
	schemaID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func newAPIClient(url string) *ory.APIClient {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: url}}

	return ory.NewAPIClient(conf)
}

func NewClient(adminURL, publicURL, schemaID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	if schemaID == "" {
		schemaID = "default"
	}

	return &Client{
		admin:    newAPIClient(adminURL),
		public:   newAPIClient(publicURL),
		schemaID: schemaID,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CurrentPrincipal returns the authenticated caller, nil when the request is anonymous
func (c *Client) CurrentPrincipal(ctx context.Context) (*types.Principal, error) {
	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, nil
	}

	return c.GetIdentity(ctx, subject)
}

// GetIdentity returns the principal view of an identity
func (c *Client) GetIdentity(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentity")
	defer span.End()

	identity, r, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}

		c.setAvailability(r)

		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return toPrincipal(identity), nil
}

// IdentityExists looks up an identity by its login identifier
func (c *Client) IdentityExists(ctx context.Context, email string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.IdentityExists")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return false, nil
		}

		c.setAvailability(r)

		return false, fmt.Errorf("failed to list identities: %w", err)
	}

	return len(ids) > 0, nil
}

// CreateAccount registers a password identity and returns its id
func (c *Client) CreateAccount(ctx context.Context, email, password string, traits map[string]interface{}) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateAccount")
	defer span.End()

	t := map[string]interface{}{"email": email}
	for k, v := range traits {
		t[k] = v
	}

	body := ory.CreateIdentityBody{
		SchemaId: c.schemaID,
		Traits:   t,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return "", ErrIdentityExists
		}

		c.setAvailability(r)

		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

// DeleteIdentity removes an identity, used to roll back a half-finished sign up
func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.DeleteIdentity")
	defer span.End()

	r, err := c.admin.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil && (r == nil || r.StatusCode != http.StatusNotFound) {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

// SignIn runs the native password login flow and returns the session token
// together with the identity id
func (c *Client) SignIn(ctx context.Context, email, password string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SignIn")
	defer span.End()

	flow, r, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		c.setAvailability(r)
		return "", "", fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&ory.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: email,
			Password:   password,
		},
	)

	login, r, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).Flow(flow.Id).UpdateLoginFlowBody(body).Execute()
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusBadRequest || r.StatusCode == http.StatusUnauthorized) {
			return "", "", ErrInvalidLogin
		}

		c.setAvailability(r)

		return "", "", fmt.Errorf("failed to complete login flow: %w", err)
	}

	return login.GetSessionToken(), login.Session.GetIdentity().Id, nil
}

// SignOut revokes a session token
func (c *Client) SignOut(ctx context.Context, token string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SignOut")
	defer span.End()

	r, err := c.public.FrontendAPI.PerformNativeLogout(ctx).PerformNativeLogoutBody(ory.PerformNativeLogoutBody{SessionToken: token}).Execute()
	if err != nil {
		// an unknown or already revoked session is signed out anyway
		if r != nil && (r.StatusCode == http.StatusBadRequest || r.StatusCode == http.StatusUnauthorized) {
			return nil
		}

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// SessionSubject returns the identity id of an active session token
func (c *Client) SessionSubject(ctx context.Context, token string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SessionSubject")
	defer span.End()

	session, r, err := c.public.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		c.setAvailability(r)
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}

	if !session.GetActive() || session.Identity == nil {
		return "", fmt.Errorf("session is not active")
	}

	return session.Identity.Id, nil
}

func (c *Client) setAvailability(r *http.Response) {
	available := 1.0
	if r == nil || r.StatusCode >= http.StatusInternalServerError {
		available = 0
	}

	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, available); err != nil {
		c.logger.Debugf("failed to record kratos availability: %v", err)
	}
}

func toPrincipal(identity *ory.Identity) *types.Principal {
	p := new(types.Principal)
	p.SubjectID = identity.Id
	p.Claims = map[string]interface{}{}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		p.Claims = traits
		p.Email, _ = traits["email"].(string)
	}

	return p
}
