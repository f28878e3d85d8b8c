// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) error {
	return c.c.SetStoreId(storeID)
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	store, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store: %w", err)
	}

	return store.GetId(), nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	resp, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write model: %w", err)
	}

	return resp.GetAuthorizationModelId(), nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	resp, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.setAvailability(0)
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	c.setAvailability(1)

	return resp.AuthorizationModel, nil
}

// CompareModel checks the deployed model against the expected one, ids are ignored
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	return sameModel(*current, model)
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextual ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	for _, t := range contextual {
		body.ContextualTuples = append(body.ContextualTuples, t.key())
	}

	resp, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		return false, fmt.Errorf("failed to check %s#%s@%s: %w", object, relation, user, err)
	}

	return resp.GetAllowed(), nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	options := client.ClientReadOptions{}
	if continuationToken != "" {
		options.ContinuationToken = &continuationToken
	}

	return c.c.Read(ctx).Body(body).Options(options).Execute()
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientWriteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.key())
	}

	if _, err := c.c.WriteTuples(ctx).Body(body).Execute(); err != nil {
		return fmt.Errorf("failed to write tuples: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.keyWithoutCondition())
	}

	if _, err := c.c.DeleteTuples(ctx).Body(body).Execute(); err != nil {
		return fmt.Errorf("failed to delete tuples: %w", err)
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, v); err != nil {
		c.logger.Debugf("failed to record openfga availability: %v", err)
	}
}

func sameModel(a, b fga.AuthorizationModel) (bool, error) {
	a.Id, b.Id = "", ""

	ja, err := json.Marshal(a)
	if err != nil {
		return false, err
	}

	jb, err := json.Marshal(b)
	if err != nil {
		return false, err
	}

	var ma, mb interface{}
	if err := json.Unmarshal(ja, &ma); err != nil {
		return false, err
	}
	if err := json.Unmarshal(jb, &mb); err != nil {
		return false, err
	}

	return reflect.DeepEqual(ma, mb), nil
}

func NewClient(cfg *Config) (*Client, error) {
	c := new(Client)
	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	conf := &client.ClientConfiguration{
		ApiUrl:               cfg.ApiURL,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
	}

	if cfg.ApiToken != "" {
		conf.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	fgaClient, err := client.NewSdkClient(conf)
	if err != nil {
		return nil, fmt.Errorf("issues setting up openfga client: %w", err)
	}

	c.c = fgaClient

	return c, nil
}
