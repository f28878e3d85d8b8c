// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const v0Model = `model
  schema 1.1

type user

type organization
  relations
    define owner: [user]
    define admin: [user] or owner
    define member: admin

type workspace
  relations
    define organization: [organization]
    define admin: [user] or admin from organization
    define manager: [user]
    define agent: [user]
    define viewer: [user]
    define can_manage: admin or manager
    define can_view: can_manage or agent or viewer
`

var models = map[string]string{
	"v0": v0Model,
}

type AuthorizationModelProvider struct {
	version string
}

// GetModel parses the DSL of the selected version, it panics on an unknown
// version or a malformed model as both are programming errors
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, ok := models[a.version]
	if !ok {
		panic(fmt.Sprintf("unknown authorization model version %q", a.version))
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(fmt.Sprintf("invalid authorization model: %v", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		panic(fmt.Sprintf("invalid authorization model: %v", err))
	}

	return model
}

func (a *AuthorizationModelProvider) DSL() string {
	return models[a.version]
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
