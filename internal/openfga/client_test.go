// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"testing"

	fga "github.com/openfga/go-sdk"
)

func TestSameModelIgnoresID(t *testing.T) {
	a := fga.AuthorizationModel{Id: "01A", SchemaVersion: "1.1", TypeDefinitions: []fga.TypeDefinition{{Type: "user"}}}
	b := fga.AuthorizationModel{Id: "01B", SchemaVersion: "1.1", TypeDefinitions: []fga.TypeDefinition{{Type: "user"}}}

	eq, err := sameModel(a, b)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if !eq {
		t.Fatal("expected models to match")
	}

	b.TypeDefinitions = append(b.TypeDefinitions, fga.TypeDefinition{Type: "workspace"})

	if eq, _ := sameModel(a, b); eq {
		t.Fatal("expected models to differ")
	}
}

func TestTupleKeys(t *testing.T) {
	tuple := NewTuple("user:u1", "admin", "organization:o1")

	if k := tuple.key(); k.User != "user:u1" || k.Relation != "admin" || k.Object != "organization:o1" {
		t.Fatalf("unexpected key %+v", k)
	}

	if k := tuple.keyWithoutCondition(); k.Object != "organization:o1" {
		t.Fatalf("unexpected key %+v", k)
	}
}
