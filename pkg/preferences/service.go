// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"context"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store      PreferenceStore
	workspaces WorkspaceListerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Current resolves the selection against the accessible workspaces and clears a
// persisted id that is no longer among them
func (s *Service) Current(ctx context.Context, prefs SessionPreferences, workspaces []*types.Workspace) (*Selection, error) {
	ctx, span := s.tracer.Start(ctx, "preferences.Service.Current")
	defer span.End()

	persisted, found, err := s.store.Get(ctx, prefs.key())
	if err != nil {
		// selection is a convenience, fall back to the default one
		s.logger.Warnf("failed to read workspace selection: %v", err)
		found = false
	}

	if !found {
		persisted = ""
	}

	selection := ResolveSelection(persisted, workspaces)

	if persisted != "" && persisted != AllWorkspaces && (selection.Workspace == nil || selection.Workspace.ID != persisted) {
		if err := s.store.Clear(ctx, prefs.key()); err != nil {
			s.logger.Warnf("failed to clear stale workspace selection: %v", err)
		}
	}

	return &selection, nil
}

// Select persists the choice, the workspace must be one the user can access
func (s *Service) Select(ctx context.Context, prefs SessionPreferences, workspaceID string) (*Selection, error) {
	ctx, span := s.tracer.Start(ctx, "preferences.Service.Select")
	defer span.End()

	selection := &Selection{All: true}

	if workspaceID != AllWorkspaces {
		workspaces, err := s.workspaces.List(ctx, prefs.UserID, prefs.OrganizationID)
		if err != nil {
			return nil, err
		}

		for _, w := range workspaces {
			if w.ID == workspaceID {
				selection = &Selection{Workspace: w}
				break
			}
		}

		if selection.Workspace == nil {
			return nil, apperror.NotFound("workspace not found")
		}
	}

	if err := s.store.Set(ctx, prefs.key(), workspaceID); err != nil {
		s.logger.Errorf("failed to persist workspace selection: %v", err)
		return nil, apperror.Store(err)
	}

	return selection, nil
}

func NewService(store PreferenceStore, workspaces WorkspaceListerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.workspaces = workspaces

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
