// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

func newTestService(store PreferenceStore, lister WorkspaceListerInterface) *Service {
	return NewService(store, lister, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceCurrentClearsStaleSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prefs := SessionPreferences{UserID: "u1", OrganizationID: "o1"}
	workspaces := []*types.Workspace{{ID: "w1"}, {ID: "w2"}}

	store := NewMockPreferenceStore(ctrl)
	store.EXPECT().Get(gomock.Any(), prefs.key()).Return("w-deleted", true, nil)
	store.EXPECT().Clear(gomock.Any(), prefs.key()).Return(nil)

	sel, err := newTestService(store, NewMockWorkspaceListerInterface(ctrl)).Current(context.Background(), prefs, workspaces)
	require.NoError(t, err)
	assert.Equal(t, "w1", sel.Workspace.ID)
}

func TestServiceCurrentStoreFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prefs := SessionPreferences{UserID: "u1", OrganizationID: "o1"}

	store := NewMockPreferenceStore(ctrl)
	store.EXPECT().Get(gomock.Any(), prefs.key()).Return("", false, errors.New("redis down"))

	sel, err := newTestService(store, NewMockWorkspaceListerInterface(ctrl)).Current(context.Background(), prefs, []*types.Workspace{{ID: "w1"}})
	require.NoError(t, err)
	assert.Equal(t, "w1", sel.Workspace.ID)
}

func TestServiceSelect(t *testing.T) {
	prefs := SessionPreferences{UserID: "u1", OrganizationID: "o1"}
	workspaces := []*types.Workspace{{ID: "w1"}, {ID: "w2"}}

	tests := []struct {
		name        string
		workspaceID string
		setupMocks  func(*MockPreferenceStore, *MockWorkspaceListerInterface)
		expected    *Selection
		expectedErr apperror.Kind
	}{
		{
			name:        "select all",
			workspaceID: AllWorkspaces,
			setupMocks: func(s *MockPreferenceStore, l *MockWorkspaceListerInterface) {
				s.EXPECT().Set(gomock.Any(), prefs.key(), AllWorkspaces).Return(nil)
			},
			expected: &Selection{All: true},
		},
		{
			name:        "select accessible workspace",
			workspaceID: "w2",
			setupMocks: func(s *MockPreferenceStore, l *MockWorkspaceListerInterface) {
				l.EXPECT().List(gomock.Any(), "u1", "o1").Return(workspaces, nil)
				s.EXPECT().Set(gomock.Any(), prefs.key(), "w2").Return(nil)
			},
			expected: &Selection{Workspace: workspaces[1]},
		},
		{
			name:        "select inaccessible workspace",
			workspaceID: "w9",
			setupMocks: func(s *MockPreferenceStore, l *MockWorkspaceListerInterface) {
				l.EXPECT().List(gomock.Any(), "u1", "o1").Return(workspaces, nil)
			},
			expectedErr: apperror.KindNotFound,
		},
		{
			name:        "store failure",
			workspaceID: "w1",
			setupMocks: func(s *MockPreferenceStore, l *MockWorkspaceListerInterface) {
				l.EXPECT().List(gomock.Any(), "u1", "o1").Return(workspaces, nil)
				s.EXPECT().Set(gomock.Any(), prefs.key(), "w1").Return(errors.New("redis down"))
			},
			expectedErr: apperror.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockPreferenceStore(ctrl)
			lister := NewMockWorkspaceListerInterface(ctrl)
			tt.setupMocks(store, lister)

			sel, err := newTestService(store, lister).Select(context.Background(), prefs, tt.workspaceID)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, apperror.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel)
		})
	}
}
