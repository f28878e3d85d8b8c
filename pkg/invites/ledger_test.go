// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

// ledger is an in-memory invites table with the pending partial unique index
type ledger struct {
	rows map[string]*types.Invite
	seq  int
}

func newLedger(seed ...*types.Invite) *ledger {
	l := &ledger{rows: map[string]*types.Invite{}}

	for _, i := range seed {
		c := *i
		l.rows[c.ID] = &c
	}

	return l
}

func (l *ledger) create(_ context.Context, i *types.Invite) (*types.Invite, error) {
	email := types.NormalizeEmail(i.Email)

	for _, row := range l.rows {
		if row.OrganizationID == i.OrganizationID && row.Email == email && row.Status == types.InviteStatusPending {
			return nil, fmt.Errorf("insert invite: %w", storage.ErrDuplicateKey)
		}
	}

	l.seq++

	c := *i
	c.ID = fmt.Sprintf("new%d", l.seq)
	c.Email = email
	c.Status = types.InviteStatusPending
	l.rows[c.ID] = &c

	out := c

	return &out, nil
}

func (l *ledger) get(_ context.Context, id string) (*types.Invite, error) {
	row, ok := l.rows[id]
	if !ok {
		return nil, fmt.Errorf("get invite: %w", storage.ErrNotFound)
	}

	out := *row

	return &out, nil
}

func (l *ledger) find(_ context.Context, orgID, email string, now time.Time) (*types.Invite, error) {
	for _, row := range l.rows {
		if row.OrganizationID == orgID && row.Email == email && row.Status == types.InviteStatusPending && now.Before(row.ExpiresAt) {
			out := *row
			return &out, nil
		}
	}

	return nil, fmt.Errorf("find pending invite: %w", storage.ErrNotFound)
}

func (l *ledger) expire(_ context.Context, orgID, email string, now time.Time) (int64, error) {
	var n int64

	for _, row := range l.rows {
		if row.OrganizationID == orgID && row.Email == email && row.Status == types.InviteStatusPending && !now.Before(row.ExpiresAt) {
			row.Status = types.InviteStatusExpired
			n++
		}
	}

	return n, nil
}

func (l *ledger) transition(_ context.Context, id string, from, to types.InviteStatus) error {
	row, ok := l.rows[id]
	if !ok || row.Status != from {
		return fmt.Errorf("update invite status: %w", storage.ErrNotFound)
	}

	row.Status = to

	return nil
}

func (l *ledger) status(id string) types.InviteStatus {
	return l.rows[id].Status
}

func (l *ledger) wire(s *MockStorageInterface) {
	s.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(l.create).AnyTimes()
	s.EXPECT().GetInviteByID(gomock.Any(), gomock.Any()).DoAndReturn(l.get).AnyTimes()
	s.EXPECT().FindPendingInvite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(l.find).AnyTimes()
	s.EXPECT().ExpireStaleInvites(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(l.expire).AnyTimes()
	s.EXPECT().TransitionInvite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(l.transition).AnyTimes()
}
