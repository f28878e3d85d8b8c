// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthzFailure   = "authz_fail"
	eventAdminAction    = "admin_action"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("fluzz tenancy service started", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("fluzz tenancy service stopping", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		"authorization denied",
		zap.String("event", eventAuthzFailure+":"+subject+","+resource),
		zap.String("subject", subject),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(subject, action, resource string) {
	s.l.Info(
		"administrative action",
		zap.String("event", eventAdminAction+":"+subject+","+action+","+resource),
		zap.String("subject", subject),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.With(zap.String("type", "security"))}
}
