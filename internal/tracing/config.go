// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
)

type exporterKind int

const (
	exporterStdout exporterKind = iota
	exporterGRPC
	exporterHTTP
)

type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

// exporter picks the span exporter, grpc wins over http when both are set
func (c *Config) exporter() exporterKind {
	switch {
	case c.OtelGRPCEndpoint != "":
		return exporterGRPC
	case c.OtelHTTPEndpoint != "":
		return exporterHTTP
	default:
		return exporterStdout
	}
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.Logger = logger
	c.Enabled = enabled

	return c
}

func NewNoopConfig() *Config {
	return &Config{Enabled: false}
}
