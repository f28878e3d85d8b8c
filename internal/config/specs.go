// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	OAuth2Issuer          string `envconfig:"oauth2_issuer"`
	OAuth2Audience        string `envconfig:"oauth2_audience"`
	IdentityHeaderEnabled bool   `envconfig:"identity_header_enabled" default:"false"`
	WebhookSecret         string `envconfig:"webhook_secret"`

	KratosAdminURL       string `envconfig:"kratos_admin_url" required:"true"`
	KratosPublicURL      string `envconfig:"kratos_public_url" required:"true"`
	KratosIdentitySchema string `envconfig:"kratos_identity_schema" default:"default"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiURL        string `envconfig:"openfga_api_url"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	InviteBaseURL string `envconfig:"invite_base_url" default:"http://localhost:3000"`

	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	WorkspaceCacheSize int           `envconfig:"workspace_cache_size" default:"1024"`
	WorkspaceCacheTTL  time.Duration `envconfig:"workspace_cache_ttl" default:"30s"`

	PreferencesTTL time.Duration `envconfig:"preferences_ttl" default:"720h"`
}
