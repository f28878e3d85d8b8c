// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/appfluzzio-bit/fluzz2/internal/authorization"
	"github.com/appfluzzio-bit/fluzz2/internal/cache"
	"github.com/appfluzzio-bit/fluzz2/internal/config"
	"github.com/appfluzzio-bit/fluzz2/internal/db"
	ihttp "github.com/appfluzzio-bit/fluzz2/internal/identity"
	"github.com/appfluzzio-bit/fluzz2/internal/kratos"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring/prometheus"
	"github.com/appfluzzio-bit/fluzz2/internal/openfga"
	"github.com/appfluzzio-bit/fluzz2/internal/queue"
	"github.com/appfluzzio-bit/fluzz2/internal/redis"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
	"github.com/appfluzzio-bit/fluzz2/pkg/departments"
	"github.com/appfluzzio-bit/fluzz2/pkg/identity"
	"github.com/appfluzzio-bit/fluzz2/pkg/invites"
	"github.com/appfluzzio-bit/fluzz2/pkg/organizations"
	"github.com/appfluzzio-bit/fluzz2/pkg/permissions"
	"github.com/appfluzzio-bit/fluzz2/pkg/preferences"
	"github.com/appfluzzio-bit/fluzz2/pkg/web"
	"github.com/appfluzzio-bit/fluzz2/pkg/webhooks"
	"github.com/appfluzzio-bit/fluzz2/pkg/workspaces"
)

const preferencesMemorySize = 4096

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadSpecs() (*config.EnvSpec, error) {
	// a .env file is a local development convenience, its absence is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("fluzz", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ctx := context.Background()

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		specs.KratosPublicURL,
		specs.KratosIdentitySchema,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(ctx, specs.OAuth2Issuer, specs.OAuth2Audience, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to set up token verification: %w", err)
		}
		logger.Info("Bearer token authentication is enabled")
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Bearer token authentication is disabled, only session tokens are accepted")
	}
	authMiddleware := authentication.NewMiddleware(verifier, kratosClient, tracer, monitor, logger)

	authorizer, err := newAuthorizer(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	var (
		redisClient *goredis.Client
		dispatcher  invites.DispatcherInterface
		prefStore   preferences.PreferenceStore
	)

	if specs.RedisAddr != "" {
		redisClient, err = redis.NewClient(ctx, specs.RedisAddr, specs.RedisPassword, specs.RedisDB, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer redisClient.Close()

		dispatcher = queue.NewDispatcher(redisClient, tracer, logger)
		prefStore = preferences.NewRedisStore(redisClient, specs.PreferencesTTL)
	} else {
		logger.Info("No redis configured, invite emails are logged and preferences kept in memory")

		dispatcher = queue.NewNoopDispatcher(logger)
		prefStore = preferences.NewMemoryStore(preferencesMemorySize, specs.PreferencesTTL)
	}

	workspaceCache := cache.NewWorkspaceListCache(specs.WorkspaceCacheSize, specs.WorkspaceCacheTTL)
	permissionsService := permissions.NewService(s, tracer, monitor, logger)

	workspacesService := workspaces.NewService(s, permissionsService, workspaceCache, authorizer, tracer, monitor, logger)

	services := web.Services{
		Identity:      identity.NewService(s, kratosClient, tracer, monitor, logger),
		Organizations: organizations.NewService(s, dbClient, permissionsService, workspaceCache, authorizer, tracer, monitor, logger),
		Workspaces:    workspacesService,
		Departments:   departments.NewService(s, permissionsService, tracer, monitor, logger),
		Invites: invites.NewService(
			s,
			dbClient,
			permissionsService,
			kratosClient,
			dispatcher,
			authorizer,
			workspaceCache,
			specs.InviteBaseURL,
			tracer,
			monitor,
			logger,
		),
		Preferences: preferences.NewService(prefStore, workspacesService, tracer, monitor, logger),
		Webhooks:    webhooks.NewService(s, tracer, monitor, logger),
	}

	routerConfig := web.RouterConfig{
		AllowedOrigins: specs.CORSAllowedOrigins,
		Authentication: authMiddleware.Authenticate(),
		WebhookSecret:  specs.WebhookSecret,
	}

	if specs.WebhookSecret == "" {
		logger.Warn("WEBHOOK_SECRET is not set, identity provider webhooks will be rejected")
	}

	if specs.IdentityHeaderEnabled {
		logger.Info("Trusting the identity header set by the gateway")
		routerConfig.IdentityHeader = ihttp.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	}

	router := web.NewRouter(routerConfig, services, dbClient, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func newAuthorizer(
	ctx context.Context,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor *prometheus.Monitor,
	logger logging.LoggerInterface,
) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")

		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	ofga, err := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiURL,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openfga client: %w", err)
	}

	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	logger.Info("Authorization is enabled")

	if err := authorizer.ValidateModel(ctx); err != nil {
		return nil, fmt.Errorf("invalid authorization model provided: %w", err)
	}

	return authorizer, nil
}
