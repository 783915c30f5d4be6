// Package app wires together configuration, logging, storage, and the RPC
// transport into a single fx.App, mirroring the teacher's server.Module.
package app

import (
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hsn0918/docsplit/internal/config"
	"github.com/hsn0918/docsplit/internal/logger"
	"github.com/hsn0918/docsplit/internal/rpc"
	"github.com/hsn0918/docsplit/internal/storage"
	"github.com/hsn0918/docsplit/internal/validation"
)

// Module is the top-level fx module the server binary starts.
var Module = fx.Options(
	InfrastructureModule,
	RPCModule,
	fx.Invoke(rpc.RegisterLifecycle),
)

// InfrastructureModule provides configuration, logging, and storage.
var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		NewAppConfig,
		NewAppLogger,
		NewStorageService,
	),
)

// RPCModule provides the Split/Upload/Delete/Stat RPC handler and its HTTP
// server. rpc.NewHandler's *storage.Service parameter is resolved from
// InfrastructureModule's NewStorageService provider.
var RPCModule = fx.Module("rpc",
	fx.Provide(
		rpc.NewHandler,
		NewHTTPServer,
	),
)

// NewAppConfig loads the service configuration from the working directory.
func NewAppConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// NewAppLogger initializes the package-level zap logger and returns it for
// injection into other constructors.
func NewAppLogger() (*zap.Logger, error) {
	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Get(), nil
}

// NewStorageService wires a MinIO-backed storage.Service from configuration.
func NewStorageService(cfg *config.Config) (*storage.Service, error) {
	client, err := storage.NewMinIOClient(storage.MinIOConfig{
		Endpoint:        cfg.MinIO.Endpoint,
		AccessKeyID:     cfg.MinIO.AccessKeyID,
		SecretAccessKey: cfg.MinIO.SecretAccessKey,
		BucketName:      cfg.MinIO.BucketName,
		UseSSL:          cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	validator := validation.NewValidator(validation.Config{
		MaxFileSize:       cfg.Validation.MaxFileSize,
		AllowedExtensions: cfg.Validation.AllowedExtensions,
	})

	return storage.NewService(client, validator, cfg.MinIO.Endpoint, cfg.MinIO.BucketName, cfg.MinIO.UseSSL), nil
}

// NewHTTPServer builds the HTTP server serving the Split/Upload/Delete/Stat RPCs.
func NewHTTPServer(handler *rpc.Handler, cfg *config.Config) *http.Server {
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	return rpc.NewHTTPHandler(handler, addr)
}
