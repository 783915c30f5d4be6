package rpc

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Procedure paths the handlers answer on. There is no generated service
// definition in this build, so each path is spelled out by hand rather
// than sourced from a ragv1connect package.
const (
	splitProcedure  = "/docsplit.v1.SplitService/Split"
	uploadProcedure = "/docsplit.v1.SplitService/Upload"
	deleteProcedure = "/docsplit.v1.SplitService/Delete"
	statProcedure   = "/docsplit.v1.SplitService/Stat"
)

// NewHTTPHandler builds the mux serving the Split, Upload, Delete, and
// Stat RPCs over Connect's unary protocol, using the hand-rolled JSON
// codec as its only option.
func NewHTTPHandler(handler *Handler, addr string) *http.Server {
	mux := http.NewServeMux()

	opts := []connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
	}
	mux.Handle(splitProcedure, connect.NewUnaryHandler(splitProcedure, handler.Split, opts...))
	mux.Handle(uploadProcedure, connect.NewUnaryHandler(uploadProcedure, handler.Upload, opts...))
	mux.Handle(deleteProcedure, connect.NewUnaryHandler(deleteProcedure, handler.Delete, opts...))
	mux.Handle(statProcedure, connect.NewUnaryHandler(statProcedure, handler.Stat, opts...))

	return &http.Server{
		Addr:    addr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}
}

// RegisterLifecycle wires the HTTP server's start/stop into fx's lifecycle,
// mirroring the teacher's StartHTTPServer hook.
func RegisterLifecycle(lifecycle fx.Lifecycle, httpServer *http.Server, logger *zap.Logger, shutdowner fx.Shutdowner) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting http server", zap.String("addr", httpServer.Addr))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server failed", zap.Error(err))
					if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
						logger.Error("shutdown failed", zap.Error(shutdownErr))
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping http server")
			return httpServer.Shutdown(ctx)
		},
	})
}
