// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/fortunevm/rpc"
	"github.com/ava-labs/fortunevm/utils"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve JSON-RPC queries and metrics",
	RunE: func(*cobra.Command, []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := handler.Config()
		log := handler.Logger()
		router, err := rpc.NewRouter(rpc.NewJSONRPCServer(log, handler.Tracer(), handler.Ledger()))
		if err != nil {
			return err
		}
		servers := []*http.Server{
			{
				Addr:              cfg.RPCAddr,
				Handler:           router,
				ReadHeaderTimeout: readHeaderTimeout,
			},
			{
				Addr:              cfg.MetricsAddr,
				Handler:           promhttp.HandlerFor(handler.Gatherer(), promhttp.HandlerOpts{}),
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, srv := range servers {
			srv := srv
			g.Go(func() error {
				log.Info("listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
		}
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			var errs []error
			for _, srv := range servers {
				errs = append(errs, srv.Shutdown(shutdownCtx))
			}
			return errors.Join(errs...)
		})
		utils.Outf(
			"{{green}}serving{{/}} {{yellow}}rpc:{{/}} http://%s%s {{yellow}}metrics:{{/}} http://%s\n",
			cfg.RPCAddr,
			rpc.JSONRPCEndpoint,
			cfg.MetricsAddr,
		)
		return g.Wait()
	},
}
