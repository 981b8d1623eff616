package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/goal-planner/internal/api"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /api/plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.close()
			if addr != "" {
				a.cfg.Addr = addr
			}

			router := api.NewRouter(a.planner, a.logger, api.Options{AccessLog: true})
			srv := api.NewServer(a.cfg.Addr, router, a.logger)

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Warn("shutdown incomplete", zap.Error(err))
				return err
			}
			return <-errc
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config and PORT")
	return cmd
}
