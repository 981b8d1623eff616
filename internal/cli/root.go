package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/goal-planner/internal/agents"
	"github.com/example/goal-planner/internal/config"
	"github.com/example/goal-planner/internal/logging"
	"github.com/example/goal-planner/internal/providers/llm"
)

// app is everything a subcommand needs after startup.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	planner agents.Planner
	close   func()
}

// bootstrap loads configuration and creates the provider session. A provider
// that cannot start is not fatal: the planner reports it on every call.
var bootstrap = func(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, using process environment")
	}

	client, initErr := llm.New(ctx, cfg.LLM())
	if initErr != nil {
		logger.Error("llm client not initialized", zap.String("provider", cfg.Provider), zap.Error(initErr))
	}
	p := agents.NewLLMPlanner(client, initErr, logger)
	p.Model = llm.ModelFor(cfg.LLM())
	p.Timeout = cfg.Timeout

	return &app{
		cfg:     cfg,
		logger:  logger,
		planner: p,
		close: func() {
			if c, ok := client.(io.Closer); ok {
				_ = c.Close()
			}
			_ = logger.Sync()
		},
	}, nil
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Break a goal down into a task plan with an LLM",
		Long:          `planner asks a text-generation model to turn a free-text goal into a JSON task list with durations, deadlines and dependencies, either over HTTP (serve) or once from the command line (plan).`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("PLANNER_CONFIG"), "path to a TOML config file")

	root.AddCommand(newServeCmd(&configPath), newPlanCmd(&configPath))
	return root
}

// Execute runs the root command.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}
	return err
}
