package main

import (
	"context"
	"fmt"

	service "github.com/okian/fiprank/internal/app"
	"github.com/okian/fiprank/internal/config"
	"github.com/okian/fiprank/internal/domain/history"
	"github.com/okian/fiprank/internal/domain/model"
	"github.com/okian/fiprank/pkg/logger"
	"github.com/okian/fiprank/pkg/metrics"
	"github.com/spf13/cobra"
)

// commandContext carries the state shared by all subcommands of one run.
type commandContext struct {
	configFlag      string
	logLevelFlag    string
	metricsFileFlag string

	cfg *config.Config
	svc *service.Service
	log logger.Logger
}

// setup loads configuration, initializes logging and builds the service.
func (c *commandContext) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, c.configFlag)
	if err != nil {
		return err
	}
	if c.logLevelFlag != "" {
		cfg.LogLevel = c.logLevelFlag
	}
	if c.metricsFileFlag != "" {
		cfg.MetricsFile = c.metricsFileFlag
	}

	if err := logger.Init(logger.WithOutput(cmd.ErrOrStderr()), logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	c.log = logger.Named("fiprank")

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		c.log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	c.cfg = cfg
	c.svc = service.New(
		service.WithLogger(c.log),
		service.WithSeparatorWidth(cfg.SeparatorWidth),
		service.WithLoadWorkers(cfg.LoadWorkers),
	)
	return nil
}

// teardown writes the metrics textfile when one is configured.
func (c *commandContext) teardown(ctx context.Context) error {
	if c.cfg == nil || c.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(c.cfg.MetricsFile); err != nil {
		return err
	}
	c.log.Debug(ctx, "metrics written", logger.String("path", c.cfg.MetricsFile))
	return nil
}

// loadWithHistory bootstraps the current snapshot and merges the given prior
// snapshots in order, oldest first.
func (c *commandContext) loadWithHistory(ctx context.Context, priors []string) ([]model.Record, error) {
	records, err := c.svc.Bootstrap(ctx, c.cfg.Source, c.cfg.Snapshot)
	if err != nil {
		return nil, err
	}
	if len(priors) == 0 {
		return records, nil
	}
	if err := c.svc.MergeHistories(ctx, records, priors, history.LabelFromPath); err != nil {
		return nil, err
	}
	return records, nil
}
