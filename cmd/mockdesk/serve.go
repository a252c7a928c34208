package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mockdesk/mockdesk/internal/config"
	"github.com/mockdesk/mockdesk/internal/faults"
	logpkg "github.com/mockdesk/mockdesk/internal/logger"
	"github.com/mockdesk/mockdesk/internal/metrics"
	"github.com/mockdesk/mockdesk/internal/store"
	"github.com/mockdesk/mockdesk/internal/transport/mcptool"
	hubspotuc "github.com/mockdesk/mockdesk/internal/usecase/hubspot"
	searchuc "github.com/mockdesk/mockdesk/internal/usecase/search"
	zendeskuc "github.com/mockdesk/mockdesk/internal/usecase/zendesk"
	"github.com/mockdesk/mockdesk/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator's MCP tools on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting mockdesk",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env))

	metrics.Register()

	st := store.New()
	if cfg.Store.SeedPath != "" {
		if err := st.Load(cfg.Store.SeedPath); err != nil {
			return fmt.Errorf("load seed snapshot: %w", err)
		}
		logger.Info("seed snapshot loaded", zap.String("path", cfg.Store.SeedPath))
	}

	injector := faults.New()
	for _, f := range cfg.Faults {
		injector.Add(faults.Rule{
			Operation: f.Operation,
			Status:    f.Status,
			Detail:    f.Detail,
			Times:     f.Times,
		})
	}

	zd := zendeskuc.New(st).
		WithFaults(injector).
		WithSubdomain(cfg.Zendesk.Subdomain)
	hs := hubspotuc.New(st).WithFaults(injector)
	se := searchuc.New(st).WithBaseURL(zd.BaseURL())

	srv := mcptool.New(logger, zd, hs, se)
	serveErr := srv.Serve()

	if cfg.Store.Autosave && cfg.Store.SnapshotPath != "" {
		if err := st.Save(cfg.Store.SnapshotPath); err != nil {
			logger.Error("autosave snapshot failed", zap.Error(err))
		} else {
			logger.Info("snapshot saved", zap.String("path", cfg.Store.SnapshotPath))
		}
	}
	return serveErr
}
