package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/aulaplan/internal/client"
	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/controller"
	"github.com/akyairhashvil/aulaplan/internal/database"
	"github.com/akyairhashvil/aulaplan/internal/export"
	"github.com/akyairhashvil/aulaplan/internal/kv"
	"github.com/akyairhashvil/aulaplan/internal/selection"
	"github.com/akyairhashvil/aulaplan/internal/tui"
	"github.com/akyairhashvil/aulaplan/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type rootFlags struct {
	configFile string
}

// app bundles the long-lived dependencies every command needs.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	api      *client.Client
	settings selection.Remembered
	closers  []func() error
}

func newApp(ctx context.Context, configFile string) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	log, err := util.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log}

	a.settings, err = a.openSettings(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.api, err = client.New(cfg.API.BaseURL, cfg.API.Timeout, client.WithLogger(log))
	if err != nil {
		a.Close()
		return nil, err
	}
	log.Debug("app ready",
		zap.String("api", cfg.API.BaseURL),
		zap.String("store", cfg.Store.Backend))
	return a, nil
}

func (a *app) openSettings(ctx context.Context) (selection.Remembered, error) {
	switch a.cfg.Store.Backend {
	case config.StoreMemory:
		return kv.NewMemory(), nil
	case config.StoreRedis:
		r, err := kv.NewRedis(ctx, a.cfg.Store.RedisAddr, a.cfg.Store.RedisDB, config.RedisKeyPrefix)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, r.Close)
		return r, nil
	default:
		db, err := database.Open(ctx, a.cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return db, nil
	}
}

func (a *app) exporter() *export.Exporter {
	return export.NewExporter(a.api, a.cfg.Export.Dir, a.log)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		util.LogError(a.log, "close", a.closers[i]())
	}
	_ = a.log.Sync()
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Aula Planner is a terminal client for weekly lesson plans",
		Version:       tui.VersionLabel(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("interactive mode needs a terminal; try the groups, weeks or export commands")
			}
			return runTUI(cmd.Context(), flags.configFile)
		},
	}
	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "configuration file (default $XDG_CONFIG_HOME/aulaplan/config.yaml)")

	root.AddCommand(
		newGroupsCmd(flags),
		newWeeksCmd(flags),
		newExportCmd(flags),
	)
	return root
}

func runTUI(ctx context.Context, configFile string) error {
	a, err := newApp(ctx, configFile)
	if err != nil {
		return err
	}
	defer a.Close()

	ctrl := controller.New(a.api, selection.NewStore(a.settings), controller.WithLogger(a.log))
	m := tui.NewModel(ctx, tui.Options{
		Controller: ctrl,
		Exporter:   a.exporter(),
		Settings:   a.settings,
		Logger:     a.log,
		Theme:      a.cfg.UI.Theme,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
