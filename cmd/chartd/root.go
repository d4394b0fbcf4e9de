package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"chartd/internal/chart"
	"chartd/internal/common/fsutil"
	"chartd/internal/config"
	"chartd/internal/dashboard"
	"chartd/internal/httpapi"
	"chartd/internal/theme"
)

const defaultConfigPath = "~/.config/chartd/dashboard.yaml"

// Options collects the persistent flags.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

func buildRootCmd() *cobra.Command { return buildRootCmdWith(&Options{}) }

// buildRootCmdWith constructs the command tree bound to opts.
func buildRootCmdWith(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "chartd",
		Short:         "Serve and inspect ECharts dashboards described by a config file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Dashboard config (.yaml, .json or .toml)")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug|info|warn|error (defaults to the config's log_level)")
	root.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "Log format: console|json")

	root.AddCommand(newServeCmd(opts), newOptionCmd(opts), newPageCmd(opts))
	return root
}

// newLogger builds the process logger and installs it in every package that
// logs on its own.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	if level == "" {
		level = config.DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}
	switch format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	chart.SetLogger(l.With().Str("component", "chart").Logger())
	theme.SetLogger(l.With().Str("component", "theme").Logger())
	httpapi.SetLogger(l.With().Str("component", "http").Logger())
	return l, nil
}

// loadConfig resolves and reads the dashboard config.
func loadConfig(path string) (config.Config, error) {
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return config.Config{}, err
	}
	if !fsutil.PathExists(p) {
		return config.Config{}, fmt.Errorf("config not found: %s", p)
	}
	cfg, err := config.Load(p)
	if err != nil {
		return config.Config{}, fmt.Errorf("load %s: %w", p, err)
	}
	cfg.Defaults()
	return cfg, nil
}

// openDashboard loads the config, sets up logging and builds a headless
// dashboard from it. Chart and theme failures are logged, not fatal.
func openDashboard(ctx context.Context, opts *Options) (*dashboard.Manager, config.Config, zerolog.Logger, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, cfg, zerolog.Nop(), err
	}
	level := opts.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	log, err := newLogger(os.Stderr, level, opts.LogFormat)
	if err != nil {
		return nil, cfg, log, err
	}
	mc, _, _ := dashboard.Headless(cfg)
	mc.Logger = log.With().Str("component", "dashboard").Logger()
	mc.Publisher = dashboard.LogPublisher{Logger: log.With().Str("component", "events").Logger()}
	m := dashboard.NewWithConfig(mc)
	if err := m.Load(ctx, cfg); err != nil {
		log.Warn().Err(err).Msg("dashboard loaded with failures")
	}
	return m, cfg, log, nil
}

// splitCSV splits a comma separated flag value, dropping empty items.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
