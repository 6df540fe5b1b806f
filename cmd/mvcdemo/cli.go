package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"puremvc/internal/config"
	"puremvc/internal/demo"
	"puremvc/pkg/core/controller"
	"puremvc/pkg/core/view"
)

var version = "dev"

type cliConfig struct {
	LogLevel string
	Metrics  bool
}

func buildRootCmd() *cobra.Command {
	cfg := &cliConfig{LogLevel: envStr("MVCDEMO_LOG_LEVEL", "warn")}
	root := &cobra.Command{
		Use:           "mvcdemo",
		Short:         "Run notification scripts through a PureMVC facade",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error (defaults MVCDEMO_LOG_LEVEL or warn)")

	runCmd := &cobra.Command{
		Use:     "run <script.yaml|json|toml>",
		Short:   "Load a script, wire its commands and mediators, send its notifications",
		Example: "  mvcdemo run examples/startup.yaml\n  mvcdemo run --metrics --log-level debug run.toml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
		},
	}
	runCmd.Flags().BoolVar(&cfg.Metrics, "metrics", false, "Print framework counters after the run")

	versionCmd := &cobra.Command{Use: "version", Short: "Print the version", RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "mvcdemo "+version)
		return err
	}}

	builtinsCmd := &cobra.Command{Use: "builtins", Short: "List builtin command names", RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(demo.BuiltinNames(), "\n"))
		return err
	}}

	root.AddCommand(runCmd, versionCmd, builtinsCmd)
	return root
}

func runScript(stdout, stderr io.Writer, path string, cfg *cliConfig) error {
	script, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	if cfg.Metrics {
		if err := registerMetrics(prometheus.DefaultRegisterer); err != nil {
			return err
		}
	}
	logger := newLogger(stderr, cfg.LogLevel)
	app, err := demo.New(script, logger)
	if err != nil {
		return err
	}
	runErr := app.Run()
	for _, line := range app.Journal() {
		fmt.Fprintln(stdout, line)
	}
	if cfg.Metrics {
		if err := printMetrics(stdout); err != nil {
			return err
		}
	}
	return runErr
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func registerMetrics(r prometheus.Registerer) error {
	if err := view.Register(r); err != nil {
		return fmt.Errorf("register view metrics: %w", err)
	}
	if err := controller.Register(r); err != nil {
		return fmt.Errorf("register controller metrics: %w", err)
	}
	return nil
}

// printMetrics writes the framework's counters as "name{labels} value" lines.
func printMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "puremvc_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
