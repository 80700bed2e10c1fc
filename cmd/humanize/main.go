// Command humanize rewrites AI-sounding text so it reads as human-written.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/germanamz/humanize/pkg/config"
	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app holds the state shared by every subcommand after the persistent flags
// are resolved.
type app struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string

	run runFlags

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "humanize [text...]",
		Short: "Rewrite AI-sounding text so it reads as human-written",
		Long: `Rewrite AI-generated prose to read as human-written.

Text comes from the arguments, from --file, or from stdin. Without a provider
API key the run uses only the local heuristic rewriter.

Subcommands:
  batch   - Humanize several files concurrently
  score   - Print heuristic scores for a text
  rewrite - Run only the heuristic rewriter
  mcp     - Serve the humanizer as MCP tools over stdio`,
		Version:           version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "humanize.yaml", "path to configuration file (ignored if missing)")
	pf.StringVar(&a.envFile, "env", ".env", "path to .env file (ignored if missing)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format override (text, json)")

	addRunFlags(root, &a.run)
	root.RunE = a.runHumanize

	root.AddCommand(
		newBatchCmd(a),
		newScoreCmd(),
		newRewriteCmd(a),
		newMCPCmd(a),
	)

	return root
}

// setup loads .env and the configuration and builds the logger. Logs go to
// stderr so stdout carries only results.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := loadDotEnv(a.envFile); err != nil {
		return err
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())

	return nil
}

// loadConfig treats a missing default config file as absent, but an explicitly
// requested one must exist.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(a.configPath)
	}
	return config.LoadOptional(a.configPath)
}

// loadDotEnv loads environment variables from path. If the file does not exist
// it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// pipeline builds the runner shared by the humanize, batch and mcp commands.
func (a *app) pipeline(name string, extra ...humanizer.Middleware) humanizer.Runner {
	p := humanizer.New(
		a.cfg.Gateway(nil),
		humanizer.WithDetector(a.cfg.DetectorClient(nil, a.logger)),
		humanizer.WithLogger(a.logger),
	)

	mws := append([]humanizer.Middleware{
		humanizer.Recovery(),
		humanizer.Logger(a.logger, name),
		humanizer.Timeout(a.cfg.Timeout()),
	}, extra...)

	return humanizer.Chain(p, mws...)
}

// readInput returns the joined args, the content of file, or stdin, in that
// order of preference.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if file != "" {
		data, err := os.ReadFile(file) //nolint:gosec // path is a CLI argument
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
