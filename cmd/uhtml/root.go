package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"uhtml/internal/config"
	"uhtml/internal/logging"
	"uhtml/internal/source"
	"uhtml/pkg/html"
	"uhtml/pkg/render"
)

const (
	exitFailure     = 1
	exitBadMarkup   = 2
	exitEnvironment = 3
)

// sampleMarkup is shown when no file is given.
const sampleMarkup = `<html><head><title>Sample</title></head><body><h1 style="color: red; x: 50; y: 50;">Hello, World!</h1></body></html>`

// app is the state shared by every subcommand once the persistent flags
// have been applied.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "uhtml",
		Short: "uhtml renders a tiny markup language onto a window or an image",
		Long: `uhtml parses tag markup into a tree, positions each element from the
x: and y: entries of its opening tag and draws the element text there.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newViewCmd(a),
		newDumpCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// readMarkup returns the markup named by args: a file, an HTTP(S) URL, "-"
// for standard input, or the sample document when args is empty.
func readMarkup(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		return sampleMarkup, nil
	}
	return source.Read(cmd.Context(), args[0], cmd.InOrStdin())
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case html.IsParseError(err):
		return exitBadMarkup
	case render.IsEnvironmentError(err):
		return exitEnvironment
	default:
		return exitFailure
	}
}
