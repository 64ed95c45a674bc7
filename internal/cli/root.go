package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ch/internal/config"
	"ch/internal/executor"
	"ch/internal/logging"
	"ch/internal/ui"
)

const (
	envLogFile  = "CH_LOG_FILE"
	envLogLevel = "CH_LOG_LEVEL"
)

// Version is set at build time with -ldflags "-X ch/internal/cli.Version=..."
var Version = "dev"

// ErrNotTerminal is returned when the launcher is started without a terminal
var ErrNotTerminal = errors.New("ch needs an interactive terminal")

type options struct {
	configPath string
	logFile    string
	logLevel   string

	logCloser io.Closer
	log       *logrus.Entry
}

func newRootCommand() (*cobra.Command, *options) {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ch",
		Short:         "ch - a commands manager",
		Long:          "ch shows the commands from your config grouped in a two-pane terminal UI and runs the one you pick.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.Configure(opts.logFile, opts.logLevel)
			if err != nil {
				return err
			}
			opts.logCloser = closer
			opts.log = logging.NewLogger("cli")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config path, default ~/.ch/config.toml (env "+config.EnvConfigPath+")")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", envOr(envLogFile, defaultLogFile()), "log file path (env "+envLogFile+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr(envLogLevel, "info"), "log level: trace, debug, info, warn, error (env "+envLogLevel+")")

	root.AddCommand(
		newListCommand(opts),
		newRunCommand(opts),
		newInitCommand(opts),
		newVersionCommand(),
	)
	return root, opts
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	root, opts := newRootCommand()
	// post-run hooks are skipped when a command fails
	defer opts.closeLog()
	return root.ExecuteContext(ctx)
}

// closeLog releases the log file; later entries are discarded
func (o *options) closeLog() {
	if o.logCloser == nil {
		return
	}
	logging.SetOutput(io.Discard)
	_ = o.logCloser.Close()
	o.logCloser = nil
}

func runLauncher(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return ErrNotTerminal
	}

	command, ok, err := ui.Run(cmd.Context(), cfg.Catalog())
	if err != nil {
		opts.log.WithError(err).Error("terminal ui failed")
		return err
	}
	if !ok {
		opts.log.Debug("quit without a command")
		return nil
	}
	return runCommand(cmd, opts, cfg, command)
}

// loadConfig resolves, loads and checks the config file
func loadConfig(opts *options) (*config.Config, error) {
	path, err := config.ResolvePath(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.NewConfigService().LoadFromPath(path)
	if err != nil {
		opts.log.WithError(err).WithField("path", path).Error("load config failed")
		return nil, fmt.Errorf("load config file failed: %w\npath: %s", err, path)
	}

	for _, empty := range cfg.EmptyCommands() {
		opts.log.WithFields(logrus.Fields{
			"group":   empty.Group,
			"command": empty.Command,
		}).Warn("command has an empty command string, its name will be run instead")
	}
	opts.log.WithFields(logrus.Fields{
		"path":   path,
		"groups": len(cfg.Groups),
	}).Info("config loaded")
	return cfg, nil
}

// runCommand hands command to the shell. A failing command is reported
// by the executor and does not fail ch itself.
func runCommand(cmd *cobra.Command, opts *options, cfg *config.Config, command string) error {
	runner := executor.New(cfg.ShellOrDefault())
	runner.Stdin = cmd.InOrStdin()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	err := runner.Run(cmd.Context(), command)
	if err != nil && executor.ExitCode(err) < 0 {
		return err
	}
	return nil
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ch", "ch.log")
}
