package main

import (
	"io"
	"path/filepath"

	"codeshell/internal/app"
	"codeshell/internal/config"
	"codeshell/internal/errors"
	"codeshell/internal/log"
	"codeshell/internal/platform"
	"codeshell/internal/tui"
	"codeshell/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfgPath string
	cfg     *config.Config
	debug   bool
	logFile string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "codeshell [folder]",
		Short:   "A keyboard driven code editor shell for the terminal",
		Long:    `codeshell opens a folder in a file explorer next to a tabbed editor. Every command is an action that can be bound to a key chord in the configuration file.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfgPath = cfgFile
			if cfgPath == "" {
				if cfgPath, err = config.DefaultPath(); err != nil {
					return errors.Wrap(err, "cannot locate config file")
				}
			}
			if cfg, err = config.LoadConfigFile(cfgPath); err != nil {
				if errors.Is(err, errors.ErrInvalidConfig) {
					return errors.Wrapf(err, "fix %s or reset it with 'codeshell config init --force'", cfgPath)
				}
				return errors.Wrap(err, "cannot load config")
			}
			setupLogging(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.Explorer.DefaultDir
			if len(args) > 0 {
				dir = args[0]
			}
			return runShell(dir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/codeshell/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")

	rootCmd.AddCommand(NewKeysCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// setupLogging sends logs to the configured file only; the terminal
// belongs to the UI.
func setupLogging(cfg *config.Config) {
	opts := []log.Option{log.WithOutput(io.Discard), log.WithLevel(cfg.Log.Level)}
	file := cfg.Log.File
	if logFile != "" {
		file = logFile
	}
	if file != "" {
		opts = append(opts, log.WithFile(file))
	}
	if cfg.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	log.Configure(opts...)
	log.SetDebug(cfg.Log.Debug || debug)
}

func runShell(dir string) error {
	defer log.Default().Close()

	picker := &tui.Picker{}
	shell, err := app.New(cfg, app.Deps{
		FS:        platform.OSFileSystem{},
		Clipboard: platform.DetectClipboard(),
		Shell:     platform.NewOSShell(picker.Pick),
		Notifier:  platform.NewToaster(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to start")
	}
	if dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		shell.Send(types.OpenDir(dir))
	}

	opts := []tui.Option{tui.WithVersion(version)}
	if w, err := config.NewWatcher(cfgPath); err != nil {
		log.LogWithFields(log.F("path", cfgPath), log.F("error", err.Error())).Warn("Config changes will not be picked up")
	} else if err := w.Start(); err == nil {
		defer w.Stop()
		opts = append(opts, tui.WithUpdates(w.Updates()))
	}

	log.LogWithFields(log.F("version", version), log.F("config", cfgPath)).Info("Starting codeshell")
	p := tea.NewProgram(tui.New(shell, cfg, picker, opts...), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running terminal UI")
	}
	return nil
}
