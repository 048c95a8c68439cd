package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"workbench/internal/config"
	"workbench/internal/console"
	"workbench/internal/editor"
	"workbench/internal/explorer"
	"workbench/internal/shell"
	"workbench/internal/storage"
	"workbench/internal/telemetry"
	"workbench/internal/ui"
	"workbench/internal/widget"
)

var (
	flagConfig      string
	flagDir         string
	flagResetLayout bool
)

func main() {
	root := &cobra.Command{
		Use:   "workbench",
		Short: "A terminal workbench with dockable editors, explorer, and consoles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&flagConfig, "config", "", "config file (default ~/.workbench/config.yaml)")
	root.Flags().StringVar(&flagDir, "dir", "", "workspace directory (default cwd)")
	root.Flags().BoolVar(&flagResetLayout, "reset-layout", false, "discard the saved layout and start fresh")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := flagConfig
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	workDir := flagDir
	if workDir == "" {
		if workDir = cfg.Explorer.Dir; workDir == "" {
			if workDir, err = os.Getwd(); err != nil {
				return err
			}
		}
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	if flagResetLayout {
		if err := store.ResetLayout(); err != nil {
			return fmt.Errorf("failed to reset layout: %w", err)
		}
	}

	logger, err := newLogger(store.BaseDir())
	if err != nil {
		return err
	}
	defer logger.Sync()

	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer shutdownTelemetry(context.Background())

	menu := &ui.Menu{}
	sh := shell.New(shell.Options{
		Logger:      logger,
		Saver:       editor.Saver{},
		ContextMenu: menu,
	})

	reg := newRegistry(cfg, workDir, logger)
	restored := false
	if d, found, err := store.LoadLayout(reg); err != nil {
		logger.Warn("saved layout unusable, starting fresh", zap.Error(err))
	} else if found {
		sh.SetLayoutData(ctx, d)
		restored = true
	}
	if !restored {
		populateDefaults(sh, cfg, workDir, logger)
	}

	model := ui.NewModel(sh, store, *cfg, logger)
	startWidgets(sh, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newStore(cfg *config.Config) (*storage.Store, error) {
	if cfg.StateDir != "" {
		return storage.NewStoreAt(cfg.StateDir), nil
	}
	return storage.NewStore()
}

func newLogger(dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	// The terminal belongs to the TUI; logs go to a file.
	c := zap.NewProductionConfig()
	c.OutputPaths = []string{filepath.Join(dir, "workbench.log")}
	c.ErrorOutputPaths = c.OutputPaths
	return c.Build()
}

// newRegistry wires the widget factories used to resolve a saved layout.
func newRegistry(cfg *config.Config, workDir string, logger *zap.Logger) *storage.Registry {
	reg := storage.NewRegistry(logger)
	reg.Register(console.Kind, func(ref storage.WidgetRef) (widget.Widget, error) {
		return console.New(ref.ID, ref.Label, consoleOptions(cfg, workDir, logger)), nil
	})
	reg.Register(explorer.Kind, func(ref storage.WidgetRef) (widget.Widget, error) {
		return explorer.New(ref.ID, ref.Label, workDir, explorer.Options{Logger: logger}), nil
	})
	reg.Register(editor.Kind, func(ref storage.WidgetRef) (widget.Widget, error) {
		path := strings.TrimPrefix(ref.ID, "editor:")
		return editor.Open(path)
	})
	return reg
}

func consoleOptions(cfg *config.Config, workDir string, logger *zap.Logger) console.Options {
	return console.Options{
		Shell:    cfg.Console.Shell,
		Dir:      workDir,
		MaxLines: cfg.Console.MaxLine,
		Logger:   logger,
	}
}

// populateDefaults places the built-in widgets for a first run: the file
// explorer on the left, one console at the bottom.
func populateDefaults(sh *shell.Shell, cfg *config.Config, workDir string, logger *zap.Logger) {
	ex := explorer.New("explorer", "Files", workDir, explorer.Options{Logger: logger})
	sh.AddToLeftArea(ex, &shell.AddOptions{Rank: cfg.SideBars.ExplorerRank})
	sh.LeftBar().Expand(ex.ID())

	id := "console-" + uuid.NewString()
	con := console.New(id, "Terminal", consoleOptions(cfg, workDir, logger))
	sh.AddToBottomArea(con, &shell.AddOptions{Rank: cfg.SideBars.ConsoleRank})
	sh.BottomBar().Expand(con.ID())
}

// startWidgets spins up the processes and watchers behind restored widgets.
func startWidgets(sh *shell.Shell, logger *zap.Logger) {
	for _, w := range sh.Tracker().Widgets() {
		switch w := w.(type) {
		case *console.Widget:
			if err := w.Start(); err != nil {
				logger.Error("failed to start console", zap.String("id", w.ID()), zap.Error(err))
			}
		case *explorer.Widget:
			if err := w.Refresh(); err != nil {
				logger.Warn("explorer refresh failed", zap.Error(err))
			}
			if err := w.Watch(); err != nil {
				logger.Warn("explorer watch failed", zap.Error(err))
			}
		}
	}
}
