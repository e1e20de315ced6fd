package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"CanvasCreator/internal/config"
	"CanvasCreator/internal/export"
	"CanvasCreator/internal/keybinds"
	"CanvasCreator/internal/logging"
	"CanvasCreator/internal/render"
	"CanvasCreator/internal/script"
	"CanvasCreator/internal/state"
	"CanvasCreator/internal/ui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "canvascreator",
	Short: "Canvas Creator - draw circles by dragging",
	Long: `Canvas Creator opens a drawing window where circles are created by
pressing on the canvas and dragging out the radius.

Examples:
  canvascreator                          # Open the window
  canvascreator --theme dark             # Start with the dark theme
  canvascreator replay demo.yaml -o a.png  # Render a script without a window
  canvascreator keys                     # Print the keyboard shortcuts`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		return ui.RunApp(cfg, logger)
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run an event script through the drawing logic and save the result",
	Long: `Replay folds the events of a YAML script through the same logic the window
uses and writes the final canvas to the output file. The output format
follows its extension (.png or .pdf).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		return runReplay(cmd, cfg, logger, args[0])
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the keyboard shortcuts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		keys, err := keybinds.FromConfig(cfg.Keys)
		if err != nil {
			return err
		}
		for _, line := range keys.Help() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

// Flags for root command
var (
	flagConfig   string
	flagTheme    string
	flagLogLevel string
)

// Flags for replay
var (
	replayOutput string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config.toml")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Theme to start with (light/dark/colorful)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")

	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "replay.png", "Output file (.png or .pdf)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(keysCmd)
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFromFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagTheme != "" {
		cfg.Theme.Name = flagTheme
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.Setup(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runReplay(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, path string) error {
	kind, err := outputKind(replayOutput)
	if err != nil {
		return err
	}
	sc, err := script.ParseFile(path)
	if err != nil {
		return err
	}
	opts, err := sc.Options(cfg.StateOptions())
	if err != nil {
		return err
	}
	keys, err := keybinds.FromConfig(cfg.Keys)
	if err != nil {
		return err
	}
	events, err := sc.Compile(keys)
	if err != nil {
		return err
	}

	r, err := render.New(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.GridSize)
	if err != nil {
		return err
	}
	defer r.Close()

	exp := export.New(cfg.Export.Dir, r, logger)
	final := script.Run(state.New(opts), events, exp, logger)
	logger.Info("replay finished", "events", len(events), "circles", final.Scene.Len(), "last_action", final.LastAction)

	if err := exp.ExportTo(replayOutput, kind, final); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d circles)\n", replayOutput, final.Scene.Len())
	return nil
}

func outputKind(path string) (state.ExportKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return state.ExportPNG, nil
	case ".pdf":
		return state.ExportPDF, nil
	}
	return state.ExportNone, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}
