package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/anchorsheet/internal/app"
	"github.com/llehouerou/anchorsheet/internal/config"
	"github.com/llehouerou/anchorsheet/internal/errmsg"
	"github.com/llehouerou/anchorsheet/internal/state"
)

var (
	flagConfig        string
	flagHideable      bool
	flagSkipCollapsed bool
	flagAnchor        float64
	flagPeek          string
	flagFPS           int
	flagDebugLog      string
	flagNoPersist     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anchorsheet",
		Short: "A draggable bottom sheet with an anchor position, in the terminal",
		Long: `anchorsheet shows a panel that slides over the terminal. Drag its handle
with the mouse, scroll its list with the wheel or use the keys listed on the
first row to move it between the expanded, anchor, collapsed and hidden
positions.

Settings are read from ~/.config/anchorsheet/config.toml and ./config.toml
and reloaded when the file changes. Flags override the file.`,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Config file read after the default locations")
	f.BoolVar(&flagHideable, "hideable", false, "Allow swiping the sheet away")
	f.BoolVar(&flagSkipCollapsed, "skip-collapsed", false, "Hide instead of collapsing on release")
	f.Float64Var(&flagAnchor, "anchor", 0, "Anchor position as a fraction of the height (0 < t <= 1)")
	f.StringVar(&flagPeek, "peek", "", `Collapsed height in rows, or "auto"`)
	f.IntVar(&flagFPS, "fps", 0, "Animation frame rate")
	f.StringVar(&flagDebugLog, "debug-log", "", "Write log output to this file")
	f.BoolVar(&flagNoPersist, "no-persist", false, "Neither restore nor save the sheet state")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("hideable") {
		cfg.Sheet.Hideable = flagHideable
	}
	if f.Changed("skip-collapsed") {
		cfg.Sheet.SkipCollapsed = flagSkipCollapsed
	}
	if f.Changed("anchor") {
		cfg.Sheet.AnchorThreshold = flagAnchor
	}
	if f.Changed("peek") {
		cfg.Sheet.PeekHeight = flagPeek
	}
	if f.Changed("fps") {
		cfg.UI.FPS = flagFPS
	}
	if f.Changed("debug-log") {
		cfg.UI.DebugLog = flagDebugLog
	}
	if flagNoPersist {
		cfg.State.Disabled = true
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	applyFlags(cmd, cfg)

	sheetCfg, err := cfg.SheetConfig()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	initial, err := cfg.InitialState()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	ui := cfg.GetUIConfig()

	if ui.DebugLog != "" {
		logFile, err := tea.LogToFile(ui.DebugLog, "anchorsheet")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts := app.Options{
		Sheet:        sheetCfg,
		InitialState: initial,
		UI:           ui,
	}
	if !cfg.State.Disabled {
		stateMgr, err := state.Open(cfg.State.Path)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
		}
		defer stateMgr.Close()
		opts.StateMgr = stateMgr
	}

	p := tea.NewProgram(
		app.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	w, err := config.Watch(flagConfig, func(c *config.Config, err error) {
		if c != nil {
			applyFlags(cmd, c)
		}
		p.Send(app.ConfigReloadedMsg{Config: c, Err: err})
	})
	switch {
	case err == nil:
		g.Go(func() error {
			<-ctx.Done()
			return w.Close()
		})
	case errors.Is(err, config.ErrNoConfigFile):
	default:
		log.Print(errmsg.Format(errmsg.OpConfigWatch, err))
	}

	return g.Wait()
}
