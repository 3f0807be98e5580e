package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// Terminal defaults. One cell is one pixel for the sheet.
const (
	DefaultPeekHeightMin    = 3
	DefaultTouchSlop        = 1
	DefaultMinFlingVelocity = 5.0
	DefaultMaxFlingVelocity = 400.0
	DefaultFPS              = 60
	DefaultContentLines     = 100
)

type Config struct {
	Sheet SheetConfig `koanf:"sheet"`
	UI    UIConfig    `koanf:"ui"`
	State StateConfig `koanf:"state"`
}

// SheetConfig holds the sheet behavior settings.
type SheetConfig struct {
	PeekHeight       string  `koanf:"peek_height"`        // rows, or "auto" (default)
	PeekHeightMin    int     `koanf:"peek_height_min"`    // lower bound for "auto" (default: 3)
	AnchorThreshold  float64 `koanf:"anchor_threshold"`   // 0 < t <= 1 (default: 0.5)
	Hideable         bool    `koanf:"hideable"`           // allow swiping the sheet away
	SkipCollapsed    bool    `koanf:"skip_collapsed"`     // hide instead of collapsing on release
	TouchSlop        *int    `koanf:"touch_slop"`         // rows before a drag starts (default: 1)
	MinFlingVelocity float64 `koanf:"min_fling_velocity"` // rows per second (default: 5)
	MaxFlingVelocity float64 `koanf:"max_fling_velocity"` // rows per second (default: 400)
	InitialState     string  `koanf:"initial_state"`      // "collapsed" (default), "anchor", "expanded", "hidden"
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	FPS          int    `koanf:"fps"`           // animation frame rate (default: 60)
	ContentLines int    `koanf:"content_lines"` // lines of demo content in the sheet (default: 100)
	DebugLog     string `koanf:"debug_log"`     // file receiving log output, empty disables
}

// StateConfig holds persistence settings.
type StateConfig struct {
	Path     string `koanf:"path"`     // database file, empty uses the XDG data dir
	Disabled bool   `koanf:"disabled"` // do not restore or save the sheet state
}

// Load reads the config files in order of priority. extra, when not empty,
// is read last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", extra, err)
		}
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.State.Path = expandPath(cfg.State.Path)
	cfg.UI.DebugLog = expandPath(cfg.UI.DebugLog)
	cfg.Sheet.PeekHeight = strings.ToLower(strings.TrimSpace(cfg.Sheet.PeekHeight))
	cfg.Sheet.InitialState = strings.ToLower(strings.TrimSpace(cfg.Sheet.InitialState))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/anchorsheet/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "anchorsheet", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SheetConfig returns the sheet settings with defaults applied.
func (c *Config) SheetConfig() (sheet.Config, error) {
	sc := c.Sheet
	out := sheet.DefaultConfig()

	peek, err := parsePeekHeight(sc.PeekHeight)
	if err != nil {
		return sheet.Config{}, err
	}
	out.PeekHeight = peek

	out.PeekHeightMin = DefaultPeekHeightMin
	if sc.PeekHeightMin > 0 {
		out.PeekHeightMin = sc.PeekHeightMin
	}
	if sc.AnchorThreshold != 0 {
		out.AnchorThreshold = sc.AnchorThreshold
	}
	out.Hideable = sc.Hideable
	out.SkipCollapsed = sc.SkipCollapsed

	out.TouchSlop = DefaultTouchSlop
	if sc.TouchSlop != nil {
		out.TouchSlop = *sc.TouchSlop
	}
	out.MinFlingVelocity = DefaultMinFlingVelocity
	if sc.MinFlingVelocity > 0 {
		out.MinFlingVelocity = sc.MinFlingVelocity
	}
	out.MaxFlingVelocity = DefaultMaxFlingVelocity
	if sc.MaxFlingVelocity > 0 {
		out.MaxFlingVelocity = sc.MaxFlingVelocity
	}

	if err := out.Validate(); err != nil {
		return sheet.Config{}, fmt.Errorf("sheet config: %w", err)
	}
	return out, nil
}

func parsePeekHeight(s string) (int, error) {
	if s == "" || s == "auto" {
		return sheet.PeekHeightAuto, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("peek_height %q: want a row count or \"auto\"", s)
	}
	return n, nil
}

// InitialState returns the state the sheet starts in.
func (c *Config) InitialState() (sheet.State, error) {
	return ParseState(c.Sheet.InitialState)
}

// ParseState parses a resting state name. The empty string is Collapsed.
func ParseState(s string) (sheet.State, error) {
	switch strings.ToLower(s) {
	case "", "collapsed":
		return sheet.StateCollapsed, nil
	case "expanded":
		return sheet.StateExpanded, nil
	case "anchor", "anchored":
		return sheet.StateAnchor, nil
	case "hidden":
		return sheet.StateHidden, nil
	default:
		return 0, fmt.Errorf("unknown sheet state %q", s)
	}
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI

	if cfg.FPS <= 0 || cfg.FPS > 240 {
		cfg.FPS = DefaultFPS
	}
	if cfg.ContentLines <= 0 {
		cfg.ContentLines = DefaultContentLines
	}

	return cfg
}
