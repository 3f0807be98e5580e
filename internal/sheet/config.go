package sheet

import (
	"errors"
	"fmt"
)

// PeekHeightAuto makes the collapsed sheet peek at the 16:9 keyline of its
// parent. It can be passed to SetPeekHeight and is returned by PeekHeight.
const PeekHeightAuto = -1

// DefaultAnchorThreshold places the anchor at half the parent height.
const DefaultAnchorThreshold = 0.5

// Release tuning.
const (
	hideThreshold = 0.5
	hideFriction  = 0.1
)

// Defaults in pixels, matching common touch platform metrics.
const (
	DefaultPeekHeightMin    = 64
	DefaultTouchSlop        = 8
	DefaultMinFlingVelocity = 50.0
	DefaultMaxFlingVelocity = 8000.0
)

// ErrAnchorThreshold is returned for an anchor threshold outside (0, 1].
var ErrAnchorThreshold = errors.New("anchor threshold must be in (0, 1]")

// Config holds the behavior settings of a sheet.
type Config struct {
	// PeekHeight is the visible height when collapsed, or PeekHeightAuto.
	PeekHeight int
	// PeekHeightMin is the lower bound of the automatic peek height.
	PeekHeightMin int
	// AnchorThreshold is the anchor position as a fraction of the parent
	// height, measured from the top.
	AnchorThreshold float64
	// Hideable allows the user to swipe the sheet off screen.
	Hideable bool
	// SkipCollapsed hides a hideable sheet on release instead of collapsing it.
	SkipCollapsed bool
	// TouchSlop is the distance a pointer travels before a drag starts.
	TouchSlop int
	// MinFlingVelocity and MaxFlingVelocity bound release velocities, in
	// pixels per second. Slower releases count as zero velocity.
	MinFlingVelocity float64
	MaxFlingVelocity float64
}

// DefaultConfig returns the settings of a non-hideable sheet with an
// automatic peek height.
func DefaultConfig() Config {
	return Config{
		PeekHeight:       PeekHeightAuto,
		PeekHeightMin:    DefaultPeekHeightMin,
		AnchorThreshold:  DefaultAnchorThreshold,
		TouchSlop:        DefaultTouchSlop,
		MinFlingVelocity: DefaultMinFlingVelocity,
		MaxFlingVelocity: DefaultMaxFlingVelocity,
	}
}

// Validate reports the first setting that cannot be used as given.
func (c Config) Validate() error {
	if !validAnchorThreshold(c.AnchorThreshold) {
		return fmt.Errorf("%w: %v", ErrAnchorThreshold, c.AnchorThreshold)
	}
	if c.PeekHeight < 0 && c.PeekHeight != PeekHeightAuto {
		return fmt.Errorf("peek height %d is negative", c.PeekHeight)
	}
	if c.PeekHeightMin < 0 {
		return fmt.Errorf("minimum peek height %d is negative", c.PeekHeightMin)
	}
	if c.TouchSlop < 0 {
		return fmt.Errorf("touch slop %d is negative", c.TouchSlop)
	}
	if c.MinFlingVelocity < 0 || c.MaxFlingVelocity < 0 {
		return errors.New("fling velocities must not be negative")
	}
	if c.MaxFlingVelocity < c.MinFlingVelocity {
		return fmt.Errorf("max fling velocity %v is below min fling velocity %v",
			c.MaxFlingVelocity, c.MinFlingVelocity)
	}
	return nil
}

// normalized replaces unusable values with defaults so that a sheet built
// from a bad config still behaves.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if !validAnchorThreshold(c.AnchorThreshold) {
		c.AnchorThreshold = d.AnchorThreshold
	}
	if c.PeekHeight < 0 {
		c.PeekHeight = PeekHeightAuto
	}
	c.PeekHeightMin = max(c.PeekHeightMin, 0)
	c.TouchSlop = max(c.TouchSlop, 0)
	c.MinFlingVelocity = max(c.MinFlingVelocity, 0)
	c.MaxFlingVelocity = max(c.MaxFlingVelocity, c.MinFlingVelocity)
	return c
}

func validAnchorThreshold(v float64) bool {
	return v > 0 && v <= 1
}
