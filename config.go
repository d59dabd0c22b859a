// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"fmt"
	"io"

	"gioui.org/unit"
	"github.com/BurntSushi/toml"
)

// Config is the drawer configuration as stored in a TOML file.
// Lengths are in dp.
type Config struct {
	Mode            Mode      `toml:"mode"`
	TouchMode       TouchMode `toml:"touch_mode"`
	ScrollScale     float32   `toml:"scroll_scale"`
	MarginThreshold float32   `toml:"margin_threshold"`
	Offset          float32   `toml:"offset"`
	ShadowWidth     float32   `toml:"shadow_width"`
	FadeEnabled     bool      `toml:"fade_enabled"`
	FadeDegree      float32   `toml:"fade_degree"`
	SelectorEnabled bool      `toml:"selector_enabled"`
}

// DefaultConfig returns the configuration matching New.
func DefaultConfig() Config {
	return Config{
		Mode:            Left,
		TouchMode:       TouchMargin,
		ScrollScale:     0.33,
		MarginThreshold: defaultThreshold,
		FadeEnabled:     true,
		FadeDegree:      0.33,
		SelectorEnabled: true,
	}
}

// DecodeConfig reads a TOML configuration. Keys missing from r keep
// their DefaultConfig values; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("slidemenu: decode config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("slidemenu: unknown config key %q", undec[0].String())
	}
	return cfg, nil
}

// Apply configures b from cfg, converting lengths with m. Invalid
// values leave b unchanged.
func (b *Behind) Apply(cfg Config, m unit.Metric) error {
	if !(cfg.FadeDegree >= 0 && cfg.FadeDegree <= 1) {
		return fmt.Errorf("slidemenu: fade degree %v outside [0, 1]", cfg.FadeDegree)
	}
	if !(cfg.ScrollScale >= 0 && cfg.ScrollScale <= 1) {
		return fmt.Errorf("slidemenu: scroll scale %v outside [0, 1]", cfg.ScrollScale)
	}
	if cfg.Mode > TopBottom {
		return fmt.Errorf("slidemenu: invalid mode %d", cfg.Mode)
	}
	if cfg.TouchMode > TouchNone {
		return fmt.Errorf("slidemenu: invalid touch mode %d", cfg.TouchMode)
	}
	if err := b.SetFadeDegree(cfg.FadeDegree); err != nil {
		return err
	}
	b.SetMode(cfg.Mode)
	b.SetTouchMode(cfg.TouchMode)
	b.SetScrollScale(cfg.ScrollScale)
	b.SetMarginThreshold(m.Px(unit.Dp(cfg.MarginThreshold)))
	b.SetOffset(m.Px(unit.Dp(cfg.Offset)))
	b.SetShadowWidth(m.Px(unit.Dp(cfg.ShadowWidth)))
	b.SetFadeEnabled(cfg.FadeEnabled)
	b.SetSelectorEnabled(cfg.SelectorEnabled)
	return nil
}
