/*
Package config provides the process settings for the payroll engine.

PURPOSE:
  Loads engine settings (vacation defaults, payout limits, bonus rates)
  from a JSON document. When the document does not exist, the built-in
  defaults are written out so the next load finds them.

LOOKUP SEMANTICS:
  Values are read with dotted paths ("vacation.policies.manager.max_payout").
  A missing segment at any depth is NOT an error: Get returns an empty
  mapping and the typed getters return zero values. Several policies read
  paths that custom configs legitimately omit (e.g. a missing performance
  rate means "no performance bonus"), so lookups must degrade, not fail.

NO GLOBAL STATE:
  Config is an explicit value constructed once at startup and passed into
  every component that needs it. Tests build fixtures with FromMap and
  never touch the filesystem or shared state.

SEE ALSO:
  - factory/employee.go: consumes defaults during construction
  - vacation/policies.go, payroll/: consume limits and rates
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// =============================================================================
// CONFIG - Read-only settings with dotted-path lookup
// =============================================================================

// Config is a read-only view over the loaded settings.
type Config struct {
	v *viper.Viper
}

// Load reads the JSON settings document at path. If the file does not
// exist, the defaults are written to path and served for this process.
// Any other read failure is returned as an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	err := v.ReadInConfig()
	if err == nil {
		return &Config{v: v}, nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// First run: seed the file with defaults so operators can edit it.
	if err := v.MergeConfigMap(Defaults()); err != nil {
		return nil, fmt.Errorf("failed to apply default config: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return nil, fmt.Errorf("failed to write default config %s: %w", path, err)
	}

	return &Config{v: v}, nil
}

// FromMap builds a Config from an in-memory settings tree.
// Intended for tests and embedded callers.
func FromMap(settings map[string]any) *Config {
	v := viper.New()
	// MergeConfigMap cannot fail for a plain map tree.
	_ = v.MergeConfigMap(settings)
	return &Config{v: v}
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return FromMap(Defaults())
}

// Defaults returns the built-in settings document.
//
// The developer policy block and the performance rates are part of the
// defaults even though older configs omit them: without the developer
// block its limits read as zero and developers could never take a day off.
func Defaults() map[string]any {
	return map[string]any{
		"vacation": map[string]any{
			"default_days": 25,
			"payout_days":  5,
			"policies": map[string]any{
				"intern": map[string]any{
					"can_take":   false,
					"can_payout": false,
				},
				"manager": map[string]any{
					"can_take":   true,
					"can_payout": true,
					"max_payout": 10,
				},
				"vice_president": map[string]any{
					"can_take":        true,
					"can_payout":      true,
					"max_per_request": 5,
				},
				"developer": map[string]any{
					"can_take":        true,
					"can_payout":      true,
					"max_per_request": 10,
					"max_payout":      10,
				},
			},
		},
		"payment": map[string]any{
			"default_hourly_rate":    50,
			"default_monthly_salary": 5000,
			"bonus": map[string]any{
				"salaried_percentage":    0.10,
				"hourly_bonus_amount":    100,
				"hourly_hours_threshold": 160,
				"performance": map[string]any{
					"salaried": 0.05,
					"hourly":   0.05,
				},
			},
		},
	}
}

// =============================================================================
// LOOKUP
// =============================================================================

// Get returns the raw value at the dotted path. A missing path yields an
// empty mapping, never an error, so callers can keep walking without
// nil checks. Callers must not assume the result is a scalar.
func (c *Config) Get(path string) any {
	value := c.v.Get(path)
	if value == nil {
		return map[string]any{}
	}
	return value
}

// Float returns the value at path as a float64, or 0 when missing.
func (c *Config) Float(path string) float64 {
	return c.v.GetFloat64(path)
}

// Int returns the value at path as an int, or 0 when missing.
func (c *Config) Int(path string) int {
	return c.v.GetInt(path)
}

// Bool returns the value at path as a bool, or false when missing.
func (c *Config) Bool(path string) bool {
	return c.v.GetBool(path)
}
