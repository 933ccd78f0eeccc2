package config

import (
	"github.com/rs/zerolog"
	"github.com/xvzc/ordtree/internal/compare"
	"github.com/xvzc/ordtree/internal/ptr"
)

type Config struct {
	General *GeneralOptions `toml:"general"`
	Order   *OrderOptions   `toml:"order"`
	Input   *InputOptions   `toml:"input"`
	Output  *OutputOptions  `toml:"output"`
}

// NewConfig returns a config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: ptr.FromValue(zerolog.InfoLevel),
			Silent:   ptr.FromValue(false),
		},
		Order: &OrderOptions{
			Comparator: ptr.FromValue(compare.NameNatural),
			Descending: ptr.FromValue(false),
			Locale:     ptr.FromValue("und"),
			Expr:       ptr.FromValue(""),
		},
		Input: &InputOptions{},
		Output: &OutputOptions{
			Format: ptr.FromValue(OutputFormatList),
		},
	}
}

func (c *Config) UnmarshalTOML(data any) error {
	t := newTomlTable("config", data)

	c.General = section[GeneralOptions](t, "general")
	c.Order = section[OrderOptions](t, "order")
	c.Input = section[InputOptions](t, "input")
	c.Output = section[OutputOptions](t, "output")

	return t.err
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General: c.General.Clone(),
		Order:   c.Order.Clone(),
		Input:   c.Input.Clone(),
		Output:  c.Output.Clone(),
	}
}

// Merge returns a new config where every field set in overrides wins.
func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General: origin.General.Merge(overrides.General),
		Order:   origin.Order.Merge(overrides.Order),
		Input:   origin.Input.Merge(overrides.Input),
		Output:  origin.Output.Merge(overrides.Output),
	}
}

// CompareOptions converts the order section into comparator options.
func (c *Config) CompareOptions() compare.Options {
	return compare.Options{
		Locale:     ptr.Deref(c.Order.Locale),
		Expr:       ptr.Deref(c.Order.Expr),
		Descending: ptr.Deref(c.Order.Descending),
	}
}
