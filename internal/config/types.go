package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xvzc/ordtree/internal/ptr"
)

type merger[T any] interface {
	Clone() T
	Merge(overrides T) T
}

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error"}

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Silent   *bool          `toml:"silent"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) error {
	t := newTomlTable("general", data)

	o.LogLevel = field(t, "log-level", parseLogLevel)
	o.Silent = field(t, "silent", parseBool)

	return t.err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: ptr.Clone(o.LogLevel),
		Silent:   ptr.Clone(o.Silent),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: ptr.CloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   ptr.CloneOr(overrides.Silent, origin.Silent),
	}
}

// ┌───────────────┐
// │ ORDER OPTIONS │
// └───────────────┘
var _ merger[*OrderOptions] = (*OrderOptions)(nil)

type OrderOptions struct {
	Comparator *string `toml:"comparator"`
	Descending *bool   `toml:"descending"`
	Locale     *string `toml:"locale"`
	Expr       *string `toml:"expr"`
}

func (o *OrderOptions) UnmarshalTOML(data any) error {
	t := newTomlTable("order", data)

	o.Comparator = field(t, "comparator", parseComparator)
	o.Descending = field(t, "descending", parseBool)
	o.Locale = field(t, "locale", parseString(checkLocale))
	o.Expr = field(t, "expr", parseString(nil))

	return t.err
}

func (o *OrderOptions) Clone() *OrderOptions {
	if o == nil {
		return nil
	}

	return &OrderOptions{
		Comparator: ptr.Clone(o.Comparator),
		Descending: ptr.Clone(o.Descending),
		Locale:     ptr.Clone(o.Locale),
		Expr:       ptr.Clone(o.Expr),
	}
}

func (origin *OrderOptions) Merge(overrides *OrderOptions) *OrderOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &OrderOptions{
		Comparator: ptr.CloneOr(overrides.Comparator, origin.Comparator),
		Descending: ptr.CloneOr(overrides.Descending, origin.Descending),
		Locale:     ptr.CloneOr(overrides.Locale, origin.Locale),
		Expr:       ptr.CloneOr(overrides.Expr, origin.Expr),
	}
}

// ┌───────────────┐
// │ INPUT OPTIONS │
// └───────────────┘
var _ merger[*InputOptions] = (*InputOptions)(nil)

type InputOptions struct {
	Keys    []string `toml:"keys"`
	Remove  []string `toml:"remove"`
	OpsFile *string  `toml:"ops-file"`
}

func (o *InputOptions) UnmarshalTOML(data any) error {
	t := newTomlTable("input", data)

	o.Keys = listField(t, "keys", parseString(nil))
	o.Remove = listField(t, "remove", parseString(nil))
	o.OpsFile = field(t, "ops-file", parseString(checkNonEmpty))

	return t.err
}

func (o *InputOptions) Clone() *InputOptions {
	if o == nil {
		return nil
	}

	return &InputOptions{
		Keys:    ptr.CloneSlice(o.Keys),
		Remove:  ptr.CloneSlice(o.Remove),
		OpsFile: ptr.Clone(o.OpsFile),
	}
}

func (origin *InputOptions) Merge(overrides *InputOptions) *InputOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &InputOptions{
		Keys:    ptr.CloneSliceOr(overrides.Keys, origin.Keys),
		Remove:  ptr.CloneSliceOr(overrides.Remove, origin.Remove),
		OpsFile: ptr.CloneOr(overrides.OpsFile, origin.OpsFile),
	}
}

// ┌────────────────┐
// │ OUTPUT OPTIONS │
// └────────────────┘
var _ merger[*OutputOptions] = (*OutputOptions)(nil)

type OutputFormat int

var availableOutputFormats = []string{"list", "tree", "json"}

const (
	OutputFormatList OutputFormat = iota
	OutputFormatTree
	OutputFormatJSON
)

func (f OutputFormat) String() string {
	return availableOutputFormats[f]
}

func MustParseOutputFormat(s string) OutputFormat {
	i := slices.Index(availableOutputFormats, strings.ToLower(s))
	if i < 0 {
		panic(fmt.Sprintf("cannot parse %q to OutputFormat", s))
	}

	return OutputFormat(i)
}

type OutputOptions struct {
	Format *OutputFormat `toml:"format"`
}

func (o *OutputOptions) UnmarshalTOML(data any) error {
	t := newTomlTable("output", data)

	o.Format = field(t, "format", parseOutputFormat)

	return t.err
}

func (o *OutputOptions) Clone() *OutputOptions {
	if o == nil {
		return nil
	}

	return &OutputOptions{
		Format: ptr.Clone(o.Format),
	}
}

func (origin *OutputOptions) Merge(overrides *OutputOptions) *OutputOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &OutputOptions{
		Format: ptr.CloneOr(overrides.Format, origin.Format),
	}
}
