package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/xvzc/ordtree/internal/ptr"
)

func fromTomlFile(path string) (*Config, error) {
	_ = os.Setenv("BURNTSUSHI_TOML_110", "1") // allow new lines in inline tables

	var cfg *Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// searchTomlFile returns customPath if given, otherwise the first existing
// entry of lookupPaths. Finding nothing is not an error.
func searchTomlFile(customPath string, lookupPaths []string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, p := range lookupPaths {
		if p == "" {
			continue
		}

		_, err := os.Stat(p)
		switch {
		case err == nil:
			return p, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("config file %s: %w", p, err)
		}
	}

	return "", nil
}

// tomlTable reads fields out of one decoded TOML table. Only the first
// error is kept; once it is set every lookup yields nothing.
type tomlTable struct {
	m   map[string]any
	err error
}

func newTomlTable(name string, data any) *tomlTable {
	m, ok := data.(map[string]any)
	if !ok {
		return &tomlTable{err: fmt.Errorf("'%s' must be table type", name)}
	}

	return &tomlTable{m: m}
}

func (t *tomlTable) lookup(key string) (any, bool) {
	if t.err != nil {
		return nil, false
	}

	v, ok := t.m[key]
	return v, ok
}

func field[T any](t *tomlTable, key string, parse func(any) (T, error)) *T {
	raw, ok := t.lookup(key)
	if !ok {
		return nil
	}

	v, err := parse(raw)
	if err != nil {
		t.err = fmt.Errorf("field %q: %w", key, err)
		return nil
	}

	return ptr.FromValue(v)
}

func listField[T any](t *tomlTable, key string, parse func(any) (T, error)) []T {
	raw, ok := t.lookup(key)
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		if typed, ok := raw.([]T); ok {
			return typed
		}
		t.err = fmt.Errorf("field %q: expected list, got %T", key, raw)
		return nil
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := parse(item)
		if err != nil {
			t.err = fmt.Errorf("field %q[%d]: %w", key, i, err)
			return nil
		}
		out = append(out, v)
	}

	return out
}

func section[T any, PT interface {
	*T
	toml.Unmarshaler
}](t *tomlTable, key string) *T {
	raw, ok := t.lookup(key)
	if !ok {
		return nil
	}

	var s T
	if err := PT(&s).UnmarshalTOML(raw); err != nil {
		t.err = fmt.Errorf("failed to decode '%s': %w", key, err)
		return nil
	}

	return &s
}
