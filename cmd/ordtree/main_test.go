package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvzc/ordtree/internal/config"
	"github.com/xvzc/ordtree/internal/ptr"
)

type jsonOutput struct {
	Keys   []string `json:"keys"`
	Size   int      `json:"size"`
	Height int      `json:"height"`
}

func jsonConfig(comparator string, keys ...string) *config.Config {
	cfg := config.NewConfig()
	cfg.Order.Comparator = ptr.FromValue(comparator)
	cfg.Input.Keys = keys
	cfg.Output.Format = ptr.FromValue(config.OutputFormatJSON)
	return cfg
}

func runJSON(t *testing.T, cfg *config.Config) jsonOutput {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, execute(context.Background(), &buf, zerolog.Nop(), "", cfg))

	var out jsonOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestExecute(t *testing.T) {
	tcs := []struct {
		name   string
		cfg    func(t *testing.T) *config.Config
		assert func(t *testing.T, out jsonOutput)
	}{
		{
			name: "numeric keys",
			cfg: func(t *testing.T) *config.Config {
				return jsonConfig("numeric", "5", "3", "7", "1", "9")
			},
			assert: func(t *testing.T, out jsonOutput) {
				assert.Equal(t, []string{"1", "3", "5", "7", "9"}, out.Keys)
				assert.Equal(t, 5, out.Size)
				assert.Equal(t, 3, out.Height)
			},
		},
		{
			name: "remove root with two children",
			cfg: func(t *testing.T) *config.Config {
				cfg := jsonConfig("numeric", "5", "3", "7")
				cfg.Input.Remove = []string{"5"}
				return cfg
			},
			assert: func(t *testing.T, out jsonOutput) {
				assert.Equal(t, []string{"3", "7"}, out.Keys)
				assert.Equal(t, 2, out.Size)
			},
		},
		{
			name: "degenerate insertion order",
			cfg: func(t *testing.T) *config.Config {
				return jsonConfig("numeric", "1", "2", "3", "4", "5")
			},
			assert: func(t *testing.T, out jsonOutput) {
				assert.Equal(t, 5, out.Height)
			},
		},
		{
			name: "descending",
			cfg: func(t *testing.T) *config.Config {
				cfg := jsonConfig("natural", "b", "c", "a")
				cfg.Order.Descending = ptr.FromValue(true)
				return cfg
			},
			assert: func(t *testing.T, out jsonOutput) {
				assert.Equal(t, []string{"c", "b", "a"}, out.Keys)
			},
		},
		{
			name: "ops file",
			cfg: func(t *testing.T) *config.Config {
				path := filepath.Join(t.TempDir(), "ops.txt")
				content := "insert b\nc\nremove a\ncontains c\n"
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

				cfg := jsonConfig("natural", "a")
				cfg.Input.OpsFile = ptr.FromValue(path)
				cfg.Input.Remove = []string{"c"}
				return cfg
			},
			assert: func(t *testing.T, out jsonOutput) {
				assert.Equal(t, []string{"b"}, out.Keys)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, runJSON(t, tc.cfg(t)))
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	tcs := []struct {
		name string
		cfg  func() *config.Config
	}{
		{
			name: "invalid key",
			cfg: func() *config.Config {
				return jsonConfig("numeric", "1", "x")
			},
		},
		{
			name: "expr without expression",
			cfg: func() *config.Config {
				return jsonConfig("expr", "a")
			},
		},
		{
			name: "missing ops file",
			cfg: func() *config.Config {
				cfg := jsonConfig("natural")
				cfg.Input.OpsFile = ptr.FromValue(filepath.Join(t.TempDir(), "missing"))
				return cfg
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := execute(context.Background(), &buf, zerolog.Nop(), "", tc.cfg())
			assert.Error(t, err)
			assert.Empty(t, buf.String())
		})
	}
}

func TestExecute_TextFormats(t *testing.T) {
	pterm.DisableStyling()

	tcs := []struct {
		name   string
		format config.OutputFormat
		silent bool
		assert func(t *testing.T, out string)
	}{
		{
			name:   "list with summary",
			format: config.OutputFormatList,
			assert: func(t *testing.T, out string) {
				assert.Contains(t, out, "apple")
				assert.Contains(t, out, "SIZE       : 2")
			},
		},
		{
			name:   "tree without summary",
			format: config.OutputFormatTree,
			silent: true,
			assert: func(t *testing.T, out string) {
				assert.Contains(t, out, "L apple")
				assert.NotContains(t, out, "SIZE")
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Input.Keys = []string{"pear", "apple"}
			cfg.Output.Format = ptr.FromValue(tc.format)
			cfg.General.Silent = ptr.FromValue(tc.silent)

			var buf bytes.Buffer
			require.NoError(t, execute(context.Background(), &buf, zerolog.Nop(), "", cfg))
			tc.assert(t, buf.String())
		})
	}
}

func TestExecute_RejectedKeysAreWarned(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.InfoLevel)

	var buf bytes.Buffer
	err := execute(context.Background(), &buf, logger, "", jsonConfig("numeric", "one", "2", "three"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric")
	assert.Empty(t, buf.String())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], `\"one\"`)
	assert.Contains(t, lines[1], `\"three\"`)
}
