package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/xvzc/ordtree/internal/ptr"
)

const configFilename = "ordtree.toml"

func CreateCommand(
	runFunc func(ctx context.Context, configDir string, cfg *Config) error,
	version string,
	commit string,
	build string,
) *cli.Command {
	cmd := &cli.Command{
		Name:                      "ordtree",
		Usage:                     "Load keys into an ordered search tree and print them in order",
		ArgsUsage:                 "[keys...]",
		// Keys may contain commas; --remove takes exactly one key per use.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "clean",
				Usage:    "ignore every configuration file",
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `custom location of the config file to load. Options given through
the command line override the options set in this file`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("ORDTREE_CONFIG"),
			},

			&cli.StringFlag{
				Name:      "log-level",
				Usage:     fmt.Sprintf("log level, one of %v", availableLogLevels),
				Value:     "info",
				OnlyOnce:  true,
				Validator: checkLogLevel,
			},

			&cli.BoolFlag{
				Name:     "silent",
				Usage:    "do not print the summary after the keys",
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:      "comparator",
				Aliases:   []string{"o"},
				Usage:     "ordering strategy: natural, numeric, domain, collate or expr",
				Value:     "natural",
				OnlyOnce:  true,
				Validator: checkComparator,
			},

			&cli.BoolFlag{
				Name:     "descending",
				Aliases:  []string{"r"},
				Usage:    "reverse the order of the comparator",
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:      "locale",
				Usage:     "BCP 47 language tag used by the collate comparator",
				Value:     "und",
				OnlyOnce:  true,
				Validator: checkLocale,
			},

			&cli.StringFlag{
				Name: "expr",
				Usage: `expression over the strings 'a' and 'b' used by the expr comparator;
it must evaluate to an int, e.g. "len(a) - len(b)"`,
				OnlyOnce: true,
			},

			&cli.StringSliceFlag{
				Name:  "remove",
				Usage: "key to remove after inserting; can be given multiple times",
			},

			&cli.StringFlag{
				Name: "ops-file",
				Usage: `file with one operation per line: 'insert KEY', 'remove KEY'
or 'contains KEY'; a bare KEY is an insert`,
				OnlyOnce:  true,
				Validator: checkNonEmpty,
			},

			&cli.StringFlag{
				Name:      "format",
				Aliases:   []string{"f"},
				Usage:     fmt.Sprintf("output format, one of %v", availableOutputFormats),
				Value:     "list",
				OnlyOnce:  true,
				Validator: checkOutputFormat,
			},

			&cli.BoolFlag{
				Name:     "version",
				Aliases:  []string{"v"},
				Usage:    "print version",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				_, err := fmt.Fprintf(cmd.Root().Writer, "ordtree %s %s (%s)\n", version, commit, build)
				return err
			}

			var tomlCfg *Config
			var configDir string
			if !cmd.Bool("clean") {
				configDirs := []string{
					path.Join(string(os.PathSeparator), "etc", configFilename),
					path.Join(os.Getenv("XDG_CONFIG_HOME"), "ordtree", configFilename),
					path.Join(os.Getenv("HOME"), ".config", "ordtree", configFilename),
				}

				c, err := searchTomlFile(cmd.String("config"), configDirs)
				if err != nil {
					return err
				}

				if c != "" {
					configDir = c
					tomlCfg, err = fromTomlFile(c)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
				}
			}

			argsCfg, err := parseConfigFromArgs(cmd)
			if err != nil {
				return fmt.Errorf("error parsing config from args: %w", err)
			}

			finalCfg := NewConfig().Merge(tomlCfg).Merge(argsCfg)

			home := os.Getenv("HOME")
			if home != "" {
				configDir = strings.Replace(configDir, home, "~", 1)
			}

			return runFunc(ctx, configDir, finalCfg)
		},
	}

	return cmd
}

// parseConfigFromArgs collects only the flags the user actually set, so
// that they override the config file without clobbering it with defaults.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		General: &GeneralOptions{},
		Order:   &OrderOptions{},
		Input:   &InputOptions{},
		Output:  &OutputOptions{},
	}

	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = ptr.FromValue(MustParseLogLevel(cmd.String("log-level")))
	}

	if cmd.IsSet("silent") {
		cfg.General.Silent = ptr.FromValue(cmd.Bool("silent"))
	}

	if cmd.IsSet("comparator") {
		cfg.Order.Comparator = ptr.FromValue(strings.ToLower(cmd.String("comparator")))
	}

	if cmd.IsSet("descending") {
		cfg.Order.Descending = ptr.FromValue(cmd.Bool("descending"))
	}

	if cmd.IsSet("locale") {
		cfg.Order.Locale = ptr.FromValue(cmd.String("locale"))
	}

	if cmd.IsSet("expr") {
		cfg.Order.Expr = ptr.FromValue(cmd.String("expr"))
	}

	if cmd.Args().Len() > 0 {
		cfg.Input.Keys = cmd.Args().Slice()
	}

	if cmd.IsSet("remove") {
		cfg.Input.Remove = cmd.StringSlice("remove")
	}

	if cmd.IsSet("ops-file") {
		cfg.Input.OpsFile = ptr.FromValue(cmd.String("ops-file"))
	}

	if cmd.IsSet("format") {
		cfg.Output.Format = ptr.FromValue(MustParseOutputFormat(cmd.String("format")))
	}

	return cfg, nil
}
