package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/xvzc/ordtree/internal/appctx"
	"github.com/xvzc/ordtree/internal/compare"
	"github.com/xvzc/ordtree/internal/config"
	"github.com/xvzc/ordtree/internal/datastruct/tree"
	"github.com/xvzc/ordtree/internal/logging"
	"github.com/xvzc/ordtree/internal/ptr"
	"github.com/xvzc/ordtree/internal/render"
	"github.com/xvzc/ordtree/internal/workload"
)

// Version information set by ldflags
var (
	version = "dev"
	commit  = "unknown"
	build   = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := config.CreateCommand(runApp, version, commit, build)
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func runApp(ctx context.Context, configDir string, cfg *config.Config) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		pterm.DisableStyling()
	}

	logger := logging.NewLogger(os.Stderr, ptr.DerefOr(cfg.General.LogLevel, zerolog.InfoLevel))
	return execute(ctx, os.Stdout, logger, configDir, cfg)
}

func execute(
	ctx context.Context,
	w io.Writer,
	logger zerolog.Logger,
	configDir string,
	cfg *config.Config,
) error {
	ctx = appctx.WithNewRunID(ctx)
	mainLogger := logging.WithScope(logger, "MAIN")

	if configDir != "" {
		mainLogger.Info().Ctx(ctx).Msgf("config loaded from %s", configDir)
	}

	strategy, err := compare.Lookup(ptr.Deref(cfg.Order.Comparator), cfg.CompareOptions())
	if err != nil {
		return err
	}

	ops, source, err := collectOps(cfg.Input)
	if err != nil {
		return err
	}

	set := tree.New(strategy.Compare)
	runner := workload.NewRunner(set, strategy, logging.WithScope(logger, "TREE"))

	rep, err := runner.Run(appctx.WithSource(ctx, source), ops)
	if errors.Is(err, compare.ErrInvalidKey) {
		logging.WarnUnwrapped(&mainLogger, "rejected key", err)
		return fmt.Errorf("keys from %s rejected by the %s comparator", source, strategy.Name)
	}
	if err != nil {
		logging.ErrorUnwrapped(&mainLogger, "failed to apply operations", err)
		return fmt.Errorf("operations from %s not fully applied", source)
	}

	mainLogger.Debug().Ctx(ctx).
		Int("size", set.Size()).
		Int("height", set.Height()).
		Msg("tree built")

	res := render.Result{
		Comparator: strategy.Name,
		Descending: ptr.Deref(cfg.Order.Descending),
		Set:        set,
		Compare:    strategy.Compare,
		Report:     rep,
	}

	return output(w, res, ptr.Deref(cfg.Output.Format), ptr.Deref(cfg.General.Silent))
}

// collectOps inserts the configured keys, then applies the ops file, then
// removes the configured removals.
func collectOps(in *config.InputOptions) ([]workload.Op, string, error) {
	if in == nil {
		return nil, "args", nil
	}

	ops := workload.FromKeys(in.Keys, nil)
	source := "args"

	if in.OpsFile != nil {
		fileOps, err := workload.ReadOpsFile(*in.OpsFile)
		if err != nil {
			return nil, "", err
		}
		ops = append(ops, fileOps...)
		source = *in.OpsFile
	}

	ops = append(ops, workload.FromKeys(nil, in.Remove)...)

	return ops, source, nil
}

func output(w io.Writer, res render.Result, format config.OutputFormat, silent bool) error {
	switch format {
	case config.OutputFormatJSON:
		return render.JSON(w, res)
	case config.OutputFormatTree:
		if err := render.Shape(w, res.Set, res.Compare); err != nil {
			return err
		}
	default:
		if err := render.Keys(w, res.Set); err != nil {
			return err
		}
	}

	if silent {
		return nil
	}

	return render.Summary(w, res)
}
