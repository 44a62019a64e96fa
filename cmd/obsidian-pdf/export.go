package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	obsidianpdf "github.com/dontloseyourheadsu/obsidian-android-pdf"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/config"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/hints"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/vault"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input notes provided")
	ErrVaultRequired = errors.New("vault directory is required")
)

// batchConcurrency bounds simultaneous note exports in batch mode.
const batchConcurrency = 4

// run executes the export command end to end: resolve config, open the
// vault, export every note, then handle the open-in-browser confirmation.
func run(ctx context.Context, env *Environment, flags *cliFlags) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.config)))
			}
			return err
		}
		cfg = loaded
	}

	if len(flags.notes) == 0 {
		printUsage(env.Stderr)
		return ErrNoInput
	}

	vaultPath := flags.vault
	if vaultPath == "" {
		vaultPath = cfg.Vault.Path
	}
	if vaultPath == "" {
		return fmt.Errorf("%w%s", ErrVaultRequired, hints.ForVaultNotFound())
	}

	store, err := vault.NewFS(vaultPath)
	if err != nil {
		return fmt.Errorf("opening vault: %w%s", err, hints.ForVaultNotFound())
	}

	exp, err := obsidianpdf.NewExporter(store, exporterOptions(env, flags, cfg)...)
	if err != nil {
		return err
	}

	results := make([]*obsidianpdf.Result, len(flags.notes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, note := range flags.notes {
		g.Go(func() error {
			res, err := exp.Export(gctx, obsidianpdf.Input{NotePath: note})
			if err != nil {
				return fmt.Errorf("exporting %s: %w", note, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w%s", err, hints.ForTimeout())
		}
		return err
	}

	for i, res := range results {
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Exported %s -> %s\n", flags.notes[i], res.IndexPath)
		}
	}

	// Open-in-browser confirmation applies to single-note exports only.
	if len(results) == 1 {
		maybeOpen(env, flags, cfg, store, results[0])
	}
	return nil
}

// exporterOptions assembles library options from flags and config.
// Flags win over config values.
func exporterOptions(env *Environment, flags *cliFlags, cfg *config.Config) []obsidianpdf.Option {
	var opts []obsidianpdf.Option

	style := flags.style
	if style == "" {
		style = cfg.Style.Name
	}
	if style != "" {
		opts = append(opts, obsidianpdf.WithStyle(style))
	}

	assetDir := flags.assetDir
	if assetDir == "" {
		assetDir = cfg.Style.AssetDir
	}
	if assetDir != "" {
		opts = append(opts, obsidianpdf.WithAssetDir(assetDir))
	}

	if flags.timeout > 0 {
		opts = append(opts, obsidianpdf.WithTimeout(flags.timeout))
	} else if cfg.Export.TimeoutSec > 0 {
		opts = append(opts, obsidianpdf.WithTimeout(time.Duration(cfg.Export.TimeoutSec)*time.Second))
	}

	if flags.concurrency > 0 {
		opts = append(opts, obsidianpdf.WithConcurrency(flags.concurrency))
	} else if cfg.Export.Concurrency > 0 {
		opts = append(opts, obsidianpdf.WithConcurrency(cfg.Export.Concurrency))
	}

	if flags.noRemote || !cfg.RemoteEnabled() {
		opts = append(opts, obsidianpdf.WithoutRemoteResources())
	}
	if flags.noPrint || !cfg.PrintTriggerEnabled() {
		opts = append(opts, obsidianpdf.WithoutPrintTrigger())
	}

	if flags.verbose {
		logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, obsidianpdf.WithLogger(logger))
	}

	return opts
}

// maybeOpen opens the artifact with the default handler, either directly
// (--open / config) or after a confirmation prompt.
func maybeOpen(env *Environment, flags *cliFlags, cfg *config.Config, store *vault.FS, res *obsidianpdf.Result) {
	abs, err := store.AbsPath(res.IndexPath)
	if err != nil {
		return
	}
	abs = filepath.Clean(abs)

	open := flags.open || cfg.Export.OpenAfter
	if !open && !flags.quiet {
		open = confirmOpen(env.Stdin, env.Stdout)
	}
	if !open || env.Open == nil {
		return
	}
	if err := env.Open(abs); err != nil && !flags.quiet {
		fmt.Fprintf(env.Stderr, "could not open %s: %v\n", abs, err)
	}
}
