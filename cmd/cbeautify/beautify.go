package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	cbeautify "github.com/alnah/go-cbeautify"
	"github.com/alnah/go-cbeautify/internal/config"
	"github.com/alnah/go-cbeautify/internal/fileutil"
	"github.com/alnah/go-cbeautify/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoMode       = errors.New("choose at least one of --html, --css")
	ErrInvalidFlags = errors.New("invalid flags")
	ErrTooManyArgs  = errors.New("too many arguments")
	ErrInputMissing = errors.New("input directory not found")
	ErrNoPages      = errors.New("no HTML pages found")
	ErrOutputDir    = errors.New("failed to create output directory")
	ErrPagesFailed  = errors.New("some pages failed")
)

// Mode selects the outputs of a run.
type Mode struct {
	RewriteHTML bool // --html
	BundleCSS   bool // --css
}

// Validate returns ErrNoMode when nothing is selected.
func (m Mode) Validate() error {
	if !m.RewriteHTML && !m.BundleCSS {
		return fmt.Errorf("%w%s", ErrNoMode, hints.ForMode())
	}
	return nil
}

// runBeautify parses flags, resolves configuration and runs the selected modes.
func runBeautify(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBeautifyFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	mode := Mode{RewriteHTML: flags.mode.html, BundleCSS: flags.mode.css}
	if err := mode.Validate(); err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input directory, got %d", ErrTooManyArgs, len(positional))
	}

	cfg, err := loadRunConfig(flags.common.config, env.Stderr)
	if err != nil {
		return err
	}
	mergeFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if mode.RewriteHTML && !fileutil.DirExists(cfg.Input.Dir) {
		return fmt.Errorf("%w: %s%s", ErrInputMissing, cfg.Input.Dir, hints.ForInputMissing(cfg.Input.Dir))
	}

	b, err := newBeautifier(cfg)
	if err != nil {
		return err
	}

	start := env.Now()

	if mode.BundleCSS {
		path, err := b.WriteHighlightCSS(ctx, cfg.CSS.Dir)
		if err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
		}
	}

	if mode.RewriteHTML {
		if err := rewriteSite(ctx, b, cfg, flags, env); err != nil {
			return err
		}
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// rewriteSite beautifies every page of the input directory into the output
// directory and bundles the static assets next to them.
func rewriteSite(ctx context.Context, b *cbeautify.Beautifier, cfg *config.Config, flags *beautifyFlags, env *Environment) error {
	pages, err := discoverPages(cfg.Input.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Input.Dir)
	}

	if err := os.MkdirAll(cfg.Output.Dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
	}

	written, err := b.BundleAssets(ctx, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("bundling assets: %w", err)
	}
	if flags.common.verbose {
		for _, path := range written {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
		}
	}

	pool := NewBeautifierPool(resolvePoolSize(cfg.Workers), func() (PageBeautifier, error) {
		return newBeautifier(cfg)
	})
	defer pool.Close()
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Workers: %d\n", pool.Size())
	}

	results := beautifyBatch(ctx, pool, pages)
	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPagesFailed, failed, len(results))
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, indexURI(cfg.Output.Dir))
	}
	return nil
}
