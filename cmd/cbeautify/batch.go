package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	cbeautify "github.com/alnah/go-cbeautify"
	"github.com/alnah/go-cbeautify/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: pages are served as static files
)

// Sentinel errors for batch operations.
var (
	ErrReadPage       = errors.New("failed to read page")
	ErrWritePage      = errors.New("failed to write page")
	ErrBeautifierInit = errors.New("failed to initialize beautifier")
)

// PageBeautifier is the interface for the rewrite pass.
type PageBeautifier interface {
	Beautify(ctx context.Context, input cbeautify.Input) (*cbeautify.Result, error)
}

// Compile-time interface implementation check.
var _ PageBeautifier = (*cbeautify.Beautifier)(nil)

// Pool abstracts beautifier pool operations for testability.
type Pool interface {
	Acquire() PageBeautifier
	Release(PageBeautifier)
	Size() int
}

// PageResult holds the outcome of a single page.
type PageResult struct {
	InputPath  string
	OutputPath string
	Report     cbeautify.PageReport
	Err        error
	Duration   time.Duration
}

// beautifyBatch processes pages concurrently using the pool.
// Results are returned in the order of pages.
func beautifyBatch(ctx context.Context, pool Pool, pages []PageToBeautify) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(pages) {
		concurrency = len(pages)
	}

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			b := pool.Acquire()
			if b == nil {
				for idx := range jobs {
					results[idx] = PageResult{
						InputPath: pages[idx].InputPath,
						Err:       ErrBeautifierInit,
					}
				}
				return
			}
			defer pool.Release(b)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						InputPath: pages[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = beautifyPage(ctx, b, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// beautifyPage rewrites one page and writes it atomically.
// Empty pages are copied unchanged.
func beautifyPage(ctx context.Context, b PageBeautifier, p PageToBeautify) PageResult {
	start := time.Now()
	result := PageResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadPage, err)
		result.Duration = time.Since(start)
		return result
	}

	out := content
	res, err := b.Beautify(ctx, cbeautify.Input{Name: p.InputPath, HTML: content, AssetPrefix: p.AssetPrefix})
	switch {
	case errors.Is(err, cbeautify.ErrEmptyHTML):
		// nothing to rewrite
	case err != nil:
		result.Err = err
		result.Duration = time.Since(start)
		return result
	default:
		out = res.HTML
		result.Report = res.Report
	}

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(p.OutputPath, out, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each page and returns the number of failures.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		fmt.Fprintf(env.Stdout, "Processing: %s\n", r.InputPath)
		if verbose {
			if skipped := r.Report.Skipped(); len(skipped) > 0 {
				fmt.Fprintf(env.Stdout, "  skipped: %s\n", strings.Join(skipped, ", "))
			}
			fmt.Fprintf(env.Stdout, "  -> %s (%v)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
