package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"
)

// LintAll lints every path concurrently, one store per file, and returns
// results in input order so output stays byte-for-byte deterministic
// regardless of scheduling.
func LintAll(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	limit, err := safecast.Conv[uint16](jobs)
	if err != nil {
		return nil, fmt.Errorf("jobs overflow: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(int(limit))

	results := make([]*Result, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := lintCached(path, opts)
			if err != nil {
				return err
			}
			// no mutex needed, index i is unique per goroutine
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func lintCached(path string, opts Options) (*Result, error) {
	if opts.Cache == nil {
		return Lint(path, opts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := cacheKey(data, opts.Disable)

	var payload cachePayload
	if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.Schema == cacheSchemaVersion {
		return &Result{
			Path:        path,
			Rendered:    payload.Rendered,
			Errors:      payload.Errors,
			Warnings:    payload.Warnings,
			Conventions: payload.Conventions,
			FromCache:   true,
		}, nil
	}

	r, err := LintBytes(path, data, opts)
	if err != nil {
		return nil, err
	}
	// a cache write failure costs one recomputation next run, nothing more
	_ = opts.Cache.Put(key, &cachePayload{
		Schema:      cacheSchemaVersion,
		Rendered:    r.Rendered,
		Errors:      r.Errors,
		Warnings:    r.Warnings,
		Conventions: r.Conventions,
	})
	return r, nil
}
