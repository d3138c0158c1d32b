package cache

import (
	"context"
	"sync"

	"github.com/mrdmnd/unicycle/pkg/constants"
	"github.com/mrdmnd/unicycle/pkg/logging"
	"github.com/mrdmnd/unicycle/pkg/month"
	"github.com/mrdmnd/unicycle/pkg/providers"
)

// Result is the outcome of one Ensure call during a bulk sync.
type Result struct {
	Provider providers.ID
	Month    month.Month
	Key      string // remote key the pair resolves to
	Status   Status
	Err      error
}

// Summary aggregates the outcomes of a bulk sync.
type Summary struct {
	Fetched        int
	AlreadyPresent int
	Failed         int
	Failures       []Result
}

// Sync ensures every (provider, month) pair in registry × months is
// cached, fanning the downloads out over a bounded worker pool. Failed
// pairs are logged and collected; they never abort the other pairs, and
// Sync itself succeeds even when every fetch fails — a missing entry is
// counted as zero rides later. Sync returns only after every worker has
// finished, so callers may read the cache immediately afterwards.
//
// Pairs map to distinct cache paths, which is what makes the concurrent
// lock-free writes safe.
func (s *Syncer) Sync(ctx context.Context, registry *providers.Registry, months []month.Month, concurrency int) Summary {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrency
	}

	type pair struct {
		provider *providers.Provider
		month    month.Month
	}

	var pairs []pair
	for _, m := range months {
		for _, p := range registry.List() {
			pairs = append(pairs, pair{provider: p, month: m})
		}
	}

	logger := logging.Ctx(ctx)
	logger.Info().
		Int("pair_count", len(pairs)).
		Int("concurrency", concurrency).
		Msg("Syncing trip-log cache")

	work := make(chan pair)
	results := make(chan Result, len(pairs))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range work {
				pairCtx := logging.WithProvider(ctx, string(w.provider.ID))
				pairCtx = logging.WithMonth(pairCtx, w.month.String())
				status, err := s.Ensure(pairCtx, w.provider, w.month)
				results <- Result{
					Provider: w.provider.ID,
					Month:    w.month,
					Key:      w.provider.RemoteURL(w.month),
					Status:   status,
					Err:      err,
				}
			}
		}()
	}

	for _, w := range pairs {
		work <- w
	}
	close(work)
	wg.Wait()
	close(results)

	var summary Summary
	for r := range results {
		if r.Err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, r)
			logger.Warn().
				Err(r.Err).
				Str("provider_id", string(r.Provider)).
				Str("month", r.Month.String()).
				Str("key", r.Key).
				Msg("Could not retrieve remote key")
			continue
		}
		switch r.Status {
		case StatusFetched:
			summary.Fetched++
		case StatusAlreadyPresent:
			summary.AlreadyPresent++
		}
	}

	logger.Info().
		Int("fetched", summary.Fetched).
		Int("already_present", summary.AlreadyPresent).
		Int("failed", summary.Failed).
		Msg("Cache sync complete")

	return summary
}
