package collector

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lol-predictor/internal/riot"
	"lol-predictor/internal/storage"
	"lol-predictor/internal/timeline"
)

const (
	DefaultWorkerCount = 4
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 5 * time.Second
)

// TimelineFetcher is the slice of the Riot API the extractor needs.
type TimelineFetcher interface {
	GetTimeline(ctx context.Context, matchID string) (*riot.TimelineResponse, error)
}

// ExtractorConfig holds tuning knobs for a corpus extraction run.
type ExtractorConfig struct {
	WorkerCount int
	MaxAttempts int
	RetryDelay  time.Duration
}

// Extractor turns a list of match ids into corpus rows. Fetching is fanned
// out over a worker pool; the shared rate limiter in the client keeps the
// API budget honest regardless of worker count.
type Extractor struct {
	fetcher    TimelineFetcher
	corpus     *storage.CorpusWriter
	progress   *storage.ProgressLog
	deadLetter *storage.DeadLetterWriter
	log        *zap.SugaredLogger

	workerCount int
	maxAttempts int
	retryDelay  time.Duration

	// Cheap within-run dedup in front of the persistent progress log.
	seen   *bloom.BloomFilter
	seenMu sync.Mutex

	processed   int64
	deadLetters int64
}

// NewExtractor creates an extractor writing to the given corpus, progress
// log and dead-letter log.
func NewExtractor(fetcher TimelineFetcher, corpus *storage.CorpusWriter,
	progress *storage.ProgressLog, deadLetter *storage.DeadLetterWriter,
	log *zap.SugaredLogger, cfg ExtractorConfig) *Extractor {

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	return &Extractor{
		fetcher:     fetcher,
		corpus:      corpus,
		progress:    progress,
		deadLetter:  deadLetter,
		log:         log,
		workerCount: cfg.WorkerCount,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		seen:        bloom.NewWithEstimates(500000, 0.001),
	}
}

// Run processes every match id, skipping ones already in the progress log.
// It returns once all ids are handled or the context is cancelled.
func (e *Extractor) Run(ctx context.Context, matchIDs []string) error {
	start := time.Now()
	jobs := make(chan string)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for _, id := range matchIDs {
			select {
			case jobs <- id:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < e.workerCount; i++ {
		g.Go(func() error {
			for id := range jobs {
				if err := e.processMatch(ctx, id); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	e.log.Infow("Extraction finished",
		"processed", atomic.LoadInt64(&e.processed),
		"dead_letters", atomic.LoadInt64(&e.deadLetters),
		"elapsed", time.Since(start).Round(time.Second))
	return err
}

func (e *Extractor) alreadySeen(id string) bool {
	e.seenMu.Lock()
	maybe := e.seen.TestString(id)
	e.seen.AddString(id)
	e.seenMu.Unlock()
	if maybe {
		// Duplicate within this run, or a bloom false positive. The 0.1%
		// false-positive rate costs a handful of skipped matches per run.
		return true
	}
	return e.progress.Seen(id)
}

// processMatch fetches and reduces one match with bounded retries. The API
// sometimes returns truncated or failing responses that succeed on a
// refetch, so both fetch errors and malformed timelines get a cooldown and
// another attempt before the match is dead-lettered.
func (e *Extractor) processMatch(ctx context.Context, matchID string) error {
	if e.alreadySeen(matchID) {
		return nil
	}

	cooldown := func() error {
		select {
		case <-time.After(e.retryDelay):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		tl, err := e.fetcher.GetTimeline(ctx, matchID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			e.log.Warnw("Timeline fetch failed",
				"match_id", matchID, "attempt", attempt, "error", err)
			if attempt < e.maxAttempts {
				if err := cooldown(); err != nil {
					return err
				}
			}
			continue
		}

		row, err := timeline.Reduce(tl)
		if err != nil {
			var malformed *timeline.ErrMalformed
			if !errors.As(err, &malformed) {
				return err
			}
			lastErr = err
			e.log.Warnw("Malformed timeline",
				"match_id", matchID, "attempt", attempt, "error", err)
			if attempt < e.maxAttempts {
				if err := cooldown(); err != nil {
					return err
				}
			}
			continue
		}

		if err := e.corpus.Append(row); err != nil {
			return err
		}
		if err := e.progress.Mark(matchID); err != nil {
			return err
		}
		atomic.AddInt64(&e.processed, 1)
		return nil
	}

	return e.giveUp(matchID, lastErr, e.maxAttempts)
}

func (e *Extractor) giveUp(matchID string, cause error, attempts int) error {
	atomic.AddInt64(&e.deadLetters, 1)
	e.log.Warnw("Giving up on match", "match_id", matchID, "attempts", attempts, "error", cause)
	if err := e.deadLetter.Record(matchID, cause.Error(), attempts); err != nil {
		return err
	}
	// Marking a dead-lettered match keeps reruns from hammering it again.
	return e.progress.Mark(matchID)
}

// Processed returns the number of rows appended during the run.
func (e *Extractor) Processed() int64 {
	return atomic.LoadInt64(&e.processed)
}

// DeadLetters returns the number of matches given up on during the run.
func (e *Extractor) DeadLetters() int64 {
	return atomic.LoadInt64(&e.deadLetters)
}
