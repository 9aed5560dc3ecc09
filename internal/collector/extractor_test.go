package collector

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"lol-predictor/internal/riot"
	"lol-predictor/internal/storage"
)

// fakeFetcher serves canned timelines and records call counts per match.
type fakeFetcher struct {
	mu        sync.Mutex
	timelines map[string]*riot.TimelineResponse
	failures  map[string]int // remaining failures before success
	calls     map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		timelines: make(map[string]*riot.TimelineResponse),
		failures:  make(map[string]int),
		calls:     make(map[string]int),
	}
}

func (f *fakeFetcher) GetTimeline(_ context.Context, matchID string) (*riot.TimelineResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[matchID]++
	if f.failures[matchID] > 0 {
		f.failures[matchID]--
		return nil, fmt.Errorf("API returned status 500")
	}
	tl, ok := f.timelines[matchID]
	if !ok {
		return nil, fmt.Errorf("API returned 404 Not Found - resource may not exist")
	}
	return tl, nil
}

func (f *fakeFetcher) callCount(matchID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[matchID]
}

// goodTimeline builds a complete 30-minute timeline with a blue win.
func goodTimeline() *riot.TimelineResponse {
	frames := make([]riot.TimelineFrame, 31)
	for i := range frames {
		frames[i] = riot.TimelineFrame{
			Timestamp:         int64(i) * 60000,
			ParticipantFrames: map[string]riot.ParticipantFrame{},
		}
	}
	frames[15].Timestamp = 900400
	frames[30].Events = []riot.TimelineEvent{
		{Type: "GAME_END", Timestamp: 1800000, WinningTeam: 100},
	}
	return &riot.TimelineResponse{Info: riot.TimelineInfo{Frames: frames}}
}

type extractorEnv struct {
	extractor  *Extractor
	fetcher    *fakeFetcher
	corpusPath string
	dlPath     string
	progPath   string
}

func newExtractorEnv(t *testing.T, cfg ExtractorConfig) *extractorEnv {
	t.Helper()
	dir := t.TempDir()

	corpusPath := filepath.Join(dir, "match_data.csv")
	corpus, err := storage.OpenCorpus(corpusPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { corpus.Close() })

	progPath := filepath.Join(dir, "processed.txt")
	progress, err := storage.OpenProgressLog(progPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { progress.Close() })

	dlPath := filepath.Join(dir, "dead_letter.jsonl")
	deadLetter, err := storage.OpenDeadLetter(dlPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { deadLetter.Close() })

	fetcher := newFakeFetcher()
	ex := NewExtractor(fetcher, corpus, progress, deadLetter, zap.NewNop().Sugar(), cfg)
	return &extractorEnv{
		extractor:  ex,
		fetcher:    fetcher,
		corpusPath: corpusPath,
		dlPath:     dlPath,
		progPath:   progPath,
	}
}

func TestExtractorProcessesMatches(t *testing.T) {
	env := newExtractorEnv(t, ExtractorConfig{WorkerCount: 2, RetryDelay: time.Millisecond})
	env.fetcher.timelines["EUW1_1"] = goodTimeline()
	env.fetcher.timelines["EUW1_2"] = goodTimeline()

	if err := env.extractor.Run(context.Background(), []string{"EUW1_1", "EUW1_2"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if env.extractor.Processed() != 2 {
		t.Errorf("Processed() = %d, want 2", env.extractor.Processed())
	}

	rows, err := storage.ReadCorpus(env.corpusPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("corpus has %d rows, want 2", len(rows))
	}
	if rows[0].Blue.Win != 1 || rows[0].Red.Win != 0 {
		t.Errorf("unexpected win flags: %d/%d", rows[0].Blue.Win, rows[0].Red.Win)
	}
}

func TestExtractorRetriesThenSucceeds(t *testing.T) {
	env := newExtractorEnv(t, ExtractorConfig{WorkerCount: 1, MaxAttempts: 3, RetryDelay: time.Millisecond})
	env.fetcher.timelines["EUW1_1"] = goodTimeline()
	env.fetcher.failures["EUW1_1"] = 2

	if err := env.extractor.Run(context.Background(), []string{"EUW1_1"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := env.fetcher.callCount("EUW1_1"); got != 3 {
		t.Errorf("fetch attempts = %d, want 3", got)
	}
	if env.extractor.Processed() != 1 || env.extractor.DeadLetters() != 0 {
		t.Errorf("processed=%d deadLetters=%d, want 1/0",
			env.extractor.Processed(), env.extractor.DeadLetters())
	}
}

func TestExtractorDeadLettersAfterExhaustedRetries(t *testing.T) {
	env := newExtractorEnv(t, ExtractorConfig{WorkerCount: 1, MaxAttempts: 2, RetryDelay: time.Millisecond})
	env.fetcher.failures["EUW1_1"] = 10

	if err := env.extractor.Run(context.Background(), []string{"EUW1_1"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if env.extractor.DeadLetters() != 1 {
		t.Fatalf("DeadLetters() = %d, want 1", env.extractor.DeadLetters())
	}

	letters, err := storage.ReadDeadLetters(env.dlPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(letters) != 1 || letters[0].MatchID != "EUW1_1" || letters[0].Attempts != 2 {
		t.Errorf("unexpected dead letters: %+v", letters)
	}
}

func TestExtractorRetriesMalformedThenDeadLetters(t *testing.T) {
	env := newExtractorEnv(t, ExtractorConfig{WorkerCount: 1, MaxAttempts: 3, RetryDelay: time.Millisecond})
	env.fetcher.timelines["EUW1_1"] = &riot.TimelineResponse{} // no frames

	if err := env.extractor.Run(context.Background(), []string{"EUW1_1"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := env.fetcher.callCount("EUW1_1"); got != 3 {
		t.Errorf("fetch attempts = %d, want 3 (malformed responses are refetched)", got)
	}
	if env.extractor.DeadLetters() != 1 {
		t.Errorf("DeadLetters() = %d, want 1", env.extractor.DeadLetters())
	}

	letters, err := storage.ReadDeadLetters(env.dlPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(letters) != 1 || letters[0].Reason != "malformed timeline: timeline has no frames" {
		t.Errorf("unexpected dead letters: %+v", letters)
	}
}

func TestExtractorSkipsProcessedMatches(t *testing.T) {
	env := newExtractorEnv(t, ExtractorConfig{WorkerCount: 1, RetryDelay: time.Millisecond})
	env.fetcher.timelines["EUW1_1"] = goodTimeline()
	env.fetcher.timelines["EUW1_2"] = goodTimeline()

	if err := env.extractor.Run(context.Background(), []string{"EUW1_1"}); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	// Second run over both ids must only fetch the new one. Duplicates within
	// the id list are skipped too.
	if err := env.extractor.Run(context.Background(), []string{"EUW1_1", "EUW1_2", "EUW1_2"}); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if got := env.fetcher.callCount("EUW1_1"); got != 1 {
		t.Errorf("EUW1_1 fetched %d times, want 1", got)
	}
	if got := env.fetcher.callCount("EUW1_2"); got != 1 {
		t.Errorf("EUW1_2 fetched %d times, want 1", got)
	}
}

func TestExtractorStopsOnCancel(t *testing.T) {
	env := newExtractorEnv(t, ExtractorConfig{WorkerCount: 1, MaxAttempts: 3, RetryDelay: time.Minute})
	env.fetcher.failures["EUW1_1"] = 10

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- env.extractor.Run(ctx, []string{"EUW1_1", "EUW1_2"})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Run() = nil error after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
