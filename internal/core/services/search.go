package services

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driven"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// Ensure SearchService implements the interfaces.
var (
	_ driving.IncrementalSearch = (*SearchService)(nil)
	_ driving.OneShotSearch     = (*SearchService)(nil)
)

// SearchService owns one search session: it builds the tool invocation,
// spawns and supervises the external process, decodes its output stream
// incrementally, and publishes the growing candidate list to the UI sink at
// a bounded rate. At most one run is in flight; starting a new run cancels
// the previous process and generation-stamps every publication so late
// output from a cancelled run is discarded silently.
type SearchService struct {
	runner  driven.ProcessRunner
	history driven.HistoryStore

	mu         sync.Mutex
	sink       driving.UpdateSink
	settings   domain.Settings
	generation uint64
	cancel     context.CancelFunc
	state      domain.RunState
}

// NewSearchService creates a search session over the given process runner.
func NewSearchService(runner driven.ProcessRunner, settings domain.Settings) *SearchService {
	return &SearchService{
		runner:   runner,
		settings: settings,
		state:    domain.RunIdle,
	}
}

// SetUpdateSink sets the publication sink for live candidate updates.
func (s *SearchService) SetUpdateSink(sink driving.UpdateSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// SetHistoryStore sets the optional store that records finished runs.
func (s *SearchService) SetHistoryStore(store driven.HistoryStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = store
}

// ApplySettings replaces the settings used by subsequent runs. The run in
// flight, if any, keeps the settings it started with.
func (s *SearchService) ApplySettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// State returns the lifecycle state of the current run.
func (s *SearchService) State() domain.RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins a run for query, cancelling any run still in flight. Queries
// below the minimum length publish a placeholder prompt without spawning a
// process. The only synchronous failure is tool resolution; every later
// outcome arrives through the update sink.
func (s *SearchService) Start(ctx context.Context, query string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	settings := s.settings
	sink := s.sink

	if utf8.RuneCountInString(query) < settings.MinQueryLength {
		s.state = domain.RunIdle
		s.mu.Unlock()
		if sink != nil {
			sink(driving.SearchUpdate{
				Generation: gen,
				Query:      query,
				Candidates: []domain.Candidate{domain.NoticeCandidate(needMoreInput(settings.MinQueryLength))},
				State:      domain.RunIdle,
				Final:      true,
			})
		}
		return nil
	}

	cmd := domain.BuildFindCommand(query, settings)
	runCtx, cancel := context.WithCancel(ctx)
	events, err := s.runner.Start(runCtx, cmd)
	if err != nil {
		s.state = domain.RunIdle
		s.mu.Unlock()
		cancel()
		return fmt.Errorf("starting search run: %w", err)
	}
	s.cancel = cancel
	s.state = domain.RunRunning
	s.mu.Unlock()

	logger.Debug("run %d: %s", gen, cmd)
	go s.consume(ctx, gen, query, settings, events)
	return nil
}

// Stop cancels the active run and invalidates its generation, so output
// that straggles in after the unwind is dropped.
func (s *SearchService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = domain.RunIdle
}

// Find runs a query to completion and returns its final candidate list.
// Used by the non-interactive CLI; it shares the session's runner but not
// its generation, so it must not run concurrently with Start.
func (s *SearchService) Find(ctx context.Context, query string) ([]domain.Candidate, error) {
	s.mu.Lock()
	settings := s.settings
	s.mu.Unlock()

	if utf8.RuneCountInString(query) < settings.MinQueryLength {
		return nil, domain.ErrQueryTooShort
	}

	cmd := domain.BuildFindCommand(query, settings)
	events, err := s.runner.Start(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("starting search run: %w", err)
	}
	logger.Debug("one-shot run: %s", cmd)

	parser := domain.NewStreamParser(settings.Fields)
	var candidates []domain.Candidate
	for ev := range events {
		if ev.Exited {
			candidates = appendRecords(candidates, parser.Next())
			final, state := finalCandidates(candidates, ev, settings)
			s.recordHistory(ctx, query, len(final), state == domain.RunFinished)
			return final, nil
		}
		parser.Write(ev.Chunk)
		candidates = appendRecords(candidates, parser.Next())
	}
	return candidates, nil
}

// consume drains the run's ordered event channel: chunks grow the stream
// buffer and yield newly complete records; the exit event finalises the
// list. Intermediate publishes are limited to one per throttle interval;
// the final publish is never throttled and happens exactly once.
func (s *SearchService) consume(
	ctx context.Context,
	gen uint64,
	query string,
	settings domain.Settings,
	events <-chan driven.ProcessEvent,
) {
	parser := domain.NewStreamParser(settings.Fields)
	limiter := rate.NewLimiter(rate.Every(settings.ThrottleInterval), 1)
	var candidates []domain.Candidate

	for ev := range events {
		if ev.Exited {
			candidates = appendRecords(candidates, parser.Next())
			final, state := finalCandidates(candidates, ev, settings)
			hits := len(final)
			if state == domain.RunFailed {
				hits = 0
			}
			published := s.publish(driving.SearchUpdate{
				Generation: gen,
				Query:      query,
				Candidates: snapshot(final),
				Count:      hits,
				State:      state,
				Final:      true,
			})
			if published && state == domain.RunFinished {
				s.recordHistory(ctx, query, hits, true)
			}
			return
		}

		parser.Write(ev.Chunk)
		recs := parser.Next()
		if len(recs) == 0 {
			continue
		}
		candidates = appendRecords(candidates, recs)
		if limiter.Allow() {
			s.publish(driving.SearchUpdate{
				Generation: gen,
				Query:      query,
				Candidates: snapshot(candidates),
				Count:      len(candidates),
				State:      domain.RunRunning,
			})
		}
	}
}

// publish delivers an update to the sink unless the update's generation has
// been superseded. It reports whether the update was delivered.
func (s *SearchService) publish(u driving.SearchUpdate) bool {
	s.mu.Lock()
	if u.Generation != s.generation {
		s.mu.Unlock()
		logger.Debug("run %d: dropping stale publication", u.Generation)
		return false
	}
	if u.Final {
		s.state = u.State
		s.cancel = nil
	}
	sink := s.sink
	s.mu.Unlock()

	if sink != nil {
		sink(u)
	}
	return true
}

// recordHistory stores a finished run, best-effort.
func (s *SearchService) recordHistory(ctx context.Context, query string, hits int, ok bool) {
	s.mu.Lock()
	store := s.history
	s.mu.Unlock()
	if store == nil || !ok {
		return
	}
	entry := domain.HistoryEntry{
		ID:         uuid.NewString(),
		Query:      query,
		Hits:       hits,
		SearchedAt: time.Now(),
	}
	if err := store.Add(ctx, entry); err != nil {
		logger.Warn("recording history: %v", err)
	}
}

// finalCandidates materialises the run's final list: a clean exit keeps the
// decoded records; a non-zero exit replaces any partial results with a
// single notice from the exit-code table.
func finalCandidates(
	candidates []domain.Candidate,
	ev driven.ProcessEvent,
	settings domain.Settings,
) ([]domain.Candidate, domain.RunState) {
	if ev.ExitCode != 0 {
		msg := settings.ExitCodes.Message(ev.ExitCode)
		logger.Warn("search tool failed: %s", msg)
		return []domain.Candidate{domain.NoticeCandidate(msg)}, domain.RunFailed
	}
	if ev.Err != nil {
		logger.Warn("search stream error: %v", ev.Err)
		return []domain.Candidate{domain.NoticeCandidate(ev.Err.Error())}, domain.RunFailed
	}
	return candidates, domain.RunFinished
}

func appendRecords(candidates []domain.Candidate, recs []domain.Record) []domain.Candidate {
	for _, r := range recs {
		candidates = append(candidates, domain.RecordCandidate(r))
	}
	return candidates
}

func snapshot(candidates []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, len(candidates))
	copy(out, candidates)
	return out
}

func needMoreInput(minLen int) string {
	return fmt.Sprintf("Type at least %d characters to search", minLen)
}
