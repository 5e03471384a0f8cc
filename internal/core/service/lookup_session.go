package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
)

// LookupSnapshot is a point-in-time copy of a session's state, safe to read
// without holding the session lock.
type LookupSnapshot struct {
	Input   string
	Loading bool
	Report  *ports.TrackingReport
	Err     error
}

// LookupSession holds the transient state of one interactive lookup session:
// the current input, the last fetched report (or absence), an error (or
// absence), and a loading flag. One lookup is in flight at a time; starting a
// new one supersedes the previous: if the older response arrives after a
// newer lookup began, it is discarded rather than overwriting fresher data.
//
// Superseding is implemented with a monotonically increasing request token
// captured at submission and compared at resolution, never by letting two
// goroutines race on the state.
type LookupSession struct {
	service ports.TrackingService
	logger  zerolog.Logger

	mu      sync.Mutex
	token   uint64
	input   string
	loading bool
	report  *ports.TrackingReport
	err     error

	updates chan struct{}
}

func NewLookupSession(service ports.TrackingService, logger zerolog.Logger) *LookupSession {
	return &LookupSession{
		service: service,
		logger:  logger,
		updates: make(chan struct{}, 1),
	}
}

// Lookup submits a tracking number. A trimmed-empty input is a silent no-op:
// no request is issued and the state is left unchanged. Otherwise the state
// resets to loading and the fetch runs asynchronously.
func (s *LookupSession) Lookup(ctx context.Context, raw string) {
	tracking := strings.TrimSpace(raw)
	if tracking == "" {
		return
	}

	s.mu.Lock()
	s.token++
	token := s.token
	s.input = tracking
	s.loading = true
	s.report = nil
	s.err = nil
	s.mu.Unlock()

	go func() {
		report, err := s.service.Track(ctx, tracking)

		s.mu.Lock()
		defer s.mu.Unlock()
		if token != s.token {
			s.logger.Debug().Str("tracking_number", tracking).Msg("stale lookup result discarded")
			return
		}
		s.loading = false
		s.report = report
		s.err = err
		s.notify()
	}()
}

// Snapshot returns a copy of the current session state.
func (s *LookupSession) Snapshot() LookupSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LookupSnapshot{
		Input:   s.input,
		Loading: s.loading,
		Report:  s.report,
		Err:     s.err,
	}
}

// Updates signals whenever a lookup settles. The channel is buffered and
// coalescing; receivers should re-read Snapshot after each signal.
func (s *LookupSession) Updates() <-chan struct{} {
	return s.updates
}

func (s *LookupSession) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// UserMessage translates a settled lookup error into the copy shown to the
// user. Raw backend detail never reaches this surface.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyTracking):
		return ""
	case errors.Is(err, domain.ErrShipmentNotFound):
		return "Tracking number not found. Please check and try again."
	default:
		return "An error occurred while tracking your shipment. Please try again."
	}
}
