package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
)

// gatedTrackingService blocks selected lookups until their gate is released,
// so tests control response arrival order.
type gatedTrackingService struct {
	gates map[string]chan struct{}
	calls atomic.Int32
}

func newGatedTrackingService() *gatedTrackingService {
	return &gatedTrackingService{gates: make(map[string]chan struct{})}
}

func (s *gatedTrackingService) gate(trackingNumber string) chan struct{} {
	ch := make(chan struct{})
	s.gates[trackingNumber] = ch
	return ch
}

func (s *gatedTrackingService) Track(_ context.Context, trackingNumber string) (*ports.TrackingReport, error) {
	s.calls.Add(1)
	if gate, ok := s.gates[trackingNumber]; ok {
		<-gate
	}
	return &ports.TrackingReport{
		Shipment: &domain.Shipment{TrackingNumber: trackingNumber},
	}, nil
}

func waitForUpdate(t *testing.T, session *LookupSession) {
	t.Helper()
	select {
	case <-session.Updates():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for lookup to settle")
	}
}

func TestLookupSession_EmptyInputIsNoOp(t *testing.T) {
	svc := newGatedTrackingService()
	session := NewLookupSession(svc, discardLogger)

	session.Lookup(context.Background(), "   ")

	snap := session.Snapshot()
	if snap.Input != "" || snap.Loading || snap.Report != nil || snap.Err != nil {
		t.Errorf("expected untouched state, got %+v", snap)
	}
	if svc.calls.Load() != 0 {
		t.Errorf("expected no service calls, got %d", svc.calls.Load())
	}
}

func TestLookupSession_SettlesWithReport(t *testing.T) {
	svc := newGatedTrackingService()
	session := NewLookupSession(svc, discardLogger)

	session.Lookup(context.Background(), "CC-10-751490")
	waitForUpdate(t, session)

	snap := session.Snapshot()
	if snap.Loading {
		t.Error("expected loading=false after settle")
	}
	if snap.Report == nil || snap.Report.Shipment.TrackingNumber != "CC-10-751490" {
		t.Errorf("unexpected report: %+v", snap.Report)
	}
}

func TestLookupSession_LoadingWhileInFlight(t *testing.T) {
	svc := newGatedTrackingService()
	gate := svc.gate("CC-10-751490")
	session := NewLookupSession(svc, discardLogger)

	session.Lookup(context.Background(), "CC-10-751490")

	snap := session.Snapshot()
	if !snap.Loading {
		t.Error("expected loading=true while the lookup is pending")
	}
	if snap.Report != nil {
		t.Error("expected no report yet")
	}

	close(gate)
	waitForUpdate(t, session)
}

// A newer lookup supersedes a pending one: the displayed record is always the
// latest request's result, regardless of response arrival order.
func TestLookupSession_StaleResponseDiscarded(t *testing.T) {
	svc := newGatedTrackingService()
	gateA := svc.gate("AAA-1")
	session := NewLookupSession(svc, discardLogger)

	session.Lookup(context.Background(), "AAA-1") // stays in flight
	session.Lookup(context.Background(), "BBB-2") // settles immediately
	waitForUpdate(t, session)

	snap := session.Snapshot()
	if snap.Report == nil || snap.Report.Shipment.TrackingNumber != "BBB-2" {
		t.Fatalf("expected BBB-2's report, got %+v", snap.Report)
	}

	// A's response arrives late; it must be discarded.
	close(gateA)
	time.Sleep(100 * time.Millisecond)

	snap = session.Snapshot()
	if snap.Report.Shipment.TrackingNumber != "BBB-2" {
		t.Errorf("stale response overwrote fresher data: %s", snap.Report.Shipment.TrackingNumber)
	}
	if snap.Loading {
		t.Error("session must not flip back to loading")
	}
}

func TestLookupSession_NewLookupResetsErrorAndReport(t *testing.T) {
	svc := newGatedTrackingService()
	gate := svc.gate("SECOND")
	session := NewLookupSession(svc, discardLogger)

	session.Lookup(context.Background(), "FIRST")
	waitForUpdate(t, session)

	session.Lookup(context.Background(), "SECOND")
	snap := session.Snapshot()
	if snap.Report != nil || snap.Err != nil {
		t.Errorf("expected cleared state at lookup start, got %+v", snap)
	}
	if snap.Input != "SECOND" {
		t.Errorf("expected input SECOND, got %q", snap.Input)
	}

	close(gate)
	waitForUpdate(t, session)
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.ErrEmptyTracking, ""},
		{domain.ErrShipmentNotFound, "Tracking number not found. Please check and try again."},
		{domain.ErrDuplicateTracking, "An error occurred while tracking your shipment. Please try again."},
		{context.DeadlineExceeded, "An error occurred while tracking your shipment. Please try again."},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
