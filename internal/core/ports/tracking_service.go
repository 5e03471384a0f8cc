package ports

import (
	"context"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
)

// TrackingReport is the result of a successful lookup: the fetched record plus
// everything derived from it for display.
type TrackingReport struct {
	Shipment *domain.Shipment

	// StageIndex is the position of the stored tracking stage in the pipeline
	// vocabulary, or -1 when the stored value is unrecognised.
	StageIndex int
	// KnownStage reports whether StageIndex is valid.
	KnownStage bool
	// Progress is the stored percentage clamped to [0,100]. Stage and
	// progress are rendered independently; the upstream system is allowed to
	// store values that disagree.
	Progress int

	// TrackingURL is the absolute URL the scannable code encodes.
	TrackingURL string
	// QRCodeDataURL is a data:image/png;base64 URL for inline display, or
	// empty when generation failed (the report still renders).
	QRCodeDataURL string
}

// TrackingService defines the lookup use case.
type TrackingService interface {
	// Track trims the tracking number and returns the assembled report.
	// Errors: domain.ErrEmptyTracking (no request was issued),
	// domain.ErrShipmentNotFound, domain.ErrDuplicateTracking, or a wrapped
	// transport error.
	Track(ctx context.Context, trackingNumber string) (*TrackingReport, error)
}
