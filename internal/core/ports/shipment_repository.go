package ports

import (
	"context"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
)

// ShipmentRepository defines the read-only view this service has of the
// externally owned shipment store.
type ShipmentRepository interface {
	// FindByTrackingNumber retrieves the shipment whose tracking number is an
	// exact, case-sensitive match. The lookup is defined as at-most-one:
	// implementations return domain.ErrShipmentNotFound on zero matches and
	// domain.ErrDuplicateTracking when the store unexpectedly holds more than
	// one record for the key, never a silently chosen row.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
}

// SiteSettingsRepository loads the site identity overrides maintained by the
// back office. A missing document is not an error; callers fall back to
// domain.DefaultSiteSettings.
type SiteSettingsRepository interface {
	Load(ctx context.Context) (domain.SiteSettings, error)
}
