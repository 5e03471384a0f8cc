package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
)

// CodeGenerator abstracts the scannable-code renderer (QR).
type CodeGenerator interface {
	TrackingURL(trackingNumber string) string
	DataURL(trackingNumber string) (string, error)
}

// TrackingService performs the lookup use case: fetch the record, derive the
// display state, attach the scannable code.
type TrackingService struct {
	repo   ports.ShipmentRepository
	codes  CodeGenerator
	logger zerolog.Logger
}

func NewTrackingService(repo ports.ShipmentRepository, codes CodeGenerator, logger zerolog.Logger) *TrackingService {
	return &TrackingService{repo: repo, codes: codes, logger: logger}
}

// Track looks up a shipment by tracking number and assembles its report.
//
// The input is trimmed first; an empty result short-circuits with
// domain.ErrEmptyTracking before any store access. Not-found and duplicate
// conditions pass through as their sentinel errors; anything else is a
// transport failure, logged with detail and wrapped.
func (s *TrackingService) Track(ctx context.Context, trackingNumber string) (*ports.TrackingReport, error) {
	tracking := strings.TrimSpace(trackingNumber)
	if tracking == "" {
		return nil, domain.ErrEmptyTracking
	}

	shipment, err := s.repo.FindByTrackingNumber(ctx, tracking)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			s.logger.Debug().Str("tracking_number", tracking).Msg("tracking number not found")
			return nil, err
		}
		if errors.Is(err, domain.ErrDuplicateTracking) {
			// The store contract is at-most-one; more than one match is a data
			// integrity problem upstream, not something to pick from.
			s.logger.Error().Str("tracking_number", tracking).Msg("duplicate tracking number in store")
			return nil, err
		}
		s.logger.Error().Err(err).Str("tracking_number", tracking).Msg("shipment lookup failed")
		return nil, fmt.Errorf("track %s: %w", tracking, err)
	}

	stageIndex, known := domain.StageIndex(shipment.TrackingStage)
	report := &ports.TrackingReport{
		Shipment:    shipment,
		StageIndex:  stageIndex,
		KnownStage:  known,
		Progress:    domain.ClampProgress(shipment.TrackingProgress),
		TrackingURL: s.codes.TrackingURL(shipment.TrackingNumber),
	}

	// Scannable-code failure degrades to an empty image slot; the report
	// itself always renders.
	dataURL, err := s.codes.DataURL(shipment.TrackingNumber)
	if err != nil {
		s.logger.Error().Err(err).Str("tracking_number", shipment.TrackingNumber).Msg("qr generation failed")
	} else {
		report.QRCodeDataURL = dataURL
	}

	return report, nil
}
