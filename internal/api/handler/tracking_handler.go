package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jongleur-maersk/tracking-portal/internal/api/metrics"
	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
	"github.com/jongleur-maersk/tracking-portal/internal/core/service"
)

// TrackingHandler serves the tracking page and the JSON lookup endpoint.
type TrackingHandler struct {
	service  ports.TrackingService
	settings domain.SiteSettings
}

func NewTrackingHandler(svc ports.TrackingService, settings domain.SiteSettings) *TrackingHandler {
	return &TrackingHandler{service: svc, settings: settings}
}

type trackFormRequest struct {
	Tracking string `form:"tracking" query:"tracking" validate:"omitempty,max=64"`
}

// TrackPage handles GET /track and POST /track.
//
// A tracking value may arrive as a URL query parameter (shared links, QR
// scans) or as the submitted form field; both trigger the same lookup. With
// no value the page renders its empty-state prompt.
func (h *TrackingHandler) TrackPage(c echo.Context) error {
	var req trackFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view := trackPageView{
		Site:        newSiteView(h.settings),
		Title:       "Track & Trace - " + h.settings.CompanyName + " | Real-time Tracking",
		Description: "Enter your tracking number to see the status and location of your package.",
		Input:       strings.TrimSpace(req.Tracking),
	}
	if view.Input == "" {
		// Trimmed-empty input is a no-op: no lookup is issued.
		return c.Render(http.StatusOK, "track.html", view)
	}

	start := time.Now()
	report, err := h.service.Track(c.Request().Context(), view.Input)
	result := lookupResult(err)
	metrics.LookupsTotal.WithLabelValues(result).Inc()
	metrics.LookupDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		view.Error = service.UserMessage(err)
		return c.Render(http.StatusOK, "track.html", view)
	}

	if report.QRCodeDataURL != "" {
		metrics.QRGeneratedTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.QRGeneratedTotal.WithLabelValues("error").Inc()
	}

	view.Report = assembleReport(report)
	return c.Render(http.StatusOK, "track.html", view)
}

// GetShipment handles GET /api/v1/shipments/:tracking_number.
//
// @Summary      Look up a shipment by tracking number
// @Description  Returns the shipment record plus the derived display state (stage index, clamped progress, scannable-code image).
// @Tags         shipments
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. CC-10-751490)"
// @Success      200              {object}  trackingReportResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      429              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /api/v1/shipments/{tracking_number} [get]
func (h *TrackingHandler) GetShipment(c echo.Context) error {
	tracking := c.Param("tracking_number")

	start := time.Now()
	report, err := h.service.Track(c.Request().Context(), tracking)
	result := lookupResult(err)
	metrics.LookupsTotal.WithLabelValues(result).Inc()
	metrics.LookupDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		// The central error handler maps sentinels to status codes.
		return err
	}

	return c.JSON(http.StatusOK, toTrackingReportResponse(report))
}

func lookupResult(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, domain.ErrEmptyTracking):
		return "empty"
	case errors.Is(err, domain.ErrShipmentNotFound):
		return "not_found"
	default:
		return "error"
	}
}
