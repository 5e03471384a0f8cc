package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"echo error passthrough", echo.NewHTTPError(http.StatusTooManyRequests, "Too many lookups. Please wait a moment and try again."),
			http.StatusTooManyRequests, "Too many lookups. Please wait a moment and try again."},
		{"empty tracking", domain.ErrEmptyTracking, http.StatusBadRequest, "tracking number is required"},
		{"not found", domain.ErrShipmentNotFound, http.StatusNotFound, "tracking number not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrShipmentNotFound), http.StatusNotFound, "tracking number not found"},
		{"duplicate is internal", domain.ErrDuplicateTracking, http.StatusInternalServerError, "internal server error"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error, tc.wantMsg)
			}
		})
	}
}

func TestHTTPErrorHandler_NeverLeaksInternalDetail(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(errors.New("dial tcp 10.0.0.5:27017: i/o timeout"), e.NewContext(req, rec))

	if body := rec.Body.String(); body == "" || strings.Contains(body, "27017") {
		t.Errorf("backend detail leaked: %s", body)
	}
}
