package handler

import (
	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type insuranceResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Paid   bool   `json:"paid"`
}

type partyResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type shipmentResponse struct {
	TrackingNumber string `json:"tracking_number"`

	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Carrier          string `json:"carrier"`
	CarrierReference string `json:"carrier_reference"`

	Product            string `json:"product"`
	TypeOfShipment     string `json:"type_of_shipment"`
	ShipmentMode       string `json:"shipment_mode"`
	Quantity           int    `json:"quantity"`
	Weight             string `json:"weight"`
	PackageDescription string `json:"package_description"`
	ImageURL           string `json:"image_url,omitempty"`

	PaymentMode   string `json:"payment_mode"`
	TotalFreight  string `json:"total_freight"`
	ImportTax     string `json:"import_tax,omitempty"`
	ImportTaxPaid bool   `json:"import_tax_paid"`

	ExpectedDeliveryDate string `json:"expected_delivery_date"`
	DepartureDate        string `json:"departure_date"`
	DepartureTime        string `json:"departure_time"`
	DeliveryTime         string `json:"delivery_time"`

	Status           string `json:"status"`
	StatusDate       string `json:"status_date,omitempty"`
	StatusTime       string `json:"status_time,omitempty"`
	TrackingStage    string `json:"tracking_stage,omitempty"`
	TrackingProgress int    `json:"tracking_progress"`

	Shipper  partyResponse `json:"shipper"`
	Receiver partyResponse `json:"receiver"`

	Comment    string              `json:"comment,omitempty"`
	Insurances []insuranceResponse `json:"insurances,omitempty"`
}

// trackingReportResponse carries the raw record plus the derived display
// state, so API consumers render exactly what the web page renders.
type trackingReportResponse struct {
	Shipment      shipmentResponse `json:"shipment"`
	StageIndex    int              `json:"stage_index"`
	KnownStage    bool             `json:"known_stage"`
	Progress      int              `json:"progress"`
	TrackingURL   string           `json:"tracking_url"`
	QRCodeDataURL string           `json:"qr_code_data_url,omitempty"`
}

func toPartyResponse(p domain.Party) partyResponse {
	return partyResponse{Name: p.Name, Phone: p.Phone, Email: p.Email, Address: p.Address}
}

func toTrackingReportResponse(r *ports.TrackingReport) trackingReportResponse {
	s := r.Shipment

	insurances := make([]insuranceResponse, 0, len(s.Insurances))
	for _, ins := range s.Insurances {
		insurances = append(insurances, insuranceResponse{Name: ins.Name, Amount: ins.Amount, Paid: ins.Paid})
	}

	return trackingReportResponse{
		Shipment: shipmentResponse{
			TrackingNumber: s.TrackingNumber,

			Origin:           s.Origin,
			Destination:      s.Destination,
			Carrier:          s.Carrier,
			CarrierReference: s.CarrierReference,

			Product:            s.Product,
			TypeOfShipment:     s.TypeOfShipment,
			ShipmentMode:       s.ShipmentMode,
			Quantity:           s.Quantity,
			Weight:             s.Weight,
			PackageDescription: s.PackageDescription,
			ImageURL:           s.ImageURL,

			PaymentMode:   s.PaymentMode,
			TotalFreight:  s.TotalFreight,
			ImportTax:     s.ImportTax,
			ImportTaxPaid: s.ImportTaxPaid,

			ExpectedDeliveryDate: s.ExpectedDeliveryDate,
			DepartureDate:        s.DepartureDate,
			DepartureTime:        s.DepartureTime,
			DeliveryTime:         s.DeliveryTime,

			Status:           s.Status,
			StatusDate:       s.StatusDate,
			StatusTime:       s.StatusTime,
			TrackingStage:    s.TrackingStage,
			TrackingProgress: s.TrackingProgress,

			Shipper:  toPartyResponse(s.Shipper),
			Receiver: toPartyResponse(s.Receiver),

			Comment:    s.Comment,
			Insurances: insurances,
		},
		StageIndex:    r.StageIndex,
		KnownStage:    r.KnownStage,
		Progress:      r.Progress,
		TrackingURL:   r.TrackingURL,
		QRCodeDataURL: r.QRCodeDataURL,
	}
}
