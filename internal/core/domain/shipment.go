package domain

import "errors"

// TrackingStage is the discrete step of the delivery pipeline shown on the
// progress tracker. It is stored on the record by the upstream back office and
// is independent of the free-text Status label.
type TrackingStage string

const (
	StagePickedUp       TrackingStage = "picked_up"
	StageInTransit      TrackingStage = "in_transit"
	StageCustoms        TrackingStage = "customs"
	StageOutForDelivery TrackingStage = "out_for_delivery"
	StageDelivered      TrackingStage = "delivered"
)

// stageOrder fixes the pipeline ordering used for display.
var stageOrder = []TrackingStage{
	StagePickedUp,
	StageInTransit,
	StageCustoms,
	StageOutForDelivery,
	StageDelivered,
}

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrDuplicateTracking = errors.New("more than one shipment matches tracking number")
var ErrEmptyTracking = errors.New("empty tracking number")

// Stages returns the ordered pipeline vocabulary.
func Stages() []TrackingStage {
	out := make([]TrackingStage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// StageIndex maps a stored stage value to its position in the pipeline.
// Unknown values return (-1, false): no stage is highlighted, nothing throws.
func StageIndex(raw string) (int, bool) {
	for i, s := range stageOrder {
		if string(s) == raw {
			return i, true
		}
	}
	return -1, false
}

// ClampProgress bounds a stored progress percentage to [0,100] so the bar
// never overflows visually, whatever the upstream system wrote.
func ClampProgress(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// Insurance is a single financial line item attached to a shipment.
// Amount is an opaque display string; no currency parsing happens here.
type Insurance struct {
	Name   string `json:"name" bson:"name"`
	Amount string `json:"amount" bson:"amount"`
	Paid   bool   `json:"paid" bson:"paid"`
}

// Party holds the contact details of a shipper or receiver.
type Party struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

// Shipment is the record read from the external store. This service never
// mutates it; the upstream back office owns every field. Dates are stored as
// strings and may be empty or unparseable; formatting happens at render time
// and falls back to an explicit placeholder.
type Shipment struct {
	ID             string `json:"-" bson:"_id,omitempty"`
	TrackingNumber string `json:"tracking_number" bson:"tracking_number"`

	// Route
	Origin           string `json:"origin" bson:"origin"`
	Destination      string `json:"destination" bson:"destination"`
	Carrier          string `json:"carrier" bson:"carrier"`
	CarrierReference string `json:"carrier_reference" bson:"carrier_reference"`

	// Cargo
	Product            string `json:"product" bson:"product"`
	TypeOfShipment     string `json:"type_of_shipment" bson:"type_of_shipment"`
	ShipmentMode       string `json:"shipment_mode" bson:"shipment_mode"`
	Quantity           int    `json:"quantity" bson:"quantity"`
	Weight             string `json:"weight" bson:"weight"`
	PackageDescription string `json:"package_description" bson:"package_description"`
	ImageURL           string `json:"image_url,omitempty" bson:"image_url,omitempty"`

	// Commercial, all opaque display strings
	PaymentMode   string `json:"payment_mode" bson:"payment_mode"`
	TotalFreight  string `json:"total_freight" bson:"total_freight"`
	ImportTax     string `json:"import_tax,omitempty" bson:"import_tax,omitempty"`
	ImportTaxPaid bool   `json:"import_tax_paid" bson:"import_tax_paid"`

	// Schedule
	ExpectedDeliveryDate string `json:"expected_delivery_date" bson:"expected_delivery_date"`
	DepartureDate        string `json:"departure_date" bson:"departure_date"`
	DepartureTime        string `json:"departure_time" bson:"departure_time"`
	DeliveryTime         string `json:"delivery_time" bson:"delivery_time"`

	// Status
	Status           string `json:"status" bson:"status"`
	StatusDate       string `json:"status_date,omitempty" bson:"status_date,omitempty"`
	StatusTime       string `json:"status_time,omitempty" bson:"status_time,omitempty"`
	TrackingStage    string `json:"tracking_stage,omitempty" bson:"tracking_stage,omitempty"`
	TrackingProgress int    `json:"tracking_progress" bson:"tracking_progress"`

	// Parties
	Shipper  Party `json:"shipper" bson:"shipper"`
	Receiver Party `json:"receiver" bson:"receiver"`

	// Annotations
	Comment    string      `json:"comment,omitempty" bson:"comment,omitempty"`
	Insurances []Insurance `json:"insurances,omitempty" bson:"insurances,omitempty"`
}
