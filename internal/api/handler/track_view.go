package handler

import (
	"strconv"
	"time"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
)

// notAvailable is the explicit placeholder for absent or unparseable values.
// Missing data renders as this marker, never as a blank crash.
const notAvailable = "N/A"

// dateLayouts are the formats the back office has been observed to store.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// stageView is one marker on the progress tracker.
type stageView struct {
	Key    string
	Label  string
	Icon   string
	Active bool
}

var stageLabels = map[domain.TrackingStage]struct{ label, icon string }{
	domain.StagePickedUp:       {"Picked Up", "📦"},
	domain.StageInTransit:      {"In Transit", "🚚"},
	domain.StageCustoms:        {"Customs", "🛃"},
	domain.StageOutForDelivery: {"Out for Delivery", "🚛"},
	domain.StageDelivered:      {"Delivered", "✅"},
}

type insuranceView struct {
	Name      string
	Amount    string
	Paid      bool
	PaidLabel string
}

type partyView struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// reportView is the fully assembled report: fetched data, derived progress
// state, and the scannable-code image, ready for the template or print flow.
type reportView struct {
	TrackingNumber string

	Status     string
	StatusDate string
	StatusTime string

	Stages   []stageView
	Progress int

	Insurances         []insuranceView
	ImportTax          string
	HasImportTax       bool
	ImportTaxPaid      bool
	ImportTaxPaidLabel string

	Shipper  partyView
	Receiver partyView

	Origin               string
	Destination          string
	Carrier              string
	CarrierReference     string
	Product              string
	PackageDescription   string
	TypeOfShipment       string
	ShipmentMode         string
	Quantity             string
	Weight               string
	PaymentMode          string
	TotalFreight         string
	ExpectedDeliveryDate string
	DepartureDate        string
	DepartureTime        string
	DeliveryTime         string

	Comment  string
	ImageURL string

	QRCodeDataURL string
	TrackingURL   string
}

// trackPageView is everything the tracking page template needs: the session's
// input echo, an error message (or empty), and the report (or nil).
type trackPageView struct {
	Site        siteView
	Title       string
	Description string
	Input       string
	Error       string
	Report      *reportView
}

// siteView is the injected site identity shown in the header, footer, and
// contact blocks.
type siteView struct {
	CompanyName        string
	CompanyDescription string
	SiteEmail          string
	SitePhone          string
	SiteAddress        string
	SupportEmail       string
}

func newSiteView(s domain.SiteSettings) siteView {
	return siteView{
		CompanyName:        s.CompanyName,
		CompanyDescription: s.CompanyDescription,
		SiteEmail:          s.SiteEmail,
		SitePhone:          s.SitePhone,
		SiteAddress:        s.SiteAddress,
		SupportEmail:       s.SupportEmail,
	}
}

// assembleReport builds the report view model from a lookup result.
func assembleReport(r *ports.TrackingReport) *reportView {
	s := r.Shipment

	stages := make([]stageView, 0, len(domain.Stages()))
	for i, stage := range domain.Stages() {
		meta := stageLabels[stage]
		stages = append(stages, stageView{
			Key:    string(stage),
			Label:  meta.label,
			Icon:   meta.icon,
			Active: r.KnownStage && i == r.StageIndex,
		})
	}

	insurances := make([]insuranceView, 0, len(s.Insurances))
	for _, ins := range s.Insurances {
		insurances = append(insurances, insuranceView{
			Name:      ins.Name,
			Amount:    ins.Amount,
			Paid:      ins.Paid,
			PaidLabel: paidLabel(ins.Paid),
		})
	}

	return &reportView{
		TrackingNumber: s.TrackingNumber,

		Status:     fallback(s.Status),
		StatusDate: formatDate(s.StatusDate),
		StatusTime: fallback(s.StatusTime),

		Stages:   stages,
		Progress: r.Progress,

		Insurances:         insurances,
		ImportTax:          s.ImportTax,
		HasImportTax:       s.ImportTax != "",
		ImportTaxPaid:      s.ImportTaxPaid,
		ImportTaxPaidLabel: paidLabel(s.ImportTaxPaid),

		Shipper:  newPartyView(s.Shipper),
		Receiver: newPartyView(s.Receiver),

		Origin:               fallback(s.Origin),
		Destination:          fallback(s.Destination),
		Carrier:              fallback(s.Carrier),
		CarrierReference:     fallback(s.CarrierReference),
		Product:              fallback(s.Product),
		PackageDescription:   fallback(s.PackageDescription),
		TypeOfShipment:       fallback(s.TypeOfShipment),
		ShipmentMode:         fallback(s.ShipmentMode),
		Quantity:             strconv.Itoa(s.Quantity),
		Weight:               fallback(s.Weight),
		PaymentMode:          fallback(s.PaymentMode),
		TotalFreight:         fallback(s.TotalFreight),
		ExpectedDeliveryDate: formatDate(s.ExpectedDeliveryDate),
		DepartureDate:        formatDate(s.DepartureDate),
		DepartureTime:        fallback(s.DepartureTime),
		DeliveryTime:         fallback(s.DeliveryTime),

		Comment:  s.Comment,
		ImageURL: s.ImageURL,

		QRCodeDataURL: r.QRCodeDataURL,
		TrackingURL:   r.TrackingURL,
	}
}

func newPartyView(p domain.Party) partyView {
	return partyView{
		Name:    fallback(p.Name),
		Phone:   fallback(p.Phone),
		Email:   fallback(p.Email),
		Address: fallback(p.Address),
	}
}

// formatDate renders a stored date string as a long-form en-US date
// ("January 2, 2006"). Absent or unparseable values render as N/A.
func formatDate(stored string) string {
	if stored == "" {
		return notAvailable
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, stored); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return notAvailable
}

func fallback(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func paidLabel(paid bool) string {
	if paid {
		return "PAID"
	}
	return "NOT PAID"
}
