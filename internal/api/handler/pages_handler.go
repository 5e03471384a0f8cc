package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
)

// pageView is the data shared by the static marketing pages.
type pageView struct {
	Site        siteView
	Title       string
	Description string
}

// PagesHandler serves the marketing page shells around the tracking flow.
type PagesHandler struct {
	settings domain.SiteSettings
}

func NewPagesHandler(settings domain.SiteSettings) *PagesHandler {
	return &PagesHandler{settings: settings}
}

func (h *PagesHandler) page(title, description string) pageView {
	return pageView{
		Site:        newSiteView(h.settings),
		Title:       title,
		Description: description,
	}
}

func (h *PagesHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html",
		h.page(h.settings.CompanyName+" | Global Freight Logistics",
			"Air, sea and land freight with real-time shipment tracking."))
}

func (h *PagesHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html",
		h.page("About - "+h.settings.CompanyName,
			"Who we are and how we move cargo across the globe."))
}

func (h *PagesHandler) Services(c echo.Context) error {
	return c.Render(http.StatusOK, "services.html",
		h.page("Services - "+h.settings.CompanyName,
			"Air cargo, ocean freight, customs clearance and door-to-door delivery."))
}

func (h *PagesHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html",
		h.page("Contact - "+h.settings.CompanyName,
			"Reach our support and sales teams."))
}
