package domain

// SiteSettings carries the site identity values injected into every rendered
// page. The back office may override them through the site_settings
// collection; absent values fall back to the defaults below.
type SiteSettings struct {
	CompanyName        string `bson:"company_name"`
	CompanyDescription string `bson:"company_description"`
	SiteEmail          string `bson:"site_email"`
	SitePhone          string `bson:"site_phone"`
	SiteAddress        string `bson:"site_address"`
	SupportEmail       string `bson:"support_email"`
}

// DefaultSiteSettings returns the fallback identity used when the store has
// no site_settings document or individual fields are empty.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		CompanyName: "Jongleur Maersk",
		CompanyDescription: "a freight-logistics brand connecting shippers and receivers " +
			"across air, ocean and road networks, with every consignment trackable end to end.",
		SiteEmail:    "contact@maersk-cargo.com",
		SitePhone:    "+1 639 526 1121",
		SiteAddress:  "Logistics Hub",
		SupportEmail: "support@maersk-cargo.com",
	}
}

// FillDefaults replaces every empty field with its fallback value.
func (s SiteSettings) FillDefaults() SiteSettings {
	d := DefaultSiteSettings()
	if s.CompanyName == "" {
		s.CompanyName = d.CompanyName
	}
	if s.CompanyDescription == "" {
		s.CompanyDescription = d.CompanyDescription
	}
	if s.SiteEmail == "" {
		s.SiteEmail = d.SiteEmail
	}
	if s.SitePhone == "" {
		s.SitePhone = d.SitePhone
	}
	if s.SiteAddress == "" {
		s.SiteAddress = d.SiteAddress
	}
	if s.SupportEmail == "" {
		s.SupportEmail = d.SupportEmail
	}
	return s
}
