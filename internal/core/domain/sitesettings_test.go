package domain

import "testing"

func TestSiteSettings_FillDefaults_Empty(t *testing.T) {
	got := SiteSettings{}.FillDefaults()
	want := DefaultSiteSettings()
	if got != want {
		t.Errorf("FillDefaults on empty settings = %+v, want %+v", got, want)
	}
}

func TestSiteSettings_FillDefaults_PartialOverride(t *testing.T) {
	got := SiteSettings{CompanyName: "Acme Freight", SitePhone: "+44 20 0000 0000"}.FillDefaults()

	if got.CompanyName != "Acme Freight" {
		t.Errorf("override lost: %q", got.CompanyName)
	}
	if got.SitePhone != "+44 20 0000 0000" {
		t.Errorf("override lost: %q", got.SitePhone)
	}
	if got.SiteEmail != DefaultSiteSettings().SiteEmail {
		t.Errorf("expected default email, got %q", got.SiteEmail)
	}
}
