package qrcode

import (
	"strings"
	"testing"
)

func TestGenerator_TrackingURL(t *testing.T) {
	g := New("https://example.com/")

	got := g.TrackingURL("CC-10-751490")
	want := "https://example.com/track?tracking=CC-10-751490"
	if got != want {
		t.Errorf("TrackingURL = %q, want %q", got, want)
	}
}

func TestGenerator_TrackingURL_EscapesInput(t *testing.T) {
	g := New("https://example.com")

	got := g.TrackingURL("AB 12&x=1")
	if strings.Contains(got, " ") || strings.Contains(got, "&x=1") {
		t.Errorf("tracking number not escaped: %q", got)
	}
}

func TestGenerator_DataURL(t *testing.T) {
	g := New("https://example.com")

	url, err := g.DataURL("CC-10-751490")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("expected PNG data URL, got prefix %q", url[:min(len(url), 30)])
	}
}

// Re-requesting after a reload must reproduce the same scannable target.
func TestGenerator_DataURL_Deterministic(t *testing.T) {
	g := New("https://example.com")

	first, err := g.DataURL("CC-10-751490")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.DataURL("CC-10-751490")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("same tracking number produced different images")
	}
}
