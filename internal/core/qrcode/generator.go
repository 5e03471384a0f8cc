// Package qrcode renders a shipment's tracking URL as a scannable PNG for
// inline display and print.
package qrcode

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"net/url"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const imageSize = 200

// Foreground matches the brand-dark used across the site.
var (
	foreground = color.RGBA{R: 0x0B, G: 0x13, B: 0x2B, A: 0xFF}
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Generator builds tracking URLs from a fixed site base URL and encodes them
// as QR images. The same (base URL, tracking number) pair always produces the
// same encoded target, so a re-scan after reload lands on the same page.
type Generator struct {
	baseURL string
}

func New(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// TrackingURL returns the absolute tracking page URL for a tracking number.
func (g *Generator) TrackingURL(trackingNumber string) string {
	return g.baseURL + "/track?tracking=" + url.QueryEscape(trackingNumber)
}

// DataURL encodes the tracking URL as a 200px PNG and returns it as a
// data:image/png;base64 URL suitable for an <img> src.
func (g *Generator) DataURL(trackingNumber string) (string, error) {
	code, err := qr.New(g.TrackingURL(trackingNumber), qr.Medium)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	code.ForegroundColor = foreground
	code.BackgroundColor = background

	png, err := code.PNG(imageSize)
	if err != nil {
		return "", fmt.Errorf("qr png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
