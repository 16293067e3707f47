// Package pdf lays out an itinerary report as a single-column A4 document.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"travelogue/internal/report"
)

const (
	// Filename is offered to the browser for downloads.
	Filename = "itinerary.pdf"
	// MIMEType of the exported document.
	MIMEType = "application/pdf"

	lineHeight   = 10.0
	bottomMargin = 15.0
)

// ErrUnsupportedText is returned when report text holds runes outside the
// core-font character set (Windows-1252).
var ErrUnsupportedText = errors.New("pdf: text not representable in Windows-1252")

// Document is an exported PDF. It is never modified after Export returns.
type Document struct {
	data []byte
}

// Bytes returns a copy of the encoded document.
func (d *Document) Bytes() []byte {
	return bytes.Clone(d.data)
}

// Reader returns a new reader positioned at the start of the document.
func (d *Document) Reader() *bytes.Reader {
	return bytes.NewReader(d.data)
}

// Len is the document size in bytes.
func (d *Document) Len() int {
	return len(d.data)
}

// Title renders the heading line of the document.
func Title(title string, days int) string {
	return fmt.Sprintf("Travel Itinerary for %s (%d days)", title, days)
}

// Export renders the report. Failures here only affect the download; the
// on-screen report stays valid.
func Export(title string, days int, r report.Report) (*Document, error) {
	heading, err := encode("title", Title(title, days))
	if err != nil {
		return nil, err
	}
	itinerary, err := encode("itinerary", r.ItineraryMarkdown)
	if err != nil {
		return nil, err
	}
	weather, err := encode("weather", r.WeatherSummary)
	if err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(Title(title, days), true)
	doc.SetAutoPageBreak(true, bottomMargin)
	doc.AddPage()
	doc.SetFont("Arial", "", 12)

	doc.CellFormat(0, lineHeight, heading, "", 1, "C", false, 0, "")
	doc.Ln(lineHeight)

	doc.MultiCell(0, lineHeight, itinerary, "", "", false)
	doc.Ln(lineHeight)

	doc.CellFormat(0, lineHeight, "Weather Details:", "", 1, "", false, 0, "")
	doc.MultiCell(0, lineHeight, weather, "", "", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return &Document{data: buf.Bytes()}, nil
}

// encode converts UTF-8 text into the single-byte form the core fonts expect.
func encode(field, s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnsupportedText, field, err)
	}
	return out, nil
}
