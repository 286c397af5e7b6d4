// Package pdf renders printable entry passes.
//
// A pass is a single landscape A4 page with a centered ticket card: event
// branding and team details on the left, the QR code in a grey panel on the
// right. All dimensions are in points.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

type rgb struct{ r, g, b int }

var (
	greyDark   = rgb{42, 42, 42}
	greyMed    = rgb{90, 90, 90}
	greyLight  = rgb{154, 154, 154}
	greyVLight = rgb{208, 208, 208}
	greyBG     = rgb{232, 232, 232}
	greyPanel  = rgb{242, 242, 242}
	greyDots   = rgb{248, 248, 248}
	white      = rgb{255, 255, 255}
	indigo     = rgb{99, 102, 241}
)

const fontFamily = "Courier"

// EntryPass renders the entry pass for a ticket. qrPNG is the rendered QR
// image; when empty a text placeholder is drawn in its place.
func EntryPass(t entities.Ticket, qrPNG []byte, ev config.EventConfig) ([]byte, error) {
	doc := fpdf.New("L", "pt", "A4", "")
	// Core fonts are cp1252; branding strings may carry bullets and dashes.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()

	// Ticket card: 85% of page width, half the page height, centered.
	ticketW := pageW * 0.85
	ticketH := pageH * 0.50
	ticketX := (pageW - ticketW) / 2
	ticketY := (pageH - ticketH) / 2

	fill(doc, greyBG)
	doc.Rect(0, 0, pageW, pageH, "F")

	fill(doc, white)
	doc.Rect(ticketX, ticketY, ticketW, ticketH, "F")

	// Subtle dot grid texture over the card.
	fill(doc, greyDots)
	for x := ticketX; x < ticketX+ticketW; x += 12 {
		for y := ticketY; y < ticketY+ticketH; y += 12 {
			doc.Circle(x, y, 0.8, "F")
		}
	}

	// Dark accent bar on the left edge, thin border around the card.
	fill(doc, greyDark)
	doc.Rect(ticketX, ticketY, 3, ticketH, "F")

	stroke(doc, greyVLight)
	doc.SetLineWidth(0.5)
	doc.Rect(ticketX, ticketY, ticketW, ticketH, "D")

	// Left 65% holds the details, right 35% the scan zone.
	leftW := ticketW * 0.65
	rightW := ticketW * 0.35
	leftX := ticketX + 20
	rightX := ticketX + leftW

	doc.SetDashPattern([]float64{3, 2}, 0)
	doc.Line(rightX, ticketY+10, rightX, ticketY+ticketH-10)
	doc.SetDashPattern([]float64{}, 0)

	y := ticketY + 25

	name := tr(ev.Name)
	fill(doc, greyDark)
	doc.SetFont(fontFamily, "B", 18)
	doc.Text(leftX, y, name)

	glyphX := leftX + doc.GetStringWidth(name) + 12
	doc.SetFont(fontFamily, "", 12)
	fill(doc, greyLight)
	doc.Text(glyphX, y-2, "</>")

	// Organizing college, right-aligned against the divider.
	college := tr(ev.College)
	doc.SetFont(fontFamily, "", 6)
	doc.Text(rightX-25-doc.GetStringWidth(college), y, college)

	y += 18
	doc.SetFont(fontFamily, "", 9)
	fill(doc, greyMed)
	doc.Text(leftX, y, tr(ev.Tagline))

	y += 14
	doc.SetFont(fontFamily, "B", 7)
	fill(doc, greyLight)
	doc.Text(leftX, y, "ENTRY PASS")

	y += 10
	doc.Line(leftX, y, rightX-20, y)

	y += 18
	label(doc, leftX, y, "TEAM NAME")
	y += 12
	doc.SetFont(fontFamily, "B", 11)
	fill(doc, greyDark)
	doc.Text(leftX, y, tr(ellipsize(t.TeamName, 35)))

	y += 20
	label(doc, leftX, y, "TEAM CODE (For Manual Entry)")
	y += 12
	doc.SetFont(fontFamily, "B", 14)
	fill(doc, indigo)
	doc.Text(leftX, y, t.TeamCode)

	y += 22
	col2X := leftX + 240
	label(doc, leftX, y, "COLLEGE")
	label(doc, col2X, y, "TEAM SIZE")
	y += 11
	doc.SetFont(fontFamily, "B", 9)
	fill(doc, greyDark)
	doc.Text(leftX, y, tr(ellipsize(t.CollegeName, 28)))
	doc.Text(col2X, y, strconv.Itoa(t.TeamSize)+" Members")

	y += 18
	label(doc, leftX, y, "TEAM LEADER EMAIL")
	y += 10
	doc.SetFont(fontFamily, "", 8)
	fill(doc, greyDark)
	doc.Text(leftX, y, tr(ellipsize(t.LeaderEmail, 40)))

	y += 18
	label(doc, leftX, y, "EVENT SCHEDULE")
	y += 10
	doc.SetFont(fontFamily, "", 8)
	fill(doc, greyDark)
	doc.Text(leftX, y, tr(ev.Schedule))

	y += 16
	label(doc, leftX, y, "SPONSORS")
	y += 9
	doc.SetFont(fontFamily, "", 7)
	doc.Text(leftX, y, tr(ev.Sponsors))

	// Scan zone.
	rightCenterX := rightX + rightW/2

	fill(doc, greyPanel)
	doc.Rect(rightX+5, ticketY+5, rightW-10, ticketH-10, "F")

	fill(doc, greyMed)
	doc.SetFont(fontFamily, "B", 7)
	textCentered(doc, rightCenterX, ticketY+30, "SCAN AT ENTRY")

	const qrSize = 110.0
	qrX := rightCenterX - qrSize/2
	qrY := ticketY + ticketH/2 - qrSize/2

	fill(doc, white)
	doc.Rect(qrX-5, qrY-5, qrSize+10, qrSize+10, "F")
	stroke(doc, greyVLight)
	doc.Rect(qrX-5, qrY-5, qrSize+10, qrSize+10, "D")

	if len(qrPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
		doc.ImageOptions("qr", qrX, qrY, qrSize, qrSize, false, opts, 0, "")
	} else {
		fill(doc, greyLight)
		doc.SetFont(fontFamily, "", 8)
		textCentered(doc, rightCenterX, qrY+qrSize/2, "QR CODE")
	}

	labelY := qrY + qrSize + 18
	fill(doc, greyLight)
	doc.SetFont(fontFamily, "", 6)
	textCentered(doc, rightCenterX, labelY, "TICKET ID")
	fill(doc, greyDark)
	doc.SetFont(fontFamily, "B", 10)
	textCentered(doc, rightCenterX, labelY+11, t.TicketID)

	fill(doc, greyLight)
	doc.SetFont(fontFamily, "", 6)
	textCentered(doc, pageW/2, ticketY+ticketH+12,
		"This ticket is valid for one-time entry only. QR code will be scanned at the gate.")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render entry pass: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(doc *fpdf.Fpdf, c rgb) {
	doc.SetFillColor(c.r, c.g, c.b)
	doc.SetTextColor(c.r, c.g, c.b)
}

func stroke(doc *fpdf.Fpdf, c rgb) {
	doc.SetDrawColor(c.r, c.g, c.b)
}

func label(doc *fpdf.Fpdf, x, y float64, s string) {
	doc.SetFont(fontFamily, "", 6)
	fill(doc, greyLight)
	doc.Text(x, y, s)
}

func textCentered(doc *fpdf.Fpdf, cx, y float64, s string) {
	doc.Text(cx-doc.GetStringWidth(s)/2, y, s)
}

func ellipsize(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
