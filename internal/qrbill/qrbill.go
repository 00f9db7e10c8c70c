// Package qrbill renders the Swiss QR-bill payment code a guest scans with
// a banking app to settle a reservation. Only the subset of the QR-bill
// format this event needs is implemented: a fixed creditor, an amount, no
// structured reference (NON) and a free-text message naming the guest.
package qrbill

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Creditor is the payee printed on the bill.
type Creditor struct {
	IBAN     string
	Name     string
	Street   string
	Building string
	Zip      string
	Town     string
	Country  string
}

// Bill is one payment slip: a creditor, an amount and a free-text message.
type Bill struct {
	Creditor Creditor
	Amount   float64
	Currency string
	Message  string
}

// Payload serializes the bill into the line-oriented Swiss Payments Code
// text embedded in the QR image. Line positions are fixed by the standard:
// the empty runs are the unused ultimate-creditor and debtor blocks.
func (b Bill) Payload() string {
	lines := []string{
		"SPC",  // QRType
		"0200", // version
		"1",    // coding: UTF-8
		b.Creditor.IBAN,
		"S", // structured creditor address
		b.Creditor.Name,
		b.Creditor.Street,
		b.Creditor.Building,
		b.Creditor.Zip,
		b.Creditor.Town,
		b.Creditor.Country,
		"", "", "", "", "", "", "", // ultimate creditor, unused
		fmt.Sprintf("%.2f", b.Amount),
		b.Currency,
		"", "", "", "", "", "", "", // debtor, filled in by the banking app
		"NON", // no structured reference
		"",
		b.Message,
		"EPD", // trailer
	}
	return strings.Join(lines, "\n")
}

// PNG renders the payload as a square QR image of the given pixel size.
// Level H matches what banking apps expect for QR-bills.
func (b Bill) PNG(size int) ([]byte, error) {
	return qrcode.Encode(b.Payload(), qrcode.High, size)
}
