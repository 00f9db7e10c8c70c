package qrbill_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/higholive/party-api/internal/qrbill"
)

func sampleBill() qrbill.Bill {
	return qrbill.Bill{
		Creditor: qrbill.Creditor{
			IBAN:     "CH5400266266100331M2C",
			Name:     "Böhi Lucien",
			Street:   "Nouvelle Avenue",
			Building: "34",
			Zip:      "1907",
			Town:     "Saxon",
			Country:  "CH",
		},
		Amount:   135,
		Currency: "CHF",
		Message:  "PARTY - Marie Dupont",
	}
}

func TestPayload_LineLayout(t *testing.T) {
	lines := strings.Split(sampleBill().Payload(), "\n")
	require.Len(t, lines, 31)

	assert.Equal(t, "SPC", lines[0])
	assert.Equal(t, "0200", lines[1])
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "CH5400266266100331M2C", lines[3])
	assert.Equal(t, "S", lines[4])
	assert.Equal(t, "Böhi Lucien", lines[5])
	assert.Equal(t, "Nouvelle Avenue", lines[6])
	assert.Equal(t, "34", lines[7])
	assert.Equal(t, "1907", lines[8])
	assert.Equal(t, "Saxon", lines[9])
	assert.Equal(t, "CH", lines[10])

	// Ultimate creditor block stays empty.
	for i := 11; i <= 17; i++ {
		assert.Empty(t, lines[i], "line %d", i)
	}

	assert.Equal(t, "135.00", lines[18])
	assert.Equal(t, "CHF", lines[19])

	// Debtor block stays empty, filled in by the banking app.
	for i := 20; i <= 26; i++ {
		assert.Empty(t, lines[i], "line %d", i)
	}

	assert.Equal(t, "NON", lines[27])
	assert.Empty(t, lines[28])
	assert.Equal(t, "PARTY - Marie Dupont", lines[29])
	assert.Equal(t, "EPD", lines[30])
}

func TestPayload_AmountFormatting(t *testing.T) {
	b := sampleBill()
	b.Amount = 90.5
	assert.Contains(t, b.Payload(), "\n90.50\n")

	b.Amount = 0
	assert.Contains(t, b.Payload(), "\n0.00\n")
}

func TestPNG_ProducesImage(t *testing.T) {
	png, err := sampleBill().PNG(256)
	require.NoError(t, err)
	// PNG magic bytes.
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}
