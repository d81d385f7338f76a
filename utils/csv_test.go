package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

func TestParseSalesCSV(t *testing.T) {
	input := "burger,12,04/14/2026\nfries,3.5,04/14/2026\nburger,7,04/15/2026\n"

	rows, err := ParseSalesCSV(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "burger", rows[0].ItemID)
	assert.Equal(t, 12.0, rows[0].Quantity)
	assert.True(t, rows[0].Date.Equal(models.NewDate(2026, time.April, 14)))

	assert.Equal(t, 3.5, rows[1].Quantity)
	assert.True(t, rows[2].Date.Equal(models.NewDate(2026, time.April, 15)))
}

func TestParseSalesCSVIgnoresExtraColumns(t *testing.T) {
	rows, err := ParseSalesCSV(strings.NewReader("burger,12,04/14/2026,note,extra\n"))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseSalesCSVRejectsMalformedFile(t *testing.T) {
	cases := []string{
		"burger,12\n",                   // missing date column
		"burger,notanumber,04/14/2026\n", // bad quantity
		"burger,12,2026-04-14\n",         // wrong date format
	}
	for _, input := range cases {
		_, err := ParseSalesCSV(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseSalesCSVEmptyFile(t *testing.T) {
	rows, err := ParseSalesCSV(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
