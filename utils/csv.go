package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

// SaleRow is one parsed line of a bulk sales upload.
type SaleRow struct {
	ItemID   string
	Quantity float64
	Date     models.Date
}

// csvDateLayout matches the export format of the POS systems the
// upload feature targets.
const csvDateLayout = "01/02/2006"

// ParseSalesCSV reads a sales upload. Each record carries at least
// three columns: item id, quantity, and an MM/DD/YYYY date; extra
// columns are ignored. Any malformed record fails the whole upload so
// a partial file is never imported.
func ParseSalesCSV(r io.Reader) ([]SaleRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []SaleRow
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected item id, quantity, date", line)
		}

		quantity, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid quantity %q", line, record[1])
		}

		day, err := time.Parse(csvDateLayout, record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q", line, record[2])
		}

		rows = append(rows, SaleRow{
			ItemID:   record[0],
			Quantity: quantity,
			Date:     models.DateOf(day),
		})
	}
	return rows, nil
}
