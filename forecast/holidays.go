package forecast

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

// holidayFile is the on-disk shape of the holiday calendar:
//
//	holidays:
//	  - start: 2026-03-19
//	    end: 2026-03-23
type holidayFile struct {
	Holidays []struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"holidays"`
}

// LoadHolidays reads the holiday calendar from a YAML file. Dates are
// YYYY-MM-DD and every range is inclusive on both ends.
func LoadHolidays(path string) ([]HolidayRange, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file holidayFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing holiday calendar: %w", err)
	}

	ranges := make([]HolidayRange, 0, len(file.Holidays))
	for _, h := range file.Holidays {
		start, err := models.ParseDate(h.Start)
		if err != nil {
			return nil, fmt.Errorf("holiday start %q: %w", h.Start, err)
		}
		end, err := models.ParseDate(h.End)
		if err != nil {
			return nil, fmt.Errorf("holiday end %q: %w", h.End, err)
		}
		if end.Before(start.Time) {
			return nil, fmt.Errorf("holiday range %s..%s ends before it starts", h.Start, h.End)
		}
		ranges = append(ranges, HolidayRange{Start: start, End: end})
	}
	return ranges, nil
}
