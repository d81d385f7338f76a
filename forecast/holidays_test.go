package forecast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

func writeCalendar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holidays.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHolidays(t *testing.T) {
	path := writeCalendar(t, `
holidays:
  - start: 2026-03-19
    end: 2026-03-23
  - start: 2026-09-23
    end: 2026-09-23
`)

	ranges, err := LoadHolidays(path)
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	assert.True(t, ranges[0].Contains(models.NewDate(2026, 3, 19)))
	assert.True(t, ranges[0].Contains(models.NewDate(2026, 3, 23)))
	assert.False(t, ranges[0].Contains(models.NewDate(2026, 3, 24)))
	assert.True(t, ranges[1].Contains(models.NewDate(2026, 9, 23)))
}

func TestLoadHolidaysRejectsInvertedRange(t *testing.T) {
	path := writeCalendar(t, `
holidays:
  - start: 2026-03-23
    end: 2026-03-19
`)

	_, err := LoadHolidays(path)
	assert.Error(t, err)
}

func TestLoadHolidaysRejectsBadDate(t *testing.T) {
	path := writeCalendar(t, `
holidays:
  - start: 03/19/2026
    end: 2026-03-23
`)

	_, err := LoadHolidays(path)
	assert.Error(t, err)
}

func TestLoadHolidaysMissingFile(t *testing.T) {
	_, err := LoadHolidays(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
