package reports

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
)

const dateLayout = "2006-01-02"

// Year bounds accepted for the monthly report.
const (
	minYear = 1900
	maxYear = 2100
)

// DayWindow builds the window covering a single calendar date given in
// YYYY-MM-DD form.
func DayWindow(fecha string) (DateWindow, error) {
	day, err := time.Parse(dateLayout, fecha)
	if err != nil {
		return DateWindow{}, apperror.NewInvalidInput("invalid 'fecha' format, expected YYYY-MM-DD").WithCause(err)
	}

	return DateWindow{
		Start: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		End:   time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC),
	}, nil
}

// MonthWindow builds the window covering a full calendar month. It returns
// the parsed month and year alongside the window so callers can restate the
// scope in result rows.
func MonthWindow(mes, anio string) (DateWindow, int, int, error) {
	month, err := strconv.Atoi(mes)
	if err != nil {
		return DateWindow{}, 0, 0, apperror.NewInvalidInput("invalid 'mes', expected a number").WithCause(err)
	}
	year, err := strconv.Atoi(anio)
	if err != nil {
		return DateWindow{}, 0, 0, apperror.NewInvalidInput("invalid 'anio', expected a number").WithCause(err)
	}

	if month < 1 || month > 12 {
		return DateWindow{}, 0, 0, apperror.NewInvalidInput(fmt.Sprintf("'mes' %d out of range [1, 12]", month))
	}
	if year < minYear || year > maxYear {
		return DateWindow{}, 0, 0, apperror.NewInvalidInput(fmt.Sprintf("'anio' %d out of range [%d, %d]", year, minYear, maxYear))
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the following month is the last calendar day of this one,
	// leap years included.
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)

	return DateWindow{Start: start, End: end}, month, year, nil
}
