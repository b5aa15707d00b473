package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
)

func TestDayWindow(t *testing.T) {
	w, err := DayWindow("2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC), w.End)
	assert.True(t, w.Start.Before(w.End))
}

func TestDayWindow_Invalid(t *testing.T) {
	for _, fecha := range []string{"", "not-a-date", "2024-13-40", "15/03/2024", "2024-3-5T00:00"} {
		_, err := DayWindow(fecha)
		require.Error(t, err, "fecha %q", fecha)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name    string
		mes     string
		anio    string
		lastDay int
	}{
		{"leap february", "2", "2024", 29},
		{"non-leap february", "2", "2023", 28},
		{"april", "4", "2024", 30},
		{"december", "12", "2024", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, month, year, err := MonthWindow(tt.mes, tt.anio)
			require.NoError(t, err)

			assert.Equal(t, 1, w.Start.Day())
			assert.Equal(t, 0, w.Start.Hour())
			assert.Equal(t, tt.lastDay, w.End.Day())
			assert.Equal(t, 23, w.End.Hour())
			assert.Equal(t, 59, w.End.Minute())
			assert.Equal(t, 59, w.End.Second())
			assert.Equal(t, time.Month(month), w.Start.Month())
			assert.Equal(t, year, w.Start.Year())
		})
	}
}

func TestMonthWindow_Invalid(t *testing.T) {
	tests := []struct {
		mes  string
		anio string
	}{
		{"0", "2024"},
		{"13", "2024"},
		{"-1", "2024"},
		{"6", "1899"},
		{"6", "2101"},
		{"june", "2024"},
		{"6", "two-thousand"},
	}

	for _, tt := range tests {
		_, _, _, err := MonthWindow(tt.mes, tt.anio)
		require.Error(t, err, "mes=%q anio=%q", tt.mes, tt.anio)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	}
}
