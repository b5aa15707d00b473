// Package dto defines request shapes for the HTTP API.
package dto

// DailyReportQuery carries the query scope of the daily report endpoints.
type DailyReportQuery struct {
	// Fecha is the calendar date in YYYY-MM-DD form.
	Fecha string `form:"fecha"`
}

// MonthlyReportQuery carries the query scope of the monthly report endpoint.
type MonthlyReportQuery struct {
	// Mes is the calendar month, 1..12.
	Mes string `form:"mes"`
	// Anio is the calendar year, 1900..2100.
	Anio string `form:"anio"`
}
