// Package reports implements the per-branch sales report operations.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DateWindow is the inclusive datetime range orders are selected over.
// Start carries 00:00:00 and End 23:59:59 when built from a day or month.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// OrderRecord is a read-only view over one remote order for the duration of
// a single request.
type OrderRecord struct {
	BranchID   int64
	BranchName string

	AmountTotal decimal.Decimal

	// WeightKg is zero when the remote weight field is absent.
	WeightKg decimal.Decimal
}

// Ledger is the remote order ledger the reports are folded from.
// Each call performs exactly one query round trip.
type Ledger interface {
	// OrdersWithTotals returns orders in the window projected to branch and
	// monetary total.
	OrdersWithTotals(ctx context.Context, w DateWindow) ([]OrderRecord, error)

	// OrdersWithWeights returns orders in the window projected to branch and
	// order weight.
	OrdersWithWeights(ctx context.Context, w DateWindow) ([]OrderRecord, error)
}

// TotalRow is one branch total in the daily sales report.
type TotalRow struct {
	Fecha    string          `json:"fecha"`
	Sucursal string          `json:"sucursal"`
	Total    decimal.Decimal `json:"total"`
}

// OrderKilosRow is one order's weight in the daily kilos report.
type OrderKilosRow struct {
	Fecha    string          `json:"fecha"`
	Sucursal string          `json:"sucursal"`
	Kilos    decimal.Decimal `json:"kilos_total_orden"`
}

// MonthlyKilosRow is one branch's accumulated weight in the monthly report.
type MonthlyKilosRow struct {
	Mes      int             `json:"mes"`
	Anio     int             `json:"anio"`
	Sucursal string          `json:"sucursal"`
	Kilos    decimal.Decimal `json:"kilos_total_mes"`
}
