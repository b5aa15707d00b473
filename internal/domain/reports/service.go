package reports

import (
	"context"
)

// Service provides the report operations.
type Service struct {
	ledger Ledger
}

// NewService creates a new reports service.
func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// DailyTotals sums order totals per branch for one calendar date.
// Branches are keyed by their raw display name; zero and negative totals
// participate in the sum.
func (s *Service) DailyTotals(ctx context.Context, fecha string) ([]TotalRow, error) {
	w, err := DayWindow(fecha)
	if err != nil {
		return nil, err
	}

	orders, err := s.ledger.OrdersWithTotals(ctx, w)
	if err != nil {
		return nil, err
	}

	acc := newBranchTotals()
	for _, o := range orders {
		acc.add(o.BranchName, o.AmountTotal)
	}

	rows := make([]TotalRow, 0, len(acc.keys))
	for _, name := range acc.keys {
		rows = append(rows, TotalRow{
			Fecha:    fecha,
			Sucursal: name,
			Total:    acc.totals[name],
		})
	}
	return rows, nil
}

// KilosPerOrder reports the weight of every order on one calendar date,
// one row per order. Orders without a positive weight carry no product
// weight and are dropped.
func (s *Service) KilosPerOrder(ctx context.Context, fecha string) ([]OrderKilosRow, error) {
	w, err := DayWindow(fecha)
	if err != nil {
		return nil, err
	}

	orders, err := s.ledger.OrdersWithWeights(ctx, w)
	if err != nil {
		return nil, err
	}

	rows := make([]OrderKilosRow, 0, len(orders))
	for _, o := range orders {
		if !o.WeightKg.IsPositive() {
			continue
		}
		rows = append(rows, OrderKilosRow{
			Fecha:    fecha,
			Sucursal: o.BranchName,
			Kilos:    o.WeightKg,
		})
	}
	return rows, nil
}

// KilosPerMonth sums order weights per normalized branch over a full
// calendar month. Only positive weights contribute; zero and negative
// records are skipped entirely rather than summed as zero.
func (s *Service) KilosPerMonth(ctx context.Context, mes, anio string) ([]MonthlyKilosRow, error) {
	w, month, year, err := MonthWindow(mes, anio)
	if err != nil {
		return nil, err
	}

	orders, err := s.ledger.OrdersWithWeights(ctx, w)
	if err != nil {
		return nil, err
	}

	acc := newBranchTotals()
	for _, o := range orders {
		if !o.WeightKg.IsPositive() {
			continue
		}
		acc.add(NormalizeBranch(o.BranchName), o.WeightKg)
	}

	rows := make([]MonthlyKilosRow, 0, len(acc.keys))
	for _, name := range acc.keys {
		rows = append(rows, MonthlyKilosRow{
			Mes:      month,
			Anio:     year,
			Sucursal: name,
			Kilos:    acc.totals[name],
		})
	}
	return rows, nil
}
