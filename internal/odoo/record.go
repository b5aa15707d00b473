package odoo

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/domain/reports"
)

// decodeOrder validates one raw search_read record into an OrderRecord.
// The branch reference (config_id) arrives as an [id, display name] pair and
// is required; numeric fields default through toDecimal.
func decodeOrder(raw map[string]any) (reports.OrderRecord, error) {
	var rec reports.OrderRecord

	ref, ok := raw[fieldBranch].([]any)
	if !ok || len(ref) != 2 {
		return rec, apperror.NewRemoteUnavailable(fmt.Sprintf("order record carries a malformed %s reference", fieldBranch))
	}
	if id, ok := ref[0].(int64); ok {
		rec.BranchID = id
	}
	name, ok := ref[1].(string)
	if !ok {
		return rec, apperror.NewRemoteUnavailable(fmt.Sprintf("order record carries a non-string %s display name", fieldBranch))
	}
	rec.BranchName = name

	rec.AmountTotal = toDecimal(raw[fieldAmountTotal])
	rec.WeightKg = toDecimal(raw[fieldWeight])
	return rec, nil
}

// toDecimal converts a remote numeric value. Odoo reports unset fields as
// boolean false; those, like absent fields, default to zero.
func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int64:
		return decimal.NewFromInt(n)
	case int:
		return decimal.NewFromInt(int64(n))
	default:
		return decimal.Zero
	}
}
