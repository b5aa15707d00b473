package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/domain/reports"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/pkg/logger"
)

type stubLedger struct {
	records []reports.OrderRecord
	err     error
	calls   int
}

func (s *stubLedger) OrdersWithTotals(ctx context.Context, w reports.DateWindow) ([]reports.OrderRecord, error) {
	s.calls++
	return s.records, s.err
}

func (s *stubLedger) OrdersWithWeights(ctx context.Context, w reports.DateWindow) ([]reports.OrderRecord, error) {
	s.calls++
	return s.records, s.err
}

func newTestRouter(ledger reports.Ledger) http.Handler {
	return NewRouter(RouterConfig{
		Reports: reports.NewService(ledger),
		Logger:  logger.Default(),
	})
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetDailyTotals(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true

	ledger := &stubLedger{records: []reports.OrderRecord{
		{BranchName: "A", AmountTotal: decimal.NewFromInt(100)},
		{BranchName: "A", AmountTotal: decimal.NewFromInt(50)},
		{BranchName: "B", AmountTotal: decimal.NewFromInt(200)},
	}}
	router := newTestRouter(ledger)

	rec := doGet(t, router, "/api/totales/csv?fecha=2024-03-15")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-15", rows[0]["fecha"])
	assert.Equal(t, "A", rows[0]["sucursal"])
	assert.Equal(t, float64(150), rows[0]["total"])
	assert.Equal(t, "B", rows[1]["sucursal"])
	assert.Equal(t, float64(200), rows[1]["total"])
}

func TestGetDailyTotals_MissingFecha(t *testing.T) {
	ledger := &stubLedger{}
	router := newTestRouter(ledger)

	rec := doGet(t, router, "/api/totales/csv")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fecha")
	// No remote call is attempted on a bad request.
	assert.Equal(t, 0, ledger.calls)
}

func TestGetDailyTotals_MalformedFecha(t *testing.T) {
	ledger := &stubLedger{}
	router := newTestRouter(ledger)

	rec := doGet(t, router, "/api/totales/csv?fecha=2024-13-40")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, ledger.calls)
}

func TestGetKilosPerOrder(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true

	ledger := &stubLedger{records: []reports.OrderRecord{
		{BranchName: "A", WeightKg: decimal.NewFromFloat(5.5)},
		{BranchName: "B"}, // zero weight, filtered out
	}}
	router := newTestRouter(ledger)

	rec := doGet(t, router, "/api/kilos_por_orden/csv?fecha=2024-03-15")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0]["sucursal"])
	assert.Equal(t, 5.5, rows[0]["kilos_total_orden"])
}

func TestGetKilosPerMonth(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true

	ledger := &stubLedger{records: []reports.OrderRecord{
		{BranchName: "North (Old)", WeightKg: decimal.NewFromInt(3)},
		{BranchName: "North (New)", WeightKg: decimal.NewFromInt(4)},
	}}
	router := newTestRouter(ledger)

	rec := doGet(t, router, "/api/kilos_por_mes/csv?mes=2&anio=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(2), rows[0]["mes"])
	assert.Equal(t, float64(2024), rows[0]["anio"])
	assert.Equal(t, "North", rows[0]["sucursal"])
	assert.Equal(t, float64(7), rows[0]["kilos_total_mes"])
}

func TestGetKilosPerMonth_MissingParams(t *testing.T) {
	ledger := &stubLedger{}
	router := newTestRouter(ledger)

	for _, path := range []string{
		"/api/kilos_por_mes/csv",
		"/api/kilos_por_mes/csv?mes=2",
		"/api/kilos_por_mes/csv?anio=2024",
	} {
		rec := doGet(t, router, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
	assert.Equal(t, 0, ledger.calls)
}

func TestGetKilosPerMonth_OutOfRange(t *testing.T) {
	router := newTestRouter(&stubLedger{})

	rec := doGet(t, router, "/api/kilos_por_mes/csv?mes=13&anio=2024")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, router, "/api/kilos_por_mes/csv?mes=6&anio=1899")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorBodiesArePlainText(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"authentication failed", apperror.NewAuthenticationFailed("Odoo rejected the configured credentials"), http.StatusForbidden},
		{"configuration error", apperror.NewConfiguration("missing Odoo connection settings: ODOO_DB"), http.StatusInternalServerError},
		{"remote fault", apperror.NewRemoteUnavailable("Odoo fault during search_read pos.order: Invalid field"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubLedger{err: tt.err})

			rec := doGet(t, router, "/api/totales/csv?fecha=2024-03-15")
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			// The remote detail survives to the caller.
			appErr, _ := apperror.AsAppError(tt.err)
			assert.Equal(t, appErr.Message, rec.Body.String())
		})
	}
}

func TestPanicReturns500(t *testing.T) {
	router := NewRouter(RouterConfig{
		Reports: reports.NewService(&stubLedger{}),
		Logger:  logger.Default(),
	})
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	rec := doGet(t, router, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "internal server error", rec.Body.String())
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(&stubLedger{})

	rec := doGet(t, router, "/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyResultIsJSONArray(t *testing.T) {
	router := newTestRouter(&stubLedger{})

	rec := doGet(t, router, "/api/totales/csv?fecha=2024-03-15")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
