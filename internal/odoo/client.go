// Package odoo implements the remote order ledger adapter over the Odoo
// XML-RPC external API (/xmlrpc/2/common for authentication, /xmlrpc/2/object
// for queries).
package odoo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/kolo/xmlrpc"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/config"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/domain/reports"
)

const (
	orderModel = "pos.order"

	fieldDateOrder   = "date_order"
	fieldState       = "state"
	fieldAmountTotal = "amount_total"
	fieldBranch      = "config_id"
	fieldWeight      = "x_studio_float_field_1u1_1irfgb3un"

	datetimeLayout = "2006-01-02 15:04:05"
)

// orderStates is the fixed set of order states included in every report.
// This is a business rule, not caller-configurable.
var orderStates = []string{"done", "registered", "paid", "invoiced"}

// Client queries the Odoo order ledger. It holds no remote state: every
// fetch opens its own authenticated session and closes it with the request.
type Client struct {
	cfg       *config.Config
	transport http.RoundTripper
}

// New creates a ledger client from the process configuration. The transport
// carries a bounded timeout so a stuck remote surfaces as RemoteUnavailable
// instead of blocking the request forever.
func New(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		transport: &http.Transport{
			DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
			ResponseHeaderTimeout: cfg.OdooTimeout,
		},
	}
}

// OrdersWithTotals implements reports.Ledger.
func (c *Client) OrdersWithTotals(ctx context.Context, w reports.DateWindow) ([]reports.OrderRecord, error) {
	return c.fetchOrders(ctx, w, []string{fieldAmountTotal, fieldBranch})
}

// OrdersWithWeights implements reports.Ledger.
func (c *Client) OrdersWithWeights(ctx context.Context, w reports.DateWindow) ([]reports.OrderRecord, error) {
	return c.fetchOrders(ctx, w, []string{fieldBranch, fieldWeight})
}

// fetchOrders performs exactly one search_read round trip: no retries, no
// pagination, no caching.
func (c *Client) fetchOrders(ctx context.Context, w reports.DateWindow, fields []string) ([]reports.OrderRecord, error) {
	sess, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	raw, err := sess.SearchRead(ctx, orderModel, orderDomain(w), fields)
	if err != nil {
		return nil, err
	}

	records := make([]reports.OrderRecord, 0, len(raw))
	for _, r := range raw {
		rec, err := decodeOrder(r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// orderDomain builds the remote filter predicate: the date window bounds plus
// the fixed status set, as a conjunction of [field, operator, value] triples.
func orderDomain(w reports.DateWindow) []any {
	return []any{
		[]any{fieldDateOrder, ">=", w.Start.Format(datetimeLayout)},
		[]any{fieldDateOrder, "<=", w.End.Format(datetimeLayout)},
		[]any{fieldState, "in", orderStates},
	}
}

// Session is a scoped authenticated connection to Odoo. Callers must Close it
// so no half-authenticated session outlives its request.
type Session struct {
	common *xmlrpc.Client
	object *xmlrpc.Client

	uid      int64
	db       string
	password string
}

// Connect validates the connection settings, authenticates against Odoo and
// returns a ready session. Configuration problems are reported before any
// network dial.
func (c *Client) Connect(ctx context.Context) (*Session, error) {
	if err := c.cfg.ValidateOdoo(); err != nil {
		return nil, err
	}

	common, err := xmlrpc.NewClient(c.cfg.OdooURL+"/xmlrpc/2/common", c.transport)
	if err != nil {
		return nil, apperror.NewRemoteUnavailable("cannot create Odoo common client: " + err.Error()).WithCause(err)
	}

	var reply any
	args := []any{c.cfg.OdooDB, c.cfg.OdooUsername, c.cfg.OdooPassword, map[string]any{}}
	if err := common.Call("authenticate", args, &reply); err != nil {
		_ = common.Close()
		return nil, remoteErr("authenticate", err)
	}

	// Odoo answers boolean false instead of a uid when credentials are bad.
	uid, ok := reply.(int64)
	if !ok || uid <= 0 {
		_ = common.Close()
		return nil, apperror.NewAuthenticationFailed("Odoo rejected the configured credentials")
	}

	object, err := xmlrpc.NewClient(c.cfg.OdooURL+"/xmlrpc/2/object", c.transport)
	if err != nil {
		_ = common.Close()
		return nil, apperror.NewRemoteUnavailable("cannot create Odoo object client: " + err.Error()).WithCause(err)
	}

	return &Session{
		common:   common,
		object:   object,
		uid:      uid,
		db:       c.cfg.OdooDB,
		password: c.cfg.OdooPassword,
	}, nil
}

// SearchRead executes search_read on the given model with a domain filter and
// field projection, returning the raw record mappings.
func (s *Session) SearchRead(ctx context.Context, model string, domain []any, fields []string) ([]map[string]any, error) {
	args := []any{
		s.db, s.uid, s.password,
		model, "search_read",
		[]any{domain},
		map[string]any{"fields": fields},
	}

	var reply any
	if err := s.object.Call("execute_kw", args, &reply); err != nil {
		return nil, remoteErr("search_read "+model, err)
	}

	items, ok := reply.([]any)
	if !ok {
		return nil, apperror.NewRemoteUnavailable(fmt.Sprintf("unexpected search_read reply shape %T", reply))
	}

	records := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rec, ok := it.(map[string]any)
		if !ok {
			return nil, apperror.NewRemoteUnavailable(fmt.Sprintf("unexpected record shape %T in search_read reply", it))
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close releases both RPC connections.
func (s *Session) Close() {
	_ = s.common.Close()
	_ = s.object.Close()
}

// remoteErr maps a transport or fault error to RemoteUnavailable, keeping the
// remote-reported fault string in the message.
func remoteErr(op string, err error) error {
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return apperror.NewRemoteUnavailable(fmt.Sprintf("Odoo fault during %s: %s", op, fault.String)).WithCause(err)
	}
	return apperror.NewRemoteUnavailable(fmt.Sprintf("Odoo %s failed: %v", op, err)).WithCause(err)
}
