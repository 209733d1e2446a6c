package bitvavo

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"bitvavo/pkg/core"
)

// OrderOptions carries the optional fields of an order request. Nil fields
// are excluded from the request body entirely, following the exchange's
// omission-means-default rule.
type OrderOptions struct {
	// Amount is the order size in base currency.
	Amount *apd.Decimal
	// Price is the limit price; required for limit order types.
	Price *apd.Decimal
	// AmountQuote is the order size in quote currency, for market orders
	// specified by spend amount.
	AmountQuote *apd.Decimal
	// TimeInForce sets how long the order remains active.
	TimeInForce *core.TimeInForce
	// SelfTradePrevention sets how an order trading against the same
	// account is resolved.
	SelfTradePrevention *core.SelfTradePrevention
	// PostOnly rejects a limit order that would fill immediately.
	PostOnly *bool
	// DisableMarketProtection disables price protection on market orders.
	DisableMarketProtection *bool
	// FullResponse requests the full order object instead of an ack.
	FullResponse *bool
}

func (o *OrderOptions) apply(body *core.Params) {
	if o == nil {
		return
	}
	body.Set("amount", o.Amount).
		Set("price", o.Price).
		Set("amountQuote", o.AmountQuote).
		Set("postOnly", o.PostOnly).
		Set("disableMarketProtection", o.DisableMarketProtection).
		Set("responseRequired", o.FullResponse)
	if o.TimeInForce != nil {
		body.Set("timeInForce", *o.TimeInForce)
	}
	if o.SelfTradePrevention != nil {
		body.Set("selfTradePrevention", *o.SelfTradePrevention)
	}
}

// CreateOrder places a new order on a market. The signed JSON body contains
// market, side, and orderType, then every option that is set, in a fixed
// field order.
func (c *Client) CreateOrder(ctx context.Context, pair core.Pair, side core.OrderSide, orderType core.OrderType, opts *OrderOptions) (any, error) {
	body := core.NewParams().
		Set("market", pair.Market()).
		Set("side", side).
		Set("orderType", orderType)
	opts.apply(body)
	return c.post(ctx, "order", body, true)
}

// UpdateOrder amends an existing order's price, amount, or policies.
func (c *Client) UpdateOrder(ctx context.Context, pair core.Pair, orderID string, opts *OrderOptions) (any, error) {
	body := core.NewParams().
		Set("market", pair.Market()).
		Set("orderId", orderID)
	opts.apply(body)
	return c.put(ctx, "order", body, true)
}

// GetOrder fetches a single order by its exchange-assigned ID.
func (c *Client) GetOrder(ctx context.Context, pair core.Pair, orderID string) (any, error) {
	params := core.NewParams().
		Set("market", pair.Market()).
		Set("orderId", orderID)
	return c.get(ctx, "order", params, true)
}

// GetOrders fetches the order history for a market.
func (c *Client) GetOrders(ctx context.Context, pair core.Pair) (any, error) {
	params := core.NewParams().Set("market", pair.Market())
	return c.get(ctx, "orders", params, true)
}

// OpenOrders fetches all open orders, or those on a single market when pair
// is non-nil.
func (c *Client) OpenOrders(ctx context.Context, pair *core.Pair) (any, error) {
	params := core.NewParams()
	if pair != nil {
		params.Set("market", pair.Market())
	}
	return c.get(ctx, "ordersOpen", params, true)
}

// CancelOrder cancels a single order by its exchange-assigned ID.
func (c *Client) CancelOrder(ctx context.Context, pair core.Pair, orderID string) (any, error) {
	params := core.NewParams().
		Set("market", pair.Market()).
		Set("orderId", orderID)
	return c.delete(ctx, "order", params, true)
}

// CancelOrders cancels all open orders on a market.
func (c *Client) CancelOrders(ctx context.Context, pair core.Pair) (any, error) {
	params := core.NewParams().Set("market", pair.Market())
	return c.delete(ctx, "orders", params, true)
}
