package bitvavo

import (
	"context"

	"bitvavo/pkg/core"
)

// Time fetches the exchange server time.
func (c *Client) Time(ctx context.Context) (any, error) {
	return c.get(ctx, "time", nil, false)
}

// Markets fetches all markets, or a single market when pair is non-nil.
func (c *Client) Markets(ctx context.Context, pair *core.Pair) (any, error) {
	params := core.NewParams()
	if pair != nil {
		params.Set("market", pair.Market())
	}
	return c.get(ctx, "markets", params, false)
}

// Assets fetches all assets, or a single asset when symbol is non-empty.
func (c *Client) Assets(ctx context.Context, symbol string) (any, error) {
	params := core.NewParams()
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return c.get(ctx, "assets", params, false)
}

// OrderBook fetches the order book for a market. A positive depth limits
// the number of price levels per side; zero requests the exchange default.
func (c *Client) OrderBook(ctx context.Context, pair core.Pair, depth int) (any, error) {
	params := core.NewParams()
	if depth > 0 {
		params.Set("depth", depth)
	}
	return c.get(ctx, pair.Market()+"/book", params, false)
}

// Trades fetches recent public trades for a market.
func (c *Client) Trades(ctx context.Context, pair core.Pair, limit int) (any, error) {
	params := core.NewParams()
	if limit > 0 {
		params.Set("limit", limit)
	}
	return c.get(ctx, pair.Market()+"/trades", params, false)
}

// Candles fetches candlestick data for a market at the given interval.
func (c *Client) Candles(ctx context.Context, pair core.Pair, interval core.Interval, limit int) (any, error) {
	params := core.NewParams().Set("interval", interval)
	if limit > 0 {
		params.Set("limit", limit)
	}
	return c.get(ctx, pair.Market()+"/candles", params, false)
}

// PriceTicker fetches the latest trade price for all markets, or for a
// single market when pair is non-nil.
func (c *Client) PriceTicker(ctx context.Context, pair *core.Pair) (any, error) {
	params := core.NewParams()
	if pair != nil {
		params.Set("market", pair.Market())
	}
	return c.get(ctx, "ticker/price", params, false)
}

// BookTicker fetches the best bid and ask for all markets, or for a single
// market when pair is non-nil.
func (c *Client) BookTicker(ctx context.Context, pair *core.Pair) (any, error) {
	params := core.NewParams()
	if pair != nil {
		params.Set("market", pair.Market())
	}
	return c.get(ctx, "ticker/book", params, false)
}

// Ticker24h fetches 24-hour rolling statistics for all markets, or for a
// single market when pair is non-nil.
func (c *Client) Ticker24h(ctx context.Context, pair *core.Pair) (any, error) {
	params := core.NewParams()
	if pair != nil {
		params.Set("market", pair.Market())
	}
	return c.get(ctx, "ticker/24h", params, false)
}
