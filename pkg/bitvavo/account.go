package bitvavo

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"bitvavo/pkg/core"
)

// Account fetches account fee tiers and capabilities.
func (c *Client) Account(ctx context.Context) (any, error) {
	return c.get(ctx, "account", nil, true)
}

// Balance fetches balances for all assets, or a single asset when symbol is
// non-empty.
func (c *Client) Balance(ctx context.Context, symbol string) (any, error) {
	params := core.NewParams()
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return c.get(ctx, "balance", params, true)
}

// Deposit fetches the deposit address or instructions for an asset.
func (c *Client) Deposit(ctx context.Context, symbol string) (any, error) {
	params := core.NewParams()
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return c.get(ctx, "deposit", params, true)
}

// DepositHistory fetches past deposits, optionally filtered by asset and
// capped at limit entries.
func (c *Client) DepositHistory(ctx context.Context, symbol string, limit int) (any, error) {
	params := core.NewParams()
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	if limit > 0 {
		params.Set("limit", limit)
	}
	return c.get(ctx, "depositHistory", params, true)
}

// WithdrawalHistory fetches past withdrawals, optionally filtered by asset
// and capped at limit entries.
func (c *Client) WithdrawalHistory(ctx context.Context, symbol string, limit int) (any, error) {
	params := core.NewParams()
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	if limit > 0 {
		params.Set("limit", limit)
	}
	return c.get(ctx, "withdrawalHistory", params, true)
}

// HistoricalTrades fetches the account's own trade history for a market.
func (c *Client) HistoricalTrades(ctx context.Context, pair core.Pair, limit int) (any, error) {
	params := core.NewParams().Set("market", pair.Market())
	if limit > 0 {
		params.Set("limit", limit)
	}
	return c.get(ctx, "trades", params, true)
}

// WithdrawOptions carries the optional fields of a withdrawal request.
type WithdrawOptions struct {
	// PaymentID is a destination tag or memo for assets that require one.
	PaymentID string
	// Internal requests an off-chain transfer to another exchange account.
	Internal *bool
	// AddWithdrawalFee deducts the fee from the remaining balance instead of
	// the withdrawn amount.
	AddWithdrawalFee *bool
}

// Withdraw requests a withdrawal of an asset to the given address.
func (c *Client) Withdraw(ctx context.Context, symbol string, amount *apd.Decimal, address string, opts *WithdrawOptions) (any, error) {
	body := core.NewParams().
		Set("symbol", symbol).
		Set("amount", amount).
		Set("address", address)
	if opts != nil {
		if opts.PaymentID != "" {
			body.Set("paymentId", opts.PaymentID)
		}
		body.Set("internal", opts.Internal)
		body.Set("addWithdrawalFee", opts.AddWithdrawalFee)
	}
	return c.post(ctx, "withdrawal", body, true)
}
