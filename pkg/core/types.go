package core

import "fmt"

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase an asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell an asset.
	SideSell
)

// String returns the wire representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[s]
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase forms.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"BUY"`, `"buy"`:
		*s = SideBuy
	case `"SELL"`, `"sell"`:
		*s = SideSell
	default:
		return fmt.Errorf("unknown order side: %s", data)
	}
	return nil
}

// OrderType represents the type of order to place on the exchange.
type OrderType int

// Order type constants define how an order is executed.
const (
	// TypeLimit executes at a specified price or better.
	TypeLimit OrderType = iota
	// TypeMarket executes immediately at the best available price.
	TypeMarket
	// TypeStopLoss triggers a market order when price reaches stop price.
	TypeStopLoss
	// TypeStopLossLimit triggers a limit order when price reaches stop price.
	TypeStopLossLimit
	// TypeTakeProfit triggers a market order when price reaches target.
	TypeTakeProfit
	// TypeTakeProfitLimit triggers a limit order when price reaches target.
	TypeTakeProfitLimit
	// TypeLimitMaker places a limit order that is rejected if it would fill
	// immediately.
	TypeLimitMaker
)

// String returns the wire representation of the order type.
func (t OrderType) String() string {
	return [...]string{
		"LIMIT",
		"MARKET",
		"STOP_LOSS",
		"STOP_LOSS_LIMIT",
		"TAKE_PROFIT",
		"TAKE_PROFIT_LIMIT",
		"LIMIT_MAKER",
	}[t]
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// TimeInForce represents how long an order remains active.
type TimeInForce int

const (
	// GTC keeps the order active until cancelled.
	GTC TimeInForce = iota
	// IOC fills what is immediately available and cancels the rest.
	IOC
	// FOK fills the entire order immediately or cancels it.
	FOK
)

// String returns the wire representation of the time-in-force policy.
func (t TimeInForce) String() string {
	return [...]string{"GTC", "IOC", "FOK"}[t]
}

// SelfTradePrevention represents how the exchange resolves an order that
// would trade against the same account.
type SelfTradePrevention int

const (
	// DecrementAndCancel decrements the larger order by the smaller one and
	// cancels the smaller.
	DecrementAndCancel SelfTradePrevention = iota
	// CancelOldest cancels the resting order.
	CancelOldest
	// CancelNewest cancels the incoming order.
	CancelNewest
	// CancelBoth cancels both orders.
	CancelBoth
)

// String returns the wire representation of the self-trade prevention mode.
func (s SelfTradePrevention) String() string {
	return [...]string{
		"decrementAndCancel",
		"cancelOldest",
		"cancelNewest",
		"cancelBoth",
	}[s]
}

// OrderResponseType controls how much detail the exchange returns when an
// order is accepted.
type OrderResponseType int

const (
	ResponseAck OrderResponseType = iota
	ResponseResult
	ResponseFull
)

func (r OrderResponseType) String() string {
	return [...]string{"ACK", "RESULT", "FULL"}[r]
}

// Interval is a candlestick interval accepted by the candles endpoint.
type Interval string

// Candlestick intervals supported by the exchange.
const (
	Interval1m  Interval = "1m"
	Interval3m  Interval = "3m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval2h  Interval = "2h"
	Interval4h  Interval = "4h"
	Interval6h  Interval = "6h"
	Interval8h  Interval = "8h"
	Interval12h Interval = "12h"
	Interval1d  Interval = "1d"
	Interval3d  Interval = "3d"
	Interval1w  Interval = "1w"
	Interval1M  Interval = "1M"
)

func (i Interval) String() string {
	return string(i)
}
