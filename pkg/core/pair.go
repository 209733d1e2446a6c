package core

// Pair identifies a traded market by its base and quote assets.
type Pair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// NewPair creates a Pair from base and quote asset symbols.
func NewPair(base, quote string) Pair {
	return Pair{Base: base, Quote: quote}
}

// Market returns the market encoding the exchange expects in request
// parameters, e.g. "ETH-BTC".
func (p Pair) Market() string {
	return p.Base + "-" + p.Quote
}

// String returns the display form without a separator, e.g. "ETHBTC".
func (p Pair) String() string {
	return p.Base + p.Quote
}
