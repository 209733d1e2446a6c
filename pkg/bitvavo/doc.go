// Package bitvavo implements a thin client for the Bitvavo v2 REST API.
// It provides one method per exchange endpoint and HMAC-SHA256 request
// signing for account, order, and balance calls.
//
// The package includes:
//   - Client: endpoint methods sharing one pooled HTTP connection
//   - Signer: canonical signature construction and authentication headers
//   - OrderOptions: optional order fields with omit-when-nil semantics
//
// Example usage:
//
//	client, err := bitvavo.New(core.DefaultConfig())
//	book, err := client.OrderBook(ctx, core.NewPair("ETH", "BTC"), 5)
package bitvavo
