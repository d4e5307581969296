// Package tradier is a thin client for the Tradier brokerage HTTP API.
//
// A Client is constructed once per credential set and is immutable
// afterwards, so it is safe to share across goroutines. Every operation is a
// single synchronous GET round trip: build query parameters, fetch, walk the
// documented key path, and flatten the JSON into a record.Set. There is no
// retry, caching, or pagination; failures surface to the caller on first
// occurrence.
//
//	client := tradier.New(accountNumber, authToken)
//	positions, err := client.GetPositions(ctx, tradier.PositionsOptions{Equities: true})
//
// The paper environment (Tradier sandbox) is the default; pass
// WithEnvironment(tradier.EnvLive) to trade against the production host.
package tradier
