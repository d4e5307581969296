package tradier

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Lumiwealth/lumiwealth-tradier/record"
)

// validActivityTypes is the broker's fixed enumeration for history filtering.
var validActivityTypes = []string{
	"trade", "option", "ach", "wire", "dividend", "fee", "tax",
	"journal", "check", "transfer", "adjustment", "interest",
}

// HistoryOptions filters GetHistory. All fields are optional.
type HistoryOptions struct {
	Start Date
	End   Date

	// Limit caps the number of rows returned; the broker defaults to 25.
	Limit int

	// ActivityType must be one of the valid activity types; it is
	// lower-cased before transmission.
	ActivityType string

	// Symbol is upper-cased before transmission.
	Symbol string
}

// PositionsOptions filters GetPositions. Filters apply after normalization,
// on the broker's full position list.
type PositionsOptions struct {
	// Symbols keeps only positions whose symbol is in the set.
	Symbols []string

	// Equities keeps only positions whose symbol is shorter than 5
	// characters. This is a heuristic classification by symbol length,
	// not an instrument-type lookup; OCC option symbols are long, equity
	// tickers are short. When set, Options is ignored.
	Equities bool

	// Options keeps only positions whose symbol is longer than 5
	// characters. Same approximation as Equities.
	Options bool
}

// GetUserProfile fetches the user profile linked to the session credentials
// as a one-row record set (columns like "account.account_number").
func (c *Client) GetUserProfile(ctx context.Context) (*record.Set, error) {
	data, err := c.fetch(ctx, epProfile, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return normalizeAt(data, "profile")
}

// GetAccountBalance fetches the account balance figures as a one-row record
// set (nested margin figures appear as "margin.fed_call" etc).
func (c *Client) GetAccountBalance(ctx context.Context) (*record.Set, error) {
	data, err := c.fetch(ctx, epBalances, nil, nil, c.accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get account balance: %w", err)
	}
	return normalizeAt(data, "balances")
}

// GetGainLoss fetches cost-basis information for closed positions. The
// broker reconciles these figures in a nightly batch with its clearing
// firm; they are not real-time.
func (c *Client) GetGainLoss(ctx context.Context) (*record.Set, error) {
	data, err := c.fetch(ctx, epGainLoss, nil, nil, c.accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get gainloss: %w", err)
	}
	return normalizeAt(data, "gainloss", "closed_position")
}

// GetHistory fetches account activity history, one row per event. An
// ActivityType outside the valid enumeration fails with ErrInvalidArgument
// before any network call.
func (c *Client) GetHistory(ctx context.Context, opts HistoryOptions) (*record.Set, error) {
	query := url.Values{}

	if opts.ActivityType != "" {
		activityType := strings.ToLower(opts.ActivityType)
		if !slices.Contains(validActivityTypes, activityType) {
			return nil, fmt.Errorf("activity_type %q must be one of [%s]: %w",
				opts.ActivityType, strings.Join(validActivityTypes, ", "), ErrInvalidArgument)
		}
		query.Set("type", activityType)
	}
	if opts.Symbol != "" {
		query.Set("symbol", strings.ToUpper(opts.Symbol))
	}
	if !opts.Start.IsZero() {
		query.Set("start", opts.Start.queryValue())
	}
	if !opts.End.IsZero() {
		query.Set("end", opts.End.queryValue())
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	data, err := c.fetch(ctx, epHistory, query, nil, c.accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return normalizeAt(data, "history", "event")
}

// GetOrders fetches all queued and filled orders, one row per order. When
// the account has no orders the broker answers with its "null" marker, which
// surfaces as ErrEmptyResult rather than a zero-row set.
func (c *Client) GetOrders(ctx context.Context) (*record.Set, error) {
	data, err := c.fetch(ctx, epOrders, nil, nil, c.accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return normalizeAt(data, "orders", "order")
}

// GetOrder fetches a single order by identifier as a one-row record set.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*record.Set, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order id must not be empty: %w", ErrInvalidArgument)
	}

	data, err := c.fetch(ctx, epOrder, nil, nil, c.accountNumber, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return normalizeAt(data, "order")
}

// GetPositions fetches the positions held in the account, optionally
// filtered by an explicit symbol set or by the equity/option length
// heuristic described on PositionsOptions.
func (c *Client) GetPositions(ctx context.Context, opts PositionsOptions) (*record.Set, error) {
	data, err := c.fetch(ctx, epPositions, nil, nil, c.accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	set, err := normalizeAt(data, "positions", "position")
	if err != nil {
		return nil, err
	}

	if len(opts.Symbols) > 0 {
		set = set.Filter(func(row map[string]any) bool {
			return slices.Contains(opts.Symbols, rowSymbol(row))
		})
	}
	if opts.Equities {
		set = set.Filter(func(row map[string]any) bool {
			return len(rowSymbol(row)) < 5
		})
		opts.Options = false
	}
	if opts.Options {
		set = set.Filter(func(row map[string]any) bool {
			return len(rowSymbol(row)) > 5
		})
	}

	return set, nil
}

func rowSymbol(row map[string]any) string {
	s, _ := row["symbol"].(string)
	return s
}
