package tradier

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Lumiwealth/lumiwealth-tradier/record"
)

// Interval is the bar width for historical quote requests.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// HistoricalQuotesOptions configures GetHistoricalQuotes. All fields are
// optional.
type HistoricalQuotesOptions struct {
	// Interval defaults to daily.
	Interval Interval

	// Start defaults to the most recent Monday on or before End, anchoring
	// the request to the current trading week.
	Start Date

	// End defaults to the current date.
	End Date
}

// TimeSalesOptions configures GetTimeSales. All fields are optional.
type TimeSalesOptions struct {
	// Interval is the tick aggregation width, e.g. "1min". Defaults to 1min.
	Interval string

	// Start and End bound the window, as strings of form "YYYY-MM-DD HH:MM".
	Start string
	End   string
}

// GetHistoricalQuotes fetches historical bars for a symbol, one row per bar
// with columns [date, open, high, low, close, volume].
func (c *Client) GetHistoricalQuotes(ctx context.Context, symbol string, opts HistoricalQuotesOptions) (*record.Set, error) {
	interval := opts.Interval
	if interval == "" {
		interval = IntervalDaily
	}
	switch interval {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
	default:
		return nil, fmt.Errorf("interval %q must be daily, weekly or monthly: %w", interval, ErrInvalidArgument)
	}

	end := opts.End
	if end.IsZero() {
		end = DateOf(c.now())
	}

	start := opts.Start
	if start.IsZero() {
		endTime, err := end.asTime()
		if err != nil {
			return nil, err
		}
		start = DateOf(lastMonday(endTime))
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("interval", string(interval))
	query.Set("start", start.queryValue())
	query.Set("end", end.queryValue())

	data, err := c.fetch(ctx, epQuotesHistory, query, nil)
	if err != nil {
		return nil, fmt.Errorf("get historical quotes: %w", err)
	}
	return normalizeAt(data, "history", "day")
}

// GetQuoteDay fetches the current day quote for a symbol as a one-row
// record set.
func (c *Client) GetQuoteDay(ctx context.Context, symbol string) (*record.Set, error) {
	query := url.Values{}
	query.Set("symbols", symbol)
	query.Set("greeks", "false")

	data, err := c.fetch(ctx, epQuotes, query, nil)
	if err != nil {
		return nil, fmt.Errorf("get quote for %s: %w", symbol, err)
	}
	return normalizeAt(data, "quotes", "quote")
}

// GetLastPrice fetches the current day quote and returns only the last
// traded price as a float. The broker sends the field as either a number or
// a numeric string depending on the endpoint version; both are accepted.
func (c *Client) GetLastPrice(ctx context.Context, symbol string) (float64, error) {
	set, err := c.GetQuoteDay(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if set.Len() == 0 {
		return 0, fmt.Errorf("quote for %s: %w", symbol, ErrEmptyResult)
	}

	switch last := set.Value(0, "last").(type) {
	case float64:
		return last, nil
	case string:
		f, err := strconv.ParseFloat(last, 64)
		if err != nil {
			return 0, fmt.Errorf("parse last price %q: %w", last, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("last price for %s has unexpected type %T", symbol, last)
	}
}

// GetTimeSales fetches time-and-sales ticks for a symbol within an optional
// time window, one row per tick.
func (c *Client) GetTimeSales(ctx context.Context, symbol string, opts TimeSalesOptions) (*record.Set, error) {
	interval := opts.Interval
	if interval == "" {
		interval = "1min"
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("interval", interval)
	if opts.Start != "" {
		query.Set("start", opts.Start)
	}
	if opts.End != "" {
		query.Set("end", opts.End)
	}

	data, err := c.fetch(ctx, epTimeSales, query, nil)
	if err != nil {
		return nil, fmt.Errorf("get timesales for %s: %w", symbol, err)
	}
	return normalizeAt(data, "series", "data")
}

// SearchCompanies performs a free-text security search. An empty query fails
// with ErrInvalidArgument before any network call. When the broker reports
// zero matching securities, found is false and err is nil; that is a
// legitimate no-match answer, not a failure.
func (c *Client) SearchCompanies(ctx context.Context, query string) (set *record.Set, found bool, err error) {
	if query == "" {
		return nil, false, fmt.Errorf("search query must not be empty: %w", ErrInvalidArgument)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("indexes", "false")

	data, err := c.fetch(ctx, epSearch, params, nil)
	if err != nil {
		return nil, false, fmt.Errorf("search companies: %w", err)
	}

	v, err := record.Lookup(data, "securities", "security")
	if err != nil {
		if errors.Is(err, record.ErrEmptyResult) {
			return nil, false, nil
		}
		return nil, false, err
	}

	set, err = record.Normalize(v)
	if err != nil {
		return nil, false, err
	}
	return set, true, nil
}
