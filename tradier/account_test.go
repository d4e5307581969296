package tradier

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumiwealth/lumiwealth-tradier/record"
)

func TestGetUserProfile(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{
		"profile": {
			"id": "id-sb-2r01lpprbg",
			"name": "Fat Albert",
			"account": {
				"account_number": "ABC1234567",
				"classification": "individual"
			}
		}
	}`)
	c := newTestClient(broker)

	set, err := c.GetUserProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{"id", "name", "account.account_number", "account.classification"}, set.Columns())
	assert.Equal(t, "ABC1234567", set.Value(0, "account.account_number"))
}

func TestGetAccountBalance(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{
		"balances": {
			"total_equity": 74314.82,
			"account_number": "ABC1234567",
			"margin": {"fed_call": 0, "option_buying_power": 38919.84}
		}
	}`)
	c := newTestClient(broker)

	set, err := c.GetAccountBalance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/v1/accounts/ABC1234567/balances", broker.lastRequest(t).Path)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, float64(0), set.Value(0, "margin.fed_call"))
	assert.Equal(t, 38919.84, set.Value(0, "margin.option_buying_power"))
}

func TestGetGainLoss(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{
		"gainloss": {
			"closed_position": [
				{"symbol": "LMT240119C00260000", "gain_loss": -30600.0},
				{"symbol": "KLAC", "gain_loss": -432.6}
			]
		}
	}`)
	c := newTestClient(broker)

	set, err := c.GetGainLoss(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/v1/accounts/ABC1234567/gainloss", broker.lastRequest(t).Path)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, "KLAC", set.Value(1, "symbol"))
}

func TestGetHistoryTransmitsLoweredActivityType(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{"history": {"event": [{"type": "trade"}]}}`)
	c := newTestClient(broker)

	_, err := c.GetHistory(context.Background(), HistoryOptions{ActivityType: "TRADE"})
	require.NoError(t, err)

	assert.Equal(t, "trade", broker.lastRequest(t).Query.Get("type"))
}

func TestGetHistoryRejectsBogusActivityType(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{"history": {"event": []}}`)
	c := newTestClient(broker)

	_, err := c.GetHistory(context.Background(), HistoryOptions{ActivityType: "bogus"})

	require.ErrorIs(t, err, ErrInvalidArgument)
	// Validation fails before any network call.
	assert.Empty(t, broker.requests)
	// The error lists the valid enumeration.
	assert.Contains(t, err.Error(), "trade")
	assert.Contains(t, err.Error(), "interest")
}

func TestGetHistoryParameters(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{"history": {"event": [{"type": "trade"}]}}`)
	c := newTestClient(broker)

	_, err := c.GetHistory(context.Background(), HistoryOptions{
		Start:  DateOf(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		End:    DateString("2024-02-01"),
		Limit:  100,
		Symbol: "aapl",
	})
	require.NoError(t, err)

	query := broker.lastRequest(t).Query
	assert.Equal(t, "2024-01-02", query.Get("start"))
	assert.Equal(t, "2024-02-01", query.Get("end"))
	assert.Equal(t, "100", query.Get("limit"))
	// Symbols are upper-cased before transmission.
	assert.Equal(t, "AAPL", query.Get("symbol"))
}

func TestGetOrders(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{
		"orders": {
			"order": [
				{"id": 8248093, "symbol": "UNP", "status": "open", "price": 200.0},
				{"id": 8255194, "symbol": "CF", "status": "filled"}
			]
		}
	}`)
	c := newTestClient(broker)

	set, err := c.GetOrders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, float64(8248093), set.Value(0, "id"))
	// The second order has no price; union of columns with a missing marker.
	assert.Equal(t, record.Missing, set.Value(1, "price"))
}

func TestGetOrdersEmptyMarkers(t *testing.T) {
	// The broker signals "no orders" inconsistently; both forms must
	// surface as ErrEmptyResult.
	for _, body := range []string{`{"orders": "null"}`, `{"orders": null}`} {
		broker := newFakeBroker(t, http.StatusOK, body)
		c := newTestClient(broker)

		_, err := c.GetOrders(context.Background())
		assert.ErrorIs(t, err, ErrEmptyResult, "body %s", body)
	}
}

func TestGetOrder(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{"order": {"id": 8248093, "symbol": "UNP", "status": "open"}}`)
	c := newTestClient(broker)

	set, err := c.GetOrder(context.Background(), "8248093")
	require.NoError(t, err)

	assert.Equal(t, "/v1/accounts/ABC1234567/orders/8248093", broker.lastRequest(t).Path)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, "UNP", set.Value(0, "symbol"))
}

func TestGetOrderRequiresID(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, `{}`)
	c := newTestClient(broker)

	_, err := c.GetOrder(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, broker.requests)
}

const positionsBody = `{
	"positions": {
		"position": [
			{"symbol": "AAPL", "quantity": 10},
			{"symbol": "LMT240119C00260000", "quantity": 1}
		]
	}
}`

func TestGetPositionsUnfiltered(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, positionsBody)
	c := newTestClient(broker)

	set, err := c.GetPositions(context.Background(), PositionsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestGetPositionsEquitiesFilter(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, positionsBody)
	c := newTestClient(broker)

	set, err := c.GetPositions(context.Background(), PositionsOptions{Equities: true})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "AAPL", set.Value(0, "symbol"))
}

func TestGetPositionsOptionsFilter(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, positionsBody)
	c := newTestClient(broker)

	set, err := c.GetPositions(context.Background(), PositionsOptions{Options: true})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "LMT240119C00260000", set.Value(0, "symbol"))
}

func TestGetPositionsEquitiesWinsOverOptions(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, positionsBody)
	c := newTestClient(broker)

	set, err := c.GetPositions(context.Background(), PositionsOptions{Equities: true, Options: true})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "AAPL", set.Value(0, "symbol"))
}

func TestGetPositionsSymbolFilter(t *testing.T) {
	broker := newFakeBroker(t, http.StatusOK, positionsBody)
	c := newTestClient(broker)

	set, err := c.GetPositions(context.Background(), PositionsOptions{Symbols: []string{"AAPL"}})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "AAPL", set.Value(0, "symbol"))
}

func TestGetPositionsSinglePositionObject(t *testing.T) {
	// A single position comes back as an object, not a one-element array.
	broker := newFakeBroker(t, http.StatusOK, `{
		"positions": {"position": {"symbol": "TXN", "quantity": 100}}
	}`)
	c := newTestClient(broker)

	set, err := c.GetPositions(context.Background(), PositionsOptions{})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "TXN", set.Value(0, "symbol"))
}
