package tradier

import (
	"fmt"
	"net/http"
)

// endpoint describes one API operation: an HTTP method plus a path template.
// Templates may embed the account number and/or a resource identifier.
// Descriptors are fixed at init and never mutated.
type endpoint struct {
	method string
	path   string
}

func (e endpoint) resolve(args ...any) string {
	if len(args) == 0 {
		return e.path
	}
	return fmt.Sprintf(e.path, args...)
}

// Endpoint catalog, all under the v1 path prefix.
var (
	// Account data
	epProfile   = endpoint{http.MethodGet, "v1/user/profile"}
	epBalances  = endpoint{http.MethodGet, "v1/accounts/%s/balances"}
	epGainLoss  = endpoint{http.MethodGet, "v1/accounts/%s/gainloss"}
	epHistory   = endpoint{http.MethodGet, "v1/accounts/%s/history"}
	epPositions = endpoint{http.MethodGet, "v1/accounts/%s/positions"}
	epOrders    = endpoint{http.MethodGet, "v1/accounts/%s/orders"}
	epOrder     = endpoint{http.MethodGet, "v1/accounts/%s/orders/%s"}

	// Market data
	epQuotes        = endpoint{http.MethodGet, "v1/markets/quotes"}
	epQuotesHistory = endpoint{http.MethodGet, "v1/markets/history"}
	epTimeSales     = endpoint{http.MethodGet, "v1/markets/timesales"}
	epSearch        = endpoint{http.MethodGet, "v1/markets/search"}
)
