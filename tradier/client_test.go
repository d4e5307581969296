package tradier

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the fake broker saw on the wire.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Form   url.Values
}

// fakeBroker is an httptest server that records every request and answers
// with a canned body.
type fakeBroker struct {
	*httptest.Server
	status   int
	body     string
	requests []recordedRequest
}

func newFakeBroker(t *testing.T, status int, body string) *fakeBroker {
	t.Helper()

	b := &fakeBroker{status: status, body: body}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		}
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseForm())
			rec.Form = r.PostForm
		}
		b.requests = append(b.requests, rec)

		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.body))
	}))
	t.Cleanup(b.Server.Close)

	return b
}

func (b *fakeBroker) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	require.NotEmpty(t, b.requests)
	return b.requests[len(b.requests)-1]
}

func newTestClient(b *fakeBroker, opts ...Option) *Client {
	opts = append([]Option{WithBaseURL(b.URL)}, opts...)
	return New("ABC1234567", "test-token", opts...)
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := New("ABC1234567", "test-token")

		assert.Equal(t, "ABC1234567", c.AccountNumber())
		assert.Equal(t, EnvPaper, c.Environment())
		assert.Equal(t, sandboxURL, c.baseURL)
		assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
		assert.NotNil(t, c.logger)
	})

	t.Run("live environment", func(t *testing.T) {
		c := New("ABC1234567", "test-token", WithEnvironment(EnvLive))
		assert.Equal(t, EnvLive, c.Environment())
		assert.Equal(t, liveURL, c.baseURL)
	})

	t.Run("with timeout", func(t *testing.T) {
		c := New("ABC1234567", "test-token", WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		hc := &http.Client{Timeout: 10 * time.Second}
		c := New("ABC1234567", "test-token", WithHTTPClient(hc))
		assert.Same(t, hc, c.httpClient)
	})

	t.Run("with logger", func(t *testing.T) {
		logger := logrus.New()
		c := New("ABC1234567", "test-token", WithLogger(logger))
		assert.Equal(t, logrus.FieldLogger(logger), c.logger)
	})

	t.Run("base url override wins", func(t *testing.T) {
		c := New("ABC1234567", "test-token", WithEnvironment(EnvLive), WithBaseURL("http://localhost:1"))
		assert.Equal(t, "http://localhost:1", c.baseURL)
	})
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://sandbox.tradier.com", BaseURL(EnvPaper))
	assert.Equal(t, "https://api.tradier.com", BaseURL(EnvLive))
}
