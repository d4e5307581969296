package tradier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Lumiwealth/lumiwealth-tradier/record"
)

// fetch issues an HTTP GET to baseURL/endpoint with the given query
// parameters and returns the parsed response envelope. A non-nil headers
// argument replaces the default headers wholesale rather than merging.
func (c *Client) fetch(ctx context.Context, ep endpoint, query url.Values, headers http.Header, pathArgs ...any) (*record.Object, error) {
	fullURL := c.baseURL + "/" + ep.resolve(pathArgs...)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, headers)
}

// submit issues an HTTP POST with a form-encoded body. Same error contract
// as fetch. Present for write endpoints; the read operations never use it.
func (c *Client) submit(ctx context.Context, ep endpoint, form url.Values, headers http.Header, pathArgs ...any) (*record.Object, error) {
	fullURL := c.baseURL + "/" + ep.resolve(pathArgs...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, headers)
}

func (c *Client) do(req *http.Request, headers http.Header) (*record.Object, error) {
	if headers != nil {
		req.Header = headers.Clone()
	} else {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
		req.Header.Set("Accept", "application/json")
		if req.Method == http.MethodPost {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}

	log := c.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     req.Method,
		"path":       req.URL.Path,
	})
	log.Debug("tradier request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	log.WithField("status", resp.StatusCode).Debug("tradier response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	v, err := record.Decode(body)
	if err != nil {
		return nil, &MalformedResponseError{Body: body, Err: err}
	}

	obj, ok := v.(*record.Object)
	if !ok {
		return nil, &MalformedResponseError{
			Body: body,
			Err:  fmt.Errorf("top-level JSON value is %T, not an object", v),
		}
	}

	return obj, nil
}

// normalizeAt walks the documented key path into a response envelope and
// flattens whatever it finds there.
func normalizeAt(obj *record.Object, path ...string) (*record.Set, error) {
	v, err := record.Lookup(obj, path...)
	if err != nil {
		return nil, err
	}
	return record.Normalize(v)
}
