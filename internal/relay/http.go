package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bigsum/internal/decimal"
	"bigsum/internal/domain"
)

// HTTP is a RelayClient backed by a bigsumd instance.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil client means http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Sum asks the relay to add a and b.
func (c *HTTP) Sum(ctx context.Context, a, b string) (domain.Result, error) {
	var out domain.Result
	if err := c.post(ctx, "/sum", domain.SumRequest{A: a, B: b}, &out); err != nil {
		return domain.Result{}, err
	}
	return out, nil
}

// Health checks that the relay is reachable and serving.
func (c *HTTP) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay get %s: %s", req.URL, resp.Status)
	}
	return nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(req, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError turns a non-2xx response into an error. 400 responses wrap
// decimal.ErrInvalidDigitSequence so callers see the same error remotely as
// they would locally.
func statusError(req *http.Request, resp *http.Response) error {
	var body domain.ErrorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
	if resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("relay %s %s: %s: %w", req.Method, req.URL, body.Error, decimal.ErrInvalidDigitSequence)
	}
	if body.Error != "" {
		return fmt.Errorf("relay %s %s: %s: %s", req.Method, req.URL, resp.Status, body.Error)
	}
	return fmt.Errorf("relay %s %s: %s", req.Method, req.URL, resp.Status)
}

var _ domain.RelayClient = (*HTTP)(nil)
