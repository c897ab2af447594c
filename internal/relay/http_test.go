package relay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigsum/internal/decimal"
	"bigsum/internal/domain"
	"bigsum/internal/relay"
	"bigsum/internal/server"
	"bigsum/internal/services/sum"
)

func newRelay(t *testing.T) *relay.HTTP {
	t.Helper()
	srv := httptest.NewServer(server.New(sum.New(sum.Options{})).Handler())
	t.Cleanup(srv.Close)
	return relay.NewHTTP(srv.URL+"/", srv.Client())
}

func TestSum_RoundTrip(t *testing.T) {
	c := newRelay(t)

	res, err := c.Sum(context.Background(), "1,200", "1,500")
	require.NoError(t, err)
	assert.Equal(t, domain.Result{Sum: "2,700", Grouped: true}, res)

	res, err = c.Sum(context.Background(), "100", "200")
	require.NoError(t, err)
	assert.Equal(t, domain.Result{Sum: "300"}, res)
}

func TestSum_InvalidOperandMapsToSentinel(t *testing.T) {
	c := newRelay(t)

	_, err := c.Sum(context.Background(), "1.5", "1")
	require.ErrorIs(t, err, decimal.ErrInvalidDigitSequence)
}

func TestSum_ServerErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := relay.NewHTTP(srv.URL, nil).Sum(context.Background(), "1", "2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, decimal.ErrInvalidDigitSequence)
	assert.Contains(t, err.Error(), "502")
}

func TestHealth(t *testing.T) {
	require.NoError(t, newRelay(t).Health(context.Background()))
}

func TestSum_ContextDeadline(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := relay.NewHTTP(srv.URL, srv.Client()).Sum(ctx, "1", "2")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
