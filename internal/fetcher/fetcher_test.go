package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	t.Parallel()

	var gotUA, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("payload"))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{})
	headers := http.Header{}
	headers.Set("Cookie", "k=v")
	resp, err := client.Get(context.Background(), Request{URL: srv.URL, Headers: headers})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []byte("payload"), resp.Body)
	require.Equal(t, DefaultUserAgent, gotUA)
	require.Equal(t, "k=v", gotCookie)
	require.Greater(t, resp.Duration, time.Duration(0))
}

func TestClient_GetNon2xxIsError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusServiceUnavailable} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", status)
		}))

		client := New(Config{})
		_, err := client.Get(context.Background(), Request{URL: srv.URL})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected status")
		require.Contains(t, err.Error(), strconv.Itoa(status))
		srv.Close()
	}
}

func TestClient_GetTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("late"))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{})
	start := time.Now()
	_, err := client.Get(context.Background(), Request{URL: srv.URL, Timeout: 100 * time.Millisecond})
	require.Error(t, err)
	require.Less(t, time.Since(start), time.Second)
}

func TestClient_GetContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("late"))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := New(Config{})
	_, err := client.Get(ctx, Request{URL: srv.URL})
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_GetUnreachableHost(t *testing.T) {
	t.Parallel()

	client := New(Config{Timeout: time.Second})
	_, err := client.Get(context.Background(), Request{URL: "http://127.0.0.1:1/icon.png"})
	require.Error(t, err)
}
