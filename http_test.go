package releasefetch_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactome/releasefetch"
	"github.com/reactome/releasefetch/log/mocks"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type dialTimeout struct{}

func (dialTimeout) Error() string   { return "i/o timeout" }
func (dialTimeout) Timeout() bool   { return true }
func (dialTimeout) Temporary() bool { return true }

// failingTransport fails every request with err and counts the attempts.
func failingTransport(attempts *atomic.Int32, err error) http.RoundTripper {
	return roundTripFunc(func(*http.Request) (*http.Response, error) {
		attempts.Add(1)
		return nil, err
	})
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func TestHTTPFetcher_Download(t *testing.T) {
	t.Parallel()

	t.Run("writes the body of a 200 response", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte("ID   P12345"))
		}))
		defer server.Close()

		destination := filepath.Join(t.TempDir(), "uniprot.dat")
		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{})

		require.NoError(t, fetcher.Download(context.Background(), mustParse(t, server.URL), destination))

		content, err := os.ReadFile(destination)
		require.NoError(t, err)
		require.Equal(t, "ID   P12345", string(content))
	})

	t.Run("writes the body of an error response and logs it", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not here"))
		}))
		defer server.Close()

		logger := &mocks.FakeLogger{}
		destination := filepath.Join(t.TempDir(), "missing.txt")
		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{Logger: logger})

		require.NoError(t, fetcher.Download(context.Background(), mustParse(t, server.URL), destination))

		content, err := os.ReadFile(destination)
		require.NoError(t, err)
		require.Equal(t, "not here", string(content))

		require.Equal(t, 1, logger.ErrorCallCount())
		msg, kv := logger.ErrorArgsForCall(0)
		require.Equal(t, "Response code was 4xx/5xx", msg)
		require.Contains(t, kv, http.StatusNotFound)
	})

	t.Run("warns about a non-error status other than 200", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		logger := &mocks.FakeLogger{}
		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{Logger: logger})

		require.NoError(t, fetcher.Download(context.Background(), mustParse(t, server.URL), filepath.Join(t.TempDir(), "empty")))
		require.Equal(t, 1, logger.WarnCallCount())
		require.Equal(t, 0, logger.ErrorCallCount())
	})

	t.Run("sends basic credentials", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "reactome", user)
			assert.Equal(t, "s3cret", password)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{
			Credentials: &releasefetch.Credentials{Username: "reactome", Password: "s3cret"},
		})

		require.NoError(t, fetcher.Download(context.Background(), mustParse(t, server.URL), filepath.Join(t.TempDir(), "f")))
	})

	t.Run("without credentials omits the authorization header", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{
			Credentials: &releasefetch.Credentials{Username: "reactome", Password: "s3cret"},
		})

		require.NoError(t, fetcher.DownloadWithoutCredentials(context.Background(), mustParse(t, server.URL), filepath.Join(t.TempDir(), "f")))
	})
}

func TestHTTPFetcher_DownloadRetries(t *testing.T) {
	t.Parallel()

	timeout := &net.OpError{Op: "dial", Net: "tcp", Err: dialTimeout{}}
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: &os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED}}

	tests := []struct {
		name         string
		retries      int
		err          error
		wantAttempts int32
		wantErr      error
		wantMessage  string
	}{
		{
			name:         "connect timeout with one retry",
			retries:      1,
			err:          timeout,
			wantAttempts: 2,
			wantErr:      releasefetch.ErrRetriesExceeded,
			wantMessage:  "number of retries (1) exceeded",
		},
		{
			name:         "connect timeout with three retries",
			retries:      3,
			err:          timeout,
			wantAttempts: 4,
			wantErr:      releasefetch.ErrRetriesExceeded,
			wantMessage:  "number of retries (3) exceeded",
		},
		{
			name:         "connect timeout without retries",
			retries:      0,
			err:          timeout,
			wantAttempts: 1,
			wantErr:      releasefetch.ErrRetriesExceeded,
			wantMessage:  "number of retries (0) exceeded",
		},
		{
			name:         "connection refused is not retried",
			retries:      3,
			err:          refused,
			wantAttempts: 1,
			wantErr:      releasefetch.ErrRetrievalFailure,
			wantMessage:  "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32
			destination := filepath.Join(t.TempDir(), "data")
			fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{
				Retries:   tt.retries,
				Transport: failingTransport(&attempts, tt.err),
			})

			err := fetcher.Download(context.Background(), mustParse(t, "http://data.example.org/file"), destination)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, releasefetch.ErrRetrieval)
			require.Contains(t, err.Error(), tt.wantMessage)
			require.Equal(t, tt.wantAttempts, attempts.Load())
			require.NoFileExists(t, destination)
		})
	}

	t.Run("recovers when a retry connects", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		transport := roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if attempts.Add(1) == 1 {
				return nil, timeout
			}
			rec := httptest.NewRecorder()
			_, _ = rec.WriteString("second time lucky")
			return rec.Result(), nil
		})

		destination := filepath.Join(t.TempDir(), "data")
		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{Retries: 1, Transport: transport})

		require.NoError(t, fetcher.Download(context.Background(), mustParse(t, "http://data.example.org/file"), destination))
		require.Equal(t, int32(2), attempts.Load())

		content, err := os.ReadFile(destination)
		require.NoError(t, err)
		require.Equal(t, "second time lucky", string(content))
	})

	t.Run("retries exceeded exposes the last cause", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{
			Retries:   2,
			Transport: failingTransport(&attempts, timeout),
		})

		err := fetcher.Download(context.Background(), mustParse(t, "http://data.example.org/file"), filepath.Join(t.TempDir(), "data"))

		var exceeded *releasefetch.RetriesExceededError
		require.ErrorAs(t, err, &exceeded)
		require.Equal(t, 2, exceeded.Retries)
		require.Equal(t, 3, exceeded.Attempts)
		require.True(t, releasefetch.IsConnectTimeout(exceeded.Cause))
	})
}

func TestHTTPFetcher_Content(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"url":"x"}`))
	}))
	defer server.Close()

	fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{
		Credentials: &releasefetch.Credentials{Username: "u", Password: "p"},
	})

	status, body, err := fetcher.Content(context.Background(), mustParse(t, server.URL))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"url":"x"}`, string(body))

	status, _, err = fetcher.ContentWithoutCredentials(context.Background(), mustParse(t, server.URL))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestHTTPFetcher_Open(t *testing.T) {
	t.Parallel()

	var seen []string
	transport := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = append(seen, req.Header.Get("Authorization"))
		return httptest.NewRecorder().Result(), nil
	})

	creds := releasefetch.Credentials{Username: "Aladdin", Password: "open sesame"}
	fetcher := releasefetch.NewHTTPFetcher(releasefetch.HTTPConfig{Credentials: &creds, Transport: transport})

	res, err := fetcher.Open(context.Background(), mustParse(t, "https://cancer.sanger.ac.uk/file"))
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	res, err = fetcher.OpenWithoutCredentials(context.Background(), mustParse(t, "https://cancer.sanger.ac.uk/file"))
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	require.Equal(t, []string{"Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", ""}, seen)
	require.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", creds.BasicAuthorization())
}
