package releasefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/reactome/releasefetch/log"
	"github.com/reactome/releasefetch/retry"
)

const defaultUserAgent = "releasefetch/1"

// HTTPConfig configures an HTTPFetcher.
type HTTPConfig struct {
	// Timeout applies to dialing, the TLS handshake and waiting for response
	// headers. Reading the body is not limited. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Retries is the number of times Download is reissued after a connect timeout.
	Retries int
	// Credentials, when set, are sent as a Basic Authorization header.
	Credentials *Credentials
	// Transport replaces the default transport. Timeout is ignored when set.
	Transport http.RoundTripper
	UserAgent string
	Logger    log.Logger
}

// HTTPFetcher issues GET requests for a retriever.
// Every operation has a variant that never sends the configured credentials.
type HTTPFetcher struct {
	client      *http.Client
	credentials *Credentials
	retries     int
	userAgent   string
	logger      log.Logger
}

// NewHTTPFetcher creates an HTTPFetcher from cfg.
func NewHTTPFetcher(cfg HTTPConfig) *HTTPFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = newTransport(cfg.Timeout)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Noop()
	}

	return &HTTPFetcher{
		// No client-wide timeout: it would also cut off large bodies mid-transfer.
		client:      &http.Client{Transport: cfg.Transport},
		credentials: cfg.Credentials,
		retries:     max(cfg.Retries, 0),
		userAgent:   cfg.UserAgent,
		logger:      cfg.Logger,
	}
}

func newTransport(timeout time.Duration) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout

	return transport
}

// Open sends an authenticated GET request. The caller must close the response body.
// Failures before a response arrives are returned as *TransportError.
func (f *HTTPFetcher) Open(ctx context.Context, u *url.URL) (*http.Response, error) {
	return f.open(ctx, u, f.credentials)
}

// OpenWithoutCredentials is Open without the Authorization header.
func (f *HTTPFetcher) OpenWithoutCredentials(ctx context.Context, u *url.URL) (*http.Response, error) {
	return f.open(ctx, u, nil)
}

// Content sends an authenticated GET request and returns the status code and the whole body.
func (f *HTTPFetcher) Content(ctx context.Context, u *url.URL) (int, []byte, error) {
	return f.content(ctx, u, f.credentials)
}

// ContentWithoutCredentials is Content without the Authorization header.
func (f *HTTPFetcher) ContentWithoutCredentials(ctx context.Context, u *url.URL) (int, []byte, error) {
	return f.content(ctx, u, nil)
}

// Download writes the body of an authenticated GET request to destination,
// whatever the response status. Connect timeouts are retried straight away
// until the retry budget is spent.
func (f *HTTPFetcher) Download(ctx context.Context, u *url.URL, destination string) error {
	return f.download(ctx, u, destination, f.credentials)
}

// DownloadWithoutCredentials is Download without the Authorization header.
func (f *HTTPFetcher) DownloadWithoutCredentials(ctx context.Context, u *url.URL, destination string) error {
	return f.download(ctx, u, destination, nil)
}

func (f *HTTPFetcher) open(ctx context.Context, u *url.URL, credentials *Credentials) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, NewRetrievalFailureError("build request", "", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	credentials.authorize(req)

	res, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{
			Kind: classifyTransportError(err),
			URL:  u.Redacted(),
			Err:  err,
		}
	}

	return res, nil
}

func (f *HTTPFetcher) content(ctx context.Context, u *url.URL, credentials *Credentials) (int, []byte, error) {
	res, err := f.open(ctx, u, credentials)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, NewRetrievalFailureError("read response body", "", err)
	}

	return res.StatusCode, body, nil
}

func (f *HTTPFetcher) download(ctx context.Context, u *url.URL, destination string, credentials *Credentials) error {
	retrier := retry.NewImmediateRetrier(f.retries, IsConnectTimeout)

	err := retry.DoVoid(ctx, retrier, func(attempt int) error {
		err := f.downloadOnce(ctx, u, destination, credentials)
		f.logFailure(err, attempt)
		return err
	})

	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		return &RetriesExceededError{
			Destination: destination,
			Retries:     f.retries,
			Attempts:    exhausted.Attempts,
			Cause:       exhausted.Err,
		}
	}

	return err
}

func (f *HTTPFetcher) downloadOnce(ctx context.Context, u *url.URL, destination string, credentials *Credentials) error {
	res, err := f.open(ctx, u, credentials)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	f.logStatus(res)

	return writeFile(destination, res.Body)
}

func (f *HTTPFetcher) logStatus(res *http.Response) {
	switch {
	case res.StatusCode == http.StatusOK:
	case res.StatusCode >= 400 && res.StatusCode < 600:
		f.logger.Error("Response code was 4xx/5xx", "status", res.StatusCode, "statusLine", res.Status)
	default:
		f.logger.Warn("Response was not 200", "status", res.StatusCode, "statusLine", res.Status)
	}
}

func (f *HTTPFetcher) logFailure(err error, attempt int) {
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		return
	}

	switch transportErr.Kind {
	case FailureConnectTimeout:
		remaining := f.retries - attempt + 1
		if remaining > 0 {
			f.logger.Info("Failed due to connect timeout, but will retry", "remaining", remaining, "url", transportErr.URL)
		}
	case FailureUnreachable:
		f.logger.Error("Unable to connect", "url", transportErr.URL, "error", transportErr.Err)
	default:
		f.logger.Error("Request failed", "url", transportErr.URL, "error", transportErr.Err)
	}
}

// IsConnectTimeout reports whether err is a failure to establish a connection within the timeout.
func IsConnectTimeout(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr) && transportErr.Kind == FailureConnectTimeout
}

func classifyTransportError(err error) TransportFailure {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" && opErr.Timeout() {
		return FailureConnectTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return FailureUnreachable
	}

	return FailureOther
}

// writeFile streams body into a temporary file next to destination and
// renames it into place, so a failed transfer leaves the destination untouched.
func writeFile(destination string, body io.Reader) (err error) {
	dir, base := filepath.Split(destination)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.part")
	if err != nil {
		return NewRetrievalFailureError("create temporary file", destination, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, body); err != nil {
		return NewRetrievalFailureError("write destination", destination, err)
	}
	if err = tmp.Close(); err != nil {
		return NewRetrievalFailureError("write destination", destination, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return NewRetrievalFailureError("write destination", destination, err)
	}
	if err = os.Rename(tmp.Name(), destination); err != nil {
		return NewRetrievalFailureError("write destination", destination, fmt.Errorf("rename %s: %w", tmp.Name(), err))
	}

	return nil
}
