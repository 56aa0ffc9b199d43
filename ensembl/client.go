package ensembl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/reactome/releasefetch/log"
	"github.com/reactome/releasefetch/retry"
)

// maxAttempts bounds a request sequence. The processor already ends every
// sequence sooner: at most MaxTimesToWait-1 waits plus TimeoutRetries-1
// gateway timeouts are retried before a terminal decision.
const maxAttempts = MaxTimesToWait + TimeoutRetries

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) error {
		if client == nil {
			return errors.New("httpClient is nil")
		}
		c.http = client
		return nil
	}
}

// WithClientLogger sets the logger of the client and of the processors it creates.
func WithClientLogger(logger log.Logger) ClientOption {
	return func(c *Client) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithClientQuota makes the client report to quota instead of DefaultQuota.
func WithClientQuota(quota *Quota) ClientOption {
	return func(c *Client) error {
		if quota == nil {
			return errors.New("quota cannot be nil")
		}
		c.quota = quota
		return nil
	}
}

// WithSleep replaces the function used to wait between attempts.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) ClientOption {
	return func(c *Client) error {
		if sleep == nil {
			return errors.New("sleep is nil")
		}
		c.sleep = sleep
		return nil
	}
}

// Client sends GET requests to the Ensembl REST service and honours its rate-limit signals.
type Client struct {
	http   *http.Client
	logger log.Logger
	quota  *Quota
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client. Without options it uses http.DefaultClient and DefaultQuota.
func NewClient(options ...ClientOption) (*Client, error) {
	c := &Client{
		http:   http.DefaultClient,
		logger: log.Noop(),
		quota:  DefaultQuota,
		sleep:  sleepContext,
	}

	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// retryDecision is the error a request attempt returns when the processor allows another attempt.
type retryDecision struct {
	result Result
}

func (d *retryDecision) Error() string {
	return fmt.Sprintf("status %d, retry after %s", d.result.Status, d.result.WaitTime)
}

// decisionRetrier retries exactly when the processor said so and waits as long as it said.
type decisionRetrier struct {
	sleep func(ctx context.Context, d time.Duration) error
	wait  time.Duration
}

func (r *decisionRetrier) ShouldRetry(ctx context.Context, err error, attempt int) bool {
	var decision *retryDecision
	if !errors.As(err, &decision) {
		return false
	}
	r.wait = decision.result.WaitTime
	return true
}

func (r *decisionRetrier) Wait(ctx context.Context, attempt int) error {
	return r.sleep(ctx, r.wait)
}

func (r *decisionRetrier) MaxAttempts() int {
	return maxAttempts
}

// Get requests rawURL until the processor reaches a terminal decision and returns it.
// Errors are only returned for transport failures, malformed headers or cancellation.
func (c *Client) Get(ctx context.Context, rawURL string) (Result, error) {
	logger := log.FromContext(ctx, c.logger)

	processor, err := NewResponseProcessor(WithLogger(logger), WithQuota(c.quota))
	if err != nil {
		return Result{}, err
	}

	retrier := &decisionRetrier{sleep: c.sleep}

	return retry.Do(ctx, retrier, func(attempt int) (Result, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return Result{}, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		res, err := c.http.Do(req)
		if err != nil {
			return Result{}, fmt.Errorf("request %s: %w", rawURL, err)
		}
		defer res.Body.Close()

		result, err := processor.Process(res)
		if err != nil {
			return Result{}, err
		}

		logger.Debug("Processed response", "attempt", attempt, "status", result.Status,
			"okToRetry", result.OkToRetry, "wait", result.WaitTime, "remaining", c.quota.Remaining())

		if result.OkToRetry {
			return result, &retryDecision{result: result}
		}
		return result, nil
	})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
