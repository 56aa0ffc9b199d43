// Package ensembl interprets responses of the Ensembl REST service.
//
// The service signals an exhausted quota with a Retry-After header and
// reports what is left of the quota in X-RateLimit-Remaining. A
// ResponseProcessor turns every response into a Result that tells the caller
// whether, and after how long, the request may be sent again. Client runs
// that loop.
package ensembl

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/reactome/releasefetch/log"
)

const (
	// MaxTimesToWait is the number of Retry-After responses after which a request is given up.
	MaxTimesToWait = 5
	// TimeoutRetries is the number of 504 responses tolerated in a row.
	TimeoutRetries = 3

	headerRetryAfter         = "Retry-After"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
)

// ErrMalformedHeader is matched by MalformedHeaderError.
var ErrMalformedHeader = errors.New("malformed header")

// MalformedHeaderError reports a rate-limit header whose value cannot be interpreted.
type MalformedHeaderError struct {
	Header string
	Value  string
	Err    error
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed %s header %q: %v", e.Header, e.Value, e.Err)
}

func (e *MalformedHeaderError) Unwrap() error {
	return e.Err
}

func (e *MalformedHeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}

// Result is the decision taken for a single response.
type Result struct {
	Status int
	// Body is the response body for 200 and unexpected statuses, empty otherwise.
	Body      string
	OkToRetry bool
	// WaitTime is how long to wait before retrying. Zero unless the service asked to wait.
	WaitTime time.Duration
}

// ProcessorOption configures a ResponseProcessor.
type ProcessorOption func(*ResponseProcessor) error

// WithLogger sets the logger of the processor.
func WithLogger(logger log.Logger) ProcessorOption {
	return func(p *ResponseProcessor) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// WithQuota makes the processor report to quota instead of DefaultQuota.
func WithQuota(quota *Quota) ProcessorOption {
	return func(p *ResponseProcessor) error {
		if quota == nil {
			return errors.New("quota cannot be nil")
		}
		p.quota = quota
		return nil
	}
}

// WithClock replaces the clock used to turn an HTTP-date Retry-After into a duration.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *ResponseProcessor) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		p.now = now
		return nil
	}
}

// ResponseProcessor decides what to do with each response of one request sequence.
// The backoff multiplier and the 504 budget belong to the processor, the quota is shared.
// A ResponseProcessor is not safe for concurrent use.
type ResponseProcessor struct {
	logger log.Logger
	quota  *Quota
	now    func() time.Time

	waitMultiplier          int
	timeoutRetriesRemaining int
}

// NewResponseProcessor creates a processor with a multiplier of 1 and a full 504 budget.
func NewResponseProcessor(options ...ProcessorOption) (*ResponseProcessor, error) {
	p := &ResponseProcessor{
		logger:                  log.Noop(),
		quota:                   DefaultQuota,
		now:                     time.Now,
		waitMultiplier:          1,
		timeoutRetriesRemaining: TimeoutRetries,
	}

	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WaitMultiplier returns the factor applied to the next Retry-After value.
func (p *ResponseProcessor) WaitMultiplier() int { return p.waitMultiplier }

// TimeoutRetriesRemaining returns what is left of the 504 budget.
func (p *ResponseProcessor) TimeoutRetriesRemaining() int { return p.timeoutRetriesRemaining }

// Process reads res and returns the decision for it. The body is read but not closed.
// Process does not fail on HTTP error statuses, these are encoded in the Result.
// A Retry-After header that is neither a number of seconds nor an HTTP date
// yields a *MalformedHeaderError.
func (p *ResponseProcessor) Process(res *http.Response) (Result, error) {
	var (
		result Result
		err    error
	)

	if res.Header.Get(headerRetryAfter) != "" {
		result, err = p.processRetryAfter(res)
	} else {
		result = p.processStatus(res)
	}

	p.processRateLimitRemaining(res)

	return result, err
}

func (p *ResponseProcessor) processRetryAfter(res *http.Response) (Result, error) {
	p.logger.Debug("Service asked to wait", "status", res.Status, "headers", headerList(res.Header))

	wait, err := p.retryAfter(res.Header.Get(headerRetryAfter))
	if err != nil {
		return Result{Status: res.StatusCode}, err
	}

	p.logger.Warn("The server told us to wait, so we will wait before trying again",
		"retryAfter", wait, "multiplier", p.waitMultiplier)

	result := Result{
		Status:    res.StatusCode,
		WaitTime:  wait * time.Duration(p.waitMultiplier),
		OkToRetry: p.waitThresholdNotMet(),
	}
	if result.OkToRetry {
		p.waitMultiplier++
	}

	return result, nil
}

func (p *ResponseProcessor) waitThresholdNotMet() bool {
	if p.waitMultiplier >= MaxTimesToWait {
		p.logger.Error("Already waited the maximum number of times and still told to wait, this is the last attempt",
			"timesWaited", p.waitMultiplier)
		return false
	}
	return true
}

// retryAfter parses a Retry-After value given in seconds or as an HTTP date.
func (p *ResponseProcessor) retryAfter(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		if seconds < 0 {
			return 0, &MalformedHeaderError{Header: headerRetryAfter, Value: value, Err: errors.New("negative delay")}
		}
		return time.Duration(seconds) * time.Second, nil
	}

	when, err := http.ParseTime(value)
	if err != nil {
		return 0, &MalformedHeaderError{Header: headerRetryAfter, Value: value, Err: errors.New("neither a number of seconds nor an HTTP date")}
	}

	wait := when.Sub(p.now())
	if wait < 0 {
		return 0, nil
	}
	// Whole seconds, rounded up, like a numeric Retry-After.
	return time.Duration(math.Ceil(wait.Seconds())) * time.Second, nil
}

func (p *ResponseProcessor) processStatus(res *http.Response) Result {
	result := Result{Status: res.StatusCode}

	switch res.StatusCode {
	case http.StatusGatewayTimeout:
		p.logger.Error("Request timed out", "retriesRemaining", p.timeoutRetriesRemaining)
		p.timeoutRetriesRemaining--
		if p.timeoutRetriesRemaining > 0 {
			result.OkToRetry = true
		} else {
			p.logger.Error("No more retries remaining")
			p.timeoutRetriesRemaining = TimeoutRetries
		}
	case http.StatusOK:
		result.Body = p.readBody(res)
	case http.StatusNotFound:
		p.logger.Error("Response code 404 ('Not found') received", "status", res.Status)
	case http.StatusInternalServerError:
		p.logger.Error("Error 500 detected", "status", res.Status)
	case http.StatusBadRequest:
		// The body explains the mistake in the request; it is not data.
		p.logger.Debug("Response code was 400 ('Bad request')", "body", p.readBody(res))
	default:
		result.Body = p.readBody(res)
		p.logger.Info("Unexpected response", "status", res.Status)
	}

	return result
}

func (p *ResponseProcessor) processRateLimitRemaining(res *http.Response) {
	value := res.Header.Get(headerRateLimitRemaining)
	if value == "" {
		p.logger.Warn("No X-RateLimit-Remaining was returned",
			"status", res.Status,
			"headers", headerList(res.Header),
			"lastKnownRemaining", p.quota.Remaining())
		return
	}

	remaining, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		p.logger.Warn("Ignoring malformed X-RateLimit-Remaining",
			"value", value,
			"lastKnownRemaining", p.quota.Remaining())
		return
	}

	p.quota.set(remaining)
	if remaining%1000 == 0 {
		p.logger.Debug("Requests remaining", "remaining", remaining)
	}
}

func (p *ResponseProcessor) readBody(res *http.Response) string {
	if res.Body == nil {
		return ""
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		p.logger.Error("Could not read response body", "error", err)
		return ""
	}

	return string(body)
}

func headerList(header http.Header) []string {
	list := make([]string, 0, len(header))
	for name, values := range header {
		list = append(list, name+": "+strings.Join(values, ", "))
	}
	sort.Strings(list)
	return list
}
