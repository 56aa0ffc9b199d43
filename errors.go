package releasefetch

import (
	"errors"
	"fmt"
)

var (
	// ErrRetrieval matches every error produced while retrieving a data file.
	// Use it with errors.Is to tell retrieval problems apart from anything else.
	ErrRetrieval = errors.New("data retrieval failed")

	// ErrRetriesExceeded is returned when a connect timeout persisted through the whole retry budget.
	ErrRetriesExceeded = errors.New("retries exceeded")

	// ErrFTPTransfer is returned when an FTP server answered a transfer with a 5xx reply.
	ErrFTPTransfer = errors.New("ftp transfer failed")

	// ErrRetrievalFailure covers every other retrieval problem, such as a malformed
	// vendor handshake response or a destination that cannot be written.
	ErrRetrievalFailure = errors.New("retrieval failure")

	// ErrInvalidConfig is returned when a retriever is asked to fetch without a source URI or destination.
	ErrInvalidConfig = errors.New("invalid retriever configuration")

	// ErrUnsupportedScheme is returned for source URIs that are neither HTTP(S) nor FTP.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrOutputMissing is wrapped when the destination file does not exist after a fetch.
	ErrOutputMissing = errors.New("destination file does not exist after retrieval")
)

// RetriesExceededError provides structured information about a download that
// kept timing out while connecting until the retry budget was spent.
// It matches ErrRetriesExceeded and ErrRetrieval.
type RetriesExceededError struct {
	Destination string
	// Retries is the configured number of retries.
	Retries int
	// Attempts is the number of attempts made, Retries+1.
	Attempts int
	Cause    error
}

func (e *RetriesExceededError) Error() string {
	return fmt.Sprintf("connection timed out: number of retries (%d) exceeded, no further attempts will be made (destination %s): %v",
		e.Retries, e.Destination, e.Cause)
}

func (e *RetriesExceededError) Unwrap() error {
	return e.Cause
}

func (e *RetriesExceededError) Is(target error) bool {
	return target == ErrRetriesExceeded || target == ErrRetrieval
}

// FTPTransferError provides structured information about a 5xx FTP reply.
// It matches ErrFTPTransfer and ErrRetrieval.
type FTPTransferError struct {
	Code  int
	Reply string
}

func (e *FTPTransferError) Error() string {
	return fmt.Sprintf("5xx reply code detected (%d), reply string is: %s", e.Code, e.Reply)
}

func (e *FTPTransferError) Is(target error) bool {
	return target == ErrFTPTransfer || target == ErrRetrieval
}

// NewFTPTransferError creates a new FTPTransferError for the given reply.
func NewFTPTransferError(code int, reply string) *FTPTransferError {
	return &FTPTransferError{
		Code:  code,
		Reply: reply,
	}
}

// RetrievalFailureError provides structured information about a failed retrieval step.
// It matches ErrRetrievalFailure and ErrRetrieval.
type RetrievalFailureError struct {
	// Op names the step that failed, e.g. "cosmic handshake" or "create parent directory".
	Op          string
	Destination string
	Err         error
}

func (e *RetrievalFailureError) Error() string {
	if e.Destination != "" {
		return fmt.Sprintf("%s (destination %s): %v", e.Op, e.Destination, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RetrievalFailureError) Unwrap() error {
	return e.Err
}

func (e *RetrievalFailureError) Is(target error) bool {
	return target == ErrRetrievalFailure || target == ErrRetrieval
}

// NewRetrievalFailureError creates a new RetrievalFailureError.
func NewRetrievalFailureError(op, destination string, err error) *RetrievalFailureError {
	return &RetrievalFailureError{
		Op:          op,
		Destination: destination,
		Err:         err,
	}
}

// InvalidConfigError reports a retriever setting that must be provided before fetching.
// It matches ErrInvalidConfig and ErrRetrieval.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig || target == ErrRetrieval
}

// UnsupportedSchemeError reports a source URI whose scheme has no download strategy.
// It matches ErrUnsupportedScheme and ErrRetrieval.
type UnsupportedSchemeError struct {
	URI    string
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("URI %s uses an unsupported scheme: %q", e.URI, e.Scheme)
}

func (e *UnsupportedSchemeError) Is(target error) bool {
	return target == ErrUnsupportedScheme || target == ErrRetrieval
}

// TransportFailure is the closed set of reasons an HTTP request can fail before a response arrives.
type TransportFailure int

const (
	// FailureOther covers everything not classified below. It is not retried.
	FailureOther TransportFailure = iota
	// FailureConnectTimeout means no connection was established within the timeout. It is retried.
	FailureConnectTimeout
	// FailureUnreachable means the connection was refused, the host or network was
	// unreachable or the name did not resolve. It is not retried.
	FailureUnreachable
)

func (f TransportFailure) String() string {
	switch f {
	case FailureConnectTimeout:
		return "connect timeout"
	case FailureUnreachable:
		return "unreachable"
	default:
		return "other"
	}
}

// TransportError reports an HTTP request that failed before a response was received.
// It matches ErrRetrievalFailure and ErrRetrieval.
type TransportError struct {
	Kind TransportFailure
	URL  string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed (%s): %v", e.URL, e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrRetrievalFailure || target == ErrRetrieval
}
