package releasefetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/reactome/releasefetch/log"
)

const (
	// DefaultTimeout bounds connecting to a source and waiting for its response headers.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the number of times a download is reissued after a connect timeout.
	DefaultRetries = 1

	lockRetryDelay = 250 * time.Millisecond
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/data_retriever.go . DataRetriever

// DataRetriever is a pipeline step that makes one external data file available locally.
type DataRetriever interface {
	// FetchData downloads the data file unless a fresh enough copy already exists.
	// Calling it again while the local copy is still fresh performs no network I/O.
	FetchData(ctx context.Context) error
	SetFetchDestination(destination string)
	SetDataURL(uri *url.URL)
	SetMaxAge(age time.Duration)
	SetRetrieverName(name string)
}

// FileRetriever retrieves a single data file over HTTP(S) or FTP.
// It is not safe for concurrent use; use one retriever per source.
type FileRetriever struct {
	name        string
	source      *url.URL
	destination string
	maxAge      time.Duration
	timeout     time.Duration
	retries     int
	passiveFTP  bool
	credentials *Credentials

	logger    log.Logger
	transport http.RoundTripper
	ftpDialer FTPDialer
	resolver  URLResolver
	lockPath  string
	now       func() time.Time

	// resolvedURL is the download URL the resolver produced during the last fetch.
	resolvedURL *url.URL
}

var _ DataRetriever = (*FileRetriever)(nil)

// NewFileRetriever creates a retriever configured by the given options.
// Source and destination may be provided later through the setters, they are
// only required when FetchData runs.
//
// Example:
//
//	retriever, err := releasefetch.NewFileRetriever(
//	    releasefetch.WithName("uniprot"),
//	    releasefetch.WithSource("https://ftp.uniprot.org/pub/uniprot.xml.gz"),
//	    releasefetch.WithDestination("/data/uniprot.xml.gz"),
//	    releasefetch.WithMaxAge(24*time.Hour),
//	)
//	if err != nil {
//	    return err
//	}
//	err = retriever.FetchData(ctx)
func NewFileRetriever(options ...Option) (*FileRetriever, error) {
	r := &FileRetriever{
		timeout:   DefaultTimeout,
		retries:   DefaultRetries,
		logger:    log.Noop(),
		ftpDialer: DialFTP,
		now:       time.Now,
	}

	for _, option := range options {
		if option == nil { // allow for easy optional options
			continue
		}
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// SetFetchDestination changes the local path the source is written to.
func (r *FileRetriever) SetFetchDestination(destination string) { r.destination = destination }

// SetDataURL changes the source. A nil URL makes FetchData fail validation.
func (r *FileRetriever) SetDataURL(uri *url.URL) { r.source = uri }

// SetMaxAge changes how old the destination may be before it is downloaded
// again. Zero means it is always downloaded.
func (r *FileRetriever) SetMaxAge(age time.Duration) { r.maxAge = age }

// SetRetrieverName changes the name attached to every log line.
func (r *FileRetriever) SetRetrieverName(name string) { r.name = name }

// SetTimeout changes the connect timeout. Non-positive values are ignored.
func (r *FileRetriever) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		r.timeout = timeout
	}
}

// SetRetries changes the retry budget. Negative values are treated as zero.
func (r *FileRetriever) SetRetries(retries int) {
	r.retries = max(retries, 0)
}

// SetPassiveFTP switches FTP transfers between passive and active mode.
func (r *FileRetriever) SetPassiveFTP(passive bool) { r.passiveFTP = passive }

// SetCredentials changes the username and password used for the source.
func (r *FileRetriever) SetCredentials(username, password string) {
	r.credentials = &Credentials{Username: username, Password: password}
}

// Name returns the retriever name used in log lines.
func (r *FileRetriever) Name() string { return r.name }

// DataURL returns the configured source, before any URL resolver runs.
func (r *FileRetriever) DataURL() *url.URL { return r.source }

// Destination returns the local path the source is written to.
func (r *FileRetriever) Destination() string { return r.destination }

// MaxAge returns how old the destination may be before it is downloaded again.
func (r *FileRetriever) MaxAge() time.Duration { return r.maxAge }

// Timeout returns the connect timeout, DefaultTimeout unless changed.
func (r *FileRetriever) Timeout() time.Duration { return r.timeout }

// Retries returns how many times a timed out connection is retried.
func (r *FileRetriever) Retries() int { return r.retries }

// PassiveFTP reports whether FTP transfers use passive mode.
func (r *FileRetriever) PassiveFTP() bool { return r.passiveFTP }

// ResolvedURL returns the URL produced by the URL resolver during the most
// recent fetch, or nil if no resolver ran.
func (r *FileRetriever) ResolvedURL() *url.URL { return r.resolvedURL }

// FetchData checks the destination and downloads the source when the
// destination is missing or older than the configured max age. The
// destination is checked again afterwards; a missing file is an error.
func (r *FileRetriever) FetchData(ctx context.Context) error {
	if err := r.validate(); err != nil {
		return err
	}

	logger := log.With(log.FromContext(ctx, r.logger), "retriever", r.name)

	if r.lockPath != "" {
		unlock, err := r.lock(ctx)
		if err != nil {
			return err
		}
		defer unlock()
	}

	stale, err := r.isStale(logger)
	if err != nil {
		return err
	}

	if stale {
		if err := r.download(ctx, logger); err != nil {
			logger.Error("Error performing download", "destination", r.destination, "error", err)
			return err
		}
		logger.Debug("Download is complete", "destination", r.destination)
	}

	return r.verifyOutput(logger)
}

func (r *FileRetriever) validate() error {
	if r.source == nil {
		return &InvalidConfigError{Field: "source", Reason: "a URI from which the file will be downloaded must be provided"}
	}
	if strings.TrimSpace(r.destination) == "" {
		return &InvalidConfigError{Field: "destination", Reason: "a destination to which the file will be downloaded must be provided"}
	}

	return nil
}

func (r *FileRetriever) lock(ctx context.Context) (func(), error) {
	fileLock := flock.New(r.lockPath)
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, NewRetrievalFailureError("acquire lock", r.destination, err)
	}
	if !locked {
		return nil, NewRetrievalFailureError("acquire lock", r.destination, fmt.Errorf("lock %s is held elsewhere", r.lockPath))
	}

	return func() { _ = fileLock.Unlock() }, nil
}

// isStale reports whether the destination has to be downloaded.
func (r *FileRetriever) isStale(logger log.Logger) (bool, error) {
	info, err := os.Stat(r.destination)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("File does not exist and must be downloaded", "destination", r.destination)
		return true, nil
	}
	if err != nil {
		return false, NewRetrievalFailureError("stat destination", r.destination, err)
	}

	created := creationTime(r.destination, info)
	if r.now().Sub(created) > r.maxAge {
		logger.Debug("File is older than allowed amount so it will be downloaded again",
			"destination", r.destination, "maxAge", r.maxAge, "created", created)
		return true, nil
	}

	logger.Debug("File is not older than allowed amount so it will not be downloaded",
		"destination", r.destination, "maxAge", r.maxAge, "created", created)
	return false, nil
}

func (r *FileRetriever) download(ctx context.Context, logger log.Logger) error {
	source := r.source
	scheme := strings.ToLower(source.Scheme)
	logger.Debug("Scheme", "scheme", scheme)

	switch scheme {
	case "http", "https", "ftp", "sftp":
	default:
		return &UnsupportedSchemeError{URI: source.String(), Scheme: source.Scheme}
	}
	// URL resolvers answer over HTTP only.
	if r.resolver != nil && scheme != "http" && scheme != "https" {
		logger.Error("A resolved download needs an http or https source", "source", source.Redacted())
		return &UnsupportedSchemeError{URI: source.String(), Scheme: source.Scheme}
	}

	if err := r.createParentDirectory(); err != nil {
		logger.Error("Unable to create parent directory of download destination", "destination", r.destination, "error", err)
		return err
	}

	fetcher := r.httpFetcher(logger)

	if r.resolver != nil {
		resolved, err := r.resolver.ResolveURL(ctx, fetcher, source)
		if err != nil {
			logger.Warn("The download URL was not resolved, so file download was not attempted", "source", source.Redacted())
			return err
		}
		r.resolvedURL = resolved

		switch strings.ToLower(resolved.Scheme) {
		case "http", "https":
			return fetcher.DownloadWithoutCredentials(ctx, resolved, r.destination)
		default:
			return &UnsupportedSchemeError{URI: resolved.Redacted(), Scheme: resolved.Scheme}
		}
	}

	if scheme == "http" || scheme == "https" {
		return fetcher.Download(ctx, source, r.destination)
	}

	return r.downloadFTP(ctx, logger)
}

func (r *FileRetriever) createParentDirectory() error {
	if err := os.MkdirAll(filepath.Dir(r.destination), 0o755); err != nil {
		return NewRetrievalFailureError("create parent directory", r.destination, err)
	}
	return nil
}

func (r *FileRetriever) httpFetcher(logger log.Logger) *HTTPFetcher {
	return NewHTTPFetcher(HTTPConfig{
		Timeout:     r.timeout,
		Retries:     r.retries,
		Credentials: r.credentials,
		Transport:   r.transport,
		Logger:      logger,
	})
}

// verifyOutput logs basic stats of the destination after a fetch.
func (r *FileRetriever) verifyOutput(logger log.Logger) error {
	info, err := os.Stat(r.destination)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Error("File still does not exist after executing the file retriever", "destination", r.destination)
		return NewRetrievalFailureError("verify output", r.destination, ErrOutputMissing)
	}
	if err != nil {
		logger.Error("File is not readable", "destination", r.destination, "error", err)
		return nil
	}

	f, err := os.Open(r.destination)
	if err != nil {
		logger.Error("File is not readable", "destination", r.destination, "error", err)
		return nil
	}
	_ = f.Close()

	logger.Info("File info",
		"name", r.destination,
		"size", info.Size(),
		"created", creationTime(r.destination, info),
		"modified", info.ModTime(),
	)
	return nil
}
