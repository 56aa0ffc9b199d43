package releasefetch

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/reactome/releasefetch/log"
)

// Option is a function that configures a FileRetriever during creation.
type Option func(*FileRetriever) error

// WithName sets the retriever name used in every log line.
func WithName(name string) Option {
	return func(r *FileRetriever) error {
		r.name = name
		return nil
	}
}

// WithSource parses rawURL and uses it as the source URI.
func WithSource(rawURL string) Option {
	return func(r *FileRetriever) error {
		if rawURL == "" {
			return errors.New("source URL cannot be empty")
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("parsing url: %w", err)
		}

		r.source = u
		return nil
	}
}

// WithDestination sets the local path the data file is written to.
func WithDestination(destination string) Option {
	return func(r *FileRetriever) error {
		r.destination = destination
		return nil
	}
}

// WithMaxAge sets how old the destination file may be before it is fetched again.
func WithMaxAge(age time.Duration) Option {
	return func(r *FileRetriever) error {
		if age < 0 {
			return errors.New("max age cannot be negative")
		}
		r.maxAge = age
		return nil
	}
}

// WithTimeout sets the connect, TLS handshake and response header timeout.
// Defaults to 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(r *FileRetriever) error {
		if timeout <= 0 {
			return errors.New("timeout must be positive")
		}
		r.timeout = timeout
		return nil
	}
}

// WithRetries sets how many times a download is reissued after a connect timeout.
// Defaults to 1.
func WithRetries(retries int) Option {
	return func(r *FileRetriever) error {
		if retries < 0 {
			return errors.New("retries cannot be negative")
		}
		r.retries = retries
		return nil
	}
}

// WithPassiveFTP makes FTP downloads use PASV instead of EPSV for the data connection.
func WithPassiveFTP(passive bool) Option {
	return func(r *FileRetriever) error {
		r.passiveFTP = passive
		return nil
	}
}

// WithCredentials configures the username and password sent to the source.
// HTTP requests carry them as a Basic Authorization header, FTP uses them to log in.
func WithCredentials(username, password string) Option {
	return func(r *FileRetriever) error {
		r.credentials = &Credentials{Username: username, Password: password}
		return nil
	}
}

// WithLogger configures the logger. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(r *FileRetriever) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		r.logger = logger
		return nil
	}
}

// WithHTTPTransport replaces the transport used for HTTP downloads.
// The configured timeouts only apply to the default transport.
func WithHTTPTransport(transport http.RoundTripper) Option {
	return func(r *FileRetriever) error {
		if transport == nil {
			return errors.New("transport is nil")
		}
		r.transport = transport
		return nil
	}
}

// WithFTPDialer replaces the function that opens FTP control connections.
func WithFTPDialer(dialer FTPDialer) Option {
	return func(r *FileRetriever) error {
		if dialer == nil {
			return errors.New("ftp dialer is nil")
		}
		r.ftpDialer = dialer
		return nil
	}
}

// WithURLResolver installs a pre-step that turns the configured source into
// the URL that is actually downloaded. The download then happens without credentials.
func WithURLResolver(resolver URLResolver) Option {
	return func(r *FileRetriever) error {
		r.resolver = resolver
		return nil
	}
}

// WithLockFile holds an exclusive file lock at path for the duration of every
// FetchData call, so retrievers in different processes sharing a destination
// do not download it at the same time.
func WithLockFile(path string) Option {
	return func(r *FileRetriever) error {
		if path == "" {
			return errors.New("lock file path cannot be empty")
		}
		r.lockPath = path
		return nil
	}
}

// WithClock replaces the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(r *FileRetriever) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		r.now = now
		return nil
	}
}
