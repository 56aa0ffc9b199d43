package releasefetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/reactome/releasefetch/log"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/content_fetcher.go . ContentFetcher

// ContentFetcher reads a whole response. HTTPFetcher implements it.
type ContentFetcher interface {
	Content(ctx context.Context, u *url.URL) (int, []byte, error)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/url_resolver.go . URLResolver

// URLResolver turns the configured source into the URL the data file is downloaded from.
type URLResolver interface {
	ResolveURL(ctx context.Context, fetcher ContentFetcher, source *url.URL) (*url.URL, error)
}

// COSMICHandshake resolves the signed download URL of a COSMIC data file.
//
// COSMIC files cannot be downloaded in a single step. The source is first
// requested with the account credentials and answers with a small JSON
// document whose "url" field is a short-lived link to the real file.
type COSMICHandshake struct {
	Logger log.Logger
}

// ResolveURL performs the authenticated handshake request and returns the URL from its response.
// The handshake is not retried.
func (h *COSMICHandshake) ResolveURL(ctx context.Context, fetcher ContentFetcher, source *url.URL) (*url.URL, error) {
	logger := log.FromContext(ctx, h.Logger)

	status, body, err := fetcher.Content(ctx, source)
	if err != nil {
		logger.Error("Handshake request failed, probably caused by some network communication issue", "error", err)
		return nil, NewRetrievalFailureError("cosmic handshake", "", err)
	}

	if status != http.StatusOK {
		logger.Error("Non-200 response", "status", status, "statusText", http.StatusText(status))
		return nil, NewRetrievalFailureError("cosmic handshake", "", fmt.Errorf("got status code %d: %s", status, http.StatusText(status)))
	}

	if !gjson.ValidBytes(body) {
		return nil, NewRetrievalFailureError("cosmic handshake", "", errors.New("response is not valid JSON"))
	}

	field := gjson.GetBytes(body, "url")
	if !field.Exists() {
		return nil, NewRetrievalFailureError("cosmic handshake", "", errors.New(`response has no "url" field`))
	}
	if field.Type != gjson.String {
		return nil, NewRetrievalFailureError("cosmic handshake", "", fmt.Errorf(`"url" field is a %s, not a string`, field.Type))
	}

	downloadURL, err := url.Parse(field.String())
	if err != nil {
		logger.Error("The download URL might be malformed", "url", field.String(), "error", err)
		return nil, NewRetrievalFailureError("cosmic handshake", "", fmt.Errorf("parsing url: %w", err))
	}
	if downloadURL.Scheme == "" || downloadURL.Host == "" {
		return nil, NewRetrievalFailureError("cosmic handshake", "", fmt.Errorf("download URL %q is not absolute", field.String()))
	}

	logger.Info("COSMIC download URL has been set")
	return downloadURL, nil
}

// NewCOSMICRetriever creates a retriever for a COSMIC data file. Credentials
// are only sent with the handshake request; the file itself is downloaded
// without them.
func NewCOSMICRetriever(options ...Option) (*FileRetriever, error) {
	r, err := NewFileRetriever(options...)
	if err != nil {
		return nil, err
	}

	r.resolver = &COSMICHandshake{Logger: r.logger}
	return r, nil
}
