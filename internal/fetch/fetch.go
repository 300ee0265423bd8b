// Package fetch retrieves compose documents from file, http(s), and s3
// sources. It is the only part of the resolver that touches a transport;
// everything above it sees parsed documents or one of two error kinds.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bdentino/compose-addons/internal/compose"
)

// DefaultTimeout bounds remote fetches when no override is given.
const DefaultTimeout = 20 * time.Second

// Config carries the options consumed by the remote transports. The file
// transport ignores it.
type Config struct {
	// Timeout bounds each http(s) request.
	Timeout time.Duration

	// VerifySSLCert rejects invalid TLS certificates when true.
	VerifySSLCert bool

	// SSLCert is an optional path to a PEM file holding a client
	// certificate and key for mutual TLS.
	SSLCert string

	// Proxies maps a URL scheme to a proxy URL, overriding the
	// environment's proxy settings for that scheme.
	Proxies map[string]string
}

// DefaultConfig returns the fetch defaults: 20 second timeout, TLS
// verification on, no client cert, environment proxy settings.
func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		VerifySSLCert: true,
	}
}

// UnsupportedSchemeError reports an include reference whose scheme
// matches no known transport.
type UnsupportedSchemeError struct {
	Scheme    string
	Reference string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported url scheme %q for %s", e.Scheme, e.Reference)
}

// Error reports a transport-level retrieval failure: network errors,
// timeouts, non-success HTTP statuses, missing buckets or objects. It is
// terminal; no retry is attempted anywhere.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to include %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher dispatches located references to their transport.
type Fetcher struct {
	cfg        Config
	httpClient *http.Client
}

// New builds a Fetcher from cfg, constructing the shared HTTP client up
// front so every request sees the same timeout, TLS, and proxy settings.
func New(cfg Config) (*Fetcher, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	client, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Fetcher{cfg: cfg, httpClient: client}, nil
}

// Fetch retrieves and parses the document at loc. File documents come
// back with their relative paths already resolved against the file's own
// directory; remote documents are returned as parsed.
func (f *Fetcher) Fetch(ctx context.Context, loc Location) (compose.Document, error) {
	switch loc.Scheme {
	case SchemeFile:
		return fetchFile(loc)
	case SchemeHTTP, SchemeHTTPS:
		return f.fetchHTTP(ctx, loc)
	case SchemeS3:
		return fetchS3(ctx, loc)
	default:
		return nil, &UnsupportedSchemeError{Scheme: loc.Scheme, Reference: loc.String()}
	}
}
