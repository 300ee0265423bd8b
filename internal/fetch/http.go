package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bdentino/compose-addons/internal/compose"
)

// newHTTPClient builds the http(s) transport from the fetch config.
func newHTTPClient(cfg Config) (*http.Client, error) {
	tlsConfig := &tls.Config{InsecureSkipVerify: !cfg.VerifySSLCert}

	if cfg.SSLCert != "" {
		cert, err := tls.LoadX509KeyPair(cfg.SSLCert, cfg.SSLCert)
		if err != nil {
			return nil, fmt.Errorf("load client certificate %s: %w", cfg.SSLCert, err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	proxy := http.ProxyFromEnvironment
	if len(cfg.Proxies) > 0 {
		proxies := make(map[string]*url.URL, len(cfg.Proxies))
		for scheme, proxyURL := range cfg.Proxies {
			u, err := url.Parse(proxyURL)
			if err != nil {
				return nil, fmt.Errorf("parse proxy url %s: %w", proxyURL, err)
			}
			proxies[scheme] = u
		}
		proxy = func(req *http.Request) (*url.URL, error) {
			if u, ok := proxies[req.URL.Scheme]; ok {
				return u, nil
			}
			return http.ProxyFromEnvironment(req)
		}
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
			Proxy:           proxy,
		},
	}, nil
}

// fetchHTTP issues a GET for loc and parses the response body. Any
// transport failure or non-2xx status is surfaced as a fetch Error
// carrying the URL; there are no retries.
func (f *Fetcher) fetchHTTP(ctx context.Context, loc Location) (compose.Document, error) {
	target := loc.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{URL: target, Err: err}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{URL: target, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	return compose.Read(resp.Body)
}
