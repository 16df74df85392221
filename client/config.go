package client

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytkit/ytkit/internal/cookies"
	"github.com/ytkit/ytkit/internal/innertube"
)

// Config configures a Client. The zero value works.
type Config struct {
	// HTTPClient is used for every request. If nil a client is built,
	// honoring ProxyURL.
	HTTPClient *http.Client

	// ProxyURL routes requests through an HTTP/SOCKS proxy. Ignored
	// when HTTPClient is set.
	ProxyURL string

	// CookieFile is a Netscape cookies.txt export; when set, its
	// cookies are loaded into the HTTP client's jar so authenticated
	// sessions apply.
	CookieFile string

	// ClientID selects the Innertube identity profile ("web",
	// "android", "tv"). Empty means "web".
	ClientID string

	// RequestTimeout bounds a single request attempt.
	RequestTimeout time.Duration

	// MaxAttempts bounds transport retries per call.
	MaxAttempts int

	// RateLimit gates every outgoing request when set.
	RateLimit *rate.Limiter

	// RequestHeaders are merged into every API request.
	RequestHeaders http.Header

	// Logger receives warnings. Nil logs nothing.
	Logger Logger
}

func (c Config) toInnertubeConfig(httpClient *http.Client) innertube.Config {
	return innertube.Config{
		HTTPClient:     httpClient,
		RequestTimeout: c.RequestTimeout,
		MaxAttempts:    c.MaxAttempts,
		RateLimit:      c.RateLimit,
		RequestHeaders: c.RequestHeaders,
	}
}

func (c Config) buildHTTPClient() (*http.Client, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
		if c.ProxyURL != "" {
			proxyURL, err := url.Parse(c.ProxyURL)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy url: %w", err)
			}
			httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	if c.CookieFile != "" {
		f, err := os.Open(c.CookieFile)
		if err != nil {
			return nil, fmt.Errorf("open cookie file: %w", err)
		}
		defer f.Close()
		parsed, err := cookies.ParseNetscape(f)
		if err != nil {
			return nil, fmt.Errorf("parse cookie file: %w", err)
		}
		jar, err := cookies.Jar(parsed)
		if err != nil {
			return nil, fmt.Errorf("build cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return httpClient, nil
}
