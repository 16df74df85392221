package innertube

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Retry/timeout defaults. Both are configuration, not constants baked
// into call sites; deployments tune them per network.
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxAttempts    = 5
)

// Config holds the transport settings shared by every Innertube call.
type Config struct {
	// HTTPClient is the client used for making requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// BaseURL overrides the Innertube API root (tests, proxies).
	BaseURL string

	// RequestTimeout bounds a single attempt, not the whole call.
	RequestTimeout time.Duration

	// MaxAttempts bounds transport retries per logical call.
	MaxAttempts int

	// RetryStatusCodes are HTTP statuses retried like transport
	// failures. Empty means only 5xx.
	RetryStatusCodes []int

	// RateLimit gates every attempt when set.
	RateLimit *rate.Limiter

	// RequestHeaders are merged into every request.
	RequestHeaders http.Header
}

func (c Config) timeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return DefaultRequestTimeout
}

func (c Config) maxAttempts() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	return DefaultMaxAttempts
}

// Timeout returns the effective per-attempt timeout.
func (c Config) Timeout() time.Duration { return c.timeout() }

// Attempts returns the effective attempt ceiling.
func (c Config) Attempts() int { return c.maxAttempts() }

// ShouldRetryStatus reports whether an HTTP status is retried.
func (c Config) ShouldRetryStatus(code int) bool {
	if len(c.RetryStatusCodes) == 0 {
		return code >= 500
	}
	for _, rc := range c.RetryStatusCodes {
		if rc == code {
			return true
		}
	}
	return false
}
