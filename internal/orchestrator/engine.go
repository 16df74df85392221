package orchestrator

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/ytkit/ytkit/internal/innertube"
	"github.com/ytkit/ytkit/internal/playability"
)

// Logger receives non-fatal diagnostics (unclassified reasons,
// exhausted fallbacks).
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// Engine issues Innertube calls with per-attempt timeout, bounded
// retry and a single-step client-context fallback. It holds no mutable
// state: abandoning a pending call leaves nothing to roll back.
type Engine struct {
	client *http.Client
	config innertube.Config
	logger Logger
}

func NewEngine(config innertube.Config, logger Logger) *Engine {
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{client: client, config: config, logger: logger}
}

// Call posts the payload to an endpoint under the given context and
// returns the raw response body. Transport failures are retried with
// the same context up to the attempt ceiling; non-retryable statuses
// surface immediately.
func (e *Engine) Call(ctx context.Context, endpoint innertube.Endpoint, payload any, profile innertube.ClientContext) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	attempts := e.config.Attempts()
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if limiter := e.config.RateLimit; limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		respBody, status, err := e.attempt(ctx, endpoint, body, profile)
		if err != nil {
			if ctx.Err() != nil {
				// Caller abandoned the call; not a retryable condition.
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if status < 200 || status > 299 {
			if e.config.ShouldRetryStatus(status) {
				lastErr = &HTTPStatusError{Endpoint: endpoint, StatusCode: status}
				continue
			}
			return nil, &HTTPStatusError{Endpoint: endpoint, StatusCode: status}
		}
		return respBody, nil
	}
	return nil, &TransportError{Endpoint: endpoint, Attempts: attempts, Err: lastErr}
}

func (e *Engine) attempt(ctx context.Context, endpoint innertube.Endpoint, body []byte, profile innertube.ClientContext) ([]byte, int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, e.config.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint.URL(e.config.BaseURL), bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	e.setHeaders(req, profile)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := decodeBody(resp)
	if err != nil {
		return nil, 0, err
	}
	return respBody, resp.StatusCode, nil
}

func (e *Engine) setHeaders(req *http.Request, profile innertube.ClientContext) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", profile.UserAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("Origin", "https://www.youtube.com")
	req.Header.Set("Referer", "https://www.youtube.com/")
	// Pre-set EU consent so responses are not consent interstitials.
	req.Header.Set("Cookie", "SOCS=CAI")
	for k, values := range e.config.RequestHeaders {
		for _, v := range values {
			req.Header.Set(k, v)
		}
	}
}

// decodeBody honors the Content-Encoding we advertise. The stdlib only
// transparently decodes gzip when it negotiated it itself.
func decodeBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = brotli.NewReader(resp.Body)
	}
	return io.ReadAll(reader)
}

// Player fetches the /player response for a video. When the primary
// context hits an embed-resolvable gate, the same logical call is
// retried exactly once with the embedded fallback context; the policy
// never cascades further. Domain failures are classified once and
// never retried.
func (e *Engine) Player(ctx context.Context, videoID string, profile innertube.ClientContext) (*innertube.PlayerResponse, error) {
	resp, err := e.playerOnce(ctx, videoID, profile)
	if err != nil {
		return nil, err
	}
	if resp.PlayabilityStatus.IsOK() {
		return resp, nil
	}

	status := playability.Classify(resp.PlayabilityStatus.Status, resp.PlayabilityStatus.Reason)
	if status.EmbedResolvable() {
		if fallback, ok := innertube.FallbackFor(profile); ok {
			fbResp, fbErr := e.playerOnce(ctx, videoID, fallback)
			if fbErr == nil && fbResp.PlayabilityStatus.IsOK() {
				return fbResp, nil
			}
			if fbErr == nil {
				status = playability.Classify(fbResp.PlayabilityStatus.Status, fbResp.PlayabilityStatus.Reason)
			} else {
				e.logger.Warnf("fallback context %s failed: %v", fallback.ID, fbErr)
			}
		}
	}

	if status.Category == playability.Unclassified {
		e.logger.Warnf("unclassified playability reason %q (status %s)", status.Raw, status.Code)
	}
	return nil, &playability.Error{Status: status}
}

func (e *Engine) playerOnce(ctx context.Context, videoID string, profile innertube.ClientContext) (*innertube.PlayerResponse, error) {
	body, err := e.Call(ctx, innertube.EndpointPlayer, innertube.NewPlayerRequest(profile, videoID), profile)
	if err != nil {
		return nil, err
	}
	var resp innertube.PlayerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &SchemaError{Endpoint: innertube.EndpointPlayer, Err: err}
	}
	if resp.PlayabilityStatus.Status == "" {
		return nil, &SchemaError{Endpoint: innertube.EndpointPlayer, Err: errMissingPlayability}
	}
	return &resp, nil
}

// Browse posts a /browse payload (first page or continuation) and
// decodes it. The retry/fallback policy for data endpoints is the
// transport retry in Call only: listing gates are not embed-resolvable.
func (e *Engine) Browse(ctx context.Context, req *innertube.BrowseRequest, profile innertube.ClientContext) (*innertube.BrowseResponse, error) {
	body, err := e.Call(ctx, innertube.EndpointBrowse, req, profile)
	if err != nil {
		return nil, err
	}
	var resp innertube.BrowseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &SchemaError{Endpoint: innertube.EndpointBrowse, Err: err}
	}
	return &resp, nil
}

// Next posts a /next payload (watch-next sidebar) and decodes the
// slice of it the related-videos surface consumes.
func (e *Engine) Next(ctx context.Context, videoID string, profile innertube.ClientContext) (*innertube.NextResponse, error) {
	body, err := e.Call(ctx, innertube.EndpointNext, innertube.NewNextRequest(profile, videoID), profile)
	if err != nil {
		return nil, err
	}
	var resp innertube.NextResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &SchemaError{Endpoint: innertube.EndpointNext, Err: err}
	}
	return &resp, nil
}
