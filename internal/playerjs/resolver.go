package playerjs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Resolver locates and fetches the player script backing a video and
// exposes it as a parsed Asset.
type Resolver interface {
	PlayerPath(ctx context.Context, videoID string) (string, error)
	Asset(ctx context.Context, playerPath string) (*Asset, error)
}

// ResolverConfig holds externally tunable settings for player script
// fetches.
type ResolverConfig struct {
	BaseURL   string
	UserAgent string
	Headers   http.Header
}

const defaultPlayerBaseURL = "https://www.youtube.com"
const defaultPlayerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var playerPathPattern = regexp.MustCompile(`(/s/player/[A-Za-z0-9_-]+/[A-Za-z0-9._/-]*base\.js)`)

type httpResolver struct {
	client *http.Client
	cache  *AssetCache
	config ResolverConfig
}

func NewResolver(client *http.Client, cache *AssetCache, cfg ...ResolverConfig) Resolver {
	config := ResolverConfig{}
	if len(cfg) > 0 {
		config = cfg[0]
	}
	return &httpResolver{client: client, cache: cache, config: config}
}

// PlayerPath scrapes the player script path from the watch page of the
// given video.
func (r *httpResolver) PlayerPath(ctx context.Context, videoID string) (string, error) {
	u, err := url.Parse(r.baseURL() + "/watch")
	if err != nil {
		return "", fmt.Errorf("failed to build watch url: %w", err)
	}
	q := u.Query()
	q.Set("v", videoID)
	q.Set("hl", "en")
	u.RawQuery = q.Encode()

	body, err := r.fetch(ctx, u.String())
	if err != nil {
		return "", err
	}

	m := playerPathPattern.FindSubmatch(body)
	if len(m) < 2 {
		return "", fmt.Errorf("player script path not found in watch page")
	}
	return string(m[1]), nil
}

// Asset returns the parsed player asset for a script path, fetching it
// at most effectively once per process.
func (r *httpResolver) Asset(ctx context.Context, playerPath string) (*Asset, error) {
	if asset, ok := r.cache.Get(playerPath); ok {
		return asset, nil
	}

	scriptURL := playerPath
	if !strings.HasPrefix(scriptURL, "http://") && !strings.HasPrefix(scriptURL, "https://") {
		scriptURL = r.baseURL() + playerPath
	}
	body, err := r.fetch(ctx, scriptURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player script: %w", err)
	}

	return r.cache.Put(playerPath, NewAsset(playerPath, string(body))), nil
}

func (r *httpResolver) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	ua := r.config.UserAgent
	if ua == "" {
		ua = defaultPlayerUserAgent
	}
	req.Header.Set("User-Agent", ua)
	for k, values := range r.config.Headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (r *httpResolver) baseURL() string {
	if r.config.BaseURL != "" {
		return strings.TrimRight(r.config.BaseURL, "/")
	}
	return defaultPlayerBaseURL
}
