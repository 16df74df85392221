// Package client is the public facade: video metadata, stream URL
// resolution and playlist listing on top of the Innertube API.
package client

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"sync"

	"github.com/ytkit/ytkit/internal/browse"
	"github.com/ytkit/ytkit/internal/innertube"
	"github.com/ytkit/ytkit/internal/orchestrator"
	"github.com/ytkit/ytkit/internal/playerjs"
)

// Client is a stateless handle apart from its caches: player responses
// per video and parsed player scripts per script path. It is safe for
// concurrent use.
type Client struct {
	config   Config
	profile  innertube.ClientContext
	engine   *orchestrator.Engine
	resolver playerjs.Resolver
	logger   Logger

	sessionsMu sync.Mutex
	sessions   map[string]*session
}

// session is the cached per-video state a URL resolution needs.
type session struct {
	response   *innertube.PlayerResponse
	playerPath string
}

// New builds a Client. The zero Config works; an unknown ClientID is
// an error rather than a silent fallback.
func New(config Config) (*Client, error) {
	httpClient, err := config.buildHTTPClient()
	if err != nil {
		return nil, err
	}

	profile := innertube.WebContext
	if config.ClientID != "" {
		p, ok := innertube.NewRegistry().Get(config.ClientID)
		if !ok {
			return nil, fmt.Errorf("unknown client id %q", config.ClientID)
		}
		profile = p
	}

	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Client{
		config:   config,
		profile:  profile,
		engine:   orchestrator.NewEngine(config.toInnertubeConfig(httpClient), logger),
		resolver: playerjs.NewResolver(httpClient, playerjs.NewAssetCache()),
		logger:   logger,
		sessions: make(map[string]*session),
	}, nil
}

// Video fetches a video's metadata. The input may be an id or URL.
func (c *Client) Video(ctx context.Context, input string) (*VideoInfo, error) {
	videoID, err := ParseVideoID(input)
	if err != nil {
		return nil, err
	}
	sess, err := c.ensureSession(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return videoInfoFrom(sess.response), nil
}

// PlaylistVideos walks a playlist and returns every entry. The input
// may be an id or URL. For large playlists prefer Playlist.
func (c *Client) PlaylistVideos(ctx context.Context, input string) ([]PlaylistVideo, error) {
	pager, err := c.Playlist(input)
	if err != nil {
		return nil, err
	}
	var out []PlaylistVideo
	for v, err := range pager.Videos(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Playlist returns a page-at-a-time walker over a playlist. No page is
// fetched before the first Next or Videos call.
func (c *Client) Playlist(input string) (*PlaylistPager, error) {
	playlistID, err := ParsePlaylistID(input)
	if err != nil {
		return nil, err
	}
	return &PlaylistPager{inner: browse.NewPager(c.engine, c.profile, playlistID)}, nil
}

// PlaylistPager iterates a playlist one /browse page per Next call.
type PlaylistPager struct {
	inner *browse.Pager
}

// Next returns the next page of entries, or (nil, nil) once the
// listing is exhausted.
func (p *PlaylistPager) Next(ctx context.Context) ([]PlaylistVideo, error) {
	page, err := p.inner.Next(ctx)
	if err != nil || page == nil {
		return nil, err
	}
	out := make([]PlaylistVideo, len(page.Videos))
	for i, v := range page.Videos {
		out[i] = PlaylistVideo(v)
	}
	return out, nil
}

// Videos returns a lazy sequence over every entry, fetching pages on
// demand. Iteration stops at the first error, yielded with a zero
// entry.
func (p *PlaylistPager) Videos(ctx context.Context) iter.Seq2[PlaylistVideo, error] {
	return func(yield func(PlaylistVideo, error) bool) {
		for v, err := range p.inner.Videos(ctx) {
			if !yield(PlaylistVideo(v), err) {
				return
			}
		}
	}
}

func (c *Client) ensureSession(ctx context.Context, videoID string) (*session, error) {
	c.sessionsMu.Lock()
	sess, ok := c.sessions[videoID]
	c.sessionsMu.Unlock()
	if ok {
		return sess, nil
	}

	resp, err := c.engine.Player(ctx, videoID, c.profile)
	if err != nil {
		return nil, mapError(videoID, err)
	}

	sess = &session{response: resp}
	c.sessionsMu.Lock()
	if existing, ok := c.sessions[videoID]; ok {
		sess = existing
	} else {
		c.sessions[videoID] = sess
	}
	c.sessionsMu.Unlock()
	return sess, nil
}

// playerPathFor resolves (and caches per session) the player script
// path backing a video.
func (c *Client) playerPathFor(ctx context.Context, videoID string, sess *session) (string, error) {
	c.sessionsMu.Lock()
	path := sess.playerPath
	c.sessionsMu.Unlock()
	if path != "" {
		return path, nil
	}

	path, err := c.resolver.PlayerPath(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("resolve player script for video %s: %w", videoID, err)
	}
	c.sessionsMu.Lock()
	if sess.playerPath == "" {
		sess.playerPath = path
	} else {
		path = sess.playerPath
	}
	c.sessionsMu.Unlock()
	return path, nil
}

func videoInfoFrom(resp *innertube.PlayerResponse) *VideoInfo {
	details := resp.VideoDetails
	micro := resp.Microformat.PlayerMicroformatRenderer

	info := &VideoInfo{
		ID:          details.VideoID,
		Title:       details.Title,
		Author:      details.Author,
		ChannelID:   details.ChannelID,
		Description: details.ShortDescription,
		DurationSec: parseInt64(details.LengthSeconds),
		ViewCount:   parseInt64(details.ViewCount),
		Keywords:    append([]string(nil), details.Keywords...),
		Category:    micro.Category,
		PublishDate: micro.PublishDate,
		UploadDate:  micro.UploadDate,
		IsLive:      details.IsLiveContent,
		IsPrivate:   details.IsPrivate,
		IsUnlisted:  micro.IsUnlisted,
		FamilySafe:  micro.IsFamilySafe,
	}
	for _, t := range details.Thumbnail.Thumbnails {
		info.Thumbnails = append(info.Thumbnails, Thumbnail(t))
	}
	return info
}

func parseInt64(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
