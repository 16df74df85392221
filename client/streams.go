package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ytkit/ytkit/internal/formats"
)

// Stream is one playable variant of a video. Metadata is immediate;
// the URL of a ciphered stream is materialized by ResolveURL.
type Stream struct {
	Itag             int
	MimeType         string
	Codecs           string
	Bitrate          int
	Width            int
	Height           int
	FPS              int
	Quality          string
	QualityLabel     string
	AudioQuality     string
	AudioSampleRate  int
	AudioChannels    int
	ContentLength    int64
	ApproxDurationMs int64
	HasVideo         bool
	HasAudio         bool
	// Ciphered streams need a signature transform before their URL is
	// usable; ResolveURL performs it.
	Ciphered bool

	client    *Client
	videoID   string
	directURL string
	rawCipher string
}

// Streams returns the video's stream variants, best quality first.
func (c *Client) Streams(ctx context.Context, input string) ([]Stream, error) {
	videoID, err := ParseVideoID(input)
	if err != nil {
		return nil, err
	}
	sess, err := c.ensureSession(ctx, videoID)
	if err != nil {
		return nil, err
	}

	parsed := formats.Parse(sess.response)
	formats.SortByQuality(parsed)

	out := make([]Stream, 0, len(parsed))
	for _, f := range parsed {
		out = append(out, Stream{
			Itag:             f.Itag,
			MimeType:         f.MimeType,
			Codecs:           f.Codecs,
			Bitrate:          f.Bitrate,
			Width:            f.Width,
			Height:           f.Height,
			FPS:              f.FPS,
			Quality:          f.Quality,
			QualityLabel:     f.QualityLabel,
			AudioQuality:     f.AudioQuality,
			AudioSampleRate:  f.AudioSampleRate,
			AudioChannels:    f.AudioChannels,
			ContentLength:    f.ContentLength,
			ApproxDurationMs: f.ApproxDurationMs,
			HasVideo:         f.HasVideo,
			HasAudio:         f.HasAudio,
			Ciphered:         f.Ciphered,
			client:           c,
			videoID:          videoID,
			directURL:        f.URL,
			rawCipher:        f.RawCipher,
		})
	}
	return out, nil
}

// ResolveStreamURL resolves a playable URL for one itag of a video.
func (c *Client) ResolveStreamURL(ctx context.Context, input string, itag int) (string, error) {
	streams, err := c.Streams(ctx, input)
	if err != nil {
		return "", err
	}
	for i := range streams {
		if streams[i].Itag == itag {
			return streams[i].ResolveURL(ctx)
		}
	}
	return "", fmt.Errorf("%w: itag=%d video=%s", ErrFormatNotFound, itag, input)
}

// ResolveURL returns the stream's playable URL. Direct URLs are
// returned as is; ciphered streams are resolved by deciphering the
// signature with the video's player script and attaching it to the
// base URL. The player script is fetched and parsed at most once per
// process regardless of how many streams resolve against it.
func (s *Stream) ResolveURL(ctx context.Context) (string, error) {
	if s.directURL != "" {
		return s.directURL, nil
	}
	if s.rawCipher == "" {
		return "", fmt.Errorf("stream itag=%d has neither url nor cipher", s.Itag)
	}

	params, err := url.ParseQuery(s.rawCipher)
	if err != nil {
		return "", fmt.Errorf("malformed signature cipher for itag=%d: %w", s.Itag, err)
	}
	base := params.Get("url")
	if base == "" {
		return "", fmt.Errorf("signature cipher for itag=%d carries no url", s.Itag)
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("malformed stream url for itag=%d: %w", s.Itag, err)
	}

	sig := params.Get("s")
	if sig != "" {
		deciphered, err := s.client.decipher(ctx, s.videoID, sig)
		if err != nil {
			return "", err
		}
		param := params.Get("sp")
		if param == "" {
			param = "signature"
		}
		q := u.Query()
		q.Set(param, deciphered)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func (c *Client) decipher(ctx context.Context, videoID, sig string) (string, error) {
	sess, err := c.ensureSession(ctx, videoID)
	if err != nil {
		return "", err
	}
	path, err := c.playerPathFor(ctx, videoID, sess)
	if err != nil {
		return "", err
	}
	asset, err := c.resolver.Asset(ctx, path)
	if err != nil {
		return "", fmt.Errorf("fetch player script %s: %w", path, err)
	}
	deciphered, err := asset.DecipherSignature(sig)
	if err != nil {
		return "", fmt.Errorf("decipher signature with %s: %w", path, err)
	}
	return deciphered, nil
}
