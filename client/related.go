package client

import (
	"context"

	"github.com/ytkit/ytkit/internal/innertube"
)

// RelatedVideo is one entry of the watch-next sidebar.
type RelatedVideo struct {
	ID         string
	Title      string
	Author     string
	Length     string
	ViewCount  string
	Thumbnails []Thumbnail
}

// RelatedVideos fetches the videos the platform suggests next to the
// given one. The input may be an id or URL. The listing is best-effort:
// an empty slice is a valid answer, not an error.
func (c *Client) RelatedVideos(ctx context.Context, input string) ([]RelatedVideo, error) {
	videoID, err := ParseVideoID(input)
	if err != nil {
		return nil, err
	}
	resp, err := c.engine.Next(ctx, videoID, c.profile)
	if err != nil {
		return nil, err
	}
	return relatedFrom(resp), nil
}

// relatedFrom collects the compact video entries of the sidebar,
// skipping the other renderer kinds mixed into it (continuation
// markers, promoted items).
func relatedFrom(resp *innertube.NextResponse) []RelatedVideo {
	results := sidebarResults(resp)
	var out []RelatedVideo
	for _, item := range results {
		r := item.CompactVideoRenderer
		if r == nil || r.VideoID == "" {
			continue
		}
		v := RelatedVideo{
			ID:        r.VideoID,
			Title:     r.Title.Value(),
			Author:    r.ShortBylineText.Value(),
			Length:    r.LengthText.Value(),
			ViewCount: r.ViewCountText.Value(),
		}
		for _, t := range r.Thumbnail.Thumbnails {
			v.Thumbnails = append(v.Thumbnails, Thumbnail(t))
		}
		out = append(out, v)
	}
	return out
}

func sidebarResults(resp *innertube.NextResponse) []innertube.RelatedItem {
	if resp.Contents == nil || resp.Contents.TwoColumnWatchNextResults == nil {
		return nil
	}
	secondary := resp.Contents.TwoColumnWatchNextResults.SecondaryResults
	if secondary == nil || secondary.SecondaryResults == nil {
		return nil
	}
	return secondary.SecondaryResults.Results
}
