package client

import (
	"context"

	"github.com/ytkit/ytkit/internal/browse"
)

// ChannelInfo is the metadata surface of a channel's about page.
type ChannelInfo struct {
	ID          string
	Title       string
	Description string
	Subscribers string
	ViewCount   string
	Country     string
	JoinedDate  string
	FamilySafe  bool
	Avatar      []Thumbnail
}

// Channel fetches a channel's about-page metadata. The input may be a
// UC-prefixed id or a /channel/ URL.
func (c *Client) Channel(ctx context.Context, input string) (*ChannelInfo, error) {
	channelID, err := ParseChannelID(input)
	if err != nil {
		return nil, err
	}
	ch, err := browse.FetchChannel(ctx, c.engine, c.profile, channelID)
	if err != nil {
		return nil, err
	}

	info := &ChannelInfo{
		ID:          ch.ID,
		Title:       ch.Title,
		Description: ch.Description,
		Subscribers: ch.Subscribers,
		ViewCount:   ch.ViewCount,
		Country:     ch.Country,
		JoinedDate:  ch.JoinedDate,
		FamilySafe:  ch.FamilySafe,
	}
	for _, t := range ch.Avatar {
		info.Avatar = append(info.Avatar, Thumbnail(t))
	}
	return info, nil
}

// ChannelUploads returns a page-at-a-time walker over a channel's
// uploads. Every channel mirrors its uploads as a playlist whose id is
// the channel id with the UC prefix swapped for UU.
func (c *Client) ChannelUploads(input string) (*PlaylistPager, error) {
	channelID, err := ParseChannelID(input)
	if err != nil {
		return nil, err
	}
	uploadsID := "UU" + channelID[2:]
	return &PlaylistPager{inner: browse.NewPager(c.engine, c.profile, uploadsID)}, nil
}

// ChannelVideos walks a channel's uploads and returns every entry. For
// large channels prefer ChannelUploads.
func (c *Client) ChannelVideos(ctx context.Context, input string) ([]PlaylistVideo, error) {
	pager, err := c.ChannelUploads(input)
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
