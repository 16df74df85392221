package browse

import (
	"context"
	"fmt"

	"github.com/ytkit/ytkit/internal/innertube"
	"github.com/ytkit/ytkit/internal/orchestrator"
)

// Channel is the metadata surface of a channel's about page.
type Channel struct {
	ID          string
	Title       string
	Description string
	Subscribers string
	ViewCount   string
	Country     string
	JoinedDate  string
	FamilySafe  bool
	Avatar      []innertube.Thumbnail
}

// FetchChannel browses a channel's about page. Nonexistent channels
// are served as an ERROR alert and surface as ListingUnavailableError.
func FetchChannel(ctx context.Context, engine *orchestrator.Engine, profile innertube.ClientContext, channelID string) (*Channel, error) {
	resp, err := engine.Browse(ctx, innertube.NewChannelAboutRequest(profile, channelID), profile)
	if err != nil {
		return nil, err
	}
	if reason, blocked := errorAlert(resp); blocked {
		return nil, &ListingUnavailableError{ID: channelID, Reason: reason}
	}

	header := channelHeader(resp)
	if header == nil {
		return nil, &orchestrator.SchemaError{
			Endpoint: innertube.EndpointBrowse,
			Err:      fmt.Errorf("channel response without c4TabbedHeaderRenderer"),
		}
	}

	ch := &Channel{
		ID:          header.ChannelID,
		Title:       header.Title,
		Subscribers: header.SubscriberCountText.Value(),
		Avatar:      header.Avatar.Thumbnails,
	}
	if resp.Metadata != nil && resp.Metadata.ChannelMetadataRenderer != nil {
		meta := resp.Metadata.ChannelMetadataRenderer
		ch.Description = meta.Description
		ch.FamilySafe = meta.IsFamilySafe
	}
	if about := aboutRenderer(resp); about != nil {
		if ch.Description == "" {
			ch.Description = about.Description.Value()
		}
		ch.ViewCount = about.ViewCountText.Value()
		ch.Country = about.Country.Value()
		ch.JoinedDate = about.JoinedDateText.Value()
	}
	return ch, nil
}

func channelHeader(resp *innertube.BrowseResponse) *innertube.C4TabbedHeaderRenderer {
	if resp.Header == nil {
		return nil
	}
	return resp.Header.C4TabbedHeaderRenderer
}

// aboutRenderer digs the about-tab payload out of the renderer tree;
// it shares the tab walk with the playlist listing.
func aboutRenderer(resp *innertube.BrowseResponse) *innertube.ChannelAboutFullMetadataRenderer {
	if resp.Contents == nil || resp.Contents.TwoColumnBrowseResultsRenderer == nil {
		return nil
	}
	for _, tab := range resp.Contents.TwoColumnBrowseResultsRenderer.Tabs {
		if tab.TabRenderer == nil || tab.TabRenderer.Content == nil {
			continue
		}
		section := tab.TabRenderer.Content.SectionListRenderer
		if section == nil {
			continue
		}
		for _, sc := range section.Contents {
			if sc.ItemSectionRenderer == nil {
				continue
			}
			for _, ic := range sc.ItemSectionRenderer.Contents {
				if ic.ChannelAboutFullMetadataRenderer != nil {
					return ic.ChannelAboutFullMetadataRenderer
				}
			}
		}
	}
	return nil
}
