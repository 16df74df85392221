package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

const channelAboutBody = `{
	"header": {"c4TabbedHeaderRenderer": {
		"title": "jawed",
		"channelId": "UC4QobU6STFB0P71PMvOGN5A",
		"subscriberCountText": {"simpleText": "5M subscribers"},
		"avatar": {"thumbnails": [{"url": "https://yt3.example.com/avatar.jpg", "width": 88, "height": 88}]}
	}},
	"metadata": {"channelMetadataRenderer": {"title": "jawed", "description": "The first channel.", "isFamilySafe": true}},
	"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [{"itemSectionRenderer": {"contents": [{"channelAboutFullMetadataRenderer": {
		"viewCountText": {"simpleText": "300,000,000 views"},
		"country": {"simpleText": "United States"},
		"joinedDateText": {"runs": [{"text": "Joined "}, {"text": "Apr 23, 2005"}]}
	}}]}}]}}}}]}}
}`

func TestChannelFacade(t *testing.T) {
	c := newTestClient(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return textResponse(http.StatusOK, channelAboutBody), nil
	}))

	info, err := c.Channel(context.Background(), "https://www.youtube.com/channel/UC4QobU6STFB0P71PMvOGN5A")
	if err != nil {
		t.Fatalf("Channel() error = %v", err)
	}
	if info.ID != "UC4QobU6STFB0P71PMvOGN5A" || info.Title != "jawed" {
		t.Fatalf("Channel() = %+v", info)
	}
	if info.Subscribers != "5M subscribers" || info.Country != "United States" {
		t.Fatalf("Channel() about = %+v", info)
	}
	if len(info.Avatar) != 1 || info.Avatar[0].Width != 88 {
		t.Fatalf("Channel() avatar = %+v", info.Avatar)
	}
}

func TestChannelRejectsBadInput(t *testing.T) {
	c := newTestClient(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Error("bad input reached the network")
		return textResponse(http.StatusOK, "{}"), nil
	}))

	if _, err := c.Channel(context.Background(), "@handle"); !errors.Is(err, ErrInvalidChannel) {
		t.Fatalf("Channel() error = %v, want ErrInvalidChannel", err)
	}
}

func TestChannelVideosWalksUploadsPlaylist(t *testing.T) {
	page := `{"contents":{"twoColumnBrowseResultsRenderer":{"tabs":[{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[{"playlistVideoListRenderer":{"contents":[{"playlistVideoRenderer":{"videoId":"jNQXAC9IVRw","title":{"runs":[{"text":"Me at the zoo"}]},"shortBylineText":{"runs":[{"text":"jawed"}]},"lengthSeconds":"19","isPlayable":true}}]}}]}}]}}}}]}}}`
	c := newTestClient(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		payload, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(payload), `"browseId":"VLUU4QobU6STFB0P71PMvOGN5A"`) {
			t.Errorf("uploads browse payload = %s", payload)
		}
		return textResponse(http.StatusOK, page), nil
	}))

	videos, err := c.ChannelVideos(context.Background(), "UC4QobU6STFB0P71PMvOGN5A")
	if err != nil {
		t.Fatalf("ChannelVideos() error = %v", err)
	}
	if len(videos) != 1 || videos[0].ID != "jNQXAC9IVRw" {
		t.Fatalf("ChannelVideos() = %+v", videos)
	}
}
