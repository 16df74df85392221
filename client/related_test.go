package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

const watchNextBody = `{
	"contents": {"twoColumnWatchNextResults": {"secondaryResults": {"secondaryResults": {"results": [
		{"compactVideoRenderer": {
			"videoId": "dQw4w9WgXcQ",
			"title": {"simpleText": "Never Gonna Give You Up"},
			"shortBylineText": {"runs": [{"text": "Rick Astley"}]},
			"lengthText": {"simpleText": "3:33"},
			"viewCountText": {"simpleText": "1.4B views"},
			"thumbnail": {"thumbnails": [{"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg", "width": 168, "height": 94}]}
		}},
		{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "sidebar-token"}}}}
	]}}}}
}`

func TestRelatedVideos(t *testing.T) {
	c := newTestClient(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if !strings.HasSuffix(r.URL.Path, "/next") {
			t.Errorf("related fetch hit %s, want /next", r.URL.Path)
		}
		payload, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(payload), `"videoId":"jNQXAC9IVRw"`) {
			t.Errorf("next payload = %s", payload)
		}
		return textResponse(http.StatusOK, watchNextBody), nil
	}))

	related, err := c.RelatedVideos(context.Background(), "jNQXAC9IVRw")
	if err != nil {
		t.Fatalf("RelatedVideos() error = %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("RelatedVideos() returned %d entries, want 1", len(related))
	}
	v := related[0]
	if v.ID != "dQw4w9WgXcQ" || v.Title != "Never Gonna Give You Up" || v.Author != "Rick Astley" {
		t.Fatalf("RelatedVideos()[0] = %+v", v)
	}
	if v.Length != "3:33" || v.ViewCount != "1.4B views" {
		t.Fatalf("RelatedVideos()[0] counters = %+v", v)
	}
	if len(v.Thumbnails) != 1 || v.Thumbnails[0].Width != 168 {
		t.Fatalf("RelatedVideos()[0] thumbnails = %+v", v.Thumbnails)
	}
}

func TestRelatedVideosEmptySidebarIsNotAnError(t *testing.T) {
	c := newTestClient(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return textResponse(http.StatusOK, `{"contents":{}}`), nil
	}))

	related, err := c.RelatedVideos(context.Background(), "jNQXAC9IVRw")
	if err != nil {
		t.Fatalf("RelatedVideos() error = %v", err)
	}
	if len(related) != 0 {
		t.Fatalf("RelatedVideos() = %+v, want empty", related)
	}
}
