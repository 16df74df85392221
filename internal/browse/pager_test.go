package browse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ytkit/ytkit/internal/innertube"
	"github.com/ytkit/ytkit/internal/orchestrator"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newPagerEngine(tr http.RoundTripper) *orchestrator.Engine {
	return orchestrator.NewEngine(innertube.Config{
		HTTPClient: &http.Client{Transport: tr},
	}, nil)
}

func videoItem(id string) string {
	return fmt.Sprintf(`{"playlistVideoRenderer":{"videoId":%q,"title":{"runs":[{"text":"video %s"}]},"shortBylineText":{"runs":[{"text":"uploader"}]},"lengthSeconds":"212","isPlayable":true}}`, id, id)
}

func continuationItem(token string) string {
	return fmt.Sprintf(`{"continuationItemRenderer":{"continuationEndpoint":{"continuationCommand":{"token":%q}}}}`, token)
}

func firstPageBody(items ...string) string {
	return `{"contents":{"twoColumnBrowseResultsRenderer":{"tabs":[{"tabRenderer":{"content":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[{"playlistVideoListRenderer":{"contents":[` +
		strings.Join(items, ",") + `]}}]}}]}}}}]}}}`
}

func continuationBody(items ...string) string {
	return `{"onResponseReceivedActions":[{"appendContinuationItemsAction":{"continuationItems":[` +
		strings.Join(items, ",") + `]}}]}`
}

func TestPagerWalksThreePages(t *testing.T) {
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		payload, _ := io.ReadAll(r.Body)
		body := string(payload)
		switch {
		case strings.Contains(body, `"browseId":"VLPLtest"`):
			return jsonResponse(firstPageBody(videoItem("aaa"), videoItem("bbb"), continuationItem("tok-2"))), nil
		case strings.Contains(body, `"continuation":"tok-2"`):
			return jsonResponse(continuationBody(videoItem("ccc"), videoItem("ddd"), continuationItem("tok-3"))), nil
		case strings.Contains(body, `"continuation":"tok-3"`):
			return jsonResponse(continuationBody(videoItem("eee"))), nil
		}
		return nil, fmt.Errorf("unexpected payload: %s", body)
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLtest")
	ctx := context.Background()

	var ids []string
	pages := 0
	for {
		page, err := pager.Next(ctx)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if page == nil {
			break
		}
		pages++
		for _, v := range page.Videos {
			ids = append(ids, v.ID)
		}
	}

	if pages != 3 {
		t.Fatalf("walked %d pages, want 3", pages)
	}
	want := []string{"aaa", "bbb", "ccc", "ddd", "eee"}
	if len(ids) != len(want) {
		t.Fatalf("collected %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("collected %v, want %v", ids, want)
		}
	}

	// Exhausted pagers stay exhausted.
	page, err := pager.Next(ctx)
	if err != nil || page != nil {
		t.Fatalf("Next() after exhaustion = (%v, %v), want (nil, nil)", page, err)
	}
}

func TestPagerFetchesLazily(t *testing.T) {
	var requests int
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		requests++
		payload, _ := io.ReadAll(r.Body)
		if strings.Contains(string(payload), `"browseId"`) {
			return jsonResponse(firstPageBody(videoItem("aaa"), continuationItem("tok-2"))), nil
		}
		return jsonResponse(continuationBody(videoItem("bbb"))), nil
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLtest")
	if requests != 0 {
		t.Fatalf("constructing the pager performed %d requests", requests)
	}
	if _, err := pager.Next(context.Background()); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if requests != 1 {
		t.Fatalf("first page took %d requests, want 1", requests)
	}
}

func TestPagerRejectsMisplacedContinuation(t *testing.T) {
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(firstPageBody(videoItem("aaa"), continuationItem("tok-2"), videoItem("bbb"))), nil
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLtest")
	_, err := pager.Next(context.Background())

	var misplaced *MisplacedContinuationError
	if !errors.As(err, &misplaced) {
		t.Fatalf("Next() error = %v, want *MisplacedContinuationError", err)
	}
	if misplaced.Index != 1 || misplaced.Total != 3 {
		t.Fatalf("MisplacedContinuationError = %+v", misplaced)
	}
}

func TestPagerSurfacesErrorAlert(t *testing.T) {
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(`{"alerts":[{"alertRenderer":{"type":"ERROR","text":{"simpleText":"The playlist does not exist."}}}]}`), nil
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLgone")
	_, err := pager.Next(context.Background())

	var unavailable *ListingUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Next() error = %v, want *ListingUnavailableError", err)
	}
	if unavailable.Reason != "The playlist does not exist." {
		t.Fatalf("Reason = %q", unavailable.Reason)
	}
}

func TestPagerIgnoresInfoAlerts(t *testing.T) {
	body := firstPageBody(videoItem("aaa"))
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		withAlert := strings.TrimSuffix(body, "}") +
			`,"alerts":[{"alertRenderer":{"type":"INFO","text":{"simpleText":"Unavailable videos are hidden"}}}]}`
		return jsonResponse(withAlert), nil
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLtest")
	page, err := pager.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(page.Videos) != 1 || page.Videos[0].ID != "aaa" {
		t.Fatalf("page = %+v", page)
	}
}

func TestVideosSequence(t *testing.T) {
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		payload, _ := io.ReadAll(r.Body)
		if strings.Contains(string(payload), `"browseId"`) {
			return jsonResponse(firstPageBody(videoItem("aaa"), videoItem("bbb"), continuationItem("tok-2"))), nil
		}
		return jsonResponse(continuationBody(videoItem("ccc"))), nil
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLtest")

	var ids []string
	for v, err := range pager.Videos(context.Background()) {
		if err != nil {
			t.Fatalf("Videos() yielded error: %v", err)
		}
		ids = append(ids, v.ID)
	}
	if len(ids) != 3 || ids[0] != "aaa" || ids[2] != "ccc" {
		t.Fatalf("Videos() collected %v", ids)
	}
}

func TestVideosSequenceStopsEarly(t *testing.T) {
	var requests int
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		requests++
		return jsonResponse(firstPageBody(videoItem("aaa"), videoItem("bbb"), continuationItem("tok-2"))), nil
	})

	pager := NewPager(newPagerEngine(tr), innertube.WebContext, "PLtest")
	for v, err := range pager.Videos(context.Background()) {
		if err != nil {
			t.Fatalf("Videos() yielded error: %v", err)
		}
		if v.ID == "aaa" {
			break
		}
	}
	if requests != 1 {
		t.Fatalf("early break still performed %d requests, want 1", requests)
	}
}
