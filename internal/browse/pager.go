// Package browse walks paginated /browse listings. It turns the
// continuation-token protocol into a lazy page stream and enforces the
// structural invariant that a continuation marker only ever trails a
// page.
package browse

import (
	"context"
	"fmt"

	"github.com/ytkit/ytkit/internal/innertube"
	"github.com/ytkit/ytkit/internal/orchestrator"
)

// Video is one playlist entry.
type Video struct {
	ID            string
	Title         string
	Author        string
	LengthSeconds string
	Playable      bool
}

// Page is one fetched slice of a listing plus the cursor to the next
// one. An empty Continuation means the listing is exhausted.
type Page struct {
	Videos       []Video
	Continuation string
}

// MisplacedContinuationError reports a continuation marker that was not
// the last item of its page. Pages violating this cannot be resumed
// coherently, so the walk aborts instead of guessing.
type MisplacedContinuationError struct {
	Index int
	Total int
}

func (e *MisplacedContinuationError) Error() string {
	return fmt.Sprintf("continuation item at position %d of %d, want last", e.Index, e.Total)
}

// ListingUnavailableError carries the upstream alert shown instead of
// a listing (deleted, private, nonexistent channel).
type ListingUnavailableError struct {
	ID     string
	Reason string
}

func (e *ListingUnavailableError) Error() string {
	return fmt.Sprintf("listing %s unavailable: %s", e.ID, e.Reason)
}

// Pager iterates a playlist's pages. Each Next call performs exactly
// one /browse request; no page is fetched until asked for.
type Pager struct {
	engine     *orchestrator.Engine
	profile    innertube.ClientContext
	playlistID string

	started bool
	token   string
	done    bool
}

func NewPager(engine *orchestrator.Engine, profile innertube.ClientContext, playlistID string) *Pager {
	return &Pager{engine: engine, profile: profile, playlistID: playlistID}
}

// Next fetches the next page. It returns (nil, nil) once the listing is
// exhausted; after that every call keeps returning (nil, nil).
func (p *Pager) Next(ctx context.Context) (*Page, error) {
	if p.done {
		return nil, nil
	}

	var req *innertube.BrowseRequest
	if !p.started {
		req = innertube.NewPlaylistBrowseRequest(p.profile, p.playlistID)
	} else {
		req = innertube.NewContinuationRequest(p.profile, p.token)
	}

	resp, err := p.engine.Browse(ctx, req, p.profile)
	if err != nil {
		return nil, err
	}

	if !p.started {
		if reason, blocked := errorAlert(resp); blocked {
			p.done = true
			return nil, &ListingUnavailableError{ID: p.playlistID, Reason: reason}
		}
	}

	items, err := pageItems(resp, p.started)
	if err != nil {
		return nil, err
	}
	p.started = true

	page, err := splitPage(items)
	if err != nil {
		return nil, err
	}
	p.token = page.Continuation
	if p.token == "" {
		p.done = true
	}
	return page, nil
}

// errorAlert returns the text of an ERROR-typed alert, if any. Other
// alert types (region notices and the like) do not block the walk.
func errorAlert(resp *innertube.BrowseResponse) (string, bool) {
	for _, alert := range resp.Alerts {
		if alert.AlertRenderer != nil && alert.AlertRenderer.Type == "ERROR" {
			return alert.AlertRenderer.Text.Value(), true
		}
	}
	return "", false
}

// pageItems digs the item list out of the two shapes /browse answers
// with: the renderer tree on the first page, received-actions on
// continuations.
func pageItems(resp *innertube.BrowseResponse, continuation bool) ([]innertube.PlaylistItem, error) {
	if continuation {
		for _, action := range resp.OnResponseReceivedActions {
			if action.AppendContinuationItemsAction != nil {
				return action.AppendContinuationItemsAction.ContinuationItems, nil
			}
		}
		return nil, &orchestrator.SchemaError{
			Endpoint: innertube.EndpointBrowse,
			Err:      fmt.Errorf("continuation response without appendContinuationItemsAction"),
		}
	}

	list := firstPageList(resp)
	if list == nil {
		return nil, &orchestrator.SchemaError{
			Endpoint: innertube.EndpointBrowse,
			Err:      fmt.Errorf("browse response without playlistVideoListRenderer"),
		}
	}
	return list.Contents, nil
}

func firstPageList(resp *innertube.BrowseResponse) *innertube.PlaylistVideoListRenderer {
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
				if ic.PlaylistVideoListRenderer != nil {
					return ic.PlaylistVideoListRenderer
				}
			}
		}
	}
	return nil
}

// splitPage separates videos from the trailing continuation marker and
// verifies the marker really is trailing.
func splitPage(items []innertube.PlaylistItem) (*Page, error) {
	page := &Page{}
	for i, item := range items {
		if item.ContinuationItemRenderer != nil {
			if i != len(items)-1 {
				return nil, &MisplacedContinuationError{Index: i, Total: len(items)}
			}
			page.Continuation = item.ContinuationItemRenderer.Token()
			continue
		}
		if r := item.PlaylistVideoRenderer; r != nil {
			page.Videos = append(page.Videos, Video{
				ID:            r.VideoID,
				Title:         r.Title.Value(),
				Author:        r.ShortBylineText.Value(),
				LengthSeconds: r.LengthSeconds,
				Playable:      r.IsPlayable,
			})
		}
	}
	return page, nil
}
