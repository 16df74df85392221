package innertube

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPlayerRequestPayload(t *testing.T) {
	req := NewPlayerRequest(WebContext, "jNQXAC9IVRw")
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := string(body)

	for _, want := range []string{
		`"clientName":"WEB"`,
		`"hl":"en"`,
		`"gl":"US"`,
		`"videoId":"jNQXAC9IVRw"`,
		`"contentCheckOk":true`,
		`"racyCheckOk":true`,
	} {
		if !strings.Contains(payload, want) {
			t.Fatalf("payload missing %s: %s", want, payload)
		}
	}
	if strings.Contains(payload, "thirdParty") {
		t.Fatalf("non-embedded payload carries thirdParty: %s", payload)
	}
}

func TestNewPlayerRequestEmbeddedCarriesThirdParty(t *testing.T) {
	req := NewPlayerRequest(WebEmbeddedContext, "jNQXAC9IVRw")
	body, _ := json.Marshal(req)
	payload := string(body)

	if !strings.Contains(payload, `"clientName":"WEB_EMBEDDED_PLAYER"`) {
		t.Fatalf("payload = %s", payload)
	}
	if !strings.Contains(payload, `"clientScreen":"EMBED"`) {
		t.Fatalf("payload missing clientScreen: %s", payload)
	}
	if !strings.Contains(payload, `"embedUrl":"https://www.youtube.com/watch?v=jNQXAC9IVRw"`) {
		t.Fatalf("payload missing embedUrl: %s", payload)
	}
}

func TestNewPlaylistBrowseRequestPayload(t *testing.T) {
	req := NewPlaylistBrowseRequest(WebContext, "PLtest")
	body, _ := json.Marshal(req)
	payload := string(body)

	if !strings.Contains(payload, `"browseId":"VLPLtest"`) {
		t.Fatalf("payload = %s", payload)
	}
	if !strings.Contains(payload, `"params":"wgYCCAA="`) {
		t.Fatalf("payload missing video list params: %s", payload)
	}
	if strings.Contains(payload, "continuation") {
		t.Fatalf("first page payload carries continuation: %s", payload)
	}
}

func TestNewContinuationRequestPayload(t *testing.T) {
	req := NewContinuationRequest(WebContext, "tok-2")
	body, _ := json.Marshal(req)
	payload := string(body)

	if !strings.Contains(payload, `"continuation":"tok-2"`) {
		t.Fatalf("payload = %s", payload)
	}
	if strings.Contains(payload, "browseId") {
		t.Fatalf("continuation payload carries browseId: %s", payload)
	}
}

func TestFallbackForIsSingleStep(t *testing.T) {
	fb, ok := FallbackFor(WebContext)
	if !ok || fb.ID != "web_embedded" {
		t.Fatalf("FallbackFor(web) = %+v, %v", fb, ok)
	}
	if _, ok := FallbackFor(fb); ok {
		t.Fatal("embedded profile has a fallback; the chain must be one step")
	}
}
