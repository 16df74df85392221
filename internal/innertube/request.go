package innertube

import "encoding/base64"

// Context is the identity block every Innertube payload carries.
type Context struct {
	Client     ClientInfo  `json:"client"`
	ThirdParty *ThirdParty `json:"thirdParty,omitempty"`
}

type ClientInfo struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	ClientScreen  string `json:"clientScreen,omitempty"`
	UserAgent     string `json:"userAgent,omitempty"`
	AcceptLang    string `json:"hl"`
	Region        string `json:"gl"`
}

type ThirdParty struct {
	EmbedURL string `json:"embedUrl"`
}

// PlayerRequest is the /player payload.
type PlayerRequest struct {
	Context        Context `json:"context"`
	VideoID        string  `json:"videoId"`
	ContentCheckOk bool    `json:"contentCheckOk,omitempty"`
	RacyCheckOk    bool    `json:"racyCheckOk,omitempty"`
}

// BrowseRequest is the /browse payload; Continuation is set instead of
// BrowseID on follow-up pages.
type BrowseRequest struct {
	Context      Context `json:"context"`
	BrowseID     string  `json:"browseId,omitempty"`
	Params       string  `json:"params,omitempty"`
	Continuation string  `json:"continuation,omitempty"`
}

// NextRequest is the /next payload (watch-next / related items).
type NextRequest struct {
	Context Context `json:"context"`
	VideoID string  `json:"videoId"`
}

// playlistBrowseParams asks /browse for the plain video list view.
var playlistBrowseParams = base64.StdEncoding.EncodeToString([]byte{0xc2, 0x06, 0x02, 0x08, 0x00})

// channelAboutParams selects a channel's about tab.
var channelAboutParams = base64.StdEncoding.EncodeToString([]byte("\x12\x05about"))

// NewContext builds the identity block for a profile. The locale is
// pinned to en/US so upstream reason strings stay classifiable.
func NewContext(profile ClientContext) Context {
	return Context{
		Client: ClientInfo{
			ClientName:    profile.Name,
			ClientVersion: profile.Version,
			ClientScreen:  profile.Screen,
			UserAgent:     profile.UserAgent,
			AcceptLang:    "en",
			Region:        "US",
		},
	}
}

func NewPlayerRequest(profile ClientContext, videoID string) *PlayerRequest {
	req := &PlayerRequest{
		Context:        NewContext(profile),
		VideoID:        videoID,
		ContentCheckOk: true,
		RacyCheckOk:    true,
	}
	if profile.IsEmbedded() {
		req.Context.ThirdParty = &ThirdParty{
			EmbedURL: "https://www.youtube.com/watch?v=" + videoID,
		}
	}
	return req
}

func NewPlaylistBrowseRequest(profile ClientContext, playlistID string) *BrowseRequest {
	return &BrowseRequest{
		Context:  NewContext(profile),
		BrowseID: "VL" + playlistID,
		Params:   playlistBrowseParams,
	}
}

// NewChannelAboutRequest asks /browse for a channel's about page.
// Channel browse ids go on the wire verbatim, without the playlist VL
// prefix.
func NewChannelAboutRequest(profile ClientContext, channelID string) *BrowseRequest {
	return &BrowseRequest{
		Context:  NewContext(profile),
		BrowseID: channelID,
		Params:   channelAboutParams,
	}
}

// NewContinuationRequest echoes a continuation token verbatim to fetch
// the next page of an earlier browse call.
func NewContinuationRequest(profile ClientContext, token string) *BrowseRequest {
	return &BrowseRequest{
		Context:      NewContext(profile),
		Continuation: token,
	}
}

func NewNextRequest(profile ClientContext, videoID string) *NextRequest {
	return &NextRequest{
		Context: NewContext(profile),
		VideoID: videoID,
	}
}
