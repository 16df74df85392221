package innertube

// Response schema for the slices of the upstream JSON this core
// consumes. The full payloads are far deeper; everything else is the
// data-model layer's concern.

// PlayerResponse is the top-level /player response.
type PlayerResponse struct {
	PlayabilityStatus PlayabilityStatus `json:"playabilityStatus"`
	StreamingData     StreamingData     `json:"streamingData"`
	VideoDetails      VideoDetails      `json:"videoDetails"`
	Microformat       Microformat       `json:"microformat"`
}

type PlayabilityStatus struct {
	Status          string `json:"status"`
	Reason          string `json:"reason"`
	PlayableInEmbed bool   `json:"playableInEmbed"`
}

func (p *PlayabilityStatus) IsOK() bool { return p.Status == "OK" }

type StreamingData struct {
	ExpiresInSeconds string   `json:"expiresInSeconds"`
	Formats          []Format `json:"formats"`
	AdaptiveFormats  []Format `json:"adaptiveFormats"`
}

type Format struct {
	Itag             int    `json:"itag"`
	URL              string `json:"url"`
	MimeType         string `json:"mimeType"`
	Bitrate          int    `json:"bitrate"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	FPS              int    `json:"fps"`
	ContentLength    string `json:"contentLength"`
	Quality          string `json:"quality"`
	QualityLabel     string `json:"qualityLabel"`
	AudioQuality     string `json:"audioQuality"`
	AudioSampleRate  string `json:"audioSampleRate"`
	AudioChannels    int    `json:"audioChannels"`
	ApproxDurationMs string `json:"approxDurationMs"`
	SignatureCipher  string `json:"signatureCipher"`
	Cipher           string `json:"cipher"` // legacy field name
}

type VideoDetails struct {
	VideoID          string           `json:"videoId"`
	Title            string           `json:"title"`
	LengthSeconds    string           `json:"lengthSeconds"`
	Keywords         []string         `json:"keywords"`
	ChannelID        string           `json:"channelId"`
	ShortDescription string           `json:"shortDescription"`
	Thumbnail        ThumbnailDetails `json:"thumbnail"`
	ViewCount        string           `json:"viewCount"`
	Author           string           `json:"author"`
	IsPrivate        bool             `json:"isPrivate"`
	IsLiveContent    bool             `json:"isLiveContent"`
}

type ThumbnailDetails struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Microformat struct {
	PlayerMicroformatRenderer PlayerMicroformatRenderer `json:"playerMicroformatRenderer"`
}

type PlayerMicroformatRenderer struct {
	IsFamilySafe bool   `json:"isFamilySafe"`
	IsUnlisted   bool   `json:"isUnlisted"`
	Category     string `json:"category"`
	PublishDate  string `json:"publishDate"`
	UploadDate   string `json:"uploadDate"`
}

// BrowseResponse covers first /browse pages (playlist and channel),
// continuation pages (items arrive under received-actions) and the
// alert-only shape served for missing listings.
type BrowseResponse struct {
	Contents                  *BrowseContents            `json:"contents"`
	Header                    *BrowseHeader              `json:"header"`
	Metadata                  *BrowseMetadata            `json:"metadata"`
	OnResponseReceivedActions []OnResponseReceivedAction `json:"onResponseReceivedActions"`
	Alerts                    []Alert                    `json:"alerts"`
}

type BrowseHeader struct {
	C4TabbedHeaderRenderer *C4TabbedHeaderRenderer `json:"c4TabbedHeaderRenderer"`
}

type C4TabbedHeaderRenderer struct {
	Title               string           `json:"title"`
	ChannelID           string           `json:"channelId"`
	Avatar              ThumbnailDetails `json:"avatar"`
	Banner              ThumbnailDetails `json:"banner"`
	SubscriberCountText LangText         `json:"subscriberCountText"`
}

type BrowseMetadata struct {
	ChannelMetadataRenderer *ChannelMetadataRenderer `json:"channelMetadataRenderer"`
}

type ChannelMetadataRenderer struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	IsFamilySafe bool   `json:"isFamilySafe"`
}

type OnResponseReceivedAction struct {
	AppendContinuationItemsAction *AppendContinuationItemsAction `json:"appendContinuationItemsAction"`
}

type AppendContinuationItemsAction struct {
	ContinuationItems []PlaylistItem `json:"continuationItems"`
}

type BrowseContents struct {
	TwoColumnBrowseResultsRenderer *TwoColumnBrowseResultsRenderer `json:"twoColumnBrowseResultsRenderer"`
}

type TwoColumnBrowseResultsRenderer struct {
	Tabs []Tab `json:"tabs"`
}

type Tab struct {
	TabRenderer *TabRenderer `json:"tabRenderer"`
}

type TabRenderer struct {
	Content *TabContent `json:"content"`
}

type TabContent struct {
	SectionListRenderer *SectionListRenderer `json:"sectionListRenderer"`
}

type SectionListRenderer struct {
	Contents []SectionListContent `json:"contents"`
}

type SectionListContent struct {
	ItemSectionRenderer *ItemSectionRenderer `json:"itemSectionRenderer"`
}

type ItemSectionRenderer struct {
	Contents []ItemSectionContent `json:"contents"`
}

type ItemSectionContent struct {
	PlaylistVideoListRenderer        *PlaylistVideoListRenderer        `json:"playlistVideoListRenderer"`
	ChannelAboutFullMetadataRenderer *ChannelAboutFullMetadataRenderer `json:"channelAboutFullMetadataRenderer"`
}

// ChannelAboutFullMetadataRenderer is the about-tab payload of a
// channel browse.
type ChannelAboutFullMetadataRenderer struct {
	Description    LangText `json:"description"`
	ViewCountText  LangText `json:"viewCountText"`
	Country        LangText `json:"country"`
	JoinedDateText LangText `json:"joinedDateText"`
}

type PlaylistVideoListRenderer struct {
	Contents []PlaylistItem `json:"contents"`
}

// PlaylistItem is either a video renderer or the page's trailing
// continuation marker; exactly one field is set.
type PlaylistItem struct {
	PlaylistVideoRenderer    *PlaylistVideoRenderer    `json:"playlistVideoRenderer"`
	ContinuationItemRenderer *ContinuationItemRenderer `json:"continuationItemRenderer"`
}

type PlaylistVideoRenderer struct {
	VideoID         string   `json:"videoId"`
	Title           LangText `json:"title"`
	ShortBylineText LangText `json:"shortBylineText"`
	LengthSeconds   string   `json:"lengthSeconds"`
	IsPlayable      bool     `json:"isPlayable"`
}

type ContinuationItemRenderer struct {
	ContinuationEndpoint ContinuationEndpoint `json:"continuationEndpoint"`
}

// Token returns the opaque continuation cursor.
func (c *ContinuationItemRenderer) Token() string {
	return c.ContinuationEndpoint.ContinuationCommand.Token
}

type ContinuationEndpoint struct {
	ContinuationCommand ContinuationCommand `json:"continuationCommand"`
}

type ContinuationCommand struct {
	Token string `json:"token"`
}

type Alert struct {
	AlertRenderer *AlertRenderer `json:"alertRenderer"`
}

type AlertRenderer struct {
	Type string   `json:"type"`
	Text LangText `json:"text"`
}

type LangText struct {
	SimpleText string    `json:"simpleText"`
	Runs       []TextRun `json:"runs"`
}

type TextRun struct {
	Text string `json:"text"`
}

// NextResponse is the slice of the /next payload the related-videos
// surface consumes.
type NextResponse struct {
	Contents *NextContents `json:"contents"`
}

type NextContents struct {
	TwoColumnWatchNextResults *TwoColumnWatchNextResults `json:"twoColumnWatchNextResults"`
}

type TwoColumnWatchNextResults struct {
	SecondaryResults *SecondaryResults `json:"secondaryResults"`
}

type SecondaryResults struct {
	SecondaryResults *SecondaryResultsInner `json:"secondaryResults"`
}

type SecondaryResultsInner struct {
	Results []RelatedItem `json:"results"`
}

// RelatedItem is one sidebar entry. Compact videos are the only kind
// surfaced; playlists, mixes and the trailing continuation marker are
// skipped by callers.
type RelatedItem struct {
	CompactVideoRenderer     *CompactVideoRenderer     `json:"compactVideoRenderer"`
	ContinuationItemRenderer *ContinuationItemRenderer `json:"continuationItemRenderer"`
}

type CompactVideoRenderer struct {
	VideoID         string           `json:"videoId"`
	Title           LangText         `json:"title"`
	ShortBylineText LangText         `json:"shortBylineText"`
	LengthText      LangText         `json:"lengthText"`
	ViewCountText   LangText         `json:"viewCountText"`
	Thumbnail       ThumbnailDetails `json:"thumbnail"`
}

// Value flattens the two text encodings upstream alternates between.
func (t LangText) Value() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	out := ""
	for _, r := range t.Runs {
		out += r.Text
	}
	return out
}
