package client

// VideoInfo is the metadata surface of a playable video.
type VideoInfo struct {
	ID          string
	Title       string
	Author      string
	ChannelID   string
	Description string
	DurationSec int64
	ViewCount   int64
	Keywords    []string
	Category    string
	PublishDate string
	UploadDate  string
	IsLive      bool
	IsPrivate   bool
	IsUnlisted  bool
	FamilySafe  bool
	Thumbnails  []Thumbnail
}

// Thumbnail is one preview image variant.
type Thumbnail struct {
	URL    string
	Width  int
	Height int
}

// PlaylistVideo is one entry of a playlist listing. Unavailable
// entries (deleted, private) are delivered with Playable false.
type PlaylistVideo struct {
	ID            string
	Title         string
	Author        string
	LengthSeconds string
	Playable      bool
}
