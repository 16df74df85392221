package client

import (
	"regexp"
	"strings"
)

var (
	videoIDPattern    = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	videoURLPattern   = regexp.MustCompile(`(?:v=|/shorts/|/embed/|/v/|youtu\.be/)([0-9A-Za-z_-]{11})`)
	playlistIDPattern = regexp.MustCompile(`^(?:PL|OLAK5uy_|RDCLAK5uy_)[0-9A-Za-z_-]+$`)
	playlistURLQuery  = regexp.MustCompile(`[?&]list=((?:PL|OLAK5uy_|RDCLAK5uy_)[0-9A-Za-z_-]+)`)
	channelIDPattern  = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)
	channelURLPattern = regexp.MustCompile(`/channel/(UC[0-9A-Za-z_-]{22})`)
)

// ParseVideoID accepts a raw 11-character id or the common URL shapes
// (watch, shorts, embed, youtu.be).
func ParseVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if videoIDPattern.MatchString(s) {
		return s, nil
	}
	if m := videoURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidInput
}

// ParsePlaylistID accepts a raw playlist id or a URL carrying a list
// query parameter. Mix/radio lists (RD prefix without an underlying
// playlist) are rejected: they have no stable item listing.
func ParsePlaylistID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidPlaylist
	}
	if playlistIDPattern.MatchString(s) {
		return s, nil
	}
	if m := playlistURLQuery.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidPlaylist
}

// ParseChannelID accepts a raw UC-prefixed channel id or a /channel/
// URL. Handle and custom-name URLs are not resolved here; they need a
// network round trip to map to an id.
func ParseChannelID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidChannel
	}
	if channelIDPattern.MatchString(s) {
		return s, nil
	}
	if m := channelURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidChannel
}
