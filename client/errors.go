package client

import (
	"errors"
	"fmt"

	"github.com/ytkit/ytkit/internal/playability"
)

var (
	// ErrInvalidInput means the input is neither a video id nor a
	// recognizable video URL.
	ErrInvalidInput = errors.New("not a video id or recognizable video url")

	// ErrInvalidPlaylist means the input is neither a playlist id nor a
	// recognizable playlist URL.
	ErrInvalidPlaylist = errors.New("not a playlist id or recognizable playlist url")

	// ErrInvalidChannel means the input is neither a channel id nor a
	// recognizable channel URL.
	ErrInvalidChannel = errors.New("not a channel id or recognizable channel url")

	// ErrFormatNotFound means the requested itag is not among the
	// video's formats.
	ErrFormatNotFound = errors.New("no format with the requested itag")
)

// Category describes why a video is unavailable.
type Category int

const (
	// Unclassified is reason wording the library does not recognize;
	// see VideoUnavailableError.Reason for the original text.
	Unclassified Category = iota
	NotFound
	Private
	GeoRestricted
	AgeRestricted
	PurchaseRequired
	CommunityGuideline
	TermsOfService
	AccountTerminated
	RemovedByUploader
	CopyrightClaim
	Unviewable
)

func (c Category) String() string {
	return playability.Category(c).String()
}

// VideoUnavailableError is returned when the platform refuses to play
// a video. It is a domain condition, not a transport failure: the same
// request will keep failing the same way.
type VideoUnavailableError struct {
	VideoID  string
	Category Category
	// Claimant is set for CopyrightClaim.
	Claimant string
	// StatusCode is the upstream status, e.g. "ERROR", "LOGIN_REQUIRED".
	StatusCode string
	// Reason is the original reason text for Unclassified categories.
	Reason string
}

func (e *VideoUnavailableError) Error() string {
	switch e.Category {
	case Unclassified:
		return fmt.Sprintf("video %s unavailable: %q (status %s)", e.VideoID, e.Reason, e.StatusCode)
	case CopyrightClaim:
		return fmt.Sprintf("video %s unavailable: copyright claim by %q", e.VideoID, e.Claimant)
	}
	return fmt.Sprintf("video %s unavailable: %s", e.VideoID, e.Category)
}

// mapError rewrites internal domain errors into the public surface.
// Transport, status and schema errors pass through unchanged.
func mapError(videoID string, err error) error {
	var domainErr *playability.Error
	if errors.As(err, &domainErr) {
		return &VideoUnavailableError{
			VideoID:    videoID,
			Category:   Category(domainErr.Status.Category),
			Claimant:   domainErr.Status.Claimant,
			StatusCode: domainErr.Status.Code,
			Reason:     domainErr.Status.Raw,
		}
	}
	return err
}
