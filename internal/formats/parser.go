// Package formats normalizes the raw streaming data of a player
// response into flat stream descriptors.
package formats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ytkit/ytkit/internal/innertube"
)

// Format is one normalized stream variant.
type Format struct {
	Itag             int
	URL              string
	MimeType         string
	Codecs           string
	Bitrate          int
	Width            int
	Height           int
	FPS              int
	Quality          string
	QualityLabel     string
	AudioQuality     string
	AudioSampleRate  int
	AudioChannels    int
	ContentLength    int64
	ApproxDurationMs int64
	HasVideo         bool
	HasAudio         bool

	// Ciphered formats carry no direct URL; RawCipher holds the
	// signatureCipher query string to resolve one from.
	Ciphered  bool
	RawCipher string
}

var codecsPattern = regexp.MustCompile(`codecs="([^"]+)"`)

// Parse flattens muxed and adaptive formats into one list, preserving
// upstream order (muxed first).
func Parse(resp *innertube.PlayerResponse) []Format {
	if resp == nil {
		return nil
	}
	out := make([]Format, 0, len(resp.StreamingData.Formats)+len(resp.StreamingData.AdaptiveFormats))
	for _, f := range resp.StreamingData.Formats {
		out = append(out, normalize(f))
	}
	for _, f := range resp.StreamingData.AdaptiveFormats {
		out = append(out, normalize(f))
	}
	return out
}

func normalize(f innertube.Format) Format {
	cipher := f.SignatureCipher
	if cipher == "" {
		cipher = f.Cipher
	}

	n := Format{
		Itag:          f.Itag,
		URL:           f.URL,
		MimeType:      f.MimeType,
		Bitrate:       f.Bitrate,
		Width:         f.Width,
		Height:        f.Height,
		FPS:           f.FPS,
		Quality:       f.Quality,
		QualityLabel:  f.QualityLabel,
		AudioQuality:  f.AudioQuality,
		AudioChannels: f.AudioChannels,
		Ciphered:      f.URL == "" && cipher != "",
		RawCipher:     cipher,
	}

	if m := codecsPattern.FindStringSubmatch(f.MimeType); len(m) == 2 {
		n.Codecs = m[1]
	}
	n.AudioSampleRate, _ = strconv.Atoi(f.AudioSampleRate)
	n.ContentLength, _ = strconv.ParseInt(f.ContentLength, 10, 64)
	n.ApproxDurationMs, _ = strconv.ParseInt(f.ApproxDurationMs, 10, 64)

	n.HasVideo = strings.HasPrefix(f.MimeType, "video/")
	n.HasAudio = strings.HasPrefix(f.MimeType, "audio/") || f.AudioQuality != ""
	return n
}
