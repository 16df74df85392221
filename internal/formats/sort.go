package formats

import "sort"

// SortByQuality orders formats best first: video formats by height then
// fps then bitrate, audio-only formats after video, by bitrate.
func SortByQuality(fs []Format) {
	sort.SliceStable(fs, func(i, j int) bool {
		a, b := fs[i], fs[j]
		if a.HasVideo != b.HasVideo {
			return a.HasVideo
		}
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		if a.FPS != b.FPS {
			return a.FPS > b.FPS
		}
		return a.Bitrate > b.Bitrate
	})
}
