package model

import "fmt"

// URL template for a single playlist video
const WatchURLTemplate = "https://www.youtube.com/watch?v=%s"

// PlaylistEntry is one row of a flat playlist listing. Index is the 1-based
// position in the order the engine returned entries, independent of any index
// the engine itself reports. Immutable once created.
type PlaylistEntry struct {
	Index int
	ID    string
	Title string
}

// WatchURL builds the canonical per-video URL for a video identifier.
func WatchURL(videoID string) string {
	return fmt.Sprintf(WatchURLTemplate, videoID)
}

// URL returns the watch URL for the entry's video.
func (e PlaylistEntry) URL() string {
	return WatchURL(e.ID)
}

// PendingItem is the unit of work the pipeline consumes, in list order.
// Seq is the 1-based track number for tagging, 0 when not part of a playlist.
type PendingItem struct {
	URL   string
	Seq   int
	Album string
}
