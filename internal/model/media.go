package model

// MediaInfo is the metadata the extraction engine reports for one downloaded
// item. Zero values mean the engine did not supply the field.
type MediaInfo struct {
	// Filepath is the engine-reported path of the produced file, when the
	// engine resolved one.
	Filepath string

	Title         string
	Uploader      string
	Channel       string
	Album         string
	PlaylistTitle string
	PlaylistIndex int
	ReleaseYear   int
	UploadDate    string
	Genre         string

	// Thumbnail is the engine's single preferred thumbnail URL. Thumbnails
	// holds the full list, ordered by ascending resolution.
	Thumbnail  string
	Thumbnails []string

	Description string
}

// Artist returns the uploader, falling back to the channel name.
func (m *MediaInfo) Artist() string {
	if m.Uploader != "" {
		return m.Uploader
	}
	return m.Channel
}

// BestThumbnail returns the preferred thumbnail URL: the engine's single
// reported thumbnail, otherwise the last (heuristically largest) entry of the
// thumbnail list, otherwise "".
func (m *MediaInfo) BestThumbnail() string {
	if m.Thumbnail != "" {
		return m.Thumbnail
	}
	if len(m.Thumbnails) > 0 {
		return m.Thumbnails[len(m.Thumbnails)-1]
	}
	return ""
}
