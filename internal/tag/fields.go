package tag

import (
	"strconv"

	"github.com/ytget/ytgrab/internal/model"
)

// Tag field keys, shared across container writers
const (
	FieldTitle  = "title"
	FieldArtist = "artist"
	FieldAlbum  = "album"
	FieldDate   = "date"
	FieldGenre  = "genre"
	FieldTrack  = "tracknumber"
)

// Length of the year prefix of an upload date string (YYYYMMDD)
const yearPrefixLen = 4

// tagFields maps engine metadata to the tag fields to write. Empty values are
// never included, so no field is ever set to an empty string. The album
// argument overrides engine metadata when non-empty; seq is written as the
// track number only when positive.
func tagFields(info *model.MediaInfo, seq int, album string) map[string]string {
	fields := make(map[string]string)

	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	put(FieldTitle, info.Title)
	put(FieldArtist, info.Artist())

	switch {
	case album != "":
		fields[FieldAlbum] = album
	case info.Album != "":
		fields[FieldAlbum] = info.Album
	case info.PlaylistTitle != "":
		fields[FieldAlbum] = info.PlaylistTitle
	}

	switch {
	case info.ReleaseYear > 0:
		fields[FieldDate] = strconv.Itoa(info.ReleaseYear)
	case len(info.UploadDate) >= yearPrefixLen:
		fields[FieldDate] = info.UploadDate[:yearPrefixLen]
	}

	put(FieldGenre, info.Genre)

	if seq > 0 {
		fields[FieldTrack] = strconv.Itoa(seq)
	}
	return fields
}
