package tag

import (
	"reflect"
	"testing"

	"github.com/ytget/ytgrab/internal/model"
)

func TestTagFields(t *testing.T) {
	tests := []struct {
		name     string
		info     *model.MediaInfo
		seq      int
		album    string
		expected map[string]string
	}{
		{
			name: "should map full metadata",
			info: &model.MediaInfo{
				Title:       "Song",
				Uploader:    "Artist",
				Album:       "Record",
				ReleaseYear: 2021,
				Genre:       "Rock",
			},
			seq: 3,
			expected: map[string]string{
				FieldTitle:  "Song",
				FieldArtist: "Artist",
				FieldAlbum:  "Record",
				FieldDate:   "2021",
				FieldGenre:  "Rock",
				FieldTrack:  "3",
			},
		},
		{
			name:     "should omit everything for empty metadata",
			info:     &model.MediaInfo{},
			expected: map[string]string{},
		},
		{
			name: "should fall back to channel for artist",
			info: &model.MediaInfo{Title: "Song", Channel: "Channel"},
			expected: map[string]string{
				FieldTitle:  "Song",
				FieldArtist: "Channel",
			},
		},
		{
			name:  "should prefer explicit album over engine metadata",
			info:  &model.MediaInfo{Album: "Engine Album", PlaylistTitle: "Playlist"},
			album: "Chosen",
			expected: map[string]string{
				FieldAlbum: "Chosen",
			},
		},
		{
			name: "should fall back to playlist title for album",
			info: &model.MediaInfo{PlaylistTitle: "Playlist"},
			expected: map[string]string{
				FieldAlbum: "Playlist",
			},
		},
		{
			name: "should derive year from upload date",
			info: &model.MediaInfo{UploadDate: "20190412"},
			expected: map[string]string{
				FieldDate: "2019",
			},
		},
		{
			name: "should prefer release year over upload date",
			info: &model.MediaInfo{ReleaseYear: 2020, UploadDate: "20190412"},
			expected: map[string]string{
				FieldDate: "2020",
			},
		},
		{
			name: "should skip too-short upload date",
			info: &model.MediaInfo{UploadDate: "201"},
			expected: map[string]string{},
		},
		{
			name:     "should omit track for zero sequence",
			info:     &model.MediaInfo{},
			seq:      0,
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagFields(tt.info, tt.seq, tt.album)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tagFields() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestContainerForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "should detect mp3",
			path:     "song.mp3",
			expected: ContainerMP3,
		},
		{
			name:     "should detect flac case-insensitively",
			path:     "song.FLAC",
			expected: ContainerFLAC,
		},
		{
			name:     "should detect m4a",
			path:     "song.m4a",
			expected: ContainerM4A,
		},
		{
			name:     "should leave unknown extensions unclassified",
			path:     "clip.mp4",
			expected: ContainerUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containerForPath(tt.path); got != tt.expected {
				t.Errorf("containerForPath(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}
