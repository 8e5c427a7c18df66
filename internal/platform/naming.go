package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/ytgrab/internal/model"
)

// Engine template placeholders
const (
	UploaderPlaceholder      = "%(uploader)s"
	TitlePattern             = "%(title)s.%(ext)s"
	PlaylistTitlePattern     = "%(playlist_index)02d - %(title)s.%(ext)s"
	ExpectedNamePattern      = "%02d - %s.%s"
	DescriptionFileExtension = ".txt"
)

// Characters that cannot appear in a path segment
var sanitizeReplacer = strings.NewReplacer(
	"/", "_",
	`\`, "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// Sanitize replaces each path-hostile character with an underscore. No other
// transformation is applied; in particular long titles are not truncated, so
// very long video titles can still exceed filesystem component limits.
func Sanitize(s string) string {
	return sanitizeReplacer.Replace(s)
}

// OutputTemplate builds the engine output template for a batch:
// {folder}/%(uploader)s/[{album}/]{pattern}. The playlist-index pattern is
// used only for playlist audio batches; the album subfolder only when an
// album name was resolved for one of those.
func OutputTemplate(folder string, mode model.Mode, playlist bool, album string) string {
	base := filepath.Join(folder, UploaderPlaceholder)
	if mode == model.ModeAudio && playlist {
		if album != "" {
			base = filepath.Join(base, Sanitize(album))
		}
		return filepath.Join(base, PlaylistTitlePattern)
	}
	return filepath.Join(base, TitlePattern)
}

// ExpectedPlaylistName is the deterministic on-disk name for a playlist entry,
// used by the resume matcher: "{index:02d} - {title}.{ext}".
func ExpectedPlaylistName(index int, title, ext string) string {
	return fmt.Sprintf(ExpectedNamePattern, index, Sanitize(title), ext)
}

// DescriptionPath returns the sidecar text file path for a media file: same
// base name, text extension.
func DescriptionPath(mediaPath string) string {
	ext := filepath.Ext(mediaPath)
	return strings.TrimSuffix(mediaPath, ext) + DescriptionFileExtension
}
