// Package resume implements best-effort detection of already-downloaded
// output files so a repeated run can skip them. Matching is advisory: false
// negatives only cost a re-download, and callers confirm every skip decision
// with the user before applying it.
package resume

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

// Pattern extracting a video identifier from a watch URL
var videoIDPattern = regexp.MustCompile(`v=([\w-]+)`)

// Match is the outcome of a resume check. Pending holds the URLs still to
// download, in input order. Skipped holds the paths of the files that already
// exist. ByDir tallies skips per directory, purely for reporting.
type Match struct {
	Pending []string
	Skipped []string
	ByDir   map[string]int
}

// MatchPlaylist checks which playlist entries already exist under outFolder.
// The expected name for an entry is "{index:02d} - {title}.{ext}" and the
// search is recursive, so files moved into per-album subfolders still match.
// The first match for a name wins.
func MatchPlaylist(entries []model.PlaylistEntry, outFolder, ext string) *Match {
	found := indexFilesByName(outFolder)

	match := &Match{ByDir: make(map[string]int)}
	for _, e := range entries {
		name := platform.ExpectedPlaylistName(e.Index, e.Title, ext)
		if path, ok := found[name]; ok {
			match.Skipped = append(match.Skipped, path)
			match.ByDir[filepath.Dir(path)]++
			continue
		}
		match.Pending = append(match.Pending, e.URL())
	}
	return match
}

// MatchFlat checks a plain URL list against the files directly inside
// outFolder: a URL is skipped when a file name contains its video identifier
// and carries the target extension. URLs with no extractable identifier are
// always pending.
func MatchFlat(urls []string, outFolder, ext string) *Match {
	names := listDir(outFolder)
	suffix := "." + ext

	match := &Match{ByDir: make(map[string]int)}
	for _, u := range urls {
		id := ExtractVideoID(u)
		if id == "" {
			match.Pending = append(match.Pending, u)
			continue
		}
		matched := false
		for _, name := range names {
			if strings.Contains(name, id) && strings.HasSuffix(name, suffix) {
				path := filepath.Join(outFolder, name)
				match.Skipped = append(match.Skipped, path)
				match.ByDir[outFolder]++
				matched = true
			}
		}
		if !matched {
			match.Pending = append(match.Pending, u)
		}
	}
	return match
}

// ExtractVideoID pulls the video identifier out of a watch URL, or "" when
// the URL carries none.
func ExtractVideoID(url string) string {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// indexFilesByName walks outFolder recursively and maps each file name to the
// first path it was seen at. Walk errors are skipped; a missing folder simply
// yields no matches.
func indexFilesByName(outFolder string) map[string]string {
	found := make(map[string]string)
	_ = filepath.WalkDir(outFolder, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		if _, ok := found[name]; !ok {
			found[name] = path
		}
		return nil
	})
	return found
}

// listDir returns the file names directly inside outFolder.
func listDir(outFolder string) []string {
	entries, err := os.ReadDir(outFolder)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}
