package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/ytgrab/internal/model"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestMatchPlaylist(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "01 - First.mp3"))
	touch(t, filepath.Join(dir, "Album", "03 - Third.mp3"))

	entries := []model.PlaylistEntry{
		{Index: 1, ID: "aaa", Title: "First"},
		{Index: 2, ID: "bbb", Title: "Second"},
		{Index: 3, ID: "ccc", Title: "Third"},
	}

	match := MatchPlaylist(entries, dir, "mp3")

	if len(match.Skipped) != 2 {
		t.Fatalf("expected 2 skipped, got %d: %v", len(match.Skipped), match.Skipped)
	}
	if len(match.Pending) != 1 {
		t.Fatalf("expected 1 pending, got %d: %v", len(match.Pending), match.Pending)
	}
	if match.Pending[0] != entries[1].URL() {
		t.Errorf("expected pending URL %q, got %q", entries[1].URL(), match.Pending[0])
	}
	if match.ByDir[dir] != 1 {
		t.Errorf("expected 1 skip in root dir, got %d", match.ByDir[dir])
	}
	if match.ByDir[filepath.Join(dir, "Album")] != 1 {
		t.Errorf("expected 1 skip in Album dir, got %d", match.ByDir[filepath.Join(dir, "Album")])
	}
}

func TestMatchPlaylistExtensionMismatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "01 - First.mp3"))

	entries := []model.PlaylistEntry{{Index: 1, ID: "aaa", Title: "First"}}

	match := MatchPlaylist(entries, dir, "flac")
	if len(match.Skipped) != 0 {
		t.Errorf("mp3 file should not satisfy a flac check, skipped: %v", match.Skipped)
	}
	if len(match.Pending) != 1 {
		t.Errorf("expected 1 pending, got %d", len(match.Pending))
	}
}

func TestMatchPlaylistMissingFolder(t *testing.T) {
	entries := []model.PlaylistEntry{{Index: 1, ID: "aaa", Title: "First"}}

	match := MatchPlaylist(entries, filepath.Join(t.TempDir(), "missing"), "mp3")
	if len(match.Pending) != 1 || len(match.Skipped) != 0 {
		t.Errorf("missing folder should leave everything pending, got %+v", match)
	}
}

func TestMatchFlat(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Some Song [dQw4w9WgXcQ].mp3"))
	touch(t, filepath.Join(dir, "Other [zzz].mp4"))

	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=zzz",
		"https://www.youtube.com/watch?v=missing123",
	}

	match := MatchFlat(urls, dir, "mp3")

	if len(match.Skipped) != 1 {
		t.Fatalf("expected 1 skipped, got %d: %v", len(match.Skipped), match.Skipped)
	}
	// The mp4 file carries the right identifier but the wrong extension.
	if len(match.Pending) != 2 {
		t.Fatalf("expected 2 pending, got %d: %v", len(match.Pending), match.Pending)
	}
	if match.Pending[0] != urls[1] || match.Pending[1] != urls[2] {
		t.Errorf("pending should preserve input order, got %v", match.Pending)
	}
}

func TestMatchFlatNonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "sub", "Song [abc123].mp3"))

	match := MatchFlat([]string{"https://www.youtube.com/watch?v=abc123"}, dir, "mp3")
	if len(match.Skipped) != 0 {
		t.Errorf("flat matching should not descend into subdirectories, skipped: %v", match.Skipped)
	}
}

func TestMatchFlatNoIdentifier(t *testing.T) {
	dir := t.TempDir()
	url := "https://youtu.be/abc123"

	match := MatchFlat([]string{url}, dir, "mp3")
	if len(match.Pending) != 1 || match.Pending[0] != url {
		t.Errorf("URL without v= parameter should stay pending, got %+v", match)
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "should extract plain identifier",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "should extract identifier with underscore and dash",
			url:      "https://www.youtube.com/watch?v=a_b-C1&list=PLx",
			expected: "a_b-C1",
		},
		{
			name:     "should return empty for short URL",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			expected: "",
		},
		{
			name:     "should return empty for empty string",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.url); got != tt.expected {
				t.Errorf("ExtractVideoID(%q) = %q, expected %q", tt.url, got, tt.expected)
			}
		})
	}
}
