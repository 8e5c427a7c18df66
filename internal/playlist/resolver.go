package playlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytgrab/internal/model"
)

// Timeout constants
const (
	DefaultResolveTimeout = 30 * time.Second
)

// URL markers
const (
	PlaylistURLParam   = "list="
	PlaylistPathQuery  = "/playlist?"
	PlaylistPathPrefix = "/playlist/"
	WatchMarker        = "watch?"
	MusicHost          = "music.youtube.com"
)

// Title fallback for entries the engine returned without one
const UntitledPattern = "Untitled %d"

// FlatLister fetches a playlist's entries without downloading anything.
type FlatLister interface {
	ListFlat(ctx context.Context, playlistURL string) ([]model.PlaylistEntry, error)
}

// Resolver turns a playlist URL into an ordered list of entries.
type Resolver struct {
	lister  FlatLister
	timeout time.Duration
}

// NewResolver creates a resolver backed by the given flat lister.
func NewResolver(lister FlatLister) *Resolver {
	return &Resolver{
		lister:  lister,
		timeout: DefaultResolveTimeout,
	}
}

// SetTimeout sets the timeout for one flat listing call.
func (r *Resolver) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Resolve fetches the flat listing and normalizes it: entries are renumbered
// with 1-based append order regardless of any engine-reported index, and
// missing titles default to "Untitled {index}". A listing failure is fatal to
// the whole batch; no partial listing is returned.
func (r *Resolver) Resolve(ctx context.Context, url string) ([]model.PlaylistEntry, error) {
	if !IsPlaylistURL(url) {
		return nil, fmt.Errorf("not a playlist URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.lister.ListFlat(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch playlist entries: %w", err)
	}

	entries := make([]model.PlaylistEntry, 0, len(raw))
	for i, e := range raw {
		index := i + 1
		title := e.Title
		if title == "" {
			title = fmt.Sprintf(UntitledPattern, index)
		}
		entries = append(entries, model.PlaylistEntry{
			Index: index,
			ID:    e.ID,
			Title: title,
		})
	}
	return entries, nil
}

// IsPlaylistURL reports whether the URL addresses a playlist rather than a
// single video.
func IsPlaylistURL(url string) bool {
	hasMarker := strings.Contains(url, PlaylistURLParam) ||
		strings.Contains(url, PlaylistPathQuery) ||
		strings.Contains(url, PlaylistPathPrefix)
	return hasMarker && !strings.Contains(url, WatchMarker)
}

// IsMusicURL reports whether the URL points at YouTube Music, which implies
// an audio batch.
func IsMusicURL(url string) bool {
	return strings.Contains(url, MusicHost)
}
