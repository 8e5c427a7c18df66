package download

import (
	"context"

	"github.com/ytget/ytgrab/internal/model"
)

// Engine is the external extraction/download capability. ListFlat resolves a
// playlist into entry metadata without downloading; Download extracts and
// downloads one URL, honoring the batch options, and returns metadata about
// the result. Both surface network and extraction failures as errors.
type Engine interface {
	ListFlat(ctx context.Context, playlistURL string) ([]model.PlaylistEntry, error)
	Download(ctx context.Context, url string, req *model.DownloadRequest) (*model.MediaInfo, error)
}

// Tagger post-processes a produced audio file: cover art plus tag fields.
// Errors are advisory; the pipeline logs them without failing the item.
type Tagger interface {
	Process(path string, info *model.MediaInfo, seq int, album string) error
}
