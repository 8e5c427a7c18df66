package tag

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/ytgrab/internal/model"
)

// Timeout for one thumbnail fetch. The download itself carries no timeout;
// only this auxiliary request does.
const ThumbnailFetchTimeout = 8 * time.Second

// Embedder downloads cover art and writes audio tags after a file has been
// produced. Cover embedding and tag writing are independent: failure of one
// never prevents the other.
type Embedder struct {
	client *http.Client
	log    *zap.SugaredLogger
}

// NewEmbedder creates an embedder with the default thumbnail fetch timeout.
func NewEmbedder(log *zap.SugaredLogger) *Embedder {
	return &Embedder{
		client: &http.Client{Timeout: ThumbnailFetchTimeout},
		log:    log,
	}
}

// Process embeds cover art and writes tags for the audio file at path using
// the engine-reported metadata. seq is the batch-supplied track number
// (0 = none) and album the batch-level album override. The returned error
// aggregates what went wrong, but callers treat it as advisory: the audio
// file keeps its content either way.
func (e *Embedder) Process(path string, info *model.MediaInfo, seq int, album string) error {
	container := containerForPath(path)

	var coverErr error
	if ref := info.BestThumbnail(); ref == "" {
		e.log.Debugw("no thumbnail reported, skipping cover art", "path", path)
	} else {
		coverErr = e.embedFrom(ref, path, container)
		if coverErr != nil {
			e.log.Warnw("cover art embedding failed", "path", path, "error", coverErr)
		}
	}

	tagErr := writeTags(path, container, tagFields(info, seq, album))
	if tagErr != nil {
		e.log.Warnw("tag writing failed", "path", path, "error", tagErr)
	}

	return errors.Join(coverErr, tagErr)
}

// embedFrom materializes the thumbnail reference as a JPEG and attaches it to
// the container. The temporary file is removed afterwards; a pre-existing
// local path supplied directly is left alone.
func (e *Embedder) embedFrom(ref, path, container string) error {
	img, owned, err := e.materializeCover(ref)
	if err != nil {
		return err
	}
	if owned {
		defer os.Remove(img)
	}
	if err := embedCover(path, img, container); err != nil {
		return fmt.Errorf("embed cover: %w", err)
	}
	return nil
}
