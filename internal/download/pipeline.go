package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

// DefaultMaxAttempts is the total number of attempts per item, counting the
// first one.
const DefaultMaxAttempts = 2

// Extensions that classify a produced file as audio regardless of batch mode
var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
}

// EventStage identifies a pipeline progress event.
type EventStage string

const (
	EventItemStart EventStage = "start"
	EventItemRetry EventStage = "retry"
	EventItemDone  EventStage = "done"
	EventItemFail  EventStage = "fail"
)

// Event is reported to the observer callback as items progress, so a UI can
// render per-item state without the pipeline knowing about rendering.
type Event struct {
	Stage   EventStage
	Index   int
	Total   int
	Attempt int
	URL     string
	Err     error
}

// Pipeline is the canonical sequential download loop. One item is fully
// downloaded and tagged before the next begins, which guarantees summary rows
// in input order and keeps retry bookkeeping trivial. The only mutable state
// is the batch summary, owned exclusively by the calling goroutine.
type Pipeline struct {
	engine      Engine
	tagger      Tagger
	log         *zap.SugaredLogger
	maxAttempts int
	onEvent     func(Event)
}

// NewPipeline creates a pipeline with the default retry bound.
func NewPipeline(engine Engine, tagger Tagger, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		engine:      engine,
		tagger:      tagger,
		log:         log,
		maxAttempts: DefaultMaxAttempts,
	}
}

// SetMaxAttempts sets the total attempts per item, including the first.
func (p *Pipeline) SetMaxAttempts(n int) {
	if n < 1 {
		n = 1
	}
	p.maxAttempts = n
}

// SetEventFunc sets the observer callback for item progress events.
func (p *Pipeline) SetEventFunc(fn func(Event)) {
	p.onEvent = fn
}

// Run processes the pending items in order and returns the batch summary:
// exactly one row per item that reached a terminal outcome, in input order.
// A single item exhausting its retries never stops processing of subsequent
// items. On context cancellation the loop stops accepting new items and the
// in-flight item is abandoned without a recorded row.
func (p *Pipeline) Run(ctx context.Context, req *model.DownloadRequest, items []model.PendingItem) *model.BatchResult {
	batch := model.NewBatchResult()
	total := len(items)

	for i, item := range items {
		if ctx.Err() != nil {
			p.log.Warnw("batch interrupted", "processed", i, "total", total)
			break
		}

		row, recorded := p.runItem(ctx, req, item, i+1, total)
		if !recorded {
			break
		}
		batch.Append(row)
		if !row.Succeeded() {
			batch.AddFailed(item.URL)
		}
	}
	return batch
}

// runItem drives one pending item to a terminal outcome with bounded retries.
// recorded is false only when the context was cancelled before the item
// terminated.
func (p *Pipeline) runItem(ctx context.Context, req *model.DownloadRequest, item model.PendingItem, index, total int) (row model.DownloadResult, recorded bool) {
	var lastErr error

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		p.emit(Event{Stage: EventItemStart, Index: index, Total: total, Attempt: attempt, URL: item.URL})

		row, lastErr = p.attempt(ctx, req, item)
		if lastErr == nil {
			p.emit(Event{Stage: EventItemDone, Index: index, Total: total, Attempt: attempt, URL: item.URL})
			return row, true
		}

		if ctx.Err() != nil {
			return model.DownloadResult{}, false
		}

		if attempt < p.maxAttempts {
			p.log.Infow("retrying download", "url", item.URL, "attempt", attempt, "max", p.maxAttempts, "error", lastErr)
			p.emit(Event{Stage: EventItemRetry, Index: index, Total: total, Attempt: attempt, URL: item.URL, Err: lastErr})
		}
	}

	p.log.Errorw("download failed", "url", item.URL, "error", lastErr)
	p.emit(Event{Stage: EventItemFail, Index: index, Total: total, Attempt: p.maxAttempts, URL: item.URL, Err: lastErr})

	return model.DownloadResult{
		Path:   item.URL,
		Kind:   model.KindVideo,
		Status: model.FailStatus(lastErr),
	}, true
}

// attempt performs one extraction plus post-processing pass for an item.
func (p *Pipeline) attempt(ctx context.Context, req *model.DownloadRequest, item model.PendingItem) (model.DownloadResult, error) {
	info, err := p.engine.Download(ctx, item.URL, req)
	if err != nil {
		return model.DownloadResult{}, err
	}

	finalPath := info.Filepath
	if finalPath == "" {
		finalPath = req.OutputTemplate
	}

	size := ""
	if n, ok := platform.FileSize(finalPath); ok {
		size = humanize.IBytes(uint64(n))
	}

	kind := model.KindVideo
	if req.IsAudio() || isAudioPath(finalPath) {
		kind = model.KindAudio
	}

	if kind == model.KindAudio && finalPath != "" {
		album := item.Album
		if album == "" {
			album = req.Album
		}
		if err := p.tagger.Process(finalPath, info, item.Seq, album); err != nil {
			// Tagging is best effort: the file keeps its audio content,
			// untagged or partially tagged.
			p.log.Warnw("tagging incomplete", "path", finalPath, "error", err)
		}
		if req.SaveDescription {
			if err := saveDescription(finalPath, info.Description); err != nil {
				return model.DownloadResult{}, err
			}
		}
	}

	path := finalPath
	if path == "" {
		path = item.URL
	}
	return model.DownloadResult{
		Path:   path,
		Kind:   kind,
		Status: model.StatusSuccess,
		Size:   size,
	}, nil
}

// saveDescription writes the engine-reported description next to the media
// file. Empty descriptions write nothing.
func saveDescription(mediaPath, description string) error {
	if description == "" {
		return nil
	}
	path := platform.DescriptionPath(mediaPath)
	if err := os.WriteFile(path, []byte(description), 0644); err != nil {
		return fmt.Errorf("save description: %w", err)
	}
	return nil
}

func isAudioPath(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

func (p *Pipeline) emit(ev Event) {
	if p.onEvent != nil {
		p.onEvent(ev)
	}
}
