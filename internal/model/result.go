package model

import (
	"fmt"

	"github.com/google/uuid"
)

// FileKind classifies a produced file.
type FileKind string

const (
	KindAudio FileKind = "Audio"
	KindVideo FileKind = "Video"
)

// StatusSuccess is the status recorded for a completed item.
const StatusSuccess = "Success"

// FailStatus formats the status recorded for an item whose retries were
// exhausted.
func FailStatus(err error) string {
	return fmt.Sprintf("FAIL: %v", err)
}

// DownloadResult is one summary row. Path holds the resolved file path, or the
// original URL when resolution failed. Never mutated after being appended to a
// batch.
type DownloadResult struct {
	Path   string
	Kind   FileKind
	Status string
	Size   string
}

// Succeeded reports whether the row records a successful download.
func (r DownloadResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// BatchResult accumulates the ordered summary of one pipeline run. Rows holds
// exactly one DownloadResult per pending item, in input order. Failed lists
// the bare URLs of items whose retries were exhausted, for easy re-queueing.
type BatchResult struct {
	ID     string
	Rows   []DownloadResult
	Failed []string
}

// NewBatchResult creates an empty batch summary with a unique identifier.
func NewBatchResult() *BatchResult {
	return &BatchResult{ID: uuid.NewString()}
}

// Append records a terminal row for one pending item.
func (b *BatchResult) Append(row DownloadResult) {
	b.Rows = append(b.Rows, row)
}

// AddFailed records the URL of an item that exhausted its retries.
func (b *BatchResult) AddFailed(url string) {
	b.Failed = append(b.Failed, url)
}

// HasFailures reports whether any item exhausted its retries.
func (b *BatchResult) HasFailures() bool {
	return len(b.Failed) > 0
}
