package download

// Package download implements the core download pipeline: it drives the
// extraction engine through a pending item list with bounded per-item
// retries, resolves produced file paths, triggers tagging for audio results
// and accumulates an ordered batch summary. A secondary concurrent pool
// covers the advanced multi-item flow with weaker guarantees.
