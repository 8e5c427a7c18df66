package model

// Package model defines domain data structures shared across the app: batch
// requests, playlist entries, pending download items, per-item results and
// engine metadata. Entities are created per batch and never mutated after the
// batch records them.
