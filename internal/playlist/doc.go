package playlist

// Package playlist resolves playlist URLs into ordered entry lists via the
// extraction engine's flat listing mode, and parses user subset selections
// like "1,3,5-7".
