package tag

// Package tag post-processes downloaded audio files: it materializes the best
// available thumbnail as a JPEG, embeds it as front-cover art and writes the
// standard tag fields for mp3, flac and m4a containers. Other containers are
// silently left untouched.
