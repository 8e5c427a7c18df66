package model

// Mode selects what the engine should produce for a batch.
type Mode string

const (
	// ModeAudio extracts audio and converts it to the requested format
	ModeAudio Mode = "audio"

	// ModeVideo downloads the best available video+audio mux
	ModeVideo Mode = "video"
)

// AudioFormat is the target audio container, meaningful only when Mode is audio.
type AudioFormat string

const (
	FormatMP3  AudioFormat = "mp3"
	FormatM4A  AudioFormat = "m4a"
	FormatFLAC AudioFormat = "flac"
)

// DownloadRequest is the immutable per-batch configuration. It is built once
// by the CLI layer and consumed read-only by the pipeline and the engine.
type DownloadRequest struct {
	URLs        []string
	Mode        Mode
	AudioFormat AudioFormat

	// OutputDir is the user-selected output folder.
	OutputDir string

	// OutputTemplate is the fully resolved engine output template, including
	// uploader placeholder and optional album subfolder.
	OutputTemplate string

	// PlaylistSeq carries the 1-based sequence numbers for track tagging,
	// parallel to the pending item list. Empty for non-playlist batches.
	PlaylistSeq []int

	// Album overrides the engine-reported album tag when non-empty.
	Album string

	CookiesPath string
	Proxy       string

	// SaveDescription writes the engine-reported description to a sidecar
	// text file next to each audio result.
	SaveDescription bool

	// Subtitle preferences, video mode only.
	SubtitleLangs  []string
	EmbedSubtitles bool
}

// IsAudio reports whether the batch produces audio files.
func (r *DownloadRequest) IsAudio() bool {
	return r.Mode == ModeAudio
}

// FormatExtension returns the expected file extension for audio batches,
// without the leading dot.
func (r *DownloadRequest) FormatExtension() string {
	if r.AudioFormat == "" {
		return string(FormatMP3)
	}
	return string(r.AudioFormat)
}
