// Package engine provides the default extraction engine: actual downloads go
// through yt-dlp (via github.com/lrstanley/go-ytdlp) and flat playlist
// listings through github.com/ytget/ytdlp/v2, which resolves entries without
// touching any media.
package engine

import (
	"context"
	"fmt"
	"strings"

	goytdlp "github.com/lrstanley/go-ytdlp"
	ytdlpv2 "github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytgrab/internal/model"
)

// Format selectors passed to the engine
const (
	VideoFormat     = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	AudioFormatBest = "bestaudio/best"
	AudioFormatM4A  = "bestaudio[ext=m4a]/bestaudio/best"
)

// Container for merged video downloads
const VideoMergeContainer = "mp4"

// SponsorBlock categories stripped from video downloads
const SponsorblockCategories = "all"

// URL parameters
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// YTDLP is the production Engine implementation.
type YTDLP struct{}

// New creates the default engine.
func New() *YTDLP {
	return &YTDLP{}
}

// ListFlat fetches a playlist's entries without downloading. Entry order is
// the engine's returned order; the resolver renumbers and fills titles.
func (y *YTDLP) ListFlat(ctx context.Context, playlistURL string) ([]model.PlaylistEntry, error) {
	playlistID := extractPlaylistID(playlistURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", playlistURL)
	}

	d := ytdlpv2.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for i, it := range items {
		entries = append(entries, model.PlaylistEntry{
			Index: i + 1,
			ID:    it.VideoID,
			Title: it.Title,
		})
	}
	return entries, nil
}

// Download extracts and downloads one URL with the batch's option set,
// blocking until the engine finishes. There is deliberately no timeout here:
// a hang in the engine hangs the batch, matching the sequential pipeline's
// documented behavior. The caller's context still allows interrupting.
func (y *YTDLP) Download(ctx context.Context, url string, req *model.DownloadRequest) (*model.MediaInfo, error) {
	dl := buildCommand(req)

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extract and download: %w", err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil || len(infos) == 0 {
		// The download finished but metadata could not be recovered; the
		// pipeline falls back to the output template for path resolution.
		return &model.MediaInfo{}, nil
	}
	return mapInfo(infos[0]), nil
}

// buildCommand translates the batch request into an engine invocation.
func buildCommand(req *model.DownloadRequest) *goytdlp.Command {
	dl := goytdlp.New().
		ForceOverwrites().
		Output(req.OutputTemplate)

	if req.IsAudio() {
		dl = dl.ExtractAudio().AudioFormat(string(req.AudioFormat))
		if req.AudioFormat == model.FormatM4A {
			dl = dl.Format(AudioFormatM4A)
		} else {
			dl = dl.Format(AudioFormatBest)
		}
	} else {
		dl = dl.Format(VideoFormat).
			MergeOutputFormat(VideoMergeContainer).
			WriteSubs().
			WriteAutoSubs().
			SponsorblockRemove(SponsorblockCategories)
		if req.EmbedSubtitles {
			dl = dl.EmbedSubs()
		}
		if len(req.SubtitleLangs) > 0 {
			dl = dl.SubLangs(strings.Join(req.SubtitleLangs, ","))
		}
	}

	if req.CookiesPath != "" {
		dl = dl.Cookies(req.CookiesPath)
	}
	if req.Proxy != "" {
		dl = dl.Proxy(req.Proxy)
	}
	return dl
}

// mapInfo converts the engine's extracted info into the domain metadata,
// dropping absent fields to zero values.
func mapInfo(in *goytdlp.ExtractedInfo) *model.MediaInfo {
	info := &model.MediaInfo{
		Filepath:      strValue(in.Filename),
		Title:         strValue(in.Title),
		Uploader:      strValue(in.Uploader),
		Channel:       strValue(in.Channel),
		Album:         strValue(in.Album),
		PlaylistTitle: strValue(in.PlaylistTitle),
		PlaylistIndex: intValue(in.PlaylistIndex),
		ReleaseYear:   intValue(in.ReleaseYear),
		UploadDate:    strValue(in.UploadDate),
		Genre:         strValue(in.Genre),
		Thumbnail:     strValue(in.Thumbnail),
		Description:   strValue(in.Description),
	}
	for _, t := range in.Thumbnails {
		if t == nil {
			continue
		}
		if u := t.URL; u != "" {
			info.Thumbnails = append(info.Thumbnails, u)
		}
	}
	return info
}

// extractPlaylistID extracts the playlist ID from the supported URL formats:
// watch URLs with a list parameter and bare playlist URLs.
func extractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistParam) {
		return ""
	}
	parts := strings.Split(url, PlaylistParam)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if strings.Contains(id, ParamSeparator) {
		id = strings.Split(id, ParamSeparator)[0]
	}
	return id
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
