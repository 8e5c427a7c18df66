// Package app wires the interactive command-line flow: flag handling, config
// precedence, URL collection, playlist selection, resume confirmation and the
// download pipeline itself.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/engine"
	"github.com/ytget/ytgrab/internal/logger"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
	"github.com/ytget/ytgrab/internal/playlist"
	"github.com/ytget/ytgrab/internal/resume"
	"github.com/ytget/ytgrab/internal/tag"
	"github.com/ytget/ytgrab/internal/ui"
)

// Default output folder for fresh runs
const DefaultDownloadsDir = "Downloads"

// Config subcommands
const (
	ConfigShow       = "show"
	ConfigSetProxy   = "set-proxy"
	ConfigClearProxy = "clear-proxy"
)

// Sentinel inputs at the URL prompt
const (
	inputQuit = "q"
	inputFile = "file"
)

// Extension the resume check uses for video batches
const videoExtension = "mp4"

// errResumeDeclined aborts a batch when the user rejects the skip list.
var errResumeDeclined = errors.New("resume check declined")

// YouTube link detection for clipboard sniffing
var youtubeURLPattern = regexp.MustCompile(`(https?://)?(www\.)?(youtube\.com|youtu\.be|music\.youtube\.com)/`)

// App holds the per-process collaborators of the interactive flow.
type App struct {
	log      *zap.SugaredLogger
	pipeline *download.Pipeline
	resolver *playlist.Resolver

	cookies string
	proxy   string
}

// Run is the process entry point. It returns the process exit code.
func Run() int {
	cookiesFlag := pflag.StringP("cookies", "c", "", "path to a cookies.txt file")
	proxyFlag := pflag.StringP("proxy", "p", "", "proxy URL (e.g. http://host:port or socks5://host:port)")
	configCmd := pflag.String("config", "", "config subcommand: set-proxy, clear-proxy, show")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	log := logger.New(*verbose)
	defer log.Sync()

	cfg, err := config.Load(config.FileName)
	if err != nil {
		// Missing or corrupt config behaves as an empty one.
		log.Debugw("config unavailable, using defaults", "error", err)
	}

	if *configCmd != "" {
		return runConfigCommand(*configCmd, cfg, *proxyFlag)
	}

	overrides := config.Overrides{
		CookiesFlag: *cookiesFlag,
		ProxyFlag:   *proxyFlag,
		CookiesEnv:  os.Getenv(config.EnvCookies),
		ProxyEnv:    os.Getenv(config.EnvProxy),
	}
	cookies := config.ResolveCookies(cfg, overrides)
	proxy := config.ResolveProxy(cfg, overrides)

	// Values supplied on the command line are persisted for later runs.
	if *cookiesFlag != "" && cookies == *cookiesFlag {
		cfg.CookiesPath = cookies
		saveConfig(log, cfg)
	}
	if *proxyFlag != "" {
		cfg.Proxy = proxy
		saveConfig(log, cfg)
	}

	if proxy == "" {
		proxy = offerProxySetup(log, &cfg)
	}

	if cookies != "" {
		ui.Notice(os.Stdout, "Using cookies file: %s", cookies)
	} else {
		ui.Warn(os.Stdout, "No cookies file detected. Pass --cookies/-c, set %s, or save one in config.", config.EnvCookies)
	}
	if proxy != "" {
		ui.Notice(os.Stdout, "Using proxy: %s", proxy)
	} else {
		ui.Warn(os.Stdout, "No proxy configured. Pass --proxy/-p, set %s, or save one in config.", config.EnvProxy)
	}

	eng := engine.New()
	app := &App{
		log:      log,
		pipeline: download.NewPipeline(eng, tag.NewEmbedder(log), log),
		resolver: playlist.NewResolver(eng),
		cookies:  cookies,
		proxy:    proxy,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for {
		again, err := app.runBatch(ctx)
		if err != nil {
			if ui.IsInterrupt(err) || ctx.Err() != nil {
				fmt.Println("\nExiting...")
				return 0
			}
			log.Errorw("batch failed", "error", err)
			return 1
		}
		if !again {
			return 0
		}
	}
}

// runBatch runs one interactive download batch. again reports whether the
// user asked for another one.
func (a *App) runBatch(ctx context.Context) (again bool, err error) {
	if err := platform.CreateDirectoryIfNotExists(DefaultDownloadsDir); err != nil {
		return false, err
	}

	cfg, _ := config.Load(config.FileName)
	lastFolder := cfg.LastOutputFolder
	if lastFolder == "" {
		lastFolder = DefaultDownloadsDir
	}

	urls, fromFile, quit, err := a.collectURLs()
	if err != nil || quit {
		return false, err
	}

	mode, format, err := a.pickMode(urls[0])
	if err != nil {
		return false, err
	}
	resumeExt := string(format)
	if mode == model.ModeVideo {
		resumeExt = videoExtension
	}

	folder, err := ui.Input("Output folder", lastFolder)
	if err != nil {
		return false, err
	}
	if err := platform.CreateDirectoryIfNotExists(folder); err != nil {
		return false, err
	}
	cfg.LastOutputFolder = folder
	saveConfig(a.log, cfg)

	items, entries, playlistMode, err := a.buildPending(ctx, urls)
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		ui.Warn(os.Stdout, "Nothing selected.")
		return a.askAgain(folder)
	}

	album := ""
	if playlistMode && mode == model.ModeAudio {
		album, err = ui.Input("Album name for tagging and subfolder (blank for none)", "")
		if err != nil {
			return false, err
		}
	}

	if playlistMode || fromFile {
		items, err = a.applyResume(items, entries, folder, resumeExt, playlistMode)
		if err != nil {
			if errors.Is(err, errResumeDeclined) {
				ui.Notice(os.Stdout, "Download cancelled.")
				return a.askAgain(folder)
			}
			return false, err
		}
	}

	if len(items) == 0 {
		ui.Notice(os.Stdout, "Everything already downloaded, nothing to do.")
		return a.askAgain(folder)
	}

	proceed, err := ui.Confirm(fmt.Sprintf("Start download of %d item(s)?", len(items)), true)
	if err != nil || !proceed {
		return false, err
	}

	req := &model.DownloadRequest{
		URLs:            urls,
		Mode:            mode,
		AudioFormat:     format,
		OutputDir:       folder,
		OutputTemplate:  platform.OutputTemplate(folder, mode, playlistMode, album),
		Album:           album,
		CookiesPath:     a.cookies,
		Proxy:           a.proxy,
		SaveDescription: true,
		SubtitleLangs:   []string{"en"},
		EmbedSubtitles:  true,
	}

	bar := ui.NewBatchBar(os.Stderr, len(items))
	a.pipeline.SetEventFunc(func(ev download.Event) {
		switch ev.Stage {
		case download.EventItemDone, download.EventItemFail:
			bar.Add(1)
		}
	})

	batch := a.pipeline.Run(ctx, req, items)
	bar.Finish()

	ui.RenderSummary(os.Stdout, batch)
	ui.PrintFailed(os.Stdout, batch.Failed)

	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return a.askAgain(folder)
}

// collectURLs gathers the batch's URLs: clipboard sniff first, then a prompt
// that accepts a URL, 'file' for a text file of URLs, or 'q' to quit.
func (a *App) collectURLs() (urls []string, fromFile, quit bool, err error) {
	if clip := sniffClipboard(); clip != "" {
		use, err := ui.Confirm(fmt.Sprintf("Detected a YouTube link: %s Use it?", clip), true)
		if err != nil {
			return nil, false, false, err
		}
		if use {
			return []string{clip}, false, false, nil
		}
	}

	input, err := ui.Input("Enter YouTube URL, 'file' to load URLs from file, or 'q' to quit", "")
	if err != nil {
		return nil, false, false, err
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case inputQuit, "":
		fmt.Println("Goodbye!")
		return nil, false, true, nil
	case inputFile:
		path, err := ui.Input("Path to the txt file with URLs", "")
		if err != nil {
			return nil, false, false, err
		}
		urls, err := readURLFile(path)
		if err != nil {
			return nil, false, false, err
		}
		return urls, true, false, nil
	default:
		return []string{strings.TrimSpace(input)}, false, false, nil
	}
}

// pickMode determines audio/video mode and the audio format. Music URLs are
// always audio; otherwise the user chooses.
func (a *App) pickMode(url string) (model.Mode, model.AudioFormat, error) {
	if playlist.IsMusicURL(url) {
		format, err := a.pickAudioFormat()
		return model.ModeAudio, format, err
	}

	wantAudio, err := ui.Confirm("Download as audio (mp3/m4a/flac)?", false)
	if err != nil {
		return "", "", err
	}
	if !wantAudio {
		return model.ModeVideo, model.FormatMP3, nil
	}
	format, err := a.pickAudioFormat()
	return model.ModeAudio, format, err
}

func (a *App) pickAudioFormat() (model.AudioFormat, error) {
	choice, err := ui.Select("Pick audio format",
		[]string{string(model.FormatMP3), string(model.FormatM4A), string(model.FormatFLAC)},
		string(model.FormatMP3))
	return model.AudioFormat(choice), err
}

// buildPending resolves a playlist URL into selected pending items, or wraps
// plain URLs directly. For playlists the user picks a subset with numbers and
// ranges; blank input selects everything.
func (a *App) buildPending(ctx context.Context, urls []string) ([]model.PendingItem, []model.PlaylistEntry, bool, error) {
	if len(urls) != 1 || !playlist.IsPlaylistURL(urls[0]) {
		items := make([]model.PendingItem, 0, len(urls))
		for _, u := range urls {
			items = append(items, model.PendingItem{URL: u})
		}
		return items, nil, false, nil
	}

	entries, err := a.resolver.Resolve(ctx, urls[0])
	if err != nil {
		return nil, nil, false, err
	}

	fmt.Printf("Playlist detected. %d videos found:\n", len(entries))
	for _, e := range entries {
		fmt.Printf("[%2d] %s\n", e.Index, e.Title)
	}

	sel, err := ui.Input("Enter numbers or ranges to download (e.g. 1,2,5-7) or leave blank for all", "")
	if err != nil {
		return nil, nil, false, err
	}

	var indices []int
	if strings.TrimSpace(sel) == "" {
		for i := 1; i <= len(entries); i++ {
			indices = append(indices, i)
		}
	} else {
		indices = playlist.ParseSelection(sel, len(entries))
	}

	selected := make([]model.PlaylistEntry, 0, len(indices))
	items := make([]model.PendingItem, 0, len(indices))
	for seq, idx := range indices {
		entry := entries[idx-1]
		selected = append(selected, entry)
		items = append(items, model.PendingItem{URL: entry.URL(), Seq: seq + 1})
	}
	return items, selected, true, nil
}

// applyResume offers the resume check and, when confirmed, drops items whose
// expected files already exist. All skip decisions are shown before applying.
func (a *App) applyResume(items []model.PendingItem, entries []model.PlaylistEntry, folder, ext string, playlistMode bool) ([]model.PendingItem, error) {
	check, err := ui.Confirm("Check the output folder and skip files that already exist?", true)
	if err != nil {
		return nil, err
	}
	if !check {
		return items, nil
	}

	absFolder, err := filepath.Abs(folder)
	if err != nil {
		absFolder = folder
	}

	var match *resume.Match
	if playlistMode {
		match = resume.MatchPlaylist(entries, absFolder, ext)
	} else {
		urls := make([]string, 0, len(items))
		for _, it := range items {
			urls = append(urls, it.URL)
		}
		match = resume.MatchFlat(urls, absFolder, ext)
	}

	if len(match.Skipped) == 0 {
		return items, nil
	}

	fmt.Printf("Found %d existing file(s), they will be skipped:\n", len(match.Skipped))
	for dir, count := range match.ByDir {
		rel, err := filepath.Rel(absFolder, dir)
		if err != nil || rel == "" {
			rel = "."
		}
		fmt.Printf("  %s: %d\n", rel, count)
	}
	if show, err := ui.Confirm("Show file list?", false); err != nil {
		return nil, err
	} else if show {
		for _, s := range match.Skipped {
			fmt.Println(s)
		}
	}
	proceed, err := ui.Confirm("Proceed and skip these files?", true)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return nil, errResumeDeclined
	}

	pending := make(map[string]bool, len(match.Pending))
	for _, u := range match.Pending {
		pending[u] = true
	}
	kept := items[:0]
	for _, it := range items {
		if pending[it.URL] {
			kept = append(kept, it)
		}
	}
	return kept, nil
}

// askAgain closes a batch: another round, or an offer to open the folder.
func (a *App) askAgain(folder string) (bool, error) {
	again, err := ui.Confirm("Download another batch?", false)
	if err != nil || again {
		return again, err
	}

	abs, pathErr := filepath.Abs(folder)
	if pathErr != nil {
		abs = folder
	}
	if platform.HasGUISession() {
		open, err := ui.Confirm("Open download folder now?", true)
		if err != nil {
			return false, err
		}
		if open {
			if err := platform.OpenFolder(abs); err != nil {
				a.log.Warnw("could not open folder", "path", abs, "error", err)
			}
		}
	} else {
		ui.Notice(os.Stdout, "Download folder: %s", abs)
	}
	return false, nil
}

// runConfigCommand handles the non-interactive --config subcommands.
func runConfigCommand(cmd string, cfg config.Config, proxyFlag string) int {
	switch cmd {
	case ConfigShow:
		data, _ := json.MarshalIndent(cfg, "", "  ")
		fmt.Println(string(data))
		return 0
	case ConfigClearProxy:
		if cfg.Proxy == "" {
			ui.Warn(os.Stdout, "No proxy set in config.")
			return 0
		}
		cfg.Proxy = ""
		if err := config.Save(config.FileName, cfg); err != nil {
			ui.Warn(os.Stdout, "Could not save config: %v", err)
			return 1
		}
		ui.Notice(os.Stdout, "Proxy cleared from config.")
		return 0
	case ConfigSetProxy:
		proxy := proxyFlag
		if proxy == "" {
			answer, err := ui.Input("Enter proxy URL to save to config (empty to cancel)", "")
			if err != nil || answer == "" {
				return 0
			}
			proxy = answer
		}
		if !config.ValidateProxy(proxy) {
			ui.Warn(os.Stdout, "Invalid proxy URL. Nothing saved.")
			return 1
		}
		cfg.Proxy = proxy
		if err := config.Save(config.FileName, cfg); err != nil {
			ui.Warn(os.Stdout, "Could not save config: %v", err)
			return 1
		}
		ui.Notice(os.Stdout, "Proxy saved to config.")
		return 0
	default:
		ui.Warn(os.Stdout, "Unknown config subcommand: %s", cmd)
		return 1
	}
}

// offerProxySetup interactively offers to configure a proxy when none is set.
func offerProxySetup(log *zap.SugaredLogger, cfg *config.Config) string {
	want, err := ui.Confirm("No proxy configured. Would you like to set a proxy now?", false)
	if err != nil || !want {
		return ""
	}
	proxy, err := ui.Input("Enter proxy URL (e.g. http://host:port or socks5://host:port)", "")
	if err != nil || proxy == "" {
		return ""
	}
	if !config.ValidateProxy(proxy) {
		ui.Warn(os.Stdout, "Invalid proxy URL. Skipping proxy configuration.")
		return ""
	}
	cfg.Proxy = proxy
	saveConfig(log, *cfg)
	return proxy
}

func saveConfig(log *zap.SugaredLogger, cfg config.Config) {
	if err := config.Save(config.FileName, cfg); err != nil {
		log.Warnw("could not save config", "error", err)
	}
}

// sniffClipboard returns a YouTube URL found on the clipboard, or "".
func sniffClipboard() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	text = strings.TrimSpace(text)
	if youtubeURLPattern.MatchString(text) {
		return text
	}
	return ""
}

// readURLFile loads one URL per non-empty line.
func readURLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read URL file: %w", err)
	}
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs found in %s", path)
	}
	return urls, nil
}
