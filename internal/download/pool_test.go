package download

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/ytgrab/internal/model"
)

// countingEngine records which URLs were downloaded, concurrently safe.
type countingEngine struct {
	mu       sync.Mutex
	seen     []string
	failURLs map[string]bool
}

func (c *countingEngine) ListFlat(ctx context.Context, playlistURL string) ([]model.PlaylistEntry, error) {
	return nil, nil
}

func (c *countingEngine) Download(ctx context.Context, url string, req *model.DownloadRequest) (*model.MediaInfo, error) {
	c.mu.Lock()
	c.seen = append(c.seen, url)
	c.mu.Unlock()
	if c.failURLs[url] {
		return nil, context.DeadlineExceeded
	}
	return &model.MediaInfo{Title: url}, nil
}

func TestPoolDownloadAll(t *testing.T) {
	engine := &countingEngine{}
	pool := NewPool(engine, zap.NewNop().Sugar())
	pool.SetLaunchInterval(time.Millisecond)

	urls := []string{"a", "b", "c"}
	err := pool.DownloadAll(context.Background(), &model.DownloadRequest{}, urls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(engine.seen) != len(urls) {
		t.Errorf("expected %d downloads, got %d", len(urls), len(engine.seen))
	}
}

func TestPoolJoinsWorkerErrors(t *testing.T) {
	engine := &countingEngine{failURLs: map[string]bool{"b": true}}
	pool := NewPool(engine, zap.NewNop().Sugar())
	pool.SetLaunchInterval(time.Millisecond)

	err := pool.DownloadAll(context.Background(), &model.DownloadRequest{}, []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("expected joined worker error")
	}
	if len(engine.seen) != 3 {
		t.Errorf("one failing worker must not stop the others, got %d downloads", len(engine.seen))
	}
}

func TestPoolCancelledContext(t *testing.T) {
	engine := &countingEngine{}
	pool := NewPool(engine, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.DownloadAll(ctx, &model.DownloadRequest{}, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
