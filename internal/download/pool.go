package download

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ytget/ytgrab/internal/model"
)

// Default launch throttle for pool workers
const DefaultLaunchInterval = 500 * time.Millisecond

// Pool is the advanced multi-item path: one independent worker per URL, each
// performing a self-contained extract-and-download. Workers share no mutable
// state — each error lands in its own slot and destinations are made disjoint
// by the engine's title-based output template. There is no retry logic and no
// completion ordering; callers needing deterministic summaries must use the
// Pipeline instead.
type Pool struct {
	engine  Engine
	log     *zap.SugaredLogger
	limiter *rate.Limiter
}

// NewPool creates a pool with the default worker launch throttle.
func NewPool(engine Engine, log *zap.SugaredLogger) *Pool {
	return &Pool{
		engine:  engine,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(DefaultLaunchInterval), 1),
	}
}

// SetLaunchInterval adjusts how fast workers are started.
func (p *Pool) SetLaunchInterval(interval time.Duration) {
	p.limiter = rate.NewLimiter(rate.Every(interval), 1)
}

// DownloadAll downloads every URL concurrently and blocks until all workers
// finish. The returned error joins the per-worker failures, nil when all
// succeeded.
func (p *Pool) DownloadAll(ctx context.Context, req *model.DownloadRequest, urls []string) error {
	var wg sync.WaitGroup
	errs := make([]error, len(urls))

	for i, url := range urls {
		if err := p.limiter.Wait(ctx); err != nil {
			errs[i] = err
			break
		}

		wg.Add(1)
		go func(slot int, url string) {
			defer wg.Done()
			if _, err := p.engine.Download(ctx, url, req); err != nil {
				p.log.Errorw("worker download failed", "url", url, "error", err)
				errs[slot] = err
			}
		}(i, url)
	}

	wg.Wait()
	return errors.Join(errs...)
}
