package updater

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

// ProgressFunc receives download status snapshots.
type ProgressFunc func(domain.DownloadStatus)

// Session runs at most one transfer at a time and reports its progress by
// polling the remote on a fixed tick.
type Session struct {
	remote    ports.RemoteCatalog
	logger    ports.Logger
	telemetry ports.Telemetry
	tick      time.Duration

	mu     sync.Mutex
	status domain.SessionStatus
	handle ports.TransferHandle
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSession creates an idle Session. A non-positive tick uses the default.
func NewSession(
	remote ports.RemoteCatalog,
	log ports.Logger,
	telemetry ports.Telemetry,
	tick time.Duration,
) *Session {
	if tick <= 0 {
		tick = domain.DefaultTickInterval
	}
	return &Session{
		remote:    remote,
		logger:    log,
		telemetry: telemetry,
		tick:      tick,
	}
}

// Start begins downloading everything reachable from keys. It returns false
// and changes nothing while another transfer is in flight.
//
// onProgress is called with IsDone=false on every tick, then exactly once
// with IsDone=true when the transfer ends. A transfer that cannot be started
// reports its final snapshot before Start returns.
func (s *Session) Start(ctx context.Context, keys []string, onProgress ProgressFunc) bool {
	if onProgress == nil {
		onProgress = func(domain.DownloadStatus) {}
	}

	s.mu.Lock()
	if s.status == domain.SessionDownloading {
		s.mu.Unlock()
		return false
	}
	tctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.status = domain.SessionDownloading
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	handle, err := s.remote.DownloadDependencies(tctx, domain.UniqueKeys(keys), domain.MergeModeUnion)
	if err != nil {
		final := domain.NewDownloadStatus(0, 0, true)
		final.Err = errors.Join(domain.ErrTransferFailed, err)
		s.setIdle(done)
		onProgress(final)
		s.summarize(ctx, "", nil, final.Err)
		cancel()
		close(done)
		return true
	}

	s.mu.Lock()
	s.handle = handle
	s.mu.Unlock()

	go s.run(tctx, cancel, handle, onProgress, done)
	return true
}

func (s *Session) run(
	ctx context.Context,
	cancel context.CancelFunc,
	handle ports.TransferHandle,
	onProgress ProgressFunc,
	done chan struct{},
) {
	defer close(done)
	defer cancel()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	var reported int64
	snapshot := func(isDone bool) domain.DownloadStatus {
		st := s.remote.GetDownloadStatus(handle)
		downloaded := max(st.DownloadedBytes, reported)
		reported = downloaded
		return domain.NewDownloadStatus(downloaded, st.TotalBytes, isDone)
	}

poll:
	for {
		select {
		case <-handle.Done():
			break poll
		case <-ticker.C:
			onProgress(snapshot(false))
		}
	}

	final := snapshot(true)
	if err := handle.Err(); err != nil {
		if ctx.Err() != nil {
			final.Err = errors.Join(domain.ErrTransferCancelled, err)
		} else {
			final.Err = errors.Join(domain.ErrTransferFailed, err)
		}
	}

	bundles := handle.Bundles()
	s.setIdle(done)
	onProgress(final)
	s.remote.Release(handle)
	s.summarize(ctx, handle.ID(), bundles, final.Err)
}

// setIdle ends the session that owns done.
func (s *Session) setIdle(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == done {
		s.status = domain.SessionIdle
		s.cancel = nil
	}
}

// summarize logs every downloaded bundle with its assets and records the
// same summary on a telemetry vertex.
func (s *Session) summarize(ctx context.Context, id string, bundles []domain.DownloadedBundle, err error) {
	name := "download"
	if id != "" {
		name = "download " + id
	}
	_, vertex := s.telemetry.Record(context.WithoutCancel(ctx), name)

	var total int64
	for _, b := range bundles {
		total += b.Size
		line := fmt.Sprintf("bundle %s (%s): %s", b.Name, domain.FormatSize(b.Size), strings.Join(b.Assets, ", "))
		s.logger.Info(line)
		vertex.Log(domain.LogLevelInfo, line)
	}

	summary := fmt.Sprintf("downloaded %d bundle(s), %s", len(bundles), domain.FormatSize(total))
	if err != nil {
		s.logger.Error(err)
		vertex.Log(domain.LogLevelError, err.Error())
	} else {
		s.logger.Info(summary)
	}
	vertex.Log(domain.LogLevelInfo, summary)
	vertex.Complete(err)
}

// Cancel aborts the in-flight transfer. The session still delivers its final
// snapshot. It returns false when nothing is downloading.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.SessionDownloading || s.cancel == nil {
		return false
	}
	s.cancel()
	return true
}

// Wait blocks until the current transfer, if any, has fully finished.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Status returns the session state.
func (s *Session) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Handle returns the handle of the most recent transfer.
func (s *Session) Handle() ports.TransferHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}
