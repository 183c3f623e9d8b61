package updater_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/catsync/internal/adapters/telemetry"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/core/ports/mocks"
	"go.trai.ch/catsync/internal/engine/updater"
	"go.uber.org/mock/gomock"
)

// fakeHandle is a transfer the test completes by hand.
type fakeHandle struct {
	id      string
	done    chan struct{}
	once    sync.Once
	err     error
	bundles []domain.DownloadedBundle
}

func newFakeHandle(id string) *fakeHandle {
	return &fakeHandle{id: id, done: make(chan struct{})}
}

func (h *fakeHandle) ID() string                         { return h.id }
func (h *fakeHandle) Done() <-chan struct{}              { return h.done }
func (h *fakeHandle) Err() error                         { return h.err }
func (h *fakeHandle) Bundles() []domain.DownloadedBundle { return h.bundles }

func (h *fakeHandle) finish(err error, bundles ...domain.DownloadedBundle) {
	h.once.Do(func() {
		h.err = err
		h.bundles = bundles
		close(h.done)
	})
}

// progressLog collects the snapshots handed to the progress callback.
type progressLog struct {
	mu       sync.Mutex
	statuses []domain.DownloadStatus
}

func (p *progressLog) record(st domain.DownloadStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, st)
}

func (p *progressLog) all() []domain.DownloadStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.DownloadStatus, len(p.statuses))
	copy(out, p.statuses)
	return out
}

func TestSession_ReportsProgressUntilDone(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteCatalog(ctrl)
		log := mocks.NewMockLogger(ctrl)
		tel := mocks.NewMockTelemetry(ctrl)
		vertex := mocks.NewMockVertex(ctrl)

		handle := newFakeHandle("h1")
		var downloaded atomic.Int64

		remote.EXPECT().
			DownloadDependencies(gomock.Any(), []string{"a", "b"}, domain.MergeModeUnion).
			Return(handle, nil)
		remote.EXPECT().GetDownloadStatus(handle).DoAndReturn(func(ports.TransferHandle) domain.DownloadStatus {
			return domain.NewDownloadStatus(downloaded.Load(), 100, false)
		}).AnyTimes()
		remote.EXPECT().Release(handle)

		var logged []string
		log.EXPECT().Info(gomock.Any()).Do(func(msg string) { logged = append(logged, msg) }).AnyTimes()
		tel.EXPECT().Record(gomock.Any(), "download h1").Return(context.Background(), vertex)
		vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
		vertex.EXPECT().Complete(nil)

		progress := &progressLog{}
		session := updater.NewSession(remote, log, tel, 100*time.Millisecond)

		require.True(t, session.Start(context.Background(), []string{"a", "b", "a"}, progress.record))
		assert.Equal(t, domain.SessionDownloading, session.Status())
		assert.Same(t, handle, session.Handle())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		downloaded.Store(40)
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		downloaded.Store(100)
		handle.finish(nil, domain.DownloadedBundle{Name: "ui", Size: 100, Assets: []string{"ui/a.png", "ui/icons.atlas"}})
		session.Wait()

		statuses := progress.all()
		require.Len(t, statuses, 3)
		assert.Equal(t, domain.NewDownloadStatus(0, 100, false), statuses[0])
		assert.Equal(t, domain.NewDownloadStatus(40, 100, false), statuses[1])
		assert.Equal(t, domain.NewDownloadStatus(100, 100, true), statuses[2])
		assert.Equal(t, domain.SessionIdle, session.Status())

		require.NotEmpty(t, logged)
		assert.Contains(t, logged[0], "ui")
		assert.Contains(t, logged[0], "ui/icons.atlas")
	})
}

func TestSession_SingleFlight(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteCatalog(ctrl)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info(gomock.Any()).AnyTimes()

		first := newFakeHandle("first")
		second := newFakeHandle("second")

		remote.EXPECT().DownloadDependencies(gomock.Any(), gomock.Any(), domain.MergeModeUnion).Return(first, nil)
		remote.EXPECT().GetDownloadStatus(gomock.Any()).Return(domain.NewDownloadStatus(0, 0, false)).AnyTimes()
		remote.EXPECT().Release(first)

		session := updater.NewSession(remote, log, telemetry.Noop{}, time.Second)

		require.True(t, session.Start(context.Background(), []string{"a"}, nil))
		assert.False(t, session.Start(context.Background(), []string{"b"}, nil))
		assert.Same(t, first, session.Handle(), "second start must not replace the handle")

		first.finish(nil)
		session.Wait()
		assert.Equal(t, domain.SessionIdle, session.Status())

		remote.EXPECT().DownloadDependencies(gomock.Any(), []string{"b"}, domain.MergeModeUnion).Return(second, nil)
		remote.EXPECT().Release(second)

		require.True(t, session.Start(context.Background(), []string{"b"}, nil))
		assert.Same(t, second, session.Handle())
		second.finish(nil)
		session.Wait()
	})
}

func TestSession_ProgressNeverDecreases(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteCatalog(ctrl)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info(gomock.Any()).AnyTimes()

		handle := newFakeHandle("h")
		samples := []int64{50, 30, 60}
		var calls atomic.Int32

		remote.EXPECT().DownloadDependencies(gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil)
		remote.EXPECT().GetDownloadStatus(handle).DoAndReturn(func(ports.TransferHandle) domain.DownloadStatus {
			i := int(calls.Add(1)) - 1
			if i >= len(samples) {
				return domain.NewDownloadStatus(100, 100, true)
			}
			return domain.NewDownloadStatus(samples[i], 100, false)
		}).AnyTimes()
		remote.EXPECT().Release(handle)

		progress := &progressLog{}
		session := updater.NewSession(remote, log, telemetry.Noop{}, 100*time.Millisecond)
		require.True(t, session.Start(context.Background(), []string{"a"}, progress.record))

		time.Sleep(350 * time.Millisecond)
		synctest.Wait()
		handle.finish(nil)
		session.Wait()

		statuses := progress.all()
		require.Len(t, statuses, 4)
		var last int64
		for _, st := range statuses {
			assert.GreaterOrEqual(t, st.DownloadedBytes, last)
			last = st.DownloadedBytes
		}
		assert.Equal(t, int64(50), statuses[1].DownloadedBytes)

		final := statuses[len(statuses)-1]
		assert.True(t, final.IsDone)
		assert.Equal(t, final.TotalBytes, final.DownloadedBytes)
	})
}

func TestSession_TransferFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteCatalog(ctrl)
		log := mocks.NewMockLogger(ctrl)
		transferErr := errors.New("connection reset")

		handle := newFakeHandle("h")
		remote.EXPECT().DownloadDependencies(gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil)
		remote.EXPECT().GetDownloadStatus(handle).Return(domain.NewDownloadStatus(10, 100, true))
		remote.EXPECT().Release(handle)
		log.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.ErrorIs(t, err, domain.ErrTransferFailed)
		})

		progress := &progressLog{}
		session := updater.NewSession(remote, log, telemetry.Noop{}, time.Second)
		require.True(t, session.Start(context.Background(), []string{"a"}, progress.record))

		handle.finish(transferErr)
		session.Wait()

		statuses := progress.all()
		require.Len(t, statuses, 1)
		final := statuses[0]
		assert.True(t, final.IsDone)
		assert.Equal(t, int64(10), final.DownloadedBytes)
		require.ErrorIs(t, final.Err, domain.ErrTransferFailed)
		require.ErrorIs(t, final.Err, transferErr)
		assert.Equal(t, domain.SessionIdle, session.Status())
	})
}

func TestSession_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockRemoteCatalog(ctrl)
	log := mocks.NewMockLogger(ctrl)
	startErr := errors.New("not initialized")

	remote.EXPECT().DownloadDependencies(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, startErr)
	log.EXPECT().Error(gomock.Any())

	progress := &progressLog{}
	session := updater.NewSession(remote, log, telemetry.Noop{}, 0)

	require.True(t, session.Start(context.Background(), []string{"a"}, progress.record))
	session.Wait()

	statuses := progress.all()
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].IsDone)
	require.ErrorIs(t, statuses[0].Err, domain.ErrTransferFailed)
	require.ErrorIs(t, statuses[0].Err, startErr)
	assert.Equal(t, domain.SessionIdle, session.Status())
}

func TestSession_Cancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteCatalog(ctrl)
		log := mocks.NewMockLogger(ctrl)

		handle := newFakeHandle("h")
		remote.EXPECT().DownloadDependencies(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ []string, _ domain.MergeMode) (ports.TransferHandle, error) {
				go func() {
					<-ctx.Done()
					handle.finish(ctx.Err())
				}()
				return handle, nil
			})
		remote.EXPECT().GetDownloadStatus(handle).Return(domain.NewDownloadStatus(5, 100, false)).AnyTimes()
		remote.EXPECT().Release(handle)
		log.EXPECT().Error(gomock.Any())

		progress := &progressLog{}
		session := updater.NewSession(remote, log, telemetry.Noop{}, 100*time.Millisecond)

		assert.False(t, session.Cancel(), "nothing to cancel yet")
		require.True(t, session.Start(context.Background(), []string{"a"}, progress.record))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		require.True(t, session.Cancel())
		session.Wait()

		statuses := progress.all()
		require.Len(t, statuses, 2)
		final := statuses[1]
		assert.True(t, final.IsDone)
		require.ErrorIs(t, final.Err, domain.ErrTransferCancelled)
		require.ErrorIs(t, final.Err, context.Canceled)
		assert.False(t, session.Cancel())
	})
}
