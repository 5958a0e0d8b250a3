package match

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/repositories/snapshot"
	"github.com/sirupsen/logrus"
)

// snapshotJob is a pending write to the resume slot; a nil snapshot clears it
type snapshotJob struct {
	snapshot *models.Snapshot
}

// snapshotWriter owns every write to the resume slot. It holds at most one
// pending job and a newer job replaces it, so the slot always ends up with
// the latest state no matter how slow the store is.
type snapshotWriter struct {
	repo    snapshot.Repository
	timeout time.Duration
	log     logrus.FieldLogger

	jobs    chan snapshotJob
	pending sync.WaitGroup

	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newSnapshotWriter(repo snapshot.Repository, timeout time.Duration, log logrus.FieldLogger) *snapshotWriter {
	w := &snapshotWriter{
		repo:    repo,
		timeout: timeout,
		log:     log,
		jobs:    make(chan snapshotJob, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// save queues state for the slot. Called with the service mutex held.
func (w *snapshotWriter) save(snap *models.Snapshot) {
	w.enqueue(snapshotJob{snapshot: snap})
}

// clear queues emptying the slot. Called with the service mutex held.
func (w *snapshotWriter) clear() {
	w.enqueue(snapshotJob{})
}

// enqueue never blocks. A job still waiting in the slot is superseded.
func (w *snapshotWriter) enqueue(job snapshotJob) {
	select {
	case <-w.quit:
		w.log.Debug("snapshot writer closed, dropping write")
		return
	default:
	}

	w.pending.Add(1)
	for {
		select {
		case w.jobs <- job:
			return
		default:
		}
		select {
		case <-w.jobs:
			w.pending.Done()
		default:
		}
	}
}

func (w *snapshotWriter) run() {
	defer close(w.done)
	for {
		select {
		case job := <-w.jobs:
			w.write(job)
		case <-w.quit:
			select {
			case job := <-w.jobs:
				w.write(job)
			default:
			}
			return
		}
	}
}

func (w *snapshotWriter) write(job snapshotJob) {
	defer w.pending.Done()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if job.snapshot == nil {
		if err := w.repo.ClearSnapshot(ctx, &snapshot.ClearSnapshotInput{}); err != nil {
			w.log.WithError(err).Warn("failed to clear match snapshot")
		}
		return
	}

	err := w.repo.SaveSnapshot(ctx, &snapshot.SaveSnapshotInput{Snapshot: job.snapshot})
	if err != nil {
		w.log.WithError(err).WithField("match_id", job.snapshot.State.ID).Warn("failed to save match snapshot")
	}
}

// flush waits until every queued write has reached the store or failed
func (w *snapshotWriter) flush() {
	w.pending.Wait()
}

// close writes the last pending job and stops the writer
func (w *snapshotWriter) close() {
	w.closeOnce.Do(func() {
		close(w.quit)
	})
	<-w.done
}
