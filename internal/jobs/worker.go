package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

// Worker runs queued jobs on a fixed pool, fire-and-forget jobs on bounded
// goroutines, and interval jobs on their own tickers.
type Worker struct {
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	queue         chan Job
	queueMu       sync.RWMutex
	closed        bool
	asyncSem      chan struct{}
	maxConcurrent int
	stats         WorkerStats
	statsMu       sync.RWMutex
}

// WorkerStats holds statistics about the worker
type WorkerStats struct {
	ActiveJobs    int   `json:"active_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	ScheduledJobs int   `json:"scheduled_jobs"`
	QueueLength   int   `json:"queue_length"`
	MaxConcurrent int   `json:"max_concurrent"`
}

// NewWorker creates a worker with N concurrent processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	// Allow 2x workers for async jobs
	asyncLimit := numWorkers * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	w := &Worker{
		ctx:           ctx,
		cancel:        cancel,
		queue:         make(chan Job, 100),
		asyncSem:      make(chan struct{}, asyncLimit),
		maxConcurrent: asyncLimit,
	}

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue adds a job to the pool queue. A full queue runs the job inline.
// Jobs enqueued after Shutdown are dropped.
func (w *Worker) Enqueue(job Job) {
	w.queueMu.RLock()
	if w.closed {
		w.queueMu.RUnlock()
		logger.Warn("[Worker] Dropping job enqueued after shutdown")
		return
	}
	select {
	case w.queue <- job:
		w.queueMu.RUnlock()
		return
	default:
	}
	w.queueMu.RUnlock()

	logger.Warn("[Worker] Queue full, running job synchronously")
	w.run("inline", job)
}

// EnqueueAsync runs a job in a new goroutine (fire-and-forget), bounded by semaphore
func (w *Worker) EnqueueAsync(job Job) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.asyncSem <- struct{}{}
		defer func() { <-w.asyncSem }()

		w.run("async", job)
	}()
}

func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	source := fmt.Sprintf("pool-%d", workerID)
	for {
		select {
		case <-w.ctx.Done():
			return
		case job, ok := <-w.queue:
			if !ok {
				return
			}
			w.run(source, job)
		}
	}
}

// ScheduleEvery runs a job at fixed intervals. The first run happens after the interval (not at startup).
func (w *Worker) ScheduleEvery(interval time.Duration, job Job) {
	w.schedule(interval, job, false)
}

// ScheduleEveryImmediate runs a job once at startup, then at fixed intervals.
func (w *Worker) ScheduleEveryImmediate(interval time.Duration, job Job) {
	w.schedule(interval, job, true)
}

func (w *Worker) schedule(interval time.Duration, job Job, immediate bool) {
	w.statsMu.Lock()
	w.stats.ScheduledJobs++
	w.statsMu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if immediate {
			w.run("scheduler", job)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.run("scheduler", job)
			}
		}
	}()
}

// run executes job with panic recovery and stats tracking
func (w *Worker) run(source string, job Job) {
	w.trackJobStart()
	defer w.trackJobEnd()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panic", "source", source, "panic", fmt.Sprint(r))
			w.trackJobFailure()
		}
	}()

	start := time.Now()
	if err := job(w.ctx); err != nil {
		logger.Error("job failed", "source", source, "error", err)
		w.trackJobFailure()
		return
	}
	logger.Debug("job completed", "source", source, "duration", time.Since(start))
}

// Shutdown cancels running jobs and waits for every goroutine to exit
func (w *Worker) Shutdown() {
	w.queueMu.Lock()
	if w.closed {
		w.queueMu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.queueMu.Unlock()

	w.cancel()
	w.wg.Wait()
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.MaxConcurrent = w.maxConcurrent
	return stats
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackJobEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
}

// failures are counted in CompletedJobs too
func (w *Worker) trackJobFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}
