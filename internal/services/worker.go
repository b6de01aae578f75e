package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/metrics"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(id uuid.UUID)
}

type WorkerOptions struct {
	Concurrency  int
	QueueSize    int
	PollInterval time.Duration
	PollBatch    int
	// StaleAfter is how long a row may stay in processing before the poller
	// hands it back to pending.
	StaleAfter time.Duration
}

type worker struct {
	repo         repositories.CandidateRepository
	followUp     FollowUpService
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	pollBatch    int
	staleAfter   time.Duration
	log          *zap.Logger
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
}

func NewWorker(
	repo repositories.CandidateRepository,
	followUp FollowUpService,
	opts WorkerOptions,
	log *zap.Logger,
) Worker {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 100
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}
	if opts.PollBatch < 1 {
		opts.PollBatch = 10
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = 15 * time.Minute
	}

	return &worker{
		repo:         repo,
		followUp:     followUp,
		jobQueue:     make(chan uuid.UUID, opts.QueueSize),
		concurrency:  opts.Concurrency,
		pollInterval: opts.PollInterval,
		pollBatch:    opts.PollBatch,
		staleAfter:   opts.StaleAfter,
		log:          log,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.Info("🚀 Starting follow-up worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs()

	w.log.Info("✅ Follow-up worker started")
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.log.Info("🛑 Stopping follow-up worker...")
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("✅ Follow-up worker stopped")
	})
}

// EnqueueJob implements Worker. It never blocks: a full queue drops the job
// and the poller picks the pending row up later.
func (w *worker) EnqueueJob(id uuid.UUID) {
	select {
	case <-w.stopChan:
		w.log.Warn("⚠️  Worker stopped, cannot enqueue job", zap.String("candidate_id", id.String()))
		return
	default:
	}

	select {
	case w.jobQueue <- id:
		w.log.Debug("📥 Job enqueued", zap.String("candidate_id", id.String()))
	default:
		metrics.FollowUpQueueDropped.Inc()
		w.log.Warn("⚠️  Job queue full, leaving job for the poller", zap.String("candidate_id", id.String()))
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log := w.log.With(zap.Int("worker", workerID))

	for {
		select {
		case <-w.stopChan:
			log.Debug("👷 Worker stopped")
			return
		case id := <-w.jobQueue:
			if err := w.followUp.Process(ctx, id); err != nil {
				log.Error("❌ Follow-up job failed", zap.String("candidate_id", id.String()), zap.Error(err))
			}
		}
	}
}

func (w *worker) pollPendingJobs() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.log.Debug("🔄 Pending jobs poller stopped")
			return
		case <-ticker.C:
			released, err := w.repo.ReleaseStaleClaims(time.Now().Add(-w.staleAfter))
			if err != nil {
				w.log.Warn("⚠️  Failed to release stale claims", zap.Error(err))
			} else if released > 0 {
				w.log.Warn("♻️  Released stale follow-up claims", zap.Int64("count", released))
			}

			pending, err := w.repo.FindPendingNotifications(w.pollBatch)
			if err != nil {
				w.log.Warn("⚠️  Failed to fetch pending jobs", zap.Error(err))
				continue
			}

			if len(pending) > 0 {
				w.log.Info("📋 Found pending follow-up jobs", zap.Int("count", len(pending)))
			}

			for _, candidate := range pending {
				w.EnqueueJob(candidate.ID)
			}
		}
	}
}
