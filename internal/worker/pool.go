// Package worker keeps the per-region leaderboards warm in the cache.
// A scheduler enqueues every region on a fixed interval and a small pool of
// workers refreshes them, so leaderboard reads rarely wait on the upstream.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	refreshesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "valorant_leaderboard_refreshes_total",
		Help: "Total number of leaderboard refreshes completed",
	})

	refreshesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "valorant_leaderboard_refreshes_failed_total",
		Help: "Total number of leaderboard refreshes that failed",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "valorant_warmer_queue_depth",
		Help: "Current depth of the leaderboard warmer queue",
	})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "valorant_leaderboard_refresh_duration_seconds",
		Help:    "Duration of leaderboard refreshes",
		Buckets: prometheus.DefBuckets,
	})

	jobsShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "valorant_warmer_jobs_shed_total",
		Help: "Total number of refresh jobs dropped because the queue was full",
	})
)

// Refresher reloads one region's leaderboard into the cache.
type Refresher interface {
	RefreshLeaderboard(ctx context.Context, region string) error
}

// Job represents a unit of work for the worker pool
type Job struct {
	Region    string
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	// Interval between full refresh rounds. Zero disables the scheduler;
	// jobs can still be enqueued manually.
	Interval time.Duration
	// JobTimeout bounds a single refresh.
	JobTimeout time.Duration
	Regions    []string
	Refresher  Refresher
	Logger     *zap.Logger
}

// Pool manages a pool of workers refreshing leaderboards
type Pool struct {
	config    PoolConfig
	jobQueue  chan Job
	wg        sync.WaitGroup
	scheduler sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	logger    *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 32
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines and the scheduler
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	if p.config.Interval > 0 {
		p.scheduler.Add(1)
		go p.schedule()
	}

	p.scheduler.Add(1)
	go p.reportQueueDepth()

	p.logger.Infow("Leaderboard warmer started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"interval", p.config.Interval,
		"regions", p.config.Regions,
	)
}

// Stop cancels in-flight refreshes and waits for every goroutine to exit.
func (p *Pool) Stop() {
	p.logger.Info("Stopping leaderboard warmer...")

	p.cancel()
	p.scheduler.Wait()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Leaderboard warmer stopped")
}

// Enqueue adds a refresh job. It never blocks: when the queue is full the
// job is dropped, since the next round will refresh the region anyway.
func (p *Pool) Enqueue(region string) bool {
	if p.ctx != nil && p.ctx.Err() != nil {
		return false
	}

	select {
	case p.jobQueue <- Job{Region: region, Timestamp: time.Now()}:
		return true
	default:
		p.logger.Warnw("Warmer queue full, dropping job", "region", region)
		jobsShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// enqueueAll schedules one refresh per configured region.
func (p *Pool) enqueueAll() {
	for _, region := range p.config.Regions {
		p.Enqueue(region)
	}
}

func (p *Pool) schedule() {
	defer p.scheduler.Done()

	p.enqueueAll()

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.enqueueAll()
		case <-p.ctx.Done():
			return
		}
	}
}

// worker processes jobs from the queue
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.process(id, job)

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) process(id int, job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.config.JobTimeout)
	defer cancel()

	start := time.Now()
	err := p.config.Refresher.RefreshLeaderboard(ctx, job.Region)
	refreshDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		refreshesFailed.Inc()
		p.logger.Warnw("Leaderboard refresh failed",
			"worker", id,
			"region", job.Region,
			"queued", time.Since(job.Timestamp),
			"error", err,
		)
		return
	}

	refreshesProcessed.Inc()
	p.logger.Debugw("Leaderboard refreshed", "worker", id, "region", job.Region, "duration", time.Since(start))
}

func (p *Pool) reportQueueDepth() {
	defer p.scheduler.Done()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
