// Package jobs defines background tasks such as asynchronous README generation.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/readmekit/readmekit/internal/core"
)

// dispatcher implements core.JobDispatcher and manages a pool of worker
// goroutines for processing README generation requests.
type dispatcher struct {
	generateJob core.Job                   // Job implementation executed by each worker.
	jobQueue    chan *core.GenerateRequest // Queue of incoming generation requests.
	maxWorkers  int                        // Number of concurrent workers.
	wg          sync.WaitGroup             // Tracks active workers for graceful shutdown.
	logger      *slog.Logger               // Logger instance for the dispatcher.
}

// NewDispatcher initializes a dispatcher with a worker pool.
// If maxWorkers is 0 or negative, it defaults to 1.
func NewDispatcher(generateJob core.Job, maxWorkers int, logger *slog.Logger) core.JobDispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	d := &dispatcher{
		generateJob: generateJob,
		maxWorkers:  maxWorkers,
		jobQueue:    make(chan *core.GenerateRequest, 100),
		logger:      logger,
	}
	d.startWorkers()
	return d
}

// startWorkers launches maxWorkers goroutines to process jobs from the queue.
func (d *dispatcher) startWorkers() {
	for i := range d.maxWorkers {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

// startWorker processes requests from the queue until it's closed.
func (d *dispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Info("starting generation worker", "id", workerID)

	for req := range d.jobQueue {
		d.processRequest(workerID, req)
	}

	d.logger.Info("shutting down generation worker", "id", workerID)
}

// processRequest logs and runs a generation job for a request.
func (d *dispatcher) processRequest(workerID int, req *core.GenerateRequest) {
	d.logger.Info("worker processing job",
		"worker_id", workerID,
		"request_id", req.ID,
		"project", req.Project.Name,
	)

	err := d.generateJob.Run(context.Background(), req)
	if err != nil {
		d.logger.Error("generation job failed",
			"request_id", req.ID,
			"project", req.Project.Name,
			"error", err,
		)
	}
}

// Dispatch queues a generation request for processing by a worker.
func (d *dispatcher) Dispatch(_ context.Context, req *core.GenerateRequest) error {
	d.logger.Info("queuing generation job", "request_id", req.ID, "project", req.Project.Name)

	select {
	case d.jobQueue <- req:
		return nil
	default:
		return fmt.Errorf("job queue is full, cannot accept new generation job")
	}
}

// Stop gracefully shuts down the dispatcher, waiting for all workers to finish.
func (d *dispatcher) Stop() {
	d.logger.Info("stopping dispatcher and waiting for jobs to finish")
	close(d.jobQueue)
	d.wg.Wait()
	d.logger.Info("all generation jobs have finished")
}
