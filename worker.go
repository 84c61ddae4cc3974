package main

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// workerPool manages a pool of worker goroutines for background tasks that
// should not block request handling: pre-rendering grid visualizations and
// re-warming the report cache from disk.
type workerPool struct {
	workers int
	queue   chan task
	wg      sync.WaitGroup
	once    sync.Once // Ensure Stop is only executed once
}

// task represents a unit of work to be processed by the worker pool
type task struct {
	facility string // Facility the task operates on
	taskType string // Type of task to execute (see taskType constants)
}

// Start initializes the worker pool by launching all worker goroutines
func (wp *workerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Stop gracefully shuts down the worker pool by closing the queue and
// waiting for in-flight tasks to complete
func (wp *workerPool) Stop() {
	wp.once.Do(func() {
		close(wp.queue)
		wp.wg.Wait()
	})
}

// worker is the goroutine that processes tasks from the queue
func (wp *workerPool) worker() {
	defer wp.wg.Done()

	for t := range wp.queue {
		var err error
		switch t.taskType {
		case taskTypeRenderGrid:
			err = renderGridTask(t.facility)
		case taskTypeReloadReport:
			err = reloadReportTask(t.facility)
		default:
			err = fmt.Errorf("unknown task type: %s", t.taskType)
		}

		if err != nil {
			logger.Error("Worker task failed",
				zap.String("facility", t.facility),
				zap.String("taskType", t.taskType),
				zap.Error(err),
			)
		}
	}
}

// Submit adds a new task to the queue for asynchronous processing. The
// send is non-blocking: pre-rendering is an optimization, so when the
// queue is full the task is dropped and the grid renders on demand.
func (wp *workerPool) Submit(facility, taskType string) {
	select {
	case wp.queue <- task{facility, taskType}:
	default:
		logger.Warn("Worker pool queue full, task dropped",
			zap.String("facility", facility),
			zap.String("taskType", taskType),
		)
	}
}

// renderGridTask renders the channel grid for a cached report and attaches
// it to the cache entry so the grid endpoint serves it without re-rendering
func renderGridTask(facility string) error {
	slug := slugifyFacility(facility)
	report, found := reportCacheInstance.get(slug)
	if !found {
		var err error
		report, err = reportStoreInstance.Load(facility)
		if err != nil {
			return err
		}
		reportCacheInstance.set(slug, report)
	}
	reportCacheInstance.setGrid(slug, RenderChannelGrid(report))
	gridRendersTotal.Inc()
	return nil
}

// reloadReportTask re-warms the cache for a facility from its persisted
// report after a cache clear
func reloadReportTask(facility string) error {
	report, err := reportStoreInstance.Load(facility)
	if err != nil {
		return err
	}
	reportCacheInstance.set(slugifyFacility(facility), report)
	return nil
}
