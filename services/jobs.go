package services

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Trigger endpoints acknowledge immediately and hand the real work to this
// pool. A submitted job always runs to completion: there is no cancellation
// and no status channel back to the caller; outcomes surface through logs
// and the ticker_year bookkeeping.
const (
	jobWorkers    = 4
	jobQueueDepth = 64
)

type job struct {
	id   string
	name string
	run  func()
}

var jobQueue chan job

// StartJobRunner spins up the worker pool. Call once from main before the
// router starts accepting triggers.
func StartJobRunner() {
	jobQueue = make(chan job, jobQueueDepth)
	for i := 0; i < jobWorkers; i++ {
		go jobWorker()
	}
}

// SubmitJob queues background work and returns its id for log correlation.
func SubmitJob(name string, run func()) string {
	j := job{id: uuid.NewString(), name: name, run: run}
	jobQueue <- j
	zap.L().Info("Job submitted", zap.String("job", j.name), zap.String("jobId", j.id))
	return j.id
}

func jobWorker() {
	for j := range jobQueue {
		zap.L().Info("Job started", zap.String("job", j.name), zap.String("jobId", j.id))
		j.run()
		zap.L().Info("Job finished", zap.String("job", j.name), zap.String("jobId", j.id))
	}
}
