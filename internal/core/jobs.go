package core

import "context"

// GenerateRequest is one queued generation: a project snapshot plus options,
// tagged with the id under which the result will be stored.
type GenerateRequest struct {
	ID      string
	Project *Project
	Options Options
}

// Job is a unit of background work executed by a dispatcher worker.
type Job interface {
	Run(ctx context.Context, req *GenerateRequest) error
}

// JobDispatcher queues generation requests for asynchronous processing.
type JobDispatcher interface {
	Dispatch(ctx context.Context, req *GenerateRequest) error
	Stop()
}
