// Package worker implements the host-facing task queue: at most one
// in-flight and one queued request per task class (preview, loupe,
// export), processed strictly FIFO by a single background goroutine with
// no preemption and no mid-run cancellation. A request submitted while an
// unsent request of the same class is still queued replaces it in place,
// matching a debounced host that only cares about its latest request.
package worker

import (
	"sync"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/pipeline"
	"github.com/inkgrain/pressline/internal/raster"
)

// TaskClass identifies which kind of render request this is.
type TaskClass string

const (
	TaskPreview TaskClass = "preview"
	TaskLoupe   TaskClass = "loupe"
	TaskExport  TaskClass = "export"
)

// Request is one render request sent from the host to the worker.
type Request struct {
	TaskID  TaskClass
	Source  *raster.Image
	Active  params.Active
	Bundle  params.Bundle
	Options pipeline.Options
}

// Response is the worker->host message, tagged with the TaskID of the
// request that produced it, so results arrive in dispatch order.
type Response struct {
	TaskID TaskClass
	Result *raster.Image
	Err    error
}

// Worker runs pipeline.Run for queued requests, one at a time, in the
// order they were dispatched from the queue.
type Worker struct {
	mu        sync.Mutex
	cond      *sync.Cond
	queue     []*Request
	responses chan Response
	closed    bool
}

// New starts a Worker's drain goroutine and returns it ready for Submit.
func New() *Worker {
	w := &Worker{responses: make(chan Response, 8)}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// Submit enqueues a request. If an unsent request of the same task class
// is already queued, it is replaced in place rather than appended, so a
// burst of requests for the same class collapses to the latest one.
func (w *Worker) Submit(req *Request) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, q := range w.queue {
		if q.TaskID == req.TaskID {
			w.queue[i] = req
			w.cond.Signal()
			return
		}
	}
	w.queue = append(w.queue, req)
	w.cond.Signal()
}

// Responses returns the channel results are published on, in the order
// runs complete.
func (w *Worker) Responses() <-chan Response {
	return w.responses
}

// Close stops the drain goroutine once the queue is empty: requests
// already queued still run, and the responses channel is closed after
// the last one. No further Submit calls should be made after Close.
func (w *Worker) Close() {
	w.mu.Lock()
	w.closed = true
	w.cond.Signal()
	w.mu.Unlock()
}

func (w *Worker) loop() {
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if w.closed && len(w.queue) == 0 {
			w.mu.Unlock()
			close(w.responses)
			return
		}
		req := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		result, err := pipeline.Run(req.Source, req.Active, req.Bundle, req.Options)
		w.responses <- Response{TaskID: req.TaskID, Result: result, Err: err}
	}
}
