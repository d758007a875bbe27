package worker

import (
	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"go.uber.org/zap"
)

type Pool struct {
	queue chan model.ViewJob
}

// Push enqueues a view-count bump without ever blocking the caller. When the
// workers fall behind (stalled record store), excess jobs are dropped; an
// under-counted view is acceptable, a stuck reader request is not.
func (p *Pool) Push(job model.ViewJob) {
	select {
	case p.queue <- job:
	default:
		log.Warn("View job queue full, dropping increment",
			zap.String("ebook_id", job.EBookID))
	}
}

// NewPool creates a pool of background view-count workers.
func NewPool(client *catalog.Client, size int) *Pool {
	workerPool := &Pool{
		queue: make(chan model.ViewJob, 64),
	}

	for i := 0; i < size; i++ {
		worker := &ViewWorker{id: i, client: client}
		go worker.Run(workerPool.queue)
	}
	return workerPool
}
