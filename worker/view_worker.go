package worker

import (
	"context"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"go.uber.org/zap"
)

// ViewWorker drains view-count jobs. Increments are fire-and-forget: a
// failed bump is logged and dropped, never retried, never shown to a reader.
// Rapid navigation may therefore under-count; that is accepted.
type ViewWorker struct {
	id     int
	client *catalog.Client
}

func (w *ViewWorker) Run(c <-chan model.ViewJob) {
	log.Debug("View worker started", zap.Int("worker_id", w.id))

	for job := range c {
		if err := w.client.IncrementView(context.Background(), job.EBookID); err != nil {
			log.Error("Failed to increment view count",
				zap.Int("worker_id", w.id),
				zap.String("ebook_id", job.EBookID),
				zap.Error(err))
			continue
		}
		log.Debug("View count incremented",
			zap.Int("worker_id", w.id),
			zap.String("ebook_id", job.EBookID))
	}
}
