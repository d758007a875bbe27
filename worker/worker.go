package worker

import "github.com/flipbooklib/flipbook/model"

type WorkPool interface {
	Push(job model.ViewJob)
}

type Worker interface {
	Run(c <-chan model.ViewJob)
}
