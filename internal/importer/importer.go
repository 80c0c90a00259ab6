// Package importer ingests files of exported QR payloads and runs every
// payload through the classification pipeline.
package importer

import (
	"context"
	"sync"

	"github.com/digimosa/qrscan/internal/config"
	"github.com/digimosa/qrscan/internal/models"
	"github.com/digimosa/qrscan/internal/reporting"
)

// Importer orchestrates the batch intake: a walker feeds payload files to
// a worker pool, workers classify each payload, and a single processor
// persists results and aggregates the report.
type Importer struct {
	cfg           *config.Config
	jobs          chan models.Job
	results       chan models.ImportResult
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{}
	readerFactory *Factory
	Report        *reporting.Report

	// persist receives every successfully classified result; nil disables
	// persistence (dry runs, tests)
	persist func(models.ScanResult) error
}

func New(cfg *config.Config, persist func(models.ScanResult) error) *Importer {
	ctx, cancel := context.WithCancel(context.Background())

	i := &Importer{
		cfg:           cfg,
		jobs:          make(chan models.Job, cfg.Workers*4), // buffer relative to workers
		results:       make(chan models.ImportResult, cfg.Workers*4),
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
		readerFactory: NewFactory(),
		Report:        reporting.NewReport(cfg.ImportRoot),
		persist:       persist,
	}
	return i
}

// Start launches the worker pool, the result processor and the file
// walker. Call Wait to block until the intake finishes.
func (i *Importer) Start() {
	for w := 0; w < i.cfg.Workers; w++ {
		i.wg.Add(1)
		go i.worker()
	}

	go i.processResults()
	go i.walkFiles()
}

// Wait blocks until all files are processed.
func (i *Importer) Wait() {
	i.wg.Wait()
	close(i.results)
	<-i.done
}

// Stop cancels the walk; in-flight jobs still drain.
func (i *Importer) Stop() {
	i.cancel()
}

func (i *Importer) worker() {
	defer i.wg.Done()

	for job := range i.jobs {
		select {
		case <-i.ctx.Done():
			return
		default:
			i.importFile(job.FilePath)
		}
	}
}
