package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/outlinefix/internal/parser"
)

// Worker processes a single document job.
type Worker struct {
	renumberer *Renumberer
	log        *slog.Logger
	opts       parser.Options
}

func NewWorker(r *Renumberer, log *slog.Logger, opts parser.Options) *Worker {
	return &Worker{
		renumberer: r,
		log:        log,
		opts:       opts,
	}
}

// Process parses the job's document and renumbers its sections.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	tree, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	job.releaseFileData()
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.mu.Lock()
	if job.Title == "" {
		job.Title = tree.Title
	}
	job.mu.Unlock()
	log.Info("parsed document", "sections", len(tree.Sections))

	// Phase 2: Renumber
	job.SetStatus(StatusRenumbering, "renumbering")
	changes, err := w.renumberer.Map(tree.Numbers())
	if err != nil {
		log.Warn("renumber failed", "error", err)
		job.AddError(fmt.Sprintf("renumber: %s", err))
		job.SetStatus(StatusFailed, "renumbering")
		return
	}
	job.SetResult(tree.Sections, changes)

	changed := 0
	for _, c := range changes {
		if c.Changed() {
			changed++
		}
	}
	log.Info("renumbering complete", "sections", len(changes), "changed", changed)
	job.SetStatus(StatusCompleted, "done")
}
