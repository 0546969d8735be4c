package screening

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Document is one raw submission: the source filename plus the file bytes.
type Document struct {
	ID   string
	Data []byte
}

// Extractor maps a raw document to plain text. An implementation may be
// slow or fail; failures are recovered per candidate and never abort the
// batch.
type Extractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// Engine screens a batch of documents against one Criteria. Candidates are
// independent of each other, so the batch is fanned out across a bounded
// pool of workers.
type Engine struct {
	extractor      Extractor
	workers        int
	extractTimeout time.Duration
	log            *zap.Logger
}

// NewEngine builds an engine running at most workers candidates at a time.
// extractTimeout bounds each extraction call so a slow extractor cannot
// hang the batch; zero disables the bound.
func NewEngine(extractor Extractor, workers int, extractTimeout time.Duration, log *zap.Logger) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		extractor:      extractor,
		workers:        workers,
		extractTimeout: extractTimeout,
		log:            log,
	}
}

// Screen scores the batch and returns the ranked results. Ranking only runs
// once every candidate has a result or a recorded failure; results land in
// submission order before the stable sort, so ties rank in the order the
// documents were submitted. A cancelled context abandons the batch before
// ranking with no side effects.
func (e *Engine) Screen(ctx context.Context, criteria Criteria, docs []Document) ([]ScoreResult, error) {
	results := make([]ScoreResult, len(docs))

	jobs := make(chan int, len(docs))
	var wg sync.WaitGroup

	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				results[i] = e.screenOne(ctx, criteria, docs[i])
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Rank(results), nil
}

func (e *Engine) screenOne(ctx context.Context, criteria Criteria, doc Document) ScoreResult {
	if e.extractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.extractTimeout)
		defer cancel()
	}

	text, err := e.extractor.Extract(ctx, doc.Data, doc.ID)
	if err != nil {
		// An unreadable document still produces a result: scored on empty
		// text, with the failure carried as a per-candidate annotation.
		e.log.Warn("text extraction failed",
			zap.String("candidate", doc.ID),
			zap.Error(err))
		result := ScoreCandidate(Candidate{ID: doc.ID}, criteria)
		result.ExtractionErr = err.Error()
		return result
	}

	result := ScoreCandidate(Candidate{ID: doc.ID, Text: text}, criteria)
	e.log.Debug("candidate scored",
		zap.String("candidate", doc.ID),
		zap.Float64("score", result.Score))
	return result
}
