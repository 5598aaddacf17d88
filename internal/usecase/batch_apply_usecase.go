package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"portal_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBatchNotFound = errors.New("batch not found")
	ErrEmptyBatch    = errors.New("batch has no record ids")
)

// BatchError is one record's failure inside a batch. It never aborts the
// run; it is collected and surfaced in the final summary.
type BatchError struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

// BatchProgress is the poll snapshot for a running or finished batch.
//
// Completed counts processed records (success, error or skipped), so a
// cancelled batch reports Completed < Total. Records whose manual override
// is active are skipped and counted separately, never overwritten.
type BatchProgress struct {
	BatchID      string       `json:"batch_id"`
	Total        int          `json:"total"`
	Completed    int          `json:"completed"`
	CurrentID    string       `json:"current_id,omitempty"`
	CurrentName  string       `json:"current_name,omitempty"`
	Cancelling   bool         `json:"cancelling"`
	Finished     bool         `json:"finished"`
	Cancelled    bool         `json:"cancelled"`
	SuccessCount int          `json:"success_count"`
	ErrorCount   int          `json:"error_count"`
	SkippedCount int          `json:"skipped_count"`
	Errors       []BatchError `json:"errors"`
}

// IBatchApplyUseCase applies the current calculated price across many
// records, strictly one at a time in list order. Sequential processing
// bounds persistence load and makes cancellation land on a record boundary.

type IBatchApplyUseCase interface {
	Start(ctx context.Context, recordIDs []string) (string, error)
	Progress(batchID string) (BatchProgress, error)
	Cancel(batchID string) error
}

type batchRun struct {
	mu       sync.Mutex
	progress BatchProgress
}

func (b *batchRun) snapshot() BatchProgress {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.progress
	out.Errors = append([]BatchError(nil), b.progress.Errors...)
	return out
}

func (b *batchRun) update(fn func(*BatchProgress)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.progress)
}

func (b *batchRun) cancelling() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.progress.Cancelling
}

type BatchApplyUseCase struct {
	status  IPriceStatusUseCase
	records interfaces.IRecordPriceRepository
	logger  *zap.Logger

	mu      sync.Mutex
	batches map[string]*batchRun
}

var _ IBatchApplyUseCase = (*BatchApplyUseCase)(nil)

func NewBatchApplyUseCase(status IPriceStatusUseCase, records interfaces.IRecordPriceRepository, logger *zap.Logger) *BatchApplyUseCase {
	return &BatchApplyUseCase{
		status:  status,
		records: records,
		logger:  logger,
		batches: make(map[string]*batchRun),
	}
}

// Start kicks off a batch worker and returns its id for polling. The worker
// outlives the request context on purpose: a closed browser tab must not
// kill a half-done batch, only an explicit Cancel does.
func (u *BatchApplyUseCase) Start(_ context.Context, recordIDs []string) (string, error) {
	ids := make([]string, 0, len(recordIDs))
	for _, id := range recordIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", ErrEmptyBatch
	}

	batchID := uuid.NewString()
	run := &batchRun{progress: BatchProgress{BatchID: batchID, Total: len(ids)}}

	u.mu.Lock()
	u.batches[batchID] = run
	u.mu.Unlock()

	go u.process(context.Background(), run, ids)
	return batchID, nil
}

func (u *BatchApplyUseCase) Progress(batchID string) (BatchProgress, error) {
	u.mu.Lock()
	run, ok := u.batches[batchID]
	u.mu.Unlock()
	if !ok {
		return BatchProgress{}, ErrBatchNotFound
	}
	return run.snapshot(), nil
}

// Cancel is cooperative: the flag is observed at the next record boundary,
// an in-flight single-record apply always completes or fails first.
func (u *BatchApplyUseCase) Cancel(batchID string) error {
	u.mu.Lock()
	run, ok := u.batches[batchID]
	u.mu.Unlock()
	if !ok {
		return ErrBatchNotFound
	}
	run.update(func(p *BatchProgress) {
		if !p.Finished {
			p.Cancelling = true
		}
	})
	return nil
}

func (u *BatchApplyUseCase) process(ctx context.Context, run *batchRun, ids []string) {
	names := u.recordNames(ctx, ids)

	for _, id := range ids {
		if run.cancelling() {
			break
		}

		run.update(func(p *BatchProgress) {
			p.CurrentID = id
			p.CurrentName = names[id]
		})

		_, err := u.status.Apply(ctx, id)
		run.update(func(p *BatchProgress) {
			p.Completed++
			switch {
			case err == nil:
				p.SuccessCount++
			case errors.Is(err, ErrOverrideActive):
				p.SkippedCount++
			default:
				p.ErrorCount++
				p.Errors = append(p.Errors, BatchError{RecordID: id, Message: err.Error()})
			}
		})
	}

	// Re-read every touched record so cached states are fresh for the
	// next poll, then publish the final summary.
	if _, err := u.records.ListPriceStates(ctx, ids); err != nil {
		u.logger.Warn("batch refresh failed", zap.Error(err))
	}

	run.update(func(p *BatchProgress) {
		p.Finished = true
		p.Cancelled = p.Cancelling && p.Completed < p.Total
		p.CurrentID = ""
		p.CurrentName = ""
	})

	final := run.snapshot()
	u.logger.Info("batch apply finished",
		zap.String("batch_id", final.BatchID),
		zap.Int("total", final.Total),
		zap.Int("completed", final.Completed),
		zap.Int("success", final.SuccessCount),
		zap.Int("errors", final.ErrorCount),
		zap.Int("skipped", final.SkippedCount),
		zap.Bool("cancelled", final.Cancelled))
}

func (u *BatchApplyUseCase) recordNames(ctx context.Context, ids []string) map[string]string {
	names := make(map[string]string, len(ids))
	states, err := u.records.ListPriceStates(ctx, ids)
	if err != nil {
		u.logger.Warn("batch name prefetch failed", zap.Error(err))
		return names
	}
	for _, s := range states {
		names[s.RecordID] = s.Name
	}
	return names
}
