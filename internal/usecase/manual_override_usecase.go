package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidOverridePrice = errors.New("invalid override price")
	ErrOverrideNotActive    = errors.New("no active manual override")
)

// IManualOverrideUseCase pins and releases record prices.
//
// While an override is active the record reports no recommended action no
// matter how far it has drifted. Clearing with applyLatest immediately
// recalculates and applies so the record never shows a momentarily stale
// price.

type IManualOverrideUseCase interface {
	SetOverride(ctx context.Context, recordID string, price float64, note, setBy string) (entities.RecordPriceState, error)
	ClearOverride(ctx context.Context, recordID string, applyLatest bool) (entities.RecordPriceState, error)
}

type ManualOverrideUseCase struct {
	records interfaces.IRecordPriceRepository
	status  IPriceStatusUseCase
	logger  *zap.Logger
}

var _ IManualOverrideUseCase = (*ManualOverrideUseCase)(nil)

func NewManualOverrideUseCase(records interfaces.IRecordPriceRepository, status IPriceStatusUseCase, logger *zap.Logger) *ManualOverrideUseCase {
	return &ManualOverrideUseCase{records: records, status: status, logger: logger}
}

func (u *ManualOverrideUseCase) SetOverride(ctx context.Context, recordID string, price float64, note, setBy string) (entities.RecordPriceState, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.RecordPriceState{}, ErrInvalidRecordID
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return entities.RecordPriceState{}, ErrInvalidOverridePrice
	}

	override := entities.ManualOverride{
		Active: true,
		Price:  price,
		Note:   strings.TrimSpace(note),
		SetAt:  time.Now().UTC(),
		SetBy:  strings.TrimSpace(setBy),
	}
	updated, err := u.records.SetOverride(ctx, recordID, override)
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	if updated.RecordID == "" {
		return entities.RecordPriceState{}, ErrRecordNotFound
	}
	u.logger.Info("manual override set",
		zap.String("record_id", recordID),
		zap.Float64("price", price),
		zap.String("set_by", override.SetBy))
	return updated, nil
}

// ClearOverride releases the pin. Without applyLatest the price stays
// exactly where the override left it, subject to normal drift detection
// again from the next read.
func (u *ManualOverrideUseCase) ClearOverride(ctx context.Context, recordID string, applyLatest bool) (entities.RecordPriceState, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.RecordPriceState{}, ErrInvalidRecordID
	}

	rec, err := u.records.GetPriceState(ctx, recordID)
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	if rec.RecordID == "" {
		return entities.RecordPriceState{}, ErrRecordNotFound
	}
	if !rec.Override.Active {
		return entities.RecordPriceState{}, ErrOverrideNotActive
	}

	cleared, err := u.records.ClearOverride(ctx, recordID)
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	u.logger.Info("manual override cleared",
		zap.String("record_id", recordID),
		zap.Bool("apply_latest", applyLatest))

	if !applyLatest {
		return cleared, nil
	}

	// Recalculate + apply in sequence so the record leaves the override
	// with a fresh price, not the pinned one.
	if _, err := u.status.Compare(ctx, recordID, entities.BaselineApplied); err != nil {
		return entities.RecordPriceState{}, err
	}
	return u.status.Apply(ctx, recordID)
}
