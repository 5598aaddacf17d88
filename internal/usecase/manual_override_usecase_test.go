package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"portal_pricing/internal/domain/entities"
	mock_interfaces "portal_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// statusStub satisfies IPriceStatusUseCase for wiring tests that only care
// about call order, not the state machine itself.
type statusStub struct {
	compareFn func(ctx context.Context, recordID string, baseline entities.ComparisonBaseline) (StatusReport, error)
	applyFn   func(ctx context.Context, recordID string) (entities.RecordPriceState, error)
}

func (s *statusStub) Status(context.Context, string) (StatusReport, error) {
	return StatusReport{}, nil
}

func (s *statusStub) Compare(ctx context.Context, recordID string, baseline entities.ComparisonBaseline) (StatusReport, error) {
	if s.compareFn == nil {
		return StatusReport{}, nil
	}
	return s.compareFn(ctx, recordID, baseline)
}

func (s *statusStub) Apply(ctx context.Context, recordID string) (entities.RecordPriceState, error) {
	if s.applyFn == nil {
		return entities.RecordPriceState{}, nil
	}
	return s.applyFn(ctx, recordID)
}

func TestManualOverrideUseCase_SetOverride(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		uc := NewManualOverrideUseCase(nil, nil, zap.NewNop())
		for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
			_, err := uc.SetOverride(context.Background(), "rec-1", bad, "", "")
			if !errors.Is(err, ErrInvalidOverridePrice) {
				t.Fatalf("price %v: expected ErrInvalidOverridePrice, got %v", bad, err)
			}
		}
	})

	t.Run("invalid record id", func(t *testing.T) {
		uc := NewManualOverrideUseCase(nil, nil, zap.NewNop())
		_, err := uc.SetOverride(context.Background(), "  ", 10, "", "")
		if !errors.Is(err, ErrInvalidRecordID) {
			t.Fatalf("expected ErrInvalidRecordID, got %v", err)
		}
	})

	t.Run("persists override with metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepo := mock_interfaces.NewMockIRecordPriceRepository(ctrl)
		uc := NewManualOverrideUseCase(recordRepo, nil, zap.NewNop())

		recordRepo.EXPECT().SetOverride(gomock.Any(), "rec-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, o entities.ManualOverride) (entities.RecordPriceState, error) {
				if !o.Active || o.Price != 199.9 || o.Note != "negotiated" || o.SetBy != "admin" {
					t.Fatalf("unexpected override: %+v", o)
				}
				if o.SetAt.IsZero() {
					t.Fatalf("expected SetAt stamped")
				}
				return entities.RecordPriceState{RecordID: id, Price: o.Price, Override: o}, nil
			},
		)

		rec, err := uc.SetOverride(context.Background(), " rec-1 ", 199.9, " negotiated ", " admin ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.Override.Active {
			t.Fatalf("expected active override")
		}
	})

	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepo := mock_interfaces.NewMockIRecordPriceRepository(ctrl)
		uc := NewManualOverrideUseCase(recordRepo, nil, zap.NewNop())

		recordRepo.EXPECT().SetOverride(gomock.Any(), "ghost", gomock.Any()).Return(entities.RecordPriceState{}, nil)

		_, err := uc.SetOverride(context.Background(), "ghost", 10, "", "")
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestManualOverrideUseCase_ClearOverride(t *testing.T) {
	activeRecord := entities.RecordPriceState{
		RecordID: "rec-1",
		Price:    180,
		Override: entities.ManualOverride{Active: true, Price: 180, SetAt: time.Now().UTC()},
	}

	t.Run("not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepo := mock_interfaces.NewMockIRecordPriceRepository(ctrl)
		uc := NewManualOverrideUseCase(recordRepo, nil, zap.NewNop())

		recordRepo.EXPECT().GetPriceState(gomock.Any(), "rec-1").Return(entities.RecordPriceState{RecordID: "rec-1"}, nil)

		_, err := uc.ClearOverride(context.Background(), "rec-1", false)
		if !errors.Is(err, ErrOverrideNotActive) {
			t.Fatalf("expected ErrOverrideNotActive, got %v", err)
		}
	})

	t.Run("clear keeps pinned price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepo := mock_interfaces.NewMockIRecordPriceRepository(ctrl)
		status := &statusStub{
			applyFn: func(context.Context, string) (entities.RecordPriceState, error) {
				t.Fatalf("apply must not run without applyLatest")
				return entities.RecordPriceState{}, nil
			},
		}
		uc := NewManualOverrideUseCase(recordRepo, status, zap.NewNop())

		recordRepo.EXPECT().GetPriceState(gomock.Any(), "rec-1").Return(activeRecord, nil)
		cleared := activeRecord
		cleared.Override = entities.ManualOverride{}
		recordRepo.EXPECT().ClearOverride(gomock.Any(), "rec-1").Return(cleared, nil)

		rec, err := uc.ClearOverride(context.Background(), "rec-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Price != 180 {
			t.Fatalf("expected price untouched, got %v", rec.Price)
		}
	})

	t.Run("clear with applyLatest recalculates then applies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepo := mock_interfaces.NewMockIRecordPriceRepository(ctrl)

		var compared, appliedAfterCompare bool
		status := &statusStub{
			compareFn: func(_ context.Context, id string, baseline entities.ComparisonBaseline) (StatusReport, error) {
				if id != "rec-1" || baseline != entities.BaselineApplied {
					t.Fatalf("unexpected compare call: %s %s", id, baseline)
				}
				compared = true
				return StatusReport{CalculatedPrice: 210}, nil
			},
			applyFn: func(_ context.Context, id string) (entities.RecordPriceState, error) {
				if !compared {
					t.Fatalf("apply ran before compare")
				}
				appliedAfterCompare = true
				return entities.RecordPriceState{RecordID: id, Price: 210}, nil
			},
		}
		uc := NewManualOverrideUseCase(recordRepo, status, zap.NewNop())

		recordRepo.EXPECT().GetPriceState(gomock.Any(), "rec-1").Return(activeRecord, nil)
		recordRepo.EXPECT().ClearOverride(gomock.Any(), "rec-1").Return(entities.RecordPriceState{RecordID: "rec-1", Price: 180}, nil)

		rec, err := uc.ClearOverride(context.Background(), "rec-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !appliedAfterCompare {
			t.Fatalf("expected compare then apply")
		}
		if rec.Price != 210 {
			t.Fatalf("expected refreshed price, got %v", rec.Price)
		}
	})
}
