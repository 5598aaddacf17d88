package interfaces

import (
	"context"

	"portal_pricing/internal/domain/entities"
)

// IRecordPriceRepository abstracts the priced slice of quote records.
//
// ApplyPrice commits a price together with the settings version it was
// computed under; SetComputed caches the latest calculation without touching
// the applied price. Both stamp their respective timestamps server-side.

type IRecordPriceRepository interface {
	GetPriceState(ctx context.Context, id string) (entities.RecordPriceState, error)
	ListPriceStates(ctx context.Context, ids []string) ([]entities.RecordPriceState, error)
	ApplyPrice(ctx context.Context, id string, price float64, version int64) (entities.RecordPriceState, error)
	SetComputed(ctx context.Context, id string, price float64, version int64) (entities.RecordPriceState, error)
	SetOverride(ctx context.Context, id string, override entities.ManualOverride) (entities.RecordPriceState, error)
	ClearOverride(ctx context.Context, id string) (entities.RecordPriceState, error)
}
