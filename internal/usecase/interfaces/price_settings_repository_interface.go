package interfaces

import (
	"context"

	"portal_pricing/internal/domain/entities"
)

// IPriceSettingsRepository abstracts persistence for the published pricing
// configuration.
//
// The engine must be able to:
//   - read the current parameters + internal formula + version
//   - save a new configuration, bumping the version atomically
//   - read back an older version snapshot for difference summaries

type IPriceSettingsRepository interface {
	Get(ctx context.Context) (entities.PriceSettings, error)
	GetVersion(ctx context.Context, version int64) (entities.PriceSettings, error)
	Save(ctx context.Context, parameters []entities.Parameter, internalFormula string) (entities.PriceSettings, error)
}
