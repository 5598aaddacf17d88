package entities

import "time"

// PriceStatus classifies how a record's stored price relates to the current
// pricing settings.
//
// Domain notes:
//   - The status is computed on read; the record's stored price and its
//     captured version markers are the source of truth, never the status.
//   - "calculating" is advisory only and never user-settable.

type PriceStatus string

const (
	PriceStatusUnknown      PriceStatus = "unknown"
	PriceStatusOutdated     PriceStatus = "outdated"
	PriceStatusPriceDrift   PriceStatus = "price-drift"
	PriceStatusContentDrift PriceStatus = "content-drift"
	PriceStatusCurrent      PriceStatus = "current"
	PriceStatusCalculating  PriceStatus = "calculating"
	PriceStatusError        PriceStatus = "error"
)

// RecommendedAction is what the engine suggests the caller do next.

type RecommendedAction string

const (
	ActionNone      RecommendedAction = "none"
	ActionApply     RecommendedAction = "apply"
	ActionCalculate RecommendedAction = "calculate"
)

// Recommended maps a status to its recovery action. An active manual
// override forces ActionNone regardless of the underlying status; that
// suppression happens in the usecase, not here.
func (s PriceStatus) Recommended() RecommendedAction {
	switch s {
	case PriceStatusCurrent, PriceStatusCalculating:
		return ActionNone
	case PriceStatusPriceDrift, PriceStatusContentDrift:
		return ActionApply
	default:
		return ActionCalculate
	}
}

// ComparisonBaseline selects which captured version a comparison runs
// against. It is always passed explicitly; there is no implicit fallback.

type ComparisonBaseline string

const (
	BaselineApplied  ComparisonBaseline = "applied"
	BaselineOriginal ComparisonBaseline = "original"
)

// ParameterChangeKind tags one entry of a DifferenceSummary change list.

type ParameterChangeKind string

const (
	ParameterAdded    ParameterChangeKind = "added"
	ParameterRemoved  ParameterChangeKind = "removed"
	ParameterModified ParameterChangeKind = "modified"
)

// ParameterChange records one parameter-level difference between the
// baseline settings and the current ones.
type ParameterChange struct {
	Kind     ParameterChangeKind `json:"kind"`
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	OldValue *float64            `json:"old_value,omitempty"`
	NewValue *float64            `json:"new_value,omitempty"`
}

// DifferenceSummary explains why a record's status is what it is.
type DifferenceSummary struct {
	OldPrice         float64             `json:"old_price"`
	NewPrice         float64             `json:"new_price"`
	PriceDiff        float64             `json:"price_diff"`
	Baseline         ComparisonBaseline  `json:"baseline"`
	BaselineVersion  int64               `json:"baseline_version"`
	CurrentVersion   int64               `json:"current_version"`
	ParameterChanges []ParameterChange   `json:"parameter_changes"`
	FormulaChanged   bool                `json:"formula_changed"`
}

// ManualOverride pins a record's price. While Active, the engine reports no
// recommended action for the record no matter how far it has drifted.
type ManualOverride struct {
	Active bool      `json:"active"`
	Price  float64   `json:"price"`
	Note   string    `json:"note,omitempty"`
	SetAt  time.Time `json:"set_at,omitempty"`
	SetBy  string    `json:"set_by,omitempty"`
}

// RecordPriceState is the priced slice of a quote record.
//
// Storage model (DynamoDB):
//   - PK: id; price/version fields updated through update expressions.
//
// AppliedVersion is the settings version the stored price was committed
// under; ComputedVersion the version of the most recent calculation;
// OriginalVersion the version active when the record was created.
type RecordPriceState struct {
	RecordID        string                `json:"record_id"`
	Name            string                `json:"name"`
	Price           float64               `json:"price"`
	CalculatedPrice float64               `json:"calculated_price"`
	AppliedVersion  int64                 `json:"applied_version"`
	ComputedVersion int64                 `json:"computed_version"`
	OriginalVersion int64                 `json:"original_version"`
	LastCalculated  time.Time             `json:"last_calculated"`
	LastApplied     time.Time             `json:"last_applied"`
	FieldValues     map[string]FieldValue `json:"field_values"`
	Override        ManualOverride        `json:"override"`
}

// BaselineVersion picks the captured version for the given baseline.
func (r RecordPriceState) BaselineVersion(b ComparisonBaseline) int64 {
	if b == BaselineOriginal {
		return r.OriginalVersion
	}
	return r.AppliedVersion
}
