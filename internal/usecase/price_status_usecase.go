package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrOverrideActive    = errors.New("manual override is active")
	ErrMissingFieldValue = errors.New("missing form field value")
)

// priceEpsilon is the drift threshold: recomputed prices within 0.01
// currency units of the stored price are numerically unchanged.
var priceEpsilon = decimal.NewFromFloat(0.01)

// StatusReport is the per-record verdict the engine hands the UI.
//
// Action already accounts for a manual override: while one is active the
// record never needs automatic updates, whatever the comparison says.
type StatusReport struct {
	RecordID        string                     `json:"record_id"`
	Status          entities.PriceStatus       `json:"status"`
	Action          entities.RecommendedAction `json:"action"`
	CalculatedPrice float64                    `json:"calculated_price"`
	AppliedPrice    float64                    `json:"applied_price"`
	OverrideActive  bool                       `json:"override_active"`
	Summary         *entities.DifferenceSummary `json:"summary,omitempty"`
	Error           string                     `json:"error,omitempty"`
}

// IPriceStatusUseCase is the price-status state machine.
//
//   - Status is the lazy read: it classifies from cached fields only.
//   - Compare recalculates against the current settings and yields the
//     DifferenceSummary for an explicit baseline.
//   - Apply commits the calculated price under the current version.

type IPriceStatusUseCase interface {
	Status(ctx context.Context, recordID string) (StatusReport, error)
	Compare(ctx context.Context, recordID string, baseline entities.ComparisonBaseline) (StatusReport, error)
	Apply(ctx context.Context, recordID string) (entities.RecordPriceState, error)
}

type PriceStatusUseCase struct {
	settings interfaces.IPriceSettingsRepository
	records  interfaces.IRecordPriceRepository
	logger   *zap.Logger
}

var _ IPriceStatusUseCase = (*PriceStatusUseCase)(nil)

func NewPriceStatusUseCase(settings interfaces.IPriceSettingsRepository, records interfaces.IRecordPriceRepository, logger *zap.Logger) *PriceStatusUseCase {
	return &PriceStatusUseCase{settings: settings, records: records, logger: logger}
}

// Status classifies without recomputing. It is what list views poll.
func (u *PriceStatusUseCase) Status(ctx context.Context, recordID string) (StatusReport, error) {
	settings, rec, err := u.load(ctx, recordID)
	if err != nil {
		return StatusReport{}, err
	}

	report := StatusReport{
		RecordID:        rec.RecordID,
		CalculatedPrice: rec.CalculatedPrice,
		AppliedPrice:    rec.Price,
		OverrideActive:  rec.Override.Active,
	}

	switch {
	case rec.Override.Active:
		report.Status = entities.PriceStatusCurrent
	case rec.LastCalculated.IsZero() && rec.LastApplied.IsZero():
		report.Status = entities.PriceStatusUnknown
	case rec.ComputedVersion < settings.Version:
		report.Status = entities.PriceStatusOutdated
	case !withinEpsilon(rec.CalculatedPrice, rec.Price):
		report.Status = entities.PriceStatusPriceDrift
	case rec.AppliedVersion < settings.Version:
		report.Status = entities.PriceStatusContentDrift
	default:
		report.Status = entities.PriceStatusCurrent
	}

	report.Action = u.recommended(report.Status, rec)
	return report, nil
}

// Compare runs the evaluator against the current parameters and the
// record's form values, caches the computed price, and classifies drift
// against the given baseline. Evaluation failure flags the record as error
// and falls back to its last known price; it is never silently "current".
func (u *PriceStatusUseCase) Compare(ctx context.Context, recordID string, baseline entities.ComparisonBaseline) (StatusReport, error) {
	settings, rec, err := u.load(ctx, recordID)
	if err != nil {
		return StatusReport{}, err
	}

	report := StatusReport{
		RecordID:       rec.RecordID,
		AppliedPrice:   rec.Price,
		OverrideActive: rec.Override.Active,
	}

	calculated, evalErr := u.calculate(settings, rec)
	if evalErr != nil {
		u.logger.Warn("price calculation failed",
			zap.String("record_id", rec.RecordID),
			zap.Error(evalErr))
		report.Status = entities.PriceStatusError
		report.Action = u.recommended(report.Status, rec)
		report.CalculatedPrice = rec.Price
		report.Error = evalErr.Error()
		return report, nil
	}
	report.CalculatedPrice = calculated

	if _, err := u.records.SetComputed(ctx, rec.RecordID, calculated, settings.Version); err != nil {
		return StatusReport{}, err
	}

	summary, err := u.buildSummary(ctx, settings, rec, baseline, calculated)
	if err != nil {
		return StatusReport{}, err
	}
	report.Summary = &summary

	switch {
	case !withinEpsilon(calculated, rec.Price):
		report.Status = entities.PriceStatusPriceDrift
	case rec.BaselineVersion(baseline) != settings.Version:
		report.Status = entities.PriceStatusContentDrift
	default:
		report.Status = entities.PriceStatusCurrent
	}
	report.Action = u.recommended(report.Status, rec)
	return report, nil
}

// Apply recomputes and commits the result as the record's price, capturing
// the current settings version as the applied version. Applying twice with
// nothing changed in between commits the same price both times.
func (u *PriceStatusUseCase) Apply(ctx context.Context, recordID string) (entities.RecordPriceState, error) {
	settings, rec, err := u.load(ctx, recordID)
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	if rec.Override.Active {
		return entities.RecordPriceState{}, ErrOverrideActive
	}

	price, evalErr := u.calculate(settings, rec)
	if evalErr != nil {
		return entities.RecordPriceState{}, fmt.Errorf("apply %s: %w", recordID, evalErr)
	}

	if _, err := u.records.SetComputed(ctx, rec.RecordID, price, settings.Version); err != nil {
		return entities.RecordPriceState{}, err
	}
	applied, err := u.records.ApplyPrice(ctx, rec.RecordID, price, settings.Version)
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	u.logger.Info("price applied",
		zap.String("record_id", rec.RecordID),
		zap.Float64("price", price),
		zap.Int64("version", settings.Version))
	return applied, nil
}

func (u *PriceStatusUseCase) load(ctx context.Context, recordID string) (entities.PriceSettings, entities.RecordPriceState, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.PriceSettings{}, entities.RecordPriceState{}, ErrInvalidRecordID
	}
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.PriceSettings{}, entities.RecordPriceState{}, err
	}
	rec, err := u.records.GetPriceState(ctx, recordID)
	if err != nil {
		return entities.PriceSettings{}, entities.RecordPriceState{}, err
	}
	if rec.RecordID == "" {
		return entities.PriceSettings{}, entities.RecordPriceState{}, ErrRecordNotFound
	}
	return settings, rec, nil
}

// calculate evaluates the current formula with the record's field values.
// An empty formula keeps the record's last known price; that is not an error.
func (u *PriceStatusUseCase) calculate(settings entities.PriceSettings, rec entities.RecordPriceState) (float64, error) {
	values, err := u.parameterValues(settings.Parameters, rec)
	if err != nil {
		return 0, err
	}
	price, err := formula.Evaluate(settings.InternalFormula, values)
	if errors.Is(err, formula.ErrEmptyFormula) {
		return rec.Price, nil
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}

// parameterValues resolves each parameter to a number. Fixed parameters use
// their constant; form-field parameters consume the record's tagged value
// explicitly per variant. Lookup misses resolve to 0 with a warning; a
// missing field value is an evaluation failure.
func (u *PriceStatusUseCase) parameterValues(params []entities.Parameter, rec entities.RecordPriceState) (map[string]float64, error) {
	values := make(map[string]float64, len(params))
	for _, p := range params {
		v, err := u.parameterValue(p, rec)
		if err != nil {
			return nil, err
		}
		if existing, ok := values[p.ID]; ok && existing != v {
			u.logger.Warn("conflicting parameter substitution, using 0",
				zap.String("record_id", rec.RecordID),
				zap.String("parameter_id", p.ID),
				zap.Float64("first", existing),
				zap.Float64("second", v))
			values[p.ID] = 0
			continue
		}
		values[p.ID] = v
	}
	return values, nil
}

func (u *PriceStatusUseCase) parameterValue(p entities.Parameter, rec entities.RecordPriceState) (float64, error) {
	if p.Type == entities.ParameterTypeFixed {
		return p.Value, nil
	}

	fv, ok := rec.FieldValues[p.FormFieldID]
	if !ok {
		return 0, fmt.Errorf("%w: record %s has no value for field %s (parameter %q)", ErrMissingFieldValue, rec.RecordID, p.FormFieldID, p.Name)
	}

	switch fv.Kind {
	case entities.FieldValueScalar:
		return fv.Number, nil
	case entities.FieldValueText:
		return u.lookup(p, rec.RecordID, fv.Text), nil
	case entities.FieldValueMulti:
		total := 0.0
		for _, opt := range fv.Options {
			total += u.lookup(p, rec.RecordID, opt)
		}
		return total, nil
	}
	return 0, fmt.Errorf("%w: record %s field %s has unknown value kind %q", ErrMissingFieldValue, rec.RecordID, p.FormFieldID, fv.Kind)
}

func (u *PriceStatusUseCase) lookup(p entities.Parameter, recordID, option string) float64 {
	if v, ok := p.LookupValue(option); ok {
		return v
	}
	u.logger.Warn("lookup table miss, using 0",
		zap.String("record_id", recordID),
		zap.String("parameter_id", p.ID),
		zap.String("option", option))
	return 0
}

// buildSummary diffs the baseline settings snapshot against the current one.
// A missing snapshot (version 0 or pruned history) reports every current
// parameter as added.
func (u *PriceStatusUseCase) buildSummary(ctx context.Context, current entities.PriceSettings, rec entities.RecordPriceState, baseline entities.ComparisonBaseline, calculated float64) (entities.DifferenceSummary, error) {
	baselineVersion := rec.BaselineVersion(baseline)

	summary := entities.DifferenceSummary{
		OldPrice:        rec.Price,
		NewPrice:        calculated,
		PriceDiff:       roundCurrency(calculated - rec.Price),
		Baseline:        baseline,
		BaselineVersion: baselineVersion,
		CurrentVersion:  current.Version,
	}

	var old entities.PriceSettings
	if baselineVersion > 0 {
		snapshot, err := u.settings.GetVersion(ctx, baselineVersion)
		if err != nil {
			return entities.DifferenceSummary{}, err
		}
		old = snapshot
	}

	summary.FormulaChanged = old.InternalFormula != current.InternalFormula
	summary.ParameterChanges = diffParameters(old.Parameters, current.Parameters)
	return summary, nil
}

func diffParameters(old, current []entities.Parameter) []entities.ParameterChange {
	var changes []entities.ParameterChange

	oldByID := make(map[string]entities.Parameter, len(old))
	for _, p := range old {
		oldByID[p.ID] = p
	}
	currentByID := make(map[string]entities.Parameter, len(current))
	for _, p := range current {
		currentByID[p.ID] = p
	}

	for _, p := range current {
		prev, ok := oldByID[p.ID]
		if !ok {
			v := p.Value
			changes = append(changes, entities.ParameterChange{Kind: entities.ParameterAdded, ID: p.ID, Name: p.Name, NewValue: &v})
			continue
		}
		if parameterChanged(prev, p) {
			oldV, newV := prev.Value, p.Value
			changes = append(changes, entities.ParameterChange{Kind: entities.ParameterModified, ID: p.ID, Name: p.Name, OldValue: &oldV, NewValue: &newV})
		}
	}
	for _, p := range old {
		if _, ok := currentByID[p.ID]; !ok {
			v := p.Value
			changes = append(changes, entities.ParameterChange{Kind: entities.ParameterRemoved, ID: p.ID, Name: p.Name, OldValue: &v})
		}
	}
	return changes
}

func parameterChanged(a, b entities.Parameter) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Value != b.Value || a.FormFieldID != b.FormFieldID {
		return true
	}
	if len(a.LookupTable) != len(b.LookupTable) {
		return true
	}
	for i := range a.LookupTable {
		if a.LookupTable[i] != b.LookupTable[i] {
			return true
		}
	}
	return false
}

func (u *PriceStatusUseCase) recommended(status entities.PriceStatus, rec entities.RecordPriceState) entities.RecommendedAction {
	if rec.Override.Active {
		return entities.ActionNone
	}
	return status.Recommended()
}

func withinEpsilon(a, b float64) bool {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs().LessThanOrEqual(priceEpsilon)
}

func roundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
