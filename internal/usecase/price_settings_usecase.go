package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrParameterNotFound   = errors.New("parameter not found")
	ErrParameterReferenced = errors.New("parameter is still referenced by the formula")
	ErrInvalidParameter    = errors.New("invalid parameter")
)

// ValidationFailedError carries the full validation result so the handler
// can return it as a structured payload, not just a message.
type ValidationFailedError struct {
	Result formula.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return "formula validation failed: " + strings.Join(e.Result.Errors, "; ")
}

// IntegrityBlockedError carries the integrity report for the blocking
// banner: every orphan, whether it is live in the formula, and remediation.
type IntegrityBlockedError struct {
	Report formula.IntegrityReport
}

func (e *IntegrityBlockedError) Error() string {
	return "price settings blocked by integrity check: " + strings.Join(e.Report.Errors, "; ")
}

// SettingsView is the authoring-facing projection of the stored settings:
// the persisted internal formula re-derived into letter form against the
// current parameter order.
type SettingsView struct {
	Parameters      []entities.Parameter
	DisplayFormula  string
	InternalFormula string
	Letters         []string
	Version         int64
	Integrity       formula.IntegrityReport
}

// IPriceSettingsUseCase exposes the parameter registry and formula save path.
//
// All mutations flow through Save: parameters and formula are validated
// together, gated by the integrity check, and persisted with a version bump.

type IPriceSettingsUseCase interface {
	Get(ctx context.Context) (SettingsView, error)
	Save(ctx context.Context, parameters []entities.Parameter, displayFormula string) (SettingsView, error)
	ValidateFormula(ctx context.Context, displayFormula string) (formula.ValidationResult, error)
	AddParameter(ctx context.Context, p entities.Parameter) (SettingsView, error)
	UpdateParameter(ctx context.Context, p entities.Parameter) (SettingsView, error)
	RemoveParameter(ctx context.Context, parameterID string) (SettingsView, error)
	ProposeCleanup(ctx context.Context, parameterID string) (formula.CleanupPreview, error)
	ConfirmCleanup(ctx context.Context, preview formula.CleanupPreview) (SettingsView, error)
}

type PriceSettingsUseCase struct {
	settings interfaces.IPriceSettingsRepository
	fields   interfaces.IFormFieldRepository
	logger   *zap.Logger
}

var _ IPriceSettingsUseCase = (*PriceSettingsUseCase)(nil)

func NewPriceSettingsUseCase(settings interfaces.IPriceSettingsRepository, fields interfaces.IFormFieldRepository, logger *zap.Logger) *PriceSettingsUseCase {
	return &PriceSettingsUseCase{settings: settings, fields: fields, logger: logger}
}

func (u *PriceSettingsUseCase) Get(ctx context.Context) (SettingsView, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	return u.view(ctx, settings)
}

// Save validates and persists a full settings draft. The formula arrives in
// display form; it is validated against the draft's parameters, gated by the
// integrity check, and stored in internal-id form with a bumped version.
func (u *PriceSettingsUseCase) Save(ctx context.Context, parameters []entities.Parameter, displayFormula string) (SettingsView, error) {
	displayFormula = strings.TrimSpace(displayFormula)

	for i := range parameters {
		if strings.TrimSpace(parameters[i].ID) == "" {
			parameters[i].ID = newParameterID()
		}
		if err := parameters[i].Validate(); err != nil {
			return SettingsView{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
	}

	if res := formula.Validate(displayFormula, parameters); !res.IsValid {
		return SettingsView{}, &ValidationFailedError{Result: res}
	}

	catalog, err := u.fields.ListCatalog(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	report := formula.CheckIntegrity(parameters, catalog, displayFormula)
	if !report.CanSave {
		u.logger.Warn("price settings save blocked",
			zap.Strings("orphans_in_formula", report.OrphansInFormula),
			zap.Int("orphan_count", len(report.OrphanParameters)))
		return SettingsView{}, &IntegrityBlockedError{Report: report}
	}

	mapping := formula.BuildMapping(parameters)
	saved, err := u.settings.Save(ctx, parameters, mapping.ToInternal(displayFormula))
	if err != nil {
		return SettingsView{}, err
	}
	u.logger.Info("price settings saved",
		zap.Int64("version", saved.Version),
		zap.Int("parameters", len(saved.Parameters)))
	return u.view(ctx, saved)
}

func (u *PriceSettingsUseCase) ValidateFormula(ctx context.Context, displayFormula string) (formula.ValidationResult, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return formula.ValidationResult{}, err
	}
	return formula.Validate(displayFormula, settings.Parameters), nil
}

// AddParameter appends to the registry through the save path. Adding is
// refused while an orphaned parameter is still live in the formula.
func (u *PriceSettingsUseCase) AddParameter(ctx context.Context, p entities.Parameter) (SettingsView, error) {
	settings, catalog, err := u.load(ctx)
	if err != nil {
		return SettingsView{}, err
	}

	display := formula.BuildMapping(settings.Parameters).ToDisplay(settings.InternalFormula)
	report := formula.CheckIntegrity(settings.Parameters, catalog, display)
	if !report.CanEdit {
		return SettingsView{}, &IntegrityBlockedError{Report: report}
	}

	if strings.TrimSpace(p.ID) == "" {
		p.ID = newParameterID()
	}
	if err := p.Validate(); err != nil {
		return SettingsView{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	params := append(append([]entities.Parameter(nil), settings.Parameters...), p)
	return u.Save(ctx, params, formula.BuildMapping(params).ToDisplay(settings.InternalFormula))
}

func (u *PriceSettingsUseCase) UpdateParameter(ctx context.Context, p entities.Parameter) (SettingsView, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	if err := p.Validate(); err != nil {
		return SettingsView{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	params := append([]entities.Parameter(nil), settings.Parameters...)
	found := false
	for i := range params {
		if params[i].ID == p.ID {
			params[i] = p
			found = true
			break
		}
	}
	if !found {
		return SettingsView{}, ErrParameterNotFound
	}

	// Positions are unchanged, so the display formula derived from the
	// unchanged internal formula stays consistent for the author.
	return u.Save(ctx, params, formula.BuildMapping(params).ToDisplay(settings.InternalFormula))
}

// RemoveParameter deletes an unreferenced parameter. A parameter whose
// letter is still in the formula is never removed silently; the caller must
// go through the cleanup propose/confirm pair instead.
func (u *PriceSettingsUseCase) RemoveParameter(ctx context.Context, parameterID string) (SettingsView, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}

	mapping := formula.BuildMapping(settings.Parameters)
	letter, ok := mapping.ByID[parameterID]
	if !ok {
		return SettingsView{}, ErrParameterNotFound
	}
	display := mapping.ToDisplay(settings.InternalFormula)
	if res := formula.Validate(display, settings.Parameters); res.IsValid {
		for _, used := range res.UsedLetters {
			if used == letter {
				return SettingsView{}, ErrParameterReferenced
			}
		}
	}

	params := make([]entities.Parameter, 0, len(settings.Parameters)-1)
	for _, p := range settings.Parameters {
		if p.ID != parameterID {
			params = append(params, p)
		}
	}
	return u.Save(ctx, params, formula.BuildMapping(params).ToDisplay(settings.InternalFormula))
}

func (u *PriceSettingsUseCase) ProposeCleanup(ctx context.Context, parameterID string) (formula.CleanupPreview, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return formula.CleanupPreview{}, err
	}
	display := formula.BuildMapping(settings.Parameters).ToDisplay(settings.InternalFormula)
	preview, err := formula.ProposeCleanup(settings.Parameters, display, parameterID)
	if errors.Is(err, formula.ErrParameterNotFound) {
		return formula.CleanupPreview{}, ErrParameterNotFound
	}
	return preview, err
}

// ConfirmCleanup applies a cleanup preview: the orphan's letter becomes the
// literal 0 in the formula and the parameter is removed, in one save.
func (u *PriceSettingsUseCase) ConfirmCleanup(ctx context.Context, preview formula.CleanupPreview) (SettingsView, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	display := formula.BuildMapping(settings.Parameters).ToDisplay(settings.InternalFormula)
	remaining, newDisplay, err := formula.ConfirmCleanup(settings.Parameters, settings.InternalFormula, display, preview)
	if err != nil {
		return SettingsView{}, err
	}
	removed, _ := settings.ParameterByID(preview.ParameterID)
	u.logger.Info("orphan cleanup confirmed",
		zap.String("parameter_id", preview.ParameterID),
		zap.String("parameter_name", removed.Name),
		zap.String("letter", preview.Letter))
	return u.Save(ctx, remaining, newDisplay)
}

func (u *PriceSettingsUseCase) load(ctx context.Context) (entities.PriceSettings, []entities.FieldDescriptor, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.PriceSettings{}, nil, err
	}
	catalog, err := u.fields.ListCatalog(ctx)
	if err != nil {
		return entities.PriceSettings{}, nil, err
	}
	return settings, catalog, nil
}

func (u *PriceSettingsUseCase) view(ctx context.Context, settings entities.PriceSettings) (SettingsView, error) {
	catalog, err := u.fields.ListCatalog(ctx)
	if err != nil {
		return SettingsView{}, err
	}
	mapping := formula.BuildMapping(settings.Parameters)
	display := mapping.ToDisplay(settings.InternalFormula)
	return SettingsView{
		Parameters:      settings.Parameters,
		DisplayFormula:  display,
		InternalFormula: settings.InternalFormula,
		Letters:         mapping.Letters,
		Version:         settings.Version,
		Integrity:       formula.CheckIntegrity(settings.Parameters, catalog, display),
	}, nil
}

func newParameterID() string {
	return "p_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
