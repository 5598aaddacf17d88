package formula

import (
	"errors"
	"fmt"

	"portal_pricing/internal/domain/entities"
)

var (
	ErrParameterNotFound = errors.New("parameter not found")
	ErrStalePreview      = errors.New("cleanup preview is stale")
)

// OrphanParameter describes one parameter whose form field no longer exists.
type OrphanParameter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Letter      string `json:"letter"`
	FormFieldID string `json:"form_field_id"`
	InFormula   bool   `json:"in_formula"`
	Remediation string `json:"remediation"`
}

// IntegrityReport is the result of cross-referencing parameters against the
// current form-field catalog.
//
// CanSave/CanEdit go false as soon as any orphaned parameter's letter is
// still live in the display formula: the registry refuses new parameters and
// the formula refuses persistence until the orphan is resolved.
type IntegrityReport struct {
	IsValid          bool              `json:"is_valid"`
	CanSave          bool              `json:"can_save"`
	CanEdit          bool              `json:"can_edit"`
	OrphanParameters []OrphanParameter `json:"orphan_parameters"`
	OrphansInFormula []string          `json:"orphans_in_formula"`
	Warnings         []string          `json:"warnings"`
	Errors           []string          `json:"errors"`
}

// CheckIntegrity flags orphaned parameters and decides whether the settings
// may be saved or edited in their current state.
func CheckIntegrity(params []entities.Parameter, catalog []entities.FieldDescriptor, displayFormula string) IntegrityReport {
	report := IntegrityReport{IsValid: true, CanSave: true, CanEdit: true}

	fields := make(map[string]entities.FieldDescriptor, len(catalog))
	for _, f := range catalog {
		fields[f.ID] = f
	}

	mapping := BuildMapping(params)
	referenced := referencedLetters(displayFormula)

	for _, p := range params {
		if err := p.Validate(); err != nil {
			report.IsValid = false
			report.CanSave = false
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		if p.Type != entities.ParameterTypeFormField {
			continue
		}
		field, ok := fields[p.FormFieldID]
		if !ok {
			letter := mapping.ByID[p.ID]
			orphan := OrphanParameter{
				ID:          p.ID,
				Name:        p.Name,
				Letter:      letter,
				FormFieldID: p.FormFieldID,
				InFormula:   referenced[letter],
			}
			if orphan.InFormula {
				orphan.Remediation = fmt.Sprintf("remove %s from the formula or confirm cleanup of parameter %q", letter, p.Name)
				report.CanSave = false
				report.CanEdit = false
				report.OrphansInFormula = append(report.OrphansInFormula, letter)
				report.Errors = append(report.Errors, fmt.Sprintf("parameter %q (%s) references missing form field %q and is still used by the formula", p.Name, letter, p.FormFieldID))
			} else {
				orphan.Remediation = fmt.Sprintf("delete parameter %q or restore form field %q", p.Name, p.FormFieldID)
				report.Warnings = append(report.Warnings, fmt.Sprintf("parameter %q (%s) references missing form field %q", p.Name, letter, p.FormFieldID))
			}
			report.IsValid = false
			report.OrphanParameters = append(report.OrphanParameters, orphan)
			continue
		}
		if field.Type.Enumerated() && len(p.LookupTable) == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("parameter %q uses enumerated field %q without a lookup table", p.Name, field.Label))
		}
	}

	return report
}

// CleanupPreview is the first half of the destructive orphan cleanup: it
// shows the exact formula edit before anything is mutated, so the decision
// point lives in an API call rather than a UI dialog.
type CleanupPreview struct {
	ParameterID   string `json:"parameter_id"`
	ParameterName string `json:"parameter_name"`
	Letter        string `json:"letter"`
	FormulaBefore string `json:"formula_before"`
	FormulaAfter  string `json:"formula_after"`
}

// ProposeCleanup previews the removal of a parameter that is still
// referenced: its letter is replaced with the literal 0.
func ProposeCleanup(params []entities.Parameter, displayFormula, parameterID string) (CleanupPreview, error) {
	mapping := BuildMapping(params)
	letter, ok := mapping.ByID[parameterID]
	if !ok {
		return CleanupPreview{}, ErrParameterNotFound
	}
	var name string
	for _, p := range params {
		if p.ID == parameterID {
			name = p.Name
		}
	}
	return CleanupPreview{
		ParameterID:   parameterID,
		ParameterName: name,
		Letter:        letter,
		FormulaBefore: displayFormula,
		FormulaAfter:  replaceToken(displayFormula, letter, "0"),
	}, nil
}

// ConfirmCleanup applies a previously proposed preview: the parameter is
// removed from the list and its occurrences in the formula become the
// literal 0. A preview computed against an older formula or registry is
// rejected, never applied.
//
// The substitution runs on the internal-id formula, not the previewed
// display: removing a parameter shifts every later letter, so the preview's
// FormulaAfter is only valid in the pre-removal letter space. The returned
// display formula is re-derived from the remaining parameters.
func ConfirmCleanup(params []entities.Parameter, internalFormula, displayFormula string, preview CleanupPreview) ([]entities.Parameter, string, error) {
	if preview.FormulaBefore != displayFormula {
		return nil, "", ErrStalePreview
	}
	mapping := BuildMapping(params)
	if letter, ok := mapping.ByID[preview.ParameterID]; !ok || letter != preview.Letter {
		return nil, "", ErrStalePreview
	}

	remaining := make([]entities.Parameter, 0, len(params)-1)
	for _, p := range params {
		if p.ID != preview.ParameterID {
			remaining = append(remaining, p)
		}
	}
	zeroed := replaceToken(internalFormula, preview.ParameterID, "0")
	return remaining, BuildMapping(remaining).ToDisplay(zeroed), nil
}

func referencedLetters(displayFormula string) map[string]bool {
	out := map[string]bool{}
	for _, tok := range identPattern.FindAllString(displayFormula, -1) {
		if _, isFn := functions[tok]; isFn {
			continue
		}
		if letterPattern.MatchString(tok) {
			out[tok] = true
		}
	}
	return out
}

func replaceToken(formulaText, target, with string) string {
	return identPattern.ReplaceAllStringFunc(formulaText, func(tok string) string {
		if tok == target {
			return with
		}
		return tok
	})
}
