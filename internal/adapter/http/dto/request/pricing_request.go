package request

import (
	"strings"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
)

type LookupRowRequest struct {
	Option string  `json:"option" binding:"required"`
	Value  float64 `json:"value"`
}

// ParameterRequest is one parameter as submitted by the settings editor.
// ID is optional: the usecase generates one for new parameters.
type ParameterRequest struct {
	ID          string             `json:"id"`
	Name        string             `json:"name" binding:"required"`
	Type        string             `json:"type" binding:"required"`
	Value       float64            `json:"value"`
	FormFieldID string             `json:"form_field_id"`
	LookupTable []LookupRowRequest `json:"lookup_table"`
}

func (r ParameterRequest) ToEntity() entities.Parameter {
	p := entities.Parameter{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Type:        entities.ParameterType(r.Type),
		Value:       r.Value,
		FormFieldID: strings.TrimSpace(r.FormFieldID),
	}
	for _, row := range r.LookupTable {
		p.LookupTable = append(p.LookupTable, entities.LookupRow{Option: row.Option, Value: row.Value})
	}
	return p
}

// PriceSettingsSaveRequest is the full settings save payload: the complete
// parameter list plus the formula in display (letter) form.
type PriceSettingsSaveRequest struct {
	Parameters []ParameterRequest `json:"parameters"`
	Formula    string             `json:"formula"`
}

func (r PriceSettingsSaveRequest) ToParameters() []entities.Parameter {
	params := make([]entities.Parameter, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		params = append(params, p.ToEntity())
	}
	return params
}

type FormulaValidateRequest struct {
	Formula string `json:"formula"`
}

// CleanupConfirmRequest echoes the preview back. The usecase rejects it when
// the settings moved since the preview was produced.
type CleanupConfirmRequest struct {
	ParameterID   string `json:"parameter_id" binding:"required"`
	ParameterName string `json:"parameter_name"`
	Letter        string `json:"letter" binding:"required"`
	FormulaBefore string `json:"formula_before"`
	FormulaAfter  string `json:"formula_after"`
}

func (r CleanupConfirmRequest) ToPreview() formula.CleanupPreview {
	return formula.CleanupPreview{
		ParameterID:   r.ParameterID,
		ParameterName: r.ParameterName,
		Letter:        r.Letter,
		FormulaBefore: r.FormulaBefore,
		FormulaAfter:  r.FormulaAfter,
	}
}

// FieldDescriptorRequest is one quote-form field in a catalog save.
type FieldDescriptorRequest struct {
	ID      string   `json:"id" binding:"required"`
	Label   string   `json:"label" binding:"required"`
	Type    string   `json:"type" binding:"required"`
	Options []string `json:"options"`
}

// FormFieldCatalogSaveRequest replaces the whole catalog document. An empty
// field list clears it, so the slice itself carries no required binding.
type FormFieldCatalogSaveRequest struct {
	Fields []FieldDescriptorRequest `json:"fields" binding:"dive"`
}

func (r FormFieldCatalogSaveRequest) ToEntities() []entities.FieldDescriptor {
	out := make([]entities.FieldDescriptor, 0, len(r.Fields))
	for _, f := range r.Fields {
		out = append(out, entities.FieldDescriptor{
			ID:      strings.TrimSpace(f.ID),
			Label:   strings.TrimSpace(f.Label),
			Type:    entities.FieldType(f.Type),
			Options: f.Options,
		})
	}
	return out
}

// OverrideSetRequest pins a record's price. Price is a pointer so a missing
// field is distinguishable from an explicit zero.
type OverrideSetRequest struct {
	Price *float64 `json:"price" binding:"required"`
	Note  string   `json:"note"`
	SetBy string   `json:"set_by"`
}

// BatchStartRequest deliberately has no required binding: an empty id list
// must reach the usecase so it answers with its own empty-batch error.
type BatchStartRequest struct {
	RecordIDs []string `json:"record_ids"`
}
