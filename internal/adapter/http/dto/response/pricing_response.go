package response

import (
	"time"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase"
)

type PriceSettingsResponse struct {
	Parameters      []entities.Parameter    `json:"parameters"`
	DisplayFormula  string                  `json:"display_formula"`
	InternalFormula string                  `json:"internal_formula"`
	Letters         []string                `json:"letters"`
	Version         int64                   `json:"version"`
	Integrity       formula.IntegrityReport `json:"integrity"`
}

func FromSettingsView(v usecase.SettingsView) PriceSettingsResponse {
	return PriceSettingsResponse{
		Parameters:      v.Parameters,
		DisplayFormula:  v.DisplayFormula,
		InternalFormula: v.InternalFormula,
		Letters:         v.Letters,
		Version:         v.Version,
		Integrity:       v.Integrity,
	}
}

type StatusReportResponse struct {
	RecordID        string                      `json:"record_id"`
	Status          string                      `json:"status"`
	Action          string                      `json:"action"`
	CalculatedPrice float64                     `json:"calculated_price"`
	AppliedPrice    float64                     `json:"applied_price"`
	OverrideActive  bool                        `json:"override_active"`
	Summary         *entities.DifferenceSummary `json:"summary,omitempty"`
	Error           string                      `json:"error,omitempty"`
}

func FromStatusReport(r usecase.StatusReport) StatusReportResponse {
	return StatusReportResponse{
		RecordID:        r.RecordID,
		Status:          string(r.Status),
		Action:          string(r.Action),
		CalculatedPrice: r.CalculatedPrice,
		AppliedPrice:    r.AppliedPrice,
		OverrideActive:  r.OverrideActive,
		Summary:         r.Summary,
		Error:           r.Error,
	}
}

type RecordPriceResponse struct {
	RecordID        string                  `json:"record_id"`
	Name            string                  `json:"name"`
	Price           float64                 `json:"price"`
	CalculatedPrice float64                 `json:"calculated_price"`
	AppliedVersion  int64                   `json:"applied_version"`
	ComputedVersion int64                   `json:"computed_version"`
	LastCalculated  time.Time               `json:"last_calculated"`
	LastApplied     time.Time               `json:"last_applied"`
	Override        entities.ManualOverride `json:"override"`
}

func FromRecordPriceState(s entities.RecordPriceState) RecordPriceResponse {
	return RecordPriceResponse{
		RecordID:        s.RecordID,
		Name:            s.Name,
		Price:           s.Price,
		CalculatedPrice: s.CalculatedPrice,
		AppliedVersion:  s.AppliedVersion,
		ComputedVersion: s.ComputedVersion,
		LastCalculated:  s.LastCalculated,
		LastApplied:     s.LastApplied,
		Override:        s.Override,
	}
}

// ValidationFailedResponse is the 422 body for a formula that does not
// validate. The full result rides along so the editor can highlight the
// offending letters instead of showing a bare message.
type ValidationFailedResponse struct {
	Code       string                   `json:"code"`
	Message    string                   `json:"message"`
	Validation formula.ValidationResult `json:"validation"`
}

func FromValidationFailure(res formula.ValidationResult) ValidationFailedResponse {
	return ValidationFailedResponse{
		Code:       "VALIDATION_FAILED",
		Message:    "Formula validation failed",
		Validation: res,
	}
}

// IntegrityBlockedResponse is the 422 body when orphaned parameters block a
// save. It carries the full report: every orphan, whether its letter is
// live in the formula, and the remediation text.
type IntegrityBlockedResponse struct {
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	Integrity formula.IntegrityReport `json:"integrity"`
}

func FromIntegrityBlock(report formula.IntegrityReport) IntegrityBlockedResponse {
	return IntegrityBlockedResponse{
		Code:      "INTEGRITY_BLOCKED",
		Message:   "Price settings blocked by integrity check",
		Integrity: report,
	}
}

type BatchStartResponse struct {
	BatchID string `json:"batch_id"`
}

type FormFieldCatalogResponse struct {
	Fields []entities.FieldDescriptor `json:"fields"`
}
