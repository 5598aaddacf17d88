package response

import (
	"testing"
	"time"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase"
)

func TestFromStatusReport(t *testing.T) {
	summary := &entities.DifferenceSummary{OldPrice: 100, NewPrice: 120, PriceDiff: 20}
	got := FromStatusReport(usecase.StatusReport{
		RecordID:        "rec-1",
		Status:          entities.PriceStatusPriceDrift,
		Action:          entities.ActionApply,
		CalculatedPrice: 120,
		AppliedPrice:    100,
		Summary:         summary,
	})

	if got.Status != "price-drift" || got.Action != "apply" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.Summary != summary {
		t.Fatalf("summary should pass through unchanged")
	}
}

func TestFromRecordPriceState(t *testing.T) {
	now := time.Now().UTC()
	got := FromRecordPriceState(entities.RecordPriceState{
		RecordID:        "rec-1",
		Name:            "Steel frame",
		Price:           120,
		CalculatedPrice: 120,
		AppliedVersion:  4,
		ComputedVersion: 4,
		LastApplied:     now,
		Override:        entities.ManualOverride{Active: true, Price: 99},
	})

	if got.RecordID != "rec-1" || got.Price != 120 || got.AppliedVersion != 4 {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if !got.Override.Active || got.Override.Price != 99 {
		t.Fatalf("override not carried: %+v", got.Override)
	}
}

func TestFromValidationFailureAndIntegrityBlock(t *testing.T) {
	v := FromValidationFailure(formula.ValidationResult{
		Errors:           []string{`undefined parameter "Z"`},
		UsedLetters:      []string{"A", "Z"},
		AvailableLetters: []string{"A"},
	})
	if v.Code != "VALIDATION_FAILED" || len(v.Validation.Errors) != 1 {
		t.Fatalf("unexpected response: %+v", v)
	}

	i := FromIntegrityBlock(formula.IntegrityReport{
		OrphanParameters: []formula.OrphanParameter{{ID: "p_w", Letter: "B", InFormula: true}},
		OrphansInFormula: []string{"B"},
	})
	if i.Code != "INTEGRITY_BLOCKED" || len(i.Integrity.OrphanParameters) != 1 {
		t.Fatalf("unexpected response: %+v", i)
	}
}
