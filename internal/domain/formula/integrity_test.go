package formula

import (
	"errors"
	"testing"

	"portal_pricing/internal/domain/entities"
)

func formParam(id, name, fieldID string) entities.Parameter {
	return entities.Parameter{ID: id, Name: name, Type: entities.ParameterTypeFormField, FormFieldID: fieldID}
}

func catalogWith(ids ...string) []entities.FieldDescriptor {
	out := make([]entities.FieldDescriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.FieldDescriptor{ID: id, Label: id, Type: entities.FieldTypeNumber})
	}
	return out
}

func TestCheckIntegrity_Clean(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		formParam("p_qty", "Qty", "fld_qty"),
	}
	report := CheckIntegrity(params, catalogWith("fld_qty"), "A*B")
	if !report.IsValid || !report.CanSave || !report.CanEdit {
		t.Fatalf("expected clean report, got %+v", report)
	}
	if len(report.OrphanParameters) != 0 {
		t.Fatalf("unexpected orphans: %+v", report.OrphanParameters)
	}
}

func TestCheckIntegrity_OrphanOutsideFormula(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		formParam("p_qty", "Qty", "fld_gone"),
	}
	report := CheckIntegrity(params, catalogWith(), "A*2")
	if report.IsValid {
		t.Fatalf("expected invalid report")
	}
	// Orphan not referenced by the formula only warns; editing stays open.
	if !report.CanSave || !report.CanEdit {
		t.Fatalf("expected save/edit allowed, got %+v", report)
	}
	if len(report.OrphanParameters) != 1 || report.OrphanParameters[0].InFormula {
		t.Fatalf("unexpected orphan report: %+v", report.OrphanParameters)
	}
	if len(report.Warnings) == 0 {
		t.Fatalf("expected warning")
	}
}

func TestCheckIntegrity_OrphanInFormulaBlocks(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		formParam("p_qty", "Qty", "fld_gone"),
	}
	report := CheckIntegrity(params, catalogWith(), "A*B")
	if report.CanSave || report.CanEdit {
		t.Fatalf("expected save/edit blocked, got %+v", report)
	}
	if len(report.OrphansInFormula) != 1 || report.OrphansInFormula[0] != "B" {
		t.Fatalf("unexpected orphans in formula: %v", report.OrphansInFormula)
	}
	if len(report.OrphanParameters) != 1 || !report.OrphanParameters[0].InFormula {
		t.Fatalf("unexpected orphan detail: %+v", report.OrphanParameters)
	}
	if report.OrphanParameters[0].Remediation == "" {
		t.Fatalf("expected remediation guidance")
	}
}

func TestCheckIntegrity_LookupTableWarning(t *testing.T) {
	catalog := []entities.FieldDescriptor{
		{ID: "fld_color", Label: "Color", Type: entities.FieldTypeSelect, Options: []string{"red", "blue"}},
	}
	params := []entities.Parameter{formParam("p_color", "Color", "fld_color")}
	report := CheckIntegrity(params, catalog, "A")
	if !report.CanSave {
		t.Fatalf("missing lookup table should not block saving: %+v", report)
	}
	if len(report.Warnings) == 0 {
		t.Fatalf("expected lookup table warning")
	}
}

func TestCleanup_TwoStep(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		formParam("p_qty", "Qty", "fld_gone"),
	}
	internal := "p_base*p_qty + p_qty"
	display := "A*B + B"

	preview, err := ProposeCleanup(params, display, "p_qty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Letter != "B" || preview.FormulaAfter != "A*0 + 0" {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	remaining, newFormula, err := ConfirmCleanup(params, internal, display, preview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newFormula != "A*0 + 0" {
		t.Fatalf("unexpected formula: %q", newFormula)
	}
	if len(remaining) != 1 || remaining[0].ID != "p_base" {
		t.Fatalf("unexpected remaining params: %+v", remaining)
	}
}

func TestCleanup_MiddleParameterRelabelsLaterLetters(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		formParam("p_gone", "Gone", "fld_gone"),
		fixedParam("p_tax", "Tax", 1.2),
	}
	internal := "p_base*p_gone+p_tax"
	display := "A*B+C"

	preview, err := ProposeCleanup(params, display, "p_gone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The preview is rendered in the pre-removal letter space.
	if preview.FormulaAfter != "A*0+C" {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	remaining, newFormula, err := ConfirmCleanup(params, internal, display, preview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// p_tax slides from C to B once p_gone is gone.
	if newFormula != "A*0+B" {
		t.Fatalf("unexpected formula: %q", newFormula)
	}
	if len(remaining) != 2 || remaining[0].ID != "p_base" || remaining[1].ID != "p_tax" {
		t.Fatalf("unexpected remaining params: %+v", remaining)
	}
	if res := Validate(newFormula, remaining); !res.IsValid {
		t.Fatalf("cleaned formula must validate against the remaining parameters: %v", res.Errors)
	}
}

func TestCleanup_StalePreviewRejected(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		formParam("p_qty", "Qty", "fld_gone"),
	}
	preview, err := ProposeCleanup(params, "A*B", "p_qty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Formula changed between propose and confirm.
	if _, _, err := ConfirmCleanup(params, "p_base*p_qty+1", "A*B+1", preview); !errors.Is(err, ErrStalePreview) {
		t.Fatalf("expected ErrStalePreview, got %v", err)
	}

	// Registry reordered between propose and confirm.
	reordered := []entities.Parameter{params[1], params[0]}
	if _, _, err := ConfirmCleanup(reordered, "p_qty*p_base", "A*B", preview); !errors.Is(err, ErrStalePreview) {
		t.Fatalf("expected ErrStalePreview, got %v", err)
	}
}

func TestCleanup_UnknownParameter(t *testing.T) {
	if _, err := ProposeCleanup(nil, "A", "p_ghost"); !errors.Is(err, ErrParameterNotFound) {
		t.Fatalf("expected ErrParameterNotFound, got %v", err)
	}
}
