package formula

import (
	"strings"
	"testing"

	"portal_pricing/internal/domain/entities"
)

func TestValidate_OK(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_base", "Base", 10),
		fixedParam("p_qty", "Qty", 5),
		fixedParam("p_x", "X", 1),
	}

	res := Validate("A*B + ROUND(C, 2)", params)
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.UsedLetters) != 3 || res.UsedLetters[0] != "A" || res.UsedLetters[2] != "C" {
		t.Fatalf("unexpected used letters: %v", res.UsedLetters)
	}
	if len(res.AvailableLetters) != 3 {
		t.Fatalf("unexpected available letters: %v", res.AvailableLetters)
	}
}

func TestValidate_UndefinedLetter(t *testing.T) {
	params := []entities.Parameter{fixedParam("p_base", "Base", 10)}

	res := Validate("A*B", params)
	if res.IsValid {
		t.Fatalf("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "undefined parameter") && strings.Contains(e, "B") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected undefined parameter error for B, got %v", res.Errors)
	}
}

func TestValidate_DisallowedToken(t *testing.T) {
	params := []entities.Parameter{fixedParam("p_base", "Base", 10)}

	for _, f := range []string{"A * eval", "A + dropTable", "A; 1"} {
		res := Validate(f, params)
		if res.IsValid {
			t.Fatalf("Validate(%q): expected invalid", f)
		}
	}
}

func TestValidate_EmptyFormulaIsValid(t *testing.T) {
	res := Validate("  ", nil)
	if !res.IsValid || len(res.Errors) != 0 {
		t.Fatalf("expected empty formula to validate, got %+v", res)
	}
}

func TestValidate_LetterShadowsConstantE(t *testing.T) {
	params := []entities.Parameter{
		fixedParam("p_1", "P1", 1),
		fixedParam("p_2", "P2", 2),
		fixedParam("p_3", "P3", 3),
		fixedParam("p_4", "P4", 4),
		fixedParam("p_5", "P5", 5),
	}
	res := Validate("E*2", params)
	if !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	if len(res.UsedLetters) != 1 || res.UsedLetters[0] != "E" {
		t.Fatalf("expected E counted as parameter use, got %v", res.UsedLetters)
	}
}

func TestValidate_LeadingEquals(t *testing.T) {
	params := []entities.Parameter{fixedParam("p_base", "Base", 10)}
	res := Validate("=A*2", params)
	if !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestValidate_SyntaxError(t *testing.T) {
	params := []entities.Parameter{fixedParam("p_base", "Base", 10)}
	res := Validate("A*(", params)
	if res.IsValid {
		t.Fatalf("expected syntax error")
	}
}
