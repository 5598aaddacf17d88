package formula

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"portal_pricing/internal/domain/entities"
)

// ValidationResult is the authoring-time verdict for a display formula.
type ValidationResult struct {
	IsValid          bool     `json:"is_valid"`
	Errors           []string `json:"errors"`
	UsedLetters      []string `json:"used_letters"`
	AvailableLetters []string `json:"available_letters"`
}

var letterPattern = regexp.MustCompile(`^[A-Z]+$`)

// Validate checks a display formula against the current parameter list.
// Every referenced letter must map to a parameter and the formula must parse
// under the whitelist grammar; nothing is ever evaluated on failure.
func Validate(displayFormula string, params []entities.Parameter) ValidationResult {
	mapping := BuildMapping(params)
	res := ValidationResult{
		AvailableLetters: append([]string(nil), mapping.Letters...),
	}

	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(displayFormula), "="))
	if trimmed == "" {
		res.IsValid = true
		return res
	}

	used := map[string]bool{}
	for _, tok := range identPattern.FindAllString(trimmed, -1) {
		if _, isFn := functions[tok]; isFn {
			continue
		}
		// Letters shadow the constants, so a registry with 5+ parameters can
		// still reference its E.
		if _, ok := mapping.ByLetter[tok]; ok {
			used[tok] = true
			continue
		}
		if tok == "PI" || tok == "E" {
			continue
		}
		if !letterPattern.MatchString(tok) {
			res.Errors = append(res.Errors, fmt.Sprintf("disallowed token %q", tok))
			continue
		}
		res.Errors = append(res.Errors, fmt.Sprintf("undefined parameter %q", tok))
	}
	for letter := range used {
		res.UsedLetters = append(res.UsedLetters, letter)
	}
	sort.Strings(res.UsedLetters)

	if len(res.Errors) > 0 {
		return res
	}

	// Parse with placeholder values; the grammar itself is the last gate.
	placeholders := make(map[string]float64, len(params))
	for _, p := range params {
		placeholders[p.ID] = 1
	}
	substituted := Substitute(mapping.ToInternal(trimmed), placeholders)
	if _, err := parseFormula(substituted); err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	res.IsValid = true
	return res
}
