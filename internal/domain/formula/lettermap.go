package formula

import (
	"regexp"

	"portal_pricing/internal/domain/entities"
)

// Mapping is the positional letter assignment for the current parameter
// registry. It is derived, never persisted: position 0 is A, 1 is B, and so
// on (AA, AB, ... past Z). It must be rebuilt after every registry change
// before translating a formula in either direction.

type Mapping struct {
	ByID     map[string]string
	ByLetter map[string]string
	Letters  []string
}

// identPattern matches one whole identifier token. Substitution always
// replaces whole tokens, so a parameter id that is a prefix of another can
// never clobber part of the longer one.
var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// LetterForIndex returns the display letter for a registry position,
// spreadsheet-column style: A..Z, AA, AB, ...
func LetterForIndex(i int) string {
	letter := ""
	for i >= 0 {
		letter = string(rune('A'+i%26)) + letter
		i = i/26 - 1
	}
	return letter
}

// BuildMapping derives the letter mapping from the parameter list order.
func BuildMapping(params []entities.Parameter) Mapping {
	m := Mapping{
		ByID:     make(map[string]string, len(params)),
		ByLetter: make(map[string]string, len(params)),
		Letters:  make([]string, 0, len(params)),
	}
	for i, p := range params {
		letter := LetterForIndex(i)
		m.ByID[p.ID] = letter
		m.ByLetter[letter] = p.ID
		m.Letters = append(m.Letters, letter)
	}
	return m
}

// ToDisplay rewrites an internal-id formula into letter form. Tokens with no
// mapping are left untouched; validation reports them separately.
func (m Mapping) ToDisplay(internal string) string {
	return identPattern.ReplaceAllStringFunc(internal, func(tok string) string {
		if letter, ok := m.ByID[tok]; ok {
			return letter
		}
		return tok
	})
}

// ToInternal rewrites a letter formula into internal-id form.
func (m Mapping) ToInternal(display string) string {
	return identPattern.ReplaceAllStringFunc(display, func(tok string) string {
		if id, ok := m.ByLetter[tok]; ok {
			return id
		}
		return tok
	})
}
