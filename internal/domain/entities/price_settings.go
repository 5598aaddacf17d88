package entities

import "time"

// PriceSettings is the published pricing configuration: the ordered
// parameter list plus the formula in internal-id form.
//
// Storage model (DynamoDB):
//   - Single document, PK: id = "current".
//   - Version is bumped atomically on every save (update expression ADD).
//
// Version is the Price Settings Version every priced record captures when a
// price is computed or applied. Formulas are persisted in internal-id form
// only; the letter form is derived from parameter order and never stored.

type PriceSettings struct {
	Parameters      []Parameter `json:"parameters"`
	InternalFormula string      `json:"internal_formula"`
	Version         int64       `json:"version"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ParameterByID returns the parameter with the given internal id, if present.
func (s PriceSettings) ParameterByID(id string) (Parameter, bool) {
	for _, p := range s.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return Parameter{}, false
}
