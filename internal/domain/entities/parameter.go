package entities

import "fmt"

// ParameterType distinguishes how a pricing parameter obtains its value.
//
// Domain notes:
//   - Fixed parameters carry a constant configured by the administrator.
//   - FormField parameters resolve against the submitted quote form at
//     calculation time, optionally through a lookup table when the
//     referenced field has enumerated options.

type ParameterType string

const (
	ParameterTypeFixed     ParameterType = "fixed"
	ParameterTypeFormField ParameterType = "form_field"
)

// LookupRow maps one enumerated form-field option to a numeric value.
type LookupRow struct {
	Option string  `json:"option"`
	Value  float64 `json:"value"`
}

// Parameter is one named input to the pricing formula.
//
// Storage model (DynamoDB):
//   - Parameters are embedded, in order, inside the price-settings document.
//     Their list position determines the display letter; the position is
//     never persisted separately.
//
// A FormField parameter whose FormFieldID no longer resolves against the
// catalog is orphaned. Orphans are flagged by the integrity check, never
// deleted automatically.

type Parameter struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        ParameterType `json:"type"`
	Value       float64       `json:"value,omitempty"`
	FormFieldID string        `json:"form_field_id,omitempty"`
	LookupTable []LookupRow   `json:"lookup_table,omitempty"`
}

// Validate checks the shape invariants for the parameter itself. Catalog
// resolution (orphan detection) is the integrity checker's job, not this one.
func (p Parameter) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("parameter %q: missing id", p.Name)
	}
	if p.Name == "" {
		return fmt.Errorf("parameter %s: missing name", p.ID)
	}
	switch p.Type {
	case ParameterTypeFixed:
		return nil
	case ParameterTypeFormField:
		if p.FormFieldID == "" {
			return fmt.Errorf("parameter %s: form-field parameter without form_field_id", p.ID)
		}
		return nil
	default:
		return fmt.Errorf("parameter %s: unknown type %q", p.ID, p.Type)
	}
}

// LookupValue resolves an enumerated option through the lookup table.
// The table need not cover every catalog option; a miss reports ok=false
// and the caller decides the fallback.
func (p Parameter) LookupValue(option string) (float64, bool) {
	for _, row := range p.LookupTable {
		if row.Option == option {
			return row.Value, true
		}
	}
	return 0, false
}
