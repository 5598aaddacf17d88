package entities

// FieldType is the closed set of quote-form field kinds the pricing engine
// understands. Behavior that used to be keyed on raw type strings lives on
// the type itself so a new field kind is a compile-visible change.

type FieldType string

const (
	FieldTypeNumber      FieldType = "number"
	FieldTypeText        FieldType = "text"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
)

// Enumerated reports whether the field carries a fixed option list, which
// makes it eligible for lookup-table parameters.
func (t FieldType) Enumerated() bool {
	return t == FieldTypeSelect || t == FieldTypeMultiSelect || t == FieldTypeCheckbox
}

// Numeric reports whether the field's value feeds a formula directly,
// without a lookup table.
func (t FieldType) Numeric() bool {
	return t == FieldTypeNumber
}

// FieldDescriptor describes one field of the quote form catalog.
//
// Storage model (DynamoDB):
//   - PK: id
type FieldDescriptor struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Options []string  `json:"options,omitempty"`
}

// FieldValueKind tags the variant held by a FieldValue.
type FieldValueKind string

const (
	FieldValueScalar FieldValueKind = "scalar"
	FieldValueText   FieldValueKind = "text"
	FieldValueMulti  FieldValueKind = "multi"
)

// FieldValue is a submitted form value. A field is either a number, a single
// option/text, or a list of options; consumers branch on Kind explicitly
// instead of sniffing the underlying shape.
type FieldValue struct {
	Kind    FieldValueKind `json:"kind"`
	Number  float64        `json:"number,omitempty"`
	Text    string         `json:"text,omitempty"`
	Options []string       `json:"options,omitempty"`
}

func ScalarValue(n float64) FieldValue {
	return FieldValue{Kind: FieldValueScalar, Number: n}
}

func TextValue(s string) FieldValue {
	return FieldValue{Kind: FieldValueText, Text: s}
}

func MultiValue(opts []string) FieldValue {
	return FieldValue{Kind: FieldValueMulti, Options: opts}
}
