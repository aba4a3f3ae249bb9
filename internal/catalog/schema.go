package catalog

import (
	"encoding/json"
	"fmt"
)

// Kind is the JSON type a schema field must have.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
)

// Validation messages carried by Result.
const (
	MessageValid   = "data loaded successfully"
	MessageInvalid = "data is invalid"
)

// Field is one expected key of a record.
type Field struct {
	Name string
	Kind Kind
}

// Schema describes the shape of a stored record. Fields are optional: a
// record missing a key, or holding null for it, is still valid. A key
// holding any other wrong JSON type is not.
type Schema struct {
	Fields []Field
}

// DefaultSchema returns the shape of a product record.
func DefaultSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "product", Kind: KindString},
			{Name: "shop", Kind: KindString},
			{Name: "cost", Kind: KindNumber},
		},
	}
}

// Result is the outcome of validating one record.
type Result struct {
	Valid    bool
	Message  string
	Problems []string
}

// Err returns nil for a valid result and a *ValidationError otherwise.
// index is the record's position in its file, or -1.
func (r Result) Err(index int) error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Index: index, Message: r.Message, Problems: r.Problems}
}

// Validate checks raw against the schema.
func (s Schema) Validate(raw json.RawMessage) Result {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return invalid(fmt.Sprintf("record: %v", err))
	}
	return s.validateValue(value)
}

func (s Schema) validateValue(value any) Result {
	obj, ok := value.(map[string]any)
	if !ok {
		return invalid(fmt.Sprintf("record: expected object, got %s", jsonKind(value)))
	}

	var problems []string
	for _, f := range s.Fields {
		v, present := obj[f.Name]
		if !present || v == nil {
			continue
		}
		if got := jsonKind(v); got != string(f.Kind) {
			problems = append(problems, fmt.Sprintf("%s: expected %s, got %s", f.Name, f.Kind, got))
		}
	}

	if len(problems) > 0 {
		return invalid(problems...)
	}
	return Result{Valid: true, Message: MessageValid}
}

func invalid(problems ...string) Result {
	return Result{Valid: false, Message: MessageInvalid, Problems: problems}
}

// jsonKind names the JSON type of a value produced by encoding/json.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
