package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidate(t *testing.T) {
	schema := DefaultSchema()

	tests := []struct {
		name     string
		record   string
		valid    bool
		problems []string
	}{
		{
			name:   "complete record",
			record: `{"product": "bread", "shop": "Market1", "cost": 2.5}`,
			valid:  true,
		},
		{
			name:   "missing fields are allowed",
			record: `{"product": "bread"}`,
			valid:  true,
		},
		{
			name:   "extra fields are allowed",
			record: `{"product": "bread", "shop": "Market1", "cost": 2, "note": "fresh"}`,
			valid:  true,
		},
		{
			name:     "cost as string",
			record:   `{"product": "bread", "shop": "Market1", "cost": "2.5"}`,
			problems: []string{"cost: expected number, got string"},
		},
		{
			name:   "several mismatches",
			record: `{"product": 7, "shop": [], "cost": true}`,
			problems: []string{
				"product: expected string, got number",
				"shop: expected string, got array",
				"cost: expected number, got boolean",
			},
		},
		{
			name:   "null fields count as absent",
			record: `{"product": "bread", "shop": null, "cost": null}`,
			valid:  true,
		},
		{
			name:     "not an object",
			record:   `["bread", "Market1", 2.5]`,
			problems: []string{"record: expected object, got array"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := schema.Validate(json.RawMessage(tt.record))
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Equal(t, MessageValid, result.Message)
				assert.Empty(t, result.Problems)
				assert.NoError(t, result.Err(0))
			} else {
				assert.Equal(t, MessageInvalid, result.Message)
				assert.Equal(t, tt.problems, result.Problems)
			}
		})
	}
}

func TestSchemaValidate_MalformedJSON(t *testing.T) {
	result := DefaultSchema().Validate(json.RawMessage(`{"product":`))
	assert.False(t, result.Valid)
	require.Len(t, result.Problems, 1)
	assert.Contains(t, result.Problems[0], "record:")
}

func TestResultErr(t *testing.T) {
	result := DefaultSchema().Validate(json.RawMessage(`{"cost": "free"}`))
	err := result.Err(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "data is invalid (record 3): cost: expected number, got string", err.Error())
}
