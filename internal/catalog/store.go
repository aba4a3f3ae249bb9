package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Policy decides what Load does with a record that fails validation.
type Policy string

const (
	// PolicyWarn logs the invalid record and loads it with default values.
	PolicyWarn Policy = "warn"

	// PolicyReject aborts the load with a *ValidationError.
	PolicyReject Policy = "reject"
)

// Store reads and writes a Catalog as a JSON file.
type Store struct {
	schema Schema
	policy Policy
	log    *zap.Logger
}

// NewStore creates a Store that validates records against schema.
// An empty policy means PolicyWarn; a nil logger discards log output.
func NewStore(schema Schema, policy Policy, log *zap.Logger) *Store {
	if policy == "" {
		policy = PolicyWarn
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{schema: schema, policy: policy, log: log}
}

// Schema returns the schema the store validates against.
func (s *Store) Schema() Schema {
	return s.schema
}

// Load reads the catalog stored at path. A missing file yields an empty
// catalog. A file that is not a JSON array fails with a *ParseError.
// Invalid records are handled according to the store's Policy.
func (s *Store) Load(path string) (Catalog, error) {
	return s.load(path, s.policy)
}

// LoadForUpdate is Load for callers that will Save the catalog back.
// Records decoded with defaults would overwrite the original data, so any
// invalid record fails with a *ValidationError whatever the Policy.
func (s *Store) LoadForUpdate(path string) (Catalog, error) {
	return s.load(path, PolicyReject)
}

func (s *Store) load(path string, policy Policy) (Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("products file not found, starting empty", zap.String("path", path))
		return Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if records == nil {
		// "null" decodes into a nil slice without error
		return nil, &ParseError{Path: path, Err: errors.New("top-level value is not an array")}
	}

	products := make(Catalog, 0, len(records))
	for i, raw := range records {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}

		result := s.schema.validateValue(value)
		if !result.Valid {
			if policy == PolicyReject {
				return nil, result.Err(i)
			}
			s.log.Warn(result.Message,
				zap.String("path", path),
				zap.Int("index", i),
				zap.Strings("problems", result.Problems),
			)
		}

		products = append(products, decodeProduct(value))
	}

	s.log.Debug(MessageValid, zap.String("path", path), zap.Int("count", len(products)))
	return products, nil
}

// decodeProduct maps a decoded JSON value onto a Product. Keys that are
// missing, null or hold the wrong type take the field's zero value.
func decodeProduct(value any) Product {
	obj, _ := value.(map[string]any)

	var p Product
	p.Name, _ = obj["product"].(string)
	p.Shop, _ = obj["shop"].(string)
	p.Cost, _ = obj["cost"].(float64)
	return p
}

// Save overwrites path with the JSON form of c. The write is not atomic.
func (s *Store) Save(path string, c Catalog) error {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, c); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write products file: %w", err)
	}

	s.log.Debug("products saved", zap.String("path", path), zap.Int("count", len(c)))
	return nil
}

// WriteJSON writes c as an indented JSON array, leaving non-ASCII and
// HTML-significant characters unescaped.
func WriteJSON(w io.Writer, c Catalog) error {
	if c == nil {
		c = Catalog{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	return nil
}
