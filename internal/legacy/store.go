package legacy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/products"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

// Export keys written by the old browser app. Each value is the collection
// JSON; depending on how the export was taken it is either stored raw or as
// a JSON-encoded string.
const (
	keyQuotations = "anfer_quotations"
	keyCustomers  = "anfer_customers"
	keyProducts   = "anfer_products"
	keySettings   = "anfer_settings"
	keyCounter    = "anfer_next_quotation_number"
)

// Store holds the decoded contents of a legacy export file.
type Store struct {
	Quotations []quotations.Quotation
	Customers  []customers.Customer
	Products   []products.Product
	Settings   *settings.Settings
	// NextNumber is the stored counter value, e.g. "0185". Empty when the
	// export predates the counter key.
	NextNumber string
}

// ReadFile loads a legacy export from disk.
func ReadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return Parse(data)
}

// Parse decodes a legacy export. The export is a JSON object keyed by the
// original storage keys; missing keys mean empty collections.
func Parse(data []byte) (*Store, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	store := &Store{}
	if err := decodeValue(raw[keyQuotations], &store.Quotations); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyQuotations, err)
	}
	if err := decodeValue(raw[keyCustomers], &store.Customers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyCustomers, err)
	}
	if err := decodeValue(raw[keyProducts], &store.Products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyProducts, err)
	}
	if len(raw[keySettings]) > 0 {
		var s settings.Settings
		if err := decodeValue(raw[keySettings], &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keySettings, err)
		}
		store.Settings = &s
	}
	if len(raw[keyCounter]) > 0 {
		if err := decodeValue(raw[keyCounter], &store.NextNumber); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keyCounter, err)
		}
	}
	return store, nil
}

// decodeValue unmarshals a value that may be stored either as its JSON form
// or, as localStorage dumps often are, as a JSON string containing JSON.
func decodeValue(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '"' {
		if _, ok := dst.(*string); ok {
			return json.Unmarshal(raw, dst)
		}
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		return json.Unmarshal([]byte(inner), dst)
	}
	return json.Unmarshal(raw, dst)
}
