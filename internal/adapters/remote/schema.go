package remote

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const catalogSchemaURL = "catsync://catalog.schema.json"

const catalogSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "entries"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "version": {"type": "string"},
    "providerTypes": {
      "type": ["array", "null"],
      "items": {"type": "string", "minLength": 1}
    },
    "entries": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["key", "type", "provider", "internalId"],
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "provider": {"type": "string", "minLength": 1},
          "internalId": {"type": "string"},
          "dependencies": {"type": "array", "items": {"type": "string"}},
          "bundle": {"type": "string"}
        }
      }
    },
    "bundles": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["name", "hash", "size"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "hash": {"type": "string"},
          "size": {"type": "integer", "minimum": 0},
          "assets": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var catalogSchema = jsonschema.MustCompileString(catalogSchemaURL, catalogSchemaJSON)

// DecodeCatalog validates a catalog document and decodes it.
func DecodeCatalog(data []byte) (*domain.Catalog, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogInvalid.Error())
	}
	if err := catalogSchema.Validate(doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogInvalid, "schema validation failed"), "reason", err.Error())
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogInvalid.Error())
	}
	return &catalog, nil
}
