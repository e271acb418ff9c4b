package jsonstore

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema for the store document. Catches hand-edited files early, with
// a path to the offending value instead of a zero-valued record.
const storeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "records"],
  "properties": {
    "version": { "type": "integer", "minimum": 1 },
    "tags": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    },
    "records": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "content"],
        "properties": {
          "id":         { "type": "string", "minLength": 1 },
          "content":    { "type": "string", "minLength": 1 },
          "done":       { "type": "boolean" },
          "tag":        { "type": "string", "minLength": 1 },
          "created_at": { "type": "string" }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("marc-store.json", storeSchema)

func validate(b []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrapf(ErrCorrupted, "%v", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return errors.Wrapf(ErrInvalidStore, "%v", err)
	}
	return nil
}
