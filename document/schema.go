package document

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// wireSchema documents the JSON shape accepted for an encoded document. The
// isPrivate field deliberately admits boolean, string and number encodings;
// coercion to a real bool happens during decode.
const wireSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "type"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "type": {
        "type": "string",
        "enum": ["heading", "paragraph", "link", "image", "list", "table", "file", "video", "page-link"]
      },
      "content": {"type": "string"},
      "props": {"type": "object"},
      "isPrivate": {"type": ["boolean", "string", "number"]}
    }
  }
}`

var compiledWireSchema = jsonschema.MustCompileString("blockdoc/document.json", wireSchema)

// ValidateEncoded checks a raw wire payload against the document schema
// before it is decoded or persisted. The string-encoded form is unwrapped
// first so both encodings validate against the same shape.
func ValidateEncoded(data []byte) error {
	trimmed := trimJSONSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return fmt.Errorf("document: schema check: %w", err)
		}
		return ValidateEncoded([]byte(inner))
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return fmt.Errorf("document: schema check: %w", err)
	}
	if err := compiledWireSchema.Validate(value); err != nil {
		return fmt.Errorf("document: schema check: %w", err)
	}
	return nil
}
