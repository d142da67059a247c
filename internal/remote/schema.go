package remote

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response schemas. Only the fields the client relies on are required;
// additional properties are tolerated so the service can grow.
const (
	startSchemaName  = "session-start"
	submitSchemaName = "session-submit"
	statsSchemaName  = "stats"
	rootSchemaName   = "root"
)

var schemaDefs = map[string]string{
	startSchemaName: `{
		"type": "object",
		"required": ["questions"],
		"properties": {
			"questions": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "type", "question"],
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"type": {"enum": ["multiple-choice", "fill-blank"]},
						"difficulty": {"type": ["string", "null"]},
						"question": {"type": "string"},
						"options": {"type": ["array", "null"], "items": {"type": "string"}}
					}
				}
			}
		}
	}`,
	submitSchemaName: `{
		"type": "object",
		"required": ["score", "total", "percentage", "results"],
		"properties": {
			"score": {"type": "integer", "minimum": 0},
			"total": {"type": "integer", "minimum": 0},
			"percentage": {"type": "number"},
			"results": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["question", "is_correct", "correct_answer"],
					"properties": {
						"question": {"type": "string"},
						"is_correct": {"type": "boolean"},
						"user_answer": {"type": "string"},
						"correct_answer": {"type": "string"},
						"explanation": {"type": ["string", "null"]}
					}
				}
			}
		}
	}`,
	statsSchemaName: `{
		"type": "object",
		"required": ["unseen", "seen_once", "seen_twice"],
		"properties": {
			"unseen": {"type": "integer"},
			"seen_once": {"type": "integer"},
			"seen_twice": {"type": "integer"},
			"total_questions": {"type": "integer"},
			"exhausted": {"type": "integer"}
		}
	}`,
	rootSchemaName: `{
		"type": "object",
		"required": ["version"],
		"properties": {
			"message": {"type": "string"},
			"version": {"type": "string"}
		}
	}`,
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody checks raw against the named schema.
func validateBody(name string, raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compiledSchema(name)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}
	def, ok := schemaDefs[name]
	if !ok {
		return nil, fmt.Errorf("no schema named %q", name)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	schemaCache.Store(name, compiled)
	return compiled, nil
}
