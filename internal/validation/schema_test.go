package validation

import (
	"errors"
	"strings"
	"testing"
)

const personSchema = `{
  "type": "object",
  "required": ["name", "address"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "address": {
      "type": "object",
      "required": ["city"],
      "properties": {"city": {"type": "string", "minLength": 1}}
    }
  }
}`

func TestSchemaValidateReportsIssues(t *testing.T) {
	schema := MustCompile([]byte(personSchema))

	err := schema.ValidateJSON([]byte(`{"name": "", "address": {"city": "Lisbon"}}`))
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if !strings.Contains(err.Error(), "/name") {
		t.Fatalf("expected location in message, got %q", err.Error())
	}

	if err := schema.ValidateJSON([]byte(`{"name": "Ana", "address": {"city": "Lisbon"}}`)); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestSchemaPartialDropsRequiredAtEveryDepth(t *testing.T) {
	schema := MustCompile([]byte(personSchema))
	partial, err := schema.Partial()
	if err != nil {
		t.Fatalf("Partial: %v", err)
	}

	if err := partial.ValidateJSON([]byte(`{"address": {}}`)); err != nil {
		t.Fatalf("expected partial document accepted, got %v", err)
	}
	if err := partial.ValidateJSON([]byte(`{"name": 3}`)); err == nil {
		t.Fatal("expected type errors to remain")
	}
	if err := schema.ValidateJSON([]byte(`{"address": {}}`)); err == nil {
		t.Fatal("expected the original schema to stay strict")
	}
}

func TestCompileRejectsInvalidSchema(t *testing.T) {
	if _, err := Compile([]byte(`{}`)); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid for empty schema, got %v", err)
	}
	if _, err := Compile([]byte(`not json`)); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestValidateJSONRejectsMalformedPayload(t *testing.T) {
	schema := MustCompile([]byte(personSchema))
	err := schema.ValidateJSON([]byte(`{`))
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
}
