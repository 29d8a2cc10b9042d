package tools

import (
	"strings"
	"testing"
)

func testSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"target_categories": map[string]interface{}{
				"type":        "string",
				"description": "comma-separated cleanup categories",
				"examples":    []interface{}{"cache,temp"},
			},
			"dry_run": map[string]interface{}{
				"type":     "boolean",
				"examples": []interface{}{true},
			},
		},
		"required":             []interface{}{"target_categories"},
		"additionalProperties": false,
	}
}

func TestValidateArgs_Valid(t *testing.T) {
	msg := ValidateArgs(testSchema(), map[string]interface{}{
		"target_categories": "cache,temp",
		"dry_run":           true,
	})
	if msg != "" {
		t.Errorf("expected valid args, got %q", msg)
	}
}

func TestValidateArgs_MissingRequired(t *testing.T) {
	msg := ValidateArgs(testSchema(), map[string]interface{}{})
	if msg == "" {
		t.Fatal("expected a validation message for missing required parameter")
	}
	if !strings.Contains(msg, "target_categories") {
		t.Errorf("message should name the missing parameter: %q", msg)
	}
	if !strings.Contains(msg, "example: cache,temp") {
		t.Errorf("message should carry the literal example: %q", msg)
	}
}

func TestValidateArgs_NilArgs(t *testing.T) {
	msg := ValidateArgs(testSchema(), nil)
	if msg == "" {
		t.Fatal("expected a validation message for nil args")
	}
	if !strings.Contains(msg, "target_categories") {
		t.Errorf("message should name the missing parameter: %q", msg)
	}
}

func TestValidateArgs_WrongType(t *testing.T) {
	msg := ValidateArgs(testSchema(), map[string]interface{}{
		"target_categories": 42,
	})
	if msg == "" {
		t.Fatal("expected a validation message for wrong type")
	}
	if !strings.Contains(msg, "target_categories") {
		t.Errorf("message should name the parameter: %q", msg)
	}
	if !strings.Contains(msg, "expected string") {
		t.Errorf("message should state the expected type: %q", msg)
	}
	if !strings.Contains(msg, "42") {
		t.Errorf("message should show the received value: %q", msg)
	}
}

func TestValidateArgs_UnknownParameter(t *testing.T) {
	msg := ValidateArgs(testSchema(), map[string]interface{}{
		"target_categories": "cache",
		"bogus":             "value",
	})
	if msg == "" {
		t.Fatal("expected a validation message for unknown parameter")
	}
	if !strings.Contains(msg, "bogus") {
		t.Errorf("message should name the unexpected parameter: %q", msg)
	}
}

func TestValidateArgs_MultipleViolations(t *testing.T) {
	msg := ValidateArgs(testSchema(), map[string]interface{}{
		"dry_run": "yes",
	})
	if !strings.Contains(msg, "target_categories") || !strings.Contains(msg, "dry_run") {
		t.Errorf("expected both violations reported, got %q", msg)
	}
}

func TestValidateArgs_EmptyObjectSchema(t *testing.T) {
	schema := map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
	if msg := ValidateArgs(schema, map[string]interface{}{}); msg != "" {
		t.Errorf("empty args against empty schema should be valid, got %q", msg)
	}
	if msg := ValidateArgs(schema, nil); msg != "" {
		t.Errorf("nil args against empty schema should be valid, got %q", msg)
	}
}
