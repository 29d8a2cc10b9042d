package tools

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateArgs checks args against the tool's JSON Schema before any side
// effect runs. It returns "" when the arguments are valid; otherwise a
// self-contained message naming the failing parameter, the expected format
// with a literal example, and the value actually received. Malformed input is
// an expected, recoverable case: this function never panics and never returns
// a Go error to the caller.
func ValidateArgs(schema map[string]interface{}, args map[string]interface{}) string {
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(args),
	)
	if err != nil {
		// A schema that fails to compile is a programming error in the tool,
		// but the contract still forbids faulting the caller.
		return fmt.Sprintf("internal: tool schema is invalid: %v", err)
	}
	if result.Valid() {
		return ""
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		msgs = append(msgs, describeViolation(schema, verr, args))
	}
	return strings.Join(msgs, "; ")
}

// describeViolation renders one schema violation as an actionable message.
func describeViolation(schema map[string]interface{}, verr gojsonschema.ResultError, args map[string]interface{}) string {
	param := verr.Field()
	switch verr.Type() {
	case "required":
		// Missing-property errors report the parent as the field; the real
		// parameter name lives in the details.
		if p, ok := verr.Details()["property"].(string); ok {
			param = p
		}
		return fmt.Sprintf("missing required parameter %q: %s", param, expectedFormat(schema, param))
	case "additional_property_not_allowed":
		if p, ok := verr.Details()["property"].(string); ok {
			param = p
		}
		return fmt.Sprintf("unexpected parameter %q: this tool accepts only the documented parameters", param)
	}

	got := "nothing"
	if v, ok := args[param]; ok {
		got = fmt.Sprintf("%v (%T)", v, v)
	}
	return fmt.Sprintf("invalid parameter %q: %s; received %s", param, expectedFormat(schema, param), got)
}

// expectedFormat builds "expected <type> (example: <literal>)" from the
// parameter's schema entry. Every tool schema in this repository carries an
// examples list so validation failures always show a correct literal value.
func expectedFormat(schema map[string]interface{}, param string) string {
	props, _ := schema["properties"].(map[string]interface{})
	prop, _ := props[param].(map[string]interface{})
	if prop == nil {
		return "see the tool description for the expected format"
	}

	typ, _ := prop["type"].(string)
	desc := fmt.Sprintf("expected %s", typ)
	if examples, ok := prop["examples"].([]interface{}); ok && len(examples) > 0 {
		desc += fmt.Sprintf(" (example: %v)", examples[0])
	}
	if d, ok := prop["description"].(string); ok && d != "" {
		desc += "; " + d
	}
	return desc
}
