package schema

import (
	"fmt"
	"strings"
)

// Code identifies the kind of a validation failure. The string value
// doubles as the translation key suffix under the validation namespace,
// so adding a code means adding a catalog entry.
type Code string

const (
	CodeRequired      Code = "required"
	CodeInvalidType   Code = "invalid_type"
	CodeEmail         Code = "email"
	CodeUUID          Code = "uuid"
	CodeInvalidString Code = "invalid_string"
	CodeMinLength     Code = "minLength"
	CodeMaxLength     Code = "maxLength"
	CodeMin           Code = "min"
	CodeMax           Code = "max"
	CodeInvalidEnum   Code = "invalid_enum_value"
	CodeCustom        Code = "custom"
)

// Issue describes a single validation failure. Message carries the
// interpolated English default, so an issue is presentable even when no
// translator is wired in. Params holds the values a translated message
// template interpolates (limits, expected types, option lists).
type Issue struct {
	Code    Code
	Path    string
	Message string
	Params  map[string]any
}

// Errors is the issue list from one Validate call, ordered by field
// declaration. A nil Errors means the document is valid.
type Errors []Issue

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	parts := make([]string, len(e))
	for i, issue := range e {
		parts[i] = issue.Path + ": " + issue.Message
	}
	return strings.Join(parts, "; ")
}

// Paths returns the fields with at least one issue, in issue order
// without duplicates.
func (e Errors) Paths() []string {
	seen := make(map[string]struct{}, len(e))
	var paths []string
	for _, issue := range e {
		if _, ok := seen[issue.Path]; ok {
			continue
		}
		seen[issue.Path] = struct{}{}
		paths = append(paths, issue.Path)
	}
	return paths
}

func requiredIssue(path string) Issue {
	return Issue{
		Code:    CodeRequired,
		Path:    path,
		Message: "field is required",
		Params:  map[string]any{"field": path},
	}
}

func invalidTypeIssue(path, expected, received string) Issue {
	return Issue{
		Code:    CodeInvalidType,
		Path:    path,
		Message: fmt.Sprintf("expected %s, received %s", expected, received),
		Params:  map[string]any{"expected": expected, "received": received},
	}
}

// jsonTypeName names a decoded document value the way JSON spells its
// types, for invalid_type messages.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
