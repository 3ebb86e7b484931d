package schema

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Checker validates a single document field. Checkers are built through
// String, Number, Bool, and Custom.
type Checker interface {
	check(path string, value any, present bool) []Issue
}

// Field pairs a document key with its checker.
type Field struct {
	name    string
	checker Checker
}

// F declares a named field.
func F(name string, c Checker) Field {
	return Field{name: name, checker: c}
}

// Schema validates map documents field by field. Fields are checked in
// declaration order, so validating the same document twice produces
// identical issue lists.
type Schema struct {
	fields []Field
}

// New builds a schema from field declarations.
func New(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// Validate checks doc against every declared field and returns the
// collected issues, nil when the document is valid. Keys the schema does
// not declare are ignored.
func (s *Schema) Validate(doc map[string]any) Errors {
	var errs Errors
	for _, f := range s.fields {
		if f.checker == nil {
			continue
		}
		value, present := doc[f.name]
		errs = append(errs, f.checker.check(f.name, value, present)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// StringSchema checks string fields. Every constraint that fails yields
// its own issue, in a fixed order regardless of chaining order.
type StringSchema struct {
	optional bool
	minLen   *int
	maxLen   *int
	email    bool
	uuid     bool
	pattern  *regexp.Regexp
	oneOf    []string
}

// String declares a string field, required unless marked Optional.
func String() *StringSchema {
	return &StringSchema{}
}

// Optional allows the field to be absent or null.
func (s *StringSchema) Optional() *StringSchema {
	s.optional = true
	return s
}

// MinLength requires at least n characters. Lengths count runes, not
// bytes, so multibyte scripts measure as users perceive them.
func (s *StringSchema) MinLength(n int) *StringSchema {
	s.minLen = &n
	return s
}

// MaxLength allows at most n characters.
func (s *StringSchema) MaxLength(n int) *StringSchema {
	s.maxLen = &n
	return s
}

// Email requires a valid email address.
func (s *StringSchema) Email() *StringSchema {
	s.email = true
	return s
}

// UUID requires a valid UUID in any of the formats uuid.Validate accepts.
func (s *StringSchema) UUID() *StringSchema {
	s.uuid = true
	return s
}

// Pattern requires the value to match re.
func (s *StringSchema) Pattern(re *regexp.Regexp) *StringSchema {
	s.pattern = re
	return s
}

// OneOf restricts the value to the given options.
func (s *StringSchema) OneOf(options ...string) *StringSchema {
	s.oneOf = options
	return s
}

func (s *StringSchema) check(path string, value any, present bool) []Issue {
	if !present || value == nil {
		if s.optional {
			return nil
		}
		return []Issue{requiredIssue(path)}
	}

	str, ok := value.(string)
	if !ok {
		return []Issue{invalidTypeIssue(path, "string", jsonTypeName(value))}
	}

	var issues []Issue
	if s.minLen != nil && utf8.RuneCountInString(str) < *s.minLen {
		issues = append(issues, Issue{
			Code:    CodeMinLength,
			Path:    path,
			Message: fmt.Sprintf("must be at least %d characters long", *s.minLen),
			Params:  map[string]any{"min": *s.minLen},
		})
	}
	if s.maxLen != nil && utf8.RuneCountInString(str) > *s.maxLen {
		issues = append(issues, Issue{
			Code:    CodeMaxLength,
			Path:    path,
			Message: fmt.Sprintf("must be at most %d characters long", *s.maxLen),
			Params:  map[string]any{"max": *s.maxLen},
		})
	}
	if s.email {
		// EmailFormat checks format only; is.Email would resolve MX
		// records. ozzo skips blank values, so the empty string is
		// rejected here.
		if str == "" || validation.Validate(str, is.EmailFormat) != nil {
			issues = append(issues, Issue{
				Code:    CodeEmail,
				Path:    path,
				Message: "must be a valid email address",
			})
		}
	}
	if s.uuid {
		if err := uuid.Validate(str); err != nil {
			issues = append(issues, Issue{
				Code:    CodeUUID,
				Path:    path,
				Message: "must be a valid UUID",
			})
		}
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		issues = append(issues, Issue{
			Code:    CodeInvalidString,
			Path:    path,
			Message: "must match the expected format",
		})
	}
	if len(s.oneOf) > 0 && !slices.Contains(s.oneOf, str) {
		options := strings.Join(s.oneOf, ", ")
		issues = append(issues, Issue{
			Code:    CodeInvalidEnum,
			Path:    path,
			Message: fmt.Sprintf("must be one of: %s", options),
			Params:  map[string]any{"options": options},
		})
	}
	return issues
}

// NumberSchema checks numeric fields. Decoded JSON numbers arrive as
// float64; Go-built documents may carry any of the common int and float
// types.
type NumberSchema struct {
	optional bool
	min      *float64
	max      *float64
	integer  bool
}

// Number declares a numeric field, required unless marked Optional.
func Number() *NumberSchema {
	return &NumberSchema{}
}

// Optional allows the field to be absent or null.
func (s *NumberSchema) Optional() *NumberSchema {
	s.optional = true
	return s
}

// Min requires the value to be at least v.
func (s *NumberSchema) Min(v float64) *NumberSchema {
	s.min = &v
	return s
}

// Max allows the value to be at most v.
func (s *NumberSchema) Max(v float64) *NumberSchema {
	s.max = &v
	return s
}

// Int requires an integral value.
func (s *NumberSchema) Int() *NumberSchema {
	s.integer = true
	return s
}

func (s *NumberSchema) check(path string, value any, present bool) []Issue {
	if !present || value == nil {
		if s.optional {
			return nil
		}
		return []Issue{requiredIssue(path)}
	}

	f, ok := toFloat(value)
	if !ok {
		return []Issue{invalidTypeIssue(path, "number", jsonTypeName(value))}
	}

	var issues []Issue
	if s.integer && math.Trunc(f) != f {
		issues = append(issues, invalidTypeIssue(path, "integer", "float"))
	}
	if s.min != nil && f < *s.min {
		issues = append(issues, Issue{
			Code:    CodeMin,
			Path:    path,
			Message: fmt.Sprintf("must be at least %v", *s.min),
			Params:  map[string]any{"min": *s.min},
		})
	}
	if s.max != nil && f > *s.max {
		issues = append(issues, Issue{
			Code:    CodeMax,
			Path:    path,
			Message: fmt.Sprintf("must be at most %v", *s.max),
			Params:  map[string]any{"max": *s.max},
		})
	}
	return issues
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// BoolSchema checks boolean fields.
type BoolSchema struct {
	optional bool
}

// Bool declares a boolean field, required unless marked Optional.
func Bool() *BoolSchema {
	return &BoolSchema{}
}

// Optional allows the field to be absent or null.
func (s *BoolSchema) Optional() *BoolSchema {
	s.optional = true
	return s
}

func (s *BoolSchema) check(path string, value any, present bool) []Issue {
	if !present || value == nil {
		if s.optional {
			return nil
		}
		return []Issue{requiredIssue(path)}
	}
	if _, ok := value.(bool); !ok {
		return []Issue{invalidTypeIssue(path, "boolean", jsonTypeName(value))}
	}
	return nil
}

// CustomSchema runs a caller-supplied check against the raw value.
type CustomSchema struct {
	optional bool
	fn       func(value any) error
}

// Custom declares a field validated by fn. A non-nil error becomes a
// single custom-code issue carrying the error text.
func Custom(fn func(value any) error) *CustomSchema {
	return &CustomSchema{fn: fn}
}

// Optional allows the field to be absent or null.
func (s *CustomSchema) Optional() *CustomSchema {
	s.optional = true
	return s
}

func (s *CustomSchema) check(path string, value any, present bool) []Issue {
	if !present || value == nil {
		if s.optional {
			return nil
		}
		return []Issue{requiredIssue(path)}
	}
	if s.fn == nil {
		return nil
	}
	if err := s.fn(value); err != nil {
		return []Issue{{
			Code:    CodeCustom,
			Path:    path,
			Message: err.Error(),
		}}
	}
	return nil
}
