// Package schema validates map documents against declared field schemas
// and localizes the resulting failures through the i18n layer.
//
// Validation and presentation are split on purpose: Validate produces a
// stable, locale-independent issue list, and an ErrorMapper turns that
// list into user-facing messages for whatever locale the caller is
// serving. The same Errors value can be localized any number of times
// under different locales.
//
// # Features
//
//   - Declarative field schemas for string, number, and boolean values
//   - Required-by-default fields with explicit Optional
//   - Issue taxonomy with stable codes doubling as translation key suffixes
//   - Deterministic, declaration-ordered issue lists
//   - English default messages carried on every issue
//   - Per-call-site error mappers with no shared mutable state
//   - Translator failures degrade to default messages, never panics
//
// # Basic Usage
//
//	import "github.com/glossadev/glossa/core/schema"
//
//	drugForm := schema.New(
//		schema.F("name", schema.String().MinLength(2).MaxLength(120)),
//		schema.F("email", schema.String().Email()),
//		schema.F("batch_id", schema.String().UUID()),
//		schema.F("quantity", schema.Number().Int().Min(0)),
//		schema.F("controlled", schema.Bool().Optional()),
//	)
//
//	errs := drugForm.Validate(map[string]any{
//		"name":     "A",
//		"quantity": -4.0,
//	})
//	for _, issue := range errs {
//		fmt.Printf("%s: %s (%s)\n", issue.Path, issue.Message, issue.Code)
//	}
//	// name: must be at least 2 characters long (minLength)
//	// email: field is required (required)
//	// batch_id: field is required (required)
//	// quantity: must be at least 0 (min)
//
// # Issue Codes
//
// Each failure carries a Code whose string value is the translation key
// suffix under the validation namespace:
//
//	required            validation:errors.required
//	invalid_type        validation:errors.invalid_type
//	email               validation:errors.email
//	uuid                validation:errors.uuid
//	invalid_string      validation:errors.invalid_string
//	minLength           validation:errors.minLength
//	maxLength           validation:errors.maxLength
//	min                 validation:errors.min
//	max                 validation:errors.max
//	invalid_enum_value  validation:errors.invalid_enum_value
//	custom              validation:errors.custom
//
// Params carries the template values: limits for minLength and min,
// expected and received type names for invalid_type, the joined option
// list for invalid_enum_value. The mapper adds the field path as "field".
//
// # Localizing Failures
//
// Build an ErrorMapper over a translator's TranslateError method. The
// mapper resolves "validation:errors.<code>" with the issue params and
// keeps the issue's English message as the terminal fallback:
//
//	translator := i18n.NewTranslator(i18nInstance, "ar", "validation")
//	mapper := schema.NewErrorMapper(translator.TranslateError)
//
//	if errs := drugForm.Validate(doc); errs != nil {
//		fields := mapper.Localize(errs) // map of field path to message
//		render.UnprocessableEntity(w, fields)
//	}
//
// A request under another locale builds its own mapper; mappers hold no
// locale state of their own, so switching locales is a matter of
// switching translators:
//
//	arabic := schema.NewErrorMapper(translator.WithLanguage("ar").TranslateError)
//	polish := schema.NewErrorMapper(translator.WithLanguage("pl").TranslateError)
//
// # Custom Checks
//
// Business rules that the builders do not cover plug in as custom
// checkers. The error text becomes the issue's default message:
//
//	schema.F("dosage", schema.Custom(func(value any) error {
//		s, ok := value.(string)
//		if !ok || !strings.HasSuffix(s, "mg") {
//			return errors.New("dosage must be given in milligrams")
//		}
//		return nil
//	}))
//
// # Catalog Entries
//
// The validation namespace supplies one template per code. Templates
// interpolate the issue params plus "field":
//
//	// validation.json
//	{
//		"errors": {
//			"required": "{{field}} is required",
//			"minLength": "{{field}} must be at least {{min}} characters",
//			"invalid_enum_value": "{{field}} must be one of: {{options}}"
//		}
//	}
//
// Missing entries are safe: the mapper falls back to the issue's default
// message and the i18n engine records the miss for the registry.
package schema
