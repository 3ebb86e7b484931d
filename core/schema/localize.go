package schema

// TranslateFunc resolves a translation key with interpolation values,
// returning defaultMessage when the key cannot be resolved. The i18n
// package's Translator.TranslateError and ActiveLocale.TranslateError
// match this signature, which is the only coupling between the two
// packages.
type TranslateFunc func(key, defaultMessage string, values map[string]any) string

// ErrorMapper turns validation issues into user-facing messages through a
// translation function. Each mapper is built over one translator, so
// concurrent validations under different locales get their own mappers
// instead of sharing mutable state.
type ErrorMapper struct {
	translate TranslateFunc
	namespace string
	keyPrefix string
}

// MapperOption configures an ErrorMapper.
type MapperOption func(*ErrorMapper)

// WithNamespace overrides the validation namespace the mapper resolves
// keys in. An empty namespace leaves keys unprefixed, deferring to the
// translator's own default.
func WithNamespace(namespace string) MapperOption {
	return func(m *ErrorMapper) {
		m.namespace = namespace
	}
}

// WithKeyPrefix overrides the "errors." segment between the namespace and
// the issue code.
func WithKeyPrefix(prefix string) MapperOption {
	return func(m *ErrorMapper) {
		m.keyPrefix = prefix
	}
}

// NewErrorMapper builds a mapper over the given translation function.
// A nil translate function yields a mapper that returns the issues' own
// default messages.
func NewErrorMapper(translate TranslateFunc, opts ...MapperOption) *ErrorMapper {
	m := &ErrorMapper{
		translate: translate,
		namespace: "validation",
		keyPrefix: "errors.",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Key returns the translation key the mapper resolves for a code, e.g.
// "validation:errors.required".
func (m *ErrorMapper) Key(code Code) string {
	if m.namespace == "" {
		return m.keyPrefix + string(code)
	}
	return m.namespace + ":" + m.keyPrefix + string(code)
}

// Message renders the localized message for an issue. The issue's own
// message is the terminal fallback: a missing catalog entry, an empty
// translation, or a panicking translator all degrade to it, so rendering
// a validation response never fails.
func (m *ErrorMapper) Message(issue Issue) (message string) {
	fallback := issue.Message
	if fallback == "" {
		fallback = string(issue.Code)
	}
	defer func() {
		if r := recover(); r != nil {
			message = fallback
		}
	}()

	if m.translate == nil {
		return fallback
	}

	values := make(map[string]any, len(issue.Params)+1)
	for k, v := range issue.Params {
		values[k] = v
	}
	if _, ok := values["field"]; !ok && issue.Path != "" {
		values["field"] = issue.Path
	}

	if out := m.translate(m.Key(issue.Code), fallback, values); out != "" {
		return out
	}
	return fallback
}

// Localize renders one message per failing field, keyed by path. The
// first issue for a field wins, matching the declaration-ordered issue
// list. Returns nil for an empty issue list.
func (m *ErrorMapper) Localize(errs Errors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, issue := range errs {
		if _, ok := out[issue.Path]; ok {
			continue
		}
		out[issue.Path] = m.Message(issue)
	}
	return out
}

// Localize renders the issues through the given mapper. Convenience for
// handler code holding an Errors value.
func (e Errors) Localize(m *ErrorMapper) map[string]string {
	if m == nil {
		m = NewErrorMapper(nil)
	}
	return m.Localize(e)
}
