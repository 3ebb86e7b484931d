package i18n

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

var _ templ.Component = MsgKey("")

// Translatable is a value that can translate itself using a context.
// Types such as MsgKey implement Translatable.
type Translatable interface {
	Tr(ctx context.Context) string
}

// MsgKey is a translation key carried as a typed value, useful for
// declaring user-facing strings in templates and constants. It resolves
// through the Translator stored in the rendering context and falls back to
// the key literal when no translator is present.
//
// MsgKey implements templ.Component, so a key can be placed directly into
// a templ template and renders as its translation.
type MsgKey string

// String returns the raw key.
func (k MsgKey) String() string {
	return string(k)
}

// Tr resolves the key against the translator in ctx. Without a translator
// the key itself is returned, matching the engine's terminal fallback.
func (k MsgKey) Tr(ctx context.Context) string {
	if t, ok := TranslatorFrom(ctx); ok {
		return t.T(string(k))
	}
	return string(k)
}

// TrWith resolves the key with interpolation placeholders.
func (k MsgKey) TrWith(ctx context.Context, placeholders M) string {
	if t, ok := TranslatorFrom(ctx); ok {
		return t.T(string(k), placeholders)
	}
	return ReplacePlaceholders(string(k), placeholders)
}

// Render writes the resolved translation, satisfying templ.Component.
func (k MsgKey) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, k.Tr(ctx))
	return err
}
