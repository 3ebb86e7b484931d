package i18n

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/glossadev/glossa/core/logger"
)

// DefaultCurrency is the ISO 4217 code used by FormatCurrency when no code
// is given.
const DefaultCurrency = "EGP"

// DateStyle selects one of the predefined date layouts.
type DateStyle int

const (
	// DateShort renders a purely numeric date: "01/02/2006".
	DateShort DateStyle = iota
	// DateMedium renders an abbreviated month name: "Jan 2, 2006".
	DateMedium
	// DateLong renders the full month name: "January 2, 2006". Default.
	DateLong
	// DateFull adds the weekday: "Monday, January 2, 2006".
	DateFull
)

// DateOption configures FormatDate.
type DateOption func(*dateConfig)

type dateConfig struct {
	style  DateStyle
	layout string
}

// WithDateStyle selects one of the predefined date styles.
func WithDateStyle(style DateStyle) DateOption {
	return func(c *dateConfig) {
		c.style = style
	}
}

// WithDateLayout sets an explicit Go time layout, overriding the style.
// Month and weekday names in the layout are still localized.
func WithDateLayout(layout string) DateOption {
	return func(c *dateConfig) {
		c.layout = layout
	}
}

// NumberOption configures FormatNumber and FormatPercent.
type NumberOption func(*numberConfig)

type numberConfig struct {
	minFrac int
	maxFrac int
}

// WithMinFractionDigits sets the minimum number of fraction digits.
func WithMinFractionDigits(n int) NumberOption {
	return func(c *numberConfig) {
		if n >= 0 {
			c.minFrac = n
		}
	}
}

// WithMaxFractionDigits sets the maximum number of fraction digits.
func WithMaxFractionDigits(n int) NumberOption {
	return func(c *numberConfig) {
		if n >= 0 {
			c.maxFrac = n
		}
	}
}

// FormatDate renders value as a locale-correct calendar date. It accepts a
// time.Time, a numeric epoch-millisecond timestamp, or an ISO-8601 string.
// The default style is a long-form date with the month name localized for
// the locale. Input that cannot be interpreted as a date degrades to its
// plain string rendering; the function never panics.
func FormatDate(value any, locale string, opts ...DateOption) string {
	t, ok := coerceTime(value)
	if !ok {
		return plainDate(value)
	}

	cfg := dateConfig{style: DateLong}
	for _, opt := range opts {
		opt(&cfg)
	}
	layout := cfg.layout
	if layout == "" {
		layout = dateLayout(cfg.style)
	}

	return formatOrFallback(t.Format(layout), func() string {
		return monday.Format(t, layout, mondayLocale(locale))
	})
}

// FormatTime renders the time-of-day part of value for the locale.
func FormatTime(value any, locale string) string {
	t, ok := coerceTime(value)
	if !ok {
		return plainDate(value)
	}
	return formatOrFallback(t.Format("3:04 PM"), func() string {
		return monday.Format(t, "3:04 PM", mondayLocale(locale))
	})
}

// FormatDateTime renders a long-form date together with the time of day.
func FormatDateTime(value any, locale string) string {
	t, ok := coerceTime(value)
	if !ok {
		return plainDate(value)
	}
	layout := dateLayout(DateLong) + " 3:04 PM"
	return formatOrFallback(t.Format(layout), func() string {
		return monday.Format(t, layout, mondayLocale(locale))
	})
}

// FormatNumber renders a number with locale-correct digits, grouping, and
// decimal separators. Non-finite values degrade to their plain Go rendering;
// the function never panics. By default up to three fraction digits are
// shown, matching common platform formatters.
func FormatNumber(value float64, locale string, opts ...NumberOption) string {
	plain := strconv.FormatFloat(value, 'f', -1, 64)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return plain
	}

	cfg := numberConfig{minFrac: 0, maxFrac: 3}
	for _, opt := range opts {
		opt(&cfg)
	}

	return formatOrFallback(plain, func() string {
		return printerFor(locale).Sprint(number.Decimal(value,
			number.MinFractionDigits(cfg.minFrac),
			number.MaxFractionDigits(cfg.maxFrac),
		))
	})
}

// FormatPercent renders a fraction as a locale-correct percentage:
// 0.5 becomes "50%" in English.
func FormatPercent(value float64, locale string, opts ...NumberOption) string {
	plain := strconv.FormatFloat(value*100, 'f', -1, 64) + "%"
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return plain
	}

	cfg := numberConfig{minFrac: 0, maxFrac: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return formatOrFallback(plain, func() string {
		return printerFor(locale).Sprint(number.Percent(value,
			number.MinFractionDigits(cfg.minFrac),
			number.MaxFractionDigits(cfg.maxFrac),
		))
	})
}

// FormatCurrency renders a monetary amount decorated with the currency
// symbol or code for the locale. An empty code selects DefaultCurrency.
// Unknown codes and non-finite values degrade to "<CODE> <value>"; the
// output always carries currency decoration, never a bare number.
func FormatCurrency(value float64, locale, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	fallback := code + " " + strconv.FormatFloat(value, 'f', 2, 64)

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return code + " " + strconv.FormatFloat(value, 'f', -1, 64)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fallback
	}

	return formatOrFallback(fallback, func() string {
		return printerFor(locale).Sprint(currency.Symbol(unit.Amount(value)))
	})
}

// formatOrFallback runs a formatting function under a recover guard.
// Formatting must never propagate a panic to callers; a failed or empty
// result degrades to the supplied fallback rendering.
func formatOrFallback(fallback string, format func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("locale formatting failed",
				logger.Component("i18n"),
				slog.Any("reason", r),
			)
			out = fallback
		}
		if out == "" {
			out = fallback
		}
	}()
	return format()
}

// plainDate is the terminal rendering for date input that cannot be
// interpreted: the value's plain Go form, recorded at debug level.
func plainDate(value any) string {
	slog.Debug("date value not interpretable",
		logger.Component("i18n"),
		slog.Any("value", value),
	)
	return fmt.Sprintf("%v", value)
}

// printers caches one message printer per locale.
var printers sync.Map

func printerFor(locale string) *message.Printer {
	if p, ok := printers.Load(locale); ok {
		return p.(*message.Printer)
	}
	p := message.NewPrinter(language.Make(locale))
	actual, _ := printers.LoadOrStore(locale, p)
	return actual.(*message.Printer)
}

func dateLayout(style DateStyle) string {
	switch style {
	case DateShort:
		return "01/02/2006"
	case DateMedium:
		return "Jan 2, 2006"
	case DateFull:
		return "Monday, January 2, 2006"
	default:
		return "January 2, 2006"
	}
}

// coerceTime interprets the accepted date inputs. Numeric values are epoch
// milliseconds. Parsed values use UTC so output does not depend on the host
// time zone.
func coerceTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case int:
		return epochMilli(int64(v))
	case int32:
		return epochMilli(int64(v))
	case int64:
		return epochMilli(v)
	case uint:
		return epochMilli(int64(v))
	case uint32:
		return epochMilli(int64(v))
	case uint64:
		return epochMilli(int64(v))
	case float32:
		return coerceTime(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return time.Time{}, false
		}
		return epochMilli(int64(v))
	case string:
		return parseTimeString(v)
	default:
		return time.Time{}, false
	}
}

func epochMilli(ms int64) (time.Time, bool) {
	return time.UnixMilli(ms).UTC(), true
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// mondayLocales maps language tags to monday locales for month and weekday
// name translation. Languages monday does not cover keep English names,
// which is the documented degraded mode for unsupported locales.
var mondayLocales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en-gb": monday.LocaleEnGB,
	"cs":    monday.LocaleCsCZ,
	"da":    monday.LocaleDaDK,
	"de":    monday.LocaleDeDE,
	"el":    monday.LocaleElGR,
	"es":    monday.LocaleEsES,
	"fi":    monday.LocaleFiFI,
	"fr":    monday.LocaleFrFR,
	"hu":    monday.LocaleHuHU,
	"id":    monday.LocaleIdID,
	"it":    monday.LocaleItIT,
	"ja":    monday.LocaleJaJP,
	"ko":    monday.LocaleKoKR,
	"nb":    monday.LocaleNbNO,
	"nl":    monday.LocaleNlNL,
	"pl":    monday.LocalePlPL,
	"pt":    monday.LocalePtPT,
	"pt-br": monday.LocalePtBR,
	"ro":    monday.LocaleRoRO,
	"ru":    monday.LocaleRuRU,
	"sv":    monday.LocaleSvSE,
	"tr":    monday.LocaleTrTR,
	"uk":    monday.LocaleUkUA,
	"zh":    monday.LocaleZhCN,
}

func mondayLocale(locale string) monday.Locale {
	norm := strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if loc, ok := mondayLocales[norm]; ok {
		return loc
	}
	if loc, ok := mondayLocales[baseLanguage(norm)]; ok {
		return loc
	}
	return monday.LocaleEnUS
}
