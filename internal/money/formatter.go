// Package money renders amounts as localized currency strings.
//
// A Formatter is bound to a BCP-47 locale. The locale's region picks the
// currency and its minor-unit precision. The locale also supplies the
// currency symbol, the digit grouping and the decimal separator, and the
// language plus region decide where the symbol goes.
package money

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const nbsp = "\u00a0"

// placement is where the currency symbol sits relative to the digits.
type placement int

const (
	symbolPrefix       placement = iota // $1,234.50
	symbolPrefixSpaced                  // R$ 1.234,50
	symbolSuffixSpaced                  // 1.234,50 €
)

// Languages that place the symbol after the number in every region.
var suffixLanguages = map[string]struct{}{
	"de": {}, "fr": {}, "it": {}, "ru": {}, "pl": {}, "cs": {},
	"sk": {}, "sv": {}, "fi": {}, "da": {}, "nb": {}, "nn": {},
	"hu": {}, "ro": {},
}

// Spanish regions that write the symbol flush before the digits. Other
// American Spanish regions separate it with a space; Spain puts it last.
var spanishPrefixRegions = map[string]struct{}{
	"MX": {}, "US": {}, "419": {}, "PR": {},
}

func placementFor(tag language.Tag) placement {
	base, _ := tag.Base()
	region, _ := tag.Region()

	switch base.String() {
	case "nl":
		return symbolPrefixSpaced
	case "pt":
		if region.String() == "BR" {
			return symbolPrefixSpaced
		}
		return symbolSuffixSpaced
	case "es":
		if region.String() == "ES" {
			return symbolSuffixSpaced
		}
		if _, ok := spanishPrefixRegions[region.String()]; ok {
			return symbolPrefix
		}
		return symbolPrefixSpaced
	}

	if _, ok := suffixLanguages[base.String()]; ok {
		return symbolSuffixSpaced
	}
	return symbolPrefix
}

// Formatter formats float amounts for a single locale. It is immutable and
// safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	scale   int
	symbol    string
	placement placement
	printer   *message.Printer
}

// NewFormatter builds a Formatter from a locale string such as "en-US".
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return ForTag(tag), nil
}

// MustFormatter is like NewFormatter but panics on an invalid locale.
func MustFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// ForTag builds a Formatter for an already parsed tag. Tags whose region
// cannot be resolved to a currency fall back to US dollars.
func ForTag(tag language.Tag) *Formatter {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	scale, _ := currency.Standard.Rounding(unit)

	printer := message.NewPrinter(tag)

	return &Formatter{
		tag:       tag,
		unit:      unit,
		scale:     scale,
		symbol:    printer.Sprint(currency.Symbol(unit)),
		placement: placementFor(tag),
		printer:   printer,
	}
}

// Locale returns the BCP-47 form of the formatter's locale.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency returns the ISO 4217 code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Scale is the number of fraction digits of the currency's minor unit.
func (f *Formatter) Scale() int {
	return f.scale
}

// Format renders v as a currency string. The value is rounded half-to-even
// to the currency's minor unit. Infinities render as a signed "∞" with the
// currency symbol and NaN renders as "NaN".
func (f *Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return f.affix("∞", false)
	case math.IsInf(v, -1):
		return f.affix("∞", true)
	}

	d := decimal.NewFromFloat(v).RoundBank(int32(f.scale))
	abs, _ := d.Abs().Float64()
	digits := f.printer.Sprint(number.Decimal(abs, number.Scale(f.scale)))

	return f.affix(digits, d.IsNegative())
}

func (f *Formatter) affix(digits string, negative bool) string {
	sign := ""
	if negative {
		sign = "-"
	}
	switch f.placement {
	case symbolSuffixSpaced:
		return sign + digits + nbsp + f.symbol
	case symbolPrefixSpaced:
		return sign + f.symbol + nbsp + digits
	default:
		return sign + f.symbol + digits
	}
}

var defaultFormatter atomic.Pointer[Formatter]

func init() {
	defaultFormatter.Store(ForTag(language.AmericanEnglish))
}

// Default returns the process-wide formatter. It starts out as en-US.
func Default() *Formatter {
	return defaultFormatter.Load()
}

// SetDefault replaces the process-wide formatter. A nil formatter is ignored.
func SetDefault(f *Formatter) {
	if f == nil {
		return
	}
	defaultFormatter.Store(f)
}

// Match picks a formatter from an Accept-Language header value. The first
// tag, by preference, that resolves to a currency wins; otherwise fallback
// is returned.
func Match(acceptLanguage string, fallback *Formatter) *Formatter {
	if acceptLanguage == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return fallback
	}

	for _, tag := range tags {
		if tag == language.Und {
			continue
		}
		if _, conf := currency.FromTag(tag); conf == language.No {
			continue
		}
		return ForTag(tag)
	}

	return fallback
}
