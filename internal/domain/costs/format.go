package costs

import (
	"strings"

	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as "<ISO code> <grouped integer><decimal sep><2 digits>",
// e.g. "USD 1,234.50" for English. Output depends only on the locale, amount and code.
type Formatter struct {
	printer *message.Printer
	decimal string
}

func NewFormatter(tag language.Tag) Formatter {
	p := message.NewPrinter(tag)
	sep := "."
	// The character between 1 and 5 is the locale's decimal separator.
	if s := []rune(p.Sprintf("%.1f", 1.5)); len(s) == 3 {
		sep = string(s[1])
	}
	return Formatter{printer: p, decimal: sep}
}

// ParseLocale falls back to English for unknown tags.
func ParseLocale(raw string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return language.English
	}
	return tag
}

// Format is pure formatting; amounts are rounded half-up to 2 places first.
func (f Formatter) Format(amount decimal.Decimal, currencyCode string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return "", entities.NewValidationError("currency_code", "is not an ISO 4217 code")
	}

	r := amount.Round(entities.MoneyScale)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole := r.Truncate(0)
	cents := r.Sub(whole).Shift(entities.MoneyScale).IntPart()

	var b strings.Builder
	b.WriteString(unit.String())
	b.WriteString(" ")
	b.WriteString(sign)
	b.WriteString(f.printer.Sprintf("%d", whole.IntPart()))
	b.WriteString(f.decimal)
	if cents < 10 {
		b.WriteString("0")
	}
	b.WriteString(f.printer.Sprintf("%d", cents))
	return b.String(), nil
}

// MustFormat is for callers that already validated the currency code.
func (f Formatter) MustFormat(amount decimal.Decimal, currencyCode string) string {
	s, err := f.Format(amount, currencyCode)
	if err != nil {
		panic(err)
	}
	return s
}
