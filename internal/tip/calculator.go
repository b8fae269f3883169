package tip

import (
	"math"

	"tip-time/internal/money"
)

// Calculator formats tip figures with a fixed currency formatter. The zero
// value, or one built with a nil formatter, uses money.Default at call time.
type Calculator struct {
	formatter *money.Formatter
}

// New returns a Calculator bound to f.
func New(f *money.Formatter) *Calculator {
	return &Calculator{formatter: f}
}

func (c *Calculator) format(v float64) string {
	if c == nil || c.formatter == nil {
		return money.Default().Format(v)
	}
	return c.formatter.Format(v)
}

// ComputeTip returns each person's share of the tip as a currency string.
// With roundUp the whole tip is raised to the next currency unit before it
// is divided.
func (c *Calculator) ComputeTip(amount, tipPercent float64, peopleCount int, roundUp bool) string {
	return c.format(TipPerPerson(amount, tipPercent, peopleCount, roundUp))
}

// ComputeTotalPerPerson returns each person's share of bill plus tip as a
// currency string.
func (c *Calculator) ComputeTotalPerPerson(amount, tipPercent float64, roundUp bool, peopleCount int) string {
	return c.format(TotalPerPerson(amount, tipPercent, roundUp, peopleCount))
}

// Calculate produces both display strings for in.
func (c *Calculator) Calculate(in NormalizedInput) Result {
	b := Split(in)
	return Result{
		TipAmount:      c.format(b.TipPerPerson),
		TotalPerPerson: c.format(b.TotalPerPerson),
		Breakdown:      b,
	}
}

// Evaluate normalizes raw and calculates the result in one step.
func (c *Calculator) Evaluate(raw RawInput) Result {
	return c.Calculate(Normalize(raw))
}

// ComputeTip formats the per-person tip with the default formatter.
func ComputeTip(amount, tipPercent float64, peopleCount int, roundUp bool) string {
	return (*Calculator)(nil).ComputeTip(amount, tipPercent, peopleCount, roundUp)
}

// ComputeTotalPerPerson formats the per-person total with the default
// formatter.
func ComputeTotalPerPerson(amount, tipPercent float64, roundUp bool, peopleCount int) string {
	return (*Calculator)(nil).ComputeTotalPerPerson(amount, tipPercent, roundUp, peopleCount)
}

// TipPerPerson is the unformatted per-person tip.
func TipPerPerson(amount, tipPercent float64, peopleCount int, roundUp bool) float64 {
	return tipAmount(amount, tipPercent, roundUp) / float64(peopleCount)
}

// TotalPerPerson is the unformatted per-person share of bill plus tip.
func TotalPerPerson(amount, tipPercent float64, roundUp bool, peopleCount int) float64 {
	return (amount + tipAmount(amount, tipPercent, roundUp)) / float64(peopleCount)
}

// Split computes the unformatted breakdown for in.
func Split(in NormalizedInput) Breakdown {
	tip := tipAmount(in.Amount, in.TipPercent, in.RoundUp)
	people := float64(in.People)
	return Breakdown{
		Tip:            tip,
		TipPerPerson:   tip / people,
		TotalPerPerson: (in.Amount + tip) / people,
	}
}

// tipAmount is the whole tip before splitting. Rounding applies to the
// total, not to each share.
func tipAmount(amount, tipPercent float64, roundUp bool) float64 {
	tip := tipPercent / 100 * amount
	if roundUp {
		tip = math.Ceil(tip)
	}
	return tip
}
