package tip

// RawInput is the text a user has typed plus the round-up toggle. A new
// value is built on every change; nothing mutates it after construction.
type RawInput struct {
	Amount     string
	TipPercent string
	People     string
	RoundUp    bool
}

// NormalizedInput holds the numeric values derived from a RawInput.
type NormalizedInput struct {
	Amount     float64
	TipPercent float64
	People     int
	RoundUp    bool
}

// Breakdown carries the unformatted figures behind a Result.
type Breakdown struct {
	Tip            float64 // whole tip, after optional round-up
	TipPerPerson   float64
	TotalPerPerson float64
}

// Result is what a presentation surface displays.
type Result struct {
	TipAmount      string
	TotalPerPerson string
	Breakdown      Breakdown
}
