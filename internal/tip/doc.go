// Package tip computes a tip and an even per-person split of a bill.
//
// Raw text from a presentation surface goes through Normalize, which never
// fails: unparseable amounts and percentages become 0 and an unparseable
// people count becomes 1. The normalized values are then handed to
// ComputeTip and ComputeTotalPerPerson, which return currency strings.
//
// A people count of zero or below is passed straight through to the
// division. The resulting infinities or NaN are rendered by the formatter
// rather than rejected.
package tip
