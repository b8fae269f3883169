package tip

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 0},
		{in: "abc", want: 0},
		{in: "12.50", want: 12.5},
		{in: "100", want: 100},
		{in: ".5", want: 0.5},
		{in: "5.", want: 5},
		{in: "1e2", want: 100},
		{in: "-20", want: -20},
		{in: "+3.25", want: 3.25},
		{in: " 10", want: 10},
		{in: "10 ", want: 10},
		{in: "10\t", want: 10},
		{in: "\n 12.5 \r", want: 12.5},
		{in: "   ", want: 0},
		{in: "1 0", want: 0},
		{in: "10\u00a0", want: 0},
		{in: "1,000", want: 0},
		{in: "1.2.3", want: 0},
		{in: "NaN", want: 0},
		{in: "Inf", want: 0},
		{in: "0x1p3", want: 0},
		{in: "1_000", want: 0},
		{in: "1e400", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseAmount(tc.in); got != tc.want {
				t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePercentAcceptsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 0},
		{in: "%", want: 0},
		{in: "17.5", want: 17.5},
		{in: "250", want: 250},
		{in: "-10", want: -10},
		{in: " 15 ", want: 15},
	}

	for _, tc := range tests {
		if got := ParsePercent(tc.in); got != tc.want {
			t.Errorf("ParsePercent(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePeopleCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 1},
		{in: "x", want: 1},
		{in: "1.5", want: 1},
		{in: "4", want: 4},
		{in: "+2", want: 2},
		{in: " 2", want: 1},
		{in: "2 ", want: 1},
		{in: "0", want: 0},
		{in: "-3", want: -3},
		{in: "99999999999", want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParsePeopleCount(tc.in); got != tc.want {
				t.Fatalf("ParsePeopleCount(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(RawInput{Amount: "80", TipPercent: "oops", People: "", RoundUp: true})
	want := NormalizedInput{Amount: 80, TipPercent: 0, People: 1, RoundUp: true}

	if got != want {
		t.Fatalf("Normalize() = %+v, want %+v", got, want)
	}
}
