package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tip-time/internal/money"
	"tip-time/internal/tip"
	"tip-time/internal/ui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter values one at a time and watch the result update",
	Long: `Prompt for the bill amount, tip percentage, number of people and the
round-up toggle, recalculating after every answer. Press enter to keep the
current value, type "-" to clear it. Type "q" to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), formatter)
	},
}

// clearValue resets a field to empty; a blank answer keeps it.
const clearValue = "-"

type field struct {
	label string
	apply func(raw tip.RawInput, text string) tip.RawInput
	value func(raw tip.RawInput) string
}

var fields = []field{
	{
		label: "Bill Amount",
		apply: func(raw tip.RawInput, text string) tip.RawInput { raw.Amount = text; return raw },
		value: func(raw tip.RawInput) string { return raw.Amount },
	},
	{
		label: "Tip Percentage",
		apply: func(raw tip.RawInput, text string) tip.RawInput { raw.TipPercent = text; return raw },
		value: func(raw tip.RawInput) string { return raw.TipPercent },
	},
	{
		label: "Number of People",
		apply: func(raw tip.RawInput, text string) tip.RawInput { raw.People = text; return raw },
		value: func(raw tip.RawInput) string { return raw.People },
	},
	{
		label: "Round up tip? (y/n)",
		apply: func(raw tip.RawInput, text string) tip.RawInput {
			raw.RoundUp = strings.EqualFold(text, "y") || strings.EqualFold(text, "yes")
			return raw
		},
		value: func(raw tip.RawInput) string {
			if raw.RoundUp {
				return "y"
			}
			return "n"
		},
	},
}

// runInteractive cycles through the fields until input ends or the user
// quits. Each answer produces a new RawInput and a fresh calculation.
func runInteractive(r io.Reader, w io.Writer, f *money.Formatter) error {
	calc := tip.New(f)
	scanner := bufio.NewScanner(r)

	var raw tip.RawInput

	fmt.Fprint(w, ui.Title("Calculate Tip"))

	for {
		for _, fd := range fields {
			fmt.Fprint(w, ui.Prompt(fd.label, fd.value(raw)))

			if !scanner.Scan() {
				fmt.Fprintln(w)
				return scanner.Err()
			}

			text := strings.TrimRight(scanner.Text(), "\r")
			switch text {
			case "q":
				return nil
			case "":
			case clearValue:
				raw = fd.apply(raw, "")
			default:
				raw = fd.apply(raw, text)
			}

			fmt.Fprint(w, ui.FormatResult(calc.Evaluate(raw)))
		}
	}
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
