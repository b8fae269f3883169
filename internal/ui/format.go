// Package ui renders calculator output for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tip-time/internal/tip"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatResult renders the two figures the calculator screen shows.
func FormatResult(res tip.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Tip Amount:      "), bold(res.TipAmount)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Total per person:"), bold(res.TotalPerPerson)))

	return sb.String()
}

// FormatInput echoes the normalized input so defaults are visible.
func FormatInput(in tip.NormalizedInput, currency string) string {
	roundUp := "off"
	if in.RoundUp {
		roundUp = "on"
	}
	return faint(fmt.Sprintf("bill %g %s · tip %g%% · people %d · round up %s",
		in.Amount, currency, in.TipPercent, in.People, roundUp)) + "\n"
}

// Prompt renders a field label for interactive entry.
func Prompt(label, current string) string {
	if current == "" {
		return fmt.Sprintf("%s: ", cyan(label))
	}
	return fmt.Sprintf("%s %s: ", cyan(label), faint("["+current+"]"))
}

func Title(msg string) string {
	return bold(msg) + "\n"
}

func Warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}
