package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tip-time/internal/config"
	"tip-time/internal/money"
	"tip-time/internal/observability"
	"tip-time/internal/tip"
	"tip-time/internal/ui"
)

var (
	localeFlag  string
	verboseFlag bool
	formatter   *money.Formatter
)

var rootCmd = &cobra.Command{
	Use:   "tiptime",
	Short: "Calculate a tip and split the bill",
	Long: `Calculate the tip and each person's share of a bill.

Values are taken as typed: an unreadable amount or percentage counts as 0
and an unreadable number of people counts as 1.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := observability.InitCLILogger(verboseFlag); err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		locale := localeFlag
		if locale == "" {
			locale = config.Locale()
		}

		f, err := money.NewFormatter(locale)
		if err != nil {
			return err
		}
		formatter = f
		money.SetDefault(f)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		observability.SyncLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetString("amount")
		tipPercent, _ := cmd.Flags().GetString("tip")
		people, _ := cmd.Flags().GetString("people")
		roundUp, _ := cmd.Flags().GetBool("round-up")

		raw := tip.RawInput{
			Amount:     amount,
			TipPercent: tipPercent,
			People:     people,
			RoundUp:    roundUp,
		}

		in := tip.Normalize(raw)
		res := tip.New(formatter).Calculate(in)

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatInput(in, formatter.Currency()))
		fmt.Fprint(out, ui.FormatResult(res))
		if in.People <= 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning("number of people is not positive; shares are not meaningful"))
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "currency locale, e.g. en-US (default $TIP_LOCALE or en-US)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")

	rootCmd.Flags().String("amount", "", "bill amount")
	rootCmd.Flags().String("tip", "", "tip percentage")
	rootCmd.Flags().String("people", "", "number of people")
	rootCmd.Flags().Bool("round-up", false, "round the tip up to a whole currency unit")
}
