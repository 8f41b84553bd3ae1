package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletive/backend/internal/application/usecase/dashboard"
)

// SummaryReader returns the dashboard summary.
type SummaryReader interface {
	Execute(ctx context.Context, input dashboard.GetSummaryInput) (*dashboard.GetSummaryOutput, error)
}

func newSummaryCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the financial summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			a, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return printSummary(cmd.Context(), cmd.OutOrStdout(), a.summary)
		},
	}
}

func printSummary(ctx context.Context, out io.Writer, reader SummaryReader) error {
	output, err := reader.Execute(ctx, dashboard.GetSummaryInput{})
	if err != nil {
		return err
	}

	s := output.Summary
	fmt.Fprintf(out, "\nHola, %s\n", output.DisplayName)
	fmt.Fprintf(out, "  Ingresos:        %s\n", formatMoney(s.Income))
	fmt.Fprintf(out, "  Gastos:          %s\n", formatMoney(s.Expenses))
	fmt.Fprintf(out, "  Balance:         %s\n", formatMoney(s.Balance))
	fmt.Fprintf(out, "  Metas activas:   %s\n", formatMoney(s.ActiveGoalsTotal))
	if output.SpendingRatio != nil {
		fmt.Fprintf(out, "  Gasto/ingreso:   %s%%\n", output.SpendingRatio.StringFixed(0))
	}
	for _, alert := range output.Alerts {
		fmt.Fprintf(out, "  ! %s\n", alert)
	}
	fmt.Fprintf(out, "  %s\n", output.Recommendation)
	return nil
}

// formatMoney renders an amount with two decimals and comma thousands separators.
func formatMoney(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
