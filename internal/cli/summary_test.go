package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/usecase/dashboard"
	"github.com/walletive/backend/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "$0.00"},
		{amount: "999", expected: "$999.00"},
		{amount: "1000", expected: "$1,000.00"},
		{amount: "1800000", expected: "$1,800,000.00"},
		{amount: "1234.5", expected: "$1,234.50"},
		{amount: "-500", expected: "-$500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := formatMoney(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Errorf("formatMoney(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

type stubSummaryReader struct {
	output *dashboard.GetSummaryOutput
}

func (s stubSummaryReader) Execute(context.Context, dashboard.GetSummaryInput) (*dashboard.GetSummaryOutput, error) {
	return s.output, nil
}

func TestPrintSummary(t *testing.T) {
	ratio := decimal.NewFromInt(40)
	reader := stubSummaryReader{output: &dashboard.GetSummaryOutput{
		DisplayName: "Ana",
		Summary: entity.NewFinancialSummary(
			decimal.NewFromInt(3000000),
			decimal.NewFromInt(1200000),
			decimal.Zero,
		),
		SpendingRatio:  &ratio,
		Alerts:         []string{dashboard.AlertAllGood},
		Recommendation: dashboard.RecommendationPositive,
	}}

	var out bytes.Buffer
	if err := printSummary(context.Background(), &out, reader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Hola, Ana", "$3,000,000.00", "$1,200,000.00", "$1,800,000.00", "40%", dashboard.AlertAllGood} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}
