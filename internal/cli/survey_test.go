package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/walletive/backend/internal/application/usecase/survey"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

type recordingSubmitter struct {
	inputs []survey.SubmitSurveyInput
	err    error
}

func (s *recordingSubmitter) Execute(_ context.Context, input survey.SubmitSurveyInput) (*survey.SubmitSurveyOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.inputs = append(s.inputs, input)
	return &survey.SubmitSurveyOutput{
		DisplayName:      input.Submission.DisplayName,
		TransactionCount: 3,
	}, nil
}

func lines(answers ...string) *strings.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

func TestSurveyRunner_Run(t *testing.T) {
	tests := []struct {
		name          string
		input         []string
		expectedName  string
		expectedDebt  bool
		expectedGoal  bool
		expectedInOut string
	}{
		{
			name:         "no debt no goal",
			input:        []string{"Ana", "3000000", "800000", "400000", "No", "No", ""},
			expectedName: "Ana",
		},
		{
			name:          "invalid amount is re-prompted",
			input:         []string{"Ana", "mucho", "3000000", "800000", "400000", "No", "No", ""},
			expectedName:  "Ana",
			expectedInOut: "Respuesta inválida",
		},
		{
			name:         "debt and goal",
			input:        []string{"Luis", "3000000", "800000", "400000", "Sí", "5000000", "400000", "si", "2000000", "12", "80"},
			expectedName: "Luis",
			expectedDebt: true,
			expectedGoal: true,
		},
		{
			name:          "zero goal amount is re-prompted",
			input:         []string{"Ana", "3000000", "800000", "400000", "No", "Sí", "0", "2000000", "12", ""},
			expectedName:  "Ana",
			expectedGoal:  true,
			expectedInOut: "Respuesta inválida",
		},
		{
			name:          "goal months beyond limit are re-prompted",
			input:         []string{"Ana", "3000000", "800000", "400000", "No", "Sí", "2000000", "200000", "12", ""},
			expectedName:  "Ana",
			expectedGoal:  true,
			expectedInOut: "Respuesta inválida",
		},
		{
			name:         "back corrects previous answer",
			input:        []string{"Ana", "1000", commandBack, "3000000", "800000", "400000", "No", "No", ""},
			expectedName: "Ana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &recordingSubmitter{}
			var out bytes.Buffer
			runner := NewSurveyRunner(lines(tt.input...), &out, q.Onboarding(), submitter)

			output, err := runner.Run(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v\n%s", err, out.String())
			}
			if output.DisplayName != tt.expectedName {
				t.Errorf("expected display name %q, got %q", tt.expectedName, output.DisplayName)
			}
			if len(submitter.inputs) != 1 {
				t.Fatalf("expected 1 submission, got %d", len(submitter.inputs))
			}

			sub := submitter.inputs[0].Submission
			if sub.MonthlyIncome.String() != "3000000" {
				t.Errorf("expected income 3000000, got %s", sub.MonthlyIncome)
			}
			if sub.HasDebt != tt.expectedDebt {
				t.Errorf("expected debt=%v, got %v", tt.expectedDebt, sub.HasDebt)
			}
			if sub.HasSavingsGoal != tt.expectedGoal {
				t.Errorf("expected goal=%v, got %v", tt.expectedGoal, sub.HasSavingsGoal)
			}
			if tt.expectedGoal && (sub.GoalAmount.String() != "2000000" || sub.GoalMonths != 12) {
				t.Errorf("expected goal 2000000 over 12 months, got %s over %d", sub.GoalAmount, sub.GoalMonths)
			}
			if tt.expectedInOut != "" && !strings.Contains(out.String(), tt.expectedInOut) {
				t.Errorf("expected output to contain %q", tt.expectedInOut)
			}
		})
	}
}

func TestSurveyRunner_AbortWritesNothing(t *testing.T) {
	tests := []struct {
		name  string
		input *strings.Reader
	}{
		{name: "quit command", input: lines("Ana", commandQuit)},
		{name: "end of input", input: lines("Ana", "3000000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &recordingSubmitter{}
			runner := NewSurveyRunner(tt.input, &bytes.Buffer{}, q.Onboarding(), submitter)

			_, err := runner.Run(context.Background())
			if !errors.Is(err, ErrSurveyAborted) {
				t.Fatalf("expected ErrSurveyAborted, got %v", err)
			}
			if len(submitter.inputs) != 0 {
				t.Errorf("expected no submission, got %d", len(submitter.inputs))
			}
		})
	}
}

func TestSurveyRunner_SubmitFailure(t *testing.T) {
	boom := errors.New("disk full")
	runner := NewSurveyRunner(
		lines("Ana", "1", "1", "1", "No", "No", ""),
		&bytes.Buffer{},
		q.Onboarding(),
		&recordingSubmitter{err: boom},
	)

	if _, err := runner.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected submit error, got %v", err)
	}
}

func TestSurveyRunner_BackAtFirstQuestion(t *testing.T) {
	var out bytes.Buffer
	runner := NewSurveyRunner(lines(commandBack, commandQuit), &out, q.Onboarding(), &recordingSubmitter{})

	_, _ = runner.Run(context.Background())
	if !strings.Contains(out.String(), "primera pregunta") {
		t.Errorf("expected first-question notice, got:\n%s", out.String())
	}
}
