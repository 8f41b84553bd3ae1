package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// SubmitSurveyInput represents the input for persisting a completed survey.
type SubmitSurveyInput struct {
	Submission entity.SurveySubmission
}

// SubmitSurveyOutput represents the output of a persisted survey.
type SubmitSurveyOutput struct {
	DisplayName      string
	TransactionCount int
	GoalID           *uuid.UUID
	CompletedAt      time.Time
}

// SubmitSurveyUseCase writes the rows derived from a survey in one transaction.
type SubmitSurveyUseCase struct {
	surveyRepo adapter.SurveyRepository
	setupRepo  adapter.SetupRepository
	now        func() time.Time
}

// NewSubmitSurveyUseCase creates a new SubmitSurveyUseCase instance.
func NewSubmitSurveyUseCase(surveyRepo adapter.SurveyRepository, setupRepo adapter.SetupRepository) *SubmitSurveyUseCase {
	return &SubmitSurveyUseCase{
		surveyRepo: surveyRepo,
		setupRepo:  setupRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute validates the submission, builds its records and persists them.
func (uc *SubmitSurveyUseCase) Execute(ctx context.Context, input SubmitSurveyInput) (*SubmitSurveyOutput, error) {
	if err := validateSubmission(input.Submission); err != nil {
		return nil, err
	}

	setup, err := uc.setupRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get setup: %w", err)
	}
	if setup.Completed {
		return nil, setupCompletedError()
	}

	records := BuildRecords(input.Submission, uc.now())
	for _, txn := range records.Transactions {
		if err := txn.Validate(); err != nil {
			return nil, err
		}
	}

	if err := uc.surveyRepo.SaveSubmission(ctx, records); err != nil {
		if errors.Is(err, domainerror.ErrSetupAlreadyCompleted) {
			return nil, setupCompletedError()
		}
		slog.Error("Failed to persist survey submission", "error", err)
		return nil, domainerror.NewSurveyError(
			domainerror.ErrCodeSubmissionFailed,
			"failed to save survey",
			err,
		)
	}

	output := &SubmitSurveyOutput{
		DisplayName:      records.Setup.DisplayName,
		TransactionCount: len(records.Transactions),
		CompletedAt:      *records.Setup.CompletedAt,
	}
	if records.Goal != nil {
		goalID := records.Goal.ID
		output.GoalID = &goalID
	}

	slog.Info("Survey submitted",
		"transactions", output.TransactionCount,
		"hasGoal", output.GoalID != nil,
	)

	return output, nil
}

type submittedAmount struct {
	name  string
	value decimal.Decimal
	asked bool
}

func validateSubmission(sub entity.SurveySubmission) error {
	if sub.DisplayName == "" {
		return domainerror.NewSurveyError(
			domainerror.ErrCodeBlankText,
			"display name is required",
			domainerror.ErrBlankText,
		)
	}

	amounts := []submittedAmount{
		{"monthly income", sub.MonthlyIncome, true},
		{"fixed expenses", sub.FixedExpenses, true},
		{"variable expenses", sub.VariableExpenses, true},
		{"total debt", sub.TotalDebt, sub.HasDebt},
		{"monthly debt payment", sub.MonthlyDebtPayment, sub.HasDebt},
		{"goal amount", sub.GoalAmount, sub.HasSavingsGoal},
	}
	if sub.AlertThreshold != nil {
		amounts = append(amounts, submittedAmount{"alert threshold", *sub.AlertThreshold, true})
	}
	for _, a := range amounts {
		if a.asked && !q.ValidAmount(a.value) {
			return domainerror.NewSurveyError(
				domainerror.ErrCodeInvalidNumber,
				a.name+" must be a non-negative amount below 10,000,000,000,000 with at most two decimals",
				domainerror.ErrInvalidNumber,
			)
		}
	}

	if sub.HasSavingsGoal {
		if !sub.GoalAmount.IsPositive() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"goal amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		if sub.GoalMonths <= 0 || sub.GoalMonths > q.MaxGoalMonths {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalMonths,
				fmt.Sprintf("goal months must be between 1 and %d", q.MaxGoalMonths),
				domainerror.ErrInvalidGoalMonths,
			)
		}
	}

	return nil
}

func setupCompletedError() error {
	return domainerror.NewSetupError(
		domainerror.ErrCodeSetupAlreadyCompleted,
		"setup already completed",
		domainerror.ErrSetupAlreadyCompleted,
	)
}
