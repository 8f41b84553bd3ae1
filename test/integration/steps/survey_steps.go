package steps

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/walletive/backend/internal/integration/entrypoint/dto"
)

// registerSurveySteps registers steps that drive survey sessions.
func registerSurveySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I start a survey session$`, iStartASurveySession)
	ctx.Step(`^I answer "([^"]*)"$`, iAnswer)
	ctx.Step(`^I answer the following in order:$`, iAnswerTheFollowingInOrder)
	ctx.Step(`^I go back$`, iGoBack)
	ctx.Step(`^the current question should be "([^"]*)"$`, theCurrentQuestionShouldBe)
	ctx.Step(`^the session should be completed$`, theSessionShouldBeCompleted)
	ctx.Step(`^I submit the survey with answers:$`, iSubmitTheSurveyWithAnswers)
}

func iStartASurveySession(ctx context.Context) (context.Context, error) {
	ctx, err := send(ctx, "POST", "/api/v1/survey/sessions", nil)
	if err != nil {
		return ctx, err
	}
	if err := theResponseStatusShouldBe(ctx, 201); err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	var session dto.SessionResponse
	if err := json.Unmarshal(tc.responseBody, &session); err != nil {
		return ctx, fmt.Errorf("failed to parse session: %w", err)
	}
	tc.sessionID = session.ID
	return SetTestContext(ctx, tc), nil
}

func iAnswer(ctx context.Context, value string) (context.Context, error) {
	body, err := json.Marshal(dto.AnswerRequest{Value: value})
	if err != nil {
		return ctx, err
	}
	return send(ctx, "POST", "/api/v1/survey/sessions/{session_id}/answers", body)
}

func iAnswerTheFollowingInOrder(ctx context.Context, table *godog.Table) (context.Context, error) {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		var err error
		ctx, err = iAnswer(ctx, row.Cells[0].Value)
		if err != nil {
			return ctx, err
		}
		if err := theResponseStatusShouldBe(ctx, 200); err != nil {
			return ctx, fmt.Errorf("answer %d (%q): %w", i, row.Cells[0].Value, err)
		}
	}
	return ctx, nil
}

func iGoBack(ctx context.Context) (context.Context, error) {
	return send(ctx, "POST", "/api/v1/survey/sessions/{session_id}/back", nil)
}

func theCurrentQuestionShouldBe(ctx context.Context, id string) error {
	return theResponseFieldShouldBe(ctx, "current_question.id", id)
}

func theSessionShouldBeCompleted(ctx context.Context) error {
	if err := theResponseFieldShouldBe(ctx, "completed", "true"); err != nil {
		return err
	}
	return theResponseFieldShouldExist(ctx, "submission")
}

func iSubmitTheSurveyWithAnswers(ctx context.Context, table *godog.Table) (context.Context, error) {
	answers := make(map[string]string, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		answers[row.Cells[0].Value] = row.Cells[1].Value
	}

	body, err := json.Marshal(dto.SubmitSurveyRequest{Answers: answers})
	if err != nil {
		return ctx, err
	}

	ctx, err = send(ctx, "POST", "/api/v1/survey/submissions", body)
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	var submission dto.SubmissionResponse
	if tc.response.StatusCode == 201 && json.Unmarshal(tc.responseBody, &submission) == nil && submission.GoalID != nil {
		tc.goalID = *submission.GoalID
	}
	return SetTestContext(ctx, tc), nil
}
