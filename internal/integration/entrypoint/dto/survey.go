// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/walletive/backend/internal/application/usecase/survey"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// AnswerRequest represents the answer to the current question.
// Value is raw input; booleans accept "Sí" or "No".
type AnswerRequest struct {
	Value string `json:"value"`
}

// SubmitSurveyRequest represents a whole questionnaire keyed by question ID.
type SubmitSurveyRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// QuestionResponse represents the question a session waits on.
type QuestionResponse struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Placeholder string   `json:"placeholder,omitempty"`
	Type        string   `json:"type"`
	Choices     []string `json:"choices,omitempty"`
	Position    int      `json:"position"`
	Total       int      `json:"total"`
}

// AnswerResponse represents one recorded answer slot.
type AnswerResponse struct {
	QuestionID string `json:"question_id"`
	Skipped    bool   `json:"skipped"`
	Value      any    `json:"value"`
}

// SubmissionResponse represents a persisted survey.
type SubmissionResponse struct {
	DisplayName      string    `json:"display_name"`
	TransactionCount int       `json:"transaction_count"`
	GoalID           *string   `json:"goal_id,omitempty"`
	CompletedAt      time.Time `json:"completed_at"`
}

// SessionResponse represents a survey session.
type SessionResponse struct {
	ID         string              `json:"id"`
	Completed  bool                `json:"completed"`
	Current    *QuestionResponse   `json:"current_question,omitempty"`
	Answers    []AnswerResponse    `json:"answers"`
	Submission *SubmissionResponse `json:"submission,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ToSessionResponse converts a session output to a SessionResponse DTO.
func ToSessionResponse(output *survey.SessionOutput) SessionResponse {
	response := SessionResponse{
		ID:        output.ID.String(),
		Completed: output.Completed,
		Answers:   make([]AnswerResponse, len(output.Answers)),
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}

	for i, a := range output.Answers {
		response.Answers[i] = toAnswerResponse(a)
	}

	if output.Current != nil {
		response.Current = &QuestionResponse{
			ID:          string(output.Current.ID),
			Prompt:      output.Current.Prompt,
			Placeholder: output.Current.Placeholder,
			Type:        string(output.Current.Type),
			Choices:     output.Current.Choices,
			Position:    output.Current.Position,
			Total:       output.Current.Total,
		}
	}

	if output.Submitted != nil {
		submission := ToSubmissionResponse(output.Submitted)
		response.Submission = &submission
	}

	return response
}

// ToSubmissionResponse converts a submit output to a SubmissionResponse DTO.
func ToSubmissionResponse(output *survey.SubmitSurveyOutput) SubmissionResponse {
	response := SubmissionResponse{
		DisplayName:      output.DisplayName,
		TransactionCount: output.TransactionCount,
		CompletedAt:      output.CompletedAt,
	}
	if output.GoalID != nil {
		id := output.GoalID.String()
		response.GoalID = &id
	}
	return response
}

func toAnswerResponse(a q.Answer) AnswerResponse {
	response := AnswerResponse{
		QuestionID: string(a.QuestionID),
		Skipped:    a.Skipped,
	}
	// Decimals are rendered as strings to keep their exact value.
	if a.Number != nil {
		response.Value = a.Number.String()
	} else {
		response.Value = a.Value()
	}
	return response
}

// ToAnswerMap converts the request map into question IDs.
func (r SubmitSurveyRequest) ToAnswerMap() map[q.QuestionID]string {
	answers := make(map[q.QuestionID]string, len(r.Answers))
	for id, value := range r.Answers {
		answers[q.QuestionID(id)] = value
	}
	return answers
}
