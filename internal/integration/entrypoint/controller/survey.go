// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/usecase/survey"
	domainerror "github.com/walletive/backend/internal/domain/error"
	"github.com/walletive/backend/internal/infra/metrics"
	"github.com/walletive/backend/internal/integration/entrypoint/dto"
)

// SurveyController handles survey session and submission endpoints.
type SurveyController struct {
	startUseCase   *survey.StartSessionUseCase
	getUseCase     *survey.GetSessionUseCase
	answerUseCase  *survey.AnswerQuestionUseCase
	backUseCase    *survey.GoBackUseCase
	discardUseCase *survey.DiscardSessionUseCase
	submitUseCase  *survey.SubmitAnswersUseCase
}

// NewSurveyController creates a new survey controller instance.
func NewSurveyController(
	startUseCase *survey.StartSessionUseCase,
	getUseCase *survey.GetSessionUseCase,
	answerUseCase *survey.AnswerQuestionUseCase,
	backUseCase *survey.GoBackUseCase,
	discardUseCase *survey.DiscardSessionUseCase,
	submitUseCase *survey.SubmitAnswersUseCase,
) *SurveyController {
	return &SurveyController{
		startUseCase:   startUseCase,
		getUseCase:     getUseCase,
		answerUseCase:  answerUseCase,
		backUseCase:    backUseCase,
		discardUseCase: discardUseCase,
		submitUseCase:  submitUseCase,
	}
}

// StartSession handles POST /survey/sessions requests.
func (c *SurveyController) StartSession(ctx *gin.Context) {
	output, err := c.startUseCase.Execute(ctx.Request.Context(), survey.StartSessionInput{})
	if err != nil {
		handleError(ctx, err, "Failed to start survey")
		return
	}

	metrics.SessionEvents.WithLabelValues(metrics.SessionStarted).Inc()
	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(output))
}

// GetSession handles GET /survey/sessions/:id requests.
func (c *SurveyController) GetSession(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), survey.GetSessionInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err, "Failed to get survey session")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output))
}

// Answer handles POST /survey/sessions/:id/answers requests.
func (c *SurveyController) Answer(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	output, err := c.answerUseCase.Execute(ctx.Request.Context(), survey.AnswerQuestionInput{
		SessionID: sessionID,
		Value:     req.Value,
	})
	if err != nil {
		if isPersistenceFailure(err) {
			metrics.SurveySubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		}
		handleError(ctx, err, "Failed to record answer")
		return
	}

	metrics.SessionEvents.WithLabelValues(metrics.SessionAnswered).Inc()
	if output.Submitted != nil {
		metrics.SessionEvents.WithLabelValues(metrics.SessionCompleted).Inc()
		metrics.SurveySubmissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}
	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output))
}

// Back handles POST /survey/sessions/:id/back requests.
func (c *SurveyController) Back(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	output, err := c.backUseCase.Execute(ctx.Request.Context(), survey.GoBackInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err, "Failed to go back")
		return
	}

	metrics.SessionEvents.WithLabelValues(metrics.SessionBack).Inc()
	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output))
}

// DiscardSession handles DELETE /survey/sessions/:id requests.
func (c *SurveyController) DiscardSession(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	if _, err := c.discardUseCase.Execute(ctx.Request.Context(), survey.DiscardSessionInput{SessionID: sessionID}); err != nil {
		handleError(ctx, err, "Failed to discard survey session")
		return
	}

	metrics.SessionEvents.WithLabelValues(metrics.SessionDiscarded).Inc()
	ctx.Status(http.StatusNoContent)
}

// Submit handles POST /survey/submissions requests.
func (c *SurveyController) Submit(ctx *gin.Context) {
	var req dto.SubmitSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), survey.SubmitAnswersInput{
		Answers: req.ToAnswerMap(),
	})
	if err != nil {
		outcome := metrics.OutcomeRejected
		if isPersistenceFailure(err) {
			outcome = metrics.OutcomeFailed
		}
		metrics.SurveySubmissions.WithLabelValues(outcome).Inc()
		handleError(ctx, err, "Failed to submit survey")
		return
	}

	metrics.SurveySubmissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	ctx.JSON(http.StatusCreated, dto.ToSubmissionResponse(output))
}

func parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return uuid.Nil, false
	}
	return sessionID, true
}

func isPersistenceFailure(err error) bool {
	var surveyErr *domainerror.SurveyError
	return errors.As(err, &surveyErr) && surveyErr.Code == domainerror.ErrCodeSubmissionFailed
}
