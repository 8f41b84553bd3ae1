// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/walletive/backend/internal/domain/error"
	"github.com/walletive/backend/internal/infra/metrics"
	"github.com/walletive/backend/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses. Anything unrecognized is a 500
// reported with fallback as the message.
func handleError(ctx *gin.Context, err error, fallback string) {
	var surveyErr *domainerror.SurveyError
	if errors.As(err, &surveyErr) {
		status := http.StatusInternalServerError
		switch {
		case surveyErr.IsValidation(), surveyErr.Code == domainerror.ErrCodeMissingAnswer:
			metrics.ValidationFailures.WithLabelValues(string(surveyErr.Code)).Inc()
			status = http.StatusUnprocessableEntity
		case surveyErr.Code == domainerror.ErrCodeInvalidRequest:
			status = http.StatusBadRequest
		case surveyErr.Code == domainerror.ErrCodeSessionNotFound:
			status = http.StatusNotFound
		case surveyErr.Code == domainerror.ErrCodeSurveyCompleted,
			surveyErr.Code == domainerror.ErrCodeSurveyIncomplete:
			status = http.StatusConflict
		case surveyErr.Code == domainerror.ErrCodeSubmissionFailed:
			slog.Error("Survey submission failed", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: surveyErr.Message,
				Code:  string(surveyErr.Code),
			})
			return
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error:   surveyErr.Message,
			Code:    string(surveyErr.Code),
			Details: err.Error(),
		})
		return
	}

	var setupErr *domainerror.SetupError
	if errors.As(err, &setupErr) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: setupErr.Message,
			Code:  string(setupErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusUnprocessableEntity
		switch goalErr.Code {
		case domainerror.ErrCodeGoalNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeInvalidGoalID:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	slog.Error(fallback, "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
	})
}
