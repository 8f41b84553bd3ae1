// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletive/backend/internal/application/usecase/transaction"
	"github.com/walletive/backend/internal/domain/entity"
	"github.com/walletive/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(listUseCase *transaction.ListTransactionsUseCase) *TransactionController {
	return &TransactionController{
		listUseCase: listUseCase,
	}
}

// List handles GET /transactions requests. An optional kind query parameter filters rows.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}
	if kind := ctx.Query("kind"); kind != "" {
		k := entity.TransactionKind(kind)
		input.Kind = &k
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, "Failed to retrieve transactions")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}
