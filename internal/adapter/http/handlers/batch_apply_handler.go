package handlers

import (
	"errors"
	"net/http"

	request "portal_pricing/internal/adapter/http/dto/request"
	response "portal_pricing/internal/adapter/http/dto/response"
	"portal_pricing/internal/usecase"
	"portal_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// BatchApplyHandler starts, polls and cancels bulk price applications.

type BatchApplyHandler struct {
	usecase usecase.IBatchApplyUseCase
}

func NewBatchApplyHandler(uc usecase.IBatchApplyUseCase) *BatchApplyHandler {
	return &BatchApplyHandler{usecase: uc}
}

// StartBatch accepts the record id list and returns 202 with the batch id;
// the work itself runs on a background worker the client polls.
func (h *BatchApplyHandler) StartBatch(c *gin.Context) {
	var payload request.BatchStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_BATCH_INPUT", "Invalid batch payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	batchID, err := h.usecase.Start(c.Request.Context(), payload.RecordIDs)
	if err != nil {
		appErr := mapBatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusAccepted, response.BatchStartResponse{BatchID: batchID})
}

func (h *BatchApplyHandler) GetProgress(c *gin.Context) {
	progress, err := h.usecase.Progress(c.Param("id"))
	if err != nil {
		appErr := mapBatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *BatchApplyHandler) CancelBatch(c *gin.Context) {
	if err := h.usecase.Cancel(c.Param("id")); err != nil {
		appErr := mapBatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"cancelling": true})
}

func mapBatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainErrorSimple("EMPTY_BATCH", "Batch has no record ids", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Batch not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
