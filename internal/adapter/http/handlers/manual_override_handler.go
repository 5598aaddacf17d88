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

var (
	errInvalidOverridePayload = pkg.NewDomainErrorSimple("INVALID_OVERRIDE_INPUT", "Invalid override payload", http.StatusBadRequest)
)

// ManualOverrideHandler pins and unpins record prices.

type ManualOverrideHandler struct {
	usecase usecase.IManualOverrideUseCase
}

func NewManualOverrideHandler(uc usecase.IManualOverrideUseCase) *ManualOverrideHandler {
	return &ManualOverrideHandler{usecase: uc}
}

func (h *ManualOverrideHandler) SetOverride(c *gin.Context) {
	var payload request.OverrideSetRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Price == nil {
		c.JSON(errInvalidOverridePayload.HTTPStatus, errInvalidOverridePayload.ToHTTPError())
		return
	}

	state, err := h.usecase.SetOverride(c.Request.Context(), c.Param("id"), *payload.Price, payload.Note, payload.SetBy)
	if err != nil {
		appErr := mapOverrideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecordPriceState(state))
}

// ClearOverride unpins the record. With apply_latest=true the current
// calculated price is applied right after; otherwise the pinned price stays
// as the stored price until someone applies explicitly.
func (h *ManualOverrideHandler) ClearOverride(c *gin.Context) {
	applyLatest := c.Query("apply_latest") == "true"

	state, err := h.usecase.ClearOverride(c.Request.Context(), c.Param("id"), applyLatest)
	if err != nil {
		appErr := mapOverrideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecordPriceState(state))
}

func mapOverrideError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOverridePrice):
		return pkg.NewDomainErrorSimple("INVALID_OVERRIDE_PRICE", "Override price must be a finite, non-negative number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOverrideNotActive):
		return pkg.NewDomainErrorSimple("OVERRIDE_NOT_ACTIVE", "Record has no active manual override", http.StatusConflict)
	default:
		return mapRecordError(err)
	}
}
