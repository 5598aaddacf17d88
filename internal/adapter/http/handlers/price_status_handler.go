package handlers

import (
	"errors"
	"net/http"

	response "portal_pricing/internal/adapter/http/dto/response"
	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase"
	"portal_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// PriceStatusHandler exposes per-record price status, baseline comparisons
// and single-record apply.

type PriceStatusHandler struct {
	usecase usecase.IPriceStatusUseCase
}

func NewPriceStatusHandler(uc usecase.IPriceStatusUseCase) *PriceStatusHandler {
	return &PriceStatusHandler{usecase: uc}
}

// GetStatus classifies the record against the current settings without
// recomputing the price. List views poll this.
func (h *PriceStatusHandler) GetStatus(c *gin.Context) {
	report, err := h.usecase.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusReport(report))
}

// GetComparison recalculates and diffs against the chosen baseline. An
// evaluation failure is not an HTTP failure: the report comes back with the
// error status and the stored price as fallback.
func (h *PriceStatusHandler) GetComparison(c *gin.Context) {
	baseline, ok := parseBaseline(c.DefaultQuery("baseline", string(entities.BaselineApplied)))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_BASELINE", "Baseline must be applied or original", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.Compare(c.Request.Context(), c.Param("id"), baseline)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusReport(report))
}

func (h *PriceStatusHandler) ApplyPrice(c *gin.Context) {
	state, err := h.usecase.Apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecordPriceState(state))
}

func parseBaseline(raw string) (entities.ComparisonBaseline, bool) {
	switch entities.ComparisonBaseline(raw) {
	case entities.BaselineApplied:
		return entities.BaselineApplied, true
	case entities.BaselineOriginal:
		return entities.BaselineOriginal, true
	default:
		return "", false
	}
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOverrideActive):
		return pkg.NewDomainErrorSimple("OVERRIDE_ACTIVE", "Record price is pinned by a manual override", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingFieldValue):
		return pkg.NewDomainErrorSimple("MISSING_FIELD_VALUE", "Record is missing a form value the formula needs", http.StatusUnprocessableEntity)
	case errors.Is(err, formula.ErrNotFinite):
		return pkg.NewDomainErrorSimple("EVALUATION_FAILED", "Formula did not produce a finite price", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
