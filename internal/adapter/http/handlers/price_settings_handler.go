package handlers

import (
	"errors"
	"net/http"

	request "portal_pricing/internal/adapter/http/dto/request"
	response "portal_pricing/internal/adapter/http/dto/response"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase"
	"portal_pricing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid price settings payload", http.StatusBadRequest)
)

// PriceSettingsHandler exposes the parameter registry and the formula
// authoring flow: save, validate, integrity report and orphan cleanup.

type PriceSettingsHandler struct {
	usecase usecase.IPriceSettingsUseCase
}

func NewPriceSettingsHandler(uc usecase.IPriceSettingsUseCase) *PriceSettingsHandler {
	return &PriceSettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary  Current price settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.PriceSettingsResponse
// @Router   /pricing/settings [get]
func (h *PriceSettingsHandler) GetSettings(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSettingsView(view))
}

// SaveSettings persists the full parameter list and display formula. A save
// blocked by validation or integrity returns 422 with the structured report.
func (h *PriceSettingsHandler) SaveSettings(c *gin.Context) {
	var payload request.PriceSettingsSaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Save(c.Request.Context(), payload.ToParameters(), payload.Formula)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSettingsView(view))
}

// ValidateFormula checks a display formula without mutating anything, so
// the editor can validate on every keystroke.
func (h *PriceSettingsHandler) ValidateFormula(c *gin.Context) {
	var payload request.FormulaValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ValidateFormula(c.Request.Context(), payload.Formula)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PriceSettingsHandler) GetIntegrity(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Integrity)
}

func (h *PriceSettingsHandler) AddParameter(c *gin.Context) {
	var payload request.ParameterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.AddParameter(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSettingsView(view))
}

func (h *PriceSettingsHandler) UpdateParameter(c *gin.Context) {
	var payload request.ParameterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("id")

	view, err := h.usecase.UpdateParameter(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSettingsView(view))
}

func (h *PriceSettingsHandler) RemoveParameter(c *gin.Context) {
	view, err := h.usecase.RemoveParameter(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSettingsView(view))
}

func (h *PriceSettingsHandler) ProposeCleanup(c *gin.Context) {
	var payload struct {
		ParameterID string `json:"parameter_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	preview, err := h.usecase.ProposeCleanup(c.Request.Context(), payload.ParameterID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *PriceSettingsHandler) ConfirmCleanup(c *gin.Context) {
	var payload request.CleanupConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.ConfirmCleanup(c.Request.Context(), payload.ToPreview())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSettingsView(view))
}

// writeError maps usecase failures. Validation and integrity failures keep
// their structured payloads instead of collapsing to a bare code+message.
func (h *PriceSettingsHandler) writeError(c *gin.Context, err error) {
	var validation *usecase.ValidationFailedError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidationFailure(validation.Result))
		return
	}
	var integrity *usecase.IntegrityBlockedError
	if errors.As(err, &integrity) {
		c.JSON(http.StatusUnprocessableEntity, response.FromIntegrityBlock(integrity.Report))
		return
	}

	appErr := mapPriceSettingsError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPriceSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParameter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParameterNotFound):
		return pkg.NewDomainErrorSimple("PARAMETER_NOT_FOUND", "Parameter not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParameterReferenced):
		return pkg.NewDomainErrorSimple("PARAMETER_REFERENCED", "Parameter is still referenced by the formula", http.StatusConflict)
	case errors.Is(err, formula.ErrStalePreview):
		return pkg.NewDomainErrorSimple("STALE_CLEANUP_PREVIEW", "Settings changed since the cleanup preview", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
