package handlers

import (
	"net/http"

	request "portal_pricing/internal/adapter/http/dto/request"
	response "portal_pricing/internal/adapter/http/dto/response"
	"portal_pricing/internal/usecase/interfaces"
	"portal_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// FormFieldHandler serves the quote-form field catalog the integrity check
// cross-references parameters against. Saving replaces the whole catalog.

type FormFieldHandler struct {
	fields interfaces.IFormFieldRepository
}

func NewFormFieldHandler(fields interfaces.IFormFieldRepository) *FormFieldHandler {
	return &FormFieldHandler{fields: fields}
}

func (h *FormFieldHandler) ListFormFields(c *gin.Context) {
	catalog, err := h.fields.ListCatalog(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FormFieldCatalogResponse{Fields: catalog})
}

func (h *FormFieldHandler) SaveFormFields(c *gin.Context) {
	var payload request.FormFieldCatalogSaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainError("INVALID_PAYLOAD", "Invalid form field catalog payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fields := payload.ToEntities()
	if err := h.fields.SaveCatalog(c.Request.Context(), fields); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FormFieldCatalogResponse{Fields: fields})
}
