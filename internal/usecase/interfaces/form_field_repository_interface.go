package interfaces

import (
	"context"

	"portal_pricing/internal/domain/entities"
)

// IFormFieldRepository abstracts the quote-form field catalog. The pricing
// engine only ever reads it; the catalog is owned by the form designer
// surface of the portal.

type IFormFieldRepository interface {
	ListCatalog(ctx context.Context) ([]entities.FieldDescriptor, error)
	SaveCatalog(ctx context.Context, fields []entities.FieldDescriptor) error
}
