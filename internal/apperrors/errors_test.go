package apperrors_test

import (
	"fmt"
	"testing"

	"tienda/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomyMatching(t *testing.T) {
	// Constructors return the concrete types; matching must still work
	// once the values travel through the error interface, wrapped or not.
	var validation error = apperrors.NewValidation("quantity", "must be a positive integer")
	var notFound error = apperrors.NewNotFound("product", "prod-1")
	var duplicate error = apperrors.NewDuplicate("code", "CAM-001")

	assert.True(t, apperrors.IsValidation(validation))
	assert.True(t, apperrors.IsNotFound(notFound))
	assert.True(t, apperrors.IsDuplicate(duplicate))

	assert.False(t, apperrors.IsValidation(notFound))
	assert.False(t, apperrors.IsNotFound(duplicate))
	assert.False(t, apperrors.IsDuplicate(validation))

	wrapped := fmt.Errorf("saving cart: %w", notFound)
	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.False(t, apperrors.IsDuplicate(wrapped))
}

func TestErrorMessagesNameTheOffender(t *testing.T) {
	assert.Contains(t, apperrors.NewValidation("limit", "must be a positive integer").Error(), "limit")
	assert.Contains(t, apperrors.NewNotFound("cart", "c-42").Error(), "c-42")
	assert.Contains(t, apperrors.NewDuplicate("title", "Camiseta oficial").Error(), "Camiseta oficial")
}
