package validator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoteRequest struct {
	VariantID json.Number `json:"variant_id" validate:"required"`
	Quantity  *int        `json:"quantity" validate:"required,gt=0"`
}

func intPtr(v int) *int { return &v }

func TestValidate_OK(t *testing.T) {
	req := quoteRequest{VariantID: "900101", Quantity: intPtr(25)}
	assert.NoError(t, Validate(req))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := Validate(quoteRequest{Quantity: intPtr(5)})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "variant_id is required", valErr.First())
}

func TestValidate_MissingQuantity(t *testing.T) {
	err := Validate(quoteRequest{VariantID: "900101"})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "quantity is required", valErr.First())
}

func TestValidate_NonPositiveQuantity(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		err := Validate(quoteRequest{VariantID: "900101", Quantity: intPtr(quantity)})
		require.Error(t, err)

		var valErr *ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "quantity must be a positive integer", valErr.First())
	}
}

func TestValidationError_Fields(t *testing.T) {
	err := Validate(quoteRequest{})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["variant_id"])
	assert.Equal(t, "is required", fields["quantity"])
}

func TestValidationError_ErrorJoinsAllFields(t *testing.T) {
	err := Validate(quoteRequest{})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "variant_id is required")
	assert.Contains(t, msg, "quantity is required")
}

func TestValidate_GTMessageForNonZeroParam(t *testing.T) {
	type bulk struct {
		Count int `json:"count" validate:"gt=10"`
	}
	err := Validate(bulk{Count: 5})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "count must be greater than 10", valErr.First())
}
