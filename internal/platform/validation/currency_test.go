package validation_test

import (
	"testing"

	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/SscSPs/beers_api/internal/platform/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boxQuery struct {
	Currency string `form:"currency" validate:"required,validcurrency"`
	Quantity int    `form:"quantity" validate:"min=1"`
}

type optionalCurrency struct {
	Currency string `json:"currency" validate:"validcurrency"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	set := domain.NewSupportedCurrencySet([]string{"USD", "EUR", "CLP"})
	require.NoError(t, validation.RegisterCurrencyValidation(v, set))
	return v
}

func TestCurrencyTag(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		input   boxQuery
		wantErr bool
	}{
		{name: "supported", input: boxQuery{Currency: "USD", Quantity: 6}},
		{name: "lowercase supported", input: boxQuery{Currency: "clp", Quantity: 6}},
		{name: "unsupported", input: boxQuery{Currency: "ARS", Quantity: 6}, wantErr: true},
		{name: "missing", input: boxQuery{Quantity: 6}, wantErr: true},
		{name: "zero quantity", input: boxQuery{Currency: "USD"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCurrencyTag_EmptyPassesWithoutRequired(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(optionalCurrency{}))
	assert.Error(t, v.Struct(optionalCurrency{Currency: "XXX"}))
}

func TestFieldErrors(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(boxQuery{Currency: "ARS", Quantity: 0})
	fields := validation.FieldErrors(err)

	require.Len(t, fields, 2)
	assert.Equal(t, "Currency 'ARS' is not available", fields["Currency"])
	assert.Equal(t, "must be greater than or equal to 1", fields["Quantity"])
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(assert.AnError))
	assert.Nil(t, validation.FieldErrors(nil))
}
