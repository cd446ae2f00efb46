package entity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

func TestCategory_NombreMinimoEnRunas(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"ab", true},
		{"ñu", true},
		{"🚀🚀", true},
		{"a", false},
		{"🚀", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&entity.Category{Name: tt.name, Description: "d"}).Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []string{"name must be at least 2 characters"}, verr.Errors)
		})
	}
}

func TestProduct_ReglasDeEsquema(t *testing.T) {
	p := &entity.Product{Name: "🚀", SKU: "X", Price: -1, Currency: "GBP", CategoryID: domain.NewID()}
	var verr *domain.ValidationError
	require.True(t, errors.As(p.Validate(), &verr))
	assert.Equal(t, []string{
		"name must be at least 2 characters",
		"price must be >= 0",
		"currency must be one of: EUR, USD",
	}, verr.Errors)
}

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "BK-1", entity.NormalizeSKU("  bk-1 "))
	assert.Equal(t, "STRASSE-1", entity.NormalizeSKU("straße-1"))
}
