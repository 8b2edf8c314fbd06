package service

import (
	"testing"

	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterProductsFavoritesFirst(t *testing.T) {
	products := []entity.Product{
		{Name: "Binding"},
		{Name: "Passport Photo", Favorite: true},
		{Name: "Photocopy"},
		{Name: "Lamination", Favorite: true},
	}

	got := FilterProducts(products, "")
	require.Len(t, got, 4)

	// Favorites come first, each group keeping its original order.
	assert.Equal(t, "Passport Photo", got[0].Name)
	assert.Equal(t, "Lamination", got[1].Name)
	assert.Equal(t, "Binding", got[2].Name)
	assert.Equal(t, "Photocopy", got[3].Name)
}

func TestFilterProductsSearch(t *testing.T) {
	products := []entity.Product{
		{Name: "Passport Photo", Favorite: true},
		{Name: "Photocopy"},
		{Name: "Binding"},
	}

	got := FilterProducts(products, "photo")
	require.Len(t, got, 2)
	assert.Equal(t, "Passport Photo", got[0].Name)
	assert.Equal(t, "Photocopy", got[1].Name)

	assert.Empty(t, FilterProducts(products, "laminate"))
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := []entity.Product{
		{Name: "Photocopy"},
		{Name: "Passport Photo", Favorite: true},
	}

	_ = FilterProducts(products, "")
	assert.Equal(t, "Photocopy", products[0].Name)
}
