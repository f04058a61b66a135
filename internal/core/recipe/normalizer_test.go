package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-generator/internal/pkg/common"
)

func TestNormalizeIngredients(t *testing.T) {
	// 去空白、轉小寫、去重，保留首次出現順序
	got, err := NormalizeIngredients([]string{" Chicken ", "RICE", "chicken", "", "  ", "Tomatoes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "rice", "tomatoes"}, got)
}

func TestNormalizeIngredientsTooFew(t *testing.T) {
	cases := [][]string{
		{},
		{"chicken"},
		{"Chicken", "chicken "}, // 去重後只剩一項
		{"", "  ", "rice"},
	}
	for _, raw := range cases {
		_, err := NormalizeIngredients(raw)
		require.Error(t, err)
		assert.True(t, common.IsValidationError(err))
	}
}

func TestParseDietaryPreference(t *testing.T) {
	// 不區分大小寫
	diet, err := ParseDietaryPreference("high-protein")
	require.NoError(t, err)
	assert.Equal(t, DietHighProtein, diet)

	diet, err = ParseDietaryPreference(" Vegan ")
	require.NoError(t, err)
	assert.Equal(t, DietVegan, diet)

	_, err = ParseDietaryPreference("Paleo")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestParseCuisineType(t *testing.T) {
	cuisine, err := ParseCuisineType("ASIAN")
	require.NoError(t, err)
	assert.Equal(t, CuisineAsian, cuisine)

	_, err = ParseCuisineType("French")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}
