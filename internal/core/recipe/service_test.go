package recipe

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-generator/internal/pkg/common"
)

func TestGenerateGoldenCase(t *testing.T) {
	s := newTestService()

	result, err := s.Generate(context.Background(),
		[]string{"chicken", "rice", "tomatoes", "onions", "garlic"},
		"High-Protein", "Asian",
	)
	require.NoError(t, err)
	require.Len(t, result.GeneratedRecipes, 1)

	rec := result.GeneratedRecipes[0]
	assert.Equal(t, "Asian High-Protein Recipe with Chicken, Rice, Tomatoes", rec.Name)
	assert.Equal(t, "Asian", rec.Cuisine)
	assert.Equal(t, "High-Protein", rec.DietaryType)
	assert.Equal(t, "30 minutes", rec.CookingTime)
	assert.Equal(t, "Easy", rec.Difficulty)
	assert.Equal(t, []string{"chicken", "rice", "tomatoes", "onions", "garlic"}, rec.Ingredients)

	assert.Equal(t, 548, result.NutritionalAnalysis.Calories)
	assert.Equal(t, "47.0g", result.NutritionalAnalysis.Protein)
	assert.Equal(t, ComplianceFull, result.NutritionalAnalysis.DietaryCompliance)

	assert.Equal(t, []string{"olive oil", "salt", "soy sauce", "ginger", "sesame oil"}, result.ShoppingList)
	assert.InDelta(t, 14.60, result.BudgetEstimate, 1e-9)
}

func TestGenerateIsDeterministic(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	ingredients := []string{"salmon", "quinoa", "spinach", "lemon"}

	first, err := s.Generate(ctx, ingredients, "Low-Carb", "Mediterranean")
	require.NoError(t, err)
	second, err := s.Generate(ctx, ingredients, "Low-Carb", "Mediterranean")
	require.NoError(t, err)

	// 相同輸入必須產出逐位元相同的結果
	a, err := common.ToJSON(first)
	require.NoError(t, err)
	b, err := common.ToJSON(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateValidationErrors(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	// 食材不足
	_, err := s.Generate(ctx, []string{"chicken"}, "Balanced", "Asian")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	// 去重後食材不足
	_, err = s.Generate(ctx, []string{"Chicken", "chicken "}, "Balanced", "Asian")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	// 未知飲食偏好
	_, err = s.Generate(ctx, []string{"chicken", "rice"}, "Carnivore", "Asian")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	// 未知料理類型
	_, err = s.Generate(ctx, []string{"chicken", "rice"}, "Balanced", "Nordic")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestGenerateNoTemplateIsGenerationError(t *testing.T) {
	ref := NewReferenceData()
	ref.Templates = nil
	s := NewService(ref, DefaultOptions())

	_, err := s.Generate(context.Background(), []string{"chicken", "rice"}, "Balanced", "Asian")
	require.Error(t, err)
	assert.True(t, common.IsGenerationError(err))
}

func TestGenerateIngredientsAreSuperset(t *testing.T) {
	s := newTestService()

	result, err := s.Generate(context.Background(),
		[]string{"Tofu", "NOODLES", "cabbage"}, "vegan", "asian")
	require.NoError(t, err)

	// 食譜食材必須涵蓋所有正規化後的使用者食材
	rec := result.GeneratedRecipes[0]
	for _, want := range []string{"tofu", "noodles", "cabbage"} {
		assert.Contains(t, rec.Ingredients, want)
	}
}

func TestGenerateShoppingListExcludesOwned(t *testing.T) {
	s := newTestService()

	result, err := s.Generate(context.Background(),
		[]string{"chicken", "rice", "garlic", "soy sauce"}, "Balanced", "Asian")
	require.NoError(t, err)

	// 使用者已持有的品項不得出現在採買清單（補位食材仍需購買）
	for _, item := range result.ShoppingList {
		assert.NotContains(t, []string{"chicken", "rice", "garlic", "soy sauce"}, item)
	}
}

func TestGenerateVeganWithMeatIsPartiallyCompliant(t *testing.T) {
	s := newTestService()

	result, err := s.Generate(context.Background(),
		[]string{"chicken", "rice"}, "Vegan", "Asian")
	require.NoError(t, err)

	// 引擎不拒絕違規食材，但合規欄位必須如實反映
	assert.Equal(t, CompliancePartial, result.NutritionalAnalysis.DietaryCompliance)
	assert.Contains(t, result.GeneratedRecipes[0].Ingredients, "chicken")
}

func TestGenerateAllCombinationsSucceed(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	diets := []string{"High-Protein", "Low-Carb", "Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Balanced", "Keto"}
	cuisines := []string{"Asian", "Italian", "Mexican", "Indian", "Mediterranean", "American", "Fusion"}

	for _, diet := range diets {
		for _, cuisine := range cuisines {
			result, err := s.Generate(ctx, []string{"egg", "potato", "spinach"}, diet, cuisine)
			require.NoError(t, err, "%s/%s", diet, cuisine)

			rec := result.GeneratedRecipes[0]
			assert.NotEmpty(t, rec.Steps)
			assert.NotEmpty(t, result.ShoppingList)
			assert.Greater(t, result.BudgetEstimate, 0.0)
			assert.GreaterOrEqual(t, result.NutritionalAnalysis.HealthScore, 0.0)
			assert.LessOrEqual(t, result.NutritionalAnalysis.HealthScore, 10.0)

			// 所有步驟佔位符都要被取代
			for _, step := range rec.Steps {
				assert.False(t, strings.ContainsAny(step, "{}"), "unresolved placeholder in %q", step)
			}
		}
	}
}
