package recipe

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateGoldenCase(t *testing.T) {
	s := newTestService()

	rec := ComposedRecipe{
		Ingredients: []string{"chicken", "rice", "tomatoes", "onions", "garlic"},
	}
	got := s.estimate(rec, DietHighProtein)

	// 原始總和 protein 33.6 / carbs 63.0 / fat 14.8 / fiber 4.2，
	// 套用 High-Protein 乘數 (1.4, 0.9, 1.0) 後回推熱量
	assert.Equal(t, 548, got.Calories)
	assert.Equal(t, "47.0g", got.Protein)
	assert.Equal(t, "56.7g", got.Carbs)
	assert.Equal(t, "14.8g", got.Fat)
	assert.Equal(t, "4.2g", got.Fiber)
	assert.Equal(t, ComplianceFull, got.DietaryCompliance)
	assert.InDelta(t, 9.5, got.HealthScore, 1e-9)
}

func TestEstimateComplianceViolation(t *testing.T) {
	s := newTestService()

	rec := ComposedRecipe{Ingredients: []string{"chicken", "rice"}}
	got := s.estimate(rec, DietVegan)
	assert.Equal(t, CompliancePartial, got.DietaryCompliance)

	got = s.estimate(ComposedRecipe{Ingredients: []string{"tofu", "rice"}}, DietVegan)
	assert.Equal(t, ComplianceFull, got.DietaryCompliance)
}

func TestEstimateUnknownIngredientUsesDefault(t *testing.T) {
	s := newTestService()

	// 陌生食材走預設條目，估算仍需給出結果而非失敗
	got := s.estimate(ComposedRecipe{Ingredients: []string{"dragonfruit jam", "mystery sauce"}}, DietBalanced)
	assert.Greater(t, got.Calories, 0)
	assert.GreaterOrEqual(t, got.HealthScore, 0.0)
	assert.LessOrEqual(t, got.HealthScore, 10.0)
}

func TestEstimateHighProteinBoostsProtein(t *testing.T) {
	s := newTestService()
	rec := ComposedRecipe{Ingredients: []string{"chicken", "rice", "broccoli"}}

	base := s.estimate(rec, DietBalanced)
	boosted := s.estimate(rec, DietHighProtein)

	assert.Greater(t, parseGrams(t, boosted.Protein), parseGrams(t, base.Protein))
	assert.Less(t, parseGrams(t, boosted.Carbs), parseGrams(t, base.Carbs))
}

func TestEstimateKetoCutsCarbs(t *testing.T) {
	s := newTestService()
	rec := ComposedRecipe{Ingredients: []string{"beef", "rice", "spinach"}}

	base := s.estimate(rec, DietBalanced)
	keto := s.estimate(rec, DietKeto)

	assert.Less(t, parseGrams(t, keto.Carbs), parseGrams(t, base.Carbs))
	assert.Greater(t, parseGrams(t, keto.Fat), parseGrams(t, base.Fat))
}

func TestEstimateHealthScoreBounds(t *testing.T) {
	s := newTestService()

	cases := [][]string{
		{"salt", "black pepper"},
		{"chicken", "rice", "tomato", "onion"},
		{"lentils", "quinoa", "broccoli", "spinach", "carrot", "garlic"},
	}
	for _, ingredients := range cases {
		got := s.estimate(ComposedRecipe{Ingredients: ingredients}, DietBalanced)
		assert.GreaterOrEqual(t, got.HealthScore, 0.0)
		assert.LessOrEqual(t, got.HealthScore, 10.0)
	}
}

func TestFormatGrams(t *testing.T) {
	assert.Equal(t, "47.0g", formatGrams(47.04))
	assert.Equal(t, "56.7g", formatGrams(56.7))
	assert.Equal(t, "0.0g", formatGrams(0))
	assert.Equal(t, "2.4g", formatGrams(2.449))
}

// parseGrams 解析 "47.0g" 形式的字串供比較使用
func parseGrams(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "g"), 64)
	require.NoError(t, err)
	return v
}
