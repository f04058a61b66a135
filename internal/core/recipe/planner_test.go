package recipe

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanGoldenCase(t *testing.T) {
	s := newTestService()

	got := s.plan(
		[]string{"chicken", "rice", "tomatoes", "onions", "garlic"},
		nil, DietHighProtein, CuisineAsian,
	)

	// 常備品 + Asian 特色備品，garlic 已持有故排除
	assert.Equal(t, []string{"olive oil", "salt", "soy sauce", "ginger", "sesame oil"}, got.ShoppingList)
	// 6.00 + 0.50 + 2.80 + 0.80 + 4.50
	assert.InDelta(t, 14.60, got.BudgetEstimate, 1e-9)
}

func TestPlanExcludesOwnedItems(t *testing.T) {
	s := newTestService()

	got := s.plan([]string{"soy sauce", "salt", "garlic"}, nil, DietBalanced, CuisineAsian)
	for _, owned := range []string{"soy sauce", "salt", "garlic"} {
		assert.NotContains(t, got.ShoppingList, owned)
	}
}

func TestPlanIncludesFillersFirst(t *testing.T) {
	s := newTestService()

	got := s.plan([]string{"rice", "spinach"}, []string{"tofu", "ginger"}, DietVegan, CuisineAsian)
	assert.Equal(t, "tofu", got.ShoppingList[0])
	assert.Contains(t, got.ShoppingList, "soy sauce")
	// ginger 是補位食材也是 Asian 備品，只能出現一次
	assert.Equal(t, 1, countOf(got.ShoppingList, "ginger"))
}

func TestPlanRespectsDiet(t *testing.T) {
	s := newTestService()

	// Mediterranean 備品含 feta，Vegan 採買清單不得出現乳製品
	got := s.plan([]string{"chickpeas", "couscous"}, nil, DietVegan, CuisineMediterranean)
	assert.NotContains(t, got.ShoppingList, "feta")

	// Balanced 則照常列入
	got = s.plan([]string{"chickpeas", "couscous"}, nil, DietBalanced, CuisineMediterranean)
	assert.Contains(t, got.ShoppingList, "feta")
}

func TestPlanBudgetFallbackPrice(t *testing.T) {
	ref := NewReferenceData()
	ref.Staples[CuisineFusion] = []string{"yuzu kosho"} // 目錄查無單價
	ref.CommonStaples = nil

	s := NewService(ref, Options{FallbackUnitPrice: 2.50, MaxTitleIngredients: 3})
	got := s.plan([]string{"chicken", "rice"}, nil, DietBalanced, CuisineFusion)

	assert.Equal(t, []string{"yuzu kosho"}, got.ShoppingList)
	assert.InDelta(t, 2.50, got.BudgetEstimate, 1e-9)
}

func TestPlanBudgetRounding(t *testing.T) {
	s := newTestService()

	got := s.plan([]string{"beef", "potato"}, nil, DietBalanced, CuisineAmerican)
	// 預算固定到小數點後兩位
	assert.InDelta(t, got.BudgetEstimate, math.Round(got.BudgetEstimate*100)/100, 1e-9)
	assert.Greater(t, got.BudgetEstimate, 0.0)
}

func TestPlanListIsLowercase(t *testing.T) {
	s := newTestService()

	got := s.plan([]string{"chicken", "rice"}, []string{"Broccoli"}, DietBalanced, CuisineAsian)
	for _, item := range got.ShoppingList {
		assert.Equal(t, strings.ToLower(item), item)
	}
}

func countOf(items []string, target string) int {
	n := 0
	for _, item := range items {
		if item == target {
			n++
		}
	}
	return n
}
