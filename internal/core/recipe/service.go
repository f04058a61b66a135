package recipe

import (
	"context"

	"recipe-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrNoTemplate 參考資料損毀（連通用模板都不存在）時回傳
// 正常情況下不應發生，每一種 cuisine/dietary 組合都有備援模板
var ErrNoTemplate = common.NewGenerationError("no recipe template available")

// Options 引擎的可調策略
type Options struct {
	// FallbackUnitPrice 查無單價的品項使用的備援單價
	FallbackUnitPrice float64
	// MaxTitleIngredients 食譜名稱最多列出的食材數
	MaxTitleIngredients int
}

// DefaultOptions 預設策略
func DefaultOptions() Options {
	return Options{
		FallbackUnitPrice:   2.50,
		MaxTitleIngredients: 3,
	}
}

// Service 食譜生成引擎
// 純函數式：除唯讀參考資料外不持有任何狀態，可供並發呼叫
type Service struct {
	ref  *ReferenceData
	opts Options
}

// NewService 建立食譜生成引擎
func NewService(ref *ReferenceData, opts Options) *Service {
	if opts.FallbackUnitPrice <= 0 {
		opts.FallbackUnitPrice = DefaultOptions().FallbackUnitPrice
	}
	if opts.MaxTitleIngredients <= 0 {
		opts.MaxTitleIngredients = DefaultOptions().MaxTitleIngredients
	}
	return &Service{ref: ref, opts: opts}
}

// Generate 依食材、飲食偏好與料理類型產出食譜、營養估算、採買清單與預算
// 輸入不合法時回傳 ValidationError；其餘情況永遠回傳完整結果
func (s *Service) Generate(ctx context.Context, rawIngredients []string, dietaryPreference, cuisineType string) (*Result, error) {
	diet, err := ParseDietaryPreference(dietaryPreference)
	if err != nil {
		return nil, err
	}
	cuisine, err := ParseCuisineType(cuisineType)
	if err != nil {
		return nil, err
	}

	ingredients, err := NormalizeIngredients(rawIngredients)
	if err != nil {
		return nil, err
	}

	composed, fillers, err := s.compose(ingredients, diet, cuisine)
	if err != nil {
		return nil, err
	}

	nutrition := s.estimate(composed, diet)
	shopping := s.plan(ingredients, fillers, diet, cuisine)

	common.LogDebug("食譜生成完成",
		zap.String("cuisine", string(cuisine)),
		zap.String("dietary", string(diet)),
		zap.Int("ingredient_count", len(composed.Ingredients)),
		zap.Int("shopping_items", len(shopping.ShoppingList)),
	)

	return &Result{
		GeneratedRecipes:    []ComposedRecipe{composed},
		NutritionalAnalysis: nutrition,
		ShoppingList:        shopping.ShoppingList,
		BudgetEstimate:      shopping.BudgetEstimate,
	}, nil
}
