package recipe

import (
	"fmt"
	"strings"

	"recipe-generator/internal/pkg/common"
)

// DietaryPreference 飲食偏好（封閉列舉，邊界驗證後才會進入引擎）
type DietaryPreference string

const (
	DietHighProtein DietaryPreference = "High-Protein"
	DietLowCarb     DietaryPreference = "Low-Carb"
	DietVegetarian  DietaryPreference = "Vegetarian"
	DietVegan       DietaryPreference = "Vegan"
	DietGlutenFree  DietaryPreference = "Gluten-Free"
	DietDairyFree   DietaryPreference = "Dairy-Free"
	DietBalanced    DietaryPreference = "Balanced"
	DietKeto        DietaryPreference = "Keto"
)

// CuisineType 料理類型（封閉列舉）
type CuisineType string

const (
	CuisineAsian         CuisineType = "Asian"
	CuisineItalian       CuisineType = "Italian"
	CuisineMexican       CuisineType = "Mexican"
	CuisineIndian        CuisineType = "Indian"
	CuisineMediterranean CuisineType = "Mediterranean"
	CuisineAmerican      CuisineType = "American"
	CuisineFusion        CuisineType = "Fusion"
)

var dietaryPreferences = []DietaryPreference{
	DietHighProtein, DietLowCarb, DietVegetarian, DietVegan,
	DietGlutenFree, DietDairyFree, DietBalanced, DietKeto,
}

var cuisineTypes = []CuisineType{
	CuisineAsian, CuisineItalian, CuisineMexican, CuisineIndian,
	CuisineMediterranean, CuisineAmerican, CuisineFusion,
}

// ParseDietaryPreference 解析飲食偏好字串，不區分大小寫
func ParseDietaryPreference(s string) (DietaryPreference, error) {
	trimmed := strings.TrimSpace(s)
	for _, d := range dietaryPreferences {
		if strings.EqualFold(trimmed, string(d)) {
			return d, nil
		}
	}
	return "", common.NewValidationError(fmt.Sprintf("unknown dietary preference: %q", s))
}

// ParseCuisineType 解析料理類型字串，不區分大小寫
func ParseCuisineType(s string) (CuisineType, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range cuisineTypes {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", common.NewValidationError(fmt.Sprintf("unknown cuisine type: %q", s))
}

// Role 食譜模板中的食材角色
type Role string

const (
	RoleProtein   Role = "protein"
	RoleStarch    Role = "starch"
	RoleVegetable Role = "vegetable"
	RoleAromatic  Role = "aromatic"
)

// allRoles 綁定時的固定順序
var allRoles = []Role{RoleProtein, RoleStarch, RoleVegetable, RoleAromatic}

// FoodGroup 食材分類，用於飲食合規判斷
type FoodGroup string

const (
	GroupMeat        FoodGroup = "meat"
	GroupSeafood     FoodGroup = "seafood"
	GroupDairy       FoodGroup = "dairy"
	GroupEgg         FoodGroup = "egg"
	GroupGlutenGrain FoodGroup = "gluten_grain"
	GroupGrain       FoodGroup = "grain"
	GroupLegume      FoodGroup = "legume"
	GroupVegetable   FoodGroup = "vegetable"
	GroupAromatic    FoodGroup = "aromatic"
	GroupCondiment   FoodGroup = "condiment"
	GroupOther       FoodGroup = "other"
)

// NutritionFacts 單一食材的營養值（以常見一份計）
type NutritionFacts struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// CatalogEntry 食材目錄條目：角色、分類、營養、單價一次查齊
type CatalogEntry struct {
	Role      Role
	Group     FoodGroup
	Nutrition NutritionFacts
	Price     float64
}

// RecipeTemplate 靜態食譜模板
// Cuisine / Dietary 為零值時表示不限
type RecipeTemplate struct {
	Cuisine     CuisineType
	Dietary     DietaryPreference
	Roles       []Role
	Fillers     map[Role]string
	Steps       []string
	CookingTime string
	Difficulty  string
}

// ComposedRecipe 模板綁定使用者食材後的結果
type ComposedRecipe struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	DietaryType string   `json:"dietary_type"`
	CookingTime string   `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// NutritionProfile 營養估算結果
type NutritionProfile struct {
	Calories          int     `json:"calories"`
	Protein           string  `json:"protein"`
	Carbs             string  `json:"carbs"`
	Fat               string  `json:"fat"`
	Fiber             string  `json:"fiber"`
	HealthScore       float64 `json:"health_score"`
	DietaryCompliance string  `json:"dietary_compliance"`
}

// 飲食合規判斷的兩種結果
const (
	ComplianceFull    = "Fully Compliant"
	CompliancePartial = "Partially Compliant"
)

// ShoppingPlan 採買清單與預算估算
type ShoppingPlan struct {
	ShoppingList   []string `json:"shopping_list"`
	BudgetEstimate float64  `json:"budget_estimate"`
}

// Result 引擎的完整輸出
// generated_recipes 固定只有一個元素
type Result struct {
	GeneratedRecipes    []ComposedRecipe `json:"generated_recipes"`
	NutritionalAnalysis NutritionProfile `json:"nutritional_analysis"`
	ShoppingList        []string         `json:"shopping_list"`
	BudgetEstimate      float64          `json:"budget_estimate"`
}
