package recipe

import "strings"

// ReferenceData 引擎的靜態參考資料
// 啟動時建立一次，之後只讀不寫，可供多個請求並發使用
type ReferenceData struct {
	Catalog       map[string]CatalogEntry
	DefaultEntry  CatalogEntry
	Templates     []RecipeTemplate
	Staples       map[CuisineType][]string
	CommonStaples []string
	SafeFillers   map[Role]string
	Multipliers   map[DietaryPreference]MacroMultipliers
	Forbidden     map[DietaryPreference][]FoodGroup
}

// MacroMultipliers 依飲食偏好調整三大營養素的顯示比例
type MacroMultipliers struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// Lookup 查詢食材目錄，查無資料時回傳預設條目
func (r *ReferenceData) Lookup(name string) CatalogEntry {
	if e, ok := r.Find(name); ok {
		return e
	}
	return r.DefaultEntry
}

// Find 查詢食材目錄，找不到時嘗試去除常見複數字尾
func (r *ReferenceData) Find(name string) (CatalogEntry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if e, ok := r.Catalog[key]; ok {
		return e, true
	}
	if trimmed := strings.TrimSuffix(key, "s"); trimmed != key {
		if e, ok := r.Catalog[trimmed]; ok {
			return e, true
		}
	}
	if trimmed := strings.TrimSuffix(key, "es"); trimmed != key {
		if e, ok := r.Catalog[trimmed]; ok {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// IsForbidden 判斷食材分類是否違反指定飲食偏好
func (r *ReferenceData) IsForbidden(group FoodGroup, diet DietaryPreference) bool {
	for _, g := range r.Forbidden[diet] {
		if g == group {
			return true
		}
	}
	return false
}

// NewReferenceData 建立預設參考資料
// 所有數值為系統的可調策略，參見 DESIGN.md
func NewReferenceData() *ReferenceData {
	return &ReferenceData{
		Catalog:      buildCatalog(),
		DefaultEntry: CatalogEntry{Group: GroupOther, Nutrition: NutritionFacts{Calories: 120, Protein: 3, Carbs: 15, Fat: 4, Fiber: 1.5}},
		Templates:    buildTemplates(),
		Staples: map[CuisineType][]string{
			CuisineAsian:         {"soy sauce", "ginger", "garlic", "sesame oil"},
			CuisineItalian:       {"garlic", "basil", "parmesan", "oregano"},
			CuisineMexican:       {"lime", "cilantro", "cumin", "tortillas"},
			CuisineIndian:        {"turmeric", "cumin", "ginger", "garlic"},
			CuisineMediterranean: {"lemon", "oregano", "feta", "garlic"},
			CuisineAmerican:      {"butter", "black pepper", "garlic"},
			CuisineFusion:        {"soy sauce", "garlic", "lime"},
		},
		CommonStaples: []string{"olive oil", "salt"},
		SafeFillers: map[Role]string{
			RoleProtein:   "tofu",
			RoleStarch:    "rice",
			RoleVegetable: "spinach",
			RoleAromatic:  "garlic",
		},
		Multipliers: map[DietaryPreference]MacroMultipliers{
			DietHighProtein: {Protein: 1.4, Carbs: 0.9, Fat: 1.0},
			DietLowCarb:     {Protein: 1.15, Carbs: 0.5, Fat: 1.25},
			DietKeto:        {Protein: 1.1, Carbs: 0.35, Fat: 1.45},
			DietVegetarian:  {Protein: 1.0, Carbs: 1.0, Fat: 1.0},
			DietVegan:       {Protein: 1.0, Carbs: 1.0, Fat: 1.0},
			DietGlutenFree:  {Protein: 1.0, Carbs: 1.0, Fat: 1.0},
			DietDairyFree:   {Protein: 1.0, Carbs: 1.0, Fat: 1.0},
			DietBalanced:    {Protein: 1.0, Carbs: 1.0, Fat: 1.0},
		},
		Forbidden: map[DietaryPreference][]FoodGroup{
			DietVegan:      {GroupMeat, GroupSeafood, GroupDairy, GroupEgg},
			DietVegetarian: {GroupMeat, GroupSeafood},
			DietDairyFree:  {GroupDairy},
			DietGlutenFree: {GroupGlutenGrain},
		},
	}
}

func buildCatalog() map[string]CatalogEntry {
	return map[string]CatalogEntry{
		// 肉類
		"chicken": {Role: RoleProtein, Group: GroupMeat, Nutrition: NutritionFacts{Calories: 240, Protein: 27, Carbs: 0, Fat: 14, Fiber: 0}, Price: 3.50},
		"beef":    {Role: RoleProtein, Group: GroupMeat, Nutrition: NutritionFacts{Calories: 280, Protein: 26, Carbs: 0, Fat: 18, Fiber: 0}, Price: 5.00},
		"pork":    {Role: RoleProtein, Group: GroupMeat, Nutrition: NutritionFacts{Calories: 270, Protein: 25, Carbs: 0, Fat: 18, Fiber: 0}, Price: 4.20},
		"turkey":  {Role: RoleProtein, Group: GroupMeat, Nutrition: NutritionFacts{Calories: 190, Protein: 28, Carbs: 0, Fat: 8, Fiber: 0}, Price: 4.00},
		"bacon":   {Role: RoleProtein, Group: GroupMeat, Nutrition: NutritionFacts{Calories: 160, Protein: 12, Carbs: 0.5, Fat: 12, Fiber: 0}, Price: 4.50},
		"lamb":    {Role: RoleProtein, Group: GroupMeat, Nutrition: NutritionFacts{Calories: 290, Protein: 25, Carbs: 0, Fat: 20, Fiber: 0}, Price: 7.00},

		// 海鮮
		"fish":   {Role: RoleProtein, Group: GroupSeafood, Nutrition: NutritionFacts{Calories: 200, Protein: 22, Carbs: 0, Fat: 12, Fiber: 0}, Price: 4.50},
		"salmon": {Role: RoleProtein, Group: GroupSeafood, Nutrition: NutritionFacts{Calories: 230, Protein: 22, Carbs: 0, Fat: 15, Fiber: 0}, Price: 6.00},
		"shrimp": {Role: RoleProtein, Group: GroupSeafood, Nutrition: NutritionFacts{Calories: 110, Protein: 22, Carbs: 1, Fat: 1.5, Fiber: 0}, Price: 5.50},
		"tuna":   {Role: RoleProtein, Group: GroupSeafood, Nutrition: NutritionFacts{Calories: 130, Protein: 28, Carbs: 0, Fat: 1, Fiber: 0}, Price: 3.00},

		// 蛋奶
		"egg":    {Role: RoleProtein, Group: GroupEgg, Nutrition: NutritionFacts{Calories: 70, Protein: 6, Carbs: 0.5, Fat: 5, Fiber: 0}, Price: 0.30},
		"cheese": {Role: RoleProtein, Group: GroupDairy, Nutrition: NutritionFacts{Calories: 110, Protein: 7, Carbs: 1, Fat: 9, Fiber: 0}, Price: 3.00},
		"milk":   {Group: GroupDairy, Nutrition: NutritionFacts{Calories: 100, Protein: 8, Carbs: 12, Fat: 2.5, Fiber: 0}, Price: 1.20},
		"butter": {Group: GroupDairy, Nutrition: NutritionFacts{Calories: 100, Protein: 0, Carbs: 0, Fat: 11, Fiber: 0}, Price: 2.00},
		"yogurt": {Group: GroupDairy, Nutrition: NutritionFacts{Calories: 90, Protein: 9, Carbs: 7, Fat: 2, Fiber: 0}, Price: 1.00},
		"cream":  {Group: GroupDairy, Nutrition: NutritionFacts{Calories: 100, Protein: 1, Carbs: 1, Fat: 10, Fiber: 0}, Price: 1.80},
		"paneer": {Role: RoleProtein, Group: GroupDairy, Nutrition: NutritionFacts{Calories: 265, Protein: 18, Carbs: 4, Fat: 21, Fiber: 0}, Price: 3.50},
		"parmesan": {Group: GroupDairy, Nutrition: NutritionFacts{Calories: 110, Protein: 10, Carbs: 1, Fat: 7, Fiber: 0}, Price: 3.80},
		"feta":     {Group: GroupDairy, Nutrition: NutritionFacts{Calories: 100, Protein: 5, Carbs: 1.5, Fat: 8, Fiber: 0}, Price: 3.20},

		// 植物性蛋白
		"tofu":     {Role: RoleProtein, Group: GroupLegume, Nutrition: NutritionFacts{Calories: 150, Protein: 16, Carbs: 4, Fat: 9, Fiber: 2}, Price: 2.00},
		"bean":     {Role: RoleProtein, Group: GroupLegume, Nutrition: NutritionFacts{Calories: 120, Protein: 8, Carbs: 22, Fat: 0.5, Fiber: 7}, Price: 1.00},
		"lentil":   {Role: RoleProtein, Group: GroupLegume, Nutrition: NutritionFacts{Calories: 115, Protein: 9, Carbs: 20, Fat: 0.4, Fiber: 8}, Price: 1.20},
		"chickpea": {Role: RoleProtein, Group: GroupLegume, Nutrition: NutritionFacts{Calories: 135, Protein: 7, Carbs: 22, Fat: 2, Fiber: 6}, Price: 1.10},

		// 含麩質澱粉
		"pasta":    {Role: RoleStarch, Group: GroupGlutenGrain, Nutrition: NutritionFacts{Calories: 220, Protein: 8, Carbs: 43, Fat: 1.3, Fiber: 2.5}, Price: 1.50},
		"bread":    {Role: RoleStarch, Group: GroupGlutenGrain, Nutrition: NutritionFacts{Calories: 80, Protein: 3, Carbs: 15, Fat: 1, Fiber: 1}, Price: 2.00},
		"noodle":   {Role: RoleStarch, Group: GroupGlutenGrain, Nutrition: NutritionFacts{Calories: 190, Protein: 7, Carbs: 38, Fat: 1, Fiber: 2}, Price: 1.80},
		"flour":    {Group: GroupGlutenGrain, Nutrition: NutritionFacts{Calories: 110, Protein: 3, Carbs: 23, Fat: 0.3, Fiber: 0.8}, Price: 1.20},
		"tortilla": {Role: RoleStarch, Group: GroupGlutenGrain, Nutrition: NutritionFacts{Calories: 140, Protein: 4, Carbs: 24, Fat: 3.5, Fiber: 1.5}, Price: 2.50},
		"couscous": {Role: RoleStarch, Group: GroupGlutenGrain, Nutrition: NutritionFacts{Calories: 175, Protein: 6, Carbs: 36, Fat: 0.3, Fiber: 2}, Price: 2.20},

		// 無麩質澱粉
		"rice":   {Role: RoleStarch, Group: GroupGrain, Nutrition: NutritionFacts{Calories: 205, Protein: 4, Carbs: 45, Fat: 0.5, Fiber: 0.6}, Price: 1.00},
		"quinoa": {Role: RoleStarch, Group: GroupGrain, Nutrition: NutritionFacts{Calories: 220, Protein: 8, Carbs: 39, Fat: 3.5, Fiber: 5}, Price: 3.00},
		"potato": {Role: RoleStarch, Group: GroupGrain, Nutrition: NutritionFacts{Calories: 160, Protein: 4, Carbs: 37, Fat: 0.2, Fiber: 4}, Price: 0.80},
		"corn":   {Role: RoleStarch, Group: GroupGrain, Nutrition: NutritionFacts{Calories: 90, Protein: 3, Carbs: 19, Fat: 1.5, Fiber: 2}, Price: 1.00},
		"oat":    {Role: RoleStarch, Group: GroupGrain, Nutrition: NutritionFacts{Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Fiber: 4}, Price: 1.50},

		// 蔬菜
		"tomato":      {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 25, Protein: 1, Carbs: 5, Fat: 0.2, Fiber: 1.5}, Price: 1.50},
		"broccoli":    {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 55, Protein: 4, Carbs: 11, Fat: 0.5, Fiber: 5}, Price: 1.80},
		"spinach":     {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 25, Protein: 3, Carbs: 4, Fat: 0.4, Fiber: 2.5}, Price: 2.00},
		"carrot":      {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 50, Protein: 1, Carbs: 12, Fat: 0.2, Fiber: 3.5}, Price: 0.90},
		"pepper":      {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 30, Protein: 1, Carbs: 7, Fat: 0.3, Fiber: 2.5}, Price: 1.60},
		"bell pepper": {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 30, Protein: 1, Carbs: 7, Fat: 0.3, Fiber: 2.5}, Price: 1.60},
		"mushroom":    {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 20, Protein: 3, Carbs: 3, Fat: 0.3, Fiber: 1}, Price: 2.20},
		"zucchini":    {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 20, Protein: 1.5, Carbs: 4, Fat: 0.3, Fiber: 1.2}, Price: 1.40},
		"cabbage":     {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 22, Protein: 1, Carbs: 5, Fat: 0.1, Fiber: 2.2}, Price: 1.00},
		"cauliflower": {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 25, Protein: 2, Carbs: 5, Fat: 0.3, Fiber: 2}, Price: 2.00},
		"eggplant":    {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 25, Protein: 1, Carbs: 6, Fat: 0.2, Fiber: 3}, Price: 1.70},
		"pea":         {Role: RoleVegetable, Group: GroupVegetable, Nutrition: NutritionFacts{Calories: 60, Protein: 4, Carbs: 11, Fat: 0.3, Fiber: 4}, Price: 1.30},

		// 辛香料
		"onion":    {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 45, Protein: 1, Carbs: 10, Fat: 0.1, Fiber: 1.9}, Price: 0.70},
		"garlic":   {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 15, Protein: 0.6, Carbs: 3, Fat: 0, Fiber: 0.2}, Price: 0.50},
		"ginger":   {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 10, Protein: 0.2, Carbs: 2, Fat: 0, Fiber: 0.2}, Price: 0.80},
		"scallion": {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 10, Protein: 0.5, Carbs: 2, Fat: 0, Fiber: 0.8}, Price: 0.90},
		"cilantro": {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 5, Protein: 0.3, Carbs: 1, Fat: 0, Fiber: 0.5}, Price: 1.00},
		"basil":    {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 5, Protein: 0.3, Carbs: 1, Fat: 0, Fiber: 0.4}, Price: 1.50},
		"chili":    {Role: RoleAromatic, Group: GroupAromatic, Nutrition: NutritionFacts{Calories: 10, Protein: 0.5, Carbs: 2, Fat: 0.1, Fiber: 0.7}, Price: 0.60},

		// 調味與油品
		"soy sauce":    {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 10, Protein: 1, Carbs: 1, Fat: 0, Fiber: 0}, Price: 2.80},
		"olive oil":    {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 120, Protein: 0, Carbs: 0, Fat: 14, Fiber: 0}, Price: 6.00},
		"sesame oil":   {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 120, Protein: 0, Carbs: 0, Fat: 14, Fiber: 0}, Price: 4.50},
		"salt":         {Group: GroupCondiment, Nutrition: NutritionFacts{}, Price: 0.50},
		"black pepper": {Group: GroupCondiment, Nutrition: NutritionFacts{}, Price: 1.00},
		"cumin":        {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 8, Protein: 0.4, Carbs: 1, Fat: 0.5, Fiber: 0.2}, Price: 1.20},
		"turmeric":     {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 8, Protein: 0.3, Carbs: 1.4, Fat: 0.2, Fiber: 0.5}, Price: 1.30},
		"oregano":      {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 5, Protein: 0.2, Carbs: 1, Fat: 0.2, Fiber: 0.8}, Price: 1.10},
		"lime":         {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 20, Protein: 0.5, Carbs: 7, Fat: 0.1, Fiber: 1.9}, Price: 0.60},
		"lemon":        {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 20, Protein: 0.6, Carbs: 6, Fat: 0.2, Fiber: 1.6}, Price: 0.60},
		"coconut milk": {Group: GroupCondiment, Nutrition: NutritionFacts{Calories: 200, Protein: 2, Carbs: 3, Fat: 21, Fiber: 0}, Price: 2.40},
	}
}
