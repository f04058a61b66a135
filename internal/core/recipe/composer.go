package recipe

import (
	"fmt"
	"strings"
)

// selectTemplate 依查找順序挑選模板：
// (cuisine, dietary) 精確配對 → 僅 cuisine → 通用模板
func (s *Service) selectTemplate(cuisine CuisineType, diet DietaryPreference) *RecipeTemplate {
	for i := range s.ref.Templates {
		t := &s.ref.Templates[i]
		if t.Cuisine == cuisine && t.Dietary == diet {
			return t
		}
	}
	for i := range s.ref.Templates {
		t := &s.ref.Templates[i]
		if t.Cuisine == cuisine && t.Dietary == "" {
			return t
		}
	}
	for i := range s.ref.Templates {
		t := &s.ref.Templates[i]
		if t.Cuisine == "" && t.Dietary == "" {
			return t
		}
	}
	return nil
}

// bindRoles 將使用者食材綁定到模板角色
// 每個角色取第一個尚未使用且分類相符的食材；缺少時使用預設補位食材
// 回傳完整的角色綁定表與實際加入食譜的補位食材（依角色順序）
func (s *Service) bindRoles(tpl *RecipeTemplate, ingredients []string, diet DietaryPreference) (map[Role]string, []string) {
	bound := make(map[Role]string, len(allRoles))
	used := make(map[int]bool, len(ingredients))

	for _, role := range allRoles {
		for i, name := range ingredients {
			if used[i] {
				continue
			}
			if s.ref.Lookup(name).Role == role {
				bound[role] = name
				used[i] = true
				break
			}
		}
	}

	var fillers []string
	required := make(map[Role]bool, len(tpl.Roles))
	for _, role := range tpl.Roles {
		required[role] = true
	}

	for _, role := range allRoles {
		if bound[role] != "" {
			continue
		}
		filler := s.fillerFor(tpl, role, diet)
		bound[role] = filler
		// 只有模板要求的角色才把補位食材寫進食譜
		if required[role] {
			fillers = append(fillers, filler)
		}
	}

	return bound, fillers
}

// fillerFor 取得角色的預設補位食材，違反飲食偏好時改用安全替代品
func (s *Service) fillerFor(tpl *RecipeTemplate, role Role, diet DietaryPreference) string {
	filler := tpl.Fillers[role]
	if filler == "" {
		filler = s.ref.SafeFillers[role]
	}
	if s.ref.IsForbidden(s.ref.Lookup(filler).Group, diet) {
		return s.ref.SafeFillers[role]
	}
	return filler
}

// compose 綁定模板並產出完整食譜
// 輸出永遠回映呼叫端要求的 cuisine 與 dietary，即使實際使用的是備援模板
func (s *Service) compose(ingredients []string, diet DietaryPreference, cuisine CuisineType) (ComposedRecipe, []string, error) {
	tpl := s.selectTemplate(cuisine, diet)
	if tpl == nil {
		return ComposedRecipe{}, nil, ErrNoTemplate
	}

	bound, fillers := s.bindRoles(tpl, ingredients, diet)

	// 最終食材清單：全部使用者食材 + 補位食材，小寫鍵去重
	final := make([]string, 0, len(ingredients)+len(fillers))
	seen := make(map[string]struct{}, len(ingredients)+len(fillers))
	for _, name := range append(append([]string{}, ingredients...), fillers...) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		final = append(final, name)
	}

	replacer := strings.NewReplacer(
		"{protein}", bound[RoleProtein],
		"{starch}", bound[RoleStarch],
		"{vegetable}", bound[RoleVegetable],
		"{aromatic}", bound[RoleAromatic],
	)
	steps := make([]string, len(tpl.Steps))
	for i, step := range tpl.Steps {
		steps[i] = replacer.Replace(step)
	}

	return ComposedRecipe{
		Name:        s.composeName(final, diet, cuisine),
		Cuisine:     string(cuisine),
		DietaryType: string(diet),
		CookingTime: tpl.CookingTime,
		Difficulty:  tpl.Difficulty,
		Ingredients: final,
		Steps:       steps,
	}, fillers, nil
}

// composeName 組合食譜名稱，例如
// "Asian High-Protein Recipe with Chicken, Rice, Tomatoes"
func (s *Service) composeName(ingredients []string, diet DietaryPreference, cuisine CuisineType) string {
	limit := s.opts.MaxTitleIngredients
	if limit <= 0 || limit > len(ingredients) {
		limit = len(ingredients)
	}
	leading := make([]string, 0, limit)
	for _, name := range ingredients[:limit] {
		leading = append(leading, titleCase(name))
	}
	return fmt.Sprintf("%s %s Recipe with %s", cuisine, diet, strings.Join(leading, ", "))
}

// titleCase 將每個單字的首字母轉為大寫
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
