package recipe

import (
	"fmt"
	"math"
)

// estimate 依食譜內容與飲食偏好計算營養概況
// 相同輸入永遠得到相同輸出，不存在任何隨機或時間因素
func (s *Service) estimate(rec ComposedRecipe, diet DietaryPreference) NutritionProfile {
	var protein, carbs, fat, fiber float64
	rolesSeen := make(map[Role]struct{})
	vegetables := 0

	for _, name := range rec.Ingredients {
		entry := s.ref.Lookup(name)
		protein += entry.Nutrition.Protein
		carbs += entry.Nutrition.Carbs
		fat += entry.Nutrition.Fat
		fiber += entry.Nutrition.Fiber
		if entry.Role != "" {
			rolesSeen[entry.Role] = struct{}{}
		}
		if entry.Role == RoleVegetable {
			vegetables++
		}
	}

	// 依偏好調整三大營養素，熱量由調整後的營養素回推，
	// 確保顯示的熱量與營養素比例一致
	m := s.ref.Multipliers[diet]
	protein *= m.Protein
	carbs *= m.Carbs
	fat *= m.Fat
	calories := int(math.Round(4*protein + 4*carbs + 9*fat))

	compliance := s.checkCompliance(rec.Ingredients, diet)

	score := 5.0 + 0.8*float64(len(rolesSeen)) + 0.3*math.Min(float64(vegetables), 3)
	if fiber >= 6 {
		score += 0.5
	}
	if compliance == ComplianceFull {
		score += 1.0
	} else {
		score += 0.2
	}
	score = math.Round(clamp(score, 0, 10)*10) / 10

	return NutritionProfile{
		Calories:          calories,
		Protein:           formatGrams(protein),
		Carbs:             formatGrams(carbs),
		Fat:               formatGrams(fat),
		Fiber:             formatGrams(fiber),
		HealthScore:       score,
		DietaryCompliance: compliance,
	}
}

// checkCompliance 檢查食譜食材是否違反飲食偏好的禁用分類
func (s *Service) checkCompliance(ingredients []string, diet DietaryPreference) string {
	for _, name := range ingredients {
		if s.ref.IsForbidden(s.ref.Lookup(name).Group, diet) {
			return CompliancePartial
		}
	}
	return ComplianceFull
}

// formatGrams 以一位小數加上單位輸出，例如 "37.5g"
func formatGrams(v float64) string {
	return fmt.Sprintf("%.1fg", math.Round(v*10)/10)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
