package recipe

import (
	"math"
	"strings"
)

// plan 產出採買清單與預算估算
// 清單 = 補位食材 ∪ 常備品 ∪ 該料理的特色備品，扣除使用者已有的品項，
// 依首次出現順序去重；預算查無單價時以備援單價計算，永不失敗
func (s *Service) plan(owned []string, fillers []string, diet DietaryPreference, cuisine CuisineType) ShoppingPlan {
	ownedSet := make(map[string]struct{}, len(owned))
	for _, name := range owned {
		ownedSet[strings.ToLower(name)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var list []string
	add := func(item string) {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" {
			return
		}
		if _, ok := ownedSet[key]; ok {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		// 備品不得違反飲食偏好（如 Vegan 不應被要求購買起司）
		if s.ref.IsForbidden(s.ref.Lookup(key).Group, diet) {
			return
		}
		seen[key] = struct{}{}
		list = append(list, key)
	}

	for _, f := range fillers {
		add(f)
	}
	for _, item := range s.ref.CommonStaples {
		add(item)
	}
	for _, item := range s.ref.Staples[cuisine] {
		add(item)
	}

	var total float64
	for _, item := range list {
		if entry, ok := s.ref.Find(item); ok && entry.Price > 0 {
			total += entry.Price
		} else {
			total += s.opts.FallbackUnitPrice
		}
	}

	return ShoppingPlan{
		ShoppingList:   list,
		BudgetEstimate: math.Round(total*100) / 100,
	}
}
